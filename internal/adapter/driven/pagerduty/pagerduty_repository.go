package pagerduty

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PagerDuty/go-pagerduty"
	"github.com/diillson/pd-payroll-go/internal/domain/entity"
	"github.com/diillson/pd-payroll-go/internal/domain/repository"
)

// OnCallPageSize é o tamanho de página usado em /oncalls.
const OnCallPageSize = 50

// RequestError descreve uma falha de chamada à API do PagerDuty.
type RequestError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: [%d] %v", e.Op, e.StatusCode, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// PagerDutyRepositoryImpl implementa o PagerDutyRepository sobre o go-pagerduty.
type PagerDutyRepositoryImpl struct {
	client *pagerduty.Client
}

// NewPagerDutyRepository cria uma nova implementação do PagerDutyRepository.
// endpoint vazio usa a API pública.
func NewPagerDutyRepository(token, endpoint string) repository.PagerDutyRepository {
	var opts []pagerduty.ClientOptions
	if endpoint != "" {
		opts = append(opts, pagerduty.WithAPIEndpoint(endpoint))
	}
	return &PagerDutyRepositoryImpl{
		client: pagerduty.NewClient(token, opts...),
	}
}

// NewPagerDutyFactory returns a factory bound to endpoint.
func NewPagerDutyFactory(endpoint string) repository.PagerDutyFactory {
	return func(token string) repository.PagerDutyRepository {
		return NewPagerDutyRepository(token, endpoint)
	}
}

// GetCurrentUser busca o usuário dono do token.
func (r *PagerDutyRepositoryImpl) GetCurrentUser(ctx context.Context) (entity.UserInfo, error) {
	user, err := r.client.GetCurrentUserWithContext(ctx, pagerduty.GetCurrentUserOptions{})
	if err != nil {
		return entity.UserInfo{}, wrapError("Error fetching user", err)
	}

	return entity.UserInfo{
		ID:   user.ID,
		Name: firstNonEmpty(user.Summary, user.Name),
	}, nil
}

// GetSchedule busca uma escala pelo ID.
func (r *PagerDutyRepositoryImpl) GetSchedule(ctx context.Context, scheduleID string) (entity.ScheduleInfo, error) {
	schedule, err := r.client.GetScheduleWithContext(ctx, scheduleID, pagerduty.GetScheduleOptions{})
	if err != nil {
		return entity.ScheduleInfo{}, wrapError(fmt.Sprintf("Error fetching schedule %s", scheduleID), err)
	}

	return toScheduleInfo(*schedule), nil
}

// FindSchedules procura escalas cujo nome corresponde à query.
func (r *PagerDutyRepositoryImpl) FindSchedules(ctx context.Context, query string) ([]entity.ScheduleInfo, error) {
	resp, err := r.client.ListSchedulesWithContext(ctx, pagerduty.ListSchedulesOptions{Query: query})
	if err != nil {
		return nil, wrapError(fmt.Sprintf("Error fetching schedules (query: %s)", query), err)
	}

	schedules := make([]entity.ScheduleInfo, 0, len(resp.Schedules))
	for _, s := range resp.Schedules {
		schedules = append(schedules, toScheduleInfo(s))
	}
	return schedules, nil
}

// ListOnCalls lista os plantões do usuário na escala entre since e until,
// seguindo a paginação até o fim.
func (r *PagerDutyRepositoryImpl) ListOnCalls(ctx context.Context, userID, scheduleID string, since, until time.Time) ([]entity.RawShift, error) {
	opts := pagerduty.ListOnCallOptions{
		Limit:   OnCallPageSize,
		UserIDs: []string{userID},
		Since:   since.Format(time.RFC3339),
		Until:   until.Format(time.RFC3339),
	}
	if scheduleID != "" {
		opts.ScheduleIDs = []string{scheduleID}
	}

	shifts := []entity.RawShift{}
	for {
		resp, err := r.client.ListOnCallsWithContext(ctx, opts)
		if err != nil {
			return nil, wrapError(fmt.Sprintf("Error fetching on-calls (user: %s, since: %s, until: %s, schedule: %s)",
				userID, opts.Since, opts.Until, scheduleID), err)
		}

		for _, oc := range resp.OnCalls {
			shifts = append(shifts, entity.RawShift{
				Start:           oc.Start,
				End:             oc.End,
				UserID:          oc.User.ID,
				ScheduleID:      oc.Schedule.ID,
				EscalationLevel: oc.EscalationLevel,
			})
		}

		if !resp.More || len(resp.OnCalls) == 0 {
			break
		}
		opts.Offset += uint(len(resp.OnCalls))
	}

	return shifts, nil
}

func toScheduleInfo(s pagerduty.Schedule) entity.ScheduleInfo {
	return entity.ScheduleInfo{
		ID:      s.ID,
		Name:    firstNonEmpty(s.Summary, s.Name),
		HTMLURL: s.HTMLURL,
	}
}

// wrapError converte erros do cliente em RequestError, preservando o status HTTP.
func wrapError(op string, err error) error {
	var apiErr pagerduty.APIError
	if errors.As(err, &apiErr) {
		return &RequestError{Op: op, StatusCode: apiErr.StatusCode, Err: err}
	}
	return &RequestError{Op: op, Err: err}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
