package repository

import (
	"context"
	"time"

	"github.com/diillson/pd-payroll-go/internal/domain/entity"
)

// PagerDutyRepository defines the interface for PagerDuty API interactions.
type PagerDutyRepository interface {
	GetCurrentUser(ctx context.Context) (entity.UserInfo, error)
	GetSchedule(ctx context.Context, scheduleID string) (entity.ScheduleInfo, error)
	FindSchedules(ctx context.Context, query string) ([]entity.ScheduleInfo, error)
	ListOnCalls(ctx context.Context, userID, scheduleID string, since, until time.Time) ([]entity.RawShift, error)
}

// PagerDutyFactory builds a repository for a resolved access token.
type PagerDutyFactory func(token string) PagerDutyRepository
