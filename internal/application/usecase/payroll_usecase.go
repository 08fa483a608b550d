package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/diillson/pd-payroll-go/internal/domain/entity"
	"github.com/diillson/pd-payroll-go/internal/domain/payroll"
	"github.com/diillson/pd-payroll-go/internal/domain/repository"
	"github.com/diillson/pd-payroll-go/internal/shared/clock"
	"github.com/diillson/pd-payroll-go/internal/shared/types"
)

// TokenEnvVar é a variável de ambiente que fornece o token do PagerDuty.
const TokenEnvVar = "PAGERDUTY_TOKEN"

// PayrollUseCase handles the on-call payroll report generation.
type PayrollUseCase struct {
	pagerDuty  repository.PagerDutyFactory
	configRepo repository.ConfigRepositoryFactory
	exportRepo repository.ExportRepository
	archive    repository.ArchiveRepository
	console    types.ConsoleInterface
	clock      clock.Clock
	getenv     func(string) string
}

// NewPayrollUseCase creates a new payroll use case.
func NewPayrollUseCase(
	pagerDuty repository.PagerDutyFactory,
	configRepo repository.ConfigRepositoryFactory,
	exportRepo repository.ExportRepository,
	archive repository.ArchiveRepository,
	console types.ConsoleInterface,
	clk clock.Clock,
	getenv func(string) string,
) *PayrollUseCase {
	if clk == nil {
		clk = clock.System{}
	}
	return &PayrollUseCase{
		pagerDuty:  pagerDuty,
		configRepo: configRepo,
		exportRepo: exportRepo,
		archive:    archive,
		console:    console,
		clock:      clk,
		getenv:     getenv,
	}
}

// settings são os valores efetivos depois de combinar flags, ambiente e configuração.
type settings struct {
	token         string
	rate          float64
	scheduleID    string
	scheduleQuery string
	location      *time.Location
}

// RunPayroll executa a funcionalidade principal: busca os plantões e gera o relatório.
func (uc *PayrollUseCase) RunPayroll(ctx context.Context, args *types.CLIArgs) error {
	cfgRepo, err := uc.configRepo(args.ConfigFile)
	if err != nil {
		return err
	}

	st, err := uc.resolveSettings(cfgRepo, args)
	if err != nil {
		return err
	}

	period := uc.resolvePeriod(args, st.location)
	calculator := payroll.NewCalculator(st.location)

	// Valida mês e taxa antes de qualquer chamada de rede
	fetchWindow, err := calculator.Calendar().FetchWindow(period.Year, period.Month)
	if err != nil {
		return err
	}
	if err := payroll.ValidateRate(st.rate); err != nil {
		return err
	}

	uc.console.LogDebug("Report period %s (%s), fetch window %s - %s", period, st.location,
		fetchWindow.Since.Format(time.RFC3339), fetchWindow.Until.Format(time.RFC3339))

	pd := uc.pagerDuty(st.token)

	status := uc.console.Status("Fetching user")
	user, schedule, err := uc.fetchUserAndSchedule(ctx, pd, cfgRepo, st, args.Interactive, status)
	if err != nil {
		status.Stop()
		return err
	}

	status.Update("Fetching on-calls")
	onCalls, err := pd.ListOnCalls(ctx, user.ID, schedule.ID, fetchWindow.Since, fetchWindow.Until)
	if err != nil {
		status.Stop()
		return err
	}

	if len(onCalls) == 0 {
		status.Stop()
		return fmt.Errorf("%w for schedule %s for date %s", types.ErrNoOnCalls, schedule.ID, period)
	}

	uc.console.LogDebug("Fetched %d on-call entries", len(onCalls))

	result, err := calculator.Calculate(onCalls, period, st.rate)
	if err != nil {
		status.Stop()
		return err
	}

	report := entity.NewPayrollReport(period, user, schedule, st.rate, st.location.String(), result)

	status.Stop()
	uc.console.LogSuccess("Report generated")

	if args.JSON {
		data, err := json.Marshal(report)
		if err != nil {
			return fmt.Errorf("error encoding report: %w", err)
		}
		uc.console.Println(string(data))
	} else if args.CleanReport {
		uc.console.Print(FormatPlainReport(report))
	} else {
		uc.console.Println(uc.renderReport(report))
	}

	if args.ReportName != "" && len(args.ReportType) > 0 {
		return uc.exportReport(ctx, report, args)
	}

	return nil
}

// resolveSettings combina flags, variáveis de ambiente, configuração salva e perguntas
// interativas, persistindo os novos padrões.
func (uc *PayrollUseCase) resolveSettings(cfgRepo repository.ConfigRepository, args *types.CLIArgs) (*settings, error) {
	if args.Clear != "" {
		if err := cfgRepo.Clear(args.Clear); err != nil {
			return nil, err
		}
		uc.console.LogInfo("Cleared config %s", args.Clear)
	}

	cfg, err := cfgRepo.Load()
	if err != nil {
		return nil, err
	}

	st := &settings{
		rate:          args.Rate,
		scheduleID:    args.Schedule,
		scheduleQuery: args.ScheduleQuery,
	}

	// Token: ambiente > arquivo > prompt
	if uc.getenv != nil {
		st.token = uc.getenv(TokenEnvVar)
	}
	if st.token == "" {
		st.token = cfg.Token
	}
	if st.token == "" && args.Interactive {
		token, err := uc.console.SecretInput("Please enter your PagerDuty token")
		if err != nil {
			return nil, err
		}
		st.token = strings.TrimSpace(token)
		cfg.Token = st.token
	}
	if st.token == "" {
		return nil, types.ErrTokenRequired
	}

	// Taxa horária
	if st.rate == 0 {
		st.rate = cfg.DefaultRate
	}
	if st.rate == 0 && args.Interactive {
		rate, err := uc.promptRate()
		if err != nil {
			return nil, err
		}
		st.rate = rate
	}
	if st.rate == 0 {
		return nil, types.ErrRateRequired
	}
	if st.rate > 0 && !math.IsInf(st.rate, 0) {
		cfg.DefaultRate = st.rate
	}

	// Escala: ID explícito > query > padrão salvo > prompt
	if st.scheduleID == "" && st.scheduleQuery == "" {
		st.scheduleID = cfg.DefaultSchedule
	}
	if st.scheduleID == "" && st.scheduleQuery == "" && args.Interactive {
		if err := uc.promptSchedule(st); err != nil {
			return nil, err
		}
	}
	if st.scheduleID == "" && st.scheduleQuery == "" {
		return nil, types.ErrScheduleRequired
	}
	if st.scheduleID != "" {
		cfg.DefaultSchedule = st.scheduleID
	}

	tz := args.Timezone
	if tz == "" {
		tz = cfg.Timezone
	}
	st.location = time.Local
	if tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", tz, err)
		}
		st.location = loc
	}
	if args.Timezone != "" {
		cfg.Timezone = args.Timezone
	}

	if err := cfgRepo.Save(cfg); err != nil {
		return nil, err
	}

	return st, nil
}

func (uc *PayrollUseCase) promptRate() (float64, error) {
	value, err := uc.console.TextInput("How much do you make an hour for being on-call", "10")
	if err != nil {
		return 0, err
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hourly rate %q: %w", value, err)
	}
	return rate, nil
}

func (uc *PayrollUseCase) promptSchedule(st *settings) error {
	choice, err := uc.console.Select("How would you like to fetch schedule?", []string{
		"I know schedule ID",
		"I want to search by schedule name",
	})
	if err != nil {
		return err
	}

	if choice == 0 {
		id, err := uc.console.TextInput("Enter schedule ID", "P123456")
		if err != nil {
			return err
		}
		st.scheduleID = strings.TrimSpace(id)
		return nil
	}

	query, err := uc.console.TextInput("Enter query to search for schedule by name", "My team's schedule")
	if err != nil {
		return err
	}
	st.scheduleQuery = strings.TrimSpace(query)
	return nil
}

// resolvePeriod usa o mês informado ou, na falta dele, o mês corrente no fuso do relatório.
func (uc *PayrollUseCase) resolvePeriod(args *types.CLIArgs, loc *time.Location) entity.Period {
	now := uc.clock.Now().In(loc)

	period := entity.Period{Year: args.Year, Month: args.Month}
	if period.Year == 0 {
		period.Year = now.Year()
	}
	if period.Month == 0 {
		period.Month = int(now.Month())
	}
	return period
}

// fetchUserAndSchedule busca usuário e escala. Com ID conhecido, as duas chamadas
// rodam em paralelo; com query, a escolha pode exigir interação.
func (uc *PayrollUseCase) fetchUserAndSchedule(
	ctx context.Context,
	pd repository.PagerDutyRepository,
	cfgRepo repository.ConfigRepository,
	st *settings,
	interactive bool,
	status types.StatusHandle,
) (entity.UserInfo, entity.ScheduleInfo, error) {
	var (
		user     entity.UserInfo
		schedule entity.ScheduleInfo
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := pd.GetCurrentUser(gctx)
		if err != nil {
			return err
		}
		user = u
		return nil
	})

	if st.scheduleQuery == "" {
		g.Go(func() error {
			s, err := pd.GetSchedule(gctx, st.scheduleID)
			if err != nil {
				return err
			}
			schedule = s
			return nil
		})
		if err := g.Wait(); err != nil {
			return user, schedule, err
		}
		return user, schedule, nil
	}

	var candidates []entity.ScheduleInfo
	g.Go(func() error {
		found, err := pd.FindSchedules(gctx, st.scheduleQuery)
		if err != nil {
			return err
		}
		candidates = found
		return nil
	})
	if err := g.Wait(); err != nil {
		return user, schedule, err
	}

	status.Update("Fetching schedule")
	schedule, err := uc.chooseSchedule(candidates, st.scheduleQuery, interactive, status)
	if err != nil {
		return user, schedule, err
	}

	// a escala escolhida passa a ser o padrão
	cfg, err := cfgRepo.Load()
	if err != nil {
		return user, schedule, err
	}
	cfg.DefaultSchedule = schedule.ID
	if err := cfgRepo.Save(cfg); err != nil {
		return user, schedule, err
	}

	return user, schedule, nil
}

func (uc *PayrollUseCase) chooseSchedule(candidates []entity.ScheduleInfo, query string, interactive bool, status types.StatusHandle) (entity.ScheduleInfo, error) {
	switch {
	case len(candidates) == 0:
		return entity.ScheduleInfo{}, fmt.Errorf("%w: no schedules found for query %q", types.ErrScheduleNotFound, query)
	case len(candidates) == 1:
		return candidates[0], nil
	}

	labels := make([]string, len(candidates))
	for i, c := range candidates {
		labels[i] = fmt.Sprintf("%s [%s]", c.Name, c.ID)
	}

	if !interactive {
		return entity.ScheduleInfo{}, fmt.Errorf("%w %q: %s", types.ErrAmbiguousSchedule, query, strings.Join(labels, ", "))
	}

	status.Stop()
	idx, err := uc.console.Select(
		fmt.Sprintf("Found %d schedules matching query %q, choose one of them", len(candidates), query),
		labels,
	)
	if err != nil {
		return entity.ScheduleInfo{}, err
	}
	return candidates[idx], nil
}

// exportReport grava o relatório nos formatos pedidos e, opcionalmente, envia ao S3.
// Falhas não interrompem os demais formatos; todas voltam juntas no erro.
func (uc *PayrollUseCase) exportReport(ctx context.Context, report entity.PayrollReport, args *types.CLIArgs) error {
	var errs []error

	for _, reportType := range args.ReportType {
		var (
			path string
			err  error
		)

		switch strings.ToLower(strings.TrimSpace(reportType)) {
		case "csv":
			path, err = uc.exportRepo.ExportToCSV(report, args.ReportName, args.Dir)
		case "json":
			path, err = uc.exportRepo.ExportToJSON(report, args.ReportName, args.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportToPDF(report, args.ReportName, args.Dir)
		case "xlsx":
			path, err = uc.exportRepo.ExportToXLSX(report, args.ReportName, args.Dir)
		default:
			uc.console.LogWarning("Unsupported report type: %s", reportType)
			errs = append(errs, fmt.Errorf("%w: %s", types.ErrUnsupportedReportType, reportType))
			continue
		}

		if err != nil {
			uc.console.LogError("Failed to export report to %s: %s", strings.ToUpper(reportType), err)
			errs = append(errs, fmt.Errorf("failed to export report to %s: %w", strings.ToUpper(reportType), err))
			continue
		}
		uc.console.LogSuccess("Successfully exported report to %s: %s", strings.ToUpper(reportType), path)

		if args.S3Bucket == "" || uc.archive == nil {
			continue
		}

		uri, err := uc.archive.Upload(ctx, args.AWSProfile, args.S3Bucket, args.S3Prefix, path)
		if err != nil {
			uc.console.LogError("Failed to upload %s: %s", path, err)
			errs = append(errs, fmt.Errorf("failed to upload %s: %w", path, err))
			continue
		}
		uc.console.LogSuccess("Uploaded report to %s", uri)
	}

	return errors.Join(errs...)
}
