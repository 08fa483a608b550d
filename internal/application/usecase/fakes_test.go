package usecase_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/diillson/pd-payroll-go/internal/domain/entity"
	"github.com/diillson/pd-payroll-go/internal/domain/repository"
	"github.com/diillson/pd-payroll-go/internal/shared/types"
)

type fakePagerDuty struct {
	mu sync.Mutex

	user      entity.UserInfo
	schedules map[string]entity.ScheduleInfo
	found     []entity.ScheduleInfo
	onCalls   []entity.RawShift
	err       error

	token       string
	queries     []string
	since       time.Time
	until       time.Time
	listedFor   string
	listedCalls int
}

func (f *fakePagerDuty) factory() repository.PagerDutyFactory {
	return func(token string) repository.PagerDutyRepository {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.token = token
		return f
	}
}

func (f *fakePagerDuty) GetCurrentUser(_ context.Context) (entity.UserInfo, error) {
	if f.err != nil {
		return entity.UserInfo{}, f.err
	}
	return f.user, nil
}

func (f *fakePagerDuty) GetSchedule(_ context.Context, scheduleID string) (entity.ScheduleInfo, error) {
	s, ok := f.schedules[scheduleID]
	if !ok {
		return entity.ScheduleInfo{}, fmt.Errorf("get schedule: [404] %w", types.ErrScheduleNotFound)
	}
	return s, nil
}

func (f *fakePagerDuty) FindSchedules(_ context.Context, query string) ([]entity.ScheduleInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	return f.found, nil
}

func (f *fakePagerDuty) ListOnCalls(_ context.Context, _, scheduleID string, since, until time.Time) ([]entity.RawShift, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.since, f.until = since, until
	f.listedFor = scheduleID
	f.listedCalls++
	return f.onCalls, nil
}

type fakeConfigRepo struct {
	cfg     types.Config
	saves   int
	cleared []string
	path    string
}

func (f *fakeConfigRepo) factory() repository.ConfigRepositoryFactory {
	return func(path string) (repository.ConfigRepository, error) {
		f.path = path
		return f, nil
	}
}

func (f *fakeConfigRepo) Path() string { return f.path }

func (f *fakeConfigRepo) Load() (*types.Config, error) {
	cfg := f.cfg
	return &cfg, nil
}

func (f *fakeConfigRepo) Save(cfg *types.Config) error {
	f.cfg = *cfg
	f.saves++
	return nil
}

func (f *fakeConfigRepo) Clear(field string) error {
	f.cleared = append(f.cleared, field)
	switch field {
	case "", types.ClearAll:
		f.cfg = types.Config{}
	case types.ConfigFieldToken:
		f.cfg.Token = ""
	case types.ConfigFieldRate:
		f.cfg.DefaultRate = 0
	case types.ConfigFieldSchedule:
		f.cfg.DefaultSchedule = ""
	case types.ConfigFieldTimezone:
		f.cfg.Timezone = ""
	default:
		return types.ErrUnknownConfigKey
	}
	return nil
}

type fakeExporter struct {
	calls []string
	fail  map[string]error
}

func (f *fakeExporter) record(kind, filename, dir string) (string, error) {
	f.calls = append(f.calls, kind)
	if err := f.fail[kind]; err != nil {
		return "", err
	}
	return dir + "/" + filename + "." + kind, nil
}

func (f *fakeExporter) ExportToCSV(_ entity.PayrollReport, filename, dir string) (string, error) {
	return f.record("csv", filename, dir)
}

func (f *fakeExporter) ExportToJSON(_ entity.PayrollReport, filename, dir string) (string, error) {
	return f.record("json", filename, dir)
}

func (f *fakeExporter) ExportToPDF(_ entity.PayrollReport, filename, dir string) (string, error) {
	return f.record("pdf", filename, dir)
}

func (f *fakeExporter) ExportToXLSX(_ entity.PayrollReport, filename, dir string) (string, error) {
	return f.record("xlsx", filename, dir)
}

type fakeArchive struct {
	uploads []string
	bucket  string
	profile string
	err     error
}

func (f *fakeArchive) Upload(_ context.Context, profile, bucket, prefix, filePath string) (string, error) {
	f.profile, f.bucket = profile, bucket
	f.uploads = append(f.uploads, filePath)
	if f.err != nil {
		return "", f.err
	}
	return "s3://" + bucket + "/" + prefix + filePath, nil
}

// fakeConsole answers prompts from queues and records everything printed.
type fakeConsole struct {
	out      strings.Builder
	warnings []string
	errors   []string

	selects []int
	texts   []string
	secrets []string
	asked   []string
}

func (c *fakeConsole) Print(a ...interface{})                 { fmt.Fprint(&c.out, a...) }
func (c *fakeConsole) Printf(format string, a ...interface{}) { fmt.Fprintf(&c.out, format, a...) }
func (c *fakeConsole) Println(a ...interface{})               { fmt.Fprintln(&c.out, a...) }

func (c *fakeConsole) LogInfo(string, ...interface{})    {}
func (c *fakeConsole) LogSuccess(string, ...interface{}) {}
func (c *fakeConsole) LogDebug(string, ...interface{})   {}

func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) Status(string) types.StatusHandle { return nopStatus{} }

func (c *fakeConsole) CreateTable() types.TableInterface { return &fakeTable{} }

func (c *fakeConsole) Box(title, content string) string { return title + "\n" + content }

func (c *fakeConsole) Select(message string, _ []string) (int, error) {
	c.asked = append(c.asked, message)
	if len(c.selects) == 0 {
		return 0, fmt.Errorf("unexpected select %q", message)
	}
	v := c.selects[0]
	c.selects = c.selects[1:]
	return v, nil
}

func (c *fakeConsole) TextInput(message, _ string) (string, error) {
	c.asked = append(c.asked, message)
	if len(c.texts) == 0 {
		return "", fmt.Errorf("unexpected text input %q", message)
	}
	v := c.texts[0]
	c.texts = c.texts[1:]
	return v, nil
}

func (c *fakeConsole) SecretInput(message string) (string, error) {
	c.asked = append(c.asked, message)
	if len(c.secrets) == 0 {
		return "", fmt.Errorf("unexpected secret input %q", message)
	}
	v := c.secrets[0]
	c.secrets = c.secrets[1:]
	return v, nil
}

type nopStatus struct{}

func (nopStatus) Update(string) {}
func (nopStatus) Stop()         {}

type fakeTable struct {
	rows [][]string
}

func (t *fakeTable) AddColumn(string, ...interface{}) {}

func (t *fakeTable) AddRow(cells ...interface{}) {
	row := make([]string, len(cells))
	for i, c := range cells {
		row[i] = fmt.Sprint(c)
	}
	t.rows = append(t.rows, row)
}

func (t *fakeTable) Render() string {
	lines := make([]string, len(t.rows))
	for i, r := range t.rows {
		lines[i] = strings.Join(r, " | ")
	}
	return strings.Join(lines, "\n")
}
