package types

// Config represents the persisted user configuration.
type Config struct {
	Token           string  `json:"token,omitempty" yaml:"token,omitempty" toml:"token,omitempty"`
	DefaultRate     float64 `json:"default_rate,omitempty" yaml:"default_rate,omitempty" toml:"default_rate,omitempty"`
	DefaultSchedule string  `json:"default_schedule,omitempty" yaml:"default_schedule,omitempty" toml:"default_schedule,omitempty"`
	Timezone        string  `json:"timezone,omitempty" yaml:"timezone,omitempty" toml:"timezone,omitempty"`
}

// Config field names accepted by --clear.
const (
	ConfigFieldToken    = "token"
	ConfigFieldRate     = "rate"
	ConfigFieldSchedule = "schedule"
	ConfigFieldTimezone = "timezone"
)

// ConfigFields lists the fields that can be cleared individually.
var ConfigFields = []string{ConfigFieldToken, ConfigFieldRate, ConfigFieldSchedule, ConfigFieldTimezone}
