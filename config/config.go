package config

// Config represents the eventgen run configuration
type Config struct {
	Output     OutputConfig     `mapstructure:"output" toml:"output" yaml:"output" json:"output"`
	Generation GenerationConfig `mapstructure:"generation" toml:"generation" yaml:"generation" json:"generation"`
	Vocabulary VocabularyConfig `mapstructure:"vocabulary" toml:"vocabulary" yaml:"vocabulary" json:"vocabulary"`
	Log        LogConfig        `mapstructure:"log" toml:"log" yaml:"log" json:"log"`
}

// OutputConfig configures where and how run tables are written
type OutputConfig struct {
	// parent of every run directory (default: data)
	Dir    string `mapstructure:"dir" toml:"dir" yaml:"dir" json:"dir"`
	// csv or xlsx (default: csv)
	Format string `mapstructure:"format" toml:"format" yaml:"format" json:"format"`
}

// GenerationConfig holds the counts and schedule shape of one run
type GenerationConfig struct {
	Persons int `mapstructure:"persons" toml:"persons" yaml:"persons" json:"persons"`
	Days    int `mapstructure:"days" toml:"days" yaml:"days" json:"days"`

	// Slot and event counts are drawn from [max(1, base-variation), max(lo, base+variation)]
	SlotsPerDayBase        int `mapstructure:"slots_per_day_base" toml:"slots_per_day_base" yaml:"slots_per_day_base" json:"slots_per_day_base"`
	SlotsPerDayVariation   int `mapstructure:"slots_per_day_variation" toml:"slots_per_day_variation" yaml:"slots_per_day_variation" json:"slots_per_day_variation"`
	EventsPerSlotBase      int `mapstructure:"events_per_slot_base" toml:"events_per_slot_base" yaml:"events_per_slot_base" json:"events_per_slot_base"`
	EventsPerSlotVariation int `mapstructure:"events_per_slot_variation" toml:"events_per_slot_variation" yaml:"events_per_slot_variation" json:"events_per_slot_variation"`

	Announcements int `mapstructure:"announcements" toml:"announcements" yaml:"announcements" json:"announcements"`
	Resources     int `mapstructure:"resources" toml:"resources" yaml:"resources" json:"resources"`
	HelpRequests  int `mapstructure:"help_requests" toml:"help_requests" yaml:"help_requests" json:"help_requests"`

	// 0 = fresh random seed per run
	Seed             uint64 `mapstructure:"seed" toml:"seed" yaml:"seed" json:"seed"`
	// per person (default: 1000)
	MaxEmailAttempts int    `mapstructure:"max_email_attempts" toml:"max_email_attempts" yaml:"max_email_attempts" json:"max_email_attempts"`
}

// VocabularyConfig holds the categorical vocabularies generators draw from
type VocabularyConfig struct {
	Roles        []string          `mapstructure:"roles" toml:"roles" yaml:"roles" json:"roles"`
	// parallel to Roles
	RoleWeights  []int             `mapstructure:"role_weights" toml:"role_weights" yaml:"role_weights" json:"role_weights"`
	// roles that always carry a subteam
	SubteamRoles []string          `mapstructure:"subteam_roles" toml:"subteam_roles" yaml:"subteam_roles" json:"subteam_roles"`
	// fixed subteam per role, e.g. admin = "Admin"
	RoleSubteams map[string]string `mapstructure:"role_subteams" toml:"role_subteams" yaml:"role_subteams" json:"role_subteams"`
	// owner role for announcements and resources
	AdminRole    string            `mapstructure:"admin_role" toml:"admin_role" yaml:"admin_role" json:"admin_role"`

	Grades              []string `mapstructure:"grades" toml:"grades" yaml:"grades" json:"grades"`
	PreUniversityGrades []string `mapstructure:"pre_university_grades" toml:"pre_university_grades" yaml:"pre_university_grades" json:"pre_university_grades"`
	Subteams            []string `mapstructure:"subteams" toml:"subteams" yaml:"subteams" json:"subteams"`

	Channels      []string `mapstructure:"channels" toml:"channels" yaml:"channels" json:"channels"`
	Visibilities  []string `mapstructure:"visibilities" toml:"visibilities" yaml:"visibilities" json:"visibilities"`
	ResourceTypes []string `mapstructure:"resource_types" toml:"resource_types" yaml:"resource_types" json:"resource_types"`
	HelpTypes     []string `mapstructure:"help_types" toml:"help_types" yaml:"help_types" json:"help_types"`
	Priorities    []string `mapstructure:"priorities" toml:"priorities" yaml:"priorities" json:"priorities"`
	Statuses      []string `mapstructure:"statuses" toml:"statuses" yaml:"statuses" json:"statuses"`
}

// LogConfig configures logging output
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json" yaml:"json" json:"json"`
}

// Output format names
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
