package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Default vocabularies. Grades and subteams follow the event's registration forms;
// the remaining vocabularies mirror the dashboard's enumerations.
var (
	DefaultRoles               = []string{"attendee", "staff", "admin"}
	DefaultRoleWeights         = []int{70, 25, 5}
	DefaultSubteamRoles        = []string{"staff", "admin"}
	DefaultGrades              = []string{"9", "10", "11", "12", "Freshman", "Sophomore", "Junior", "Senior", "Masters", "PhD"}
	DefaultPreUniversityGrades = []string{"9", "10", "11", "12"}
	DefaultSubteams            = []string{"Logistics", "Registration", "Tech Support", "Security", "Operations", "Catering"}
	DefaultChannels            = []string{"email", "website"}
	DefaultVisibilities        = []string{"attendee", "staff", "shared"}
	DefaultResourceTypes       = []string{"file", "url"}
	DefaultHelpTypes           = []string{"question", "assistance", "emergency", "other"}
	DefaultPriorities          = []string{"low", "medium", "high"}
	DefaultStatuses            = []string{"pending", "resolved", "failure"}
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Output defaults
	v.SetDefault("output.dir", "data")
	v.SetDefault("output.format", FormatCSV)

	// Generation defaults
	v.SetDefault("generation.persons", 500)
	v.SetDefault("generation.days", 3)
	v.SetDefault("generation.slots_per_day_base", 5)
	v.SetDefault("generation.slots_per_day_variation", 1)
	v.SetDefault("generation.events_per_slot_base", 2)
	v.SetDefault("generation.events_per_slot_variation", 1)
	v.SetDefault("generation.announcements", 20)
	v.SetDefault("generation.resources", 20)
	v.SetDefault("generation.help_requests", 50)
	v.SetDefault("generation.seed", 0)
	v.SetDefault("generation.max_email_attempts", 1000)

	// Vocabulary defaults
	v.SetDefault("vocabulary.roles", DefaultRoles)
	v.SetDefault("vocabulary.role_weights", DefaultRoleWeights)
	v.SetDefault("vocabulary.subteam_roles", DefaultSubteamRoles)
	v.SetDefault("vocabulary.role_subteams", map[string]string{"admin": "Admin"})
	v.SetDefault("vocabulary.admin_role", "admin")
	v.SetDefault("vocabulary.grades", DefaultGrades)
	v.SetDefault("vocabulary.pre_university_grades", DefaultPreUniversityGrades)
	v.SetDefault("vocabulary.subteams", DefaultSubteams)
	v.SetDefault("vocabulary.channels", DefaultChannels)
	v.SetDefault("vocabulary.visibilities", DefaultVisibilities)
	v.SetDefault("vocabulary.resource_types", DefaultResourceTypes)
	v.SetDefault("vocabulary.help_types", DefaultHelpTypes)
	v.SetDefault("vocabulary.priorities", DefaultPriorities)
	v.SetDefault("vocabulary.statuses", DefaultStatuses)

	v.SetDefault("log.json", false)
}

// BindEnvVars binds the settings most often overridden per invocation
func BindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("output.dir", "EVENTGEN_OUTPUT_DIR")
	_ = v.BindEnv("output.format", "EVENTGEN_OUTPUT_FORMAT")
	_ = v.BindEnv("generation.persons", "EVENTGEN_PERSONS")
	_ = v.BindEnv("generation.seed", "EVENTGEN_SEED")
}

// GetOutputFormat returns the table format (default: csv)
func (c *Config) GetOutputFormat() string {
	if c.Output.Format == "" {
		return FormatCSV
	}
	return c.Output.Format
}

// GetOutputDir returns the parent directory for run folders (default: data)
func (c *Config) GetOutputDir() string {
	if c.Output.Dir == "" {
		return "data"
	}
	return c.Output.Dir
}

// GetMaxEmailAttempts returns the per-person unique email retry bound (default: 1000)
func (c *Config) GetMaxEmailAttempts() int {
	if c.Generation.MaxEmailAttempts <= 0 {
		return 1000
	}
	return c.Generation.MaxEmailAttempts
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Output: {Dir: %s, Format: %s}, Generation: {Persons: %d, Days: %d, Seed: %d}}",
		c.GetOutputDir(), c.GetOutputFormat(), c.Generation.Persons, c.Generation.Days, c.Generation.Seed)
}
