package config

import (
	"math"

	"github.com/teranos/eventgen/errors"
)

// Validate checks that the configuration can drive a run.
// Slot and event base/variation values are not validated: the schedule generator
// clamps them into a non-empty interval.
func (c *Config) Validate() error {
	switch c.GetOutputFormat() {
	case FormatCSV, FormatXLSX:
	default:
		return errors.WithHint(
			errors.NewInvalidConfigError("output.format %q is not supported", c.Output.Format),
			"use csv or xlsx")
	}

	g := c.Generation
	counts := []struct {
		key   string
		value int
	}{
		{"generation.persons", g.Persons},
		{"generation.days", g.Days},
		{"generation.announcements", g.Announcements},
		{"generation.resources", g.Resources},
		{"generation.help_requests", g.HelpRequests},
		{"generation.max_email_attempts", g.MaxEmailAttempts},
	}
	for _, count := range counts {
		if count.value < 0 {
			return errors.NewInvalidConfigError("%s must be >= 0, got %d", count.key, count.value)
		}
	}

	// manifest.toml and eventgen.toml hold signed 64-bit integers
	if g.Seed > math.MaxInt64 {
		return errors.WithHint(
			errors.NewInvalidConfigError("generation.seed must be <= %d, got %d", uint64(math.MaxInt64), g.Seed),
			"pick a seed that fits in a signed 64-bit integer")
	}

	voc := c.Vocabulary
	if len(voc.Roles) != len(voc.RoleWeights) {
		return errors.NewInvalidConfigError("vocabulary.roles has %d entries but vocabulary.role_weights has %d",
			len(voc.Roles), len(voc.RoleWeights))
	}
	total := 0
	for i, w := range voc.RoleWeights {
		if w < 0 {
			return errors.NewInvalidConfigError("vocabulary.role_weights[%d] must be >= 0, got %d", i, w)
		}
		total += w
	}

	if g.Persons > 0 {
		if total <= 0 {
			return errors.NewInvalidConfigError("vocabulary.role_weights must sum to > 0 when generation.persons > 0")
		}
		if len(voc.Grades) == 0 {
			return errors.NewInvalidConfigError("vocabulary.grades cannot be empty when generation.persons > 0")
		}
		for _, role := range voc.SubteamRoles {
			if voc.RoleSubteams[role] == "" && len(voc.Subteams) == 0 {
				return errors.NewInvalidConfigError("vocabulary.subteams cannot be empty: role %q requires a subteam", role)
			}
		}
	}

	if g.Announcements > 0 {
		if err := requireVocabulary("vocabulary.channels", voc.Channels, "generation.announcements"); err != nil {
			return err
		}
		if err := requireVocabulary("vocabulary.visibilities", voc.Visibilities, "generation.announcements"); err != nil {
			return err
		}
	}
	if g.Resources > 0 {
		if err := requireVocabulary("vocabulary.resource_types", voc.ResourceTypes, "generation.resources"); err != nil {
			return err
		}
		if err := requireVocabulary("vocabulary.visibilities", voc.Visibilities, "generation.resources"); err != nil {
			return err
		}
	}
	if g.HelpRequests > 0 {
		if err := requireVocabulary("vocabulary.help_types", voc.HelpTypes, "generation.help_requests"); err != nil {
			return err
		}
		if err := requireVocabulary("vocabulary.priorities", voc.Priorities, "generation.help_requests"); err != nil {
			return err
		}
		if err := requireVocabulary("vocabulary.statuses", voc.Statuses, "generation.help_requests"); err != nil {
			return err
		}
	}

	return nil
}

func requireVocabulary(key string, values []string, countKey string) error {
	if len(values) == 0 {
		return errors.NewInvalidConfigError("%s cannot be empty when %s > 0", key, countKey)
	}
	return nil
}
