package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/teranos/eventgen/config"
	"github.com/teranos/eventgen/errors"
	"github.com/teranos/eventgen/verify"
)

func TestWriteConfig(t *testing.T) {
	cfg, err := config.Defaults()
	require.NoError(t, err)

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeConfig(&buf, cfg, "json"))

		var decoded config.Config
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, cfg.Generation.Persons, decoded.Generation.Persons)
		assert.Equal(t, cfg.Vocabulary.Roles, decoded.Vocabulary.Roles)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeConfig(&buf, cfg, "yaml"))

		var decoded config.Config
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, cfg.Output.Format, decoded.Output.Format)
	})

	t.Run("toml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeConfig(&buf, cfg, "toml"))
		assert.Contains(t, buf.String(), "[generation]")
		assert.Contains(t, buf.String(), "persons = 500")
	})

	t.Run("unsupported", func(t *testing.T) {
		err := writeConfig(&bytes.Buffer{}, cfg, "ini")
		require.Error(t, err)
		assert.NotEmpty(t, errors.GetAllHints(err))
	})
}

func TestLoadWithFlags(t *testing.T) {
	flags := GenerateCmd.Flags()
	require.NoError(t, flags.Set("persons", "12"))
	require.NoError(t, flags.Set("seed", "99"))
	require.NoError(t, flags.Set("format", "xlsx"))
	t.Cleanup(func() {
		for _, name := range []string{"persons", "seed", "format"} {
			flags.Lookup(name).Changed = false
		}
		_ = flags.Set("persons", "500")
		_ = flags.Set("seed", "0")
		_ = flags.Set("format", config.FormatCSV)
	})

	v := viper.New()
	config.SetDefaults(v)
	cfg, err := loadWithFlags(GenerateCmd, v)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Generation.Persons)
	assert.Equal(t, uint64(99), cfg.Generation.Seed)
	assert.Equal(t, config.FormatXLSX, cfg.Output.Format)
	// unchanged flags leave configuration alone
	assert.Equal(t, 3, cfg.Generation.Days)
}

func TestWriteReportJSON(t *testing.T) {
	report := &verify.Report{
		RunID:          "abc",
		Tables:         map[string]int{"persons": 2},
		DistinctEvents: 4,
		Violations:     []verify.Violation{{Check: "unique_email", Table: "persons", Detail: "x"}},
	}

	var buf bytes.Buffer
	require.NoError(t, writeReportJSON(&buf, report))

	var decoded verify.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *report, decoded)
}
