package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/teranos/eventgen/config"
	"github.com/teranos/eventgen/errors"
	"github.com/teranos/eventgen/logger"
	"github.com/teranos/eventgen/run"
)

// GenerateCmd produces one run
var GenerateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate a new run",
	Long: `Generate one self-contained run under <output.dir>/<run-id>.

Persons are drawn first; QR codes, rooms, the schedule, announcements,
resources, and help requests are drawn from that roster. Flags override
configuration files and EVENTGEN_* environment variables.

Examples:
  eventgen generate --persons 3 --days 1 --slots 1 --slots-variation 0 --events 1 --events-variation 0
  eventgen generate --seed 42 --format xlsx
  eventgen generate --json > progress.jsonl`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

// generateFlags maps flag names to configuration keys
var generateFlags = map[string]string{
	"out":              "output.dir",
	"format":           "output.format",
	"persons":          "generation.persons",
	"days":             "generation.days",
	"slots":            "generation.slots_per_day_base",
	"slots-variation":  "generation.slots_per_day_variation",
	"events":           "generation.events_per_slot_base",
	"events-variation": "generation.events_per_slot_variation",
	"announcements":    "generation.announcements",
	"resources":        "generation.resources",
	"help-requests":    "generation.help_requests",
	"seed":             "generation.seed",
}

func init() {
	f := GenerateCmd.Flags()
	f.StringP("out", "o", "data", "Parent directory for run folders")
	f.String("format", config.FormatCSV, "Table format: csv, xlsx")
	f.IntP("persons", "n", 500, "Number of persons")
	f.Int("days", 3, "Number of event days")
	f.Int("slots", 5, "Base slot count per day")
	f.Int("slots-variation", 1, "Slot count variation per day")
	f.Int("events", 2, "Base candidate event count per slot")
	f.Int("events-variation", 1, "Event count variation per slot")
	f.Int("announcements", 20, "Number of announcements (needs at least one admin)")
	f.Int("resources", 20, "Number of resources (needs at least one admin)")
	f.Int("help-requests", 50, "Number of help requests")
	f.Uint64("seed", 0, "Random seed up to 2^63-1; 0 draws a fresh one")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadWithFlags(cmd, config.GetViper())
	if err != nil {
		return err
	}

	var emitter run.ProgressEmitter = run.NewCLIEmitter(verbosity(cmd))
	if jsonOutput(cmd) {
		emitter = run.NewJSONEmitter()
	} else if logger.ShouldOutput(verbosity(cmd), logger.OutputConfig) {
		pterm.DefaultSection.Println("Configuration")
		_ = writeConfig(cmd.OutOrStdout(), cfg, "toml")
	}

	_, err = run.NewRunner(cfg, run.WithEmitter(emitter)).Run(cmd.Context())
	return err
}

// loadWithFlags binds changed generate flags onto v and loads the configuration
func loadWithFlags(cmd *cobra.Command, v *viper.Viper) (*config.Config, error) {
	for name, key := range generateFlags {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, errors.Wrapf(err, "bind --%s", name)
		}
	}
	cfg, err := config.LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	return cfg, nil
}
