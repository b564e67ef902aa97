package logger

// OutputCategory classifies terminal output so commands can gate it on -v
type OutputCategory int

const (
	// Level 0 - Always shown
	OutputResults OutputCategory = iota
	OutputErrors
	OutputViolations

	// Level 1 - Informational
	OutputProgress
	OutputSummary
	OutputWarnings
	OutputTableCounts

	// Level 2 - Detailed
	OutputConfig
	OutputTiming
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults:    VerbosityUser,
	OutputErrors:     VerbosityUser,
	OutputViolations: VerbosityUser,

	OutputProgress:    VerbosityInfo,
	OutputSummary:     VerbosityInfo,
	OutputWarnings:    VerbosityInfo,
	OutputTableCounts: VerbosityInfo,

	OutputConfig: VerbosityDebug,
	OutputTiming: VerbosityDebug,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		// Unknown category, only at the highest level
		return verbosity >= VerbosityDebug
	}
	return verbosity >= minLevel
}

// VerbosityDescription returns a description of what's shown at each level
func VerbosityDescription(verbosity int) string {
	switch {
	case verbosity <= VerbosityUser:
		return "results, errors, and violations only"
	case verbosity == VerbosityInfo:
		return "above + per-table progress, row counts, run summary"
	default:
		return "above + config details and timing"
	}
}
