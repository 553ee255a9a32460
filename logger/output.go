package logger

// OutputCategory defines a category of CLI output that can be enabled/disabled.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information the jcm command prints.
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults OutputCategory = iota // Render summary, check verdict
	OutputErrors                        // Errors with hints
	OutputDiffs                         // Line diffs for out-of-date files

	// Level 1 (-v)
	OutputFiles  // One line per file written or compared
	OutputConfig // Effective configuration summary

	// Level 2 (-vv)
	OutputTiming // Render timing
)

var categoryLevels = map[OutputCategory]int{
	OutputResults: VerbosityUser,
	OutputErrors:  VerbosityUser,
	OutputFiles:   VerbosityInfo,
	OutputConfig:  VerbosityInfo,
	OutputTiming:  VerbosityDebug,
	OutputDiffs:   VerbosityUser,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}
