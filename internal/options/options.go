// Package options defines the jstc configuration record and the derived
// decisions computed from it.
//
// The record is assembled exactly once by an external builder (CLI flags
// over built-in defaults), is immutable from Build() onward, and is shared
// by reference across every subsystem and worker for the life of the
// process. Accessors are total and side-effect-free; anything invalid must
// be rejected before the record exists, never discovered lazily here.
package options

import "time"

// FormatPreferences holds code-formatting output preferences.
type FormatPreferences struct {
	// BracketSpacing prints spaces inside object-literal braces.
	BracketSpacing bool

	// SingleQuotes prints string literals with single quotes.
	SingleQuotes bool
}

// GCSettings holds worker garbage-collector tuning knobs. Every field is
// optional; nil means the runtime default applies.
type GCSettings struct {
	// MinorHeapSize is the minor heap size in words.
	MinorHeapSize *int

	// MajorHeapIncrement is the major heap growth increment.
	MajorHeapIncrement *int

	// SpaceOverhead is the GC space/time tradeoff percentage.
	SpaceOverhead *int

	// WindowSize is the major GC smoothing window.
	WindowSize *int

	// CustomHeapCap is a hard cap on the worker heap, in bytes.
	CustomHeapCap *int
}

// LogSavingRule controls when a logged method's samples are persisted.
type LogSavingRule struct {
	// ThresholdTime is the minimum elapsed time before a sample is saved.
	ThresholdTime time.Duration

	// Limit optionally caps the number of saved samples.
	Limit *int

	// Rate is the sampling rate in [0, 100].
	Rate float64
}

// Options is the immutable configuration record for a jstc process.
//
// Every field has a total default applied by DefaultBuilder, so a built
// record is always fully populated. Fields are unexported; read them
// through the accessor surface in accessors.go and the derived decisions
// in decisions.go.
type Options struct {
	// Checking scope and dialect.
	checkAll                 bool
	castingSyntax            CastingSyntax
	componentSyntax          ComponentSyntax
	componentSyntaxIncludes  PathPrefixList
	enumsEnabled             bool
	exactByDefault           bool
	enforceStrictCallArity   bool
	useMixedInCatchVariables bool
	suppressTypes            []string
	includeSuppressions      bool

	// Module resolution.
	moduleSystem                ModuleSystem
	moduleNameMappers           PatternList
	missingModuleGenerators     PatternList
	hasteNameReducers           PatternList
	hasteModuleRefPrefix        *string
	ignoreNonLiteralRequires    bool
	modulesAreUseStrict         bool
	nodeMainFields              []string
	nodePackageExportConditions []string
	nodeResolverDirnames        []string
	strictES6ImportExport       bool

	// JSX and React.
	jsxMode      JSXMode
	jsxPragma    string
	reactRuntime ReactRuntime

	// Relay integration.
	relayIntegration                     bool
	relayIntegrationESModules            bool
	relayIntegrationExcludes             PatternList
	relayIntegrationModulePrefix         *string
	relayIntegrationModulePrefixIncludes PatternList

	// Saved state.
	savedStateLoader           SavedStateLoader
	savedStateAllowReinit      bool
	savedStateForceRecheck     bool
	savedStateNoFallback       bool
	savedStateVerify           bool
	skipSavedStateVersionCheck bool

	// Workers and scheduling.
	maxWorkers                   int
	maxFilesCheckedPerWorker     int
	maxSecondsForCheckPerWorker  float64
	maxRSSBytesForCheckPerWorker int64
	mergeTimeout                 *int
	waitForRecheck               bool
	lazyMode                     bool
	distributed                  bool
	estimateRecheckTime          bool

	// Parser limits.
	recursionLimit   int
	maxHeaderTokens  int
	maxLiteralLength int
	maxTraceDepth    int

	// Transform toggles.
	babelLooseArraySpread bool
	mungeUnderscores      bool

	// Lints and strict mode.
	lintSeverities       map[string]Severity
	strictModeSeverities map[string]Severity
	longLintSummary      bool

	// Rollouts.
	enabledRollouts map[string]string

	// Paths and identity.
	rootPath  string
	stripRoot bool
	tempDir   string
	shaHash   string

	// Output and diagnostics.
	debug       bool
	verbose     bool
	quiet       bool
	profile     bool
	autoImports bool
	logFile     string
	logSaving   map[string]LogSavingRule

	// Formatting preferences.
	format FormatPreferences

	// Worker memory tuning.
	gc                    GCSettings
	sharedMemHeapSize     int64
	sharedMemHashTablePow int
}
