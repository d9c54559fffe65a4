package options

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Checking defaults.
const (
	DefaultRecursionLimit   = 10000
	DefaultMaxHeaderTokens  = 10
	DefaultMaxLiteralLength = 100
	DefaultMaxTraceDepth    = 0
)

// Worker defaults.
const (
	// DefaultMaxFilesCheckedPerWorker bounds a worker's check bucket so
	// slow files cannot starve the rest of a large bucket.
	DefaultMaxFilesCheckedPerWorker = 100

	// DefaultMergeTimeout is the per-component merge timeout in seconds.
	DefaultMergeTimeout = 100

	// DefaultSharedMemHeapSize is the shared-memory heap size in bytes.
	DefaultSharedMemHeapSize = int64(1) << 32

	// DefaultSharedMemHashTablePow sizes the shared hash table at
	// 2^pow entries.
	DefaultSharedMemHashTablePow = 19
)

// Suppression defaults.
const (
	// DefaultSuppressType is the comment type that silences an error.
	DefaultSuppressType = "$FixMe"
)

// Log-saving defaults.
const (
	DefaultLogSavingThreshold = 2 * time.Second
	DefaultLogSavingRate      = 100.0
)

// DefaultLogSavingRule returns the rule applied when a method is added
// to the log-saving table without explicit tuning: save every sample
// slower than the threshold, with no cap.
func DefaultLogSavingRule() LogSavingRule {
	return LogSavingRule{
		ThresholdTime: DefaultLogSavingThreshold,
		Rate:          DefaultLogSavingRate,
	}
}

// DefaultBuilder returns a Builder populated with every built-in default.
// An external builder layers explicit settings on top and calls Build;
// fields it never touches keep these values, so the record is always
// fully populated.
func DefaultBuilder() *Builder {
	mergeTimeout := DefaultMergeTimeout
	return &Builder{
		// Checking scope and dialect.
		CastingSyntax:          CastingSyntaxBoth,
		ComponentSyntax:        ComponentSyntaxOff,
		EnforceStrictCallArity: true,
		ExactByDefault:         true,
		SuppressTypes:          []string{DefaultSuppressType},

		// Module resolution.
		ModuleSystem:         ModuleSystemNode,
		NodeMainFields:       []string{"main"},
		NodeResolverDirnames: []string{"node_modules"},

		// JSX and React.
		JSXMode:      JSXModeReact,
		ReactRuntime: ReactRuntimeClassic,

		// Saved state.
		SavedStateLoader: SavedStateNone,

		// Workers and scheduling.
		MaxWorkers:               runtime.NumCPU(),
		MaxFilesCheckedPerWorker: DefaultMaxFilesCheckedPerWorker,
		MergeTimeout:             &mergeTimeout,
		EstimateRecheckTime:      true,

		// Parser limits.
		RecursionLimit:   DefaultRecursionLimit,
		MaxHeaderTokens:  DefaultMaxHeaderTokens,
		MaxLiteralLength: DefaultMaxLiteralLength,
		MaxTraceDepth:    DefaultMaxTraceDepth,

		// Paths.
		RootPath: ".",
		TempDir:  filepath.Join(os.TempDir(), "jstc"),

		// Output and diagnostics.
		AutoImports: true,

		// Formatting preferences.
		Format: FormatPreferences{BracketSpacing: true},

		// Worker memory tuning.
		SharedMemHeapSize:     DefaultSharedMemHeapSize,
		SharedMemHashTablePow: DefaultSharedMemHashTablePow,
	}
}
