package options

// Builder is the mutable construction input for an Options record.
// Start from DefaultBuilder, set fields directly (CLI flag binding writes
// into them, see internal/cli), then call Build. A Builder is not safe
// for concurrent use; the record it builds is.
type Builder struct {
	// Checking scope and dialect.
	CheckAll                 bool
	CastingSyntax            CastingSyntax
	ComponentSyntax          ComponentSyntax
	ComponentSyntaxIncludes  []string
	EnumsEnabled             bool
	ExactByDefault           bool
	EnforceStrictCallArity   bool
	UseMixedInCatchVariables bool
	SuppressTypes            []string
	IncludeSuppressions      bool

	// Module resolution.
	ModuleSystem                ModuleSystem
	ModuleNameMappers           PatternList
	MissingModuleGenerators     PatternList
	HasteNameReducers           PatternList
	HasteModuleRefPrefix        *string
	IgnoreNonLiteralRequires    bool
	ModulesAreUseStrict         bool
	NodeMainFields              []string
	NodePackageExportConditions []string
	NodeResolverDirnames        []string
	StrictES6ImportExport       bool

	// JSX and React.
	JSXMode      JSXMode
	JSXPragma    string
	ReactRuntime ReactRuntime

	// Relay integration.
	RelayIntegration                     bool
	RelayIntegrationESModules            bool
	RelayIntegrationExcludes             PatternList
	RelayIntegrationModulePrefix         *string
	RelayIntegrationModulePrefixIncludes PatternList

	// Saved state.
	SavedStateLoader           SavedStateLoader
	SavedStateAllowReinit      bool
	SavedStateForceRecheck     bool
	SavedStateNoFallback       bool
	SavedStateVerify           bool
	SkipSavedStateVersionCheck bool

	// Workers and scheduling.
	MaxWorkers                   int
	MaxFilesCheckedPerWorker     int
	MaxSecondsForCheckPerWorker  float64
	MaxRSSBytesForCheckPerWorker int64
	MergeTimeout                 *int
	WaitForRecheck               bool
	LazyMode                     bool
	Distributed                  bool
	EstimateRecheckTime          bool

	// Parser limits.
	RecursionLimit   int
	MaxHeaderTokens  int
	MaxLiteralLength int
	MaxTraceDepth    int

	// Transform toggles.
	BabelLooseArraySpread bool
	MungeUnderscores      bool

	// Lints and strict mode.
	LintSeverities       map[string]Severity
	StrictModeSeverities map[string]Severity
	LongLintSummary      bool

	// Rollouts.
	EnabledRollouts map[string]string

	// Paths and identity.
	RootPath  string
	StripRoot bool
	TempDir   string
	SHAHash   string

	// Output and diagnostics.
	Debug       bool
	Verbose     bool
	Quiet       bool
	Profile     bool
	AutoImports bool
	LogFile     string
	LogSaving   map[string]LogSavingRule

	// Formatting preferences.
	Format FormatPreferences

	// Worker memory tuning.
	GC                    GCSettings
	SharedMemHeapSize     int64
	SharedMemHashTablePow int
}

// Build produces the immutable record. Every slice, map and optional
// scalar is copied, so mutating the Builder (or anything it references)
// after Build cannot be observed through the record. The returned value
// is safe to share by reference across goroutines and workers.
func (b *Builder) Build() *Options {
	return &Options{
		checkAll:                 b.CheckAll,
		castingSyntax:            b.CastingSyntax,
		componentSyntax:          b.ComponentSyntax,
		componentSyntaxIncludes:  PathPrefixList(copyStrings(b.ComponentSyntaxIncludes)),
		enumsEnabled:             b.EnumsEnabled,
		exactByDefault:           b.ExactByDefault,
		enforceStrictCallArity:   b.EnforceStrictCallArity,
		useMixedInCatchVariables: b.UseMixedInCatchVariables,
		suppressTypes:            copyStrings(b.SuppressTypes),
		includeSuppressions:      b.IncludeSuppressions,

		moduleSystem:                b.ModuleSystem,
		moduleNameMappers:           copyPatterns(b.ModuleNameMappers),
		missingModuleGenerators:     copyPatterns(b.MissingModuleGenerators),
		hasteNameReducers:           copyPatterns(b.HasteNameReducers),
		hasteModuleRefPrefix:        copyStringPtr(b.HasteModuleRefPrefix),
		ignoreNonLiteralRequires:    b.IgnoreNonLiteralRequires,
		modulesAreUseStrict:         b.ModulesAreUseStrict,
		nodeMainFields:              copyStrings(b.NodeMainFields),
		nodePackageExportConditions: copyStrings(b.NodePackageExportConditions),
		nodeResolverDirnames:        copyStrings(b.NodeResolverDirnames),
		strictES6ImportExport:       b.StrictES6ImportExport,

		jsxMode:      b.JSXMode,
		jsxPragma:    b.JSXPragma,
		reactRuntime: b.ReactRuntime,

		relayIntegration:                     b.RelayIntegration,
		relayIntegrationESModules:            b.RelayIntegrationESModules,
		relayIntegrationExcludes:             copyPatterns(b.RelayIntegrationExcludes),
		relayIntegrationModulePrefix:         copyStringPtr(b.RelayIntegrationModulePrefix),
		relayIntegrationModulePrefixIncludes: copyPatterns(b.RelayIntegrationModulePrefixIncludes),

		savedStateLoader:           b.SavedStateLoader,
		savedStateAllowReinit:      b.SavedStateAllowReinit,
		savedStateForceRecheck:     b.SavedStateForceRecheck,
		savedStateNoFallback:       b.SavedStateNoFallback,
		savedStateVerify:           b.SavedStateVerify,
		skipSavedStateVersionCheck: b.SkipSavedStateVersionCheck,

		maxWorkers:                   b.MaxWorkers,
		maxFilesCheckedPerWorker:     b.MaxFilesCheckedPerWorker,
		maxSecondsForCheckPerWorker:  b.MaxSecondsForCheckPerWorker,
		maxRSSBytesForCheckPerWorker: b.MaxRSSBytesForCheckPerWorker,
		mergeTimeout:                 copyIntPtr(b.MergeTimeout),
		waitForRecheck:               b.WaitForRecheck,
		lazyMode:                     b.LazyMode,
		distributed:                  b.Distributed,
		estimateRecheckTime:          b.EstimateRecheckTime,

		recursionLimit:   b.RecursionLimit,
		maxHeaderTokens:  b.MaxHeaderTokens,
		maxLiteralLength: b.MaxLiteralLength,
		maxTraceDepth:    b.MaxTraceDepth,

		babelLooseArraySpread: b.BabelLooseArraySpread,
		mungeUnderscores:      b.MungeUnderscores,

		lintSeverities:       copySeverities(b.LintSeverities),
		strictModeSeverities: copySeverities(b.StrictModeSeverities),
		longLintSummary:      b.LongLintSummary,

		enabledRollouts: copyStringMap(b.EnabledRollouts),

		rootPath:  b.RootPath,
		stripRoot: b.StripRoot,
		tempDir:   b.TempDir,
		shaHash:   b.SHAHash,

		debug:       b.Debug,
		verbose:     b.Verbose,
		quiet:       b.Quiet,
		profile:     b.Profile,
		autoImports: b.AutoImports,
		logFile:     b.LogFile,
		logSaving:   copyLogSaving(b.LogSaving),

		format: b.Format,

		gc: GCSettings{
			MinorHeapSize:      copyIntPtr(b.GC.MinorHeapSize),
			MajorHeapIncrement: copyIntPtr(b.GC.MajorHeapIncrement),
			SpaceOverhead:      copyIntPtr(b.GC.SpaceOverhead),
			WindowSize:         copyIntPtr(b.GC.WindowSize),
			CustomHeapCap:      copyIntPtr(b.GC.CustomHeapCap),
		},
		sharedMemHeapSize:     b.SharedMemHeapSize,
		sharedMemHashTablePow: b.SharedMemHashTablePow,
	}
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func copyPatterns(pl PatternList) PatternList {
	if pl == nil {
		return nil
	}
	out := make(PatternList, len(pl))
	copy(out, pl)
	return out
}

func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copySeverities(m map[string]Severity) map[string]Severity {
	if m == nil {
		return nil
	}
	out := make(map[string]Severity, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyLogSaving(m map[string]LogSavingRule) map[string]LogSavingRule {
	if m == nil {
		return nil
	}
	out := make(map[string]LogSavingRule, len(m))
	for k, v := range m {
		v.Limit = copyIntPtr(v.Limit)
		out[k] = v
	}
	return out
}
