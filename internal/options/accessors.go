package options

// Accessors are total, side-effect-free and O(1). Optional fields return
// an explicit (value, ok) pair instead of a sentinel. Slice and map
// results are the record's own backing storage; callers must treat them
// as read-only.

// Checking scope and dialect.

// CheckAll reports whether every file is checked regardless of pragma.
func (o *Options) CheckAll() bool { return o.checkAll }

// CastingSyntax returns the accepted type-cast dialect.
func (o *Options) CastingSyntax() CastingSyntax { return o.castingSyntax }

// ComponentSyntax returns the component-syntax support level.
func (o *Options) ComponentSyntax() ComponentSyntax { return o.componentSyntax }

// ComponentSyntaxIncludes returns the path prefixes for which component
// syntax is force-type-checked. See TypeCheckComponentSyntax.
func (o *Options) ComponentSyntaxIncludes() PathPrefixList { return o.componentSyntaxIncludes }

// EnumsEnabled reports whether enum declarations are supported.
func (o *Options) EnumsEnabled() bool { return o.enumsEnabled }

// ExactByDefault reports whether object types are exact unless marked.
func (o *Options) ExactByDefault() bool { return o.exactByDefault }

// EnforceStrictCallArity reports whether extra call arguments error.
func (o *Options) EnforceStrictCallArity() bool { return o.enforceStrictCallArity }

// UseMixedInCatchVariables reports whether catch variables type as mixed.
func (o *Options) UseMixedInCatchVariables() bool { return o.useMixedInCatchVariables }

// SuppressTypes returns the comment types that suppress an error.
func (o *Options) SuppressTypes() []string { return o.suppressTypes }

// IncludeSuppressions reports whether suppressed errors are still reported.
func (o *Options) IncludeSuppressions() bool { return o.includeSuppressions }

// Module resolution.

// ModuleSystem returns the module resolution strategy.
func (o *Options) ModuleSystem() ModuleSystem { return o.moduleSystem }

// ModuleNameMappers returns the ordered module-name rewrite rules.
func (o *Options) ModuleNameMappers() PatternList { return o.moduleNameMappers }

// MissingModuleGenerators returns the ordered rules generating stubs for
// unresolved modules.
func (o *Options) MissingModuleGenerators() PatternList { return o.missingModuleGenerators }

// HasteNameReducers returns the ordered Haste name reduction rules.
func (o *Options) HasteNameReducers() PatternList { return o.hasteNameReducers }

// HasteModuleRefPrefix returns the module reference prefix, if configured.
func (o *Options) HasteModuleRefPrefix() (string, bool) {
	if o.hasteModuleRefPrefix == nil {
		return "", false
	}
	return *o.hasteModuleRefPrefix, true
}

// IgnoreNonLiteralRequires reports whether non-literal require arguments
// are ignored instead of erroring.
func (o *Options) IgnoreNonLiteralRequires() bool { return o.ignoreNonLiteralRequires }

// ModulesAreUseStrict reports whether every module is treated as strict.
func (o *Options) ModulesAreUseStrict() bool { return o.modulesAreUseStrict }

// NodeMainFields returns the package.json fields consulted during node
// resolution, in priority order.
func (o *Options) NodeMainFields() []string { return o.nodeMainFields }

// NodePackageExportConditions returns the export conditions for node
// resolution; ok is false when the modern "exports" resolution is off.
func (o *Options) NodePackageExportConditions() ([]string, bool) {
	if o.nodePackageExportConditions == nil {
		return nil, false
	}
	return o.nodePackageExportConditions, true
}

// NodeResolverDirnames returns the directory names searched during node
// resolution, in order.
func (o *Options) NodeResolverDirnames() []string { return o.nodeResolverDirnames }

// StrictES6ImportExport reports whether ES6 import/export is checked
// strictly.
func (o *Options) StrictES6ImportExport() bool { return o.strictES6ImportExport }

// JSX and React.

// JSXMode returns the JSX desugaring mode.
func (o *Options) JSXMode() JSXMode { return o.jsxMode }

// JSXPragma returns the pragma expression used when JSXMode is
// JSXModePragma; empty otherwise.
func (o *Options) JSXPragma() string { return o.jsxPragma }

// ReactRuntime returns the JSX runtime flavor.
func (o *Options) ReactRuntime() ReactRuntime { return o.reactRuntime }

// Relay integration.

// RelayIntegration reports whether graphql template literals are typed.
func (o *Options) RelayIntegration() bool { return o.relayIntegration }

// RelayIntegrationESModules reports whether generated Relay artifacts
// are imported as ES modules.
func (o *Options) RelayIntegrationESModules() bool { return o.relayIntegrationESModules }

// RelayIntegrationExcludes returns the patterns whose matching files are
// excluded from Relay integration.
func (o *Options) RelayIntegrationExcludes() PatternList { return o.relayIntegrationExcludes }

// RelayIntegrationModulePrefix returns the artifact module prefix, if
// configured.
func (o *Options) RelayIntegrationModulePrefix() (string, bool) {
	if o.relayIntegrationModulePrefix == nil {
		return "", false
	}
	return *o.relayIntegrationModulePrefix, true
}

// RelayIntegrationModulePrefixIncludes returns the patterns selecting
// the files the module prefix applies to.
func (o *Options) RelayIntegrationModulePrefixIncludes() PatternList {
	return o.relayIntegrationModulePrefixIncludes
}

// Saved state.

// SavedStateLoader returns the saved-state recovery source.
func (o *Options) SavedStateLoader() SavedStateLoader { return o.savedStateLoader }

// SavedStateAllowReinit reports whether a server may reinitialize from
// saved state after a restart.
func (o *Options) SavedStateAllowReinit() bool { return o.savedStateAllowReinit }

// SavedStateForceRecheck reports whether every file is rechecked after a
// saved-state init.
func (o *Options) SavedStateForceRecheck() bool { return o.savedStateForceRecheck }

// SavedStateNoFallback reports whether init fails instead of falling
// back to a full init when saved state is unavailable.
func (o *Options) SavedStateNoFallback() bool { return o.savedStateNoFallback }

// SavedStateVerify reports whether loaded saved state is verified
// against the file system.
func (o *Options) SavedStateVerify() bool { return o.savedStateVerify }

// SkipSavedStateVersionCheck reports whether the saved-state version
// check is bypassed.
func (o *Options) SkipSavedStateVersionCheck() bool { return o.skipSavedStateVersionCheck }

// Workers and scheduling.

// MaxWorkers returns the worker process count.
func (o *Options) MaxWorkers() int { return o.maxWorkers }

// MaxFilesCheckedPerWorker returns the per-worker check bucket size.
func (o *Options) MaxFilesCheckedPerWorker() int { return o.maxFilesCheckedPerWorker }

// MaxSecondsForCheckPerWorker returns the per-worker check time budget
// in seconds; zero disables the budget.
func (o *Options) MaxSecondsForCheckPerWorker() float64 { return o.maxSecondsForCheckPerWorker }

// MaxRSSBytesForCheckPerWorker returns the per-worker RSS budget in
// bytes; zero disables the budget.
func (o *Options) MaxRSSBytesForCheckPerWorker() int64 { return o.maxRSSBytesForCheckPerWorker }

// MergeTimeout returns the per-component merge timeout in seconds, if
// one is configured.
func (o *Options) MergeTimeout() (int, bool) {
	if o.mergeTimeout == nil {
		return 0, false
	}
	return *o.mergeTimeout, true
}

// WaitForRecheck reports whether queries block on an in-flight recheck.
func (o *Options) WaitForRecheck() bool { return o.waitForRecheck }

// LazyMode reports whether only actively used files are checked.
func (o *Options) LazyMode() bool { return o.lazyMode }

// Distributed reports whether checking is distributed across remote
// workers.
func (o *Options) Distributed() bool { return o.distributed }

// EstimateRecheckTime reports whether recheck time estimates are logged.
func (o *Options) EstimateRecheckTime() bool { return o.estimateRecheckTime }

// Parser limits.

// RecursionLimit returns the checker recursion cap.
func (o *Options) RecursionLimit() int { return o.recursionLimit }

// MaxHeaderTokens returns how many leading tokens are scanned for a
// pragma.
func (o *Options) MaxHeaderTokens() int { return o.maxHeaderTokens }

// MaxLiteralLength returns the cap above which string literals are
// typed as string rather than a literal type.
func (o *Options) MaxLiteralLength() int { return o.maxLiteralLength }

// MaxTraceDepth returns the trace depth for error output; zero disables
// traces.
func (o *Options) MaxTraceDepth() int { return o.maxTraceDepth }

// Transform toggles.

// BabelLooseArraySpread reports whether array spread assumes
// Babel's loose mode (arrays only, no iterables).
func (o *Options) BabelLooseArraySpread() bool { return o.babelLooseArraySpread }

// MungeUnderscores reports whether underscore-prefixed class members are
// treated as private.
func (o *Options) MungeUnderscores() bool { return o.mungeUnderscores }

// Lints and strict mode.

// LintSeverities returns the full lint severity table.
func (o *Options) LintSeverities() map[string]Severity { return o.lintSeverities }

// LintSeverity returns rule's configured severity; ok is false when the
// rule is not configured and the checker default applies.
func (o *Options) LintSeverity(rule string) (Severity, bool) {
	s, ok := o.lintSeverities[rule]
	return s, ok
}

// StrictModeSeverities returns the severity overrides applied to files
// in strict mode.
func (o *Options) StrictModeSeverities() map[string]Severity { return o.strictModeSeverities }

// StrictSeverity returns rule's strict-mode severity; ok is false when
// strict mode leaves the rule at its normal severity.
func (o *Options) StrictSeverity(rule string) (Severity, bool) {
	s, ok := o.strictModeSeverities[rule]
	return s, ok
}

// LongLintSummary reports whether the lint summary lists every rule.
func (o *Options) LongLintSummary() bool { return o.longLintSummary }

// Paths and identity.

// RootPath returns the project root.
func (o *Options) RootPath() string { return o.rootPath }

// StripRoot reports whether the root prefix is stripped from reported
// paths.
func (o *Options) StripRoot() bool { return o.stripRoot }

// TempDir returns the scratch directory.
func (o *Options) TempDir() string { return o.tempDir }

// SHAHash returns the hex digest of the configuration input, or "" when
// the builder did not stamp one.
func (o *Options) SHAHash() string { return o.shaHash }

// Output and diagnostics.

// Debug reports whether internal debug output is enabled.
func (o *Options) Debug() bool { return o.debug }

// Verbose reports whether verbose checker output is enabled.
func (o *Options) Verbose() bool { return o.verbose }

// Quiet reports whether informational output is suppressed.
func (o *Options) Quiet() bool { return o.quiet }

// Profile returns the raw profiling flag. Most callers want
// ShouldProfile, which also honors quiet mode.
func (o *Options) Profile() bool { return o.profile }

// AutoImports reports whether missing-import quick fixes are offered.
func (o *Options) AutoImports() bool { return o.autoImports }

// LogFile returns the server log path; empty means stderr only.
func (o *Options) LogFile() string { return o.logFile }

// LogSavingRules returns the per-method log-saving table.
func (o *Options) LogSavingRules() map[string]LogSavingRule { return o.logSaving }

// LogSavingRuleFor returns the log-saving rule for method; ok is false
// when samples for method are never saved.
func (o *Options) LogSavingRuleFor(method string) (LogSavingRule, bool) {
	r, ok := o.logSaving[method]
	return r, ok
}

// Formatting preferences.

// FormatBracketSpacing reports whether object braces are printed with
// inner spaces.
func (o *Options) FormatBracketSpacing() bool { return o.format.BracketSpacing }

// FormatSingleQuotes reports whether string literals are printed with
// single quotes.
func (o *Options) FormatSingleQuotes() bool { return o.format.SingleQuotes }

// Worker memory tuning.

// GCMinorHeapSize returns the worker minor heap size, if configured.
func (o *Options) GCMinorHeapSize() (int, bool) { return optInt(o.gc.MinorHeapSize) }

// GCMajorHeapIncrement returns the major heap growth increment, if
// configured.
func (o *Options) GCMajorHeapIncrement() (int, bool) { return optInt(o.gc.MajorHeapIncrement) }

// GCSpaceOverhead returns the GC space/time tradeoff, if configured.
func (o *Options) GCSpaceOverhead() (int, bool) { return optInt(o.gc.SpaceOverhead) }

// GCWindowSize returns the major GC smoothing window, if configured.
func (o *Options) GCWindowSize() (int, bool) { return optInt(o.gc.WindowSize) }

// GCCustomHeapCap returns the hard worker heap cap, if configured.
func (o *Options) GCCustomHeapCap() (int, bool) { return optInt(o.gc.CustomHeapCap) }

// SharedMemHeapSize returns the shared-memory heap size in bytes.
func (o *Options) SharedMemHeapSize() int64 { return o.sharedMemHeapSize }

// SharedMemHashTablePow returns the shared hash table size exponent.
func (o *Options) SharedMemHashTablePow() int { return o.sharedMemHashTablePow }

func optInt(p *int) (int, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}
