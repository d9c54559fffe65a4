package options_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/jstc/internal/options"
)

func TestDefaultBuilderValues(t *testing.T) {
	opts := options.DefaultBuilder().Build()
	require.NotNil(t, opts)

	// Checking scope and dialect.
	assert.False(t, opts.CheckAll())
	assert.Equal(t, options.CastingSyntaxBoth, opts.CastingSyntax())
	assert.Equal(t, options.ComponentSyntaxOff, opts.ComponentSyntax())
	assert.Empty(t, opts.ComponentSyntaxIncludes())
	assert.False(t, opts.EnumsEnabled())
	assert.True(t, opts.ExactByDefault())
	assert.True(t, opts.EnforceStrictCallArity())
	assert.False(t, opts.UseMixedInCatchVariables())
	assert.Equal(t, []string{"$FixMe"}, opts.SuppressTypes())
	assert.False(t, opts.IncludeSuppressions())

	// Module resolution.
	assert.Equal(t, options.ModuleSystemNode, opts.ModuleSystem())
	assert.Empty(t, opts.ModuleNameMappers())
	assert.Empty(t, opts.MissingModuleGenerators())
	assert.Empty(t, opts.HasteNameReducers())
	_, ok := opts.HasteModuleRefPrefix()
	assert.False(t, ok)
	assert.False(t, opts.IgnoreNonLiteralRequires())
	assert.False(t, opts.ModulesAreUseStrict())
	assert.Equal(t, []string{"main"}, opts.NodeMainFields())
	_, ok = opts.NodePackageExportConditions()
	assert.False(t, ok)
	assert.Equal(t, []string{"node_modules"}, opts.NodeResolverDirnames())
	assert.False(t, opts.StrictES6ImportExport())

	// JSX and React.
	assert.Equal(t, options.JSXModeReact, opts.JSXMode())
	assert.Empty(t, opts.JSXPragma())
	assert.Equal(t, options.ReactRuntimeClassic, opts.ReactRuntime())

	// Relay integration.
	assert.False(t, opts.RelayIntegration())
	assert.False(t, opts.RelayIntegrationESModules())
	assert.Empty(t, opts.RelayIntegrationExcludes())
	_, ok = opts.RelayIntegrationModulePrefix()
	assert.False(t, ok)
	assert.Empty(t, opts.RelayIntegrationModulePrefixIncludes())

	// Saved state.
	assert.Equal(t, options.SavedStateNone, opts.SavedStateLoader())
	assert.False(t, opts.SavedStateAllowReinit())
	assert.False(t, opts.SavedStateForceRecheck())
	assert.False(t, opts.SavedStateNoFallback())
	assert.False(t, opts.SavedStateVerify())
	assert.False(t, opts.SkipSavedStateVersionCheck())

	// Workers and scheduling.
	assert.Equal(t, runtime.NumCPU(), opts.MaxWorkers())
	assert.Equal(t, options.DefaultMaxFilesCheckedPerWorker, opts.MaxFilesCheckedPerWorker())
	assert.Zero(t, opts.MaxSecondsForCheckPerWorker())
	assert.Zero(t, opts.MaxRSSBytesForCheckPerWorker())
	timeout, ok := opts.MergeTimeout()
	require.True(t, ok)
	assert.Equal(t, options.DefaultMergeTimeout, timeout)
	assert.False(t, opts.WaitForRecheck())
	assert.False(t, opts.LazyMode())
	assert.False(t, opts.Distributed())
	assert.True(t, opts.EstimateRecheckTime())

	// Parser limits.
	assert.Equal(t, options.DefaultRecursionLimit, opts.RecursionLimit())
	assert.Equal(t, options.DefaultMaxHeaderTokens, opts.MaxHeaderTokens())
	assert.Equal(t, options.DefaultMaxLiteralLength, opts.MaxLiteralLength())
	assert.Equal(t, options.DefaultMaxTraceDepth, opts.MaxTraceDepth())

	// Transform toggles.
	assert.False(t, opts.BabelLooseArraySpread())
	assert.False(t, opts.MungeUnderscores())

	// Lints and strict mode.
	assert.Empty(t, opts.LintSeverities())
	assert.Empty(t, opts.StrictModeSeverities())
	assert.False(t, opts.LongLintSummary())

	// Rollouts.
	assert.Empty(t, opts.EnabledRollouts())

	// Paths and identity.
	assert.Equal(t, ".", opts.RootPath())
	assert.False(t, opts.StripRoot())
	assert.NotEmpty(t, opts.TempDir())
	assert.Empty(t, opts.SHAHash())

	// Output and diagnostics.
	assert.False(t, opts.Debug())
	assert.False(t, opts.Verbose())
	assert.False(t, opts.Quiet())
	assert.False(t, opts.Profile())
	assert.True(t, opts.AutoImports())
	assert.Empty(t, opts.LogFile())
	assert.Empty(t, opts.LogSavingRules())

	// Formatting preferences.
	assert.True(t, opts.FormatBracketSpacing())
	assert.False(t, opts.FormatSingleQuotes())

	// Worker memory tuning: GC knobs default to absent.
	_, ok = opts.GCMinorHeapSize()
	assert.False(t, ok)
	_, ok = opts.GCMajorHeapIncrement()
	assert.False(t, ok)
	_, ok = opts.GCSpaceOverhead()
	assert.False(t, ok)
	_, ok = opts.GCWindowSize()
	assert.False(t, ok)
	_, ok = opts.GCCustomHeapCap()
	assert.False(t, ok)
	assert.Equal(t, options.DefaultSharedMemHeapSize, opts.SharedMemHeapSize())
	assert.Equal(t, options.DefaultSharedMemHashTablePow, opts.SharedMemHashTablePow())
}

func TestDefaultLogSavingRule(t *testing.T) {
	rule := options.DefaultLogSavingRule()
	assert.Equal(t, options.DefaultLogSavingThreshold, rule.ThresholdTime)
	assert.Nil(t, rule.Limit)
	assert.Equal(t, options.DefaultLogSavingRate, rule.Rate)
}

func TestDefaultRecordDecisions(t *testing.T) {
	opts := options.DefaultBuilder().Build()

	// Component syntax is off by default, so nothing parses or checks.
	assert.False(t, opts.ParseComponentSyntaxFlag())
	assert.False(t, opts.TypeCheckComponentSyntax("src/App.js"))

	// Profiling is off by default.
	assert.False(t, opts.ShouldProfile())

	// No rollouts are active.
	_, ok := opts.Rollout("new-inference")
	assert.False(t, ok)
}
