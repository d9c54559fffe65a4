package options_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/jstc/internal/options"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

// fullBuilder returns a Builder with an explicit, non-default value for
// every field, used to verify the record reads back exactly what was
// written.
func fullBuilder(t *testing.T) *options.Builder {
	t.Helper()

	b := options.DefaultBuilder()

	b.CheckAll = true
	b.CastingSyntax = options.CastingSyntaxAs
	b.ComponentSyntax = options.ComponentSyntaxParseOnly
	b.ComponentSyntaxIncludes = []string{"src/widgets", "lib/ui"}
	b.EnumsEnabled = true
	b.ExactByDefault = false
	b.EnforceStrictCallArity = false
	b.UseMixedInCatchVariables = true
	b.SuppressTypes = []string{"$FixMe", "$Ignore"}
	b.IncludeSuppressions = true

	b.ModuleSystem = options.ModuleSystemHaste
	b.ModuleNameMappers = mustCompile(t, [][2]string{{`^@app/(.*)$`, "src/$1"}})
	b.MissingModuleGenerators = mustCompile(t, [][2]string{{`\.png$`, "ImageStub"}})
	b.HasteNameReducers = mustCompile(t, [][2]string{{`^.*/([^/]+)\.js$`, "$1"}})
	b.HasteModuleRefPrefix = strPtr("m#")
	b.IgnoreNonLiteralRequires = true
	b.ModulesAreUseStrict = true
	b.NodeMainFields = []string{"module", "main"}
	b.NodePackageExportConditions = []string{"import", "require"}
	b.NodeResolverDirnames = []string{"node_modules", "vendor"}
	b.StrictES6ImportExport = true

	b.JSXMode = options.JSXModePragma
	b.JSXPragma = "h"
	b.ReactRuntime = options.ReactRuntimeAutomatic

	b.RelayIntegration = true
	b.RelayIntegrationESModules = true
	b.RelayIntegrationExcludes = mustCompile(t, [][2]string{{`__mocks__`, ""}})
	b.RelayIntegrationModulePrefix = strPtr("relay-artifacts/")
	b.RelayIntegrationModulePrefixIncludes = mustCompile(t, [][2]string{{`^src/`, ""}})

	b.SavedStateLoader = options.SavedStateFetcher
	b.SavedStateAllowReinit = true
	b.SavedStateForceRecheck = true
	b.SavedStateNoFallback = true
	b.SavedStateVerify = true
	b.SkipSavedStateVersionCheck = true

	b.MaxWorkers = 12
	b.MaxFilesCheckedPerWorker = 50
	b.MaxSecondsForCheckPerWorker = 2.5
	b.MaxRSSBytesForCheckPerWorker = 1 << 30
	b.MergeTimeout = intPtr(30)
	b.WaitForRecheck = true
	b.LazyMode = true
	b.Distributed = true
	b.EstimateRecheckTime = false

	b.RecursionLimit = 5000
	b.MaxHeaderTokens = 20
	b.MaxLiteralLength = 250
	b.MaxTraceDepth = 3

	b.BabelLooseArraySpread = true
	b.MungeUnderscores = true

	b.LintSeverities = map[string]options.Severity{
		"sketchy-null":   options.SeverityError,
		"unclear-type":   options.SeverityWarn,
		"untyped-import": options.SeverityOff,
	}
	b.StrictModeSeverities = map[string]options.Severity{
		"untyped-import": options.SeverityError,
	}
	b.LongLintSummary = true

	b.EnabledRollouts = map[string]string{"new-inference": "on", "fast-merge": "shadow"}

	b.RootPath = "/repo/www"
	b.StripRoot = true
	b.TempDir = "/tmp/jstc-test"
	b.SHAHash = "deadbeef"

	b.Debug = true
	b.Verbose = true
	b.Quiet = false
	b.Profile = true
	b.AutoImports = false
	b.LogFile = "/var/log/jstc.log"
	b.LogSaving = map[string]options.LogSavingRule{
		"recheck": {ThresholdTime: 5 * time.Second, Limit: intPtr(100), Rate: 50},
	}

	b.Format = options.FormatPreferences{BracketSpacing: false, SingleQuotes: true}

	b.GC = options.GCSettings{
		MinorHeapSize:      intPtr(1 << 20),
		MajorHeapIncrement: intPtr(15),
		SpaceOverhead:      intPtr(120),
		WindowSize:         intPtr(10),
		CustomHeapCap:      intPtr(1 << 31),
	}
	b.SharedMemHeapSize = 1 << 33
	b.SharedMemHashTablePow = 21

	return b
}

func TestBuildRoundTripsEveryField(t *testing.T) {
	opts := fullBuilder(t).Build()
	require.NotNil(t, opts)

	assert.True(t, opts.CheckAll())
	assert.Equal(t, options.CastingSyntaxAs, opts.CastingSyntax())
	assert.Equal(t, options.ComponentSyntaxParseOnly, opts.ComponentSyntax())
	assert.Equal(t, options.PathPrefixList{"src/widgets", "lib/ui"}, opts.ComponentSyntaxIncludes())
	assert.True(t, opts.EnumsEnabled())
	assert.False(t, opts.ExactByDefault())
	assert.False(t, opts.EnforceStrictCallArity())
	assert.True(t, opts.UseMixedInCatchVariables())
	assert.Equal(t, []string{"$FixMe", "$Ignore"}, opts.SuppressTypes())
	assert.True(t, opts.IncludeSuppressions())

	assert.Equal(t, options.ModuleSystemHaste, opts.ModuleSystem())
	mapped, ok := opts.MapModuleName("@app/Button")
	require.True(t, ok)
	assert.Equal(t, "src/$1", mapped)
	gen, ok := opts.GenerateMissingModule("logo.png")
	require.True(t, ok)
	assert.Equal(t, "ImageStub", gen)
	reduced, ok := opts.ReduceHasteName("a/b/Button.js")
	require.True(t, ok)
	assert.Equal(t, "$1", reduced)
	prefix, ok := opts.HasteModuleRefPrefix()
	require.True(t, ok)
	assert.Equal(t, "m#", prefix)
	assert.True(t, opts.IgnoreNonLiteralRequires())
	assert.True(t, opts.ModulesAreUseStrict())
	assert.Equal(t, []string{"module", "main"}, opts.NodeMainFields())
	conds, ok := opts.NodePackageExportConditions()
	require.True(t, ok)
	assert.Equal(t, []string{"import", "require"}, conds)
	assert.Equal(t, []string{"node_modules", "vendor"}, opts.NodeResolverDirnames())
	assert.True(t, opts.StrictES6ImportExport())

	assert.Equal(t, options.JSXModePragma, opts.JSXMode())
	assert.Equal(t, "h", opts.JSXPragma())
	assert.Equal(t, options.ReactRuntimeAutomatic, opts.ReactRuntime())

	assert.True(t, opts.RelayIntegration())
	assert.True(t, opts.RelayIntegrationESModules())
	assert.True(t, opts.RelayIntegrationExcludes().Matches("src/__mocks__/Query.js"))
	relayPrefix, ok := opts.RelayIntegrationModulePrefix()
	require.True(t, ok)
	assert.Equal(t, "relay-artifacts/", relayPrefix)
	assert.True(t, opts.RelayIntegrationModulePrefixIncludes().Matches("src/App.js"))

	assert.Equal(t, options.SavedStateFetcher, opts.SavedStateLoader())
	assert.True(t, opts.SavedStateAllowReinit())
	assert.True(t, opts.SavedStateForceRecheck())
	assert.True(t, opts.SavedStateNoFallback())
	assert.True(t, opts.SavedStateVerify())
	assert.True(t, opts.SkipSavedStateVersionCheck())

	assert.Equal(t, 12, opts.MaxWorkers())
	assert.Equal(t, 50, opts.MaxFilesCheckedPerWorker())
	assert.Equal(t, 2.5, opts.MaxSecondsForCheckPerWorker())
	assert.Equal(t, int64(1<<30), opts.MaxRSSBytesForCheckPerWorker())
	timeout, ok := opts.MergeTimeout()
	require.True(t, ok)
	assert.Equal(t, 30, timeout)
	assert.True(t, opts.WaitForRecheck())
	assert.True(t, opts.LazyMode())
	assert.True(t, opts.Distributed())
	assert.False(t, opts.EstimateRecheckTime())

	assert.Equal(t, 5000, opts.RecursionLimit())
	assert.Equal(t, 20, opts.MaxHeaderTokens())
	assert.Equal(t, 250, opts.MaxLiteralLength())
	assert.Equal(t, 3, opts.MaxTraceDepth())

	assert.True(t, opts.BabelLooseArraySpread())
	assert.True(t, opts.MungeUnderscores())

	sev, ok := opts.LintSeverity("sketchy-null")
	require.True(t, ok)
	assert.Equal(t, options.SeverityError, sev)
	sev, ok = opts.LintSeverity("unclear-type")
	require.True(t, ok)
	assert.Equal(t, options.SeverityWarn, sev)
	_, ok = opts.LintSeverity("no-such-rule")
	assert.False(t, ok)
	sev, ok = opts.StrictSeverity("untyped-import")
	require.True(t, ok)
	assert.Equal(t, options.SeverityError, sev)
	assert.True(t, opts.LongLintSummary())

	variant, ok := opts.Rollout("new-inference")
	require.True(t, ok)
	assert.Equal(t, "on", variant)
	variant, ok = opts.Rollout("fast-merge")
	require.True(t, ok)
	assert.Equal(t, "shadow", variant)

	assert.Equal(t, "/repo/www", opts.RootPath())
	assert.True(t, opts.StripRoot())
	assert.Equal(t, "/tmp/jstc-test", opts.TempDir())
	assert.Equal(t, "deadbeef", opts.SHAHash())

	assert.True(t, opts.Debug())
	assert.True(t, opts.Verbose())
	assert.False(t, opts.Quiet())
	assert.True(t, opts.Profile())
	assert.False(t, opts.AutoImports())
	assert.Equal(t, "/var/log/jstc.log", opts.LogFile())
	rule, ok := opts.LogSavingRuleFor("recheck")
	require.True(t, ok)
	assert.Equal(t, 5*time.Second, rule.ThresholdTime)
	require.NotNil(t, rule.Limit)
	assert.Equal(t, 100, *rule.Limit)
	assert.Equal(t, 50.0, rule.Rate)
	_, ok = opts.LogSavingRuleFor("merge")
	assert.False(t, ok)

	assert.False(t, opts.FormatBracketSpacing())
	assert.True(t, opts.FormatSingleQuotes())

	minor, ok := opts.GCMinorHeapSize()
	require.True(t, ok)
	assert.Equal(t, 1<<20, minor)
	incr, ok := opts.GCMajorHeapIncrement()
	require.True(t, ok)
	assert.Equal(t, 15, incr)
	overhead, ok := opts.GCSpaceOverhead()
	require.True(t, ok)
	assert.Equal(t, 120, overhead)
	window, ok := opts.GCWindowSize()
	require.True(t, ok)
	assert.Equal(t, 10, window)
	heapCap, ok := opts.GCCustomHeapCap()
	require.True(t, ok)
	assert.Equal(t, 1<<31, heapCap)
	assert.Equal(t, int64(1<<33), opts.SharedMemHeapSize())
	assert.Equal(t, 21, opts.SharedMemHashTablePow())
}

func TestBuildIsInsulatedFromLaterBuilderMutation(t *testing.T) {
	b := fullBuilder(t)
	opts := b.Build()

	// Mutate everything the record could have aliased.
	b.ComponentSyntaxIncludes[0] = "evil"
	b.SuppressTypes[0] = "evil"
	b.NodeMainFields[0] = "evil"
	b.LintSeverities["sketchy-null"] = options.SeverityOff
	b.EnabledRollouts["new-inference"] = "evil"
	*b.MergeTimeout = 9999
	*b.HasteModuleRefPrefix = "evil"
	*b.GC.MinorHeapSize = 0

	assert.Equal(t, options.PathPrefixList{"src/widgets", "lib/ui"}, opts.ComponentSyntaxIncludes())
	assert.Equal(t, []string{"$FixMe", "$Ignore"}, opts.SuppressTypes())
	assert.Equal(t, []string{"module", "main"}, opts.NodeMainFields())
	sev, ok := opts.LintSeverity("sketchy-null")
	require.True(t, ok)
	assert.Equal(t, options.SeverityError, sev)
	variant, ok := opts.Rollout("new-inference")
	require.True(t, ok)
	assert.Equal(t, "on", variant)
	timeout, ok := opts.MergeTimeout()
	require.True(t, ok)
	assert.Equal(t, 30, timeout)
	prefix, ok := opts.HasteModuleRefPrefix()
	require.True(t, ok)
	assert.Equal(t, "m#", prefix)
	minor, ok := opts.GCMinorHeapSize()
	require.True(t, ok)
	assert.Equal(t, 1<<20, minor)
}

func TestBuildTwiceProducesEquivalentRecords(t *testing.T) {
	b := fullBuilder(t)
	a, c := b.Build(), b.Build()

	// Workers reconstruct the record from the same builder input; both
	// copies must agree on every decision.
	assert.Equal(t, a.SHAHash(), c.SHAHash())
	assert.Equal(t, a.ShouldProfile(), c.ShouldProfile())
	assert.Equal(t, a.TypeCheckComponentSyntax("src/widgets/A.js"),
		c.TypeCheckComponentSyntax("src/widgets/A.js"))
	assert.Equal(t, a.MaxWorkers(), c.MaxWorkers())
}
