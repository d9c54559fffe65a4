// Package cli provides flag binding for the jstc CLI.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/jstc/internal/options"
)

// Flags holds raw flag values that cannot bind directly into Builder
// fields: enum tokens, pattern pairs and keyed entries arrive as strings
// and are converted by ApplyFlags after parsing.
type Flags struct {
	// Enum tokens.
	ModuleSystem     string
	JSXMode          string
	ReactRuntime     string
	ComponentSyntax  string
	CastingSyntax    string
	SavedStateLoader string

	// Ordered PATTERN=VALUE pairs.
	ModuleNameMappers       []string
	MissingModuleGenerators []string
	HasteNameReducers       []string

	// RULE=SEVERITY and NAME=VARIANT entries.
	Lints    []string
	Rollouts []string

	// Pointer-backed knobs, applied only when explicitly set.
	MergeTimeout    int
	GCSpaceOverhead int

	// CLI-only: configuration input to hash into the record.
	ConfigFile string
}

// BindFlags registers all CLI flags on the given cobra command. Scalar
// flags write directly into the provided builder and default to its
// current values so help shows the real defaults; the returned Flags
// carries everything that needs token parsing. Call ApplyFlags after
// cmd parses.
func BindFlags(cmd *cobra.Command, b *options.Builder) *Flags {
	f := &Flags{}
	flags := cmd.Flags()

	// Checking scope and dialect.
	flags.BoolVar(&b.CheckAll, "all", b.CheckAll, "Check all files, not just those with a pragma")
	flags.StringVar(&f.CastingSyntax, "casting-syntax", b.CastingSyntax.String(), "Type-cast dialect: colon, as or both")
	flags.StringVar(&f.ComponentSyntax, "component-syntax", b.ComponentSyntax.String(), "Component syntax support: off, parsing or full")
	flags.StringSliceVar(&b.ComponentSyntaxIncludes, "component-syntax-includes", nil, "Path prefixes where component syntax is always type-checked")
	flags.BoolVar(&b.EnumsEnabled, "enums", b.EnumsEnabled, "Enable enum declarations")
	flags.BoolVar(&b.IncludeSuppressions, "include-suppressed", b.IncludeSuppressions, "Report errors even when suppressed")

	// Module resolution.
	flags.StringVar(&f.ModuleSystem, "module-system", b.ModuleSystem.String(), "Module resolution strategy: node or haste")
	flags.StringArrayVar(&f.ModuleNameMappers, "module-name-mapper", nil, "PATTERN=TARGET module rewrite, first match wins (repeatable)")
	flags.StringArrayVar(&f.MissingModuleGenerators, "missing-module-generator", nil, "PATTERN=GENERATOR for unresolvable modules (repeatable)")
	flags.StringArrayVar(&f.HasteNameReducers, "haste-name-reducer", nil, "PATTERN=REDUCTION for Haste names (repeatable)")

	// JSX and React.
	flags.StringVar(&f.JSXMode, "jsx", b.JSXMode.String(), "JSX desugaring: react or pragma")
	flags.StringVar(&b.JSXPragma, "jsx-pragma", b.JSXPragma, "Pragma expression used with --jsx=pragma")
	flags.StringVar(&f.ReactRuntime, "react-runtime", b.ReactRuntime.String(), "JSX runtime flavor: automatic or classic")

	// Saved state.
	flags.StringVar(&f.SavedStateLoader, "saved-state", b.SavedStateLoader.String(), "Saved-state source: none, local, scm or fetcher")
	flags.BoolVar(&b.SavedStateForceRecheck, "saved-state-force-recheck", b.SavedStateForceRecheck, "Recheck every file after a saved-state init")
	flags.BoolVar(&b.SavedStateNoFallback, "saved-state-no-fallback", b.SavedStateNoFallback, "Fail init instead of falling back to a full init")
	flags.BoolVar(&b.SavedStateVerify, "saved-state-verify", b.SavedStateVerify, "Verify loaded saved state against the file system")

	// Workers and scheduling.
	flags.IntVar(&b.MaxWorkers, "max-workers", b.MaxWorkers, "Worker process count")
	flags.IntVar(&f.MergeTimeout, "merge-timeout", options.DefaultMergeTimeout, "Per-component merge timeout in seconds, 0 disables")
	flags.BoolVar(&b.LazyMode, "lazy", b.LazyMode, "Check only actively used files")
	flags.BoolVar(&b.WaitForRecheck, "wait-for-recheck", b.WaitForRecheck, "Block queries on an in-flight recheck")
	flags.BoolVar(&b.Distributed, "distributed", b.Distributed, "Distribute checking across remote workers")

	// Parser limits.
	flags.IntVar(&b.RecursionLimit, "recursion-limit", b.RecursionLimit, "Checker recursion cap")
	flags.IntVar(&b.MaxLiteralLength, "max-literal-length", b.MaxLiteralLength, "Literal-type length cap")
	flags.IntVar(&b.MaxTraceDepth, "traces", b.MaxTraceDepth, "Error trace depth, 0 disables traces")

	// Transform toggles.
	flags.BoolVar(&b.MungeUnderscores, "munge-underscore-members", b.MungeUnderscores, "Treat underscore-prefixed class members as private")

	// Lints and rollouts.
	flags.StringArrayVar(&f.Lints, "lint", nil, "RULE=SEVERITY lint override (repeatable)")
	flags.StringArrayVar(&f.Rollouts, "rollout", nil, "NAME=VARIANT rollout opt-in (repeatable)")

	// Paths and identity.
	flags.StringVar(&b.RootPath, "root", b.RootPath, "Project root")
	flags.BoolVar(&b.StripRoot, "strip-root", b.StripRoot, "Strip the root prefix from reported paths")
	flags.StringVar(&b.TempDir, "temp-dir", b.TempDir, "Scratch directory")
	flags.StringVar(&f.ConfigFile, "config", "", "Configuration input whose bytes are hashed into the record")

	// Output and diagnostics.
	flags.BoolVar(&b.Debug, "debug", b.Debug, "Enable internal debug output")
	flags.BoolVarP(&b.Verbose, "verbose", "v", b.Verbose, "Enable verbose checker output")
	flags.BoolVarP(&b.Quiet, "quiet", "q", b.Quiet, "Suppress informational output (also disables profiling)")
	flags.BoolVar(&b.Profile, "profile", b.Profile, "Produce profiling output (suppressed by --quiet)")
	flags.StringVar(&b.LogFile, "log-file", b.LogFile, "Server log path")

	// Worker memory tuning.
	flags.IntVar(&f.GCSpaceOverhead, "gc-space-overhead", 0, "Worker GC space/time tradeoff percentage")
	flags.Int64Var(&b.SharedMemHeapSize, "sharedmem-heap-size", b.SharedMemHeapSize, "Shared-memory heap size in bytes")

	return f
}

// ApplyFlags converts the token-valued flags into builder fields. Must
// be called after cmd.Execute() or cmd.ParseFlags(). Only token parsing
// happens here; combination validation is deliberately absent — the
// record accepts whatever well-formed values it is given.
func ApplyFlags(cmd *cobra.Command, f *Flags, b *options.Builder) error {
	var err error

	if b.ModuleSystem, err = options.ParseModuleSystem(f.ModuleSystem); err != nil {
		return fmt.Errorf("--module-system: %w", err)
	}
	if b.JSXMode, err = options.ParseJSXMode(f.JSXMode); err != nil {
		return fmt.Errorf("--jsx: %w", err)
	}
	if b.ReactRuntime, err = options.ParseReactRuntime(f.ReactRuntime); err != nil {
		return fmt.Errorf("--react-runtime: %w", err)
	}
	if b.ComponentSyntax, err = options.ParseComponentSyntax(f.ComponentSyntax); err != nil {
		return fmt.Errorf("--component-syntax: %w", err)
	}
	if b.CastingSyntax, err = options.ParseCastingSyntax(f.CastingSyntax); err != nil {
		return fmt.Errorf("--casting-syntax: %w", err)
	}
	if b.SavedStateLoader, err = options.ParseSavedStateLoader(f.SavedStateLoader); err != nil {
		return fmt.Errorf("--saved-state: %w", err)
	}

	if b.ModuleNameMappers, err = compilePairs(f.ModuleNameMappers); err != nil {
		return fmt.Errorf("--module-name-mapper: %w", err)
	}
	if b.MissingModuleGenerators, err = compilePairs(f.MissingModuleGenerators); err != nil {
		return fmt.Errorf("--missing-module-generator: %w", err)
	}
	if b.HasteNameReducers, err = compilePairs(f.HasteNameReducers); err != nil {
		return fmt.Errorf("--haste-name-reducer: %w", err)
	}

	for _, entry := range f.Lints {
		rule, token, err := splitEntry(entry)
		if err != nil {
			return fmt.Errorf("--lint: %w", err)
		}
		sev, err := options.ParseSeverity(token)
		if err != nil {
			return fmt.Errorf("--lint %s: %w", rule, err)
		}
		if b.LintSeverities == nil {
			b.LintSeverities = make(map[string]options.Severity)
		}
		b.LintSeverities[rule] = sev
	}

	for _, entry := range f.Rollouts {
		name, variant, err := splitEntry(entry)
		if err != nil {
			return fmt.Errorf("--rollout: %w", err)
		}
		if b.EnabledRollouts == nil {
			b.EnabledRollouts = make(map[string]string)
		}
		b.EnabledRollouts[name] = variant
	}

	// Pointer-backed knobs: only an explicitly set flag replaces the
	// default, and zero means "absent".
	if cmd.Flags().Changed("merge-timeout") {
		if f.MergeTimeout <= 0 {
			b.MergeTimeout = nil
		} else {
			v := f.MergeTimeout
			b.MergeTimeout = &v
		}
	}
	if cmd.Flags().Changed("gc-space-overhead") {
		v := f.GCSpaceOverhead
		b.GC.SpaceOverhead = &v
	}

	return nil
}

// compilePairs converts repeated "PATTERN=VALUE" flag entries into an
// ordered PatternList.
func compilePairs(entries []string) (options.PatternList, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	pairs := make([][2]string, 0, len(entries))
	for _, entry := range entries {
		pattern, value, err := splitEntry(entry)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, [2]string{pattern, value})
	}
	return options.CompilePatterns(pairs)
}

// splitEntry splits a KEY=VALUE flag entry on the first '='.
func splitEntry(entry string) (string, string, error) {
	idx := strings.Index(entry, "=")
	if idx <= 0 {
		return "", "", fmt.Errorf("expected KEY=VALUE, got %q", entry)
	}
	return entry[:idx], entry[idx+1:], nil
}
