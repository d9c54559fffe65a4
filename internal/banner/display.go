// Package banner provides colored banner display functions for the jstc CLI.
//
// All banner functions write formatted output to stdout with color-coded
// headers and separators. They render the effective configuration and the
// decisions derived from it.
package banner

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/CodexForgeBR/jstc/internal/options"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold).SprintFunc()
	onColor     = color.New(color.FgGreen).SprintFunc()
	offColor    = color.New(color.FgYellow).SprintFunc()
)

// PrintStartupBanner displays the startup banner with build and root info.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  jstc - Static type checker configuration
//	═══════════════════════════════════════════════════
//	  Version:  1.4.0
//	  Root:     /repo/www
//	  Config:   2cf24dba5fb0a30e
//	═══════════════════════════════════════════════════
func PrintStartupBanner(version string, opts *options.Options) {
	sep := headerColor("═══════════════════════════════════════════════════")
	fmt.Println(sep)
	fmt.Println(headerColor("  jstc - Static type checker configuration"))
	fmt.Println(sep)
	fmt.Printf("  Version:  %s\n", version)
	fmt.Printf("  Root:     %s\n", opts.RootPath())
	if sha := opts.SHAHash(); sha != "" {
		fmt.Printf("  Config:   %s\n", shortHash(sha))
	}
	fmt.Println(sep)
}

// PrintEffectiveConfig displays the resolved settings and the decisions
// derived from them.
//
// Example output:
//
//	──────────────────────────────────────────────────
//	  Module system:     haste
//	  JSX:               react (classic runtime)
//	  Casting syntax:    both
//	  Component syntax:  parsing (2 include prefixes)
//	  Saved state:       fetcher
//	  Workers:           8
//	  Lazy mode:         off
//	  Profiling:         suppressed by quiet mode
//	──────────────────────────────────────────────────
func PrintEffectiveConfig(opts *options.Options) {
	sep := strings.Repeat("─", 50)
	fmt.Println(sep)
	fmt.Printf("  Module system:     %s\n", opts.ModuleSystem())
	fmt.Printf("  JSX:               %s (%s runtime)\n", jsxSummary(opts), opts.ReactRuntime())
	fmt.Printf("  Casting syntax:    %s\n", opts.CastingSyntax())
	fmt.Printf("  Component syntax:  %s\n", componentSummary(opts))
	fmt.Printf("  Saved state:       %s\n", opts.SavedStateLoader())
	fmt.Printf("  Workers:           %d\n", opts.MaxWorkers())
	fmt.Printf("  Lazy mode:         %s\n", onOff(opts.LazyMode()))
	fmt.Printf("  Profiling:         %s\n", profilingSummary(opts))
	if n := len(opts.LintSeverities()); n > 0 {
		fmt.Printf("  Lint overrides:    %d\n", n)
	}
	if n := len(opts.EnabledRollouts()); n > 0 {
		fmt.Printf("  Active rollouts:   %d\n", n)
	}
	fmt.Println(sep)
}

func jsxSummary(opts *options.Options) string {
	if opts.JSXMode() == options.JSXModePragma {
		return fmt.Sprintf("pragma %q", opts.JSXPragma())
	}
	return opts.JSXMode().String()
}

func componentSummary(opts *options.Options) string {
	level := opts.ComponentSyntax().String()
	if n := len(opts.ComponentSyntaxIncludes()); n > 0 {
		return fmt.Sprintf("%s (%d include prefixes)", level, n)
	}
	return level
}

func profilingSummary(opts *options.Options) string {
	switch {
	case opts.ShouldProfile():
		return onColor("on")
	case opts.Profile() && opts.Quiet():
		return offColor("suppressed by quiet mode")
	default:
		return offColor("off")
	}
}

func onOff(v bool) string {
	if v {
		return onColor("on")
	}
	return offColor("off")
}

// shortHash abbreviates a config digest for display.
func shortHash(sha string) string {
	if len(sha) > 16 {
		return sha[:16]
	}
	return sha
}
