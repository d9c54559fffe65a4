// Package cli provides help text and usage formatting for the jstc CLI.
package cli

import (
	"github.com/spf13/cobra"
)

const helpTemplate = `jstc - Static type checker configuration inspector

USAGE
  jstc [flags]

FLAGS
  Checking Scope & Dialect:
    --all                                  Check all files, not just those with a pragma
    --casting-syntax <colon|as|both>       Type-cast dialect (default: both)
    --component-syntax <off|parsing|full>  Component syntax support (default: off)
    --component-syntax-includes <prefixes> Comma-separated path prefixes always type-checked
    --enums                                Enable enum declarations
    --include-suppressed                   Report errors even when suppressed

  Module Resolution:
    --module-system <node|haste>           Resolution strategy (default: node)
    --module-name-mapper PATTERN=TARGET    Module rewrite rule, first match wins (repeatable)
    --missing-module-generator PATTERN=GEN Stub generator for unresolvable modules (repeatable)
    --haste-name-reducer PATTERN=REDUCTION Haste name reduction rule (repeatable)

  JSX & React:
    --jsx <react|pragma>                   JSX desugaring mode (default: react)
    --jsx-pragma <expr>                    Pragma expression used with --jsx=pragma
    --react-runtime <automatic|classic>    JSX runtime flavor (default: classic)

  Saved State:
    --saved-state <none|local|scm|fetcher> Saved-state source (default: none)
    --saved-state-force-recheck            Recheck every file after a saved-state init
    --saved-state-no-fallback              Fail init instead of falling back to full init
    --saved-state-verify                   Verify loaded saved state against the file system

  Workers & Scheduling:
    --max-workers <int>                    Worker process count (default: CPU count)
    --merge-timeout <seconds>              Per-component merge timeout, 0 disables (default: 100)
    --lazy                                 Check only actively used files
    --wait-for-recheck                     Block queries on an in-flight recheck
    --distributed                          Distribute checking across remote workers

  Limits:
    --recursion-limit <int>                Checker recursion cap (default: 10000)
    --max-literal-length <int>             Literal-type length cap (default: 100)
    --traces <depth>                       Error trace depth, 0 disables (default: 0)

  Lints & Rollouts:
    --lint RULE=SEVERITY                   Lint override, severity off|warn|error (repeatable)
    --rollout NAME=VARIANT                 Rollout opt-in (repeatable)

  Paths:
    --root <path>                          Project root (default: .)
    --strip-root                           Strip the root prefix from reported paths
    --temp-dir <path>                      Scratch directory
    --config <path>                        Configuration input hashed into the record

  Output & Diagnostics:
    --debug                                Enable internal debug output
    -v, --verbose                          Enable verbose checker output
    -q, --quiet                            Suppress informational output (also disables profiling)
    --profile                              Produce profiling output (suppressed by --quiet)
    --log-file <path>                      Server log path

  Memory Tuning:
    --gc-space-overhead <pct>              Worker GC space/time tradeoff
    --sharedmem-heap-size <bytes>          Shared-memory heap size

  Help & Version:
    -h, --help                             Show this help text
    --version                              Show version, commit, build date

EXIT CODES
  0   Success              Configuration built and reported
  1   Error                Bad flag value, malformed pattern, unreadable input
  130 Interrupted          SIGINT or SIGTERM received

EXAMPLES
  # Show the fully defaulted configuration
  jstc

  # Haste resolution with a module rewrite
  jstc --module-system haste --module-name-mapper '^@app/(.*)$=src/$1'

  # Type-check component syntax only under src/widgets
  jstc --component-syntax parsing --component-syntax-includes src/widgets

  # Profiling is silenced by quiet mode
  jstc --profile --quiet

For more information, see: https://github.com/CodexForgeBR/jstc
`

// SetCustomHelp configures the cobra command to use our custom help template.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}
