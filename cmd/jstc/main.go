package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/jstc/internal/banner"
	"github.com/CodexForgeBR/jstc/internal/cli"
	"github.com/CodexForgeBR/jstc/internal/exitcode"
	"github.com/CodexForgeBR/jstc/internal/logging"
	"github.com/CodexForgeBR/jstc/internal/options"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	b := options.DefaultBuilder()

	var flags *cli.Flags
	rootCmd := &cobra.Command{
		Use:     "jstc",
		Short:   "Static type checker configuration inspector",
		Long:    "jstc resolves the type checker's configuration record from defaults and flags and reports the effective settings and derived decisions.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Convert token flags after parsing
			if err := cli.ApplyFlags(cmd, flags, b); err != nil {
				return err
			}
			return run(flags, b)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Bind all CLI flags to the builder
	flags = cli.BindFlags(rootCmd, b)

	// Set custom help template
	cli.SetCustomHelp(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.Error)
	}
}

func run(flags *cli.Flags, b *options.Builder) error {
	// Stamp the config hash before building. The file's bytes are
	// hashed opaquely; nothing at this layer parses its syntax.
	if flags.ConfigFile != "" {
		sha, err := options.HashFile(flags.ConfigFile)
		if err != nil {
			return fmt.Errorf("hash config: %w", err)
		}
		b.SHAHash = sha
	}

	// The record is built exactly once; everything downstream reads it
	// by reference.
	opts := b.Build()

	logging.SetVerbose(opts.Verbose())
	logging.SetQuiet(opts.Quiet())

	if !opts.Quiet() {
		banner.PrintStartupBanner(version, opts)
		banner.PrintEffectiveConfig(opts)
	}

	logging.Debug(fmt.Sprintf("temp dir: %s", opts.TempDir()))
	if timeout, ok := opts.MergeTimeout(); ok {
		logging.Debug(fmt.Sprintf("merge timeout: %s", logging.FormatDuration(timeout)))
	}
	logging.Success("configuration resolved")

	os.Exit(exitcode.Success)
	return nil // unreachable
}
