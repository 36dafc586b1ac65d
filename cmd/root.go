// Package cmd is Metastatic's CLI surface, built on spf13/cobra, mirroring
// the teacher's cmd/root.go plus one file per subcommand (SPEC_FULL.md
// §10.4). Every subcommand maps to exactly one metastatic.Engine call.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Oeditus/metastatic-sub006/adapter"
	"github.com/Oeditus/metastatic-sub006/adapter/lang/elixir"
	"github.com/Oeditus/metastatic-sub006/adapter/lang/erlang"
	"github.com/Oeditus/metastatic-sub006/adapter/lang/haskell"
	"github.com/Oeditus/metastatic-sub006/adapter/lang/python"
	"github.com/Oeditus/metastatic-sub006/adapter/lang/ruby"
	"github.com/Oeditus/metastatic-sub006/analytics"
	"github.com/Oeditus/metastatic-sub006/config"
	metastatic "github.com/Oeditus/metastatic-sub006/metastatic"
	"github.com/Oeditus/metastatic-sub006/model"
	"github.com/Oeditus/metastatic-sub006/output"
	"github.com/Oeditus/metastatic-sub006/semantic"
	"github.com/Oeditus/metastatic-sub006/supplemental"
)

// cfg resolves once at startup from envFile/env vars (spec SPEC_FULL.md
// §10.3); CLI flags that name the same tunable override it per-command.
var cfg = config.Load()

var rootCmd = &cobra.Command{
	Use:   "metastatic",
	Short: "Metastatic - a cross-language static analysis engine",
	Long:  `Metastatic parses, translates, and analyzes source code across Python, Elixir, Erlang, Ruby and Haskell through a shared intermediate representation.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		disableMetrics := cfg.DisableMetrics
		if cmd.Flags().Changed("disable-metrics") {
			disableMetrics, _ = cmd.Flags().GetBool("disable-metrics") //nolint:all
		}
		analytics.LoadEnvFile()
		analytics.Init(disableMetrics)
	},
}

// Execute runs the CLI, returning cobra's error (nil on success).
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("disable-metrics", false, "Disable metrics collection")
	rootCmd.PersistentFlags().Bool("verbose", false, "Print pipeline progress to stderr")
	rootCmd.PersistentFlags().Bool("debug", false, "Print timed debug diagnostics to stderr")
}

// loggerFromFlags builds an output.Logger at the verbosity cmd's
// persistent --verbose/--debug flags select.
func loggerFromFlags(cmd *cobra.Command) *output.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	verbose, _ := cmd.Flags().GetBool("verbose")
	switch {
	case debug:
		return output.NewLogger(output.VerbosityDebug)
	case verbose:
		return output.NewLogger(output.VerbosityVerbose)
	default:
		return output.NewLogger(output.VerbosityDefault)
	}
}

// newEngine wires an Engine with every supported adapter and the default
// semantic pattern registry (spec §6.1, §4.4).
func newEngine() *metastatic.Engine {
	adapters := adapter.NewRegistry()
	adapters.Register(python.New())  //nolint:errcheck
	adapters.Register(elixir.New())  //nolint:errcheck
	adapters.Register(erlang.New())  //nolint:errcheck
	adapters.Register(ruby.New())    //nolint:errcheck
	adapters.Register(haskell.New()) //nolint:errcheck

	e := metastatic.NewEngine(adapters, semantic.NewDefaultRegistry())
	return e.WithSupplementals(supplemental.NewDefaultRegistry())
}

// resolveLanguage returns the --language override if set, otherwise
// auto-detects from path's extension (spec §6.2).
func resolveLanguage(e *metastatic.Engine, path, override string) (model.Language, bool) {
	if override != "" {
		return model.Language(override), model.IsSupported(model.Language(override))
	}
	return e.DetectLanguage(path)
}

// exitUsage writes msg to stderr and returns the usage/IO exit code (2)
// every command in spec §6.2's table shares.
func exitUsage(msg string) {
	os.Stderr.WriteString(msg + "\n")
	os.Exit(2)
}
