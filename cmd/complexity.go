package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	metastatic "github.com/Oeditus/metastatic-sub006/metastatic"
	"github.com/Oeditus/metastatic-sub006/analyzer/complexity"
	"github.com/Oeditus/metastatic-sub006/analytics"
)

var complexityCmd = &cobra.Command{
	Use:   "complexity <source-path>",
	Short: "Report cyclomatic/cognitive complexity and Halstead metrics",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")
		languageFlag, _ := cmd.Flags().GetString("language")

		path := args[0]
		source, err := os.ReadFile(path)
		if err != nil {
			exitUsage(err.Error())
		}

		e := newEngine()
		lang, ok := resolveLanguage(e, path, languageFlag)
		if !ok {
			exitUsage(fmt.Sprintf("could not detect source language for %s", path))
		}
		analytics.ReportEvent(analytics.ComplexityCommand, string(lang))

		doc, err := e.Quote(string(source), lang)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}

		raw, err := e.Analyze(doc, metastatic.AnalyzerComplexity, metastatic.AnalyzeOpts{ComplexityThresholds: cfg.Thresholds})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		result := raw.(complexity.Result)

		if format == "json" {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.Encode(result) //nolint:errcheck
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Cyclomatic: %d\n", result.Metrics.Cyclomatic)
			fmt.Fprintf(cmd.OutOrStdout(), "Cognitive: %d\n", result.Metrics.Cognitive)
			fmt.Fprintf(cmd.OutOrStdout(), "Max nesting: %d\n", result.Metrics.MaxNesting)
			fmt.Fprintf(cmd.OutOrStdout(), "Logical LOC: %d\n", result.Metrics.LogicalLOC)
			for _, f := range result.Findings {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", f.Level, f.Message)
			}
		}

		if len(result.Findings) > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(complexityCmd)
	complexityCmd.Flags().String("format", "text", "Output format: text, json")
	complexityCmd.Flags().String("language", "", "Override auto-detected language")
}
