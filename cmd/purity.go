package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	metastatic "github.com/Oeditus/metastatic-sub006/metastatic"
	"github.com/Oeditus/metastatic-sub006/analyzer/purity"
	"github.com/Oeditus/metastatic-sub006/analytics"
)

var purityCmd = &cobra.Command{
	Use:   "purity <source-path>",
	Short: "Report whether source has observable side effects",
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
		analytics.ReportEvent(analytics.PurityCommand, string(lang))

		doc, err := e.Quote(string(source), lang)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}

		raw, err := e.Analyze(doc, metastatic.AnalyzerPurity, metastatic.AnalyzeOpts{})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		result := raw.(purity.Result)

		if format == "json" {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.Encode(result) //nolint:errcheck
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Pure: %v\n", result.Pure)
			effects := make([]string, 0, len(result.Effects))
			for _, eff := range result.Effects {
				effects = append(effects, string(eff))
			}
			sort.Strings(effects)
			if len(effects) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Effects: %v\n", effects)
			}
		}

		if !result.Pure {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(purityCmd)
	purityCmd.Flags().String("format", "text", "Output format: text, json")
	purityCmd.Flags().String("language", "", "Override auto-detected language")
}
