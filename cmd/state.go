package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	metastatic "github.com/Oeditus/metastatic-sub006/metastatic"
	"github.com/Oeditus/metastatic-sub006/analyzer/state"
	"github.com/Oeditus/metastatic-sub006/analytics"
)

var stateCmd = &cobra.Command{
	Use:   "state <source-path>",
	Short: "Report state-management classification (stateless/immutable/controlled/uncontrolled/mixed)",
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
		analytics.ReportEvent(analytics.StateCommand, string(lang))

		doc, err := e.Quote(string(source), lang)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}

		raw, err := e.Analyze(doc, metastatic.AnalyzerStateManagement, metastatic.AnalyzeOpts{})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		result := raw.(state.Result)

		if format == "json" {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.Encode(result) //nolint:errcheck
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Classification: %s\n", result.Classification)
			fmt.Fprintf(cmd.OutOrStdout(), "Assessment: %s\n", result.Assessment)
			fmt.Fprintf(cmd.OutOrStdout(), "State variables: %d, mutations: %d\n", result.StateVariables, result.Mutations)
		}

		if result.Assessment == state.AssessmentPoor {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.Flags().String("format", "text", "Output format: text, json")
	stateCmd.Flags().String("language", "", "Override auto-detected language")
}
