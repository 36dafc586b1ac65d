package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	metastatic "github.com/Oeditus/metastatic-sub006/metastatic"
	"github.com/Oeditus/metastatic-sub006/analyzer/taint"
	"github.com/Oeditus/metastatic-sub006/analytics"
	"github.com/Oeditus/metastatic-sub006/sarifreport"
)

var taintCheckCmd = &cobra.Command{
	Use:   "taint-check <source-path>",
	Short: "Report taint flows from untrusted sources to dangerous sinks",
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
		analytics.ReportEvent(analytics.TaintCheckCommand, string(lang))

		doc, err := e.Quote(string(source), lang)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}

		raw, err := e.Analyze(doc, metastatic.AnalyzerTaint, metastatic.AnalyzeOpts{})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		result := raw.(taint.Result)

		switch format {
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.Encode(result) //nolint:errcheck
		case "sarif":
			f := sarifreport.NewFormatter(cmd.OutOrStdout(), path)
			if err := f.Format(result); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
		default:
			printTaintText(cmd, result)
		}

		if len(result.Flows) > 0 {
			os.Exit(1)
		}
	},
}

func printTaintText(cmd *cobra.Command, result taint.Result) {
	if len(result.Flows) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No taint flows found.")
		return
	}
	red := color.New(color.FgRed).SprintFunc()
	for _, flow := range result.Flows {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s -> %s (%s)\n", red(flow.Risk), flow.Source, flow.Sink, flow.Recommendation)
	}
}

func init() {
	rootCmd.AddCommand(taintCheckCmd)
	taintCheckCmd.Flags().String("format", "text", "Output format: text, json, sarif")
	taintCheckCmd.Flags().String("language", "", "Override auto-detected language")
}
