package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Oeditus/metastatic-sub006/analytics"
	"github.com/Oeditus/metastatic-sub006/model"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <source-path>",
	Short: "Parse source and print its MetaAST",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")
		languageFlag, _ := cmd.Flags().GetString("language")
		layer, _ := cmd.Flags().GetString("layer")
		showVariables, _ := cmd.Flags().GetBool("variables")

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
		analytics.ReportEvent(analytics.InspectCommand, string(lang))

		doc, err := e.Quote(string(source), lang)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}

		mode := cfg.DefaultMode
		if cmd.Flags().Changed("layer") {
			switch layer {
			case "core":
				mode = model.Strict
			case "extended":
				mode = model.Standard
			case "native":
				mode = model.Permissive
			}
		}
		meta, err := model.Validate(doc, mode)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}

		switch format {
		case "json":
			printInspectJSON(cmd, doc.AST, meta, showVariables)
		case "plain":
			printInspectPlain(cmd, doc.AST)
		default:
			printInspectTree(cmd, doc.AST, 0)
			if showVariables {
				printVariables(cmd, meta)
			}
		}
	},
}

func printInspectTree(cmd *cobra.Command, n *model.Node, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	tag := color.New(color.FgCyan).Sprint(n.Tag)
	fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", indent, tag)
	for _, c := range n.Children {
		printInspectTree(cmd, c, depth+1)
	}
}

func printInspectPlain(cmd *cobra.Command, n *model.Node) {
	if n == nil {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), n.Tag)
	for _, c := range n.Children {
		printInspectPlain(cmd, c)
	}
}

func printInspectJSON(cmd *cobra.Command, n *model.Node, meta model.ValidationMeta, showVariables bool) {
	out := map[string]interface{}{
		"ast":        nodeToMap(n),
		"level":      meta.Level,
		"depth":      meta.Depth,
		"node_count": meta.NodeCount,
	}
	if showVariables {
		out["variables"] = meta.Variables
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.Encode(out) //nolint:errcheck
}

func printVariables(cmd *cobra.Command, meta model.ValidationMeta) {
	fmt.Fprintln(cmd.OutOrStdout(), "\nVariables:")
	for _, v := range meta.Variables {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", v)
	}
}

func nodeToMap(n *model.Node) map[string]interface{} {
	if n == nil {
		return nil
	}
	children := make([]map[string]interface{}, 0, len(n.Children))
	for _, c := range n.Children {
		children = append(children, nodeToMap(c))
	}
	return map[string]interface{}{
		"tag":      n.Tag,
		"metadata": n.Metadata,
		"children": children,
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().String("format", "tree", "Output format: tree, json, plain")
	inspectCmd.Flags().String("layer", "extended", "Validation layer: core, extended, native")
	inspectCmd.Flags().Bool("variables", false, "Show extracted variable names")
	inspectCmd.Flags().String("language", "", "Override auto-detected language")
}
