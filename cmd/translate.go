package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	metastatic "github.com/Oeditus/metastatic-sub006/metastatic"
	"github.com/Oeditus/metastatic-sub006/analytics"
	"github.com/Oeditus/metastatic-sub006/model"
	"github.com/Oeditus/metastatic-sub006/output"
)

var translateCmd = &cobra.Command{
	Use:   "translate <source-path>",
	Short: "Translate source from one supported language to another",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		outputPath, _ := cmd.Flags().GetString("output")
		log := loggerFromFlags(cmd)

		if to == "" {
			exitUsage("--to is required")
		}
		if !model.IsSupported(model.Language(to)) {
			exitUsage(fmt.Sprintf("unsupported target language %q", to))
		}

		path := args[0]
		info, err := os.Stat(path)
		if err != nil {
			exitUsage(err.Error())
		}

		e := newEngine()
		analytics.ReportEvent(analytics.TranslateCommand, to)

		if info.IsDir() {
			if outputPath == "" {
				exitUsage("--output is required when source-path is a directory")
			}
			log.Progress("translating directory %s -> %s (%s)", path, outputPath, to)
			if err := translateDir(e, path, outputPath, from, to, log); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		}

		stop := log.StartTiming("translate")
		translated, err := translateFile(e, path, from, to)
		stop()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		log.Debug("translated %s in %s", path, log.GetTiming("translate"))

		if outputPath != "" {
			if err := os.WriteFile(outputPath, []byte(translated), 0o644); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), translated)
	},
}

func translateFile(e *metastatic.Engine, path, from, to string) (string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	lang, ok := resolveLanguage(e, path, from)
	if !ok {
		return "", fmt.Errorf("could not detect source language for %s", path)
	}

	return e.Translate(string(source), lang, model.Language(to))
}

func translateDir(e *metastatic.Engine, root, outDir, from, to string, log *output.Logger) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		lang, ok := resolveLanguage(e, path, from)
		if !ok {
			log.Debug("skipping %s: unrecognized language", rel)
			return nil // unrecognized file, skip
		}

		log.Progress("translating %s", rel)
		translated, err := translateFile(e, path, string(lang), to)
		if err != nil {
			return err
		}

		destExt := extensionFor(model.Language(to))
		dest := filepath.Join(outDir, strings.TrimSuffix(rel, filepath.Ext(rel))+destExt)
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return err
		}
		return os.WriteFile(dest, []byte(translated), 0o644)
	})
}

func extensionFor(lang model.Language) string {
	switch lang {
	case model.Python:
		return ".py"
	case model.Elixir:
		return ".ex"
	case model.Erlang:
		return ".erl"
	case model.Ruby:
		return ".rb"
	case model.Haskell:
		return ".hs"
	default:
		return ""
	}
}

func init() {
	rootCmd.AddCommand(translateCmd)
	translateCmd.Flags().String("from", "", "Source language (auto-detected from extension if omitted)")
	translateCmd.Flags().String("to", "", "Target language (required)")
	translateCmd.Flags().StringP("output", "o", "", "Output path (required for directory sources)")
}
