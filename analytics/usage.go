// Package analytics reports anonymous CLI usage events, adapted from the
// teacher's analytics.Init/LoadEnvFile. Events carry only the command name
// and language tag, never source text (SPEC_FULL.md §10.5).
package analytics

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/posthog/posthog-go"
)

const (
	TranslateCommand   = "executed_translate_command"
	InspectCommand     = "executed_inspect_command"
	TaintCheckCommand  = "executed_taint_check_command"
	ComplexityCommand  = "executed_complexity_command"
	PurityCommand      = "executed_purity_command"
	StateCommand       = "executed_state_command"
	VersionCommand     = "executed_version_command"
	ErrorProcessingRun = "error_processing_run"
)

var (
	PublicKey     string
	enableMetrics bool
)

// Init enables or disables event reporting for the remainder of the
// process, mirroring the teacher's --disable-metrics flag handling.
func Init(disableMetrics bool) {
	enableMetrics = !disableMetrics
}

func createEnvFile() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Println("Error getting user home directory:", err)
		return
	}
	envFile := filepath.Join(homeDir, ".metastatic", ".env")
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(envFile), os.ModePerm); err != nil {
			fmt.Println("Error creating directory:", err)
			return
		}
		env := map[string]string{
			"uuid": uuid.New().String(),
		}
		if err := godotenv.Write(env, envFile); err != nil {
			fmt.Println("Error writing to .env file:", err)
		}
	}
}

// LoadEnvFile ensures the anonymous install id exists and loads it into
// the process environment, called from cmd's PersistentPreRun.
func LoadEnvFile() {
	createEnvFile()
	envFile := filepath.Join(os.Getenv("HOME"), ".metastatic", ".env")
	if err := godotenv.Load(envFile); err != nil {
		return
	}
}

// ReportEvent fires event with the given language tag as a property, if
// metrics are enabled and a PublicKey has been set. language may be empty
// (e.g. the version command). No source text or file path ever reaches
// this function — callers pass only the command name and language tag.
func ReportEvent(event, language string) {
	if !enableMetrics || PublicKey == "" {
		return
	}
	client, err := posthog.NewWithConfig(
		PublicKey,
		posthog.Config{
			Endpoint: "https://us.i.posthog.com",
		},
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer client.Close()

	properties := posthog.NewProperties()
	properties.Set("go_version", runtime.Version())
	if language != "" {
		properties.Set("language", language)
	}

	if err := client.Enqueue(posthog.Capture{
		DistinctId: os.Getenv("uuid"),
		Event:      event,
		Properties: properties,
	}); err != nil {
		fmt.Println(err)
	}
}
