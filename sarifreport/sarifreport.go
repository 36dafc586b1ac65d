// Package sarifreport renders taint-flow results as a SARIF 2.1.0 log for
// `taint-check --format sarif` (SPEC_FULL.md §12 item 1). Adapted from the
// teacher's output.SARIFFormatter (sast-engine/output/sarif_formatter.go),
// which does the same thing for its dataflow detections.
package sarifreport

import (
	"encoding/json"
	"fmt"
	"io"

	sarif "github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/Oeditus/metastatic-sub006/analyzer/taint"
)

// Formatter writes taint.Result as a SARIF run.
type Formatter struct {
	writer io.Writer
	path   string
}

// NewFormatter creates a Formatter writing to w. path is the source file
// the analyzed document came from, used for every result's artifact URI.
func NewFormatter(w io.Writer, path string) *Formatter {
	return &Formatter{writer: w, path: path}
}

// Format writes result as an indented SARIF 2.1.0 JSON document.
func (f *Formatter) Format(result taint.Result) error {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return err
	}

	run := sarif.NewRunWithInformationURI("Metastatic", "https://github.com/Oeditus/metastatic-sub006")

	f.buildRules(result.Flows, run)
	for _, flow := range result.Flows {
		f.buildResult(flow, run)
	}

	report.AddRun(run)

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func (f *Formatter) buildRules(flows []taint.Flow, run *sarif.Run) {
	seen := make(map[string]bool)
	for _, flow := range flows {
		ruleID := ruleIDFor(flow.Risk)
		if seen[ruleID] {
			continue
		}
		seen[ruleID] = true

		run.AddRule(ruleID).
			WithDescription(fmt.Sprintf("Tainted data reaches a %s-risk sink without sanitization", flow.Risk)).
			WithName(ruleID).
			WithHelpURI("https://github.com/Oeditus/metastatic-sub006").
			WithDefaultConfiguration(sarif.NewReportingConfiguration().WithLevel(levelFor(flow.Risk)))
	}
}

func (f *Formatter) buildResult(flow taint.Flow, run *sarif.Run) {
	ruleID := ruleIDFor(flow.Risk)
	message := fmt.Sprintf("Taint flow from %q to %q (%s)", flow.Source, flow.Sink, flow.Risk)
	if flow.Recommendation != "" {
		message += ": " + flow.Recommendation
	}

	result := run.CreateResultForRule(ruleID).
		WithMessage(sarif.NewTextMessage(message))

	location := sarif.NewLocation().
		WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(f.path)),
		)
	result.AddLocation(location)
}

// ruleIDFor derives a SARIF ruleId from a taint.Risk, per SPEC_FULL.md §12
// item 1 ("ruleId derived from risk").
func ruleIDFor(risk taint.Risk) string {
	return "metastatic-taint-" + string(risk)
}

func levelFor(risk taint.Risk) string {
	switch risk {
	case taint.RiskCritical, taint.RiskHigh:
		return "error"
	case taint.RiskMedium:
		return "warning"
	default:
		return "note"
	}
}
