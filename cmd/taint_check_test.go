package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/Oeditus/metastatic-sub006/analyzer/taint"
)

func TestPrintTaintTextNoFlows(t *testing.T) {
	c := &cobra.Command{Use: "test"}
	var buf bytes.Buffer
	c.SetOut(&buf)

	printTaintText(c, taint.Result{})
	assert.Contains(t, buf.String(), "No taint flows found.")
}

func TestPrintTaintTextListsEachFlow(t *testing.T) {
	c := &cobra.Command{Use: "test"}
	var buf bytes.Buffer
	c.SetOut(&buf)

	printTaintText(c, taint.Result{Flows: []taint.Flow{
		{Source: "request.params", Sink: "eval", Risk: taint.RiskCritical, Recommendation: "sanitize input"},
	}})
	out := buf.String()
	assert.Contains(t, out, "request.params")
	assert.Contains(t, out, "eval")
	assert.Contains(t, out, "sanitize input")
}
