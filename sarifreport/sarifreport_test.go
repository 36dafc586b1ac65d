package sarifreport

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oeditus/metastatic-sub006/analyzer/taint"
)

func TestFormatProducesValidSARIFEnvelope(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, "eval_input.py")

	result := taint.Result{
		Flows: []taint.Flow{
			{Source: "input", Sink: "eval", Risk: taint.RiskCritical, Recommendation: "do not eval untrusted input"},
		},
	}

	require.NoError(t, f.Format(result))

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "2.1.0", doc["version"])

	runs := doc["runs"].([]interface{})
	require.Len(t, runs, 1)
}

func TestRuleIDDerivedFromRisk(t *testing.T) {
	assert.Equal(t, "metastatic-taint-critical", ruleIDFor(taint.RiskCritical))
	assert.Equal(t, "metastatic-taint-low", ruleIDFor(taint.RiskLow))
}

func TestLevelForRiskMapping(t *testing.T) {
	assert.Equal(t, "error", levelFor(taint.RiskCritical))
	assert.Equal(t, "error", levelFor(taint.RiskHigh))
	assert.Equal(t, "warning", levelFor(taint.RiskMedium))
	assert.Equal(t, "note", levelFor(taint.RiskLow))
}

func TestFormatWithNoFlowsStillProducesValidReport(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, "clean.py")
	require.NoError(t, f.Format(taint.Result{}))
	assert.Contains(t, buf.String(), `"version": "2.1.0"`)
}
