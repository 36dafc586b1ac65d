package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/Oeditus/metastatic-sub006/model"
)

func sampleTree() *model.Node {
	return model.New(model.TagBlock, model.Metadata{}, model.Variable("x", model.Metadata{}))
}

func newCapturingCmd(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	var buf bytes.Buffer
	c.SetOut(&buf)
	return c, &buf
}

func TestPrintInspectTreeIndentsByDepth(t *testing.T) {
	c, buf := newCapturingCmd(t)
	printInspectTree(c, sampleTree(), 0)
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "  "))
}

func TestPrintInspectTreeNilNode(t *testing.T) {
	c, buf := newCapturingCmd(t)
	printInspectTree(c, nil, 0)
	assert.Empty(t, buf.String())
}

func TestPrintInspectPlainListsEveryTag(t *testing.T) {
	c, buf := newCapturingCmd(t)
	printInspectPlain(c, sampleTree())
	out := buf.String()
	assert.Contains(t, out, string(model.TagBlock))
	assert.Contains(t, out, string(model.TagVariable))
}

func TestPrintVariablesListsEachName(t *testing.T) {
	c, buf := newCapturingCmd(t)
	printVariables(c, model.ValidationMeta{Variables: []string{"x", "y"}})
	out := buf.String()
	assert.Contains(t, out, "x")
	assert.Contains(t, out, "y")
}

func TestNodeToMapNilNode(t *testing.T) {
	assert.Nil(t, nodeToMap(nil))
}

func TestNodeToMapIncludesTagAndChildren(t *testing.T) {
	m := nodeToMap(sampleTree())
	assert.Equal(t, string(model.TagBlock), m["tag"])
	children, ok := m["children"].([]map[string]interface{})
	assert.True(t, ok)
	assert.Len(t, children, 1)
}

func TestPrintInspectJSONEmitsValidStructure(t *testing.T) {
	c, buf := newCapturingCmd(t)
	printInspectJSON(c, sampleTree(), model.ValidationMeta{Level: model.LevelExtended, Depth: 1, NodeCount: 2}, false)
	out := buf.String()
	assert.Contains(t, out, `"ast"`)
	assert.Contains(t, out, `"node_count"`)
	assert.NotContains(t, out, `"variables"`)
}
