package analyzer

import (
	"testing"

	"github.com/Oeditus/metastatic-sub006/model"
	"github.com/stretchr/testify/assert"
)

func TestWalkVisitsChildrenLeftToRight(t *testing.T) {
	tree := model.Block([]*model.Node{
		model.Variable("a", nil),
		model.Variable("b", nil),
		model.Variable("c", nil),
	}, nil)

	var order []string
	Walk(tree, nil, func(n *model.Node, ctx interface{}) interface{} {
		if n.Tag == model.TagVariable {
			name, _ := n.Metadata["name"].(string)
			order = append(order, name)
		}
		return ctx
	}, nil)

	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestWalkThreadsAccumulatorDepthFirst(t *testing.T) {
	inner := model.Conditional(model.Variable("b", nil), model.Literal(model.LiteralInteger, 1, nil), nil, nil)
	outer := model.Conditional(model.Variable("a", nil), inner, nil, nil)

	maxDepth := Walk(outer, 0, func(n *model.Node, ctx interface{}) interface{} {
		depth := ctx.(int)
		if n.Tag == model.TagConditional {
			depth++
		}
		return depth
	}, nil).(int)

	assert.Equal(t, 2, maxDepth)
}

func TestWalkHandlesNilNode(t *testing.T) {
	result := Walk(nil, 42, func(n *model.Node, ctx interface{}) interface{} { return 0 }, nil)
	assert.Equal(t, 42, result)
}

func TestWalkRunsEnterAndLeaveInOrder(t *testing.T) {
	tree := model.Block([]*model.Node{model.Variable("x", nil)}, nil)
	var events []string
	Walk(tree, nil,
		func(n *model.Node, ctx interface{}) interface{} { events = append(events, "enter:"+string(n.Tag)); return ctx },
		func(n *model.Node, ctx interface{}) interface{} { events = append(events, "leave:"+string(n.Tag)); return ctx },
	)
	assert.Equal(t, []string{"enter:block", "enter:variable", "leave:variable", "leave:block"}, events)
}
