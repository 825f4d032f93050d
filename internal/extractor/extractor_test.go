package extractor

import (
	"fmt"
	"strings"
	"testing"

	"a11ytree/internal/a11y"
	"a11ytree/internal/dom"
	"a11ytree/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func list(n int) *dom.Fixture {
	ul := dom.El("ul").Attr("role", "list")
	for i := 0; i < n; i++ {
		ul.Append(dom.El("li", dom.Text(fmt.Sprintf("Item %d", i+1))))
	}
	return ul
}

func TestExtract_TruncatesRepetitions(t *testing.T) {
	ex := New(DefaultConfig(), nil)

	res := ex.Extract(dom.Document(dom.El("body", list(10))))
	require.Len(t, res.Nodes, 1)

	ul := res.Nodes[0].(*a11y.Element)
	assert.Len(t, ul.Children, 7)
	assert.Contains(t, res.Text, "[... 6 more similar items omitted ...]")
	assert.Contains(t, res.Text, "Item 1")
	assert.Contains(t, res.Text, "Item 10")
	assert.NotContains(t, res.Text, "Item 5")
	assert.False(t, res.Truncated)
}

func TestExtract_WithoutTruncation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Truncate = false

	res := New(cfg, nil).Extract(list(10))
	assert.Len(t, res.Nodes[0].(*a11y.Element).Children, 10)
	assert.NotContains(t, res.Text, "omitted")
}

func TestExtract_CapsOutput(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	cfg := DefaultConfig()
	cfg.MaxChars = 20

	res := New(cfg, zap.New(core)).Extract(list(2))

	assert.True(t, res.Truncated)
	assert.True(t, strings.HasSuffix(res.Text, render.TruncatedMarker))
	assert.Equal(t, 20+len(render.TruncatedMarker), len([]rune(res.Text)))
	assert.Equal(t, 1, logs.FilterMessage("Текст дерева обрезан по лимиту").Len())
	assert.Equal(t, 1, logs.FilterField(zap.Bool("truncated", true)).Len())
}

func TestExtract_Sanitize(t *testing.T) {
	root := dom.El("form",
		dom.El("input").Attr("type", "password").WithForm(dom.FormState{Value: "hunter22"}),
		dom.El("p", dom.Text("Пишите на admin@example.com")),
	)

	plain := New(DefaultConfig(), nil).Extract(root)
	assert.Contains(t, plain.Text, "value: hunter22")

	cfg := DefaultConfig()
	cfg.Sanitize = true
	res := New(cfg, nil).Extract(root)

	assert.Contains(t, res.Text, "value: [FILTERED]")
	assert.Contains(t, res.Text, "[FILTERED_EMAIL]")
	assert.NotContains(t, res.Text, "hunter22")
	assert.NotContains(t, res.Text, "admin@example.com")
}

func TestExtract_Empty(t *testing.T) {
	res := New(DefaultConfig(), nil).Extract(dom.El("script", dom.Text("x")))
	assert.Empty(t, res.Nodes)
	assert.Equal(t, "", res.Text)
	assert.False(t, res.Truncated)
}

func TestYAML(t *testing.T) {
	out, err := New(DefaultConfig(), nil).YAML(dom.El("button", dom.Text("Go")).Attr("aria-label", "Go"))
	require.NoError(t, err)
	assert.Contains(t, out, "tagName: button")
	assert.Contains(t, out, "aria-label: Go")
}

func TestExtract_SanitizeKeepsAdjacentTextDistinct(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sanitize = true

	root := dom.El("p",
		dom.Text("alice@example.com"),
		dom.Comment("x"),
		dom.Text("bob@example.com"),
	)
	res := New(cfg, nil).Extract(root)
	require.Len(t, res.Nodes, 1)

	p := res.Nodes[0].(*a11y.Element)
	assert.Equal(t, []a11y.Node{&a11y.Text{Content: "[FILTERED_EMAIL]"}}, p.Children)

	var walk func(nodes []a11y.Node)
	walk = func(nodes []a11y.Node) {
		for i := 1; i < len(nodes); i++ {
			prev, ok1 := nodes[i-1].(*a11y.Text)
			cur, ok2 := nodes[i].(*a11y.Text)
			if ok1 && ok2 {
				assert.NotEqual(t, prev.Content, cur.Content)
			}
		}
		for _, n := range nodes {
			if el, ok := n.(*a11y.Element); ok {
				walk(el.Children)
			}
		}
	}
	walk(res.Nodes)
}
