package a11y

import (
	"testing"

	"a11ytree/internal/dom"

	"github.com/stretchr/testify/assert"
)

func TestIsSimpleContainer(t *testing.T) {
	tests := []struct {
		name string
		node dom.Node
		want bool
	}{
		{name: "nav", node: dom.El("nav"), want: false},
		{name: "article", node: dom.El("article"), want: false},
		{name: "header", node: dom.El("header"), want: false},
		{name: "li", node: dom.El("LI"), want: false},
		{name: "h3", node: dom.El("h3"), want: false},
		{name: "div with role", node: dom.El("div").Attr("role", "navigation"), want: false},
		{name: "span with aria-label", node: dom.El("span").Attr("aria-label", "Menu"), want: false},
		{name: "div with aria-hidden", node: dom.El("div").Attr("aria-hidden", "true"), want: false},
		{name: "div with data attribute", node: dom.El("div").Attr("data-id", "7"), want: false},
		{name: "div with empty title", node: dom.El("div").Attr("title", ""), want: false},
		{name: "div with direct text", node: dom.El("div", dom.Text("Direct content")), want: false},
		{
			name: "wrapper with class id style",
			node: dom.El("div").Attr("class", "wrapper").Attr("id", "container").Attr("style", "margin:0"),
			want: true,
		},
		{name: "bare span", node: dom.El("span", dom.El("b", dom.Text("x"))), want: true},
		{name: "text node", node: dom.Text("x"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSimpleContainer(tt.node))
		})
	}
}
