package a11y

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(tag, content string) *Element {
	props := NewProperties()
	props.Set(KeyTagName, tag)
	return &Element{TagName: tag, Props: props, Children: []Node{&Text{Content: content}}}
}

func listItems(n int) []Node {
	nodes := make([]Node, n)
	for i := range nodes {
		nodes[i] = item("li", fmt.Sprintf("Item %d", i))
	}
	return nodes
}

func TestFindPattern(t *testing.T) {
	tests := []struct {
		name  string
		nodes []Node
		want  Pattern
		found bool
	}{
		{name: "too few", nodes: listItems(3), found: false},
		{name: "ten items", nodes: listItems(10), want: Pattern{Length: 1, Repetitions: 10}, found: true},
		{
			name:  "texts",
			nodes: []Node{&Text{"a"}, &Text{"b"}, &Text{"c"}, &Text{"d"}, &Text{"e"}},
			want:  Pattern{Length: 1, Repetitions: 5},
			found: true,
		},
		{
			name: "pairs",
			nodes: []Node{
				item("dt", "a"), item("dd", "1"),
				item("dt", "b"), item("dd", "2"),
				item("dt", "c"), item("dd", "3"),
			},
			want:  Pattern{Length: 2, Repetitions: 3},
			found: true,
		},
		{
			name: "partial trailing chunk rejects period",
			nodes: []Node{
				item("dt", "a"), item("dd", "1"),
				item("dt", "b"), item("dd", "2"),
				item("dt", "c"), item("dd", "3"),
				item("dt", "d"), item("dd", "4"),
				item("dt", "e"),
			},
			found: false,
		},
		{
			name:  "trailing odd sibling",
			nodes: append(listItems(12), item("p", "footer")),
			found: false,
		},
		{
			name:  "no repetition",
			nodes: []Node{item("h1", "a"), item("p", "b"), item("ul", "c"), &Text{"d"}},
			found: false,
		},
		{
			name: "alternating child counts",
			nodes: []Node{
				item("li", "a"),
				&Element{TagName: "li", Props: NewProperties()},
				item("li", "c"),
				&Element{TagName: "li", Props: NewProperties()},
				item("li", "e"),
			},
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindPattern(tt.nodes)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTruncate_TenItems(t *testing.T) {
	nodes := listItems(10)

	out := Truncate(nodes)

	require.Len(t, out, 7)
	assert.Equal(t, nodes[:3], out[:3])
	assert.Equal(t, &Text{Content: "[... 6 more similar items omitted ...]"}, out[3])
	assert.Equal(t, nodes[7:], out[4:])
	assert.Len(t, nodes, 10)
}

func TestTruncate_Groups(t *testing.T) {
	var nodes []Node
	for i := 0; i < 5; i++ {
		nodes = append(nodes, item("h3", fmt.Sprint(i)), item("p", fmt.Sprint(i)))
	}

	out := Truncate(nodes)

	require.Len(t, out, 9)
	assert.Equal(t, &Text{Content: "[... 1 more similar groups omitted ...]"}, out[6])
	assert.Equal(t, nodes[8:], out[7:])
}

func TestTruncate_ThreeRepetitionsUntouched(t *testing.T) {
	nodes := []Node{
		item("dt", "a"), item("dd", "1"),
		item("dt", "b"), item("dd", "2"),
		item("dt", "c"), item("dd", "3"),
	}

	assert.Equal(t, nodes, Truncate(nodes))
}

func TestTruncate_DiverseUntouched(t *testing.T) {
	nodes := []Node{item("div", "First"), item("span", "Second"), item("p", "Third")}

	assert.Equal(t, nodes, Truncate(nodes))
}

func TestTruncate_NestedBottomUp(t *testing.T) {
	ul := &Element{TagName: "ul", Props: NewProperties(), Children: listItems(10)}
	root := &Element{
		TagName:  "main",
		Props:    NewProperties(),
		Children: []Node{item("h1", "Title"), ul},
	}

	out := Truncate([]Node{root})

	require.Len(t, out, 1)
	main := out[0].(*Element)
	require.Len(t, main.Children, 2)
	assert.Len(t, main.Children[1].(*Element).Children, 7)
	// исходное дерево не изменилось
	assert.Len(t, ul.Children, 10)
}

func TestTruncate_TrailingOddSiblingUntouched(t *testing.T) {
	nodes := append(listItems(12), item("p", "footer"))

	out := Truncate(nodes)

	assert.Equal(t, nodes, out)
	for _, n := range out {
		if text, ok := n.(*Text); ok {
			assert.NotContains(t, text.Content, "omitted")
		}
	}
}

func TestTruncate_Nil(t *testing.T) {
	assert.Nil(t, Truncate(nil))
}
