package render

import (
	"testing"

	"a11ytree/internal/a11y"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestStrictYAML_RoundTrip(t *testing.T) {
	props := a11y.NewProperties()
	props.Set("type", "checkbox")
	props.Set(a11y.KeyTagName, "input")
	props.Set(a11y.KeyChecked, false)
	input := &a11y.Element{TagName: "input", Props: props}

	formProps := a11y.NewProperties()
	formProps.Set("action", "/login: now")
	formProps.Set(a11y.KeyTagName, "form")
	form := &a11y.Element{
		TagName:  "form",
		Props:    formProps,
		Children: []a11y.Node{input, &a11y.Text{Content: "- remember me"}},
	}

	out, err := StrictYAML([]a11y.Node{form})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "element", doc["type"])
	assert.Equal(t, "form", doc["tagName"])
	assert.Equal(t, "/login: now", doc["action"])

	children, ok := doc["children"].([]any)
	require.True(t, ok)
	require.Len(t, children, 2)

	first := children[0].(map[string]any)
	assert.Equal(t, false, first["checked"])
	assert.Equal(t, "checkbox", first["type"], "атрибут type перекрывает тип узла")
	assert.NotContains(t, first, "children")

	second := children[1].(map[string]any)
	assert.Equal(t, "text", second["type"])
	assert.Equal(t, "- remember me", second["content"])
}

func TestStrictYAML_Forest(t *testing.T) {
	out, err := StrictYAML([]a11y.Node{&a11y.Text{Content: "a"}, &a11y.Text{Content: "b"}})
	require.NoError(t, err)

	var doc []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc, 2)
	assert.Equal(t, "b", doc[1]["content"])
}
