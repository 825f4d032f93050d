package render

import (
	"bytes"
	"fmt"

	"a11ytree/internal/a11y"

	"gopkg.in/yaml.v3"
)

// StrictYAML выгружает дерево валидным YAML с отсортированными ключами.
// В отличие от Serialize, сохраняет false-значения и экранирует строки.
func StrictYAML(nodes []a11y.Node) (string, error) {
	var doc any
	switch len(nodes) {
	case 0:
		doc = nil
	case 1:
		doc = plain(nodes[0])
	default:
		doc = plainList(nodes)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("close yaml encoder: %w", err)
	}
	return buf.String(), nil
}

func plainList(nodes []a11y.Node) []any {
	items := make([]any, len(nodes))
	for i, n := range nodes {
		items[i] = plain(n)
	}
	return items
}

func plain(n a11y.Node) map[string]any {
	switch v := n.(type) {
	case *a11y.Text:
		return map[string]any{"type": a11y.TypeText, "content": v.Content}
	case *a11y.Element:
		m := map[string]any{"type": a11y.TypeElement}
		for _, p := range v.Props.Entries() {
			m[p.Key] = p.Value
		}
		m[a11y.KeyTagName] = v.TagName
		if len(v.Children) > 0 {
			m["children"] = plainList(v.Children)
		}
		return m
	default:
		return nil
	}
}
