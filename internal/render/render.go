// Package render превращает дерево доступности в компактный текст для промпта.
// Формат похож на YAML, но без кавычек и экранирования: это не валидный YAML.
package render

import (
	"fmt"
	"sort"
	"strings"

	"a11ytree/internal/a11y"
)

// Entry: пара ключ/значение упорядоченного отображения.
type Entry struct {
	Key   string
	Value any
}

// Map: отображение, которое рендерится в порядке записей.
type Map []Entry

// Serialize рендерит значение с отступом 0.
func Serialize(v any) string {
	return serialize(normalize(v), 0)
}

func serialize(v any, indent int) string {
	if v == nil {
		return ""
	}
	spaces := strings.Repeat(" ", indent)

	switch val := v.(type) {
	case []any:
		if len(val) == 0 {
			return "[]"
		}
		lines := make([]string, len(val))
		for i, item := range val {
			lines[i] = spaces + "- " + strings.TrimLeft(serialize(item, indent+2), " ")
		}
		return strings.Join(lines, "\n")

	case Map:
		var lines []string
		for _, e := range val {
			if omitted(e.Value) {
				continue
			}
			if nested(e.Value) {
				lines = append(lines, spaces+e.Key+":\n"+serialize(e.Value, indent+2))
				continue
			}
			lines = append(lines, spaces+e.Key+": "+serialize(e.Value, indent+2))
		}
		if len(lines) == 0 {
			return "{}"
		}
		return strings.Join(lines, "\n")

	default:
		return fmt.Sprint(val)
	}
}

func omitted(v any) bool {
	if v == nil {
		return true
	}
	b, ok := v.(bool)
	return ok && !b
}

// nested сообщает, что значение рендерится блоком на следующих строках.
func nested(v any) bool {
	switch val := v.(type) {
	case []any:
		return len(val) > 0
	case Map:
		for _, e := range val {
			if !omitted(e.Value) {
				return true
			}
		}
	}
	return false
}

// normalize приводит дерево и стандартные коллекции к []any, Map и скалярам.
func normalize(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case a11y.Node:
		return nodeValue(val)
	case []a11y.Node:
		items := make([]any, len(val))
		for i, n := range val {
			items[i] = nodeValue(n)
		}
		return items
	case *a11y.Properties:
		if val == nil {
			return nil
		}
		m := make(Map, 0, val.Len())
		for _, p := range val.Entries() {
			m = append(m, Entry{Key: p.Key, Value: normalize(p.Value)})
		}
		return m
	case Map:
		m := make(Map, len(val))
		for i, e := range val {
			m[i] = Entry{Key: e.Key, Value: normalize(e.Value)}
		}
		return m
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := make(Map, len(keys))
		for i, k := range keys {
			m[i] = Entry{Key: k, Value: normalize(val[k])}
		}
		return m
	case []any:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = normalize(item)
		}
		return items
	case []string:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = item
		}
		return items
	default:
		return val
	}
}

// set перезаписывает существующий ключ на его позиции или дописывает новый.
func (m Map) set(key string, value any) Map {
	for i := range m {
		if m[i].Key == key {
			m[i].Value = value
			return m
		}
	}
	return append(m, Entry{Key: key, Value: value})
}

// nodeValue: type, tagName, остальные свойства в порядке вставки, children.
func nodeValue(n a11y.Node) any {
	switch v := n.(type) {
	case *a11y.Text:
		if v == nil {
			return nil
		}
		return Map{{Key: "type", Value: a11y.TypeText}, {Key: "content", Value: v.Content}}
	case *a11y.Element:
		if v == nil {
			return nil
		}
		m := Map{{Key: "type", Value: a11y.TypeElement}, {Key: a11y.KeyTagName, Value: v.TagName}}
		for _, p := range v.Props.Entries() {
			if p.Key == a11y.KeyTagName {
				continue
			}
			m = m.set(p.Key, p.Value)
		}
		if len(v.Children) > 0 {
			m = m.set("children", normalize(v.Children))
		}
		return m
	default:
		return nil
	}
}

// Tree рендерит результат построителя: один корень рендерится отображением, несколько списком.
func Tree(nodes []a11y.Node) string {
	switch len(nodes) {
	case 0:
		return ""
	case 1:
		return Serialize(nodes[0])
	default:
		return Serialize(nodes)
	}
}
