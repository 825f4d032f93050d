// Package sanitizer вычищает чувствительные данные из дерева доступности
// до того, как текст уйдет в промпт.
package sanitizer

import (
	"strings"

	"a11ytree/internal/a11y"
)

const (
	Filtered      = "[FILTERED]"
	FilteredEmail = "[FILTERED_EMAIL]"
)

type Rule interface {
	Sanitize(text string) string
}

type DataSanitizer struct {
	rules []Rule
}

func New() *DataSanitizer {
	return &DataSanitizer{
		rules: []Rule{
			PasswordRule{},
			TokenRule{},
			CookieRule{},
			CardRule{},
			APIKeyRule{},
			EmailRule{},
		},
	}
}

func (s *DataSanitizer) Sanitize(text string) string {
	if text == "" {
		return text
	}
	for _, rule := range s.rules {
		text = rule.Sanitize(text)
	}
	return text
}

// SanitizeTree возвращает копию дерева с вычищенными строками.
// Значение полей type=password заменяется целиком.
func (s *DataSanitizer) SanitizeTree(nodes []a11y.Node) []a11y.Node {
	if nodes == nil {
		return nil
	}
	out := make([]a11y.Node, len(nodes))
	for i, n := range nodes {
		out[i] = s.sanitizeNode(n)
	}
	return out
}

func (s *DataSanitizer) sanitizeNode(n a11y.Node) a11y.Node {
	switch v := n.(type) {
	case *a11y.Text:
		return &a11y.Text{Content: s.Sanitize(v.Content)}
	case *a11y.Element:
		// разные значения могут замениться одним маркером
		return &a11y.Element{
			TagName:  v.TagName,
			Props:    s.sanitizeProps(v.Props),
			Children: a11y.DedupAdjacentText(s.SanitizeTree(v.Children)),
		}
	default:
		return n
	}
}

func (s *DataSanitizer) sanitizeProps(props *a11y.Properties) *a11y.Properties {
	if props == nil {
		return nil
	}
	out := a11y.NewProperties()
	secret := strings.EqualFold(props.String("type"), "password")
	for _, p := range props.Entries() {
		str, ok := p.Value.(string)
		switch {
		case !ok:
			out.Set(p.Key, p.Value)
		case secret && p.Key == a11y.KeyValue && str != "":
			out.Set(p.Key, Filtered)
		default:
			out.Set(p.Key, s.Sanitize(str))
		}
	}
	return out
}
