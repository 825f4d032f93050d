// Package htmldom адаптирует golang.org/x/net/html к интерфейсу dom.Node.
// Движка раскладки нет: display и visibility берутся из inline-стилей и атрибута
// hidden, геометрия всегда нулевая.
package htmldom

import (
	"fmt"
	"io"
	"strings"

	"a11ytree/internal/dom"

	"golang.org/x/net/html"
)

type Node struct {
	n *html.Node
}

func Parse(r io.Reader) (dom.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return Wrap(doc), nil
}

func ParseString(s string) (dom.Node, error) {
	return Parse(strings.NewReader(s))
}

func Wrap(n *html.Node) *Node {
	if n == nil {
		return nil
	}
	return &Node{n: n}
}

// HTML возвращает исходный узел x/net/html.
func (w *Node) HTML() *html.Node {
	return w.n
}

func (w *Node) Kind() dom.NodeKind {
	switch w.n.Type {
	case html.ElementNode:
		return dom.KindElement
	case html.TextNode:
		return dom.KindText
	case html.CommentNode:
		return dom.KindComment
	case html.DocumentNode:
		return dom.KindDocument
	default:
		return dom.KindOther
	}
}

func (w *Node) TagName() string {
	if w.n.Type != html.ElementNode {
		return ""
	}
	return w.n.Data
}

func (w *Node) Attributes() []dom.Attribute {
	if len(w.n.Attr) == 0 {
		return nil
	}
	attrs := make([]dom.Attribute, 0, len(w.n.Attr))
	for _, a := range w.n.Attr {
		name := a.Key
		if a.Namespace != "" {
			name = a.Namespace + ":" + a.Key
		}
		attrs = append(attrs, dom.Attribute{Name: name, Value: a.Val})
	}
	return attrs
}

func (w *Node) Attribute(name string) (string, bool) {
	return attr(w.n, name)
}

func (w *Node) Children() []dom.Node {
	var children []dom.Node
	for c := w.n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, &Node{n: c})
	}
	return children
}

func (w *Node) TextContent() string {
	switch w.n.Type {
	case html.TextNode, html.CommentNode:
		return w.n.Data
	}
	var sb strings.Builder
	collectText(w.n, &sb)
	return sb.String()
}

func (w *Node) Layout() (dom.Layout, error) {
	if w.n.Type != html.ElementNode {
		return dom.Layout{}, fmt.Errorf("layout недоступен для узла типа %d", w.n.Type)
	}

	layout := dom.Layout{Display: "block", Visibility: "visible"}
	if _, ok := attr(w.n, "hidden"); ok {
		layout.Display = "none"
	}
	if v, ok := inlineStyle(w.n)["display"]; ok {
		layout.Display = v
	}

	// visibility наследуется от ближайшего предка, где она задана
	for p := w.n; p != nil; p = p.Parent {
		if p.Type != html.ElementNode {
			continue
		}
		if v, ok := inlineStyle(p)["visibility"]; ok && v != "inherit" {
			layout.Visibility = v
			break
		}
	}
	return layout, nil
}

func (w *Node) Form() dom.FormState {
	if w.n.Type != html.ElementNode {
		return dom.FormState{}
	}
	_, disabled := attr(w.n, "disabled")
	_, readOnly := attr(w.n, "readonly")

	switch w.n.Data {
	case "input":
		_, checked := attr(w.n, "checked")
		value, _ := attr(w.n, "value")
		return dom.FormState{
			Value:    value,
			Checked:  dom.Bool(checked),
			Disabled: dom.Bool(disabled),
			ReadOnly: dom.Bool(readOnly),
		}
	case "textarea":
		var sb strings.Builder
		collectText(w.n, &sb)
		return dom.FormState{
			Value:    sb.String(),
			Disabled: dom.Bool(disabled),
			ReadOnly: dom.Bool(readOnly),
		}
	case "select":
		return dom.FormState{
			Value:    selectValue(w.n),
			Disabled: dom.Bool(disabled),
		}
	}
	return dom.FormState{}
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

func collectText(n *html.Node, sb *strings.Builder) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			sb.WriteString(c.Data)
		case html.ElementNode:
			collectText(c, sb)
		}
	}
}

func inlineStyle(n *html.Node) map[string]string {
	raw, ok := attr(n, "style")
	if !ok || raw == "" {
		return nil
	}
	decls := make(map[string]string)
	for _, decl := range strings.Split(raw, ";") {
		key, value, found := strings.Cut(decl, ":")
		if !found {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "!important"))
		if key != "" && value != "" {
			decls[key] = strings.ToLower(value)
		}
	}
	return decls
}

// selectValue возвращает значение выбранного option, либо первого, если выбранного нет.
func selectValue(n *html.Node) string {
	var first, selected *html.Node
	var walk func(*html.Node)
	walk = func(p *html.Node) {
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			if c.Data == "option" {
				if first == nil {
					first = c
				}
				if _, ok := attr(c, "selected"); ok && selected == nil {
					selected = c
				}
				continue
			}
			walk(c)
		}
	}
	walk(n)

	opt := selected
	if opt == nil {
		opt = first
	}
	if opt == nil {
		return ""
	}
	if v, ok := attr(opt, "value"); ok {
		return v
	}
	var sb strings.Builder
	collectText(opt, &sb)
	return strings.Join(strings.Fields(sb.String()), " ")
}
