package a11y

import (
	"a11ytree/internal/dom"
)

type Options struct {
	// ExcludedTags заменяет DefaultExcludedTags, если не пуст.
	ExcludedTags []string
	// MaxDepth ограничивает глубину обхода, 0 отключает лимит.
	// Узлы глубже предела отбрасываются вместе с поддеревом.
	MaxDepth int
}

type Builder struct {
	classifier *Classifier
	maxDepth   int
}

func NewBuilder(opts Options) *Builder {
	return &Builder{
		classifier: NewClassifier(opts.ExcludedTags),
		maxDepth:   opts.MaxDepth,
	}
}

func (b *Builder) Classifier() *Classifier {
	return b.classifier
}

// Build строит дерево доступности от root. Для документа обход
// начинается с body. Возвращает список корней: схлопнутый корневой
// контейнер отдает своих детей.
func (b *Builder) Build(root dom.Node) []Node {
	if root == nil {
		return nil
	}
	if root.Kind() == dom.KindDocument {
		if body := dom.Body(root); body != nil {
			root = body
		}
	}
	return b.build(root, 0).appendTo(nil)
}

func (b *Builder) build(n dom.Node, depth int) fragment {
	if b.maxDepth > 0 && depth > b.maxDepth {
		return fragment{}
	}
	if !b.classifier.ShouldInclude(n) {
		return fragment{}
	}

	switch n.Kind() {
	case dom.KindText:
		if text := trim(n.TextContent()); text != "" {
			return single(&Text{Content: text})
		}
		return fragment{}
	case dom.KindDocument:
		return fragment{group: b.buildChildren(n, depth)}
	case dom.KindElement:
	default:
		return fragment{}
	}

	children := b.buildChildren(n, depth)

	if IsSimpleContainer(n) && len(children) > 0 {
		if len(children) == 1 {
			return single(children[0])
		}
		return fragment{group: children}
	}

	props := ExtractProperties(n)
	el := &Element{
		TagName: props.String(KeyTagName),
		Props:   props,
	}
	if children = DedupAdjacentText(children); len(children) > 0 {
		el.Children = children
	}
	return single(el)
}

// buildChildren обходит детей по порядку и разворачивает группы.
func (b *Builder) buildChildren(n dom.Node, depth int) []Node {
	var children []Node
	for _, c := range n.Children() {
		children = b.build(c, depth+1).appendTo(children)
	}
	return children
}

// DedupAdjacentText удаляет текст, совпадающий с непосредственно предшествующим текстом.
func DedupAdjacentText(nodes []Node) []Node {
	if len(nodes) < 2 {
		return nodes
	}
	out := make([]Node, 0, len(nodes))
	for i, n := range nodes {
		if i > 0 {
			cur, ok := n.(*Text)
			prev, prevOK := nodes[i-1].(*Text)
			if ok && prevOK && cur.Content == prev.Content {
				continue
			}
		}
		out = append(out, n)
	}
	return out
}
