// Package dom описывает минимальный набор возможностей DOM-узла, который нужен
// построителю дерева доступности. Реализации: живая страница (browser),
// статический HTML (htmldom) и in-memory фикстуры для тестов.
package dom

import "strings"

type NodeKind int

const (
	KindOther NodeKind = iota
	KindElement
	KindText
	KindComment
	KindDocument
)

func (k NodeKind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindText:
		return "text"
	case KindComment:
		return "comment"
	case KindDocument:
		return "document"
	default:
		return "other"
	}
}

type Attribute struct {
	Name  string
	Value string
}

// Layout: вычисленное состояние отображения элемента.
type Layout struct {
	Display    string
	Visibility string
	Width      float64
	Height     float64
}

// FormState хранит свойства полей ввода. nil означает "не определено".
type FormState struct {
	Value    string
	Checked  *bool
	Disabled *bool
	ReadOnly *bool
}

type Node interface {
	Kind() NodeKind
	TagName() string
	Attributes() []Attribute
	Attribute(name string) (string, bool)
	Children() []Node
	TextContent() string
	// Layout может вернуть ошибку (например, для отсоединенного узла).
	Layout() (Layout, error)
	Form() FormState
}

// Lookup ищет атрибут в упорядоченном списке без учета регистра.
func Lookup(attrs []Attribute, name string) (string, bool) {
	for _, a := range attrs {
		if strings.EqualFold(a.Name, name) {
			return a.Value, true
		}
	}
	return "", false
}

// Body возвращает первый элемент body в поддереве или nil.
func Body(n Node) Node {
	if n == nil {
		return nil
	}
	if n.Kind() == KindElement && strings.EqualFold(n.TagName(), "body") {
		return n
	}
	for _, c := range n.Children() {
		if b := Body(c); b != nil {
			return b
		}
	}
	return nil
}

func Bool(v bool) *bool {
	return &v
}
