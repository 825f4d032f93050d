// Package a11y строит компактное дерево доступности из DOM-дерева:
// фильтрация узлов, извлечение свойств, схлопывание простых контейнеров,
// подавление соседних дублей текста и усечение повторяющихся структур.
package a11y

const (
	TypeText    = "text"
	TypeElement = "element"
)

// Node: узел выходного дерева: *Text или *Element.
type Node interface {
	Type() string
	node()
}

type Text struct {
	Content string
}

func (*Text) Type() string { return TypeText }
func (*Text) node()        {}

type Element struct {
	TagName  string
	Props    *Properties
	Children []Node
}

func (*Element) Type() string { return TypeElement }
func (*Element) node()        {}

// fragment хранит результат обхода одного DOM-узла внутри построителя:
// пусто, один узел или группа узлов схлопнутого контейнера.
type fragment struct {
	node  Node
	group []Node
}

func single(n Node) fragment {
	return fragment{node: n}
}

func (f fragment) appendTo(dst []Node) []Node {
	if f.node != nil {
		return append(dst, f.node)
	}
	return append(dst, f.group...)
}
