package a11y

import (
	"fmt"
	"strconv"
)

const (
	minPatternItems = 4
	maxShownReps    = 3
)

// Pattern описывает повторяющийся блок из Length соседних узлов.
type Pattern struct {
	Length      int
	Repetitions int
}

// signature возвращает поверхностный отпечаток узла без сравнения содержимого.
func signature(n Node) string {
	switch v := n.(type) {
	case *Text:
		return TypeText
	case *Element:
		return TypeElement + ":" + v.TagName + ":" + strconv.Itoa(len(v.Children))
	default:
		return ""
	}
}

// FindPattern ищет наименьший период, при котором все блоки совпадают
// по отпечаткам. Неполный хвостовой блок отвергает период.
func FindPattern(nodes []Node) (Pattern, bool) {
	n := len(nodes)
	if n < minPatternItems {
		return Pattern{}, false
	}

	sigs := make([]string, n)
	for i, node := range nodes {
		sigs[i] = signature(node)
	}

	for length := 1; length <= n/2; length++ {
		if repeats(sigs, length) {
			return Pattern{Length: length, Repetitions: n / length}, true
		}
	}
	return Pattern{}, false
}

func repeats(sigs []string, length int) bool {
	if len(sigs)%length != 0 {
		return false
	}
	for start := length; start < len(sigs); start += length {
		for j := 0; j < length; j++ {
			if sigs[start+j] != sigs[j] {
				return false
			}
		}
	}
	return true
}

// Truncate возвращает новое дерево, в котором длинные повторы среди соседей
// заменены маркером. Сначала усекаются поддеревья, затем текущий уровень.
func Truncate(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}

	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = truncateNode(n)
	}

	p, ok := FindPattern(out)
	if !ok || p.Repetitions <= maxShownReps {
		return out
	}

	head := min(maxShownReps, p.Repetitions-1)
	tail := min(maxShownReps, p.Repetitions-head-1)

	noun := "groups"
	if p.Length == 1 {
		noun = "items"
	}
	marker := &Text{
		Content: fmt.Sprintf("[... %d more similar %s omitted ...]", p.Repetitions-(head+1), noun),
	}

	result := make([]Node, 0, p.Length*(head+tail)+1)
	result = append(result, out[:p.Length*head]...)
	result = append(result, marker)
	result = append(result, out[p.Length*(p.Repetitions-tail):]...)
	return result
}

func truncateNode(n Node) Node {
	el, ok := n.(*Element)
	if !ok || len(el.Children) == 0 {
		return n
	}
	return &Element{
		TagName:  el.TagName,
		Props:    el.Props,
		Children: Truncate(el.Children),
	}
}
