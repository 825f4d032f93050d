package a11y

import (
	"strings"
	"unicode"

	"a11ytree/internal/dom"
)

// Зарезервированные ключи свойств. При совпадении с именем атрибута
// побеждает последняя запись.
const (
	KeyTagName     = "tagName"
	KeyTextContent = "textContent"
	KeyValue       = "value"
	KeyChecked     = "checked"
	KeyDisabled    = "disabled"
	KeyReadOnly    = "readOnly"
)

type Property struct {
	Key   string
	Value any
}

// Properties: отображение с сохранением порядка вставки.
// Перезапись существующего ключа оставляет его на прежней позиции.
type Properties struct {
	entries []Property
	index   map[string]int
}

func NewProperties() *Properties {
	return &Properties{index: make(map[string]int)}
}

func (p *Properties) Set(key string, value any) {
	if i, ok := p.index[key]; ok {
		p.entries[i].Value = value
		return
	}
	p.index[key] = len(p.entries)
	p.entries = append(p.entries, Property{Key: key, Value: value})
}

func (p *Properties) Get(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	i, ok := p.index[key]
	if !ok {
		return nil, false
	}
	return p.entries[i].Value, true
}

// String возвращает строковое значение ключа или "".
func (p *Properties) String(key string) string {
	v, _ := p.Get(key)
	s, _ := v.(string)
	return s
}

func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, len(p.entries))
	for i, e := range p.entries {
		keys[i] = e.Key
	}
	return keys
}

func (p *Properties) Entries() []Property {
	if p == nil {
		return nil
	}
	out := make([]Property, len(p.entries))
	copy(out, p.entries)
	return out
}

func (p *Properties) Clone() *Properties {
	c := NewProperties()
	for _, e := range p.Entries() {
		c.Set(e.Key, e.Value)
	}
	return c
}

// ExtractProperties собирает атрибуты, прямой текст, тег и состояние полей ввода.
// Для не-элементов возвращает пустой набор.
func ExtractProperties(n dom.Node) *Properties {
	props := NewProperties()
	if n == nil || n.Kind() != dom.KindElement {
		return props
	}

	for _, a := range n.Attributes() {
		props.Set(a.Name, a.Value)
	}

	if text := DirectText(n); text != "" {
		props.Set(KeyTextContent, text)
	}

	tag := strings.ToLower(n.TagName())
	props.Set(KeyTagName, tag)

	switch tag {
	case "input", "textarea", "select":
		form := n.Form()
		if form.Value != "" {
			props.Set(KeyValue, form.Value)
		}
		if form.Checked != nil {
			props.Set(KeyChecked, *form.Checked)
		}
		if form.Disabled != nil {
			props.Set(KeyDisabled, *form.Disabled)
		}
		if form.ReadOnly != nil {
			props.Set(KeyReadOnly, *form.ReadOnly)
		}
	}

	return props
}

// DirectText склеивает через пробел обрезанный текст непосредственных
// текстовых потомков, пропуская пустые.
func DirectText(n dom.Node) string {
	var parts []string
	for _, c := range n.Children() {
		if c.Kind() != dom.KindText {
			continue
		}
		if t := trim(c.TextContent()); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

// hasAttr: атрибут задан и не пуст.
func hasAttr(n dom.Node, name string) bool {
	v, ok := n.Attribute(name)
	return ok && v != ""
}
