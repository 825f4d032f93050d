package dom

import "strings"

// Fixture: in-memory узел для тестов и синтетических деревьев.
// По умолчанию элемент видим (display: block) и имеет размер 100x20.
type Fixture struct {
	kind      NodeKind
	tag       string
	text      string
	attrs     []Attribute
	children  []Node
	layout    Layout
	layoutErr error
	form      FormState
}

func El(tag string, children ...*Fixture) *Fixture {
	f := &Fixture{
		kind:   KindElement,
		tag:    strings.ToUpper(tag),
		layout: Layout{Display: "block", Visibility: "visible", Width: 100, Height: 20},
	}
	return f.Append(children...)
}

func Text(s string) *Fixture {
	return &Fixture{kind: KindText, text: s}
}

func Comment(s string) *Fixture {
	return &Fixture{kind: KindComment, text: s}
}

func Document(children ...*Fixture) *Fixture {
	f := &Fixture{kind: KindDocument}
	return f.Append(children...)
}

func (f *Fixture) Append(children ...*Fixture) *Fixture {
	for _, c := range children {
		f.children = append(f.children, c)
	}
	return f
}

// Attr добавляет атрибут или перезаписывает существующий.
func (f *Fixture) Attr(name, value string) *Fixture {
	for i := range f.attrs {
		if f.attrs[i].Name == name {
			f.attrs[i].Value = value
			return f
		}
	}
	f.attrs = append(f.attrs, Attribute{Name: name, Value: value})
	return f
}

func (f *Fixture) Style(display, visibility string) *Fixture {
	f.layout.Display = display
	f.layout.Visibility = visibility
	return f
}

func (f *Fixture) Size(width, height float64) *Fixture {
	f.layout.Width = width
	f.layout.Height = height
	return f
}

// Hidden задает display: none без геометрии.
func (f *Fixture) Hidden() *Fixture {
	return f.Style("none", "visible").Size(0, 0)
}

func (f *Fixture) LayoutError(err error) *Fixture {
	f.layoutErr = err
	return f
}

func (f *Fixture) WithForm(state FormState) *Fixture {
	f.form = state
	return f
}

func (f *Fixture) Kind() NodeKind {
	return f.kind
}

func (f *Fixture) TagName() string {
	return f.tag
}

func (f *Fixture) Attributes() []Attribute {
	return f.attrs
}

func (f *Fixture) Attribute(name string) (string, bool) {
	return Lookup(f.attrs, name)
}

func (f *Fixture) Children() []Node {
	return f.children
}

func (f *Fixture) TextContent() string {
	if f.kind == KindText || f.kind == KindComment {
		return f.text
	}
	var sb strings.Builder
	for _, c := range f.children {
		if c.Kind() == KindComment {
			continue
		}
		sb.WriteString(c.TextContent())
	}
	return sb.String()
}

func (f *Fixture) Layout() (Layout, error) {
	if f.layoutErr != nil {
		return Layout{}, f.layoutErr
	}
	return f.layout, nil
}

func (f *Fixture) Form() FormState {
	return f.form
}
