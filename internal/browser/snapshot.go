package browser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"a11ytree/internal/dom"

	"github.com/playwright-community/playwright-go"
)

// snapFunc сериализует поддерево DOM вместе с вычисленным стилем и
// геометрией. Ошибка getComputedStyle сохраняется в поле le, а не бросается.
const snapFunc = `function snap(node) {
	if (node.nodeType === Node.TEXT_NODE) return { k: 3, x: node.textContent };
	if (node.nodeType === Node.COMMENT_NODE) return { k: 8 };
	if (node.nodeType !== Node.ELEMENT_NODE) return { k: node.nodeType };

	const out = { k: 1, t: node.tagName, a: [], c: [] };
	for (const attr of node.attributes) out.a.push([attr.name, attr.value]);

	try {
		const style = getComputedStyle(node);
		const rect = node.getBoundingClientRect();
		out.l = { d: style.display, v: style.visibility, w: rect.width, h: rect.height };
	} catch (e) {
		out.le = String(e);
	}

	if (node.tagName === 'INPUT' || node.tagName === 'TEXTAREA' || node.tagName === 'SELECT') {
		const f = { value: node.value ? String(node.value) : '' };
		if (node.checked !== undefined) f.checked = !!node.checked;
		if (node.disabled !== undefined) f.disabled = !!node.disabled;
		if (node.readOnly !== undefined) f.readOnly = !!node.readOnly;
		out.f = f;
	}

	for (const child of node.childNodes) out.c.push(snap(child));
	return out;
}`

const (
	bodyScript    = "() => { " + snapFunc + "\nreturn document.body ? snap(document.body) : null; }"
	elementScript = "(root) => { " + snapFunc + "\nreturn snap(root); }"
)

type rawLayout struct {
	Display    string  `json:"d"`
	Visibility string  `json:"v"`
	Width      float64 `json:"w"`
	Height     float64 `json:"h"`
}

type rawForm struct {
	Value    string `json:"value"`
	Checked  *bool  `json:"checked"`
	Disabled *bool  `json:"disabled"`
	ReadOnly *bool  `json:"readOnly"`
}

type rawNode struct {
	Kind      int         `json:"k"`
	Tag       string      `json:"t"`
	Text      string      `json:"x"`
	Attrs     [][2]string `json:"a"`
	Layout    *rawLayout  `json:"l"`
	LayoutErr string      `json:"le"`
	Form      *rawForm    `json:"f"`
	Children  []*rawNode  `json:"c"`
}

// Snapshot снимает DOM страницы под selector (пустой селектор означает body).
// Дальнейшая работа идет по снимку и не обращается к живой странице.
func (b *PlaywrightBrowser) Snapshot(ctx context.Context, selector string) (dom.Node, error) {
	page := b.getPage()
	if page == nil {
		return nil, ErrNotLaunched
	}

	if selector != "" {
		if err := ValidateSelector(selector); err != nil {
			return nil, fmt.Errorf("невалидный селектор: %w", err)
		}
		selector, _ = NormalizeSelector(selector)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		result any
		err    error
	)
	if selector == "" {
		result, err = page.Evaluate(bodyScript)
	} else {
		// Locator понимает и CSS, и расширения Playwright вроде :has-text()
		result, err = page.Locator(selector).First().Evaluate(elementScript, nil, playwright.LocatorEvaluateOptions{
			Timeout: playwright.Float(float64(b.cfg.Timeout.Milliseconds())),
		})
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения JavaScript: %w", err)
	}
	if result == nil {
		return nil, fmt.Errorf("пустой снимок для селектора %q", selector)
	}

	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации снимка: %w", err)
	}
	return DecodeSnapshot(data)
}

// DecodeSnapshot разбирает JSON, полученный snapFunc.
func DecodeSnapshot(data []byte) (dom.Node, error) {
	var raw rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("неверный формат снимка: %w", err)
	}
	return &snapshotNode{raw: &raw}, nil
}

type snapshotNode struct {
	raw *rawNode
}

func (s *snapshotNode) Kind() dom.NodeKind {
	switch s.raw.Kind {
	case 1:
		return dom.KindElement
	case 3:
		return dom.KindText
	case 8:
		return dom.KindComment
	case 9:
		return dom.KindDocument
	default:
		return dom.KindOther
	}
}

func (s *snapshotNode) TagName() string {
	return s.raw.Tag
}

func (s *snapshotNode) Attributes() []dom.Attribute {
	if len(s.raw.Attrs) == 0 {
		return nil
	}
	attrs := make([]dom.Attribute, len(s.raw.Attrs))
	for i, a := range s.raw.Attrs {
		attrs[i] = dom.Attribute{Name: a[0], Value: a[1]}
	}
	return attrs
}

func (s *snapshotNode) Attribute(name string) (string, bool) {
	for _, a := range s.raw.Attrs {
		if strings.EqualFold(a[0], name) {
			return a[1], true
		}
	}
	return "", false
}

func (s *snapshotNode) Children() []dom.Node {
	if len(s.raw.Children) == 0 {
		return nil
	}
	children := make([]dom.Node, 0, len(s.raw.Children))
	for _, c := range s.raw.Children {
		if c != nil {
			children = append(children, &snapshotNode{raw: c})
		}
	}
	return children
}

func (s *snapshotNode) TextContent() string {
	if s.raw.Kind == 3 {
		return s.raw.Text
	}
	var sb strings.Builder
	var walk func(*rawNode)
	walk = func(n *rawNode) {
		for _, c := range n.Children {
			if c == nil {
				continue
			}
			switch c.Kind {
			case 3:
				sb.WriteString(c.Text)
			case 1:
				walk(c)
			}
		}
	}
	walk(s.raw)
	return sb.String()
}

func (s *snapshotNode) Layout() (dom.Layout, error) {
	if s.raw.LayoutErr != "" {
		return dom.Layout{}, errors.New(s.raw.LayoutErr)
	}
	if s.raw.Layout == nil {
		return dom.Layout{}, errors.New("layout отсутствует в снимке")
	}
	l := s.raw.Layout
	return dom.Layout{
		Display:    l.Display,
		Visibility: l.Visibility,
		Width:      l.Width,
		Height:     l.Height,
	}, nil
}

func (s *snapshotNode) Form() dom.FormState {
	if s.raw.Form == nil {
		return dom.FormState{}
	}
	f := s.raw.Form
	return dom.FormState{
		Value:    f.Value,
		Checked:  f.Checked,
		Disabled: f.Disabled,
		ReadOnly: f.ReadOnly,
	}
}
