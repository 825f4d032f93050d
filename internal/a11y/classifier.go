package a11y

import (
	"strings"

	"a11ytree/internal/dom"
)

// DefaultExcludedTags: теги без содержимого для пользователя.
var DefaultExcludedTags = []string{"script", "style", "meta", "link", "noscript"}

// Атрибуты, означающие намерение сделать элемент доступным даже если он скрыт.
var accessibilityMarkers = []string{"aria-label", "aria-description", "role", "title"}

type Classifier struct {
	excluded map[string]struct{}
}

// NewClassifier создает классификатор. Пустой список заменяется на DefaultExcludedTags.
func NewClassifier(excludedTags []string) *Classifier {
	if len(excludedTags) == 0 {
		excludedTags = DefaultExcludedTags
	}
	excluded := make(map[string]struct{}, len(excludedTags))
	for _, tag := range excludedTags {
		excluded[strings.ToLower(strings.TrimSpace(tag))] = struct{}{}
	}
	return &Classifier{excluded: excluded}
}

// ShouldInclude решает, попадает ли узел в дерево. Чистый предикат: узел не меняется.
func (c *Classifier) ShouldInclude(n dom.Node) bool {
	switch n.Kind() {
	case dom.KindComment:
		return false
	case dom.KindText:
		return trim(n.TextContent()) != ""
	case dom.KindElement:
		return c.includeElement(n)
	default:
		return true
	}
}

func (c *Classifier) includeElement(n dom.Node) bool {
	if _, ok := c.excluded[strings.ToLower(n.TagName())]; ok {
		return false
	}

	for _, name := range accessibilityMarkers {
		if hasAttr(n, name) {
			return true
		}
	}

	layout, err := n.Layout()
	if err != nil {
		return true
	}

	hidden := layout.Display == "none" || layout.Visibility == "hidden"
	if hidden &&
		!hasAttr(n, "aria-hidden") &&
		!hasAttr(n, "role") &&
		layout.Width == 0 && layout.Height == 0 {
		return false
	}

	return true
}
