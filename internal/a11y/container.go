package a11y

import (
	"strings"

	"a11ytree/internal/dom"
)

var semanticTags = map[string]struct{}{
	"main": {}, "nav": {}, "article": {}, "section": {}, "aside": {}, "header": {}, "footer": {},
	"button": {}, "a": {}, "select": {}, "input": {}, "textarea": {}, "form": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"ul": {}, "ol": {}, "li": {}, "table": {}, "tr": {}, "td": {}, "th": {},
}

var containerMarkers = []string{"role", "aria-label", "aria-description", "aria-hidden", "title"}

// Свойства, которые не мешают считать элемент простой оберткой.
var presentationalKeys = map[string]struct{}{
	KeyTagName: {}, "class": {}, "id": {}, "style": {},
}

// IsSimpleContainer сообщает, является ли элемент чисто презентационной оберткой,
// которую можно заменить ее детьми.
func IsSimpleContainer(n dom.Node) bool {
	if n == nil || n.Kind() != dom.KindElement {
		return false
	}

	if _, ok := semanticTags[strings.ToLower(n.TagName())]; ok {
		return false
	}

	for _, name := range containerMarkers {
		if hasAttr(n, name) {
			return false
		}
	}

	for _, key := range ExtractProperties(n).Keys() {
		if _, ok := presentationalKeys[key]; !ok {
			return false
		}
	}

	return DirectText(n) == ""
}
