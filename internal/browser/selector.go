package browser

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	containsDouble   = regexp.MustCompile(`:contains\("([^"]*)"\)`)
	containsSingle   = regexp.MustCompile(`:contains\('([^']*)'\)`)
	containsNoQuotes = regexp.MustCompile(`:contains\(([^)"']+)\)`)
)

// NormalizeSelector переводит jQuery :contains() в Playwright :has-text().
// Возвращает селектор и признак того, что он был изменен.
func NormalizeSelector(selector string) (string, bool) {
	if selector == "" {
		return selector, false
	}

	changed := false
	normalized := containsDouble.ReplaceAllStringFunc(selector, func(match string) string {
		changed = true
		text := containsDouble.FindStringSubmatch(match)[1]
		return `:has-text("` + text + `")`
	})
	normalized = containsSingle.ReplaceAllStringFunc(normalized, func(match string) string {
		changed = true
		text := containsSingle.FindStringSubmatch(match)[1]
		return `:has-text('` + text + `')`
	})
	normalized = containsNoQuotes.ReplaceAllStringFunc(normalized, func(match string) string {
		changed = true
		text := strings.TrimSpace(containsNoQuotes.FindStringSubmatch(match)[1])
		return `:has-text("` + text + `")`
	})

	return normalized, changed
}

// ValidateSelector отсекает очевидные ошибки: пустой селектор и URL вместо селектора.
func ValidateSelector(selector string) error {
	trimmed := strings.TrimSpace(selector)
	if trimmed == "" {
		return fmt.Errorf("селектор не может быть пустым")
	}
	if strings.Contains(trimmed, "://") {
		return fmt.Errorf("селектор не может быть URL: %s", selector)
	}
	return nil
}
