package sanitizer

import "regexp"

var apiKeyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(api[_-]?key|api[_-]?secret)\s*[:=]\s*["']?([a-zA-Z0-9_-]{20,})["']?`),
	regexp.MustCompile(`(?i)(secret[_-]?key|secret[_-]?token)\s*[:=]\s*["']?([a-zA-Z0-9_-]{20,})["']?`),
	regexp.MustCompile(`(?i)(access[_-]?token|access[_-]?key)\s*[:=]\s*["']?([a-zA-Z0-9_-]{20,})["']?`),
}

type APIKeyRule struct{}

func (APIKeyRule) Sanitize(text string) string {
	for _, p := range apiKeyPatterns {
		text = p.ReplaceAllString(text, `${1}: `+Filtered)
	}
	return text
}
