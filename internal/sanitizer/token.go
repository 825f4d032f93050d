package sanitizer

import "regexp"

var tokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(token|токен)(\s*[:=]\s*["']?)[a-zA-Z0-9_-]{20,}["']?`),
	regexp.MustCompile(`(?i)(bearer\s+)()[a-zA-Z0-9_.-]{20,}`),
	regexp.MustCompile(`()()sk-[a-zA-Z0-9]{32,}`),
	regexp.MustCompile(`()()pk_[a-zA-Z0-9]{32,}`),
}

type TokenRule struct{}

func (TokenRule) Sanitize(text string) string {
	for _, p := range tokenPatterns {
		text = p.ReplaceAllString(text, `${1}${2}`+Filtered)
	}
	return text
}
