package sanitizer

import "regexp"

var cookiePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(session[_-]?id|session[_-]?token)(\s*[:=]\s*["']?)[a-zA-Z0-9_-]{10,}["']?`),
	regexp.MustCompile(`(?i)(set-cookie|cookie)(\s*[:=]\s*["']?)[^"'\n]{10,}["']?`),
}

type CookieRule struct{}

func (CookieRule) Sanitize(text string) string {
	for _, p := range cookiePatterns {
		text = p.ReplaceAllString(text, `${1}${2}`+Filtered)
	}
	return text
}
