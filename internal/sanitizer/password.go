package sanitizer

import "regexp"

var passwordPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(password|пароль)\s*[:=]\s*["']?([^"'\s]{3,})["']?`),
	regexp.MustCompile(`(?i)(passwd|pwd)\s*[:=]\s*["']?([^"'\s]{3,})["']?`),
}

type PasswordRule struct{}

func (PasswordRule) Sanitize(text string) string {
	for _, p := range passwordPatterns {
		text = p.ReplaceAllString(text, `${1}: `+Filtered)
	}
	return text
}
