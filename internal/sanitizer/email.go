package sanitizer

import "regexp"

var emailPattern = regexp.MustCompile(`\b[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}\b`)

type EmailRule struct{}

func (EmailRule) Sanitize(text string) string {
	return emailPattern.ReplaceAllString(text, FilteredEmail)
}
