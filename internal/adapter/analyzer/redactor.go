package analyzer

import "regexp"

var (
	emailPattern  = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	urlPattern    = regexp.MustCompile(`(?i)https?://\S+|www\.\S+`)
	numberPattern = regexp.MustCompile(`\b[0-9]{2,}\b`)
)

// Placeholders are plain alphanumeric so they pass through the tokenizer as
// ordinary tokens.
const (
	EmailPlaceholder  = "emailtoken"
	URLPlaceholder    = "urltoken"
	NumberPlaceholder = "numbertoken"
)

// PIIRedactor replaces email-, URL-, and multi-digit-number-shaped
// substrings with fixed placeholder tokens.
type PIIRedactor struct{}

func NewPIIRedactor() *PIIRedactor {
	return &PIIRedactor{}
}

func (r *PIIRedactor) Redact(text string) string {
	text = emailPattern.ReplaceAllString(text, " "+EmailPlaceholder+" ")
	text = urlPattern.ReplaceAllString(text, " "+URLPlaceholder+" ")
	text = numberPattern.ReplaceAllString(text, " "+NumberPlaceholder+" ")
	return text
}
