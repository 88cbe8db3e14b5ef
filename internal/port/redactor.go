package port

// Redactor rewrites PII-shaped substrings before tokenization. The pattern
// set is the implementation's concern; the tokenizer only sees text in,
// text out.
type Redactor interface {
	Redact(text string) string
}
