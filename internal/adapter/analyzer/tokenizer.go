package analyzer

import (
	"strings"
	"unicode"

	"spamsift/internal/domain"
	"spamsift/internal/port"
)

// BigramSeparator joins adjacent unigrams into bigram features. It is not a
// token character, so unigrams and bigrams can never collide.
const BigramSeparator = "_"

// Tokenizer turns raw text into normalized unigram tokens, optionally
// expanded with bigrams. It is a pure function of (text, config): the same
// input always yields the same sequence, which training and scoring rely on.
type Tokenizer struct {
	cfg      domain.TokenizerConfig
	redactor port.Redactor
}

// NewTokenizer creates a Tokenizer. The redactor is only consulted when the
// config enables redaction; nil disables it regardless.
func NewTokenizer(cfg domain.TokenizerConfig, redactor port.Redactor) *Tokenizer {
	return &Tokenizer{cfg: cfg, redactor: redactor}
}

// ForArtifact builds the tokenizer a trained artifact was fitted with.
func ForArtifact(a *domain.Artifact) *Tokenizer {
	return NewTokenizer(a.Tokenizer, NewPIIRedactor())
}

// Tokenize splits text into tokens. With bigrams enabled, one joined token
// per adjacent unigram pair is appended after the unigrams.
func (t *Tokenizer) Tokenize(text string) []string {
	if t.cfg.Redact && t.redactor != nil {
		text = t.redactor.Redact(text)
	}
	if t.cfg.Lowercase {
		text = strings.ToLower(text)
	}

	unigrams := splitTokens(text)
	if !t.cfg.UseBigrams || len(unigrams) < 2 {
		return unigrams
	}

	tokens := make([]string, len(unigrams), 2*len(unigrams)-1)
	copy(tokens, unigrams)
	for i := 0; i+1 < len(unigrams); i++ {
		tokens = append(tokens, unigrams[i]+BigramSeparator+unigrams[i+1])
	}
	return tokens
}

// splitTokens scans left to right; a boundary is any rune that is not
// alphanumeric, apostrophe, or hyphen. Apostrophes and hyphens only count
// as token-internal characters, so leading and trailing runs are trimmed.
func splitTokens(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		token := strings.Trim(current.String(), "'-")
		current.Reset()
		if token != "" {
			tokens = append(tokens, token)
		}
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-' {
			current.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}
