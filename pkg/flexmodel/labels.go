package flexmodel

import (
	"html"
	"strings"
	"sync"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

// maxEntityPasses bounds entity decoding for labels encoded several times
// over (e.g. "&amp;lt;b&amp;gt;").
const maxEntityPasses = 4

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

// DefaultLabeler converts a field name into a title-cased label. Words break
// on any non letter/digit rune, on lower-to-upper case changes and between
// letters and digits: "contact_email" -> "Contact Email", "addressLine2" ->
// "Address Line 2".
func DefaultLabeler(name string) string {
	var (
		words   []string
		current []rune
	)
	flush := func() {
		if len(current) > 0 {
			words = append(words, capitalise(current))
			current = current[:0]
		}
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(current) > 0 && wordBreak(current[len(current)-1], r) {
			flush()
		}
		current = append(current, r)
	}
	flush()
	return strings.Join(words, " ")
}

func wordBreak(prev, next rune) bool {
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(next):
		return true
	case unicode.IsLetter(prev) && unicode.IsDigit(next):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(next):
		return true
	}
	return false
}

func capitalise(word []rune) string {
	out := make([]rune, len(word))
	for idx, r := range word {
		if idx == 0 {
			out[idx] = unicode.ToUpper(r)
			continue
		}
		out[idx] = unicode.ToLower(r)
	}
	return string(out)
}

// SanitizeLabel reduces a configured label to plain text. Entities are
// decoded before markup is stripped, so encoded tags are removed like literal
// ones. Anything that parses as a tag is dropped, including text such as
// "<USD>".
func SanitizeLabel(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	for pass := 0; pass < maxEntityPasses; pass++ {
		decoded := html.UnescapeString(text)
		if decoded == text {
			break
		}
		text = decoded
	}
	cleaned := labelSanitizer().Sanitize(text)
	// The policy escapes the surviving text; a '<' left over cannot open a tag.
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func labelSanitizer() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		labelPolicy = bluemonday.StrictPolicy()
	})
	return labelPolicy
}
