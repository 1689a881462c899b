package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToUpper converts a string to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// ToTitle converts a string to Title Case using Unicode casing rules.
func ToTitle(s string) string {
	return cases.Title(language.Und).String(s)
}

// TrimToLower removes leading and trailing whitespace and converts to lowercase.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ToKebabCase converts a string to kebab-case by replacing non-alphanumeric
// characters with hyphens and collapsing runs of them.
func ToKebabCase(s string) string {
	return toDelimited(s, '-')
}

// ToSnakeCase converts a string to snake_case by replacing non-alphanumeric
// characters with underscores and collapsing runs of them.
func ToSnakeCase(s string) string {
	return toDelimited(s, '_')
}

func toDelimited(s string, sep rune) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	prevSep := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevSep = false
			continue
		}
		if !prevSep {
			b.WriteRune(sep)
			prevSep = true
		}
	}

	return strings.Trim(b.String(), string(sep))
}

// ToCamelCase converts a string to camelCase. Non-alphanumeric characters
// start new words; the first word is lowercased, subsequent words are
// capitalized.
func ToCamelCase(s string) string {
	s = strings.TrimSpace(s)

	var b strings.Builder
	newWord := false
	first := true
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			switch {
			case first:
				b.WriteRune(unicode.ToLower(r))
				first = false
			case newWord:
				b.WriteRune(unicode.ToUpper(r))
				newWord = false
			default:
				b.WriteRune(unicode.ToLower(r))
			}
			continue
		}
		if !first {
			newWord = true
		}
	}

	return b.String()
}

// accentStripper decomposes to NFD, drops combining marks, and recomposes to
// NFC. Transformer values from transform.Chain are stateless and shareable.
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// RemoveAccents replaces accented letters with their base form ("café" →
// "cafe"). Characters that do not decompose into a base letter plus combining
// marks (e.g. "ø", "ß") are left as-is. On a transformation failure the
// original string is returned unchanged.
func RemoveAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}

// StripBackslashes removes all literal backslash characters. Used to undo
// escape-style quoting before further processing, e.g. ahead of HTML parsing.
func StripBackslashes(s string) string {
	return strings.ReplaceAll(s, `\`, "")
}

// StripHTML removes HTML tags and unescapes HTML entities.
func StripHTML(s string) string {
	re := regexp.MustCompile(`<[^>]*>`)
	stripped := re.ReplaceAllString(s, "")

	return html.UnescapeString(stripped)
}

// RemoveExtraWhitespace collapses runs of whitespace into a single space and
// trims the result.
func RemoveExtraWhitespace(s string) string {
	re := regexp.MustCompile(`\s+`)
	return strings.TrimSpace(re.ReplaceAllString(s, " "))
}

// MaxLength truncates a string to the specified maximum number of runes.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen])
}
