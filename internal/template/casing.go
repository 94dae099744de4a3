package template

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseNames lists the supported case transforms
var CaseNames = []string{
	"lower",
	"upper",
	"snake",
	"screaming-snake",
	"kebab",
	"train",
	"sentence",
	"title",
	"pascal",
}

// ApplyCase transforms value according to the named case.
// The second return value is false if the case name is unknown, in which case value is returned unchanged.
func ApplyCase(name, value string) (string, bool) {
	switch strings.ToLower(name) {
	case "lower":
		return cases.Lower(language.Und).String(value), true
	case "upper":
		return cases.Upper(language.Und).String(value), true
	case "snake":
		return strings.Join(lowerWords(value), "_"), true
	case "screaming-snake":
		return cases.Upper(language.Und).String(strings.Join(lowerWords(value), "_")), true
	case "kebab":
		return strings.Join(lowerWords(value), "-"), true
	case "train":
		return strings.Join(titleWords(value), "-"), true
	case "sentence":
		words := lowerWords(value)
		if len(words) > 0 {
			words[0] = cases.Title(language.Und).String(words[0])
		}
		return strings.Join(words, " "), true
	case "title":
		return strings.Join(titleWords(value), " "), true
	case "pascal":
		return strings.Join(titleWords(value), ""), true
	default:
		return value, false
	}
}

func lowerWords(value string) []string {
	lower := cases.Lower(language.Und)
	words := splitWords(value)
	for i, w := range words {
		words[i] = lower.String(w)
	}
	return words
}

func titleWords(value string) []string {
	title := cases.Title(language.Und)
	words := splitWords(value)
	for i, w := range words {
		words[i] = title.String(w)
	}
	return words
}

// splitWords breaks value into words on separators, lower-to-upper transitions
// and the end of an acronym ("HTTPServer" -> "HTTP", "Server").
func splitWords(value string) []string {
	runes := []rune(value)
	var words []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(current) > 0 {
			prev := current[len(current)-1]
			nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextIsLower) {
				flush()
			}
		}
		current = append(current, r)
	}
	flush()

	return words
}
