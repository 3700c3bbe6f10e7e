// Package naming converts arbitrary identifier names between case
// conventions (PascalCase, camelCase, snake_case, kebab-case).
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Convention identifies a target case convention.
type Convention string

const (
	PascalCase Convention = "PascalCase"
	CamelCase  Convention = "camelCase"
	SnakeCase  Convention = "snake_case"
	KebabCase  Convention = "kebab-case"
)

var titleCaser = cases.Title(language.English)

// SplitWords splits a raw name into word tokens. Separators are whitespace,
// hyphens and underscores; every uppercase letter also starts a new word,
// so "userService" splits into ["user", "Service"] and "URL" into
// ["U", "R", "L"]. Digits stay attached to the word they follow.
func SplitWords(raw string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for _, r := range raw {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			flush()
		case unicode.IsUpper(r):
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return words
}

// Transform converts raw into the given convention. Transform is idempotent:
// applying the same convention twice yields the same result.
func Transform(raw string, convention Convention) string {
	words := SplitWords(raw)
	if len(words) == 0 {
		return ""
	}

	switch convention {
	case PascalCase:
		var b strings.Builder
		for _, w := range words {
			b.WriteString(titleCaser.String(strings.ToLower(w)))
		}
		return b.String()
	case CamelCase:
		var b strings.Builder
		for i, w := range words {
			if i == 0 {
				b.WriteString(strings.ToLower(w))
			} else {
				b.WriteString(titleCaser.String(strings.ToLower(w)))
			}
		}
		return b.String()
	case SnakeCase:
		return joinLower(words, "_")
	case KebabCase:
		return joinLower(words, "-")
	default:
		return raw
	}
}

func joinLower(words []string, sep string) string {
	lowered := make([]string, len(words))
	for i, w := range words {
		lowered[i] = strings.ToLower(w)
	}
	return strings.Join(lowered, sep)
}

// ApplySuffix appends suffix to base unless base already ends with it,
// compared case-insensitively. "UserService" + "Service" stays
// "UserService"; "User" + "Service" becomes "UserService".
func ApplySuffix(base, suffix string) string {
	if suffix == "" {
		return base
	}
	if len(base) >= len(suffix) && strings.EqualFold(base[len(base)-len(suffix):], suffix) {
		return base
	}
	return base + suffix
}
