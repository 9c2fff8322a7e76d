// Package caseconv implements the word splitting and case rendering shared
// by the template filters.
package caseconv

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Style selects the rendering rule applied to a converted string.
type Style int

const (
	Camel Style = iota
	Kebab
	Lower
	Mixed
	Snake
	Title
	Upper
)

// Use golang.org/x/text/cases for whole-string recasing (strings.Title is
// deprecated and per-rune mapping misses multi-rune case folds).
var (
	lowerCaser = cases.Lower(language.Und)
	upperCaser = cases.Upper(language.Und)
)

// Split breaks the input into lowercase word fragments. A fragment starts at
// the first alphanumeric after a separator, at a lowercase-or-digit to
// uppercase transition, and inside an uppercase run before the last uppercase
// when a lowercase follows, so acronyms stay whole:
//
//	Split("user_profile") -> ["user", "profile"]
//	Split("XMLHttpRequest") -> ["xml", "http", "request"]
//	Split("v2Beta1") -> ["v2", "beta1"]
//
// Separators are dropped; input with no alphanumeric content yields no words.
func Split(s string) []string {
	var words []string
	runes := []rune(s)
	start := -1

	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, lowerCaser.String(string(runes[start:end])))
		}
		start = -1
	}

	for i, r := range runes {
		if !isWordRune(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		if !unicode.IsUpper(r) {
			continue
		}
		prev := runes[i-1]
		switch {
		case unicode.IsLower(prev) || unicode.IsDigit(prev):
			flush(i)
			start = i
		case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			flush(i)
			start = i
		}
	}
	flush(len(runes))

	return words
}

// Convert renders s in the requested style. Lower and Upper recase the raw
// input verbatim; every other style renders the split word sequence and so
// discards the original separators.
func Convert(s string, style Style) string {
	switch style {
	case Lower:
		return lowerCaser.String(s)
	case Upper:
		return upperCaser.String(s)
	}

	words := Split(s)
	switch style {
	case Camel:
		return joinCapitalized(words, "", false)
	case Mixed:
		return joinCapitalized(words, "", true)
	case Title:
		return joinCapitalized(words, " ", false)
	case Kebab:
		return strings.Join(words, "-")
	case Snake:
		return strings.Join(words, "_")
	}
	return s
}

func joinCapitalized(words []string, sep string, lowerFirst bool) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteString(sep)
		}
		if i == 0 && lowerFirst {
			b.WriteString(w)
			continue
		}
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// capitalize uppercases the first letter only; fragments from Split are
// already lowercase.
func capitalize(w string) string {
	runes := []rune(w)
	if len(runes) == 0 {
		return w
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
