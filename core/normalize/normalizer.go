// Package normalize canonicalizes run, lift and element-id labels into a
// comparable key. Every function here is pure and safe for concurrent use.
package normalize

import (
	"strings"
)

// NameKey is the canonical join key between scraped names and map entries.
type NameKey string

// quoteReplacer unifies apostrophe look-alikes, including the UTF-8-read-as-
// Windows-1252 form of U+2019 that shows up in scraped markup. The left quote
// U+2018 is folded too; the page has been seen to use it as an apostrophe.
// The mojibake form is listed in both cases so display text folds too.
var quoteReplacer = strings.NewReplacer(
	"\u00e2\u20ac\u2122", "'",
	"\u00c2\u20ac\u2122", "'",
	"\u2019", "'",
	"\u2018", "'",
	"\u02bc", "'",
	"\u00a0", " ",
)

// Normalize lowercases text, unifies apostrophes and non-breaking spaces,
// turns runs of '_' and '-' into a single space and collapses whitespace.
// Lowercasing happens before quote folding so that an upper-case mojibake
// apostrophe folds on the first pass and Normalize stays idempotent.
//
//	Normalize("Valley_of--10") == "valley of 10"
//	Normalize("Wiegele’s  Run") == "wiegele's run"
func Normalize(text string) NameKey {
	if text == "" {
		return ""
	}
	s := quoteReplacer.Replace(strings.ToLower(text))
	s = strings.Map(func(r rune) rune {
		if r == '_' || r == '-' {
			return ' '
		}
		return r
	}, s)
	return NameKey(strings.Join(strings.Fields(s), " "))
}

// Identify returns the slug form of text: the normalized key with spaces
// replaced by hyphens.
//
//	Identify("Valley of 10") == "valley-of-10"
func Identify(text string) string {
	return Normalize(text).Join("-")
}

// Join returns the key with its single spaces replaced by sep.
func (k NameKey) Join(sep string) string {
	return strings.ReplaceAll(string(k), " ", sep)
}

// LooseKey drops apostrophes so that "Asteroid's" and "Asteroids" compare
// equal. Only the offline identifier-map builder uses it.
func LooseKey(k NameKey) NameKey {
	return NameKey(strings.ReplaceAll(string(k), "'", ""))
}

// Clean tidies a display label without changing its case: non-breaking
// spaces and quote variants are unified and whitespace collapsed.
func Clean(text string) string {
	return strings.Join(strings.Fields(quoteReplacer.Replace(text)), " ")
}
