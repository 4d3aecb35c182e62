package core

// slug.go derives URL/filename-safe identifiers from display names.
//
// The fold chain handles the messy reality of catalogue product names:
// accented Latin letters are reduced to their base character (é → e),
// anything that still is not ASCII after folding is dropped, and runs of
// punctuation or whitespace collapse to a single hyphen.

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SlugFallback is used when a name folds down to nothing
// (e.g. a name written entirely in a non-Latin script).
const SlugFallback = "product"

// CardFileExt is the fixed extension appended to slugs for design files.
const CardFileExt = ".png"

// asciiFold decomposes to NFD, strips combining marks, and recomposes.
// "Café Déco" → "Cafe Deco".
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify converts a display name to a lowercase ASCII slug.
// The result matches [a-z0-9-]+ and is never empty.
func Slugify(name string) string {
	slug := foldToSlug(name)
	if slug == "" {
		return SlugFallback
	}
	return slug
}

// FileNameFor returns the design file name for a slug.
func FileNameFor(slug string) string {
	return slug + CardFileExt
}

// foldToSlug does the actual folding without the empty-result fallback.
func foldToSlug(name string) string {
	folded, _, err := transform.String(asciiFold, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r + ('a' - 'A'))
		default:
			// Non-alphanumeric (including any remaining non-ASCII):
			// collapses into at most one separator.
			pendingHyphen = true
		}
	}

	return b.String()
}

// compactTag folds a keyword like Slugify but drops separators entirely,
// producing hashtag-safe words: "Summer Dress" → "summerdress".
// Returns "" for keywords with no ASCII content.
func compactTag(keyword string) string {
	return strings.ReplaceAll(foldToSlug(keyword), "-", "")
}
