// Package normalize canonicalizes cell text for comparison. Stored values
// are never rewritten; both sides of a comparison pass through Fold so that
// spelling variants of the same text do not count as conflicts.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

// umlautDigraphs expands the German umlaut vowels to their digraph
// spellings. Case folding runs first, so only lower-case forms occur here.
var umlautDigraphs = strings.NewReplacer("ä", "ae", "ö", "oe", "ü", "ue")

// Fold canonicalizes s: Unicode case folding (which turns "ß" into "ss"),
// hyphens to spaces, umlaut digraph expansion, whitespace runs collapsed to
// single spaces, and surrounding whitespace trimmed. Fold is idempotent.
func Fold(s string) string {
	s = cases.Fold().String(s)
	s = strings.ReplaceAll(s, "-", " ")
	s = umlautDigraphs.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// Equal reports whether a and b are the same text under Fold.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}
