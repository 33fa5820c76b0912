package tables

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Value is a single table cell. The raw source text is preserved exactly as
// read; a numeric interpretation is carried alongside when the text parses
// as a finite number. The zero Value is the missing cell.
type Value struct {
	raw     string
	num     float64
	present bool
	numeric bool
}

// Missing is the absent cell. Missing cells never conflict with anything
// and serialize as the empty string.
var Missing = Value{}

// NewValue creates a present Value from raw cell text.
func NewValue(raw string) Value {
	v := Value{raw: raw, present: true}
	num, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err == nil && !math.IsNaN(num) && !math.IsInf(num, 0) {
		v.num = num
		v.numeric = true
	}
	return v
}

// Parse maps raw cell text to a Value, producing Missing for any text in
// the NA token set. A nil set falls back to DefaultNATokens.
func Parse(raw string, na NATokens) Value {
	if na == nil {
		na = DefaultNATokens()
	}
	if na.Contains(raw) {
		return Missing
	}
	return NewValue(raw)
}

// IsMissing reports whether the cell is absent.
func (v Value) IsMissing() bool {
	return !v.present
}

// Raw returns the cell text exactly as read. Missing cells return the
// empty string.
func (v Value) Raw() string {
	return v.raw
}

// Number returns the numeric interpretation of the cell, if it has one.
func (v Value) Number() (float64, bool) {
	return v.num, v.numeric
}

// String implements fmt.Stringer.
func (v Value) String() string {
	return v.raw
}

// NATokens is the set of raw cell contents mapped to Missing at load time.
type NATokens map[string]struct{}

// NewNATokens builds a token set from the given strings.
func NewNATokens(tokens ...string) NATokens {
	set := make(NATokens, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// Contains reports whether s is in the set.
func (n NATokens) Contains(s string) bool {
	_, ok := n[s]
	return ok
}

// List returns the tokens in the set, sorted for display.
func (n NATokens) List() []string {
	tokens := make([]string, 0, len(n))
	for t := range n {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens
}

// DefaultNATokens returns the default missing-value markers. The word
// "missing" is not a marker; it is ordinary data.
func DefaultNATokens() NATokens {
	return NewNATokens("", "NA", "N/A", "NaN", "nan", "NULL", "null", "None", "n/a")
}
