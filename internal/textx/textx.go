// Package textx holds the text normalization rules shared by the stores and
// the query engine: normalized keys for case-insensitive identity, facet
// de-duplication and collation, and price formatting for reports.
package textx

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/unicode/norm"
)

// Key returns the normalized form of s used for case-insensitive identity:
// surrounding space trimmed, NFC composed, Unicode case folded.
func Key(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}

// EqualFold reports whether a and b have the same normalized key.
func EqualFold(a, b string) bool {
	return Key(a) == Key(b)
}

// DistinctFold removes case-insensitive duplicates and blank entries from
// values. The first spelling of each key wins and input order is kept.
func DistinctFold(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		k := Key(v)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, strings.TrimSpace(v))
	}
	return out
}

// SortFold sorts values in place with a case-insensitive collator.
func SortFold(values []string) {
	c := collate.New(language.Und, collate.IgnoreCase)
	c.SortStrings(values)
}

// FormatPrice renders a price rounded to whole units with thousands
// separators, e.g. 150000 -> "150,000". Any finite price is accepted.
func FormatPrice(price float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%.0f", math.Round(price))
}
