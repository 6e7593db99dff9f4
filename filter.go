package symdex

import "strings"

// SymbolFilter selects symbols by label keywords.
type SymbolFilter struct {
	// Terms are lowercase substrings that must all occur in the lowercased label.
	Terms []string
}

// NewSymbolFilter returns a filter for the given keywords, lowercased.
func NewSymbolFilter(terms ...string) *SymbolFilter {
	f := &SymbolFilter{Terms: make([]string, 0, len(terms))}
	for _, t := range terms {
		f.Terms = append(f.Terms, strings.ToLower(t))
	}
	return f
}

// Match returns true if the label contains every term, ignoring case.
// If the filter is nil, every label matches.
func (f *SymbolFilter) Match(label string) bool {
	if f == nil {
		return true
	}
	label = strings.ToLower(label)
	for _, t := range f.Terms {
		if !strings.Contains(label, t) {
			return false
		}
	}
	return true
}

// FilterSymbols returns the symbols whose labels match f, preserving order.
func FilterSymbols(symbols []*Symbol, f *SymbolFilter) []*Symbol {
	matches := []*Symbol{}
	for _, s := range symbols {
		if f.Match(s.Label) {
			matches = append(matches, s)
		}
	}
	return matches
}
