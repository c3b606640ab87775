package geocode

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// maxScanRunes bounds how much of an address is scanned for keywords.
const maxScanRunes = 2048

var indiaPinCode = regexp.MustCompile(`\b[1-9][0-9]{5}\b`)

// searchText is an address normalised for token-boundary matching: lowercase,
// every non letter/digit collapsed to one space, and padded with a space on both ends.
type searchText struct {
	raw    string
	padded string
}

func newSearchText(address string) searchText {
	address = strings.ToValidUTF8(address, " ")

	var b strings.Builder
	b.Grow(len(address) + 2)
	b.WriteByte(' ')

	runes := 0
	lastSpace := true
	for i, r := range address {
		if runes >= maxScanRunes {
			address = address[:i]

			break
		}
		runes++

		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
			lastSpace = false

			continue
		}
		if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}
	if !lastSpace {
		b.WriteByte(' ')
	}

	return searchText{raw: address, padded: b.String()}
}

// contains reports whether phrase appears in the text on token boundaries.
func (t searchText) contains(phrase string) bool {
	needle := newSearchText(phrase).padded
	if strings.TrimSpace(needle) == "" {
		return false
	}

	return strings.Contains(t.padded, needle)
}

func (t searchText) containsAny(phrases []string) bool {
	for _, p := range phrases {
		if t.contains(p) {
			return true
		}
	}

	return false
}

// phrase is one searchable name pointing back at a table row.
type phrase struct {
	text  string
	index int
}

// buildPhrases orders names longest first so "navi mumbai" beats "mumbai".
// Equal lengths keep table order.
func buildPhrases(count int, names func(i int) []string) []phrase {
	var out []phrase
	for i := range count {
		for _, n := range names(i) {
			out = append(out, phrase{text: strings.ToLower(n), index: i})
		}
	}
	slices.SortStableFunc(out, func(a, b phrase) int {
		return cmp.Compare(len(b.text), len(a.text))
	})

	return out
}

func firstMatch(t searchText, phrases []phrase) (int, bool) {
	for _, p := range phrases {
		if t.contains(p.text) {
			return p.index, true
		}
	}

	return 0, false
}

// compiled lookup order for each region table, built once at init.
type regionMatcher struct {
	table        *regionTable
	cityPhrases  []phrase
	statePhrases []phrase
}

var regionMatchers = func() map[string]*regionMatcher {
	out := make(map[string]*regionMatcher, len(regionTables))
	for code, table := range regionTables {
		out[code] = &regionMatcher{
			table: table,
			cityPhrases: buildPhrases(len(table.cities), func(i int) []string {
				return append([]string{table.cities[i].name}, table.cities[i].aliases...)
			}),
			statePhrases: buildPhrases(len(table.states), func(i int) []string {
				return append([]string{table.states[i].name}, table.states[i].aliases...)
			}),
		}
	}

	return out
}()

func (m *regionMatcher) matchCity(t searchText) (cityEntry, bool) {
	i, ok := firstMatch(t, m.cityPhrases)
	if !ok {
		return cityEntry{}, false
	}

	return m.table.cities[i], true
}

func (m *regionMatcher) matchState(t searchText) (stateEntry, bool) {
	i, ok := firstMatch(t, m.statePhrases)
	if !ok {
		return stateEntry{}, false
	}

	return m.table.states[i], true
}

// mentions reports whether the text carries any city, state, or address convention of the table.
func (m *regionMatcher) mentions(t searchText, countryCode string) bool {
	if _, ok := m.matchCity(t); ok {
		return true
	}
	if _, ok := m.matchState(t); ok {
		return true
	}
	if t.containsAny(m.table.keywords) {
		return true
	}

	return countryCode == indiaCode && indiaPinCode.MatchString(t.raw)
}
