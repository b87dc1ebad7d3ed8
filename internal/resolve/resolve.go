// Package resolve decides whether a free-text token denotes a known artist or
// genre. There is no canonical entity table, so matching is case-insensitive
// substring containment against the distinct name set, with a small fixed set
// of casing and prefix variations tried when the literal token misses. No
// fuzzy or edit-distance matching is attempted.
package resolve

import "strings"

// Index is a lookup structure over a distinct name set, built once per
// session. Names keep their store order so that the first match is
// deterministic.
type Index struct {
	names []string
	lower []string
}

func NewIndex(names []string) *Index {
	ix := &Index{
		names: names,
		lower: make([]string, len(names)),
	}
	for i, n := range names {
		ix.lower[i] = strings.ToLower(n)
	}
	return ix
}

// Resolve returns the first indexed name containing the candidate (or one of
// its variations), case-insensitively. The unmodified candidate is tried
// first; resolution stops at the first variation that matches.
func (ix *Index) Resolve(candidate string) (string, bool) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return "", false
	}
	if name, ok := ix.lookup(candidate); ok {
		return name, true
	}
	for _, v := range Variations(candidate) {
		if name, ok := ix.lookup(v); ok {
			return name, true
		}
	}
	return "", false
}

func (ix *Index) lookup(candidate string) (string, bool) {
	c := strings.ToLower(candidate)
	for i, l := range ix.lower {
		if strings.Contains(l, c) {
			return ix.names[i], true
		}
	}
	return "", false
}

// Variations generates the deterministic name variations tried after a
// literal miss, in order: for multi-word names, the first word reduced to an
// initial ("j cole" -> "J. cole"), each word capitalized, each word
// upper-cased, and a "The " prefix on the title-cased phrase. Single-word
// names get the capitalized, upper-cased, and "The "-prefixed forms.
func Variations(name string) []string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return nil
	}

	if len(words) >= 2 {
		initial := strings.ToUpper(words[0][:1]) + "."
		return []string{
			initial + " " + strings.Join(words[1:], " "),
			joinMapped(words, capitalize),
			joinMapped(words, strings.ToUpper),
			"The " + joinMapped(words, capitalize),
		}
	}

	word := words[0]
	return []string{
		capitalize(word),
		strings.ToUpper(word),
		"The " + capitalize(word),
	}
}

func joinMapped(words []string, f func(string) string) string {
	mapped := make([]string, len(words))
	for i, w := range words {
		mapped[i] = f(w)
	}
	return strings.Join(mapped, " ")
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}
