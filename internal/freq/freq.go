// Package freq aggregates segmented tokens into the frequency table the
// charts and listings are built from.
package freq

import (
	"sort"
	"strings"

	"github.com/wordscope/wordscope/internal/stopwords"
)

// Entry is one (token, count) pair of the ranked output.
type Entry struct {
	Token string
	Count int
}

// Table counts tokens while remembering the order in which each token was
// first seen. First-seen order is the tie-break for equally frequent tokens,
// so top-N output stays deterministic when counts collide.
type Table struct {
	counts map[string]int
	order  []string
}

func NewTable() *Table {
	return &Table{counts: make(map[string]int)}
}

// Add increments token's count, recording its first-seen position on first
// insert. The caller is responsible for filtering; Add counts whatever it is
// given.
func (t *Table) Add(token string) {
	if _, seen := t.counts[token]; !seen {
		t.order = append(t.order, token)
	}
	t.counts[token]++
}

// Get returns token's count, zero when absent.
func (t *Table) Get(token string) int { return t.counts[token] }

// Len returns the number of distinct tokens.
func (t *Table) Len() int { return len(t.order) }

// Total returns the sum of all counts, i.e. how many token occurrences were
// aggregated.
func (t *Table) Total() int {
	total := 0
	for _, n := range t.counts {
		total += n
	}
	return total
}

// Entries returns all (token, count) pairs in first-seen order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, tok := range t.order {
		entries = append(entries, Entry{Token: tok, Count: t.counts[tok]})
	}
	return entries
}

// TopN returns the n most frequent entries, counts descending. Ties keep
// first-seen order: the stable sort runs over Entries, which is already in
// that order. n of zero or less yields nil; n beyond the table returns
// everything.
func (t *Table) TopN(n int) []Entry {
	if n <= 0 {
		return nil
	}
	entries := t.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// Collect aggregates tokens into a table, trimming each token and dropping
// empties and stopword members. The resulting table never holds an empty key
// or a stopword, and every count is at least one.
func Collect(tokens []string, stop stopwords.Set) *Table {
	t := NewTable()
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" || stop.Has(tok) {
			continue
		}
		t.Add(tok)
	}
	return t
}
