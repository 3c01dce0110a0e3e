// Package rank orders workspace entries against a search query using fuzzy
// subsequence matching. Ranking is a pure function and is run on every
// keystroke.
package rank

import (
	"sort"

	"github.com/sahilm/fuzzy"

	"trygo/internal/workspace"
)

// entryNames adapts a slice of entries to fuzzy.Source so matching runs
// directly over entry names without building an intermediate string slice.
type entryNames []workspace.Entry

func (e entryNames) String(i int) string { return e[i].Name }
func (e entryNames) Len() int            { return len(e) }

// Rank returns the entries whose names contain query as an ordered
// subsequence, best match first. Ties keep input order. An empty query is
// the identity projection: the entries come back in their existing order
// with no re-sort.
func Rank(entries []workspace.Entry, query string) []workspace.Entry {
	if query == "" {
		out := make([]workspace.Entry, len(entries))
		copy(out, entries)
		return out
	}

	matches := fuzzy.FindFrom(query, entryNames(entries))
	// The matcher returns equal-score runs in reversed input order; re-sort
	// so ties follow the source slice.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Index < matches[j].Index
	})
	out := make([]workspace.Entry, 0, len(matches))
	for _, m := range matches {
		e := entries[m.Index]
		e.Score = m.Score
		out = append(out, e)
	}
	return out
}
