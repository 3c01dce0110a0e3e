package rank

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"trygo/internal/workspace"
)

func entries(names ...string) []workspace.Entry {
	out := make([]workspace.Entry, 0, len(names))
	for i, n := range names {
		out = append(out, workspace.Entry{
			Name:     n,
			Modified: time.Unix(int64(1000-i), 0),
		})
	}
	return out
}

func names(es []workspace.Entry) []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.Name)
	}
	return out
}

// isSubsequence reports whether query's characters appear in name in order.
func isSubsequence(name, query string) bool {
	rs := []rune(name)
	i := 0
	for _, q := range query {
		for i < len(rs) && rs[i] != q {
			i++
		}
		if i == len(rs) {
			return false
		}
		i++
	}
	return true
}

func TestRankEmptyQueryIsIdentity(t *testing.T) {
	in := entries("beta", "alpha", "zulu")
	out := Rank(in, "")
	assert.Equal(t, names(in), names(out), "empty query must preserve input order")
}

func TestRankPreservesRecencyOrderOnEmptyQuery(t *testing.T) {
	in := []workspace.Entry{
		{Name: "beta", Modified: time.Unix(200, 0)},
		{Name: "alpha", Modified: time.Unix(100, 0)},
	}
	out := Rank(in, "")
	assert.Equal(t, []string{"beta", "alpha"}, names(out))
}

func TestRankFiltersToSubsequenceMatches(t *testing.T) {
	out := Rank(entries("abc", "axb", "zzz"), "ab")

	got := names(out)
	assert.Contains(t, got, "abc")
	assert.Contains(t, got, "axb")
	assert.NotContains(t, got, "zzz")
}

func TestRankContiguousMatchBeatsSplitMatch(t *testing.T) {
	// "axb" comes first so a win for "abc" proves score order, not input
	// order: "abc" matches "ab" contiguously, "axb" splits the match.
	out := Rank(entries("axb", "abc", "zzz"), "ab")
	require.Len(t, out, 2)

	assert.Equal(t, "abc", out[0].Name)
	assert.GreaterOrEqual(t, out[0].Score, out[1].Score)
}

func TestRankEqualScoresKeepInputOrder(t *testing.T) {
	// Both names match "a" at the same position with the same number of
	// unmatched runes, so their scores tie; the tie must not reverse.
	in := entries("aaaaaaaaaaaa", "aaaaaaaaaaab")
	out := Rank(in, "a")

	require.Len(t, out, 2)
	require.Equal(t, out[0].Score, out[1].Score)
	assert.Equal(t, []string{"aaaaaaaaaaaa", "aaaaaaaaaaab"}, names(out))

	again := Rank(out, "a")
	assert.Equal(t, names(out), names(again), "re-ranking must not reorder ties")
}

func TestRankDoesNotMutateInput(t *testing.T) {
	in := entries("alpha", "abc")
	before := names(in)
	_ = Rank(in, "ab")
	assert.Equal(t, before, names(in))
}

func TestRankPropertyIdempotent(t *testing.T) {
	nameGen := rapid.StringMatching(`[a-z]{1,12}`)

	rapid.Check(t, func(t *rapid.T) {
		in := entries(rapid.SliceOfN(nameGen, 0, 20).Draw(t, "names")...)
		query := rapid.StringMatching(`[a-z]{0,4}`).Draw(t, "query")

		once := Rank(in, query)
		twice := Rank(once, query)
		if !assert.ObjectsAreEqual(names(once), names(twice)) {
			t.Fatalf("ranking is not idempotent: %v vs %v (query %q)", names(once), names(twice), query)
		}
	})
}

func TestRankPropertySubsequenceContainment(t *testing.T) {
	nameGen := rapid.StringMatching(`[a-z]{1,12}`)

	rapid.Check(t, func(t *rapid.T) {
		in := entries(rapid.SliceOfN(nameGen, 0, 20).Draw(t, "names")...)
		query := rapid.StringMatching(`[a-z]{1,4}`).Draw(t, "query")

		out := Rank(in, query)
		kept := make(map[string]bool, len(out))
		for _, e := range out {
			kept[e.Name] = true
			if !isSubsequence(e.Name, query) {
				t.Fatalf("ranked entry %q does not contain %q as a subsequence", e.Name, query)
			}
		}
		for _, e := range in {
			if !kept[e.Name] && isSubsequence(e.Name, query) {
				t.Fatalf("entry %q matches %q but was excluded", e.Name, query)
			}
		}
	})
}

func TestRankPropertyEmptyQueryIdentity(t *testing.T) {
	nameGen := rapid.StringMatching(`[a-z]{1,12}`)

	rapid.Check(t, func(t *rapid.T) {
		in := entries(rapid.SliceOfN(nameGen, 0, 20).Draw(t, "names")...)
		out := Rank(in, "")
		if !assert.ObjectsAreEqual(names(in), names(out)) {
			t.Fatalf("empty query changed order: %v vs %v", names(in), names(out))
		}
	})
}
