// SPDX-License-Identifier: MIT

package rcv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPairwiseTableListedBeforeBoth(t *testing.T) {
	trie := NewTrie()
	trie.InsertAll(mustBallots(t, [][]int32{{1, 2, 3}}))

	table := BuildPairwiseTable(trie)
	require.EqualValues(t, 1, table.Get(1, 2))
	require.EqualValues(t, 1, table.Get(1, 3))
	require.EqualValues(t, 1, table.Get(2, 3))
	require.EqualValues(t, 0, table.Get(2, 1))
	require.EqualValues(t, 0, table.Get(3, 1))
	require.EqualValues(t, 0, table.Get(3, 2))
}

func TestPairwiseTableUnlistedConvention(t *testing.T) {
	// ballot ranks only candidate 1, leaving 2 and 3 unlisted: 1 is
	// preferred over both by the listed-vs-unlisted convention.
	trie := NewTrie()
	trie.Insert(must(t, []int32{1}))
	trie.candidates[2] = struct{}{}
	trie.candidates[3] = struct{}{}

	table := BuildPairwiseTable(trie)
	require.EqualValues(t, 1, table.Get(1, 2))
	require.EqualValues(t, 1, table.Get(1, 3))
	require.EqualValues(t, 0, table.Get(2, 1))
	require.EqualValues(t, 0, table.Get(3, 1))
}

func TestPairwiseTableWithholdDoesNotRecurse(t *testing.T) {
	trie := NewTrie()
	trie.InsertAll(mustBallots(t, [][]int32{{1, -1}, {2, 1}}))

	table := BuildPairwiseTable(trie)
	// candidate 1's withhold ballot contributes no preference past 1.
	require.EqualValues(t, 1, table.Get(2, 1))
	require.EqualValues(t, 0, table.Get(1, 2))
}

func TestPairwiseTotalsBound(t *testing.T) {
	ballots := mustBallots(t, [][]int32{
		{1, 2, 3}, {2, 3, 1}, {3}, {1}, {2, 1},
	})
	trie := NewTrie()
	trie.InsertAll(ballots)
	table := BuildPairwiseTable(trie)

	total := uint64(len(ballots))
	for a := range trie.candidates {
		for b := range trie.candidates {
			if a == b {
				continue
			}
			require.LessOrEqualf(t, table.Get(a, b)+table.Get(b, a), total,
				"pair (%d,%d) exceeds total ballots", a, b)
		}
	}
}

func must(t *testing.T, raw []int32) RankedBallot {
	t.Helper()
	b, err := NewRankedBallot(raw)
	require.NoError(t, err)
	return b
}
