// SPDX-License-Identifier: MIT

package rcv

import (
	"math"
	"testing"
)

func mustBallots(t *testing.T, raw [][]int32) []RankedBallot {
	t.Helper()
	ballots, err := ParseBallots(raw)
	if err != nil {
		t.Fatalf("ParseBallots(%v): %v", raw, err)
	}
	return ballots
}

func TestTrieInsertCounterMonotonicity(t *testing.T) {
	trie := NewTrie()
	trie.InsertAll(mustBallots(t, [][]int32{
		{1, 2, 3}, {1, 2}, {1, 3}, {2}, {2, 1}, {3, 1, 2},
	}))

	var walk func(n *trieNode)
	walk = func(n *trieNode) {
		for _, c := range n.children {
			if c.numVotes > n.numVotes {
				t.Fatalf("child.numVotes %d > parent.numVotes %d", c.numVotes, n.numVotes)
			}
			walk(c)
		}
	}
	walk(trie.root)
}

func TestTrieConservation(t *testing.T) {
	ballots := mustBallots(t, [][]int32{
		{1, 2, 3}, {1}, {2, -1}, {3, -2}, {1, 3},
	})
	trie := NewTrie()
	trie.InsertAll(ballots)

	if got, want := trie.NumVotes(), uint64(len(ballots)); got != want {
		t.Fatalf("NumVotes() = %d, want %d", got, want)
	}

	var total uint64
	for _, child := range trie.root.children {
		total += child.numVotes
	}
	if total != trie.NumVotes() {
		t.Fatalf("sum of root children = %d, want %d", total, trie.NumVotes())
	}
}

func TestTrieInsertionOrderIndependence(t *testing.T) {
	raw := [][]int32{
		{1, 2, 3}, {1, 2}, {2, 1}, {3}, {1, 3, 2}, {2, 1},
	}

	forward := NewTrie()
	forward.InsertAll(mustBallots(t, raw))

	reversedRaw := make([][]int32, len(raw))
	for i, r := range raw {
		reversedRaw[len(raw)-1-i] = r
	}
	reversed := NewTrie()
	reversed.InsertAll(mustBallots(t, reversedRaw))

	if forward.NumVotes() != reversed.NumVotes() {
		t.Fatalf("NumVotes differ: %d vs %d", forward.NumVotes(), reversed.NumVotes())
	}
	// float32 sums depend on accumulation order, so scores are compared
	// within a tolerance rather than exactly.
	for c, score := range forward.dowdall {
		if math.Abs(float64(reversed.dowdall[c]-score)) > 1e-5 {
			t.Errorf("dowdall[%d] = %v, want %v", c, reversed.dowdall[c], score)
		}
	}

	for _, b := range mustBallots(t, raw) {
		fPath, fOK := forward.Lookup(b)
		rPath, rOK := reversed.Lookup(b)
		if fOK != rOK {
			t.Fatalf("lookup mismatch for %v", b)
		}
		if fOK {
			if fPath[len(fPath)-1].numVotes != rPath[len(rPath)-1].numVotes {
				t.Errorf("numVotes at leaf for %v differ", b)
			}
		}
	}
}

func TestTrieLookup(t *testing.T) {
	trie := NewTrie()
	trie.InsertAll(mustBallots(t, [][]int32{{1, 2}, {1, 3}}))

	b, _ := NewRankedBallot([]int32{1, 2})
	path, ok := trie.Lookup(b)
	if !ok {
		t.Fatal("expected lookup to succeed")
	}
	if len(path) != 3 {
		t.Fatalf("len(path) = %d, want 3", len(path))
	}
	if path[len(path)-1].numVotes != 1 {
		t.Errorf("leaf numVotes = %d, want 1", path[len(path)-1].numVotes)
	}

	missing, _ := NewRankedBallot([]int32{1, 4})
	if _, ok := trie.Lookup(missing); ok {
		t.Fatal("expected lookup of missing path to fail")
	}
}
