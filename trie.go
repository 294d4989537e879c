// SPDX-License-Identifier: MIT

package rcv

import "math"

// trieNode is a level node in the ballot prefix trie. It holds a
// mapping from ballot value to child node and an unsigned counter of
// how many inserted ballots pass through (or terminate at) it.
//
// Invariant: for every node n and child c, c.numVotes <= n.numVotes.
// The difference is the number of ballots that terminate exactly at n.
type trieNode struct {
	children map[BallotValue]*trieNode
	numVotes uint64
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[BallotValue]*trieNode)}
}

// child returns the existing child reached by v, creating it if
// absent.
func (n *trieNode) child(v BallotValue) *trieNode {
	c, ok := n.children[v]
	if !ok {
		c = newTrieNode()
		n.children[v] = c
	}
	return c
}

// Trie is a prefix trie over ranked ballots. Two ballots sharing the
// same length-k prefix of ballot values share the same length-k path,
// so eliminating the candidate at depth d transfers exactly the
// sub-tries rooted at that candidate's depth-d children, with no
// ballot rescan.
//
// The dowdall score table and unique-candidate set are accumulated
// alongside trie construction since both are driven by the same
// insertion walk.
type Trie struct {
	root       *trieNode
	dowdall    map[uint32]float32
	candidates map[uint32]struct{}
}

// NewTrie returns an empty trie, ready to insert into.
func NewTrie() *Trie {
	return &Trie{
		root:       newTrieNode(),
		dowdall:    make(map[uint32]float32),
		candidates: make(map[uint32]struct{}),
	}
}

// NumVotes returns the number of ballots inserted so far.
func (t *Trie) NumVotes() uint64 {
	return t.root.numVotes
}

// Insert adds ballot to the trie, walking it in rank order and
// creating children as needed, incrementing every visited node's
// counter and, for each ranked candidate, its Dowdall score.
func (t *Trie) Insert(ballot RankedBallot) {
	t.root.numVotes++
	current := t.root

	rank := 0
	for v := range ballot.Values() {
		if c, ok := v.Candidate(); ok {
			t.candidates[c] = struct{}{}
			t.dowdall[c] += 1 / float32(rank+1)
			if !isFinite32(t.dowdall[c]) {
				panic("rcv: dowdall score overflowed to a non-finite value")
			}
		}
		current = current.child(v)
		current.numVotes++
		rank++
	}
}

// InsertAll inserts every ballot in ballots.
func (t *Trie) InsertAll(ballots []RankedBallot) {
	for _, b := range ballots {
		t.Insert(b)
	}
}

// Lookup returns the path of nodes matching ballot, root first, or
// false if any prefix is missing from the trie.
func (t *Trie) Lookup(ballot RankedBallot) ([]*trieNode, bool) {
	path := make([]*trieNode, 1, ballot.Len()+1)
	path[0] = t.root
	current := t.root

	for v := range ballot.Values() {
		next, ok := current.children[v]
		if !ok {
			return nil, false
		}
		path = append(path, next)
		current = next
	}
	return path, true
}

// Candidates returns the set of every candidate id ever inserted.
func (t *Trie) Candidates() map[uint32]struct{} {
	return t.candidates
}

func isFinite32(f float32) bool {
	f64 := float64(f)
	return !math.IsNaN(f64) && !math.IsInf(f64, 0)
}
