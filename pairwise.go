// SPDX-License-Identifier: MIT

package rcv

// candidatePair is an ordered pair of candidate ids used to key the
// pairwise preference table.
type candidatePair struct {
	preferred uint32
	over      uint32
}

// PairwiseTable maps an ordered candidate pair (a, b) to the number of
// ballots preferring a over b: listed-before-b, or listing a while
// leaving b unranked entirely.
type PairwiseTable map[candidatePair]uint64

// Get returns the recorded preference weight for a over b, or 0 if the
// pair was never credited.
func (t PairwiseTable) Get(a, b uint32) uint64 {
	return t[candidatePair{preferred: a, over: b}]
}

func (t PairwiseTable) add(a, b uint32, weight uint64) {
	if weight == 0 {
		return
	}
	t[candidatePair{preferred: a, over: b}] += weight
}

// BuildPairwiseTable performs a depth-first traversal of trie carrying
// the ancestor candidates on the current search path, crediting every
// ancestor-descendant candidate pair with the number of ballots that
// rank the descendant at that point.
func BuildPairwiseTable(trie *Trie) PairwiseTable {
	table := make(PairwiseTable)
	path := make([]uint32, 0, 8)
	buildPairwiseTable(trie.root, path, table, trie.candidates)
	return table
}

func buildPairwiseTable(n *trieNode, path []uint32, table PairwiseTable, universe map[uint32]struct{}) {
	terminating := n.numVotes

	for value, child := range n.children {
		if terminating < child.numVotes {
			panic("rcv: trie child has more votes than its parent")
		}
		terminating -= child.numVotes

		candidate, ok := value.Candidate()
		if !ok {
			// special-marker edges terminate preference and are not
			// recursed into or credited.
			continue
		}

		for _, p := range path {
			table.add(p, candidate, child.numVotes)
		}

		nextPath := make([]uint32, len(path)+1)
		copy(nextPath, path)
		nextPath[len(path)] = candidate
		buildPairwiseTable(child, nextPath, table, universe)
	}

	if terminating == 0 {
		return
	}

	onPath := make(map[uint32]struct{}, len(path))
	for _, p := range path {
		onPath[p] = struct{}{}
	}

	for u := range universe {
		if _, ok := onPath[u]; ok {
			continue
		}
		for _, p := range path {
			table.add(p, u, terminating)
		}
	}
}
