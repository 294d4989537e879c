// SPDX-License-Identifier: MIT

package rcv

import "sort"

// pendingTransfer is a candidate's next-preference ballot allocation
// discovered while eliminating a weaker candidate this round.
type pendingTransfer struct {
	candidate uint32
	node      *trieNode
	votes     uint64
}

// Engine is the ranked-choice tally engine facade: it owns a ballot
// trie built up by repeated InsertVote calls, and runs the elimination
// round loop against it on demand.
//
// An Engine is not safe for concurrent use: DetermineWinner traverses
// the trie while round-local bookkeeping is live, and the trie must
// not be mutated while a round loop is in flight.
type Engine struct {
	strategy EliminationStrategy
	trie     *Trie

	// Trace, if non-nil, is called in every elimination round once the
	// weakest set is chosen and before it is removed, with that round's
	// vote counts (still including the weakest) and the weakest set. It
	// is not called in a round that ends at the majority checks.
	// It is a generalization of the original implementation's ad hoc
	// debug prints in its CondorcetRankedPairs path; the engine itself
	// never logs.
	Trace func(round int, votes map[uint32]uint64, weakest []uint32)
}

// NewEngine returns an engine with the default strategy, DowdallScoring.
func NewEngine() *Engine {
	return &Engine{strategy: DowdallScoring, trie: NewTrie()}
}

// SetStrategy changes the elimination strategy used by future calls to
// DetermineWinner.
func (e *Engine) SetStrategy(s EliminationStrategy) {
	e.strategy = s
}

// Strategy returns the engine's current elimination strategy.
func (e *Engine) Strategy() EliminationStrategy {
	return e.strategy
}

// InsertVote inserts one ballot into the engine's trie.
func (e *Engine) InsertVote(ballot RankedBallot) {
	e.trie.Insert(ballot)
}

// InsertVotes inserts every ballot in ballots into the engine's trie.
func (e *Engine) InsertVotes(ballots []RankedBallot) {
	e.trie.InsertAll(ballots)
}

// RunElection builds a fresh engine with the receiver's current
// strategy, inserts ballots, and returns its winner. It does not
// mutate the receiver.
func (e *Engine) RunElection(ballots []RankedBallot) (uint32, bool) {
	fresh := NewEngine()
	fresh.strategy = e.strategy
	fresh.InsertVotes(ballots)
	return fresh.DetermineWinner()
}

// roundState is the round-scoped bookkeeping for one DetermineWinner
// call: votes, frontier, and the two running totals. It is allocated
// fresh on every call and discarded when DetermineWinner returns.
type roundState struct {
	votes          map[uint32]uint64
	frontier       map[uint32][]*trieNode
	effectiveTotal uint64
	candidateTotal uint64
}

// DetermineWinner runs the elimination round loop to completion and
// returns the winning candidate id, or false if no candidate reaches
// a strict majority of effective votes under the engine's strategy.
func (e *Engine) DetermineWinner() (uint32, bool) {
	rs := e.initRound()

	var table PairwiseTable
	if e.strategy.usesPairwiseTable() {
		table = BuildPairwiseTable(e.trie)
	}

	for round := 1; len(rs.votes) > 0; round++ {
		if rs.candidateTotal <= rs.effectiveTotal/2 {
			return 0, false
		}

		minVotes, winner, hasWinner := scanVotes(rs.votes, rs.effectiveTotal)
		if hasWinner {
			return winner, true
		}

		lowest := candidatesWithVotes(rs.votes, minVotes)
		weakest := e.selectWeakest(lowest, rs.votes, table)

		if e.Trace != nil {
			e.Trace(round, rs.votes, weakest)
		}

		transfers, newWithhold, newAbstain := eliminate(rs, weakest)
		if len(transfers) == 0 {
			return 0, false
		}

		rs.candidateTotal -= newWithhold + newAbstain
		rs.effectiveTotal -= newAbstain

		for _, t := range transfers {
			if t.votes == 0 {
				panic("rcv: vote transfer with zero weight")
			}
			rs.votes[t.candidate] += t.votes
			rs.frontier[t.candidate] = append(rs.frontier[t.candidate], t.node)
		}
	}

	return 0, false
}

// initRound builds the round-0 state from the trie's root children.
func (e *Engine) initRound() *roundState {
	rs := &roundState{
		votes:    make(map[uint32]uint64),
		frontier: make(map[uint32][]*trieNode),
	}

	for value, node := range e.trie.root.children {
		switch {
		case value.IsCandidate():
			c, _ := value.Candidate()
			rs.votes[c] = node.numVotes
			rs.frontier[c] = []*trieNode{node}
			rs.candidateTotal += node.numVotes
			rs.effectiveTotal += node.numVotes

		default:
			marker, _ := value.Special()
			if marker == Withhold {
				rs.effectiveTotal += node.numVotes
			}
			// Abstain contributes to neither total.
		}
	}

	return rs
}

// scanVotes finds the minimum vote count across votes and, in the same
// pass, checks whether any candidate already holds a strict majority
// of effectiveTotal. At most one candidate can, since votes cannot sum
// past effectiveTotal.
func scanVotes(votes map[uint32]uint64, effectiveTotal uint64) (min uint64, winner uint32, hasWinner bool) {
	min = ^uint64(0)
	for c, n := range votes {
		if n < min {
			min = n
		}
		if n > effectiveTotal/2 {
			winner, hasWinner = c, true
		}
	}
	return min, winner, hasWinner
}

func candidatesWithVotes(votes map[uint32]uint64, target uint64) []uint32 {
	var out []uint32
	for c, n := range votes {
		if n == target {
			out = append(out, c)
		}
	}
	return out
}

// selectWeakest narrows lowest down to the set to eliminate this
// round, per the engine's configured strategy.
func (e *Engine) selectWeakest(lowest []uint32, votes map[uint32]uint64, table PairwiseTable) []uint32 {
	switch e.strategy {
	case EliminateAll:
		return lowest

	case DowdallScoring:
		return dowdallWeakest(lowest, e.trie.dowdall)

	case RankedPairs:
		weakest, decisive := graphSinks(lowest, table)
		if !decisive {
			return lowest
		}
		return weakest

	case CondorcetRankedPairs:
		threshold := secondLowestDistinct(votes)
		atOrBelow := candidatesAtOrBelow(votes, threshold)
		weakest, decisive := graphSinks(atOrBelow, table)
		if !decisive {
			return lowest
		}
		return weakest

	default:
		panic("rcv: unknown elimination strategy")
	}
}

// secondLowestDistinct returns the second-smallest distinct vote count
// in votes, or the smallest if only one distinct count exists.
func secondLowestDistinct(votes map[uint32]uint64) uint64 {
	distinct := make(map[uint64]struct{}, len(votes))
	for _, n := range votes {
		distinct[n] = struct{}{}
	}

	sorted := make([]uint64, 0, len(distinct))
	for n := range distinct {
		sorted = append(sorted, n)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	if len(sorted) >= 2 {
		return sorted[1]
	}
	return sorted[0]
}

func candidatesAtOrBelow(votes map[uint32]uint64, threshold uint64) []uint32 {
	var out []uint32
	for c, n := range votes {
		if n <= threshold {
			out = append(out, c)
		}
	}
	return out
}

// eliminate removes every candidate in weakest from the round state,
// partitioning their frontier nodes' children into withhold/abstain
// totals and pending candidate transfers.
func eliminate(rs *roundState, weakest []uint32) (transfers []pendingTransfer, newWithhold, newAbstain uint64) {
	for _, w := range weakest {
		nodes, ok := rs.frontier[w]
		if !ok {
			panic("rcv: surviving candidate has no frontier entry")
		}

		for _, fn := range nodes {
			for value, child := range fn.children {
				switch {
				case value.IsCandidate():
					c, _ := value.Candidate()
					transfers = append(transfers, pendingTransfer{candidate: c, node: child, votes: child.numVotes})

				default:
					marker, _ := value.Special()
					switch marker {
					case Withhold:
						newWithhold += child.numVotes
					case Abstain:
						newAbstain += child.numVotes
					}
				}
			}
		}

		delete(rs.votes, w)
		delete(rs.frontier, w)
	}

	return transfers, newWithhold, newAbstain
}
