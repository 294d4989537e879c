// SPDX-License-Identifier: MIT

package rcv

// EliminationStrategy selects how the tally engine narrows a round's
// lowest-vote candidates down to the set actually eliminated. It is
// modeled as a closed enum rather than a capability interface so each
// round branches on the variant with static, exhaustive dispatch.
type EliminationStrategy uint8

const (
	// EliminateAll eliminates every candidate tied for the lowest vote
	// count, with no further discrimination.
	EliminateAll EliminationStrategy = iota

	// DowdallScoring narrows the lowest-vote candidates to those also
	// tied for the lowest Dowdall (positional) score. This is the
	// default strategy.
	DowdallScoring

	// RankedPairs narrows the lowest-vote candidates to the sinks of
	// their pairwise-preference graph, falling back to all of them if
	// the graph is not decisive (cyclic or disconnected).
	RankedPairs

	// CondorcetRankedPairs widens the candidate pool to everyone at or
	// below the second-lowest vote count before applying the same
	// pairwise-sink narrowing as RankedPairs, falling back to the
	// strict lowest-vote set if that graph is not decisive.
	CondorcetRankedPairs
)

func (s EliminationStrategy) String() string {
	switch s {
	case EliminateAll:
		return "EliminateAll"
	case DowdallScoring:
		return "DowdallScoring"
	case RankedPairs:
		return "RankedPairs"
	case CondorcetRankedPairs:
		return "CondorcetRankedPairs"
	default:
		return "EliminationStrategy(unknown)"
	}
}

// usesPairwiseTable reports whether the strategy requires the
// pairwise preference table to be built before the round loop starts.
func (s EliminationStrategy) usesPairwiseTable() bool {
	return s == RankedPairs || s == CondorcetRankedPairs
}
