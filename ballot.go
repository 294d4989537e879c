// SPDX-License-Identifier: MIT

package rcv

import "iter"

// RankedBallot is a finite ordered sequence of ballot values: zero or
// more ranked candidates, optionally followed by one special marker.
//
// The zero value is not a valid RankedBallot. Always construct one
// with NewRankedBallot or ParseBallots, which enforce the invariants
// every other component in this package assumes: non-empty, no
// repeated value, special marker (if any) only in the final position.
type RankedBallot struct {
	rankings []uint32
	special  SpecialMarker // 0 if the ballot carries no special marker
}

// NewRankedBallot parses a raw ballot: a sequence of signed integers
// where non-negative values are candidate ids and -1/-2 denote
// Withhold/Abstain. It applies, in order, the construction rules that
// every RankedBallot must satisfy: non-empty, no repeated value, and a
// special marker (if any) only in the final position.
func NewRankedBallot(raw []int32) (RankedBallot, error) {
	if len(raw) == 0 {
		return RankedBallot{}, ErrEmptyBallot
	}

	seen := make(map[int32]struct{}, len(raw))
	for _, v := range raw {
		if _, dup := seen[v]; dup {
			return RankedBallot{}, ErrDuplicateValues
		}
		seen[v] = struct{}{}
	}

	rankings := make([]uint32, 0, len(raw))
	var special SpecialMarker

	for i, v := range raw {
		if v < 0 {
			if i != len(raw)-1 {
				return RankedBallot{}, ErrNonFinalSpecialMarker
			}
			switch v {
			case -1:
				special = Withhold
			case -2:
				special = Abstain
			default:
				return RankedBallot{}, ErrInvalidSpecialMarker
			}
			continue
		}

		rankings = append(rankings, uint32(v))
	}

	return RankedBallot{rankings: rankings, special: special}, nil
}

// ParseBallots parses a batch of raw ballots, stopping at the first
// error. It is a convenience adapter used by the CLI and by tests that
// construct many ballots at once.
func ParseBallots(raw [][]int32) ([]RankedBallot, error) {
	ballots := make([]RankedBallot, 0, len(raw))
	for _, r := range raw {
		b, err := NewRankedBallot(r)
		if err != nil {
			return nil, err
		}
		ballots = append(ballots, b)
	}
	return ballots, nil
}

// Len returns the number of ballot values, counting a trailing special
// marker as one element.
func (b RankedBallot) Len() int {
	n := len(b.rankings)
	if b.special != 0 {
		n++
	}
	return n
}

// At returns the ballot value at index, or ErrReadOutOfBounds if index
// is at or beyond Len().
func (b RankedBallot) At(index int) (BallotValue, error) {
	if index < len(b.rankings) {
		return CandidateValue(b.rankings[index]), nil
	}
	if index == len(b.rankings) && b.special != 0 {
		return SpecialValue(b.special), nil
	}
	return BallotValue{}, ErrReadOutOfBounds
}

// Values returns a lazy forward traversal: ranked candidates first, in
// rank order, followed by the special marker if present.
func (b RankedBallot) Values() iter.Seq[BallotValue] {
	return func(yield func(BallotValue) bool) {
		for _, c := range b.rankings {
			if !yield(CandidateValue(c)) {
				return
			}
		}
		if b.special != 0 {
			yield(SpecialValue(b.special))
		}
	}
}

// ToVector renders the ballot back into the raw integer format that
// NewRankedBallot accepts. For any raw satisfying the construction
// invariants, NewRankedBallot(raw).ToVector() == raw.
func (b RankedBallot) ToVector() []int32 {
	out := make([]int32, 0, b.Len())
	for _, c := range b.rankings {
		out = append(out, int32(c))
	}
	if b.special != 0 {
		out = append(out, SpecialValue(b.special).ToInt())
	}
	return out
}
