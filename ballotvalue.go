// SPDX-License-Identifier: MIT

package rcv

import "fmt"

// SpecialMarker is a terminal ballot value standing in for a candidate
// id: the voter either withholds consent from every remaining
// candidate, or abstains outright.
type SpecialMarker uint8

const (
	// Withhold marks a ballot as refusing to endorse any candidate
	// beyond this point, while still counting the voter as present for
	// the majority denominator.
	Withhold SpecialMarker = iota + 1

	// Abstain marks a ballot as declining to participate from this
	// point on; it is dropped from the majority denominator entirely.
	Abstain
)

func (m SpecialMarker) String() string {
	switch m {
	case Withhold:
		return "Withhold"
	case Abstain:
		return "Abstain"
	default:
		return fmt.Sprintf("SpecialMarker(%d)", uint8(m))
	}
}

// BallotValue is a tagged union over a candidate id and a special
// marker. The zero value is not a valid BallotValue; always construct
// one with CandidateValue or SpecialValue. BallotValue is comparable
// and hashable by its tag and payload, so it can key a map directly.
type BallotValue struct {
	candidate uint32
	special   SpecialMarker // 0 means "this is a candidate value"
}

// CandidateValue returns the ballot value ranking candidate id.
func CandidateValue(id uint32) BallotValue {
	return BallotValue{candidate: id}
}

// SpecialValue returns the ballot value for the given special marker.
// It panics if kind is not Withhold or Abstain: this is a programming
// error in the caller, not a malformed-input condition (malformed raw
// input is rejected earlier, by RankedBallot construction).
func SpecialValue(kind SpecialMarker) BallotValue {
	if kind != Withhold && kind != Abstain {
		panic("rcv: invalid special marker kind")
	}
	return BallotValue{special: kind}
}

// IsCandidate reports whether v ranks a candidate.
func (v BallotValue) IsCandidate() bool {
	return v.special == 0
}

// IsSpecial reports whether v is a special marker.
func (v BallotValue) IsSpecial() bool {
	return v.special != 0
}

// Candidate returns the candidate id and true, or zero and false if v
// is a special marker.
func (v BallotValue) Candidate() (uint32, bool) {
	if v.special != 0 {
		return 0, false
	}
	return v.candidate, true
}

// Special returns the special marker and true, or zero and false if v
// ranks a candidate.
func (v BallotValue) Special() (SpecialMarker, bool) {
	if v.special == 0 {
		return 0, false
	}
	return v.special, true
}

// ToInt renders v back into the raw integer format: the candidate id,
// or -1/-2 for Withhold/Abstain.
func (v BallotValue) ToInt() int32 {
	if v.special == Withhold {
		return -1
	}
	if v.special == Abstain {
		return -2
	}
	return int32(v.candidate)
}

func (v BallotValue) String() string {
	if v.special != 0 {
		return v.special.String()
	}
	return fmt.Sprintf("Candidate(%d)", v.candidate)
}
