// SPDX-License-Identifier: MIT

package rcv

import "errors"

// Errors returned from ranked-ballot construction. The tally engine
// itself never returns an error: a missing majority or a stalled
// election is communicated by DetermineWinner returning a zero id and
// ok == false, and internal invariant violations panic rather than
// surface as an error a caller could mistake for recoverable.
var (
	// ErrInvalidSpecialMarker is returned when a negative raw value is
	// not one of the recognized special markers (-1 Withhold, -2 Abstain).
	ErrInvalidSpecialMarker = errors.New("rcv: invalid special marker")

	// ErrReadOutOfBounds is returned by RankedBallot.At for an index at
	// or beyond the ballot's length.
	ErrReadOutOfBounds = errors.New("rcv: read out of bounds")

	// ErrNonFinalSpecialMarker is returned when a special marker appears
	// anywhere but the last position of a raw ballot.
	ErrNonFinalSpecialMarker = errors.New("rcv: special marker is not in the final position")

	// ErrDuplicateValues is returned when a raw ballot repeats a value.
	ErrDuplicateValues = errors.New("rcv: duplicate value in ballot")

	// ErrEmptyBallot is returned for a zero-length raw ballot.
	ErrEmptyBallot = errors.New("rcv: ballot is empty")
)
