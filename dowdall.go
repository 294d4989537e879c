// SPDX-License-Identifier: MIT

package rcv

// dowdallWeakest returns the subset of candidates whose accumulated
// Dowdall score equals the minimum score over candidates. Scores are
// compared by exact floating-point equality; ties at the minimum are
// all returned.
//
// scores must hold an entry for every id in candidates; a missing
// entry is a precondition violation elsewhere in the engine (every
// candidate with a frontier node was, by construction, ranked on at
// least one ballot and therefore has a score) and panics.
func dowdallWeakest(candidates []uint32, scores map[uint32]float32) []uint32 {
	if len(candidates) == 0 {
		return nil
	}

	min := scoreOf(candidates[0], scores)
	for _, c := range candidates[1:] {
		if s := scoreOf(c, scores); s < min {
			min = s
		}
	}

	weakest := make([]uint32, 0, len(candidates))
	for _, c := range candidates {
		if scores[c] == min {
			weakest = append(weakest, c)
		}
	}
	return weakest
}

func scoreOf(c uint32, scores map[uint32]float32) float32 {
	s, ok := scores[c]
	if !ok {
		panic("rcv: no dowdall score recorded for a surviving candidate")
	}
	return s
}
