// SPDX-License-Identifier: MIT

package rcv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func tableFrom(pairs map[[2]uint32]uint64) PairwiseTable {
	t := make(PairwiseTable)
	for k, v := range pairs {
		t.add(k[0], k[1], v)
	}
	return t
}

func TestGraphSinksDecisiveChain(t *testing.T) {
	// 1 beats 2, 2 beats 3: a single sink, candidate 3.
	table := tableFrom(map[[2]uint32]uint64{
		{1, 2}: 5,
		{2, 3}: 5,
		{1, 3}: 5,
	})

	weakest, decisive := graphSinks([]uint32{1, 2, 3}, table)
	require.True(t, decisive)
	require.ElementsMatch(t, []uint32{3}, weakest)
}

func TestGraphSinksCyclicIsNotDecisive(t *testing.T) {
	// 1 beats 2, 2 beats 3, 3 beats 1: a cycle.
	table := tableFrom(map[[2]uint32]uint64{
		{1, 2}: 1,
		{2, 3}: 1,
		{3, 1}: 1,
	})

	weakest, decisive := graphSinks([]uint32{1, 2, 3}, table)
	require.False(t, decisive)
	require.ElementsMatch(t, []uint32{1, 2, 3}, weakest)
}

func TestGraphSinksDisconnectedIsNotDecisive(t *testing.T) {
	// 1 beats 2, but 3 has no preference edge to or from either.
	table := tableFrom(map[[2]uint32]uint64{
		{1, 2}: 1,
	})

	_, decisive := graphSinks([]uint32{1, 2, 3}, table)
	require.False(t, decisive)
}

func TestGraphSinksSingleCandidate(t *testing.T) {
	weakest, decisive := graphSinks([]uint32{9}, PairwiseTable{})
	require.True(t, decisive)
	require.Equal(t, []uint32{9}, weakest)
}

func TestPreferenceGraphAcyclicAndConnected(t *testing.T) {
	g := buildPreferenceGraph([]uint32{1, 2, 3}, tableFrom(map[[2]uint32]uint64{
		{1, 2}: 1,
		{2, 3}: 1,
	}))
	require.True(t, g.acyclic())
	require.True(t, g.weaklyConnected())

	net := buildPreferenceGraph([]uint32{1, 2}, tableFrom(map[[2]uint32]uint64{
		{1, 2}: 1,
		{2, 1}: 2,
	}))
	// net preference: 2 beats 1 by 1 (2-1), so edge is 2->1 only; still acyclic.
	require.True(t, net.acyclic())
}
