// SPDX-License-Identifier: MIT

package rcv

import "github.com/bits-and-blooms/bitset"

// preferenceGraph is a directed graph over a small, dense index space
// (the candidates under consideration in one elimination round): an
// edge i -> j exists whenever candidate i strictly beats candidate j
// net of the pairwise table. Membership and traversal state use
// bitset.BitSet, a compact membership set over that dense index space,
// addressed by graph-node index.
type preferenceGraph struct {
	ids  []uint32
	idx  map[uint32]int
	adj  []*bitset.BitSet // adj[i] = set of j with edge i -> j
	radj []*bitset.BitSet // radj[i] = set of j with edge j -> i
}

// buildPreferenceGraph builds the directed net-preference graph over
// candidates from table: an edge a -> b of nonzero weight exists
// whenever table[(a,b)] - table[(b,a)] > 0.
func buildPreferenceGraph(candidates []uint32, table PairwiseTable) *preferenceGraph {
	n := len(candidates)
	g := &preferenceGraph{
		ids:  candidates,
		idx:  make(map[uint32]int, n),
		adj:  make([]*bitset.BitSet, n),
		radj: make([]*bitset.BitSet, n),
	}
	for i, c := range candidates {
		g.idx[c] = i
		g.adj[i] = bitset.New(uint(n))
		g.radj[i] = bitset.New(uint(n))
	}

	for i, a := range candidates {
		for j, b := range candidates {
			if i == j {
				continue
			}
			forward := table.Get(a, b)
			backward := table.Get(b, a)
			if forward > backward {
				g.adj[i].Set(uint(j))
				g.radj[j].Set(uint(i))
			}
		}
	}
	return g
}

func (g *preferenceGraph) size() int { return len(g.ids) }

// undirectedNeighbors returns the union of incoming and outgoing edges
// at node i, for the weak-connectedness walk.
func (g *preferenceGraph) undirectedNeighbors(i int) *bitset.BitSet {
	return g.adj[i].Union(g.radj[i])
}

// acyclic reports whether the graph has no directed cycle, via DFS
// that tracks the active path; a back-edge to a path member is a
// cycle.
func (g *preferenceGraph) acyclic() bool {
	n := g.size()
	if n == 0 {
		return true
	}

	visited := bitset.New(uint(n))
	onPath := bitset.New(uint(n))

	var dfs func(i int) bool
	dfs = func(i int) bool {
		visited.Set(uint(i))
		onPath.Set(uint(i))
		defer onPath.Clear(uint(i))

		for j, e := g.adj[i].NextSet(0); e; j, e = g.adj[i].NextSet(j + 1) {
			if onPath.Test(j) {
				return false
			}
			if !visited.Test(j) {
				if !dfs(int(j)) {
					return false
				}
			}
		}
		return true
	}

	for i := 0; i < n; i++ {
		if !visited.Test(uint(i)) {
			if !dfs(i) {
				return false
			}
		}
	}
	return true
}

// weaklyConnected reports whether every node is reachable from every
// other when edges are treated as undirected, via a single BFS from
// an arbitrary start node.
func (g *preferenceGraph) weaklyConnected() bool {
	n := g.size()
	if n == 0 {
		return true
	}

	explored := bitset.New(uint(n))
	queue := []int{0}
	explored.Set(0)
	count := 1

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]

		neighbors := g.undirectedNeighbors(i)
		for j, e := neighbors.NextSet(0); e; j, e = neighbors.NextSet(j + 1) {
			if !explored.Test(j) {
				explored.Set(j)
				count++
				queue = append(queue, int(j))
			}
		}
	}

	return count == n
}

// sinks returns the candidate ids with zero outgoing edges: the nodes
// beaten by (or tied against) everyone else in the graph.
func (g *preferenceGraph) sinks() []uint32 {
	var out []uint32
	for i, c := range g.ids {
		if g.adj[i].Count() == 0 {
			out = append(out, c)
		}
	}
	return out
}

// graphSinks applies the decisive-ordering check: if the graph over
// candidates is both acyclic and weakly connected, it returns the
// sinks and true; otherwise it returns candidates unchanged and false.
func graphSinks(candidates []uint32, table PairwiseTable) ([]uint32, bool) {
	if len(candidates) <= 1 {
		return candidates, true
	}

	g := buildPreferenceGraph(candidates, table)
	if !g.acyclic() || !g.weaklyConnected() {
		return candidates, false
	}
	return g.sinks(), true
}
