/*
 * graph.go, part of gombuild.
 *
 * Copyright 2026 The gombuild authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package mbuild

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Graph returns the bond graph of the structure. Node IDs are particle indexes.
func (S *Structure) Graph() *simple.UndirectedGraph {
	G := simple.NewUndirectedGraph()
	for i := 0; i < S.Len(); i++ {
		G.AddNode(simple.Node(i))
	}
	for _, b := range S.Bonds {
		G.SetEdge(simple.Edge{F: simple.Node(b[0]), T: simple.Node(b[1])})
	}
	return G
}

// Components returns the sets of particle indexes that are connected through bonds, i.e.
// the molecules in the structure. Each set is sorted, and the sets are sorted by their first index.
func (S *Structure) Components() [][]int {
	cc := topo.ConnectedComponents(S.Graph())
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		ret = append(ret, nodeIndexes(c))
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

// IsPath returns true if the bonds of the structure form a single unbranched path
// that visits every particle.
func (S *Structure) IsPath() bool {
	G := S.Graph()
	if len(topo.ConnectedComponents(G)) != 1 || len(S.Bonds) != S.Len()-1 {
		return false
	}
	nodes := G.Nodes()
	for nodes.Next() {
		if G.From(nodes.Node().ID()).Len() > 2 {
			return false
		}
	}
	return true
}

func nodeIndexes(nodes []graph.Node) []int {
	ret := make([]int, len(nodes))
	for i, v := range nodes {
		ret[i] = int(v.ID())
	}
	sort.Ints(ret)
	return ret
}
