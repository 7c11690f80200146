/*
 * flatten.go, part of gombuild.
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
	"fmt"
	"sort"

	v3 "github.com/mathewaa/gombuild/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

// PortSite is an open port in a flattened structure.
type PortSite struct {
	Index     int //index of the anchor particle
	Direction r3.Vec
	Name      string
}

// Structure is the flattened form of a compound: plain arrays that a renderer
// or a file writer can use without knowing about the tree.
type Structure struct {
	Names     []string
	Positions *v3.Matrix
	Bonds     [][2]int //sorted, each pair with the lower index first
	Ports     []PortSite
}

// Len returns the number of particles in the structure.
func (S *Structure) Len() int {
	return len(S.Names)
}

func (S *Structure) String() string {
	return fmt.Sprintf("%d particles, %d bonds, %d open ports", S.Len(), len(S.Bonds), len(S.Ports))
}

// Flatten returns the particles of C in pre-order, the bonds between them as index pairs,
// and the unoccupied ports anchored in C, wherever their owner is. Bonds to particles outside C are not included.
func (C *Compound) Flatten() (*Structure, error) {
	parts := C.Particles()
	if len(parts) == 0 {
		return nil, StructureErrorf("Flatten", "compound %s has no particles", C.name)
	}
	index := make(map[*Compound]int, len(parts))
	S := &Structure{
		Names:     make([]string, len(parts)),
		Positions: v3.Zeros(len(parts)),
		Bonds:     make([][2]int, 0, len(parts)),
	}
	for i, v := range parts {
		index[v] = i
		S.Names[i] = v.name
		S.Positions.SetVec(i, v.pos)
	}
	for i, v := range parts {
		for _, b := range v.bonds {
			j, ok := index[b.Cross(v)]
			if !ok || j < i {
				continue //not in C, or already counted from the other end.
			}
			S.Bonds = append(S.Bonds, [2]int{i, j})
		}
	}
	sort.Slice(S.Bonds, func(i, j int) bool {
		if S.Bonds[i][0] != S.Bonds[j][0] {
			return S.Bonds[i][0] < S.Bonds[j][0]
		}
		return S.Bonds[i][1] < S.Bonds[j][1]
	})
	for _, p := range C.Root().AvailablePorts() {
		if !C.Contains(p.anchor) {
			continue
		}
		S.Ports = append(S.Ports, PortSite{Index: index[p.anchor], Direction: p.direction, Name: p.name})
	}
	return S, nil
}

// BondLengths returns the length of each bond of S, in the order of S.Bonds.
func (S *Structure) BondLengths() []float64 {
	ret := make([]float64, len(S.Bonds))
	for i, b := range S.Bonds {
		ret[i] = r3.Norm(r3.Sub(S.Positions.Vec(b[1]), S.Positions.Vec(b[0])))
	}
	return ret
}
