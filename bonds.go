/*
 * bonds.go, part of gombuild.
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
	"gonum.org/v1/gonum/spatial/r3"
)

// Bond is a connection between two particles. It is stored in both particles.
type Bond struct {
	At1   *Compound
	At2   *Compound
	Order float64 //Order 0 means undetermined
}

// Cross returns the particle bonded to origin through B.
// It panics if origin is not in the bond, which can only be a programming error.
func (B *Bond) Cross(origin *Compound) *Compound {
	if origin == B.At1 {
		return B.At2
	}
	if origin == B.At2 {
		return B.At1
	}
	panic("Trying to cross a bond: The origin particle given is not present in the bond!")
}

// Length returns the current distance between the bonded particles.
func (B *Bond) Length() float64 {
	return r3.Norm(r3.Sub(B.At2.pos, B.At1.pos))
}

// BondedTo returns the bond between C and D, or nil if they are not bonded.
func (C *Compound) BondedTo(D *Compound) *Bond {
	for _, b := range C.bonds {
		if b.At1 == D || b.At2 == D {
			return b
		}
	}
	return nil
}

// AddBond bonds the particles a and b, with the given order (1 if not given), and returns the new bond.
// Both compounds must be particles, different from each other and not already bonded.
func AddBond(a, b *Compound, order ...float64) (*Bond, error) {
	if a == nil || b == nil {
		return nil, StructureErrorf("AddBond", "nil particle")
	}
	if !a.particle || !b.particle {
		return nil, StructureErrorf("AddBond", "only particles can be bonded (%s, %s)", a.name, b.name)
	}
	if a == b {
		return nil, StructureErrorf("AddBond", "particle %s can't be bonded to itself", a.name)
	}
	if a.BondedTo(b) != nil {
		return nil, StructureErrorf("AddBond", "%s and %s are already bonded", a.name, b.name)
	}
	o := 1.0
	if len(order) > 0 {
		o = order[0]
	}
	B := &Bond{At1: a, At2: b, Order: o}
	a.bonds = append(a.bonds, B)
	b.bonds = append(b.bonds, B)
	return B, nil
}

// returns bonds without the element b
func takefromslice(bonds []*Bond, b *Bond) []*Bond {
	newb := make([]*Bond, 0, len(bonds))
	for _, v := range bonds {
		if v != b {
			newb = append(newb, v)
		}
	}
	return newb
}

// RemoveBond removes b from both of its particles.
func RemoveBond(b *Bond) {
	b.At1.bonds = takefromslice(b.At1.bonds, b)
	b.At2.bonds = takefromslice(b.At2.bonds, b)
}

// AssignBonds bonds every pair of particles in C's subtree closer than cutoff (and farther
// than a tenth of it, to skip overlapping particles) that is not bonded yet. It returns the
// number of bonds added. The search is quadratic, it is meant for small building blocks.
func (C *Compound) AssignBonds(cutoff float64) (int, error) {
	if cutoff <= 0 {
		return 0, ConfigErrorf("AssignBonds", "cutoff must be positive, got %g", cutoff)
	}
	parts := C.Particles()
	added := 0
	for i, at1 := range parts {
		for _, at2 := range parts[i+1:] {
			d := r3.Norm(r3.Sub(at2.pos, at1.pos))
			if d >= cutoff || d <= cutoff/10 || at1.BondedTo(at2) != nil {
				continue
			}
			if _, err := AddBond(at1, at2); err != nil {
				return added, ErrDecorate(err, "AssignBonds")
			}
			added++
		}
	}
	return added, nil
}
