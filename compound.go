/*
 * compound.go, part of gombuild.
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

	"gonum.org/v1/gonum/spatial/r3"
)

// Compound is a node in the tree that represents a molecular system. A Compound is
// either a particle (a leaf, with a position) or a group of other compounds,
// which it owns exclusively. Particles can hold bonds, any compound can own ports.
type Compound struct {
	name     string
	parent   *Compound
	children []*Compound
	particle bool
	pos      r3.Vec //only meaningful for particles
	bonds    []*Bond
	ports    []*Port
}

// NewParticle returns a new leaf compound named name at the position pos.
func NewParticle(name string, pos r3.Vec) *Compound {
	return &Compound{name: name, particle: true, pos: pos}
}

// NewCompound returns a new internal compound with the given children. A compound
// without children can be created, but it can't be added to another compound or
// flattened until it holds at least one particle.
func NewCompound(name string, children ...*Compound) (*Compound, error) {
	C := &Compound{name: name}
	for _, v := range children {
		if err := C.AddChild(v); err != nil {
			return nil, ErrDecorate(err, "NewCompound")
		}
	}
	return C, nil
}

// Name returns the label of the compound.
func (C *Compound) Name() string {
	return C.name
}

// SetName changes the label of the compound.
func (C *Compound) SetName(name string) {
	C.name = name
}

// IsLeaf returns true if C is a particle.
func (C *Compound) IsLeaf() bool {
	return C.particle
}

// Parent returns the compound that owns C, or nil.
func (C *Compound) Parent() *Compound {
	return C.parent
}

// Root returns the top of the tree C belongs to.
func (C *Compound) Root() *Compound {
	r := C
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Children returns the child list. The returned slice must not be modified.
func (C *Compound) Children() []*Compound {
	return C.children
}

// Position returns the position of a particle, or the center of the leaves
// of an internal compound. The center of an empty compound is the origin.
func (C *Compound) Position() r3.Vec {
	if C.particle {
		return C.pos
	}
	return C.Center()
}

// Center returns the geometric center of all the particles in C.
func (C *Compound) Center() r3.Vec {
	coords := C.Coords()
	if coords == nil {
		return r3.Vec{}
	}
	return Centroid(coords)
}

// NumParticles returns the number of leaves in C's subtree.
func (C *Compound) NumParticles() int {
	if C.particle {
		return 1
	}
	n := 0
	for _, v := range C.children {
		n += v.NumParticles()
	}
	return n
}

// Particles returns the leaves of C in pre-order.
func (C *Compound) Particles() []*Compound {
	ret := make([]*Compound, 0, C.NumParticles())
	it := C.Leaves()
	for it.Next() {
		ret = append(ret, it.Compound())
	}
	return ret
}

// Contains returns true if D is C or is in C's subtree.
func (C *Compound) Contains(D *Compound) bool {
	for r := D; r != nil; r = r.parent {
		if r == C {
			return true
		}
	}
	return false
}

// Bonds returns the bonds of a particle. The returned slice must not be modified.
func (C *Compound) Bonds() []*Bond {
	return C.bonds
}

// String returns the name of the compound and a summary of its contents.
func (C *Compound) String() string {
	if C.particle {
		return fmt.Sprintf("%s pos: (%.3f, %.3f, %.3f)", C.name, C.pos.X, C.pos.Y, C.pos.Z)
	}
	return fmt.Sprintf("%s: %d particles, %d children", C.name, C.NumParticles(), len(C.children))
}

// --- Tree manipulation ---

// AddChild appends child to C's children.
// If child already has a parent, it is removed from that parent first (its bonds are kept).
// It fails if child is nil, is C or one of its ancestors (cycle), if C is a particle or
// if child is a compound with no particles.
func (C *Compound) AddChild(child *Compound) error {
	if child == nil {
		return StructureErrorf("AddChild", "cannot add nil child to %s", C.name)
	}
	if C.particle {
		return StructureErrorf("AddChild", "particle %s can't have children", C.name)
	}
	if child.Contains(C) {
		return StructureErrorf("AddChild", "adding %s to %s would create a cycle", child.name, C.name)
	}
	if child.NumParticles() == 0 {
		return StructureErrorf("AddChild", "compound %s has no particles", child.name)
	}
	if child.parent == C {
		return nil
	}
	var oldroot *Compound
	if child.parent != nil {
		oldroot = child.Root()
		child.parent.unlink(child)
	}
	child.parent = C
	C.children = append(C.children, child)
	if oldroot != nil {
		oldroot.prunePorts()
	}
	return nil
}

// RemoveChild cuts child, and its subtree, from C. Bonds between the removed subtree and
// the rest of the tree are deleted, as are the ports owned outside the removed subtree but
// anchored inside it. Ports connected across the cut are freed on both sides.
// Fails if child is not a child of C, or if C would be left with no
// particles.
func (C *Compound) RemoveChild(child *Compound) error {
	if child == nil || child.parent != C {
		return StructureErrorf("RemoveChild", "the given compound is not a child of %s", C.name)
	}
	if C.NumParticles()-child.NumParticles() == 0 {
		return StructureErrorf("RemoveChild", "removing %s would leave %s empty", child.name, C.name)
	}
	it := child.Leaves()
	for it.Next() {
		leaf := it.Compound()
		for _, b := range append([]*Bond(nil), leaf.bonds...) {
			if !child.Contains(b.Cross(leaf)) {
				RemoveBond(b)
			}
		}
	}
	for _, p := range child.AllPorts() {
		if q := p.partner; q != nil && !child.Contains(q.owner) {
			q.partner, q.occupied = nil, false
			p.partner, p.occupied = nil, false
		}
	}
	root := C.Root()
	C.unlink(child)
	root.prunePorts()
	return nil
}

// unlink removes child from C's children list.
func (C *Compound) unlink(child *Compound) {
	for i, v := range C.children {
		if v == child {
			copy(C.children[i:], C.children[i+1:])
			C.children[len(C.children)-1] = nil
			C.children = C.children[:len(C.children)-1]
			break
		}
	}
	child.parent = nil
}

// prunePorts removes, from C's subtree, the ports whose anchor is no longer
// in their owner's subtree. If a removed port was occupied, its partner is freed.
func (C *Compound) prunePorts() {
	kept := C.ports[:0]
	for _, p := range C.ports {
		if !C.Contains(p.anchor) {
			if p.partner != nil {
				p.partner.partner = nil
				p.partner.occupied = false
			}
			p.owner = nil
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(C.ports); i++ {
		C.ports[i] = nil
	}
	C.ports = kept
	for _, v := range C.children {
		v.prunePorts()
	}
}

// Clone returns a deep copy of C's subtree. Bonds and ports internal to the subtree are
// copied; bonds to particles outside it are not. A cloned port is occupied only if its
// partner was also cloned.
func (C *Compound) Clone() *Compound {
	m := make(map[*Compound]*Compound)
	ret := C.cloneTree(m)
	pm := make(map[*Port]*Port)
	for old, nw := range m {
		for _, p := range old.ports {
			np := &Port{
				name:       p.name,
				owner:      nw,
				anchor:     m[p.anchor],
				direction:  p.direction,
				separation: p.separation,
			}
			nw.ports = append(nw.ports, np)
			pm[p] = np
		}
	}
	for old, np := range pm {
		if old.partner == nil {
			continue
		}
		if partner, ok := pm[old.partner]; ok {
			np.partner = partner
			np.occupied = true
		}
	}
	it := C.Leaves()
	for it.Next() {
		leaf := it.Compound()
		for _, b := range leaf.bonds {
			if b.At1 != leaf {
				continue //each bond is copied once, from its first particle.
			}
			at2, ok := m[b.At2]
			if !ok {
				continue
			}
			nb := &Bond{At1: m[leaf], At2: at2, Order: b.Order}
			nb.At1.bonds = append(nb.At1.bonds, nb)
			nb.At2.bonds = append(nb.At2.bonds, nb)
		}
	}
	return ret
}

func (C *Compound) cloneTree(m map[*Compound]*Compound) *Compound {
	nw := &Compound{name: C.name, particle: C.particle, pos: C.pos}
	m[C] = nw
	if len(C.children) > 0 {
		nw.children = make([]*Compound, len(C.children))
	}
	for i, v := range C.children {
		c := v.cloneTree(m)
		c.parent = nw
		nw.children[i] = c
	}
	return nw
}

// --- Traversal ---

// LeafIter is a lazy, restartable, pre-order iterator over the particles of a compound.
// It follows the Next/Reset protocol of gonum's graph.Nodes.
type LeafIter struct {
	root    *Compound
	stack   []*Compound
	curr    *Compound
	total   int
	visited int
}

// Leaves returns an iterator over the particles in C's subtree, in pre-order.
func (C *Compound) Leaves() *LeafIter {
	L := &LeafIter{root: C, total: C.NumParticles()}
	L.Reset()
	return L
}

// Next advances the iterator and returns whether the next call to Compound
// will return a particle.
func (L *LeafIter) Next() bool {
	for len(L.stack) > 0 {
		n := L.stack[len(L.stack)-1]
		L.stack = L.stack[:len(L.stack)-1]
		if n.particle {
			L.curr = n
			L.visited++
			return true
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			L.stack = append(L.stack, n.children[i])
		}
	}
	L.curr = nil
	return false
}

// Compound returns the current particle, or nil if Next has not been called
// or the iteration is over.
func (L *LeafIter) Compound() *Compound {
	return L.curr
}

// Len returns the number of particles remaining in the iteration.
func (L *LeafIter) Len() int {
	return L.total - L.visited
}

// Reset returns the iterator to its start position.
func (L *LeafIter) Reset() {
	L.stack = append(L.stack[:0], L.root)
	L.curr = nil
	L.visited = 0
}
