/*
 * compound_test.go, part of gombuild.
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
	"errors"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

// linear returns a compound with n particles along x, 0.15 nm apart, bonded in sequence.
func linear(Te *testing.T, name string, n int) *Compound {
	Te.Helper()
	C, err := NewCompound(name)
	if err != nil {
		Te.Fatal(err)
	}
	var prev *Compound
	for i := 0; i < n; i++ {
		p := NewParticle("C", r3.Vec{X: 0.15 * float64(i)})
		if err := C.AddChild(p); err != nil {
			Te.Fatal(err)
		}
		if prev != nil {
			if _, err := AddBond(prev, p); err != nil {
				Te.Fatal(err)
			}
		}
		prev = p
	}
	return C
}

func TestLeaves(Te *testing.T) {
	a := NewParticle("A", r3.Vec{})
	b := NewParticle("B", r3.Vec{X: 1})
	c := NewParticle("C", r3.Vec{X: 2})
	inner, err := NewCompound("inner", b, c)
	if err != nil {
		Te.Fatal(err)
	}
	root, err := NewCompound("root", a, inner)
	if err != nil {
		Te.Fatal(err)
	}
	it := root.Leaves()
	if it.Len() != 3 {
		Te.Errorf("expected 3 leaves, got %d", it.Len())
	}
	names := ""
	for it.Next() {
		names += it.Compound().Name()
	}
	if names != "ABC" {
		Te.Errorf("leaves not in pre-order: %s", names)
	}
	if it.Len() != 0 || it.Compound() != nil {
		Te.Error("exhausted iterator should be empty")
	}
	it.Reset()
	if !it.Next() || it.Compound() != a {
		Te.Error("Reset didn't restart the iteration")
	}
	if c := root.Center(); c != (r3.Vec{X: 1}) {
		Te.Errorf("wrong center %v", c)
	}
	if root.Position() != root.Center() || b.Position() != (r3.Vec{X: 1}) {
		Te.Error("wrong positions")
	}
	if c.Root() != root || !root.Contains(c) || inner.Contains(a) {
		Te.Error("wrong ancestry")
	}
}

func TestAddChildErrors(Te *testing.T) {
	a := NewParticle("A", r3.Vec{})
	root, _ := NewCompound("root", a)
	var serr *StructureError
	if err := root.AddChild(nil); !errors.As(err, &serr) {
		Te.Errorf("nil child: expected StructureError, got %v", err)
	}
	if err := a.AddChild(NewParticle("B", r3.Vec{})); !errors.As(err, &serr) {
		Te.Errorf("child of a particle: expected StructureError, got %v", err)
	}
	if err := root.AddChild(root); !errors.As(err, &serr) {
		Te.Errorf("self child: expected StructureError, got %v", err)
	}
	inner, _ := NewCompound("inner", NewParticle("B", r3.Vec{}))
	if err := root.AddChild(inner); err != nil {
		Te.Fatal(err)
	}
	if err := inner.AddChild(root); !errors.As(err, &serr) {
		Te.Errorf("cycle: expected StructureError, got %v", err)
	}
	empty, _ := NewCompound("empty")
	if err := root.AddChild(empty); !errors.As(err, &serr) {
		Te.Errorf("empty compound: expected StructureError, got %v", err)
	}
	if _, err := empty.Flatten(); !errors.As(err, &serr) {
		Te.Errorf("flattening an empty compound: expected StructureError, got %v", err)
	}
	if !serr.Critical() {
		Te.Error("StructureError should be critical")
	}
}

func TestReparent(Te *testing.T) {
	mol := linear(Te, "mol", 3)
	first, _ := NewCompound("first")
	second, _ := NewCompound("second")
	sub, _ := NewCompound("sub", mol)
	parts := mol.Particles()
	if err := first.AddChild(NewParticle("X", r3.Vec{})); err != nil {
		Te.Fatal(err)
	}
	if err := first.AddChild(sub); err != nil {
		Te.Fatal(err)
	}
	if err := second.AddChild(sub); err != nil {
		Te.Fatal(err)
	}
	if sub.Parent() != second || len(first.Children()) != 1 {
		Te.Error("the compound was not moved")
	}
	if len(parts[1].Bonds()) != 2 {
		Te.Error("reparenting should keep the bonds")
	}
}

func TestRemoveChild(Te *testing.T) {
	root, _ := NewCompound("root")
	left := linear(Te, "left", 2)
	right := linear(Te, "right", 2)
	root.AddChild(left)
	root.AddChild(right)
	l := left.Particles()[1]
	r := right.Particles()[0]
	if _, err := AddBond(l, r); err != nil {
		Te.Fatal(err)
	}
	p, err := root.AddPort("p", r, r3.Vec{Z: 1}, 0)
	if err != nil {
		Te.Fatal(err)
	}
	if err := root.RemoveChild(right); err != nil {
		Te.Fatal(err)
	}
	if l.BondedTo(r) != nil || len(r.Bonds()) != 1 {
		Te.Error("the bond across the cut was not removed")
	}
	if len(root.Ports()) != 0 || p.Owner() != nil {
		Te.Error("the port anchored in the removed subtree was kept")
	}
	if right.Parent() != nil || root.NumParticles() != 2 {
		Te.Error("the subtree was not removed")
	}
	if err := root.RemoveChild(right); err == nil {
		Te.Error("removing a compound that is not a child should fail")
	}
	if err := root.RemoveChild(left); err == nil {
		Te.Error("removing the last particles should fail")
	}
}

func TestClone(Te *testing.T) {
	mol := linear(Te, "mol", 4)
	parts := mol.Particles()
	if _, err := mol.AddPort("up", parts[0], r3.Vec{X: -1}, 0.077); err != nil {
		Te.Fatal(err)
	}
	cl := mol.Clone()
	if cl.NumParticles() != 4 || len(cl.Ports()) != 1 {
		Te.Fatalf("clone has %d particles and %d ports", cl.NumParticles(), len(cl.Ports()))
	}
	S1, _ := mol.Flatten()
	S2, err := cl.Flatten()
	if err != nil {
		Te.Fatal(err)
	}
	if len(S1.Bonds) != len(S2.Bonds) || len(S2.Bonds) != 3 {
		Te.Errorf("clone has %d bonds, expected 3", len(S2.Bonds))
	}
	cp := cl.Particles()
	if cl.Ports()[0].Anchor() != cp[0] {
		Te.Error("the cloned port should be anchored on the cloned particle")
	}
	if err := cl.Translate(r3.Vec{Z: 1}); err != nil {
		Te.Fatal(err)
	}
	if parts[0].Position().Z != 0 {
		Te.Error("moving the clone moved the original")
	}
}

func TestAssignBonds(Te *testing.T) {
	C, _ := NewCompound("square")
	for _, v := range []r3.Vec{{}, {X: 0.15}, {Y: 0.15}, {X: 0.15, Y: 0.15}} {
		C.AddChild(NewParticle("Si", v))
	}
	n, err := C.AssignBonds(0.16)
	if err != nil {
		Te.Fatal(err)
	}
	if n != 4 {
		Te.Errorf("expected 4 bonds (the sides of the square), got %d", n)
	}
	if _, err := C.AssignBonds(0); err == nil {
		Te.Error("a zero cutoff should fail")
	}
}
