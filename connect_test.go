/*
 * connect_test.go, part of gombuild.
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
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

func vecNear(a, b r3.Vec, tol float64) bool {
	return r3.Norm(r3.Sub(a, b)) <= tol
}

func TestConnect(Te *testing.T) {
	root, _ := NewCompound("root")
	left := linear(Te, "left", 3)
	right := linear(Te, "right", 3)
	root.AddChild(left)
	root.AddChild(right)
	lp := left.Particles()
	rp := right.Particles()
	a, err := left.AddPort("end", lp[2], r3.Vec{Y: 1}, 0.077)
	if err != nil {
		Te.Fatal(err)
	}
	b, err := right.AddPort("front", rp[0], r3.Vec{X: -1}, 0.077)
	if err != nil {
		Te.Fatal(err)
	}
	if err := Connect(a, b); err != nil {
		Te.Fatal(err)
	}
	if !a.Occupied() || !b.Occupied() || a.Partner() != b {
		Te.Error("both ports should be occupied")
	}
	if !vecNear(a.Location(), b.Location(), 1e-9) {
		Te.Errorf("port locations differ: %v %v", a.Location(), b.Location())
	}
	if !vecNear(b.Direction(), r3.Scale(-1, a.Direction()), 1e-9) {
		Te.Errorf("ports don't face each other: %v %v", a.Direction(), b.Direction())
	}
	d := r3.Norm(r3.Sub(rp[0].Position(), lp[2].Position()))
	if !scalar.EqualWithinAbs(d, 0.154, 1e-9) {
		Te.Errorf("anchors should be 0.154 nm apart, got %f", d)
	}
	//the moved compound keeps its shape
	if !scalar.EqualWithinAbs(r3.Norm(r3.Sub(rp[2].Position(), rp[0].Position())), 0.3, 1e-9) {
		Te.Error("the moved compound was deformed")
	}
	S, err := root.Flatten()
	if err != nil {
		Te.Fatal(err)
	}
	if len(S.Bonds) != 5 || len(S.Ports) != 0 {
		Te.Errorf("expected 5 bonds and no open ports, got %s", S)
	}
	if !S.IsPath() {
		Te.Error("the connected compounds should form a single path")
	}
	var perr *PortError
	if err := Connect(a, b); !errors.As(err, &perr) {
		Te.Errorf("connecting occupied ports: expected PortError, got %v", err)
	}
}

func TestConnectErrors(Te *testing.T) {
	mol := linear(Te, "mol", 3)
	parts := mol.Particles()
	a, _ := mol.AddPort("a", parts[0], r3.Vec{X: -1}, 0)
	b, _ := mol.AddPort("b", parts[2], r3.Vec{X: 1}, 0)
	var perr *PortError
	if err := Connect(a, a); !errors.As(err, &perr) {
		Te.Errorf("same port: expected PortError, got %v", err)
	}
	if err := Connect(a, nil); !errors.As(err, &perr) {
		Te.Errorf("nil port: expected PortError, got %v", err)
	}
	before := mol.Coords()
	if err := Connect(a, b); !errors.As(err, &perr) {
		Te.Errorf("overlapping subtrees: expected PortError, got %v", err)
	}
	if a.Occupied() || b.Occupied() {
		Te.Error("a failed connection marked the ports as occupied")
	}
	for i, v := range mol.Particles() {
		if v.Position() != before.Vec(i) {
			Te.Error("a failed connection moved particles")
		}
	}
	if _, err := mol.AddPort("c", parts[1], r3.Vec{}, 0); err == nil {
		Te.Error("a zero direction was accepted")
	}
	if _, err := mol.AddPort("c", NewParticle("X", r3.Vec{}), r3.Vec{Z: 1}, 0); err == nil {
		Te.Error("an anchor outside the owner was accepted")
	}
}

func TestConnectAntiParallel(Te *testing.T) {
	//the ports already face each other, or point the same way.
	for _, dir := range []r3.Vec{{X: -1}, {X: 1}} {
		root, _ := NewCompound("root")
		left := linear(Te, "left", 2)
		right := linear(Te, "right", 2)
		right.Translate(r3.Vec{X: 2})
		root.AddChild(left)
		root.AddChild(right)
		a, _ := left.AddPort("a", left.Particles()[1], r3.Vec{X: 1}, 0.1)
		b, _ := right.AddPort("b", right.Particles()[0], dir, 0.1)
		if err := Connect(a, b); err != nil {
			Te.Fatal(err)
		}
		if !vecNear(b.Direction(), r3.Vec{X: -1}, 1e-9) {
			Te.Errorf("port b should point along -x, got %v", b.Direction())
		}
		if !vecNear(right.Particles()[0].Position(), r3.Vec{X: 0.35}, 1e-9) {
			Te.Errorf("wrong anchor position %v", right.Particles()[0].Position())
		}
		if math.IsNaN(right.Particles()[1].Position().X) {
			Te.Error("NaN position")
		}
	}
}
