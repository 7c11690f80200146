/*
 * pattern_test.go, part of gombuild.
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

package pattern

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	mbuild "github.com/mathewaa/gombuild"
	v3 "github.com/mathewaa/gombuild/v3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

func inUnitSquare(Te *testing.T, P *v3.Matrix) {
	Te.Helper()
	for i := 0; i < P.NVecs(); i++ {
		v := P.Vec(i)
		if v.X < 0 || v.X >= 1 || v.Y < 0 || v.Y >= 1 || v.Z != 0 {
			Te.Errorf("point %d out of the unit square: %v", i, v)
		}
	}
}

func TestGrid(Te *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {5, 5}, {3, 7}, {10, 1}} {
		G := NewGrid2DPattern(dims[0], dims[1])
		P, err := G.Points()
		if err != nil {
			Te.Fatal(err)
		}
		if P.NVecs() != dims[0]*dims[1] || G.Len() != P.NVecs() {
			Te.Errorf("%v: expected %d points, got %d", G, dims[0]*dims[1], P.NVecs())
		}
		inUnitSquare(Te, P)
		seen := make(map[r3.Vec]bool)
		for i := 0; i < P.NVecs(); i++ {
			seen[P.Vec(i)] = true
		}
		if len(seen) != P.NVecs() {
			Te.Errorf("%v: repeated points", G)
		}
	}
	P, _ := NewGrid2DPattern(2, 4).Points()
	if P.Vec(5) != (r3.Vec{X: 0.5, Y: 0.25}) {
		Te.Errorf("point 5 of a 2x4 grid should be (0.5, 0.25), got %v", P.Vec(5))
	}
	var cerr *mbuild.ConfigError
	if _, err := NewGrid2DPattern(0, 3).Points(); !errors.As(err, &cerr) {
		Te.Errorf("expected ConfigError, got %v", err)
	}
}

func TestRandom(Te *testing.T) {
	R := NewRandom2DPattern(50, 42)
	P1, err := R.Points()
	if err != nil {
		Te.Fatal(err)
	}
	if P1.NVecs() != 50 {
		Te.Errorf("expected 50 points, got %d", P1.NVecs())
	}
	inUnitSquare(Te, P1)
	P2, _ := NewRandom2DPattern(50, 42).Points()
	if !mat.Equal(P1, P2) {
		Te.Error("the same seed gave different points")
	}
	P3, _ := NewRandom2DPattern(50, 43).Points()
	if mat.Equal(P1, P3) {
		Te.Error("different seeds gave the same points")
	}
	U, err := NewRandom2DPattern(10).Points()
	if err != nil || U.NVecs() != 10 {
		Te.Errorf("unseeded pattern failed: %v", err)
	}
	if _, err := NewRandom2DPattern(0).Points(); err == nil {
		Te.Error("zero points accepted")
	}
}

func TestSphere(Te *testing.T) {
	S := &SpherePattern{N: 100}
	P, err := S.Points()
	if err != nil {
		Te.Fatal(err)
	}
	var sum r3.Vec
	for i := 0; i < P.NVecs(); i++ {
		v := P.Vec(i)
		if math.Abs(r3.Norm(v)-1) > 1e-12 {
			Te.Errorf("point %d is not on the unit sphere: %v", i, v)
		}
		sum = r3.Add(sum, v)
	}
	//the points are evenly spread, so they are centered close to the origin
	if r3.Norm(sum)/100 > 0.05 {
		Te.Errorf("points not evenly spread, center at %v", r3.Scale(0.01, sum))
	}
}

func TestScalePlot(Te *testing.T) {
	P, _ := NewGrid2DPattern(4, 4).Points()
	Scale(P, 2, 3, 1)
	if P.Vec(15) != (r3.Vec{X: 1.5, Y: 2.25}) {
		Te.Errorf("wrong scaled point %v", P.Vec(15))
	}
	name := filepath.Join(Te.TempDir(), "grid.png")
	if err := Plot(P, "4x4 grid", name); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(name); err != nil {
		Te.Error(err)
	}
}
