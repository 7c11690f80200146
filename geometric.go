/*
 * geometric.go, part of gombuild.
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
	"math"

	v3 "github.com/mathewaa/gombuild/v3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Conversion factors between degrees and radians.
const (
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

// tolerance used to decide whether a matrix is a proper rotation.
const rotTol = 1e-6

// Angle returns the angle in radians between v1 and v2.
// It does not check for zero vectors.
func Angle(v1, v2 r3.Vec) float64 {
	argument := r3.Dot(v1, v2) / (r3.Norm(v1) * r3.Norm(v2))
	//Take care of floating point math errors
	if argument > 1 {
		argument = 1
	} else if argument < -1 {
		argument = -1
	}
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.00
	}
	return angle
}

// RotationMatrix returns the 3x3 operator that, applied on the right side of a
// matrix of row vectors, rotates them by angle radians around axis (right hand rule).
func RotationMatrix(angle float64, axis r3.Vec) *v3.Matrix {
	R := v3.Zeros(3)
	ux := r3.Vec{X: 1}
	uy := r3.Vec{Y: 1}
	uz := r3.Vec{Z: 1}
	R.SetVec(0, r3.Rotate(ux, angle, axis))
	R.SetVec(1, r3.Rotate(uy, angle, axis))
	R.SetVec(2, r3.Rotate(uz, angle, axis))
	return R
}

// RotatorBetween returns the operator (for row vectors on its left) that rotates the direction
// from onto the direction to, through the shortest arc. If both are parallel, the identity is
// returned, if antiparallel, the rotation is by Pi around an arbitrary axis perpendicular to from.
func RotatorBetween(from, to r3.Vec) *v3.Matrix {
	from = r3.Unit(from)
	to = r3.Unit(to)
	axis := r3.Cross(from, to)
	angle := Angle(from, to)
	if r3.Norm(axis) <= rotTol {
		if angle < math.Pi/2 {
			return RotationMatrix(0, r3.Vec{Z: 1})
		}
		return RotationMatrix(math.Pi, Perpendicular(from))
	}
	return RotationMatrix(angle, axis)
}

// Perpendicular returns a unit vector perpendicular to v.
func Perpendicular(v r3.Vec) r3.Vec {
	//we cross with the axis least aligned with v.
	ref := r3.Vec{X: 1}
	if math.Abs(v.Y) < math.Abs(v.X) && math.Abs(v.Y) <= math.Abs(v.Z) {
		ref = r3.Vec{Y: 1}
	} else if math.Abs(v.Z) < math.Abs(v.X) {
		ref = r3.Vec{Z: 1}
	}
	return r3.Unit(r3.Cross(v, ref))
}

// IsRotation returns true if R is a 3x3 proper rotation: orthonormal with determinant +1,
// within a tolerance of 1e-6.
func IsRotation(R *v3.Matrix) bool {
	if R == nil || R.NVecs() != 3 || !R.Finite() {
		return false
	}
	P := mat.NewDense(3, 3, nil)
	P.Mul(R.Dense, R.Dense.T())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(P.At(i, j)-v3.KronekerDelta(float64(i), float64(j), -1)) > rotTol {
				return false
			}
		}
	}
	return math.Abs(R.Det()-1) <= rotTol
}

// Centroid returns the geometric center of the vectors in coords.
func Centroid(coords *v3.Matrix) r3.Vec {
	var sum r3.Vec
	n := coords.NVecs()
	for i := 0; i < n; i++ {
		sum = r3.Add(sum, coords.Vec(i))
	}
	return r3.Scale(1/float64(n), sum)
}

// MinDistance returns the smallest distance between a point of test and a point of other,
// and the indexes of both points. It is a brute force search.
func MinDistance(test, other *v3.Matrix) (dist float64, indexes [2]int) {
	dist = math.Inf(1)
	for i := 0; i < test.NVecs(); i++ {
		a1 := test.Vec(i)
		for j := 0; j < other.NVecs(); j++ {
			dt := r3.Norm(r3.Sub(a1, other.Vec(j)))
			if dt < dist {
				dist = dt
				indexes[0] = i
				indexes[1] = j
			}
		}
	}
	return
}
