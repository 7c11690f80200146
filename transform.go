/*
 * transform.go, part of gombuild.
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
	"gonum.org/v1/gonum/spatial/r3"
)

// Coords returns a new matrix with the positions of the particles of C, in pre-order.
func (C *Compound) Coords() *v3.Matrix {
	parts := C.Particles()
	if len(parts) == 0 {
		return nil
	}
	pos := make([]r3.Vec, len(parts))
	for i, v := range parts {
		pos[i] = v.pos
	}
	return v3.FromVecs(pos)
}

// Translate moves every particle of C by v.
func (C *Compound) Translate(v r3.Vec) error {
	if err := C.Transform(nil, v); err != nil {
		return ErrDecorate(err, "Translate")
	}
	return nil
}

// Rotate rotates C by angle radians around the axis that passes through the
// center of C with direction axis.
func (C *Compound) Rotate(angle float64, axis r3.Vec) error {
	if err := C.RotateAround(angle, axis, C.Center()); err != nil {
		return ErrDecorate(err, "Rotate")
	}
	return nil
}

// RotateAround rotates C by angle radians around the axis with direction axis that passes by pivot.
func (C *Compound) RotateAround(angle float64, axis, pivot r3.Vec) error {
	if r3.Norm(axis) == 0 || math.IsNaN(angle) || math.IsInf(angle, 0) {
		return ConfigErrorf("RotateAround", "invalid rotation: angle %g, axis %v", angle, axis)
	}
	R := RotationMatrix(angle, axis)
	//p' = (p-c)R + c = pR + (c - cR)
	trans := r3.Sub(pivot, rowTimes(pivot, R))
	if err := C.Transform(R, trans); err != nil {
		return ErrDecorate(err, "RotateAround")
	}
	return nil
}

// Transform applies the rigid transformation p' = pR + trans to every particle of C, and
// rotates the directions of the ports anchored in C. R can be nil, meaning the identity.
// The operation is atomic: if R is not a proper rotation, or any new position is not finite,
// a ConfigError is returned and nothing moves. Transform only works on internal compounds,
// particles are moved by transforming their parents.
func (C *Compound) Transform(R *v3.Matrix, trans r3.Vec) error {
	if C.particle {
		return StructureErrorf("Transform", "particle %s can't be transformed on its own", C.name)
	}
	if R != nil && !IsRotation(R) {
		return ConfigErrorf("Transform", "the given matrix is not a proper rotation")
	}
	if err := C.transform(R, trans); err != nil {
		return ErrDecorate(err, "Transform")
	}
	return nil
}

// transform does the work for Transform without the checks on C and R, so it can
// also move a lone particle.
func (C *Compound) transform(R *v3.Matrix, trans r3.Vec) error {
	parts := C.Particles()
	if len(parts) == 0 {
		return StructureErrorf("transform", "compound %s has no particles", C.name)
	}
	coords := C.Coords()
	if R != nil {
		coords.Mul(coords, R)
	}
	coords.Translate(trans)
	if !coords.Finite() {
		return ConfigErrorf("transform", "the transformation gives non-finite coordinates")
	}
	for i, v := range parts {
		v.pos = coords.Vec(i)
	}
	if R == nil {
		return nil
	}
	for _, p := range C.Root().AllPorts() {
		if C.Contains(p.anchor) {
			p.direction = r3.Unit(rowTimes(p.direction, R))
		}
	}
	return nil
}

// rowTimes returns the row vector v multiplied by R.
func rowTimes(v r3.Vec, R *v3.Matrix) r3.Vec {
	return r3.Add(r3.Add(r3.Scale(v.X, R.Vec(0)), r3.Scale(v.Y, R.Vec(1))), r3.Scale(v.Z, R.Vec(2)))
}
