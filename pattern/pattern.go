/*
 * pattern.go, part of gombuild.
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

// Package pattern generates sets of points used to place repeated
// sub-structures: regular and random 2D patterns on the unit square,
// and points evenly spread on the unit sphere.
package pattern

import (
	v3 "github.com/mathewaa/gombuild/v3"
)

// Pattern is a policy to generate coordinates.
// Points returns exactly Len() points, one per row. 2D patterns have z=0.
type Pattern interface {
	Len() int
	Points() (*v3.Matrix, error)
}

// Scale multiplies the x, y and z components of every point by sx, sy and sz, in place,
// and returns points.
func Scale(points *v3.Matrix, sx, sy, sz float64) *v3.Matrix {
	for i := 0; i < points.NVecs(); i++ {
		row := points.RawRowView(i)
		row[0] *= sx
		row[1] *= sy
		row[2] *= sz
	}
	return points
}
