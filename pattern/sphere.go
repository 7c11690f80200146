/*
 * sphere.go, part of gombuild.
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
	"math"

	mbuild "github.com/mathewaa/gombuild"
	v3 "github.com/mathewaa/gombuild/v3"
)

var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// SpherePattern spreads N points evenly on the unit sphere, along a golden-angle spiral
// that goes from the north to the south pole.
type SpherePattern struct {
	N int
}

// Len returns the number of points.
func (S *SpherePattern) Len() int {
	return S.N
}

// Points returns the points of the spiral. All of them have norm 1.
func (S *SpherePattern) Points() (*v3.Matrix, error) {
	if S.N < 1 {
		return nil, mbuild.ConfigErrorf("SpherePattern.Points", "the number of points must be positive, got %d", S.N)
	}
	P := v3.Zeros(S.N)
	n := float64(S.N)
	for k := 0; k < S.N; k++ {
		z := 1 - (2*float64(k)+1)/n
		r := math.Sqrt(1 - z*z)
		phi := goldenAngle * float64(k)
		row := P.RawRowView(k)
		row[0] = r * math.Cos(phi)
		row[1] = r * math.Sin(phi)
		row[2] = z
	}
	return P, nil
}
