/*
 * grid.go, part of gombuild.
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
	"fmt"

	mbuild "github.com/mathewaa/gombuild"
	v3 "github.com/mathewaa/gombuild/v3"
)

// Grid2DPattern is a regular N x M grid on the unit square. Point (i,j) is at (i/N, j/M, 0).
type Grid2DPattern struct {
	N int
	M int
}

// NewGrid2DPattern returns a n x m grid pattern.
func NewGrid2DPattern(n, m int) *Grid2DPattern {
	return &Grid2DPattern{N: n, M: m}
}

// Len returns the number of points in the grid.
func (G *Grid2DPattern) Len() int {
	return G.N * G.M
}

// Points returns the grid points, with i as the outer index.
func (G *Grid2DPattern) Points() (*v3.Matrix, error) {
	if G.N < 1 || G.M < 1 {
		return nil, mbuild.ConfigErrorf("Grid2DPattern.Points", "grid dimensions must be positive, got %d x %d", G.N, G.M)
	}
	P := v3.Zeros(G.Len())
	for i := 0; i < G.N; i++ {
		for j := 0; j < G.M; j++ {
			row := P.RawRowView(i*G.M + j)
			row[0] = float64(i) / float64(G.N)
			row[1] = float64(j) / float64(G.M)
		}
	}
	return P, nil
}

func (G *Grid2DPattern) String() string {
	return fmt.Sprintf("grid %dx%d", G.N, G.M)
}
