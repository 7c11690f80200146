/*
 * random.go, part of gombuild.
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
	"time"

	mbuild "github.com/mathewaa/gombuild"
	v3 "github.com/mathewaa/gombuild/v3"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Random2DPattern is a set of N points uniformly distributed on the unit square.
// If Seeded is true, the same Seed always gives the same points. Otherwise each call to
// Points uses a seed taken from the clock. Points can coincide.
type Random2DPattern struct {
	N      int
	Seed   uint64
	Seeded bool
}

// NewRandom2DPattern returns a pattern of n random points. If a seed is given,
// the pattern is reproducible.
func NewRandom2DPattern(n int, seed ...uint64) *Random2DPattern {
	R := &Random2DPattern{N: n}
	if len(seed) > 0 {
		R.Seed = seed[0]
		R.Seeded = true
	}
	return R
}

// Len returns the number of points.
func (R *Random2DPattern) Len() int {
	return R.N
}

// Points draws the N points.
func (R *Random2DPattern) Points() (*v3.Matrix, error) {
	if R.N < 1 {
		return nil, mbuild.ConfigErrorf("Random2DPattern.Points", "the number of points must be positive, got %d", R.N)
	}
	seed := R.Seed
	if !R.Seeded {
		seed = uint64(time.Now().UnixNano())
	}
	u := distuv.Uniform{Min: 0, Max: 1, Src: rand.NewSource(seed)}
	P := v3.Zeros(R.N)
	for i := 0; i < R.N; i++ {
		row := P.RawRowView(i)
		row[0] = u.Rand()
		row[1] = u.Rand()
	}
	return P, nil
}

func (R *Random2DPattern) String() string {
	if R.Seeded {
		return fmt.Sprintf("random %d (seed %d)", R.N, R.Seed)
	}
	return fmt.Sprintf("random %d", R.N)
}
