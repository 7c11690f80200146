/*
 * gonum.go, part of gombuild.
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

//gonum.go contains what is needed for handling the gonum/mat types.

package v3

import (
	"gonum.org/v1/gonum/mat"
)

// Matrix is a set of vectors in 3D space. Within the package it is understood
// that a "vector" is a row vector, i.e. the cartesian coordinates of a point in
// 3D space.
type Matrix struct {
	*mat.Dense
}

// Mul wraps mat.Dense.Mul to take care of the case when one of the
// arguments is also the receiver. Since the receiver is a Matrix,
// the mat function would not know that internally F.Dense==A.Dense.
func (F *Matrix) Mul(A, B mat.Matrix) {
	if a, ok := A.(*Matrix); ok {
		A = a.Dense
	}
	if b, ok := B.(*Matrix); ok {
		B = b.Dense
	}
	if A == mat.Matrix(F.Dense) || B == mat.Matrix(F.Dense) {
		tmp := mat.NewDense(F.NVecs(), 3, nil)
		tmp.Mul(A, B)
		F.Dense.Copy(tmp)
		return
	}
	F.Dense.Mul(A, B)
}

// Det returns the determinant of a 3x3 matrix. Panics if F is not 3x3.
func (F *Matrix) Det() float64 {
	if F.NVecs() != 3 {
		panic(ErrDeterminant)
	}
	return mat.Det(F.Dense)
}

// PanicMsg is a message used for panics on ill-formed matrices.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix = PanicMsg("gombuild/v3: A Matrix should have 3 columns")
	ErrDeterminant  = PanicMsg("gombuild/v3: Determinants are only available for 3x3 matrices")
	ErrZeroVecs     = PanicMsg("gombuild/v3: A Matrix needs at least one vector")
)
