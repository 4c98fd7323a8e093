// seehuhn.de/go/qualpal - qualitative colour palettes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package mat3 implements the small amount of 3x3 linear algebra needed for
// colour space conversions.
package mat3

// Matrix is a 3x3 matrix, stored in row-major order.
//
// A column vector v is transformed into M*v:
//
//	/ M0 M1 M2 \   / v0 \
//	| M3 M4 M5 | * | v1 |
//	\ M6 M7 M8 /   \ v2 /
type Matrix [9]float64

// Identity is the identity matrix.
var Identity = Matrix{1, 0, 0, 0, 1, 0, 0, 0, 1}

// Apply returns M*(x, y, z).
func (M Matrix) Apply(x, y, z float64) (float64, float64, float64) {
	return M[0]*x + M[1]*y + M[2]*z,
		M[3]*x + M[4]*y + M[5]*z,
		M[6]*x + M[7]*y + M[8]*z
}

// Mul returns the matrix product M*B.
// Applying the result is equivalent to first applying B and then M.
func (M Matrix) Mul(B Matrix) Matrix {
	var res Matrix
	for i := range 3 {
		for j := range 3 {
			res[3*i+j] = M[3*i]*B[j] + M[3*i+1]*B[3+j] + M[3*i+2]*B[6+j]
		}
	}
	return res
}

// Det returns the determinant of M.
func (M Matrix) Det() float64 {
	return M[0]*(M[4]*M[8]-M[5]*M[7]) -
		M[1]*(M[3]*M[8]-M[5]*M[6]) +
		M[2]*(M[3]*M[7]-M[4]*M[6])
}

// Inv computes the inverse of M.
func (M Matrix) Inv() Matrix {
	det := M.Det()
	if det == 0 {
		panic("singular matrix")
	}
	invDet := 1 / det
	return Matrix{
		(M[4]*M[8] - M[5]*M[7]) * invDet,
		(M[2]*M[7] - M[1]*M[8]) * invDet,
		(M[1]*M[5] - M[2]*M[4]) * invDet,
		(M[5]*M[6] - M[3]*M[8]) * invDet,
		(M[0]*M[8] - M[2]*M[6]) * invDet,
		(M[2]*M[3] - M[0]*M[5]) * invDet,
		(M[3]*M[7] - M[4]*M[6]) * invDet,
		(M[1]*M[6] - M[0]*M[7]) * invDet,
		(M[0]*M[4] - M[1]*M[3]) * invDet,
	}
}

// Lerp interpolates linearly between A (t=0) and B (t=1).
func Lerp(A, B Matrix, t float64) Matrix {
	var res Matrix
	for i := range res {
		res[i] = A[i] + t*(B[i]-A[i])
	}
	return res
}
