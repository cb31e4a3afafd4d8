// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package poly

// get returns the coefficient at a given position, or zero if that position
// lies outside the bounds of the coefficient array.  Algorithms rely on this
// to index beyond the nominal length of an operand without special-casing.
func get(coeffs []int64, pos uint) int64 {
	if pos < uint(len(coeffs)) {
		return coeffs[pos]
	}
	//
	return 0
}

// set assigns the coefficient at a given position.  The array must be owned by
// the caller (i.e. freshly allocated for the polynomial being constructed) and
// already sized to include the position.
func set(coeffs []int64, pos uint, value int64) []int64 {
	if pos >= uint(len(coeffs)) {
		panic("coefficient position out of bounds")
	}
	//
	coeffs[pos] = value
	//
	return coeffs
}

// normalize determines the position of the highest non-zero coefficient, or
// zero if there is none.  This is the degree of the given coefficients.
func normalize(coeffs []int64) uint {
	for i := len(coeffs) - 1; i > 0; i-- {
		if coeffs[i] != 0 {
			return uint(i)
		}
	}
	//
	return 0
}

// alloc allocates a fresh coefficient array large enough to hold a polynomial
// of the given degree.
func alloc(degree uint) []int64 {
	return make([]int64, degree+1)
}
