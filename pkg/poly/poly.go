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

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNegativePower is returned when attempting to construct a term with a
// negative exponent.  Only non-negative integer exponents are supported.
var ErrNegativePower = errors.New("negative power")

// Polynomial represents a univariate polynomial a0 + a1*x + ... + an*x^n with
// signed integer coefficients.  Coefficients are held densely, such that the
// ith entry holds the coefficient of x^i, along with the (normalised) degree.
// Polynomials are immutable: every operation returns a fresh polynomial and
// never modifies the coefficients of its operands.  Observe that an
// uninitialised Polynomial variable corresponds with zero.
//
// Coefficient arithmetic is performed over int64 and wraps around on overflow.
// Overflow is not detected; see EvaluateBig for exact evaluation.
type Polynomial struct {
	// Coefficients in ascending order of power.  Entries beyond degree (if
	// any) are always zero.
	coeffs []int64
	// Index of highest non-zero coefficient (or zero for constants).
	degree uint
}

// New constructs the single term polynomial coefficient*x^power.  A zero
// coefficient gives the zero polynomial.  An error is returned if the power is
// negative.
func New(coefficient int64, power int) (Polynomial, error) {
	if power < 0 {
		return Polynomial{}, fmt.Errorf("%w (x^%d)", ErrNegativePower, power)
	}
	//
	return term(coefficient, uint(power)), nil
}

// MustNew constructs the single term polynomial coefficient*x^power, and
// panics if the power is negative.
func MustNew(coefficient int64, power int) Polynomial {
	p, err := New(coefficient, power)
	if err != nil {
		panic(err)
	}
	//
	return p
}

// Constant constructs a polynomial of degree zero.
func Constant(value int64) Polynomial {
	return term(value, 0)
}

// X returns the polynomial x.
func X() Polynomial {
	return term(1, 1)
}

func term(coefficient int64, power uint) Polynomial {
	coeffs := set(alloc(power), power, coefficient)
	//
	return wrap(coeffs)
}

// wrap a freshly constructed coefficient array as a polynomial, such that the
// degree is recomputed.  Trailing zero coefficients are dropped.
func wrap(coeffs []int64) Polynomial {
	degree := normalize(coeffs)
	//
	return Polynomial{coeffs[:degree+1], degree}
}

// Degree returns the highest power with a non-zero coefficient in this
// polynomial.  The degree of any constant (including zero) is zero.
func (p Polynomial) Degree() uint {
	return p.degree
}

// Coefficient returns the coefficient of x^i, which is zero for any power
// above the degree.
func (p Polynomial) Coefficient(i uint) int64 {
	return get(p.coeffs, i)
}

// Coefficients returns a copy of the coefficients of this polynomial in
// ascending order of power.  The result always has length degree+1.
func (p Polynomial) Coefficients() []int64 {
	if len(p.coeffs) == 0 {
		return []int64{0}
	}
	//
	return slices.Clone(p.coeffs[:p.degree+1])
}

// IsZero checks whether this is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return p.degree == 0 && get(p.coeffs, 0) == 0
}

// Equal checks whether two polynomials have identical coefficients.
func (p Polynomial) Equal(other Polynomial) bool {
	if p.degree != other.degree {
		return false
	}
	//
	for i := uint(0); i < p.degree+1; i++ {
		if get(p.coeffs, i) != get(other.coeffs, i) {
			return false
		}
	}
	//
	return true
}
