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

// Plus returns the sum of this polynomial and another.
func (p Polynomial) Plus(other Polynomial) Polynomial {
	var (
		n      = max(p.degree, other.degree)
		coeffs = alloc(n)
	)
	//
	copy(coeffs, p.coeffs)
	//
	for i := uint(0); i < n+1; i++ {
		set(coeffs, i, coeffs[i]+get(other.coeffs, i))
	}
	//
	return wrap(coeffs)
}

// Minus returns the result of subtracting another polynomial from this
// polynomial.
func (p Polynomial) Minus(other Polynomial) Polynomial {
	var (
		n      = max(p.degree, other.degree)
		coeffs = alloc(n)
	)
	//
	copy(coeffs, p.coeffs)
	//
	for i := uint(0); i < n+1; i++ {
		set(coeffs, i, coeffs[i]-get(other.coeffs, i))
	}
	//
	return wrap(coeffs)
}

// Neg returns the negation of this polynomial.
func (p Polynomial) Neg() Polynomial {
	return Polynomial{}.Minus(p)
}

// Times returns the product of this polynomial and another.  The degree of the
// result is the sum of the operand degrees, unless either operand is zero.
func (p Polynomial) Times(other Polynomial) Polynomial {
	var coeffs = alloc(p.degree + other.degree)
	//
	for i := uint(0); i < p.degree+1; i++ {
		ith := get(p.coeffs, i)
		// Zero terms contribute nothing
		if ith == 0 {
			continue
		}
		//
		for j := uint(0); j < other.degree+1; j++ {
			set(coeffs, i+j, coeffs[i+j]+ith*get(other.coeffs, j))
		}
	}
	//
	return wrap(coeffs)
}

// Compose returns the polynomial p(q(x)) where p is this polynomial.  This is
// computed using Horner's method over polynomials, starting from the highest
// coefficient of p.  Each step multiplies the accumulator by q, hence the cost
// is roughly O(deg(p)^2 * deg(q)^2).
func (p Polynomial) Compose(q Polynomial) Polynomial {
	var acc Polynomial
	//
	for i := int(p.degree); i >= 0; i-- {
		acc = Constant(get(p.coeffs, uint(i))).Plus(q.Times(acc))
	}
	//
	return acc
}

// Pow raises this polynomial to a given (non-negative) power using repeated
// squaring.  Any polynomial raised to the power zero gives one.
func (p Polynomial) Pow(exp uint) Polynomial {
	var (
		result = Constant(1)
		base   = p
	)
	//
	for exp != 0 {
		if exp&1 == 1 {
			result = result.Times(base)
		}
		// div 2
		exp >>= 1
		//
		if exp != 0 {
			base = base.Times(base)
		}
	}
	//
	return result
}
