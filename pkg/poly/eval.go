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

import "math/big"

// Evaluate this polynomial at a given point using Horner's method.  Arithmetic
// is performed over int64 and wraps around on overflow.
func (p Polynomial) Evaluate(x int64) int64 {
	var result int64
	//
	for i := int(p.degree); i >= 0; i-- {
		result = get(p.coeffs, uint(i)) + x*result
	}
	//
	return result
}

// EvaluateBig evaluates this polynomial at a given point using Horner's method
// over arbitrary precision integers.  Unlike Evaluate, this never overflows.
func (p Polynomial) EvaluateBig(x *big.Int) *big.Int {
	var (
		result = big.NewInt(0)
		ith    big.Int
	)
	//
	for i := int(p.degree); i >= 0; i-- {
		ith.SetInt64(get(p.coeffs, uint(i)))
		result.Mul(result, x)
		result.Add(result, &ith)
	}
	//
	return result
}

// Differentiate returns the derivative of this polynomial with respect to x.
// The derivative of any constant is the zero polynomial.
func (p Polynomial) Differentiate() Polynomial {
	if p.degree == 0 {
		return Polynomial{}
	}
	//
	coeffs := alloc(p.degree - 1)
	//
	for i := uint(0); i < p.degree; i++ {
		set(coeffs, i, int64(i+1)*get(p.coeffs, i+1))
	}
	//
	return wrap(coeffs)
}
