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
	"fmt"
	"math"
	"math/big"
	"testing"
)

func Test_PolyEval_01(t *testing.T) {
	points := [][]int64{{0, 0}, {0, 1}, {0, -5}}
	check(t, Polynomial{}, points)
}

func Test_PolyEval_02(t *testing.T) {
	points := [][]int64{{123, 0}, {123, 1}}
	check(t, Constant(123), points)
}

func Test_PolyEval_03(t *testing.T) {
	points := [][]int64{{1, 0}, {142, 3}, {-2, -1}, {49, 2}}
	check(t, scenarioP(), points)
}

func Test_PolyEval_04(t *testing.T) {
	points := [][]int64{{5, 0}, {8, 1}, {32, -3}}
	check(t, scenarioQ(), points)
}

func Test_PolyEval_05(t *testing.T) {
	for _, a := range samples() {
		for _, b := range samples() {
			for x := int64(-5); x <= 5; x++ {
				expected := a.Evaluate(x) * b.Evaluate(x)
				//
				if actual := a.Times(b).Evaluate(x); actual != expected {
					t.Errorf("((%s) * (%s))(%d) was %d, expected %d", a, b, x, actual, expected)
				}
			}
		}
	}
}

func Test_PolyEval_06(t *testing.T) {
	for _, a := range samples() {
		for _, b := range samples() {
			for x := int64(-3); x <= 3; x++ {
				expected := a.Evaluate(b.Evaluate(x))
				//
				if actual := a.Compose(b).Evaluate(x); actual != expected {
					t.Errorf("((%s) o (%s))(%d) was %d, expected %d", a, b, x, actual, expected)
				}
			}
		}
	}
}

func Test_PolyEval_07(t *testing.T) {
	for _, a := range samples() {
		for _, b := range samples() {
			for x := int64(-5); x <= 5; x++ {
				if l, r := a.Plus(b).Evaluate(x), a.Evaluate(x)+b.Evaluate(x); l != r {
					t.Errorf("((%s) + (%s))(%d) was %d, expected %d", a, b, x, l, r)
				} else if l, r := a.Minus(b).Evaluate(x), a.Evaluate(x)-b.Evaluate(x); l != r {
					t.Errorf("((%s) - (%s))(%d) was %d, expected %d", a, b, x, l, r)
				}
			}
		}
	}
}

func Test_PolyEval_08(t *testing.T) {
	// Evaluation wraps around on overflow, hence (2^32)^2 == 0
	check(t, MustNew(1, 2), [][]int64{{0, 1 << 32}})
	check(t, Constant(math.MaxInt64).Plus(X()), [][]int64{{math.MinInt64, 1}, {math.MaxInt64 - 2, -2}})
}

func Test_PolyEval_09(t *testing.T) {
	// Wrapped evaluation agrees with exact evaluation modulo 2^64
	var (
		p   = MustNew(3, 5).Minus(MustNew(7, 2)).Plus(Constant(math.MaxInt64))
		x   = int64(123456789)
		mod = new(big.Int).Lsh(big.NewInt(1), 64)
	)
	//
	exact := p.EvaluateBig(big.NewInt(x))
	exact.Mod(exact, mod)
	//
	actual := new(big.Int).SetUint64(uint64(p.Evaluate(x)))
	//
	if actual.Cmp(exact) != 0 {
		t.Errorf("(%s)(%d) was %s, expected %s (mod 2^64)", p, x, actual, exact)
	}
}

func Test_PolyEvalBig_01(t *testing.T) {
	for _, a := range samples() {
		for x := int64(-5); x <= 5; x++ {
			expected := big.NewInt(a.Evaluate(x))
			//
			if actual := a.EvaluateBig(big.NewInt(x)); actual.Cmp(expected) != 0 {
				t.Errorf("(%s)(%d) was %s, expected %s", a, x, actual, expected)
			}
		}
	}
}

func Test_PolyEvalBig_02(t *testing.T) {
	// x^2 + 1 at 2^40 overflows int64
	var (
		p        = MustNew(1, 2).Plus(Constant(1))
		x        = new(big.Int).Lsh(big.NewInt(1), 40)
		expected = new(big.Int).Lsh(big.NewInt(1), 80)
	)
	//
	expected.Add(expected, big.NewInt(1))
	//
	if actual := p.EvaluateBig(x); actual.Cmp(expected) != 0 {
		t.Errorf("(%s)(%s) was %s, expected %s", p, x, actual, expected)
	}
}

func Test_PolyEvalBig_03(t *testing.T) {
	p := Constant(math.MinInt64).Plus(MustNew(math.MaxInt64, 1))
	x := big.NewInt(2)
	// 2*MaxInt64 + MinInt64 == MaxInt64 - 1
	expected := big.NewInt(math.MaxInt64 - 1)
	//
	if actual := p.EvaluateBig(x); actual.Cmp(expected) != 0 {
		t.Errorf("(%s)(%s) was %s, expected %s", p, x, actual, expected)
	}
}

func Test_PolyDiff_01(t *testing.T) {
	checkCoeffs(t, MustNew(5, 0).Differentiate(), 0)
	checkCoeffs(t, Polynomial{}.Differentiate(), 0)
}

func Test_PolyDiff_02(t *testing.T) {
	checkCoeffs(t, X().Differentiate(), 1)
}

func Test_PolyDiff_03(t *testing.T) {
	checkCoeffs(t, scenarioP().Differentiate(), 2, 6, 12)
	checkCoeffs(t, scenarioP().Differentiate().Differentiate(), 6, 24)
	checkCoeffs(t, scenarioP().Differentiate().Differentiate().Differentiate(), 24)
	checkCoeffs(t, scenarioP().Differentiate().Differentiate().Differentiate().Differentiate(), 0)
}

func Test_PolyDiff_04(t *testing.T) {
	// Product rule: (ab)' == a'b + ab'
	for _, a := range samples() {
		for _, b := range samples() {
			l := a.Times(b).Differentiate()
			r := a.Differentiate().Times(b).Plus(a.Times(b.Differentiate()))
			//
			if !l.Equal(r) {
				t.Errorf("((%s) * (%s))' was %s, expected %s", a, b, l, r)
			}
		}
	}
}

func Test_PolyDiff_05(t *testing.T) {
	for _, a := range samples() {
		if d := a.Differentiate(); a.Degree() > 0 && d.Degree() != a.Degree()-1 {
			t.Errorf("(%s)' has degree %d", a, d.Degree())
		}
	}
}

// Check the evaluation of a polynomial at given points, recalling that the
// first element of each point is the expected outcome.
func check(t *testing.T, p Polynomial, points [][]int64) {
	t.Helper()
	//
	for _, pnt := range points {
		if actual := p.Evaluate(pnt[1]); actual != pnt[0] {
			err := fmt.Sprintf("incorrect evaluation of %s at %d (was %d, expected %d)", p, pnt[1], actual, pnt[0])
			t.Error(err)
		}
	}
}
