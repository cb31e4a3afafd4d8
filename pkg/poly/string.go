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
	"strconv"
	"strings"

	"github.com/consensys/go-unipoly/pkg/util/source/sexp"
)

// String renders this polynomial with the most significant term first, for
// example "4x^3 + 3x^2 + 2x + 1".  Terms with zero coefficients are omitted,
// and negative coefficients are rendered by subtraction.  Coefficients are
// always given explicitly, hence x^2 renders as "1x^2".
func (p Polynomial) String() string {
	var (
		buf     strings.Builder
		leading = get(p.coeffs, p.degree)
	)
	//
	buf.WriteString(strconv.FormatInt(leading, 10))
	writeVar(&buf, p.degree)
	//
	for i := int(p.degree) - 1; i >= 0; i-- {
		ith := get(p.coeffs, uint(i))
		//
		switch {
		case ith > 0:
			buf.WriteString(" + ")
			buf.WriteString(strconv.FormatInt(ith, 10))
		case ith < 0:
			buf.WriteString(" - ")
			buf.WriteString(strconv.FormatUint(abs(ith), 10))
		default:
			continue
		}
		//
		writeVar(&buf, uint(i))
	}
	//
	return buf.String()
}

// Lisp constructs an S-expression representation of this polynomial, such as
// (+ (* 4 (^ x 3)) x 1), which can be parsed back with Parse.  Unit
// coefficients are omitted.
func (p Polynomial) Lisp() sexp.SExp {
	var terms []sexp.SExp
	//
	for i := int(p.degree); i >= 0; i-- {
		ith := get(p.coeffs, uint(i))
		//
		switch {
		case ith == 0:
			continue
		case i == 0:
			terms = append(terms, sexp.NewInt(ith))
		case ith == 1:
			terms = append(terms, lispVar(uint(i)))
		default:
			terms = append(terms, sexp.NewList([]sexp.SExp{sexp.NewSymbol("*"), sexp.NewInt(ith), lispVar(uint(i))}))
		}
	}
	//
	switch len(terms) {
	case 0:
		return sexp.NewInt(0)
	case 1:
		return terms[0]
	default:
		return sexp.NewList(append([]sexp.SExp{sexp.NewSymbol("+")}, terms...))
	}
}

func lispVar(power uint) sexp.SExp {
	if power == 1 {
		return sexp.NewSymbol(Var)
	}
	//
	return sexp.NewList([]sexp.SExp{sexp.NewSymbol("^"), sexp.NewSymbol(Var), sexp.NewInt(int64(power))})
}

func writeVar(buf *strings.Builder, power uint) {
	switch {
	case power == 1:
		buf.WriteString(Var)
	case power > 1:
		buf.WriteString(Var)
		buf.WriteString("^")
		buf.WriteString(strconv.FormatUint(uint64(power), 10))
	}
}

// abs returns the magnitude of a given coefficient.  This is correct even for
// math.MinInt64, whose negation wraps to itself.
func abs(c int64) uint64 {
	if c < 0 {
		return uint64(-c)
	}
	//
	return uint64(c)
}
