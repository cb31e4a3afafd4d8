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

	"github.com/consensys/go-unipoly/pkg/util/source"
	"github.com/consensys/go-unipoly/pkg/util/source/sexp"
)

// Var is the name of the (single) variable used when parsing and rendering
// polynomials.
const Var = "x"

// MaxPower bounds the degree of any polynomial constructed by the parser.
// This prevents a small input, such as (^ x 1000000000) or
// (compose (^ x 300) (^ x 300)), from allocating huge coefficient arrays.
const MaxPower = 1 << 16

// Parse a given string into a polynomial, or produce one or more syntax
// errors.  The input is an S-expression built from integer literals, the
// variable x and the following operators:
//
//	(+ e1 ... en)       sum
//	(- e)               negation
//	(- e1 ... en)       difference
//	(* e1 ... en)       product
//	(^ e n)             power, where n is a non-negative integer literal
//	(compose e1 ... en) composition e1(e2(...en(x)))
//	(diff e)            derivative with respect to x
func Parse(input string) (Polynomial, []source.SyntaxError) {
	return ParseSource(source.NewSourceFile("input", input))
}

// ParseSource parses the contents of a given source file into a polynomial, or
// produces one or more syntax errors reported against that file.
func ParseSource(srcfile *source.File) (Polynomial, []source.SyntaxError) {
	// Parse input as S-expression
	term, srcmap, err := sexp.Parse(srcfile)
	if err != nil {
		return Polynomial{}, []source.SyntaxError{*err}
	}
	// Now, convert S-expression into polynomial
	return NewParser(srcmap).Parse(term)
}

// Parser is responsible for translating S-expressions into polynomials.
type Parser struct {
	// Maps S-Expressions to their spans in the original source file.  This is
	// used for reporting syntax errors.
	srcmap *source.Map[sexp.SExp]
}

// NewParser constructs a new parser for a given source map.
func NewParser(srcmap *source.Map[sexp.SExp]) *Parser {
	return &Parser{srcmap}
}

// Parse a given S-expression into a polynomial, or produce one or more syntax
// errors.
func (p *Parser) Parse(expr sexp.SExp) (Polynomial, []source.SyntaxError) {
	switch e := expr.(type) {
	case *sexp.Symbol:
		return p.parseSymbol(e)
	case *sexp.List:
		return p.parseList(e)
	default:
		return Polynomial{}, p.srcmap.SyntaxErrors(expr, "unknown term")
	}
}

func (p *Parser) parseSymbol(symbol *sexp.Symbol) (Polynomial, []source.SyntaxError) {
	if symbol.Value == Var {
		return X(), nil
	} else if val, err := symbol.Int(); err == nil {
		return Constant(val), nil
	}
	//
	return Polynomial{}, p.srcmap.SyntaxErrors(symbol, "unknown symbol")
}

func (p *Parser) parseList(list *sexp.List) (Polynomial, []source.SyntaxError) {
	if list.Len() <= 1 {
		return Polynomial{}, p.srcmap.SyntaxErrors(list, "malformed expression")
	} else if list.Get(0).AsSymbol() == nil {
		return Polynomial{}, p.srcmap.SyntaxErrors(list.Get(0), "expected operator")
	}
	//
	args := list.Elements[1:]
	//
	switch list.Head() {
	case "+":
		return p.foldList(args, Polynomial.Plus, sumDegree)
	case "-":
		if len(args) == 1 {
			arg, errs := p.Parse(args[0])
			return arg.Neg(), errs
		}
		//
		return p.foldList(args, Polynomial.Minus, sumDegree)
	case "*":
		return p.foldList(args, Polynomial.Times, productDegree)
	case "compose":
		return p.foldList(args, Polynomial.Compose, composeDegree)
	case "^":
		return p.parsePower(list)
	case "diff":
		if len(args) != 1 {
			return Polynomial{}, p.srcmap.SyntaxErrors(list, "expected exactly one argument")
		}
		//
		arg, errs := p.Parse(args[0])
		//
		return arg.Differentiate(), errs
	default:
		return Polynomial{}, p.srcmap.SyntaxErrors(list.Get(0), "unknown operator")
	}
}

func (p *Parser) parsePower(list *sexp.List) (Polynomial, []source.SyntaxError) {
	if list.Len() != 3 {
		return Polynomial{}, p.srcmap.SyntaxErrors(list, "expected exactly two arguments")
	}
	//
	base, errs := p.Parse(list.Get(1))
	if len(errs) > 0 {
		return base, errs
	}
	//
	exp := list.Get(2).AsSymbol()
	if exp == nil {
		return Polynomial{}, p.srcmap.SyntaxErrors(list.Get(2), "expected integer exponent")
	}
	//
	n, err := exp.Int()
	//
	switch {
	case err != nil:
		return Polynomial{}, p.srcmap.SyntaxErrors(exp, "expected integer exponent")
	case n < 0:
		return Polynomial{}, p.srcmap.SyntaxErrors(exp, ErrNegativePower.Error())
	case uint64(n) > MaxPower/uint64(max(base.degree, 1)):
		return Polynomial{}, p.srcmap.SyntaxErrors(exp, fmt.Sprintf("exponent too large (max degree %d)", MaxPower))
	}
	//
	return base.Pow(uint(n)), nil
}

// Type of operators to be used with fold.
type foldOp func(Polynomial, Polynomial) Polynomial

// Determines the degree of a fold step's result from the degrees of its
// operands, without constructing it.
type degreeOp func(uint, uint) uint64

func sumDegree(l, r uint) uint64 {
	return uint64(max(l, r))
}

func productDegree(l, r uint) uint64 {
	return uint64(l) + uint64(r)
}

func composeDegree(l, r uint) uint64 {
	if l != 0 && uint64(r) > math.MaxUint64/uint64(l) {
		return math.MaxUint64
	}
	//
	return uint64(l) * uint64(r)
}

func (p *Parser) foldList(elements []sexp.SExp, op foldOp, degree degreeOp) (Polynomial, []source.SyntaxError) {
	var res Polynomial
	// Fold over each element
	for i := 0; i < len(elements); i++ {
		if poly, errs := p.Parse(elements[i]); len(errs) > 0 {
			return res, errs
		} else if i == 0 {
			res = poly
		} else if degree(res.degree, poly.degree) > MaxPower {
			msg := fmt.Sprintf("degree too large (max degree %d)", MaxPower)
			return Polynomial{}, p.srcmap.SyntaxErrors(elements[i], msg)
		} else {
			res = op(res, poly)
		}
	}
	//
	return res, nil
}
