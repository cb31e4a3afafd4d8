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
package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/consensys/go-unipoly/pkg/poly"
	"github.com/consensys/go-unipoly/pkg/util/source"
	"github.com/stretchr/testify/require"
)

func Test_Demo_01(t *testing.T) {
	var buf bytes.Buffer
	//
	runDemo(&buf)
	//
	require.Equal(t, []string{
		"zero(x)     = 0",
		"p(x)        = 4x^3 + 3x^2 + 2x + 1",
		"q(x)        = 3x^2 + 5",
		"p(x) + q(x) = 4x^3 + 6x^2 + 2x + 6",
		"p(x) - q(x) = 4x^3 + 2x - 4",
		"p(x) * q(x) = 12x^5 + 9x^4 + 26x^3 + 18x^2 + 10x + 5",
		"p(q(x))     = 108x^6 + 567x^4 + 996x^2 + 586",
		"0 - p(x)    = -4x^3 - 3x^2 - 2x - 1",
		"p(3)        = 142",
		"p'(x)       = 12x^2 + 6x + 2",
		"p''(x)      = 24x + 6",
	}, lines(&buf))
}

func Test_Show_01(t *testing.T) {
	var buf bytes.Buffer
	//
	runShow(&buf, parse(t, "(* (+ x 1) (+ x 1))"), false, true)
	require.Equal(t, []string{"1x^2 + 2x + 1", "degree 2"}, lines(&buf))
}

func Test_Show_02(t *testing.T) {
	var buf bytes.Buffer
	//
	runShow(&buf, parse(t, "(* (+ x 1) (+ x 1))"), true, false)
	require.Equal(t, []string{"(+ (^ x 2) (* 2 x) 1)"}, lines(&buf))
}

func Test_Eval_01(t *testing.T) {
	var buf bytes.Buffer
	//
	require.NoError(t, runEval(&buf, demoP(), "3", false))
	require.NoError(t, runEval(&buf, demoP(), "-1", true))
	require.Equal(t, []string{"142", "-2"}, lines(&buf))
}

func Test_Eval_02(t *testing.T) {
	var buf bytes.Buffer
	// 2^40 squared overflows 64 bits
	require.NoError(t, runEval(&buf, parse(t, "(^ x 2)"), "1099511627776", true))
	require.Equal(t, []string{"1208925819614629174706176"}, lines(&buf))
}

func Test_Eval_03(t *testing.T) {
	var buf bytes.Buffer
	//
	require.ErrorIs(t, runEval(&buf, demoP(), "y", false), ErrInvalidPoint)
	require.ErrorIs(t, runEval(&buf, demoP(), "1.5", true), ErrInvalidPoint)
	require.Empty(t, buf.String())
}

func Test_Diff_01(t *testing.T) {
	var buf bytes.Buffer
	//
	runDiff(&buf, demoP(), 4)
	require.Equal(t, []string{"12x^2 + 6x + 2", "24x + 6", "24", "0"}, lines(&buf))
}

func Test_Compose_01(t *testing.T) {
	var buf bytes.Buffer
	//
	runCompose(&buf, []poly.Polynomial{parse(t, "(* 2 x)"), parse(t, "(+ x 1)"), parse(t, "(^ x 2)")})
	require.Equal(t, []string{"2x^2 + 2"}, lines(&buf))
}

func Test_SyntaxError_01(t *testing.T) {
	var buf bytes.Buffer
	//
	_, errs := poly.ParseSource(source.NewSourceFile("arg1", "(+ x y)"))
	require.Len(t, errs, 1)
	//
	printSyntaxError(&buf, &errs[0], false)
	require.Equal(t, []string{"arg1:1: unknown symbol", "(+ x y)", "     ^"}, lines(&buf))
}

func Test_SyntaxError_02(t *testing.T) {
	var buf bytes.Buffer
	//
	_, errs := poly.ParseSource(source.NewSourceFile("arg1", "(foo x)"))
	require.Len(t, errs, 1)
	//
	printSyntaxError(&buf, &errs[0], true)
	require.Contains(t, buf.String(), "\033[1;31munknown operator\033[0m")
	require.Contains(t, buf.String(), "\033[1;31m ^^^\033[0m")
}

func Test_Version_01(t *testing.T) {
	require.Equal(t, "unipoly v1.2.3", versionString("v1.2.3"))
}

func Test_Version_02(t *testing.T) {
	// Falls back on build information, or reports an unknown version
	version := versionString("")
	require.True(t, strings.HasPrefix(version, "unipoly "))
	require.Greater(t, len(version), len("unipoly "))
}

func parse(t *testing.T, input string) poly.Polynomial {
	t.Helper()
	//
	p, errs := poly.Parse(input)
	require.Empty(t, errs)
	//
	return p
}

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}
