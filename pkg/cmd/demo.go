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
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-unipoly/pkg/poly"
	"github.com/consensys/go-unipoly/pkg/util"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print the results of operations on two sample polynomials.",
	Long: `Construct the polynomials p(x) = 4x^3 + 3x^2 + 2x + 1 and q(x) = 3x^2 + 5
	from individual terms, and print the results of applying each operation.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		stats := util.NewPerfStats()
		runDemo(os.Stdout)
		stats.Log("Demo")
	},
}

// Construct p(x) = 4x^3 + 3x^2 + 2x + 1 from its individual terms.
func demoP() poly.Polynomial {
	return poly.MustNew(4, 3).Plus(poly.MustNew(3, 2)).Plus(poly.MustNew(2, 1)).Plus(poly.MustNew(1, 0))
}

// Construct q(x) = 3x^2 + 5 from its individual terms.
func demoQ() poly.Polynomial {
	return poly.MustNew(3, 2).Plus(poly.MustNew(5, 0))
}

func runDemo(w io.Writer) {
	var (
		p    = demoP()
		q    = demoQ()
		zero = poly.MustNew(0, 0)
	)
	//
	fmt.Fprintf(w, "zero(x)     = %s\n", zero)
	fmt.Fprintf(w, "p(x)        = %s\n", p)
	fmt.Fprintf(w, "q(x)        = %s\n", q)
	fmt.Fprintf(w, "p(x) + q(x) = %s\n", p.Plus(q))
	fmt.Fprintf(w, "p(x) - q(x) = %s\n", p.Minus(q))
	fmt.Fprintf(w, "p(x) * q(x) = %s\n", p.Times(q))
	fmt.Fprintf(w, "p(q(x))     = %s\n", p.Compose(q))
	fmt.Fprintf(w, "0 - p(x)    = %s\n", zero.Minus(p))
	fmt.Fprintf(w, "p(3)        = %d\n", p.Evaluate(3))
	fmt.Fprintf(w, "p'(x)       = %s\n", p.Differentiate())
	fmt.Fprintf(w, "p''(x)      = %s\n", p.Differentiate().Differentiate())
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
