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
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"

	"github.com/consensys/go-unipoly/pkg/poly"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ErrInvalidPoint is returned when an evaluation point is not an integer.
var ErrInvalidPoint = errors.New("invalid evaluation point")

var evalCmd = &cobra.Command{
	Use:   "eval [flags] polynomial x",
	Short: "Evaluate a polynomial at a given point.",
	Long: `Evaluate a polynomial at a given integer point.  By default, evaluation
	uses 64-bit arithmetic which wraps around on overflow.  Use --big for exact
	evaluation.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		p := parseArgs(cmd, args[:1])[0]
		//
		if err := runEval(os.Stdout, p, args[1], GetFlag(cmd, "big")); err != nil {
			log.Error(err)
			os.Exit(1)
		}
	},
}

func runEval(w io.Writer, p poly.Polynomial, point string, exact bool) error {
	if exact {
		x, ok := new(big.Int).SetString(point, 10)
		if !ok {
			return fmt.Errorf("%w: %s", ErrInvalidPoint, point)
		}
		//
		fmt.Fprintln(w, p.EvaluateBig(x))
		//
		return nil
	}
	//
	x, err := strconv.ParseInt(point, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPoint, point)
	}
	//
	fmt.Fprintln(w, p.Evaluate(x))
	//
	return nil
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().Bool("big", false, "evaluate using arbitrary precision arithmetic")
}
