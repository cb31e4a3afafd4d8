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
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff [flags] polynomial",
	Short: "Differentiate a polynomial with respect to x.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		p := parseArgs(cmd, args)[0]
		runDiff(os.Stdout, p, GetUint(cmd, "times"))
	},
}

// Differentiate a polynomial n times, printing each derivative in turn.
func runDiff(w io.Writer, p poly.Polynomial, n uint) {
	for i := uint(0); i < n; i++ {
		p = p.Differentiate()
		//
		fmt.Fprintln(w, p)
	}
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().UintP("times", "n", 1, "number of times to differentiate")
}
