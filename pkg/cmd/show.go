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

var showCmd = &cobra.Command{
	Use:   "show [flags] polynomial",
	Short: "Print a polynomial in normal form.",
	Long: `Parse a polynomial given as an S-expression and print its normal form,
	with the most significant term first.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		p := parseArgs(cmd, args)[0]
		runShow(os.Stdout, p, GetFlag(cmd, "lisp"), GetFlag(cmd, "degree"))
	},
}

func runShow(w io.Writer, p poly.Polynomial, lisp bool, degree bool) {
	if lisp {
		fmt.Fprintln(w, p.Lisp())
	} else {
		fmt.Fprintln(w, p)
	}
	//
	if degree {
		fmt.Fprintf(w, "degree %d\n", p.Degree())
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Bool("lisp", false, "print as an S-expression")
	showCmd.Flags().Bool("degree", false, "print the degree")
}
