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

var composeCmd = &cobra.Command{
	Use:   "compose [flags] polynomial polynomial...",
	Short: "Compose two or more polynomials.",
	Long: `Compose two or more polynomials, such that given p(x) and q(x) this
	prints p(q(x)).  Observe the cost of composition grows quickly with degree.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		polys := parseArgs(cmd, args)
		stats := util.NewPerfStats()
		runCompose(os.Stdout, polys)
		stats.Log("Composition")
	},
}

func runCompose(w io.Writer, polys []poly.Polynomial) {
	res := polys[0]
	//
	for _, p := range polys[1:] {
		res = res.Compose(p)
	}
	//
	fmt.Fprintln(w, res)
}

func init() {
	rootCmd.AddCommand(composeCmd)
}
