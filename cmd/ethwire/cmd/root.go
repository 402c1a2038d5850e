// Copyright © 2024 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cmd wires a thin cobra CLI on top of pkg/ethereum's entry
// points. Each subcommand hex-decodes its inputs, calls straight into
// the pure library, and prints the result - there is no config file,
// no server, and no persisted state here.
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "ethwire",
	Short: "Ethereum wire-format codec and crypto utilities",
	Long: `ethwire is a command line wrapper over a pure Ethereum wire-artifact
library: Keccak-256 hashing, RLP encode/decode, transaction
marshalling and recovery, and Merkle-Patricia proof verification.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(keccak256Command())
	rootCmd.AddCommand(rlpEncodeCommand())
	rootCmd.AddCommand(rlpDecodeCommand())
	rootCmd.AddCommand(parseTxCommand())
	rootCmd.AddCommand(verifyProofCommand())
}

// Execute runs the root command, logging any returned error via
// logrus before propagating it to the caller as a process exit code.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("command failed")
		return err
	}
	return nil
}
