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

package cmd

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/kaleido-io/ethwire/pkg/ethereum"
	"github.com/kaleido-io/ethwire/pkg/ethtypes"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// verifyProofCommand takes a root hash, a key, and one or more proof
// node hex strings, and reports the authenticated value - or that the
// proof authenticates the key's absence.
func verifyProofCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-proof <hex-root> <hex-key> <hex-proof-node>...",
		Short: "Verify a Merkle-Patricia proof against a trie root",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			rootBytes, err := decodeHexArg("root", args[0])
			if err != nil {
				logrus.WithError(err).Error("invalid proof input")
				return err
			}
			// A trie root is a fixed-width 32-byte hash, not a
			// canonical-minimal wire value, so it may legitimately
			// start with a zero byte; build it directly rather than
			// through U256FromBytes's canonical check.
			root := (*ethtypes.U256)(new(uint256.Int).SetBytes(rootBytes))
			key, err := decodeHexArg("key", args[1])
			if err != nil {
				logrus.WithError(err).Error("invalid proof input")
				return err
			}
			proof := make([][]byte, len(args)-2)
			for i, a := range args[2:] {
				b, err := decodeHexArg(fmt.Sprintf("proof[%d]", i), a)
				if err != nil {
					logrus.WithError(err).Error("invalid proof node")
					return err
				}
				proof[i] = b
			}

			value, err := ethereum.VerifyProof(root, key, proof)
			if err != nil {
				logrus.WithError(err).Error("proof verification failed")
				return err
			}
			if value == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "absent")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "0x%x\n", value)
			return nil
		},
	}
}
