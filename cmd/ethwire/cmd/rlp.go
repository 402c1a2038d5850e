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

	"github.com/kaleido-io/ethwire/pkg/ethereum"
	"github.com/kaleido-io/ethwire/pkg/rlp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rlpEncodeCommand wraps each positional hex argument as an RLP Raw
// item and encodes the resulting list. It does not attempt to
// reconstruct nested lists from the command line - that needs a
// richer input format than flat args can carry.
func rlpEncodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rlp-encode <hex-item>...",
		Short: "RLP-encode a flat list of hex byte strings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := make(rlp.List, len(args))
			for i, a := range args {
				b, err := decodeHexArg(fmt.Sprintf("item[%d]", i), a)
				if err != nil {
					logrus.WithError(err).Error("invalid encode input")
					return err
				}
				items[i] = rlp.Raw(b)
			}
			encoded := ethereum.RLPEncode(items)
			fmt.Fprintf(cmd.OutOrStdout(), "0x%x\n", encoded)
			return nil
		},
	}
}

func rlpDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rlp-decode <hex-encoded-list>",
		Short: "Decode an RLP-encoded list and print each top-level field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := decodeHexArg("encoded", args[0])
			if err != nil {
				logrus.WithError(err).Error("invalid decode input")
				return err
			}
			list, err := ethereum.RLPDecode(raw)
			if err != nil {
				logrus.WithError(err).Error("RLP decode failed")
				return err
			}
			out := cmd.OutOrStdout()
			for i, it := range list {
				if it.IsList() {
					fmt.Fprintf(out, "%d: list (%d children)\n", i, len(it.Children()))
					continue
				}
				b, err := it.Bytes()
				if err != nil {
					logrus.WithError(err).Error("RLP field decode failed")
					return err
				}
				fmt.Fprintf(out, "%d: 0x%x\n", i, b)
			}
			return nil
		},
	}
}
