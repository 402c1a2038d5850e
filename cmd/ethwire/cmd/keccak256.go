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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func keccak256Command() *cobra.Command {
	return &cobra.Command{
		Use:   "keccak256 <hex-data>",
		Short: "Hash one or more hex byte strings with Keccak-256",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts := make([][]byte, len(args))
			for i, a := range args {
				b, err := decodeHexArg(fmt.Sprintf("data[%d]", i), a)
				if err != nil {
					logrus.WithError(err).Error("invalid hash input")
					return err
				}
				parts[i] = b
			}
			digest := ethereum.Keccak256(parts...).Bytes32()
			fmt.Fprintf(cmd.OutOrStdout(), "0x%x\n", digest)
			return nil
		},
	}
}
