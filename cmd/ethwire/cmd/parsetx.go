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
	"github.com/kaleido-io/ethwire/pkg/ethsigner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func parseTxCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse-tx <hex-raw-transaction>",
		Short: "Decode a raw transaction envelope and recover its sender",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := decodeHexArg("raw", args[0])
			if err != nil {
				logrus.WithError(err).Error("invalid transaction input")
				return err
			}
			tx, err := ethereum.ParseTransaction(raw)
			if err != nil {
				logrus.WithError(err).Error("transaction parse failed")
				return err
			}
			printTransaction(cmd, tx)

			sig, err := tx.Recover()
			if err != nil {
				logrus.WithError(err).Error("sender recovery failed")
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "from:  %s\n", sig.From.String())
			fmt.Fprintf(cmd.OutOrStdout(), "hash:  0x%x\n", sig.Hash)
			return nil
		},
	}
}

func printTransaction(cmd *cobra.Command, tx *ethsigner.Transaction) {
	out := cmd.OutOrStdout()
	switch {
	case tx.EIP1559 != nil:
		t := tx.EIP1559
		fmt.Fprintf(out, "type:       eip1559\n")
		fmt.Fprintf(out, "chainId:    %d\n", t.ChainID)
		fmt.Fprintf(out, "nonce:      %s\n", t.Nonce.String())
		fmt.Fprintf(out, "gasLimit:   %s\n", t.GasLimit.String())
		fmt.Fprintf(out, "maxFee:     %s\n", t.MaxFeePerGas.String())
		fmt.Fprintf(out, "maxPrioFee: %s\n", t.MaxPriorityFeePerGas.String())
		fmt.Fprintf(out, "value:      %s\n", t.Value.String())
		if t.To != nil {
			fmt.Fprintf(out, "to:         %s\n", t.To.String())
		}
	case tx.EIP2930 != nil:
		t := tx.EIP2930
		fmt.Fprintf(out, "type:     eip2930\n")
		fmt.Fprintf(out, "chainId:  %d\n", t.ChainID)
		fmt.Fprintf(out, "nonce:    %s\n", t.Nonce.String())
		fmt.Fprintf(out, "gasLimit: %s\n", t.GasLimit.String())
		fmt.Fprintf(out, "gasPrice: %s\n", t.GasPrice.String())
		fmt.Fprintf(out, "value:    %s\n", t.Value.String())
		if t.To != nil {
			fmt.Fprintf(out, "to:       %s\n", t.To.String())
		}
	default:
		t := tx.Legacy
		fmt.Fprintf(out, "type:     legacy\n")
		fmt.Fprintf(out, "chainId:  %d\n", t.ChainID)
		fmt.Fprintf(out, "nonce:    %s\n", t.Nonce.String())
		fmt.Fprintf(out, "gasLimit: %s\n", t.GasLimit.String())
		fmt.Fprintf(out, "gasPrice: %s\n", t.GasPrice.String())
		fmt.Fprintf(out, "value:    %s\n", t.Value.String())
		if t.To != nil {
			fmt.Fprintf(out, "to:       %s\n", t.To.String())
		}
	}
}
