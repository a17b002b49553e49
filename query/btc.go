// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package query

// GetBtcBlocksRequest selects Bitcoin block headers.
type GetBtcBlocksRequest struct {
	Chains    Chains `json:"chains"`
	FromBlock Bound  `json:"from_block"`
	ToBlock   Bound  `json:"to_block"`
}

// GetBtcTxsRequest selects Bitcoin transactions.
type GetBtcTxsRequest struct {
	Chains    Chains `json:"chains"`
	FromBlock Bound  `json:"from_block"`
	ToBlock   Bound  `json:"to_block"`
}
