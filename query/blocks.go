// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package query

// GetBlocksRequest selects block headers. Block bounds are inclusive below
// and exclusive above; timestamp bounds likewise.
type GetBlocksRequest struct {
	Chains    Chains `json:"chains"`
	FromBlock Bound  `json:"from_block"`
	ToBlock   Bound  `json:"to_block"`

	FromTimestamp *int64 `json:"from_timestamp,omitempty"`
	ToTimestamp   *int64 `json:"to_timestamp,omitempty"`
}
