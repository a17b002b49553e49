// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package query

import "math/big"

// GetTransfersRequest selects native value transfers.
type GetTransfersRequest struct {
	Chains    Chains `json:"chains"`
	FromBlock Bound  `json:"from_block"`
	ToBlock   Bound  `json:"to_block"`

	AddressIn List `json:"address__in,omitempty"`
	ToIn      List `json:"to__in,omitempty"`
	FromIn    List `json:"from__in,omitempty"`

	ValueLTE *big.Int `json:"value__lte,omitempty"`
	ValueGTE *big.Int `json:"value__gte,omitempty"`
}
