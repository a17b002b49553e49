// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package query

import "math/big"

// GetTxsRequest selects EVM transactions with optional value and gas filters.
type GetTxsRequest struct {
	Chains    Chains `json:"chains"`
	FromBlock Bound  `json:"from_block"`
	ToBlock   Bound  `json:"to_block"`

	FromIn List `json:"from__in,omitempty"`
	ToIn   List `json:"to__in,omitempty"`

	ValueGTE *big.Int `json:"value__gte,omitempty"`
	ValueLTE *big.Int `json:"value__lte,omitempty"`

	GasPriceGTE *big.Int `json:"gas_price__gte,omitempty"`
	GasPriceLTE *big.Int `json:"gas_price__lte,omitempty"`

	GasGTE *big.Int `json:"gas__gte,omitempty"`
	GasLTE *big.Int `json:"gas__lte,omitempty"`

	MaxFeePerGasGTE *big.Int `json:"max_fee_per_gas__gte,omitempty"`
	MaxFeePerGasLTE *big.Int `json:"max_fee_per_gas__lte,omitempty"`

	MaxPriorityFeePerGasGTE *big.Int `json:"max_priority_fee_per_gas__gte,omitempty"`
	MaxPriorityFeePerGasLTE *big.Int `json:"max_priority_fee_per_gas__lte,omitempty"`
}
