// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package query

import "math/big"

// ReserveEvent is the Uniswap v2 pool event type.
type ReserveEvent string

const (
	ReserveMint ReserveEvent = "mint"
	ReserveBurn ReserveEvent = "burn"
	ReserveSwap ReserveEvent = "swap"
	ReserveSync ReserveEvent = "sync"
)

// GetPairsRequest selects Uniswap v2 pair creations.
type GetPairsRequest struct {
	Chains    Chains `json:"chains"`
	FromBlock Bound  `json:"from_block"`
	ToBlock   Bound  `json:"to_block"`

	PairAddressIn    List `json:"pair_address__in,omitempty"`
	FactoryAddressIn List `json:"factory_address__in,omitempty"`
	Token0In         List `json:"token0__in,omitempty"`
	Token1In         List `json:"token1__in,omitempty"`
	TokensIn         List `json:"tokens__in,omitempty"`
}

// GetUniswapV2PricesRequest selects Uniswap v2 price and reserve updates.
type GetUniswapV2PricesRequest struct {
	Chains    Chains `json:"chains"`
	FromBlock Bound  `json:"from_block"`
	ToBlock   Bound  `json:"to_block"`

	PairAddressIn        List `json:"pair_address__in,omitempty"`
	PairFactoryAddressIn List `json:"pair_factory_address__in,omitempty"`
	EventIn              List `json:"event__in,omitempty"`

	Reserve0GTE *big.Int `json:"reserve0__gte,omitempty"`
	Reserve0LTE *big.Int `json:"reserve0__lte,omitempty"`
	Reserve1GTE *big.Int `json:"reserve1__gte,omitempty"`
	Reserve1LTE *big.Int `json:"reserve1__lte,omitempty"`

	PriceGTE *float64 `json:"price__gte,omitempty"`
	PriceLTE *float64 `json:"price__lte,omitempty"`

	SenderIn   List `json:"sender__in,omitempty"`
	ReceiverIn List `json:"receiver__in,omitempty"`

	Amount0GTE *float64 `json:"amount0__gte,omitempty"`
	Amount0LTE *float64 `json:"amount0__lte,omitempty"`
	Amount1GTE *float64 `json:"amount1__gte,omitempty"`
	Amount1LTE *float64 `json:"amount1__lte,omitempty"`

	LpAmountGTE *float64 `json:"lp_amount__gte,omitempty"`
	LpAmountLTE *float64 `json:"lp_amount__lte,omitempty"`

	ProtocolFeeGTE *float64 `json:"protocol_fee__gte,omitempty"`
	ProtocolFeeLTE *float64 `json:"protocol_fee__lte,omitempty"`

	Token0AddressIn List `json:"token0_address__in,omitempty"`
	Token0SymbolIn  List `json:"token0_symbol__in,omitempty"`
	Token1AddressIn List `json:"token1_address__in,omitempty"`
	Token1SymbolIn  List `json:"token1_symbol__in,omitempty"`
	TokensAddressIn List `json:"tokens_address__in,omitempty"`
	TokensSymbolIn  List `json:"tokens_symbol__in,omitempty"`
}
