// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package query

// GetPoolsRequest selects Uniswap v3 pool creations.
type GetPoolsRequest struct {
	Chains    Chains `json:"chains"`
	FromBlock Bound  `json:"from_block"`
	ToBlock   Bound  `json:"to_block"`

	PoolAddressIn    List `json:"pool_address__in,omitempty"`
	FactoryAddressIn List `json:"factory_address__in,omitempty"`
	Token0In         List `json:"token0__in,omitempty"`
	Token1In         List `json:"token1__in,omitempty"`
	TokensIn         List `json:"tokens__in,omitempty"`

	FeeGTE *int32 `json:"fee__gte,omitempty"`
	FeeLTE *int32 `json:"fee__lte,omitempty"`

	TickGTE *int32 `json:"tick__gte,omitempty"`
	TickLTE *int32 `json:"tick__lte,omitempty"`

	PriceGTE *float64 `json:"price__gte,omitempty"`
	PriceLTE *float64 `json:"price__lte,omitempty"`

	TickSpacingGTE *int32 `json:"tick_spacing__gte,omitempty"`
	TickSpacingLTE *int32 `json:"tick_spacing__lte,omitempty"`
}

// GetUniswapV3PricesRequest selects Uniswap v3 swap prices and liquidity.
type GetUniswapV3PricesRequest struct {
	Chains    Chains `json:"chains"`
	FromBlock Bound  `json:"from_block"`
	ToBlock   Bound  `json:"to_block"`

	PoolAddressIn        List `json:"pool_address__in,omitempty"`
	PoolFactoryAddressIn List `json:"pool_factory_address__in,omitempty"`

	Virtual0GTE *float64 `json:"virtual0__gte,omitempty"`
	Virtual0LTE *float64 `json:"virtual0__lte,omitempty"`
	Virtual1GTE *float64 `json:"virtual1__gte,omitempty"`
	Virtual1LTE *float64 `json:"virtual1__lte,omitempty"`

	PriceGTE *float64 `json:"price__gte,omitempty"`
	PriceLTE *float64 `json:"price__lte,omitempty"`

	SenderIn   List `json:"sender__in,omitempty"`
	ReceiverIn List `json:"receiver__in,omitempty"`

	Amount0GTE *float64 `json:"amount0__gte,omitempty"`
	Amount0LTE *float64 `json:"amount0__lte,omitempty"`
	Amount1GTE *float64 `json:"amount1__gte,omitempty"`
	Amount1LTE *float64 `json:"amount1__lte,omitempty"`

	LiquidityGTE *float64 `json:"liquidity__gte,omitempty"`
	LiquidityLTE *float64 `json:"liquidity__lte,omitempty"`

	TickGTE *int32 `json:"tick__gte,omitempty"`
	TickLTE *int32 `json:"tick__lte,omitempty"`

	Token0AddressIn List `json:"token0_address__in,omitempty"`
	Token0SymbolIn  List `json:"token0_symbol__in,omitempty"`
	Token1AddressIn List `json:"token1_address__in,omitempty"`
	Token1SymbolIn  List `json:"token1_symbol__in,omitempty"`
	TokensAddressIn List `json:"tokens_address__in,omitempty"`
	TokensSymbolIn  List `json:"tokens_symbol__in,omitempty"`
}
