// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package query

import "math/big"

// GetCrvTokenRequest selects Curve pool token metadata.
type GetCrvTokenRequest struct {
	Chains    Chains `json:"chains"`
	FromBlock Bound  `json:"from_block"`
	ToBlock   Bound  `json:"to_block"`

	AddressIn     List `json:"address__in,omitempty"`
	SymbolIn      List `json:"symbol__in,omitempty"`
	NameIn        List `json:"name__in,omitempty"`
	PoolAddressIn List `json:"pool_address__in,omitempty"`

	DecimalsGTE *uint8 `json:"decimals__gte,omitempty"`
	DecimalsLTE *uint8 `json:"decimals__lte,omitempty"`
}

// GetCrvPoolRequest selects Curve pool registrations and parameter updates.
type GetCrvPoolRequest struct {
	Chains    Chains `json:"chains"`
	FromBlock Bound  `json:"from_block"`
	ToBlock   Bound  `json:"to_block"`

	PoolAddressIn List `json:"pool_address__in,omitempty"`
	TokenIn       List `json:"token__in,omitempty"`
	OwnerIn       List `json:"owner__in,omitempty"`
	BasePoolIn    List `json:"base_pool__in,omitempty"`
	CoinsIn       List `json:"coins__in,omitempty"`
	BaseCoinsIn   List `json:"base_coins__in,omitempty"`

	FeeGTE *big.Int `json:"fee__gte,omitempty"`
	FeeLTE *big.Int `json:"fee__lte,omitempty"`

	AdminFeeGTE *big.Int `json:"admin_fee__gte,omitempty"`
	AdminFeeLTE *big.Int `json:"admin_fee__lte,omitempty"`

	InitialAGTE *big.Int `json:"initial_a__gte,omitempty"`
	InitialALTE *big.Int `json:"initial_a__lte,omitempty"`

	FutureAGTE *big.Int `json:"future_a__gte,omitempty"`
	FutureALTE *big.Int `json:"future_a__lte,omitempty"`

	InitialATimeGTE *big.Int `json:"initial_a_time__gte,omitempty"`
	InitialATimeLTE *big.Int `json:"initial_a_time__lte,omitempty"`

	FutureATimeGTE *big.Int `json:"future_a_time__gte,omitempty"`
	FutureATimeLTE *big.Int `json:"future_a_time__lte,omitempty"`

	NCoinsGTE *uint8 `json:"n_coins__gte,omitempty"`
	NCoinsLTE *uint8 `json:"n_coins__lte,omitempty"`
}

// GetCrvPriceRequest selects Curve token exchange prices.
type GetCrvPriceRequest struct {
	Chains    Chains `json:"chains"`
	FromBlock Bound  `json:"from_block"`
	ToBlock   Bound  `json:"to_block"`

	PoolAddressIn   List `json:"pool_address__in,omitempty"`
	BuyerIn         List `json:"buyer__in,omitempty"`
	TokensAddressIn List `json:"tokens_address__in,omitempty"`
	TokensSymbolIn  List `json:"tokens_symbol__in,omitempty"`

	SoldAddressIn List `json:"sold_address__in,omitempty"`
	SoldSymbolIn  List `json:"sold_symbol__in,omitempty"`

	SoldDecimalsGTE *uint8 `json:"sold_decimals__gte,omitempty"`
	SoldDecimalsLTE *uint8 `json:"sold_decimals__lte,omitempty"`

	BoughtAddressIn List `json:"bought_address__in,omitempty"`
	BoughtSymbolIn  List `json:"bought_symbol__in,omitempty"`

	BoughtDecimalsGTE *uint8 `json:"bought_decimals__gte,omitempty"`
	BoughtDecimalsLTE *uint8 `json:"bought_decimals__lte,omitempty"`

	PriceGTE *float64 `json:"price__gte,omitempty"`
	PriceLTE *float64 `json:"price__lte,omitempty"`

	TokensSoldGTE *float64 `json:"tokens_sold__gte,omitempty"`
	TokensSoldLTE *float64 `json:"tokens_sold__lte,omitempty"`

	TokensBoughtGTE *float64 `json:"tokens_bought__gte,omitempty"`
	TokensBoughtLTE *float64 `json:"tokens_bought__lte,omitempty"`
}
