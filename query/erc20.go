// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package query

// GetErc20Request selects ERC-20 token metadata.
type GetErc20Request struct {
	Chains    Chains `json:"chains"`
	FromBlock Bound  `json:"from_block"`
	ToBlock   Bound  `json:"to_block"`

	AddressIn List `json:"address__in,omitempty"`
	SymbolIn  List `json:"symbol__in,omitempty"`
	NameIn    List `json:"name__in,omitempty"`

	DecimalsGTE *uint8 `json:"decimals__gte,omitempty"`
	DecimalsLTE *uint8 `json:"decimals__lte,omitempty"`
}

// GetErc20ApprovalsRequest selects ERC-20 approval events.
type GetErc20ApprovalsRequest struct {
	Chains    Chains `json:"chains"`
	FromBlock Bound  `json:"from_block"`
	ToBlock   Bound  `json:"to_block"`

	AddressIn List `json:"address__in,omitempty"`
	SymbolIn  List `json:"symbol__in,omitempty"`
	NameIn    List `json:"name__in,omitempty"`

	DecimalsGTE *uint8 `json:"decimals__gte,omitempty"`
	DecimalsLTE *uint8 `json:"decimals__lte,omitempty"`

	OwnerIn   List `json:"owner__in,omitempty"`
	SpenderIn List `json:"spender__in,omitempty"`

	ValueLTE *float64 `json:"value__lte,omitempty"`
	ValueGTE *float64 `json:"value__gte,omitempty"`
}

// GetErc20TransfersRequest selects ERC-20 transfer events.
type GetErc20TransfersRequest struct {
	Chains    Chains `json:"chains"`
	FromBlock Bound  `json:"from_block"`
	ToBlock   Bound  `json:"to_block"`

	AddressIn List `json:"address__in,omitempty"`
	SymbolIn  List `json:"symbol__in,omitempty"`
	NameIn    List `json:"name__in,omitempty"`

	DecimalsGTE *uint8 `json:"decimals__gte,omitempty"`
	DecimalsLTE *uint8 `json:"decimals__lte,omitempty"`

	FromIn List `json:"from__in,omitempty"`
	ToIn   List `json:"to__in,omitempty"`

	ValueLTE *float64 `json:"value__lte,omitempty"`
	ValueGTE *float64 `json:"value__gte,omitempty"`
}
