// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package query

// GetLogsRequest selects EVM event logs, filtered by emitting address and up
// to four indexed topics.
type GetLogsRequest struct {
	Chains    Chains `json:"chains"`
	FromBlock Bound  `json:"from_block"`
	ToBlock   Bound  `json:"to_block"`

	AddressIn List `json:"address__in,omitempty"`

	Topic0In List `json:"topic0__in,omitempty"`
	Topic1In List `json:"topic1__in,omitempty"`
	Topic2In List `json:"topic2__in,omitempty"`
	Topic3In List `json:"topic3__in,omitempty"`
}
