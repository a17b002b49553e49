// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package query

// ServiceType classifies a status entry.
type ServiceType string

const (
	ServiceTypeUnknown ServiceType = "N/A"
	ServiceTypeChain   ServiceType = "CHAIN"
	ServiceTypeToolbox ServiceType = "TOOLBOX"
)

// HealthStatus is the reported health of a service.
type HealthStatus string

const HealthOK HealthStatus = "OK"

// Status is one entry of the service status feed: the ingestion state of a
// single chain service.
type Status struct {
	Type              ServiceType  `json:"type"`
	Chain             ChainID      `json:"chain"`
	ChainCode         string       `json:"chain_code"`
	ChainName         string       `json:"chain_name"`
	Service           string       `json:"service"`
	Entity            string       `json:"entity"`
	LatestBlockHeight uint64       `json:"latest_block_height"`
	Timestamp         uint64       `json:"timestamp"`
	Status            HealthStatus `json:"status"`
}
