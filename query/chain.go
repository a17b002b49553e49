// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package query

import (
	"fmt"
	"strconv"
	"strings"
)

// ChainID identifies a chain by its code, the form the wire protocol uses.
type ChainID string

const (
	ChainETH    ChainID = "ETH"
	ChainOPT    ChainID = "OPT"
	ChainBNB    ChainID = "BNB"
	ChainFUEL   ChainID = "FUEL"
	ChainMATIC  ChainID = "MATIC"
	ChainBTC    ChainID = "BTC"
	ChainMEVM   ChainID = "MEVM"
	ChainARB    ChainID = "ARB"
	ChainAVAX   ChainID = "AVAX"
	ChainSEPETH ChainID = "SEPETH"
)

var chainNumbers = map[ChainID]int64{
	ChainETH:    1,
	ChainOPT:    10,
	ChainBNB:    56,
	ChainFUEL:   122,
	ChainMATIC:  137,
	ChainBTC:    198,
	ChainMEVM:   336,
	ChainARB:    42161,
	ChainAVAX:   43114,
	ChainSEPETH: 1115511,
}

var chainNames = map[ChainID]string{
	ChainETH:    "Ethereum",
	ChainOPT:    "Optimism",
	ChainBNB:    "Binance Smart Chain",
	ChainFUEL:   "Fuel",
	ChainMATIC:  "Polygon",
	ChainBTC:    "Bitcoin",
	ChainMEVM:   "MEVM",
	ChainARB:    "Arbitrum",
	ChainAVAX:   "Avalanche",
	ChainSEPETH: "Sepolia",
}

// Number returns the numeric chain id, 0 when unknown.
func (c ChainID) Number() int64 { return chainNumbers[c] }

// Name returns the human-readable chain name.
func (c ChainID) Name() string {
	if n, ok := chainNames[c]; ok {
		return n
	}
	return string(c)
}

// ParseChainID resolves a chain code or numeric id.
func ParseChainID(s string) (ChainID, error) {
	code := ChainID(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := chainNumbers[code]; ok {
		return code, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		for c, num := range chainNumbers {
			if num == n {
				return c, nil
			}
		}
	}
	return "", fmt.Errorf("unknown chain %q", s)
}

// Chains selects the chains a request applies to. The zero value means ETH.
type Chains []ChainID

// DefaultChains is the selection used when a request names none.
func DefaultChains() Chains { return Chains{ChainETH} }

// MarshalJSON joins the codes comma-separated, defaulting to ETH when empty.
func (c Chains) MarshalJSON() ([]byte, error) {
	if len(c) == 0 {
		c = DefaultChains()
	}
	codes := make([]string, len(c))
	for i, id := range c {
		codes[i] = string(id)
	}
	return []byte(strconv.Quote(strings.Join(codes, ","))), nil
}

func (c *Chains) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	if s == "" {
		*c = nil
		return nil
	}
	parts := strings.Split(s, ",")
	out := make(Chains, 0, len(parts))
	for _, p := range parts {
		id, err := ParseChainID(p)
		if err != nil {
			return err
		}
		out = append(out, id)
	}
	*c = out
	return nil
}
