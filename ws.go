// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package client

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"superchain/client/internal/session"
	"superchain/client/query"
)

// Operation names on the wire. BTC and Fuel reuse the generic names; the
// chains parameter routes the query to the right service.
const (
	opGetStatus          = "getStatus"
	opGetBlocks          = "getBlocks"
	opGetLogs            = "getLogs"
	opGetTxs             = "getTxs"
	opGetTransfers       = "getTransfers"
	opGetReceipts        = "getReceipts"
	opGetUnspentUtxos    = "getUnspentUtxos"
	opGetSparkOrder      = "getSparkOrder"
	opGetUniswapV2Pairs  = "getUniswapV2Pairs"
	opGetUniswapV2Prices = "getUniswapV2Prices"
	opGetUniswapV3Pools  = "getUniswapV3Pools"
	opGetUniswapV3Prices = "getUniswapV3Prices"
	opGetCurveTokens     = "getCurveTokens"
	opGetCurvePools      = "getCurvePools"
	opGetCurvePrices     = "getCurvePrices"
	opGetErc20           = "getErc20"
	opGetErc20Approvals  = "getErc20Approvals"
	opGetErc20Transfers  = "getErc20Transfers"
)

// StreamOptions tune one query. The zero value asks for JSON Lines without
// deltas from the start of the range.
type StreamOptions struct {
	// Format selects the body encoding; defaults to json_stream.
	Format query.Format
	// Deltas asks for delta records instead of full ones, where supported.
	Deltas bool
	// Cursor resumes from a previously observed position.
	Cursor string
}

// Client is the websocket client: one multiplexed connection carrying any
// number of concurrent query streams, with automatic reconnect and replay.
type Client struct {
	sess *session.Session
	log  zerolog.Logger
}

// Ready reports whether the underlying connection is currently open.
func (c *Client) Ready() bool { return c.sess.Ready() }

// Subscriptions returns the number of registered query subscriptions.
func (c *Client) Subscriptions() int { return c.sess.Subscriptions() }

// Close tears the connection down and fails every live stream.
func (c *Client) Close() error { return c.sess.Close() }

// Query issues a named operation with an arbitrary parameter set. The typed
// wrappers below cover the full catalog; Query is the escape hatch for
// operations this client version does not know about.
func (c *Client) Query(ctx context.Context, operation string, params map[string]any, opts StreamOptions) (*Stream, error) {
	if opts.Format == "" {
		opts.Format = query.DefaultFormat
	}
	st, err := c.sess.IssueQuery(ctx, operation, params, session.QueryOptions{
		Format: string(opts.Format),
		Deltas: opts.Deltas,
		Cursor: opts.Cursor,
	})
	if err != nil {
		return nil, err
	}
	return &Stream{inner: st}, nil
}

// stream flattens a typed request into wire parameters and issues it.
func (c *Client) stream(ctx context.Context, operation string, req any, opts StreamOptions) (*Stream, error) {
	params, err := toParams(req)
	if err != nil {
		return nil, err
	}
	return c.Query(ctx, operation, params, opts)
}

// toParams converts a typed request struct to the flat parameter map the
// wire request carries. Numbers stay json.Number so large block heights and
// token amounts survive the round trip undistorted.
func toParams(req any) (map[string]any, error) {
	if req == nil {
		return nil, nil
	}
	data, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var params map[string]any
	if err := dec.Decode(&params); err != nil {
		return nil, err
	}
	return params, nil
}

// GetStatus fetches the per-chain service status feed and decodes it.
func (c *Client) GetStatus(ctx context.Context) ([]query.Status, error) {
	st, err := c.Query(ctx, opGetStatus, nil, StreamOptions{Format: query.FormatJSONStream})
	if err != nil {
		return nil, err
	}
	defer st.Close()
	return collectStatusLines(ctx, st)
}

// GetStatusByFormat streams the raw status feed in the given format.
func (c *Client) GetStatusByFormat(ctx context.Context, format query.Format) (*Stream, error) {
	return c.Query(ctx, opGetStatus, nil, StreamOptions{Format: format})
}

// GetBlocks streams block headers.
func (c *Client) GetBlocks(ctx context.Context, req query.GetBlocksRequest, opts StreamOptions) (*Stream, error) {
	return c.stream(ctx, opGetBlocks, req, opts)
}

// GetLogs streams EVM event logs.
func (c *Client) GetLogs(ctx context.Context, req query.GetLogsRequest, opts StreamOptions) (*Stream, error) {
	return c.stream(ctx, opGetLogs, req, opts)
}

// GetTxs streams EVM transactions.
func (c *Client) GetTxs(ctx context.Context, req query.GetTxsRequest, opts StreamOptions) (*Stream, error) {
	return c.stream(ctx, opGetTxs, req, opts)
}

// GetTransfers streams native value transfers.
func (c *Client) GetTransfers(ctx context.Context, req query.GetTransfersRequest, opts StreamOptions) (*Stream, error) {
	return c.stream(ctx, opGetTransfers, req, opts)
}

// GetBtcBlocks streams Bitcoin block headers.
func (c *Client) GetBtcBlocks(ctx context.Context, req query.GetBtcBlocksRequest, opts StreamOptions) (*Stream, error) {
	return c.stream(ctx, opGetBlocks, req, opts)
}

// GetBtcTxs streams Bitcoin transactions.
func (c *Client) GetBtcTxs(ctx context.Context, req query.GetBtcTxsRequest, opts StreamOptions) (*Stream, error) {
	return c.stream(ctx, opGetTxs, req, opts)
}

// GetFuelBlocks streams Fuel block headers.
func (c *Client) GetFuelBlocks(ctx context.Context, req query.GetFuelBlocksRequest, opts StreamOptions) (*Stream, error) {
	return c.stream(ctx, opGetBlocks, req, opts)
}

// GetFuelLogs streams Fuel log receipts.
func (c *Client) GetFuelLogs(ctx context.Context, req query.GetFuelLogsRequest, opts StreamOptions) (*Stream, error) {
	return c.stream(ctx, opGetLogs, req, opts)
}

// GetFuelTxs streams Fuel transactions.
func (c *Client) GetFuelTxs(ctx context.Context, req query.GetFuelTxsRequest, opts StreamOptions) (*Stream, error) {
	return c.stream(ctx, opGetTxs, req, opts)
}

// GetFuelReceipts streams Fuel receipts.
func (c *Client) GetFuelReceipts(ctx context.Context, req query.GetFuelReceiptsRequest, opts StreamOptions) (*Stream, error) {
	return c.stream(ctx, opGetReceipts, req, opts)
}

// GetFuelUnspentUtxos streams unspent transaction outputs.
func (c *Client) GetFuelUnspentUtxos(ctx context.Context, req query.GetUtxoRequest, opts StreamOptions) (*Stream, error) {
	return c.stream(ctx, opGetUnspentUtxos, req, opts)
}

// GetFuelSparkOrders streams Spark orderbook changes.
func (c *Client) GetFuelSparkOrders(ctx context.Context, req query.GetSparkOrderRequest, opts StreamOptions) (*Stream, error) {
	return c.stream(ctx, opGetSparkOrder, req, opts)
}

// GetUniswapV2Pairs streams Uniswap v2 pair creations.
func (c *Client) GetUniswapV2Pairs(ctx context.Context, req query.GetPairsRequest, opts StreamOptions) (*Stream, error) {
	return c.stream(ctx, opGetUniswapV2Pairs, req, opts)
}

// GetUniswapV2Prices streams Uniswap v2 price and reserve updates.
func (c *Client) GetUniswapV2Prices(ctx context.Context, req query.GetUniswapV2PricesRequest, opts StreamOptions) (*Stream, error) {
	return c.stream(ctx, opGetUniswapV2Prices, req, opts)
}

// GetUniswapV3Pools streams Uniswap v3 pool creations.
func (c *Client) GetUniswapV3Pools(ctx context.Context, req query.GetPoolsRequest, opts StreamOptions) (*Stream, error) {
	return c.stream(ctx, opGetUniswapV3Pools, req, opts)
}

// GetUniswapV3Prices streams Uniswap v3 swap prices.
func (c *Client) GetUniswapV3Prices(ctx context.Context, req query.GetUniswapV3PricesRequest, opts StreamOptions) (*Stream, error) {
	return c.stream(ctx, opGetUniswapV3Prices, req, opts)
}

// GetCurveTokens streams Curve pool token metadata.
func (c *Client) GetCurveTokens(ctx context.Context, req query.GetCrvTokenRequest, opts StreamOptions) (*Stream, error) {
	return c.stream(ctx, opGetCurveTokens, req, opts)
}

// GetCurvePools streams Curve pool registrations.
func (c *Client) GetCurvePools(ctx context.Context, req query.GetCrvPoolRequest, opts StreamOptions) (*Stream, error) {
	return c.stream(ctx, opGetCurvePools, req, opts)
}

// GetCurvePrices streams Curve token exchange prices.
func (c *Client) GetCurvePrices(ctx context.Context, req query.GetCrvPriceRequest, opts StreamOptions) (*Stream, error) {
	return c.stream(ctx, opGetCurvePrices, req, opts)
}

// GetErc20 streams ERC-20 token metadata.
func (c *Client) GetErc20(ctx context.Context, req query.GetErc20Request, opts StreamOptions) (*Stream, error) {
	return c.stream(ctx, opGetErc20, req, opts)
}

// GetErc20Approvals streams ERC-20 approval events.
func (c *Client) GetErc20Approvals(ctx context.Context, req query.GetErc20ApprovalsRequest, opts StreamOptions) (*Stream, error) {
	return c.stream(ctx, opGetErc20Approvals, req, opts)
}

// GetErc20Transfers streams ERC-20 transfer events.
func (c *Client) GetErc20Transfers(ctx context.Context, req query.GetErc20TransfersRequest, opts StreamOptions) (*Stream, error) {
	return c.stream(ctx, opGetErc20Transfers, req, opts)
}
