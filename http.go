// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	cerr "superchain/client/internal/errors"
	"superchain/client/query"
)

// API paths under /v1/api/. BTC and Fuel reuse the generic paths; the chains
// parameter routes the query.
const (
	apiBase = "/v1/api/"

	pathStatus          = "status"
	pathBlocks          = "blocks"
	pathLogs            = "logs"
	pathTransactions    = "transactions"
	pathTransfers       = "transfers"
	pathReceipts        = "receipts"
	pathUnspentOutputs  = "transactions/outputs"
	pathSparkOrders     = "spark/orders"
	pathUniswapV2Pairs  = "uniswap/v2/pairs"
	pathUniswapV2Prices = "uniswap/v2/prices"
	pathUniswapV3Pools  = "uniswap/v3/pools"
	pathUniswapV3Prices = "uniswap/v3/prices"
	pathCurveTokens     = "curve/tokens"
	pathCurvePools      = "curve/pools"
	pathCurvePrices     = "curve/prices"
	pathErc20           = "erc20"
	pathErc20Approvals  = "erc20/approvals"
	pathErc20Transfers  = "erc20/transfers"
)

const httpTimeout = 60 * time.Second

// HTTPClient is the one-shot counterpart of the websocket client: each query
// is a single GET whose response body arrives whole, in the requested format.
type HTTPClient struct {
	inner    *http.Client
	base     *url.URL
	username string
	password string
}

func newHTTPClient(endpoint string, secure bool, username, password string) (*HTTPClient, error) {
	scheme := "https"
	if !secure {
		scheme = "http"
	}
	base, err := url.Parse(scheme + "://" + endpoint + apiBase)
	if err != nil {
		return nil, cerr.Wrap(cerr.RequestError, "invalid endpoint", err)
	}
	return &HTTPClient{
		inner:    &http.Client{Timeout: httpTimeout},
		base:     base,
		username: username,
		password: password,
	}, nil
}

// get performs one API request and returns the whole response body.
func (c *HTTPClient) get(ctx context.Context, path string, req any, format query.Format) ([]byte, error) {
	params, err := toParams(req)
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = query.DefaultFormat
	}

	u := *c.base
	u.Path = u.Path + path
	u.RawQuery = encodeValues(params, format)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, cerr.Wrap(cerr.RequestError, "build request", err)
	}
	if c.username != "" || c.password != "" {
		httpReq.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.inner.Do(httpReq)
	if err != nil {
		return nil, cerr.Wrap(cerr.ConnectionError, "http request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, cerr.Wrap(cerr.ConnectionError, "read response", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, cerr.New(cerr.RequestError,
			fmt.Sprintf("request failed with (%d): %s", resp.StatusCode, string(body)))
	}
	return body, nil
}

// encodeValues flattens the parameter map into a query string with stable
// key order.
func encodeValues(params map[string]any, format query.Format) string {
	keys := make([]string, 0, len(params)+1)
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := url.Values{}
	for _, k := range keys {
		values.Set(k, fmt.Sprint(params[k]))
	}
	values.Set("format", string(format))
	return values.Encode()
}

// GetStatus fetches and decodes the service status feed.
func (c *HTTPClient) GetStatus(ctx context.Context) ([]query.Status, error) {
	body, err := c.get(ctx, pathStatus, nil, query.FormatJSON)
	if err != nil {
		return nil, err
	}
	var statuses []query.Status
	if err := json.Unmarshal(body, &statuses); err != nil {
		return nil, cerr.Wrap(cerr.MalformedFrame, "decode status response", err)
	}
	return statuses, nil
}

// GetStatusByFormat fetches the raw status feed in the given format.
func (c *HTTPClient) GetStatusByFormat(ctx context.Context, format query.Format) ([]byte, error) {
	return c.get(ctx, pathStatus, nil, format)
}

// GetBlocks fetches block headers.
func (c *HTTPClient) GetBlocks(ctx context.Context, req query.GetBlocksRequest, format query.Format) ([]byte, error) {
	return c.get(ctx, pathBlocks, req, format)
}

// GetLogs fetches EVM event logs.
func (c *HTTPClient) GetLogs(ctx context.Context, req query.GetLogsRequest, format query.Format) ([]byte, error) {
	return c.get(ctx, pathLogs, req, format)
}

// GetTxs fetches EVM transactions.
func (c *HTTPClient) GetTxs(ctx context.Context, req query.GetTxsRequest, format query.Format) ([]byte, error) {
	return c.get(ctx, pathTransactions, req, format)
}

// GetTransfers fetches native value transfers.
func (c *HTTPClient) GetTransfers(ctx context.Context, req query.GetTransfersRequest, format query.Format) ([]byte, error) {
	return c.get(ctx, pathTransfers, req, format)
}

// GetBtcBlocks fetches Bitcoin block headers.
func (c *HTTPClient) GetBtcBlocks(ctx context.Context, req query.GetBtcBlocksRequest, format query.Format) ([]byte, error) {
	return c.get(ctx, pathBlocks, req, format)
}

// GetBtcTxs fetches Bitcoin transactions.
func (c *HTTPClient) GetBtcTxs(ctx context.Context, req query.GetBtcTxsRequest, format query.Format) ([]byte, error) {
	return c.get(ctx, pathTransactions, req, format)
}

// GetFuelBlocks fetches Fuel block headers.
func (c *HTTPClient) GetFuelBlocks(ctx context.Context, req query.GetFuelBlocksRequest, format query.Format) ([]byte, error) {
	return c.get(ctx, pathBlocks, req, format)
}

// GetFuelLogs fetches Fuel log receipts.
func (c *HTTPClient) GetFuelLogs(ctx context.Context, req query.GetFuelLogsRequest, format query.Format) ([]byte, error) {
	return c.get(ctx, pathLogs, req, format)
}

// GetFuelTxs fetches Fuel transactions.
func (c *HTTPClient) GetFuelTxs(ctx context.Context, req query.GetFuelTxsRequest, format query.Format) ([]byte, error) {
	return c.get(ctx, pathTransactions, req, format)
}

// GetFuelReceipts fetches Fuel receipts.
func (c *HTTPClient) GetFuelReceipts(ctx context.Context, req query.GetFuelReceiptsRequest, format query.Format) ([]byte, error) {
	return c.get(ctx, pathReceipts, req, format)
}

// GetFuelUnspentUtxos fetches unspent transaction outputs.
func (c *HTTPClient) GetFuelUnspentUtxos(ctx context.Context, req query.GetUtxoRequest, format query.Format) ([]byte, error) {
	return c.get(ctx, pathUnspentOutputs, req, format)
}

// GetFuelSparkOrders fetches Spark orderbook changes.
func (c *HTTPClient) GetFuelSparkOrders(ctx context.Context, req query.GetSparkOrderRequest, format query.Format) ([]byte, error) {
	return c.get(ctx, pathSparkOrders, req, format)
}

// GetUniswapV2Pairs fetches Uniswap v2 pair creations.
func (c *HTTPClient) GetUniswapV2Pairs(ctx context.Context, req query.GetPairsRequest, format query.Format) ([]byte, error) {
	return c.get(ctx, pathUniswapV2Pairs, req, format)
}

// GetUniswapV2Prices fetches Uniswap v2 price updates.
func (c *HTTPClient) GetUniswapV2Prices(ctx context.Context, req query.GetUniswapV2PricesRequest, format query.Format) ([]byte, error) {
	return c.get(ctx, pathUniswapV2Prices, req, format)
}

// GetUniswapV3Pools fetches Uniswap v3 pool creations.
func (c *HTTPClient) GetUniswapV3Pools(ctx context.Context, req query.GetPoolsRequest, format query.Format) ([]byte, error) {
	return c.get(ctx, pathUniswapV3Pools, req, format)
}

// GetUniswapV3Prices fetches Uniswap v3 swap prices.
func (c *HTTPClient) GetUniswapV3Prices(ctx context.Context, req query.GetUniswapV3PricesRequest, format query.Format) ([]byte, error) {
	return c.get(ctx, pathUniswapV3Prices, req, format)
}

// GetCurveTokens fetches Curve pool token metadata.
func (c *HTTPClient) GetCurveTokens(ctx context.Context, req query.GetCrvTokenRequest, format query.Format) ([]byte, error) {
	return c.get(ctx, pathCurveTokens, req, format)
}

// GetCurvePools fetches Curve pool registrations.
func (c *HTTPClient) GetCurvePools(ctx context.Context, req query.GetCrvPoolRequest, format query.Format) ([]byte, error) {
	return c.get(ctx, pathCurvePools, req, format)
}

// GetCurvePrices fetches Curve token exchange prices.
func (c *HTTPClient) GetCurvePrices(ctx context.Context, req query.GetCrvPriceRequest, format query.Format) ([]byte, error) {
	return c.get(ctx, pathCurvePrices, req, format)
}

// GetErc20 fetches ERC-20 token metadata.
func (c *HTTPClient) GetErc20(ctx context.Context, req query.GetErc20Request, format query.Format) ([]byte, error) {
	return c.get(ctx, pathErc20, req, format)
}

// GetErc20Approvals fetches ERC-20 approval events.
func (c *HTTPClient) GetErc20Approvals(ctx context.Context, req query.GetErc20ApprovalsRequest, format query.Format) ([]byte, error) {
	return c.get(ctx, pathErc20Approvals, req, format)
}

// GetErc20Transfers fetches ERC-20 transfer events.
func (c *HTTPClient) GetErc20Transfers(ctx context.Context, req query.GetErc20TransfersRequest, format query.Format) ([]byte, error) {
	return c.get(ctx, pathErc20Transfers, req, format)
}
