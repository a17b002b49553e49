// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"superchain/client"
	"superchain/client/internal/logging"
	"superchain/client/internal/neterrors"
	"superchain/client/query"
)

var (
	streamChains    string
	streamFromBlock string
	streamToBlock   string
	streamFormat    string
	streamDeltas    bool
	streamCursor    string
	streamParams    []string
	streamOutput    string
)

// streamOperations lists the named queries the service understands, for help
// text and completion. The server is authoritative; unknown names pass
// through and fail there.
var streamOperations = []string{
	"getStatus", "getBlocks", "getLogs", "getTxs", "getTransfers",
	"getReceipts", "getUnspentUtxos", "getSparkOrder",
	"getUniswapV2Pairs", "getUniswapV2Prices",
	"getUniswapV3Pools", "getUniswapV3Prices",
	"getCurveTokens", "getCurvePools", "getCurvePrices",
	"getErc20", "getErc20Approvals", "getErc20Transfers",
}

// streamCmd issues one named query over the websocket and writes the
// response bodies to stdout (or a file) until the stream ends.
var streamCmd = &cobra.Command{
	Use:   "stream <operation>",
	Short: "Run a streaming query and print the results",
	Long: `The stream command issues a named query over the multiplexed websocket
connection and writes response bodies to stdout until the stream ends or is
interrupted. Connection loss is recovered automatically; the stream resumes
from the last acknowledged cursor.

Block bounds accept a number, "latest", "none", or "latest - N".

Examples:
  superchain stream getBlocks --chains ETH --from-block 19000000 --to-block latest
  superchain stream getLogs --chains ETH,MATIC --param address__in=0xdac17f958d2ee523a2206206994597c13d831ec7
  superchain stream getUniswapV3Prices --deltas --format json_stream`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: streamOperations,

	RunE: func(cmd *cobra.Command, args []string) error {
		operation := args[0]

		params, err := buildStreamParams()
		if err != nil {
			return err
		}

		format := query.Format(streamFormat)
		if !format.Valid() {
			return fmt.Errorf("unknown format %q", streamFormat)
		}

		out := io.Writer(os.Stdout)
		if streamOutput != "" {
			f, err := os.Create(streamOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		c, err := newBuilder().Build(ctx)
		if err != nil {
			return neterrors.FormatNetworkError(err, "connect")
		}
		defer c.Close()

		st, err := c.Query(ctx, operation, params, client.StreamOptions{
			Format: format,
			Deltas: streamDeltas,
			Cursor: streamCursor,
		})
		if err != nil {
			return neterrors.FormatNetworkError(err, operation)
		}
		defer st.Close()

		chunks := 0
		for {
			body, err := st.Recv(ctx)
			if len(body) > 0 {
				chunks++
				out.Write(body)
				if body[len(body)-1] != '\n' {
					fmt.Fprintln(out)
				}
			}
			switch {
			case err == nil:
				continue
			case errors.Is(err, io.EOF):
				fmt.Fprintf(os.Stderr, "stream complete: %d chunks\n", chunks)
				return nil
			case errors.Is(err, context.Canceled):
				fmt.Fprintf(os.Stderr, "stream interrupted: %d chunks\n", chunks)
				return nil
			case body != nil:
				// Partial failure: the server flagged this chunk but the
				// stream continues.
				fmt.Fprintln(os.Stderr, pterm.NewStyle(pterm.FgYellow).Sprint("⚠ "+logging.Mask(err.Error())))
			default:
				logging.PresentStreamError(err.Error())
				return err
			}
		}
	},
}

// buildStreamParams assembles the wire parameters from the typed flags and
// any raw --param overrides.
func buildStreamParams() (map[string]any, error) {
	params := make(map[string]any)

	if streamChains != "" {
		for _, code := range strings.Split(streamChains, ",") {
			if _, err := query.ParseChainID(strings.TrimSpace(code)); err != nil {
				return nil, err
			}
		}
		params["chains"] = streamChains
	}
	if streamFromBlock != "" {
		b, err := parseBound(streamFromBlock)
		if err != nil {
			return nil, fmt.Errorf("invalid --from-block: %w", err)
		}
		params["from_block"] = b
	}
	if streamToBlock != "" {
		b, err := parseBound(streamToBlock)
		if err != nil {
			return nil, fmt.Errorf("invalid --to-block: %w", err)
		}
		params["to_block"] = b
	}
	for _, kv := range streamParams {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --param %q, want key=value", kv)
		}
		params[k] = v
	}
	if len(params) == 0 {
		return nil, nil
	}
	return params, nil
}

// parseBound accepts the human block bound syntax: a number, "latest",
// "none", or "latest - N".
func parseBound(s string) (query.Bound, error) {
	data, err := json.Marshal(strings.TrimSpace(s))
	if err != nil {
		return query.Bound{}, err
	}
	var b query.Bound
	if err := json.Unmarshal(data, &b); err != nil {
		return query.Bound{}, err
	}
	return b, nil
}

func init() {
	rootCmd.AddCommand(streamCmd)
	streamCmd.Flags().StringVar(&streamChains, "chains", "", "Comma-separated chain codes, e.g. ETH,MATIC (default ETH)")
	streamCmd.Flags().StringVar(&streamFromBlock, "from-block", "", `Lower block bound (number, "latest", "none", "latest - N")`)
	streamCmd.Flags().StringVar(&streamToBlock, "to-block", "", `Upper block bound; "none" streams new blocks forever`)
	streamCmd.Flags().StringVar(&streamFormat, "format", string(query.DefaultFormat), "Body encoding: json, json_stream, arrow, arrow_stream")
	streamCmd.Flags().BoolVar(&streamDeltas, "deltas", false, "Request delta records instead of full ones, where supported")
	streamCmd.Flags().StringVar(&streamCursor, "cursor", "", "Resume from a previously observed cursor")
	streamCmd.Flags().StringArrayVar(&streamParams, "param", nil, "Extra query parameter as key=value; repeatable")
	streamCmd.Flags().StringVarP(&streamOutput, "output", "o", "", "Write bodies to a file instead of stdout")
}
