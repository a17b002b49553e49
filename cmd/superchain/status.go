// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"superchain/client/internal/neterrors"
)

// statusCmd fetches the service status feed and renders it as a table:
// one row per chain service with its latest ingested block height.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show per-chain service status",
	Long: `The status command queries the service status feed and shows the ingestion
state of every chain service: the latest block height, the entity being
ingested, and the reported health.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		hc, err := newBuilder().BuildHTTP()
		if err != nil {
			return err
		}

		spinner, _ := pterm.DefaultSpinner.Start("Fetching service status")
		statuses, err := hc.GetStatus(ctx)
		if err != nil {
			if spinner != nil {
				spinner.Fail("Status request failed")
			}
			return neterrors.FormatNetworkError(err, "status request")
		}
		if spinner != nil {
			spinner.Success(fmt.Sprintf("%d services reporting", len(statuses)))
		}

		data := pterm.TableData{{"Chain", "Service", "Entity", "Height", "Updated", "Status"}}
		for _, s := range statuses {
			updated := ""
			if s.Timestamp > 0 {
				updated = time.Unix(int64(s.Timestamp), 0).UTC().Format(time.RFC3339)
			}
			health := string(s.Status)
			if s.Status == "OK" {
				health = pterm.NewStyle(pterm.FgGreen).Sprint(health)
			} else {
				health = pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint(health)
			}
			data = append(data, []string{
				string(s.Chain),
				s.Service,
				s.Entity,
				fmt.Sprintf("%d", s.LatestBlockHeight),
				updated,
				health,
			})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
