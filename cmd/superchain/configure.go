// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"superchain/client/internal/config"
)

var (
	configEndpoint string
	configInsecure bool
	configLogLevel string
)

// configCmd shows the stored CLI configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show stored CLI configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		fmt.Printf("endpoint:  %s\n", cfg.Endpoint)
		fmt.Printf("secure:    %v\n", cfg.Secure)
		fmt.Printf("log level: %s\n", cfg.LogLevel)
		return nil
	},
}

// configSetCmd updates the stored configuration. Only the flags given change;
// everything else keeps its current value.
var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update stored CLI configuration",
	Long: `The set command updates the persisted CLI configuration. Only the settings
passed as flags change. Credentials are never stored here; use 'superchain
login' for those.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("endpoint") {
			cfg.Endpoint = configEndpoint
		}
		if cmd.Flags().Changed("insecure") {
			cfg.Secure = !configInsecure
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = configLogLevel
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Println("✅ Configuration saved")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().StringVar(&configEndpoint, "endpoint", "", "Service endpoint host")
	configSetCmd.Flags().BoolVar(&configInsecure, "insecure", false, "Use plaintext transport")
	configSetCmd.Flags().StringVar(&configLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}
