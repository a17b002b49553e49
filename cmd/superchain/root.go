// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"superchain/client"
	"superchain/client/internal/config"
	"superchain/client/internal/credentials"
	"superchain/client/internal/logging"
)

var (
	showVersion  bool
	flagURL      string
	flagInsecure bool
	flagVerbose  bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "superchain",
	Short:         "Superchain CLI for streaming on-chain data",
	Long:          `Superchain is a command-line client for the Superchain data service: multiplexed streaming queries over a single websocket connection, with automatic reconnect and cursor-based resume.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("superchain %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, logging.PresentError("", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "", "Service endpoint host (default from config or SUPER_URL)")
	rootCmd.PersistentFlags().BoolVar(&flagInsecure, "insecure", false, "Use plaintext transport (local development only)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// cliLogger builds the structured logger for a command run, honoring the
// configured level and the --verbose override.
func cliLogger() zerolog.Logger {
	level := "info"
	if cfg, err := config.Load(); err == nil && cfg.LogLevel != "" {
		level = cfg.LogLevel
	}
	if flagVerbose {
		level = "debug"
	}
	return logging.New(os.Stderr, level)
}

// newBuilder assembles a client builder from the stored configuration and
// command-line flags. Precedence: --url flag, then SUPER_URL, then config.
func newBuilder() *client.Builder {
	b := client.NewBuilder().Logger(cliLogger())
	if cfg, err := config.Load(); err == nil {
		if cfg.Endpoint != "" {
			b.Endpoint(cfg.Endpoint)
		}
		b.Secure(cfg.Secure)
	}
	if ep, ok := credentials.EndpointOverride(); ok {
		b.Endpoint(ep)
	}
	if flagURL != "" {
		b.Endpoint(flagURL)
	}
	if flagInsecure {
		b.Secure(false)
	}
	return b
}
