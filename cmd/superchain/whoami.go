// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"superchain/client/internal/credentials"
)

// whoamiCmd shows which API identity the client would use right now, and
// where it was resolved from.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show current API identity",
	Long: `The whoami command shows the API username the client resolves for requests
and whether it came from the environment or the OS keychain. It does not
contact the service.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		username, _, err := credentials.Resolve()
		if err != nil {
			fmt.Println("🔒 You're not logged in yet!")
			fmt.Println("   Run 'superchain login' to get started.")
			return nil
		}
		source := "keychain"
		if os.Getenv(credentials.EnvUsername) != "" {
			source = "environment"
		}
		fmt.Printf("👤 Current user: %s (%s)\n", username, source)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
