// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"superchain/client/internal/keychain"
)

// logoutCmd represents the logout command for clearing stored credentials.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove saved API credentials",
	Long: `The logout command removes the stored API username and password from the
OS keychain. Credentials supplied through SUPER_USERNAME/SUPER_PASSWORD are
unaffected; unset the variables to stop using them.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		// Always clear local credentials; a missing entry is not an error.
		if mgr, err := keychain.GetManager(); err == nil {
			_ = mgr.ClearCredentials()
		}
		fmt.Println("✅ Saved credentials have been removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
