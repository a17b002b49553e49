// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"superchain/client/internal/keychain"
	"superchain/client/internal/logging"
)

// loginCmd represents the login command for storing API credentials.
// It prompts for the API username and password, verifies them against the
// service with a status request, and stores them in the OS keychain.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Store and verify API credentials",
	Long: `The login command prompts for your Superchain API username and password,
verifies them against the service, and stores them securely in the OS keychain.

Subsequent commands resolve credentials from the keychain automatically.
Set SUPER_USERNAME and SUPER_PASSWORD to bypass the keychain in scripts and CI.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := pterm.DefaultInteractiveTextInput.Show("API username")
		if err != nil {
			return err
		}
		username = strings.TrimSpace(username)
		if username == "" {
			return errors.New("username is required")
		}

		password, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("API password")
		if err != nil {
			return err
		}
		if password == "" {
			return errors.New("password is required")
		}

		spinner, _ := pterm.DefaultSpinner.Start("Verifying credentials")

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		hc, err := newBuilder().Credential(username, password).BuildHTTP()
		if err == nil {
			_, err = hc.GetStatus(ctx)
		}
		if err != nil {
			if spinner != nil {
				spinner.Fail("Verification failed")
			}
			pterm.Println(logging.PresentError("", err))
			return err
		}
		if spinner != nil {
			spinner.Success("Credentials verified")
		}

		mgr, err := keychain.GetManager()
		if err != nil {
			return fmt.Errorf("keychain unavailable: %w", err)
		}
		if err := mgr.SaveCredentials(username, password); err != nil {
			return fmt.Errorf("failed to store credentials: %w", err)
		}

		fmt.Printf("✅ Logged in as %s\n", username)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
