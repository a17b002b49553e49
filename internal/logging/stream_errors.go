// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// StreamErrorType represents the category of stream error
type StreamErrorType int

const (
	StreamErrorUnknown StreamErrorType = iota
	StreamErrorNetwork
	StreamErrorAuth
	StreamErrorTimeout
	StreamErrorInternal
	StreamErrorUnavailable
)

// ParseStreamError categorizes a websocket stream error message
func ParseStreamError(errMsg string) StreamErrorType {
	lower := strings.ToLower(errMsg)

	// Check for specific error patterns
	if strings.Contains(lower, "connection reset") || strings.Contains(lower, "abnormal closure") ||
		strings.Contains(lower, "broken pipe") || strings.Contains(lower, "connection refused") {
		return StreamErrorNetwork
	}
	if strings.Contains(lower, "internal server error") || strings.Contains(lower, "internal_error") {
		return StreamErrorInternal
	}
	if strings.Contains(lower, "unavailable") || strings.Contains(lower, "service unavailable") {
		return StreamErrorUnavailable
	}
	if strings.Contains(lower, "deadline") || strings.Contains(lower, "timeout") || strings.Contains(lower, "timed out") {
		return StreamErrorTimeout
	}
	if strings.Contains(lower, "401") || strings.Contains(lower, "unauthorized") || strings.Contains(lower, "forbidden") {
		return StreamErrorAuth
	}

	return StreamErrorUnknown
}

// FormatStreamError formats a stream error in a user-friendly way
func FormatStreamError(errMsg string) string {
	errType := ParseStreamError(errMsg)

	var builder strings.Builder

	// Title
	builder.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("Connection Lost"))
	builder.WriteString("\n\n")

	// User-friendly description
	switch errType {
	case StreamErrorNetwork:
		builder.WriteString("The connection to Superchain was interrupted unexpectedly.\n")
		builder.WriteString("This usually happens when:\n")
		builder.WriteString("  • Your internet connection was disrupted\n")
		builder.WriteString("  • The network path to the service was interrupted\n")
		builder.WriteString("  • A firewall or proxy closed the connection\n")

	case StreamErrorInternal:
		builder.WriteString("An internal error occurred on the Superchain service.\n")
		builder.WriteString("This could mean:\n")
		builder.WriteString("  • The service encountered an unexpected issue\n")
		builder.WriteString("  • The service is being updated or restarted\n")
		builder.WriteString("  • There was a temporary problem processing your request\n")

	case StreamErrorUnavailable:
		builder.WriteString("The Superchain service is currently unavailable.\n")
		builder.WriteString("Possible reasons:\n")
		builder.WriteString("  • The service is under maintenance\n")
		builder.WriteString("  • The service is temporarily overloaded\n")
		builder.WriteString("  • There's a service outage\n")

	case StreamErrorTimeout:
		builder.WriteString("The connection to Superchain timed out.\n")
		builder.WriteString("This could be due to:\n")
		builder.WriteString("  • Slow or unstable internet connection\n")
		builder.WriteString("  • The service taking too long to respond\n")
		builder.WriteString("  • Network latency issues\n")

	case StreamErrorAuth:
		builder.WriteString("Authentication with Superchain failed.\n")
		builder.WriteString("To fix this:\n")
		builder.WriteString("  • Run 'superchain login' to store valid credentials\n")
		builder.WriteString("  • Your password may have been rotated\n")

	default:
		builder.WriteString("The streaming session was interrupted.\n")
		builder.WriteString("This could mean:\n")
		builder.WriteString("  • Network connection dropped\n")
		builder.WriteString("  • Service is restarting or under maintenance\n")
		builder.WriteString("  • Session timeout\n")
	}

	builder.WriteString("\n")

	// Action to take
	if errType == StreamErrorAuth {
		builder.WriteString(pterm.NewStyle(pterm.FgYellow).Sprint("→ Please run 'superchain login' and try again"))
	} else {
		builder.WriteString(pterm.NewStyle(pterm.FgYellow).Sprint("→ Please run 'superchain stream' again"))
	}

	builder.WriteString("\n")

	// Technical details (optional, for debugging)
	if strings.TrimSpace(errMsg) != "" {
		builder.WriteString("\n")
		builder.WriteString(pterm.NewStyle(pterm.FgGray).Sprint("Technical details: " + Mask(errMsg)))
	}

	return builder.String()
}

// PresentStreamError displays a formatted stream error
func PresentStreamError(errMsg string) {
	fmt.Println()
	fmt.Println(FormatStreamError(errMsg))
	fmt.Println()
}
