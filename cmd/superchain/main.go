// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Command superchain is the command-line interface for the Superchain data
// service. It implements subcommands for authentication, service status, and
// streaming queries using the Cobra CLI framework, with a rich terminal UI
// built on pterm spinners and tables.
package main

// main initializes and executes the command-line interface.
func main() {
	Execute()
}
