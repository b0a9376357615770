// Package main is the entry point for the Learndash admin CLI.
// It administers the learning dashboard backend over its HTTP API.
package main

import (
	"github.com/joho/godotenv"

	"learndash/admincli/cmd"
)

// main initializes and executes the command-line interface.
// A local .env file is loaded first when present so development
// overrides (base URL, timeouts) apply without exporting variables.
func main() {
	_ = godotenv.Load()
	cmd.Execute()
}
