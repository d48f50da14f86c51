// =============================================================================
// Cable Label Generator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Cable Label Generator CLI. It
// initializes the Cobra CLI framework and delegates command execution to the
// cmd package.
//
// USAGE:
//   cablelabel <schedule-file>   - Generate DXF labels from a cable schedule
//   cablelabel version           - Display the application version
//
// ARCHITECTURE:
//   cmd/        : CLI command definitions (Cobra)
//   internal/   : Core logic (parsing, layout, DXF serialization)
//   pkg/        : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/wanshade/cable-label-generator/cmd"
)

func main() {
	cmd.Execute()
}
