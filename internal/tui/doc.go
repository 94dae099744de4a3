// Package tui provides terminal output for glitter.
//
// It handles:
//   - Structured logging and status reporting (Splog, with optional rotated log files)
//   - Command status lines with a spinner on terminals
//   - The commit confirmation prompt (using survey on terminals)
//   - Terminal styling and colors (using lipgloss)
package tui
