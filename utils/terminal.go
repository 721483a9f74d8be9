package utils

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsInteractive reports whether stdout is a terminal the TUI can take over
func IsInteractive() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
