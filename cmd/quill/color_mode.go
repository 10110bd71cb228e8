package main

import (
	"fmt"
	"os"
	"strings"
)

// colorEnabled resolves --color against the stream diagnostics go to.
func colorEnabled(value string, f *os.File) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "always":
		return true, nil
	case "off", "never":
		return false, nil
	case "", "auto":
		return f != nil && isTerminal(f) && os.Getenv("NO_COLOR") == "", nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}
