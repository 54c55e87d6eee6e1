package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// argOrStdin returns args[i] when present, otherwise reads all of stdin so
// commands compose with pipes.
func argOrStdin(args []string, i int) (string, error) {
	if len(args) > i {
		return args[i], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
