package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Showshin/dev-utils-plus/pkg/format"
	"github.com/spf13/cobra"
)

// fmtCmd represents the fmt command
var fmtCmd = &cobra.Command{
	Use:   "fmt <bytes|comma|ordinal|duration> <value>",
	Short: "Format a value for humans",
	Long: `Formats a raw value into a human readable string: byte sizes ("1.5 KB"),
comma grouped numbers ("1,234,567"), ordinals ("42nd") and durations
("1d 2h"). Durations accept Go syntax such as 90m or 26h.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		out, err := formatValue(args[0], args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}

func formatValue(kind, raw string) (string, error) {
	switch kind {
	case "bytes":
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return "", fmt.Errorf("bytes wants an integer: %w", err)
		}
		return format.Bytes(n), nil
	case "comma":
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return format.Comma(n), nil
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", fmt.Errorf("comma wants a number: %w", err)
		}
		return format.CommaFloat(f, -1), nil
	case "ordinal":
		n, err := strconv.Atoi(raw)
		if err != nil {
			return "", fmt.Errorf("ordinal wants an integer: %w", err)
		}
		return format.Ordinal(n), nil
	case "duration":
		d, err := time.ParseDuration(raw)
		if err != nil {
			return "", fmt.Errorf("duration wants Go duration syntax: %w", err)
		}
		return format.Duration(d), nil
	default:
		return "", fmt.Errorf("unknown kind %q (supported: bytes, comma, ordinal, duration)", kind)
	}
}
