package main

import (
	"fmt"
	"os"

	"github.com/Showshin/dev-utils-plus/pkg/validate"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <kind> <value>",
	Short: "Check a value against a validator",
	Long: `Validates a value and reports the verdict. The command exits non zero
when the value is invalid, so it can gate scripts.

Supported kinds: email, url, uuid, ip, ipv4, ipv6, json, credit-card,
hex-color, alpha, alphanumeric, numeric.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		kind, value := args[0], args[1]

		ok, err := validateValue(kind, value)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			fmt.Printf("invalid %s\n", kind)
			os.Exit(1)
		}
		fmt.Printf("valid %s\n", kind)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateValue(kind, value string) (bool, error) {
	switch kind {
	case "email":
		return validate.Email(value), nil
	case "url":
		return validate.URL(value), nil
	case "uuid":
		return validate.UUID(value), nil
	case "ip":
		return validate.IP(value), nil
	case "ipv4":
		return validate.IPv4(value), nil
	case "ipv6":
		return validate.IPv6(value), nil
	case "json":
		return validate.JSON(value), nil
	case "credit-card":
		return validate.CreditCard(value), nil
	case "hex-color":
		return validate.HexColor(value), nil
	case "alpha":
		return validate.Alpha(value), nil
	case "alphanumeric":
		return validate.Alphanumeric(value), nil
	case "numeric":
		return validate.Numeric(value), nil
	default:
		return false, fmt.Errorf("unknown kind %q", kind)
	}
}
