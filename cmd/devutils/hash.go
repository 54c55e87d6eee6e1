package main

import (
	"fmt"
	"os"

	"github.com/Showshin/dev-utils-plus/pkg/hashutil"
	"github.com/spf13/cobra"
)

// hashCmd represents the hash command
var hashCmd = &cobra.Command{
	Use:   "hash <md5|sha1|sha256|sha512> [text]",
	Short: "Compute a hex encoded digest",
	Long: `Computes the digest of the given text, or of stdin when no text argument
is provided. With --key the output is an HMAC-SHA256 tag instead.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		key, _ := cmd.Flags().GetString("key")

		input, err := argOrStdin(args, 1)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		out, err := hashValue(args[0], input, key)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
	},
}

func init() {
	rootCmd.AddCommand(hashCmd)

	hashCmd.Flags().StringP("key", "k", "", "Compute an HMAC-SHA256 tag with this key")
}

func hashValue(algo, input, key string) (string, error) {
	if key != "" {
		if algo != "sha256" {
			return "", fmt.Errorf("--key is only supported with sha256, got %q", algo)
		}
		return hashutil.HMACSHA256(input, key), nil
	}

	switch algo {
	case "md5":
		return hashutil.MD5(input), nil
	case "sha1":
		return hashutil.SHA1(input), nil
	case "sha256":
		return hashutil.SHA256(input), nil
	case "sha512":
		return hashutil.SHA512(input), nil
	default:
		return "", fmt.Errorf("unknown algorithm %q (supported: md5, sha1, sha256, sha512)", algo)
	}
}
