package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "devutils",
	Short: "devutils is a toolbox for everyday developer chores",
	Long: `devutils bundles the dev-utils-plus library into one command line tool:
slugs, hashes, random tokens, validators, formatters and config converters.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
