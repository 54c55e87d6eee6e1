package main

import (
	"fmt"
	"strings"

	devutils "github.com/Showshin/dev-utils-plus"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of devutils",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("devutils version %s\n", strings.TrimSpace(devutils.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
