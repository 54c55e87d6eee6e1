package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Showshin/dev-utils-plus/pkg/strutil"
	"github.com/spf13/cobra"
)

// slugCmd represents the slug command
var slugCmd = &cobra.Command{
	Use:   "slug [text...]",
	Short: "Turn text into a URL friendly slug",
	Long:  `Slugifies the given words, or stdin when no arguments are provided.`,
	Run: func(cmd *cobra.Command, args []string) {
		var text string
		if len(args) > 0 {
			text = strings.Join(args, " ")
		} else {
			var err error
			text, err = argOrStdin(args, 0)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
		}
		fmt.Println(strutil.Slugify(text))
	},
}

func init() {
	rootCmd.AddCommand(slugCmd)
}
