package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Showshin/dev-utils-plus/pkg/convert"
	"github.com/spf13/cobra"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert config data between JSON, YAML and TOML",
	Long: `Converts configuration data between formats. The input is the given file,
or stdin when no file is provided. Formats come from --from and --to,
falling back to the file extensions of the input and --out paths.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fromFlag, _ := cmd.Flags().GetString("from")
		toFlag, _ := cmd.Flags().GetString("to")
		outPath, _ := cmd.Flags().GetString("out")

		if err := runConvert(args, fromFlag, toFlag, outPath); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().String("from", "", "Input format: json, yaml or toml")
	convertCmd.Flags().String("to", "", "Output format: json, yaml or toml")
	convertCmd.Flags().StringP("out", "o", "", "Write the result to a file instead of stdout")
}

func runConvert(args []string, fromFlag, toFlag, outPath string) error {
	var data []byte
	var err error

	inPath := ""
	if len(args) > 0 {
		inPath = args[0]
		data, err = os.ReadFile(inPath)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	from, err := resolveFormat(fromFlag, inPath, "--from")
	if err != nil {
		return err
	}
	to, err := resolveFormat(toFlag, outPath, "--to")
	if err != nil {
		return err
	}

	out, err := convert.Convert(data, from, to)
	if err != nil {
		return err
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, out, 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = os.Stdout.Write(out)
	return err
}

// resolveFormat picks the format from the flag value first, then from the
// path extension.
func resolveFormat(flag, path, name string) (convert.Format, error) {
	if flag != "" {
		return convert.ParseFormat(flag)
	}
	if path != "" {
		return convert.FormatFromExt(path)
	}
	return 0, fmt.Errorf("cannot infer format, pass %s", name)
}
