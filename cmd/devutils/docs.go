package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Showshin/dev-utils-plus/internal/presentation/tui"
	"github.com/Showshin/dev-utils-plus/pkg/registry"
	"github.com/spf13/cobra"
)

// docsCmd represents the docs command
var docsCmd = &cobra.Command{
	Use:   "docs [group]",
	Short: "Browse the operation catalog",
	Long: `Renders the built in operation catalog as styled markdown. Pass a group
name (strings, slices, random, hash, validate, format, math, time, convert)
to narrow the listing.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		group := ""
		if len(args) > 0 {
			group = args[0]
		}

		tui.PrintBanner()

		md := catalogMarkdown(registry.Builtin(), group)
		render := tui.NewRenderer()
		out, err := render(md)
		if err != nil {
			// Fall back to the raw markdown when the terminal renderer fails.
			fmt.Println(md)
			return
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}

// catalogMarkdown lays the catalog out as one markdown section per group.
func catalogMarkdown(reg *registry.Registry, group string) string {
	grouped := map[string][]registry.Operation{}
	for _, op := range reg.List() {
		if group != "" && op.Group != group {
			continue
		}
		grouped[op.Group] = append(grouped[op.Group], op)
	}

	groups := make([]string, 0, len(grouped))
	for g := range grouped {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	var b strings.Builder
	b.WriteString("# devutils operations\n")
	if len(groups) == 0 {
		fmt.Fprintf(&b, "\nNo operations in group %q.\n", group)
		return b.String()
	}

	for _, g := range groups {
		fmt.Fprintf(&b, "\n## %s\n\n", g)
		for _, op := range grouped[g] {
			fmt.Fprintf(&b, "- **%s**: %s", op.Name, op.Summary)
			if len(op.Args) > 0 {
				names := make([]string, 0, len(op.Args))
				for _, a := range op.Args {
					if a.Required {
						names = append(names, a.Name)
					} else {
						names = append(names, a.Name+"?")
					}
				}
				fmt.Fprintf(&b, " (`%s`)", strings.Join(names, ", "))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
