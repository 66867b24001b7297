package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mirrorkit/mirrorkit/pkg/entries"
)

// inspectCommand creates the inspect command for showing a document's
// entry tree.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		depth     int
		flat      bool
		typeNames bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the entry tree of a document",
		Long: `Inspect loads a JSON, TOML, or YAML document and prints its entry tree:
every container becomes a branch, every scalar a leaf. Use "-" to read
JSON from stdin.

Entries are extracted with the same rules the copy engine uses, so the
tree shows exactly what a copy or freeze would traverse: nil values are
omitted and reserved keys are filtered out.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			value, err := loadValue(args[0])
			if err != nil {
				return err
			}
			logger.Debug("loaded document", "path", args[0])

			if flat {
				opts := entries.Options{IncludeTypeNames: typeNames}
				for _, e := range entries.Extract(value, opts) {
					fmt.Println(StyleKey.Render(e.Key.String()) + StyleDim.Render(" = ") + StyleValue.Render(fmt.Sprint(e.Value)))
				}
				return nil
			}

			fmt.Print(renderTree(value, depth))
			printStats(countEntries(value, depth), depth, false)
			return nil
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 6, "maximum tree depth to expand")
	cmd.Flags().BoolVar(&flat, "flat", false, "print top-level entries only, one per line")
	cmd.Flags().BoolVar(&typeNames, "types", false, "include type-name entries (flat mode)")

	return cmd
}

// countEntries counts the entries the tree renderer would visit.
func countEntries(v any, depth int) int {
	if depth <= 0 {
		return 0
	}
	n := 0
	for _, e := range entries.Of(v) {
		n++
		n += countEntries(e.Value, depth-1)
	}
	return n
}
