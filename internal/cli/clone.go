package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mirrorcopy "github.com/mirrorkit/mirrorkit/pkg/copy"
	mkerrors "github.com/mirrorkit/mirrorkit/pkg/errors"
)

// cloneCommand creates the clone command for deep-copying a document.
func (c *CLI) cloneCommand() *cobra.Command {
	var (
		output    string
		maxDepth  int
		maxStack  int
		shallow   bool
		freeze    bool
		typeNames bool
		nullRepl  string
		undefRepl string
	)

	cmd := &cobra.Command{
		Use:   "clone <file>",
		Short: "Deep-copy a document and write the result as JSON",
		Long: `Clone loads a JSON, TOML, or YAML document, deep-copies it through the
copy engine, and writes the result as JSON to stdout or --output.

With --freeze the copy is built from immutable containers before being
lowered back to JSON; combined with --shallow or --max-depth this shows
exactly which branches a bounded copy would share with the source.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			if output != "" {
				if err := mkerrors.ValidatePath(output); err != nil {
					return err
				}
			}

			value, err := loadValue(args[0])
			if err != nil {
				return err
			}

			opts := c.Defaults
			if cmd.Flags().Changed("max-depth") {
				opts.MaxDepth = maxDepth
			}
			if cmd.Flags().Changed("max-stack") {
				opts.MaxStackSize = maxStack
			}
			if shallow {
				opts.MaxDepth = mirrorcopy.Shallow
			}
			if freeze {
				opts.Freeze = true
			}
			if typeNames {
				opts.IncludeTypeNames = true
			}
			if cmd.Flags().Changed("null") {
				opts.NullReplacement = nullRepl
			}
			if cmd.Flags().Changed("undefined") {
				opts.UndefinedReplacement = undefRepl
			}
			opts = mirrorcopy.Resolve(&opts)

			logger.Debug("copying", "maxDepth", opts.MaxDepth, "freeze", opts.Freeze)
			copied := mirrorcopy.Copy(value, &opts)

			data, err := encodeJSON(copied)
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Print(string(data))
			} else {
				if err := os.WriteFile(output, data, 0o644); err != nil {
					return err
				}
				printSuccess("Cloned %s", args[0])
				printFile(output)
			}

			printStats(countEntries(copied, opts.MaxDepth), opts.MaxDepth, opts.Freeze)
			prog.done(fmt.Sprintf("Cloned %s", args[0]))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write result to file instead of stdout")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "copy depth bound (0 = default)")
	cmd.Flags().IntVar(&maxStack, "max-stack", 0, "traversal stack cap (0 = default, ceiling 16)")
	cmd.Flags().StringVar(&nullRepl, "null", "", "substitute for typed nil values")
	cmd.Flags().StringVar(&undefRepl, "undefined", "", "substitute for untyped nil values")
	cmd.Flags().BoolVar(&shallow, "shallow", false, "root-only copy, children shared by reference")
	cmd.Flags().BoolVar(&freeze, "freeze", false, "build the copy from immutable containers")
	cmd.Flags().BoolVar(&typeNames, "types", false, "record source type names on records")

	return cmd
}
