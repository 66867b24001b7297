package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	mkerrors "github.com/mirrorkit/mirrorkit/pkg/errors"
	"github.com/mirrorkit/mirrorkit/pkg/render/objgraph"
)

// graphCommand creates the graph command for rendering object graphs.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		output   string
		formats  string
		detailed bool
		depth    int
	)

	cmd := &cobra.Command{
		Use:   "graph <file>",
		Short: "Render a document's object graph",
		Long: `Graph loads a JSON, TOML, or YAML document and renders its object graph:
containers become boxes, scalars become leaves, and edges carry entry
keys. Output formats are dot, svg, and png (comma-separated for several
at once). Rendering happens in-process, no Graphviz installation is
required.`,
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

			base := output
			if base == "" {
				base = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
				if base == "-" {
					base = "graph"
				}
			}

			dot := objgraph.ToDOT(value, objgraph.Options{
				Detailed: detailed,
				MaxDepth: depth,
			})

			for _, format := range strings.Split(formats, ",") {
				format = strings.TrimSpace(strings.ToLower(format))
				if err := mkerrors.ValidateFormat(format, "dot", "svg", "png"); err != nil {
					return err
				}
				path := base + "." + format

				var data []byte
				switch format {
				case "dot":
					data = []byte(dot)
				case "svg":
					data, err = objgraph.RenderSVG(dot)
				case "png":
					data, err = objgraph.RenderPNG(dot)
				}
				if err != nil {
					return mkerrors.Wrap(mkerrors.ErrCodeInternal, err, "render %s", format)
				}

				if err := os.WriteFile(path, data, 0o644); err != nil {
					return err
				}
				printFile(path)
			}

			prog.done("Rendered object graph")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output base name (defaults to the input name)")
	cmd.Flags().StringVarP(&formats, "format", "f", "svg", "comma-separated output formats: dot, svg, png")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include container kind and size in node labels")
	cmd.Flags().IntVar(&depth, "depth", 0, "graph depth bound (0 = default)")

	return cmd
}
