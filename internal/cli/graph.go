package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pypiscope/pkg/render"
)

// graphCommand creates the "graph" command: render a user's packages and
// their direct dependencies as a Graphviz graph.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "graph [username]",
		Short: "Render a dependency graph of a user's packages",
		Long: `Render the user's packages and their direct runtime dependencies as a
Graphviz graph.

Formats:
  dot   Graphviz DOT source (default)
  svg   rendered SVG

Examples:
  pypiscope graph wolfsoftware -o packages.dot
  pypiscope graph wolfsoftware --format svg -o packages.svg`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient(argOrEmpty(args))
			if err != nil {
				return err
			}

			c.Logger.Infof("Building dependency graph for %s", client.Username())
			prog := newProgress(c.Logger)

			details, err := client.FetchAll(cmd.Context())
			if err != nil {
				return err
			}

			dot := render.ToDOT(client.Username(), details)

			var data []byte
			switch format {
			case "dot":
				data = []byte(dot)
			case "svg":
				data, err = render.RenderSVG(cmd.Context(), dot)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format: %s (available: dot, svg)", format)
			}
			prog.done(fmt.Sprintf("Rendered %d packages", len(details)))

			if output == "" {
				_, err = os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			printSuccess("Wrote %s graph", format)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}
