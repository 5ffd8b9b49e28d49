package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// packagesCommand creates the "packages" command: list a user's published
// packages without fetching any detail.
func (c *CLI) packagesCommand() *cobra.Command {
	var (
		asJSON bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "packages [username]",
		Short: "List the packages a PyPI user has published",
		Long: `List the packages a PyPI user has published, with their one-line summaries.

The username comes from the argument, the --user flag, or the config file,
in that order of precedence.

Examples:
  pypiscope packages wolfsoftware
  pypiscope packages --json -o packages.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient(argOrEmpty(args))
			if err != nil {
				return err
			}

			c.Logger.Infof("Listing packages for %s", client.Username())
			prog := newProgress(c.Logger)

			packages, err := client.ListPackages(cmd.Context())
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Found %d packages", len(packages)))

			if asJSON {
				return writeJSON(packages, output)
			}

			if len(packages) == 0 {
				printInfo("No packages found for %s", client.Username())
				return nil
			}
			fmt.Println(StyleTitle.Render(fmt.Sprintf("Packages published by %s", client.Username())))
			for _, pkg := range packages {
				printKeyValue(pkg.Name, pkg.Summary)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a table")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}

// argOrEmpty returns the first positional argument, or "".
func argOrEmpty(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
