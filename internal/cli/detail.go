package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pypiscope/pkg/pypi"
)

// detailCommand creates the "detail" command: fetch one package's
// normalized detail record.
func (c *CLI) detailCommand() *cobra.Command {
	var (
		asJSON bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "detail <package>",
		Short: "Show a package's metadata, artifacts, and version history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient("")
			if err != nil {
				return err
			}

			detail, err := client.FetchPackage(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(detail, output)
			}
			printPackageDetail(detail)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a summary")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}

// printPackageDetail renders one detail record as labeled lines.
func printPackageDetail(d *pypi.PackageDetail) {
	fmt.Println(StyleTitle.Render(fmt.Sprintf("%s %s", d.Name, d.Version)))
	if d.Summary != "" {
		printDetail("%s", d.Summary)
	}

	printKeyValue("Author", strings.TrimSpace(fmt.Sprintf("%s %s", d.Author, d.AuthorEmail)))
	printKeyValue("License", d.License)
	printKeyValue("Home page", d.HomePage)
	printKeyValue("Requires", d.RequiresPython)
	printKeyValue("Dependencies", fmt.Sprintf("%d", len(d.Dependencies)))
	printKeyValue("Artifacts", fmt.Sprintf("%d", len(d.Downloads)))
	printKeyValue("Older versions", fmt.Sprintf("%d", len(d.OlderVersions)))

	if len(d.OlderVersions) > 0 {
		fmt.Println()
		fmt.Println(StyleDim.Render("Version history:"))
		for _, ov := range d.OlderVersions {
			line := ov.Version
			if ov.UploadTime != nil {
				line += "  " + *ov.UploadTime
			}
			if ov.Filename != nil {
				line += "  " + *ov.Filename
			}
			printDetail("%s", line)
		}
	}
}
