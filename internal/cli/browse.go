package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// browseCommand creates the "browse" command: pick a package from the
// user's listing interactively, then show its detail.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [username]",
		Short: "Interactively browse a user's packages",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient(argOrEmpty(args))
			if err != nil {
				return err
			}

			packages, err := client.ListPackages(cmd.Context())
			if err != nil {
				return err
			}
			if len(packages) == 0 {
				printInfo("No packages found for %s", client.Username())
				return nil
			}

			model := newPackageListModel(client.Username(), packages)
			result, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}

			final, ok := result.(packageListModel)
			if !ok || final.Selected == nil {
				return nil // quit without selection
			}

			detail, err := client.FetchPackage(cmd.Context(), final.Selected.Name)
			if err != nil {
				return err
			}
			printPackageDetail(detail)
			return nil
		},
	}
}
