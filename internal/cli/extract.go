package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// extractCommand creates the "extract" command: the full aggregation of
// every published package's detail record.
func (c *CLI) extractCommand() *cobra.Command {
	var (
		asJSON bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "extract [username]",
		Short: "Fetch detail records for every package a user has published",
		Long: `Fetch detail records for every package a user has published.

Details are fetched sequentially, one registry call per package; the first
failure aborts the whole run. Output is the complete list or nothing.

Examples:
  pypiscope extract wolfsoftware --json -o packages.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient(argOrEmpty(args))
			if err != nil {
				return err
			}

			c.Logger.Infof("Extracting package details for %s", client.Username())
			prog := newProgress(c.Logger)

			spinner := newSpinner(cmd.Context(), fmt.Sprintf("Fetching packages for %s...", client.Username()))
			spinner.Start()
			details, err := client.FetchAll(cmd.Context())
			spinner.Stop()
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Fetched %d packages", len(details)))

			if asJSON || output != "" {
				if err := writeJSON(details, output); err != nil {
					return err
				}
				if output != "" {
					printFile(output)
				}
				return nil
			}

			for i := range details {
				if i > 0 {
					fmt.Println()
				}
				printPackageDetail(&details[i])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of summaries")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write JSON to file instead of stdout")
	return cmd
}
