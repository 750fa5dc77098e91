package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show personal info for the authenticated user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		defer client.Close()

		info, err := client.PersonalInfo.Get(cmd.Context())
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), info)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "ID\t%s\n", info.ID)
		fmt.Fprintf(w, "Age\t%d\n", info.Age)
		fmt.Fprintf(w, "Weight\t%.1f kg\n", info.Weight)
		fmt.Fprintf(w, "Height\t%.2f m\n", info.Height)
		fmt.Fprintf(w, "Biological sex\t%s\n", info.BiologicalSex)
		fmt.Fprintf(w, "Email\t%s\n", info.Email)
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
