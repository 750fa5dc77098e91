package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "List the supported API resources",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tFILTER\tDOCUMENT FETCH")
		for _, e := range registry {
			doc := "no"
			if e.document {
				doc = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.name, e.filter, doc)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(resourcesCmd)
}
