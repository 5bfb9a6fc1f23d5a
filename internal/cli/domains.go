package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var domainsCmd = &cobra.Command{
	Use:   "domains [target]",
	Short: "List attribute domains",
	Long: `Lists every coded-value and range domain with its field type, merge
and split policies, and values.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gdb, err := openGeodatabase(cmd.Context(), cmd, args)
		if err != nil {
			return err
		}
		defer gdb.Close()

		domains, err := gdb.GetDomains(cmd.Context())
		if err != nil {
			return err
		}
		if jsonFlag(cmd) {
			return writeJSON(os.Stdout, domains)
		}
		writePropsList(os.Stdout, domains)
		return nil
	},
}

func init() {
	domainsCmd.Flags().Bool("json", false, "Emit JSON instead of text")
	rootCmd.AddCommand(domainsCmd)
}
