package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables [target]",
	Short: "List non-spatial tables",
	Long: `Lists every non-spatial table with its fields and current row count.
Row counts are live queries against the data tables, not cached catalog
statistics.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gdb, err := openGeodatabase(cmd.Context(), cmd, args)
		if err != nil {
			return err
		}
		defer gdb.Close()

		tables, err := gdb.GetTables(cmd.Context())
		if err != nil {
			return err
		}
		if jsonFlag(cmd) {
			return writeJSON(os.Stdout, tables)
		}
		writePropsList(os.Stdout, tables)
		return nil
	},
}

func init() {
	tablesCmd.Flags().Bool("json", false, "Emit JSON instead of text")
	rootCmd.AddCommand(tablesCmd)
}
