package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [target]",
	Short: "Show release version and workspace type",
	Long: `Opens the geodatabase and prints its identity properties: path,
release version, and workspace type. The target can be a PostgreSQL
connection string or a path to a mobile/file geodatabase.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gdb, err := openGeodatabase(cmd.Context(), cmd, args)
		if err != nil {
			return err
		}
		defer gdb.Close()

		props := gdb.GetPrettyProps()
		if jsonFlag(cmd) {
			return writeJSON(os.Stdout, props)
		}
		writeProps(os.Stdout, props, 0)
		return nil
	},
}

func init() {
	inspectCmd.Flags().Bool("json", false, "Emit JSON instead of text")
	rootCmd.AddCommand(inspectCmd)
}

func jsonFlag(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}
