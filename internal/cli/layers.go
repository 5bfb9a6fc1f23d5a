package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var layersCmd = &cobra.Command{
	Use:   "layers [target]",
	Short: "List feature classes",
	Long: `Lists every feature class with its geometry type, spatial reference,
fields, row count, and feature dataset. Feature classes inside feature
datasets come first; file-based geodatabases list flat.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gdb, err := openGeodatabase(cmd.Context(), cmd, args)
		if err != nil {
			return err
		}
		defer gdb.Close()

		layers, err := gdb.GetFeatureClasses(cmd.Context())
		if err != nil {
			return err
		}
		if jsonFlag(cmd) {
			return writeJSON(os.Stdout, layers)
		}
		writePropsList(os.Stdout, layers)
		return nil
	},
}

func init() {
	layersCmd.Flags().Bool("json", false, "Emit JSON instead of text")
	rootCmd.AddCommand(layersCmd)
}
