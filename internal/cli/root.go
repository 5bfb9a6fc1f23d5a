package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `                _     _              _
 _ __ ___  __ _(_)___| |_ _ __ __ _ _ __ | |_
| '__/ _ \/ _' | / __| __| '__/ _' | '_ \| __|
| | |  __/ (_| | \__ \ |_| | | (_| | | | | |_
|_|  \___|\__, |_|___/\__|_|  \__,_|_| |_|\__|
          |___/`

var rootCmd = &cobra.Command{
	Use:   "registrant",
	Short: "Esri geodatabase metadata inspector",
	Long: asciiLogo + `

registrant reads the system catalog of an Esri geodatabase and reports its
release version, workspace type, domains, tables, and feature classes.

The target can be a PostgreSQL connection string (enterprise geodatabase) or
a filesystem path to a mobile/file geodatabase; the backend is selected
automatically.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Database connection failed
  12 - Target is not a geodatabase`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for registrant")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringP("connection", "c", "",
		"Connection string or geodatabase path (overrides environment and registrant.yaml)")
}

// getConnectionFlag safely retrieves the connection flag value
func getConnectionFlag(cmd *cobra.Command) string {
	connection, err := cmd.Flags().GetString("connection")
	if err != nil {
		return ""
	}
	return connection
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
