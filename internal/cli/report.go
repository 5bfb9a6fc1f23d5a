package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/geodata-tools/registrant/internal/config"
	"github.com/geodata-tools/registrant/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report [target]",
	Short: "Render a full HTML metadata report",
	Long: `Collects the complete metadata of the geodatabase (identity, domains,
tables, feature classes) and renders it as a standalone HTML document,
to stdout or to the file given with --output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gdb, err := openGeodatabase(cmd.Context(), cmd, args)
		if err != nil {
			return err
		}
		defer gdb.Close()

		ctx := cmd.Context()
		data := report.Data{
			Target:    gdb.Target(),
			Workspace: gdb.GetPrettyProps(),
		}
		if data.Domains, err = gdb.GetDomains(ctx); err != nil {
			return err
		}
		if data.Tables, err = gdb.GetTables(ctx); err != nil {
			return err
		}
		if data.FeatureClasses, err = gdb.GetFeatureClasses(ctx); err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = configuredReportOutput()
		}
		if output == "" || output == "-" {
			return report.Render(os.Stdout, data)
		}

		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create %s: %w", output, err)
		}
		if err := report.Render(f, data); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	},
}

// configuredReportOutput returns the default output path from registrant.yaml
// in the working directory, or empty when no config sets one.
func configuredReportOutput() string {
	cfg, err := config.Load(".")
	if err != nil {
		return ""
	}
	return cfg.Report.Output
}

func init() {
	reportCmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
	rootCmd.AddCommand(reportCmd)
}
