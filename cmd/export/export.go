// Package export handles report export commands
package export

import (
	"strings"

	"crednorm/experian-report/cmd/root"
	"crednorm/experian-report/internal/experian"
	"crednorm/experian-report/internal/export"

	"github.com/spf13/cobra"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export a parsed report to CSV, YAML or XLSX",
	Long:  `Parse an Experian credit report XML file and export it in the requested format.`,
	Run:   exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Format, "format", "f", "csv", "Output format: csv, yaml or xlsx")
}

func exportFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Export command called")
	root.Log.Infof("Input XML file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output file: %s", root.SharedFlags.Output)

	report, err := experian.ParseFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error parsing report: %v", err)
	}

	export.SetLogger(root.Log)

	switch strings.ToLower(root.Format) {
	case "csv":
		err = export.WriteCSV(report, root.SharedFlags.Output)
	case "yaml":
		err = export.WriteYAML(report, root.SharedFlags.Output)
	case "xlsx":
		err = export.WriteXLSX(report, root.SharedFlags.Output)
	default:
		root.Log.Fatalf("Unknown export format: %s", root.Format)
	}
	if err != nil {
		root.Log.Fatalf("Error exporting report: %v", err)
	}
	root.Log.Info("Export completed successfully!")
}
