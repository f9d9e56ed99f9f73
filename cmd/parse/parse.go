// Package parse handles single report parsing commands
package parse

import (
	"crednorm/experian-report/cmd/root"
	"crednorm/experian-report/internal/experian"

	"github.com/spf13/cobra"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse an Experian XML report",
	Long:  `Parse an Experian credit report XML file and write the normalized report as JSON.`,
	Run:   parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Experian report parse command called")
	root.Log.Infof("Input XML file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output JSON file: %s", root.SharedFlags.Output)

	if root.SharedFlags.Validate {
		root.Log.Info("Validating format...")
		valid, err := experian.ValidateFormat(root.SharedFlags.Input)
		if err != nil {
			root.Log.Fatalf("Error validating file: %v", err)
		}
		if !valid {
			root.Log.Fatal("The file is not a recognizable Experian credit report")
		}
		root.Log.Info("Validation successful.")
	}

	if err := experian.ConvertToJSON(root.SharedFlags.Input, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error converting to JSON: %v", err)
	}
	root.Log.Info("XML to JSON conversion completed successfully!")
}
