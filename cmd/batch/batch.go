// Package batch handles batch conversion of report files
package batch

import (
	"crednorm/experian-report/cmd/root"
	"crednorm/experian-report/internal/experian"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert a directory of Experian XML reports",
	Long:  `Convert every Experian credit report XML file in a directory to JSON files in an output directory.`,
	Run:   batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.InputDir, "input-dir", "d", "", "Input directory containing XML files")
	Cmd.Flags().StringVarP(&root.OutputDir, "output-dir", "t", "", "Output directory for JSON files")
	_ = Cmd.MarkFlagRequired("input-dir")
	_ = Cmd.MarkFlagRequired("output-dir")
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch conversion command called")
	root.Log.Infof("Input directory: %s", root.InputDir)
	root.Log.Infof("Output directory: %s", root.OutputDir)

	processed, err := experian.BatchConvert(root.InputDir, root.OutputDir)
	if err != nil {
		root.Log.Fatalf("Error during batch conversion: %v", err)
	}
	root.Log.Infof("Batch conversion completed: %d file(s) converted", processed)
}
