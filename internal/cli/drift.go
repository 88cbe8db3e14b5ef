package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"spamsift/internal/adapter/dataset"
	"spamsift/internal/adapter/fs"
	"spamsift/internal/adapter/monitor"
	"spamsift/internal/adapter/store"
)

var (
	driftModel string
	driftData  string
	driftTopN  int
)

var driftCmd = &cobra.Command{
	Use:   "drift",
	Short: "Analyze token distribution drift on new data",
	Long: `Compare a new dataset's token distribution against the distribution
the model was trained on. Reports Jensen-Shannon divergence (natural log,
0 to ln 2) plus the tokens that shifted the most.

Examples:
  spamsift drift --model model.json --data recent.csv
  spamsift drift --model model.json --data ./incoming --top-n 20`,
	RunE: runDrift,
}

func init() {
	rootCmd.AddCommand(driftCmd)
	driftCmd.Flags().StringVarP(&driftModel, "model", "m", "", "path to model JSON (required)")
	driftCmd.Flags().StringVar(&driftData, "data", "", "CSV file or directory (required)")
	driftCmd.Flags().IntVar(&driftTopN, "top-n", 10, "number of shifted tokens to show")
	driftCmd.MarkFlagRequired("model")
	driftCmd.MarkFlagRequired("data")
}

func runDrift(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	artifact, err := store.ReadFile(driftModel)
	if err != nil {
		return err
	}

	walker := fs.NewWalker(cfg.Train.Includes, cfg.Train.Excludes)
	files, err := walker.Walk(driftData)
	if err != nil {
		return fmt.Errorf("failed to scan dataset path: %w", err)
	}
	examples, err := dataset.LoadFiles(files)
	if err != nil {
		return err
	}

	texts := make([]string, len(examples))
	for i, example := range examples {
		texts[i] = example.Text
	}

	report, err := monitor.Report(artifact, texts, driftTopN)
	if err != nil {
		return err
	}

	output, _ := json.MarshalIndent(report, "", "  ")
	fmt.Println(string(output))
	return nil
}
