package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"spamsift/internal/adapter/classifier"
	"spamsift/internal/adapter/dataset"
	"spamsift/internal/adapter/fs"
	"spamsift/internal/adapter/store"
	"spamsift/internal/usecase"
)

var (
	evalModel    string
	evalData     string
	evalPositive string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a saved model against labeled data",
	Long: `Predict every example in a labeled dataset and report precision,
recall, F1, and accuracy against the positive label.

Examples:
  spamsift evaluate --model model.json --data holdout.csv
  spamsift evaluate --model model.json --data ./datasets --positive-label spam`,
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
	evaluateCmd.Flags().StringVarP(&evalModel, "model", "m", "", "path to model JSON (required)")
	evaluateCmd.Flags().StringVar(&evalData, "data", "", "CSV file or directory (required)")
	evaluateCmd.Flags().StringVar(&evalPositive, "positive-label", "", "label treated as positive (default from config)")
	evaluateCmd.MarkFlagRequired("model")
	evaluateCmd.MarkFlagRequired("data")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	positive := cfg.Labels.Positive
	if evalPositive != "" {
		positive = evalPositive
	}

	artifact, err := store.ReadFile(evalModel)
	if err != nil {
		return err
	}

	walker := fs.NewWalker(cfg.Train.Includes, cfg.Train.Excludes)
	files, err := walker.Walk(evalData)
	if err != nil {
		return fmt.Errorf("failed to scan dataset path: %w", err)
	}
	examples, err := dataset.LoadFiles(files)
	if err != nil {
		return err
	}

	metrics, err := usecase.Evaluate(classifier.NewClassifier(artifact), examples, positive)
	if err != nil {
		return err
	}

	output, _ := json.MarshalIndent(metrics, "", "  ")
	fmt.Println(string(output))
	return nil
}
