package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"spamsift/internal/adapter/classifier"
	"spamsift/internal/adapter/store"
)

var (
	predictModel string
	predictText  string
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Classify a message with a saved model",
	Long: `Classify a single message against a saved model.

Examples:
  spamsift predict --model model.json --text "You won a free prize"`,
	RunE: runPredict,
}

func init() {
	rootCmd.AddCommand(predictCmd)
	predictCmd.Flags().StringVarP(&predictModel, "model", "m", "", "path to model JSON (required)")
	predictCmd.Flags().StringVarP(&predictText, "text", "t", "", "text to classify (required)")
	predictCmd.MarkFlagRequired("model")
	predictCmd.MarkFlagRequired("text")
}

func runPredict(cmd *cobra.Command, args []string) error {
	artifact, err := store.ReadFile(predictModel)
	if err != nil {
		return err
	}

	prediction, err := classifier.NewClassifier(artifact).Predict(predictText)
	if err != nil {
		return err
	}

	output, _ := json.MarshalIndent(prediction, "", "  ")
	fmt.Println(string(output))
	return nil
}
