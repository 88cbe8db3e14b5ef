package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"spamsift/internal/adapter/classifier"
	"spamsift/internal/adapter/store"
)

var (
	explainModel string
	explainText  string
	explainTopK  int
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain a prediction token by token",
	Long: `Show which tokens pushed a prediction toward either label, ranked by
the size of their pull on the log-odds.

Examples:
  spamsift explain --model model.json --text "Free prize meeting" --top-k 5`,
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
	explainCmd.Flags().StringVarP(&explainModel, "model", "m", "", "path to model JSON (required)")
	explainCmd.Flags().StringVarP(&explainText, "text", "t", "", "text to explain (required)")
	explainCmd.Flags().IntVarP(&explainTopK, "top-k", "k", 8, "number of tokens to highlight")
	explainCmd.MarkFlagRequired("model")
	explainCmd.MarkFlagRequired("text")
}

func runExplain(cmd *cobra.Command, args []string) error {
	artifact, err := store.ReadFile(explainModel)
	if err != nil {
		return err
	}

	explanation, err := classifier.NewClassifier(artifact).Explain(explainText, explainTopK)
	if err != nil {
		return err
	}

	output, _ := json.MarshalIndent(explanation, "", "  ")
	fmt.Println(string(output))
	return nil
}
