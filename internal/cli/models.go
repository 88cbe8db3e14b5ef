package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"spamsift/config"
	"spamsift/internal/adapter/store"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models recorded in the registry",
	RunE:  runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, args []string) error {
	registry, err := store.NewBoltRegistry(config.RegistryPath(GetRootDir()))
	if err != nil {
		return fmt.Errorf("failed to open model registry: %w", err)
	}
	defer registry.Close()

	models, err := registry.List()
	if err != nil {
		return err
	}
	if len(models) == 0 {
		fmt.Println("No models recorded. Run 'spamsift train' first.")
		return nil
	}

	latest, _, err := registry.Latest()
	if err != nil {
		latest = ""
	}

	fmt.Printf("%-20s %-22s %10s %12s\n", "NAME", "TRAINED AT", "EXAMPLES", "VOCABULARY")
	for _, model := range models {
		marker := " "
		if model.Name == latest {
			marker = "*"
		}
		fmt.Printf("%-20s %-22s %10d %12d %s\n", model.Name, model.TrainedAt, model.DatasetSize, model.VocabularySize, marker)
	}
	return nil
}
