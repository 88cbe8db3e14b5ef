package cli

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"spamsift/config"
	"spamsift/internal/adapter/analyzer"
	"spamsift/internal/adapter/classifier"
	"spamsift/internal/adapter/dataset"
	"spamsift/internal/adapter/fs"
	"spamsift/internal/adapter/store"
	"spamsift/internal/port"
	"spamsift/internal/usecase"
)

var (
	trainData      string
	trainOutput    string
	trainName      string
	trainBigrams   bool
	trainRedact    bool
	trainModelCard string
	trainNoRecord  bool
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train a model from CSV data",
	Long: `Train a Naive Bayes model from CSV files with 'text' and 'label' columns.
The --data path may be a single file or a directory scanned with the
configured include/exclude globs.

Examples:
  spamsift train --data spam.csv --output model.json
  spamsift train --data ./datasets --output model.json --bigrams --redact
  spamsift train --data spam.csv --output model.json --model-card card.md`,
	RunE: runTrain,
}

func init() {
	rootCmd.AddCommand(trainCmd)
	trainCmd.Flags().StringVar(&trainData, "data", "", "CSV file or directory of CSV files (required)")
	trainCmd.Flags().StringVarP(&trainOutput, "output", "o", "", "path to write the model JSON (required)")
	trainCmd.Flags().StringVar(&trainName, "name", "default", "registry name for the trained model")
	trainCmd.Flags().BoolVar(&trainBigrams, "bigrams", false, "enable bigram features")
	trainCmd.Flags().BoolVar(&trainRedact, "redact", false, "redact emails, URLs, and numbers before tokenizing")
	trainCmd.Flags().StringVar(&trainModelCard, "model-card", "", "optional path to write a model card markdown file")
	trainCmd.Flags().BoolVar(&trainNoRecord, "no-registry", false, "skip recording the model in the registry")
	trainCmd.MarkFlagRequired("data")
	trainCmd.MarkFlagRequired("output")
}

func runTrain(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	tokCfg := cfg.Tokenizer
	if trainBigrams {
		tokCfg.UseBigrams = true
	}
	if trainRedact {
		tokCfg.Redact = true
	}

	tokenizer := analyzer.NewTokenizer(tokCfg, analyzer.NewPIIRedactor())
	trainer := classifier.NewTrainer(tokenizer, tokCfg, cfg.Labels.Positive, cfg.Labels.Negative)
	walker := fs.NewWalker(cfg.Train.Includes, cfg.Train.Excludes)

	var registry *store.BoltRegistry
	if !trainNoRecord {
		if err := config.EnsureStateDir(GetRootDir()); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}
		var err error
		registry, err = store.NewBoltRegistry(config.RegistryPath(GetRootDir()))
		if err != nil {
			return fmt.Errorf("failed to open model registry: %w", err)
		}
		defer registry.Close()
	}

	var reg port.ModelRegistry
	if registry != nil {
		reg = registry
	}
	trainUC := usecase.NewTrainUseCase(walker, trainer, reg)

	var bar *progressbar.ProgressBar
	progress := func(processed, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Training[reset]"),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		bar.Set(processed)
	}

	result, err := trainUC.Train(trainData, trainOutput, trainName, progress)
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	fmt.Printf("\nTraining complete:\n")
	fmt.Printf("  Files loaded:    %d\n", result.FilesLoaded)
	fmt.Printf("  Examples used:   %d\n", result.ExamplesUsed)
	fmt.Printf("  Vocabulary size: %d\n", result.Artifact.VocabularySize)
	fmt.Printf("  Model written:   %s\n", result.OutputPath)
	if result.RegistryEntry != "" {
		fmt.Printf("  Registry entry:  %s\n", result.RegistryEntry)
	}

	if trainModelCard != "" {
		files, err := walker.Walk(trainData)
		if err != nil {
			return err
		}
		examples, err := dataset.LoadFiles(files)
		if err != nil {
			return err
		}
		c := classifier.NewClassifier(result.Artifact)
		metrics, err := usecase.Evaluate(c, examples, cfg.Labels.Positive)
		if err != nil {
			return fmt.Errorf("failed to score training data for the model card: %w", err)
		}
		card := usecase.BuildModelCard(c, trainName, metrics)
		if err := os.WriteFile(trainModelCard, []byte(card), 0644); err != nil {
			return fmt.Errorf("failed to write model card: %w", err)
		}
		fmt.Printf("  Model card:      %s\n", trainModelCard)
	}

	return nil
}
