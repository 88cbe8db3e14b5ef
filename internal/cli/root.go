package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"spamsift/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "spamsift",
	Short: "spamsift - train, inspect, and serve a transparent spam classifier",
	Long: `spamsift trains a multinomial Naive Bayes spam classifier on labeled CSV
data, explains its predictions token by token, and monitors datasets for
distribution drift.

Example usage:
  spamsift train --data ./data --output model.json   # Train a model
  spamsift predict --model model.json --text "..."   # Classify a message
  spamsift explain --model model.json --text "..."   # Attribute a prediction
  spamsift drift --model model.json --data new.csv   # Check for drift`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./spamsift.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
