package cli

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"spamsift/config"
	"spamsift/internal/adapter/cache"
	"spamsift/internal/adapter/classifier"
	"spamsift/internal/adapter/store"
	"spamsift/internal/api"
	"spamsift/internal/domain"
)

var (
	serveModel string
	serveHost  string
	servePort  int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP inference service",
	Long: `Serve predictions, explanations, and the model card over HTTP, with a
preview page at /. Without --model, the most recently trained model from the
registry is served.

Examples:
  spamsift serve --model model.json
  spamsift serve --port 9000`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveModel, "model", "m", "", "path to model JSON (default: latest registry model)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "bind host (default from config)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "bind port (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	var artifact *domain.Artifact
	modelName := "default"
	if serveModel != "" {
		var err error
		artifact, err = store.ReadFile(serveModel)
		if err != nil {
			return err
		}
		modelName = serveModel
	} else {
		registry, err := store.NewBoltRegistry(config.RegistryPath(GetRootDir()))
		if err != nil {
			return fmt.Errorf("failed to open model registry: %w", err)
		}
		modelName, artifact, err = registry.Latest()
		registry.Close()
		if err != nil {
			return fmt.Errorf("no model to serve (train one or pass --model): %w", err)
		}
	}

	host := cfg.Serve.Host
	if serveHost != "" {
		host = serveHost
	}
	port := cfg.Serve.Port
	if servePort > 0 {
		port = servePort
	}

	predictionCache := cache.NewPredictionCache(
		cfg.Serve.CacheSize,
		time.Duration(cfg.Serve.CacheTTLSeconds)*time.Second,
	)
	server := api.NewServer(
		classifier.NewClassifier(artifact),
		predictionCache,
		modelName,
		cfg.Serve.DetectLanguage,
	)

	addr := fmt.Sprintf("%s:%d", host, port)
	fmt.Printf("Serving model %q at http://%s/\n", modelName, addr)
	return http.ListenAndServe(addr, server.Handler())
}
