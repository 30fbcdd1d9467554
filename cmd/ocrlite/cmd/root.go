// Package cmd implements the ocrlite command-line interface: a root cobra
// command plus `recognize` and `info` subcommands wired to internal/config
// and internal/ocrpipeline.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ocrlite/ocrlite/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set by main from build-time ldflags.
var Version = "dev"

var (
	configLoader *config.Loader
	cfgFile      string
)

var rootCmd = &cobra.Command{
	Use:   "ocrlite",
	Short: "OCR pipeline for text detection and recognition",
	Long: `ocrlite wraps PaddleOCR-compatible PP-OCR detection and recognition
ONNX models behind a single pixel-buffer-in, text-out pipeline.

Examples:
  ocrlite recognize photo.png
  ocrlite recognize *.jpg --format json
  ocrlite info`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is search in ., $HOME, $XDG_CONFIG_HOME/ocrlite or $HOME/.config/ocrlite, /etc/ocrlite)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (equivalent to --log-level=debug)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("detector-model", "", "path to the detection ONNX model")
	rootCmd.PersistentFlags().String("recognizer-model", "", "path to the recognition ONNX model")
	rootCmd.PersistentFlags().String("dict", "", "path to the recognition dictionary")
	rootCmd.PersistentFlags().Bool("gpu", false, "run inference on GPU")
	rootCmd.PersistentFlags().String("metrics-addr", "", "address for the debug /metrics listener (empty disables it)")
	rootCmd.PersistentFlags().String("format", "text", "output format (text, json, csv)")

	bindings := map[string]string{
		"verbose":          "verbose",
		"log-level":        "log_level",
		"detector-model":   "detector.model_path",
		"recognizer-model": "recognizer.model_path",
		"dict":             "recognizer.dict_path",
		"gpu":              "gpu.enabled",
		"metrics-addr":     "metrics.addr",
		"format":           "output.format",
	}
	for flag, key := range bindings {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", flag, err))
		}
	}
}

func initConfig() {
	configLoader = config.NewLoader()
}

// loadConfig loads, validates, and applies logging for the resolved
// configuration, searching an explicit --config path first.
func loadConfig() (*config.Config, error) {
	loader := getConfigLoader()
	var cfg *config.Config
	var err error
	if cfgFile != "" {
		cfg, err = loader.LoadWithFile(cfgFile)
	} else {
		cfg, err = loader.Load()
	}
	if err != nil {
		return nil, err
	}
	setupLogging(cfg)
	return cfg, nil
}

// loadConfigWithoutValidation is used by subcommands (like `info`) that want
// to inspect a possibly-incomplete configuration without failing on it.
func loadConfigWithoutValidation() (*config.Config, error) {
	cfg, err := getConfigLoader().LoadWithoutValidation()
	if err != nil {
		return nil, err
	}
	setupLogging(cfg)
	return cfg, nil
}

func getConfigLoader() *config.Loader {
	if configLoader == nil {
		configLoader = config.NewLoader()
	}
	return configLoader
}

func setupLogging(cfg *config.Config) {
	level := slog.LevelInfo
	switch {
	case cfg.Verbose:
		level = slog.LevelDebug
	case cfg.LogLevel == "debug":
		level = slog.LevelDebug
	case cfg.LogLevel == "warn":
		level = slog.LevelWarn
	case cfg.LogLevel == "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
}
