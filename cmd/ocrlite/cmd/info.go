package cmd

import (
	"fmt"

	"github.com/ocrlite/ocrlite/internal/modelio"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the resolved configuration and model availability",
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfigWithoutValidation()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ocrlite %s\n", Version)
	fmt.Fprintf(out, "config file: %s\n\n", getConfigLoader().GetConfigFileUsed())

	fmt.Fprintf(out, "detector.model_path: %s (%s)\n", cfg.Detector.ModelPath, modelStatus(cfg.Detector.ModelPath))
	fmt.Fprintf(out, "recognizer.model_path: %s (%s)\n", cfg.Recognizer.ModelPath, modelStatus(cfg.Recognizer.ModelPath))
	fmt.Fprintf(out, "recognizer.dict_path: %s (%s)\n", cfg.Recognizer.DictPath, modelStatus(cfg.Recognizer.DictPath))
	fmt.Fprintf(out, "output.format: %s\n", cfg.Output.Format)
	fmt.Fprintf(out, "gpu.enabled: %t\n", cfg.GPU.Enabled)
	return nil
}

func modelStatus(path string) string {
	if err := modelio.ModelPathExists(path); err != nil {
		return "missing"
	}
	return "found"
}
