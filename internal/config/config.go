package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ocrlite/ocrlite/internal/detector"
	"github.com/ocrlite/ocrlite/internal/ocrpipeline"
	"github.com/ocrlite/ocrlite/internal/onnxgw"
	"github.com/ocrlite/ocrlite/internal/recognizer"
)

const (
	infoLevel  = "info"
	textFormat = "text"
)

// DefaultConfig returns a configuration with the pipeline's documented
// defaults (§4.3/§4.4) plus sensible ambient values.
func DefaultConfig() Config {
	det := detector.DefaultConfig()
	rec := recognizer.DefaultConfig()
	return Config{
		LogLevel: infoLevel,
		Verbose:  false,
		Detector: DetectorConfig{
			MaxSideLength:        det.MaxSideLength,
			TextPixelThreshold:   det.TextPixelThreshold,
			MinimumAreaThreshold: det.MinimumAreaThreshold,
			PaddingBoxVertical:   det.PaddingBoxVertical,
			PaddingBoxHorizontal: det.PaddingBoxHorizontal,
		},
		Recognizer: RecognizerConfig{
			ImageHeight: rec.ImageHeight,
		},
		Output: OutputConfig{
			Format:              textFormat,
			ConfidencePrecision: 2,
		},
		GPU: GPUConfig{
			Enabled: false,
		},
		Metrics: MetricsConfig{
			Addr: "",
		},
	}
}

// Validate checks that required model paths are set and numeric fields are
// within sane ranges.
func (c *Config) Validate() error {
	if c.Detector.ModelPath == "" {
		return fmt.Errorf("config: detector.model_path is required")
	}
	if c.Recognizer.ModelPath == "" {
		return fmt.Errorf("config: recognizer.model_path is required")
	}
	if c.Recognizer.DictPath == "" {
		return fmt.Errorf("config: recognizer.dict_path is required")
	}
	if c.Detector.MaxSideLength <= 0 {
		return fmt.Errorf("config: detector.max_side_length must be positive, got %d", c.Detector.MaxSideLength)
	}
	if c.Recognizer.ImageHeight <= 0 {
		return fmt.Errorf("config: recognizer.image_height must be positive, got %d", c.Recognizer.ImageHeight)
	}
	if c.Detector.TextPixelThreshold < 0 || c.Detector.TextPixelThreshold > 1 {
		return fmt.Errorf("config: detector.text_pixel_threshold must be in [0,1], got %f", c.Detector.TextPixelThreshold)
	}
	if c.GPU.MemoryLimit != "" {
		if _, err := parseMemoryLimit(c.GPU.MemoryLimit); err != nil {
			return fmt.Errorf("config: gpu.memory_limit: %w", err)
		}
	}
	switch c.Output.Format {
	case "text", "json", "csv":
	default:
		return fmt.Errorf("config: output.format must be one of text|json|csv, got %q", c.Output.Format)
	}
	return nil
}

// parseMemoryLimit parses a human memory limit ("1GB", "512MB", or a plain
// byte count) into bytes.
func parseMemoryLimit(limit string) (uint64, error) {
	limit = strings.TrimSpace(strings.ToUpper(limit))

	// Two-letter suffixes are checked before the bare "B", which every one
	// of them also ends with.
	multipliers := []struct {
		suffix     string
		multiplier uint64
	}{
		{"KB", 1024},
		{"MB", 1024 * 1024},
		{"GB", 1024 * 1024 * 1024},
		{"TB", 1024 * 1024 * 1024 * 1024},
		{"B", 1},
	}

	for _, m := range multipliers {
		suffix, multiplier := m.suffix, m.multiplier
		if strings.HasSuffix(limit, suffix) {
			numStr := strings.TrimSuffix(limit, suffix)
			num, err := strconv.ParseFloat(numStr, 64)
			if err != nil {
				return 0, fmt.Errorf("invalid memory limit %q: %w", limit, err)
			}
			return uint64(num * float64(multiplier)), nil
		}
	}

	num, err := strconv.ParseUint(limit, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid memory limit %q: %w", limit, err)
	}
	return num, nil
}

// toGPUConfig translates the user-facing GPU config into onnxgw's runtime shape.
func (c *Config) toGPUConfig() (onnxgw.GPUConfig, error) {
	gpu := onnxgw.DefaultGPUConfig()
	gpu.UseGPU = c.GPU.Enabled
	gpu.DeviceID = c.GPU.DeviceID
	if c.GPU.MemoryLimit != "" {
		limit, err := parseMemoryLimit(c.GPU.MemoryLimit)
		if err != nil {
			return onnxgw.GPUConfig{}, err
		}
		gpu.GPUMemLimit = limit
	}
	return gpu, nil
}

// ToPipelineConfig builds an ocrpipeline.Config from the loaded
// configuration. dict is the already-tokenized recognition dictionary,
// loaded separately via internal/modelio since it is not expressible as a
// scalar config value.
func (c *Config) ToPipelineConfig(dict []string) (ocrpipeline.Config, error) {
	gpu, err := c.toGPUConfig()
	if err != nil {
		return ocrpipeline.Config{}, err
	}

	detCfg := detector.DefaultConfig()
	detCfg.ModelPath = c.Detector.ModelPath
	detCfg.Padding = c.Detector.Padding
	detCfg.MaxSideLength = c.Detector.MaxSideLength
	detCfg.TextPixelThreshold = c.Detector.TextPixelThreshold
	detCfg.MinimumAreaThreshold = c.Detector.MinimumAreaThreshold
	detCfg.PaddingBoxVertical = c.Detector.PaddingBoxVertical
	detCfg.PaddingBoxHorizontal = c.Detector.PaddingBoxHorizontal
	detCfg.GPU = gpu

	recCfg := recognizer.DefaultConfig()
	recCfg.ModelPath = c.Recognizer.ModelPath
	recCfg.ImageHeight = c.Recognizer.ImageHeight
	recCfg.Dictionary = dict
	recCfg.GPU = gpu

	return ocrpipeline.Config{Detector: detCfg, Recognizer: recCfg}, nil
}
