// Package config loads ocrlite's configuration from a YAML file, the
// OCRLITE_-prefixed environment, and command-line flags, in that precedence
// order (flags last, via viper's standard binding).
package config

// Config is the complete configuration surface for the ocrlite CLI.
type Config struct {
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	Detector   DetectorConfig   `mapstructure:"detector" yaml:"detector" json:"detector"`
	Recognizer RecognizerConfig `mapstructure:"recognizer" yaml:"recognizer" json:"recognizer"`
	Output     OutputConfig     `mapstructure:"output" yaml:"output" json:"output"`
	GPU        GPUConfig        `mapstructure:"gpu" yaml:"gpu" json:"gpu"`
	Metrics    MetricsConfig    `mapstructure:"metrics" yaml:"metrics" json:"metrics"`
}

// DetectorConfig mirrors detector.Config's tunable fields (§4.3).
type DetectorConfig struct {
	ModelPath            string  `mapstructure:"model_path" yaml:"model_path" json:"model_path"`
	Padding              int     `mapstructure:"padding" yaml:"padding" json:"padding"`
	MaxSideLength        int     `mapstructure:"max_side_length" yaml:"max_side_length" json:"max_side_length"`
	TextPixelThreshold   float32 `mapstructure:"text_pixel_threshold" yaml:"text_pixel_threshold" json:"text_pixel_threshold"`
	MinimumAreaThreshold int     `mapstructure:"minimum_area_threshold" yaml:"minimum_area_threshold" json:"minimum_area_threshold"`
	PaddingBoxVertical   float32 `mapstructure:"padding_box_vertical" yaml:"padding_box_vertical" json:"padding_box_vertical"`
	PaddingBoxHorizontal float32 `mapstructure:"padding_box_horizontal" yaml:"padding_box_horizontal" json:"padding_box_horizontal"`
}

// RecognizerConfig mirrors recognizer.Config's tunable fields (§4.4).
type RecognizerConfig struct {
	ModelPath   string `mapstructure:"model_path" yaml:"model_path" json:"model_path"`
	DictPath    string `mapstructure:"dict_path" yaml:"dict_path" json:"dict_path"`
	ImageHeight int    `mapstructure:"image_height" yaml:"image_height" json:"image_height"`
}

// OutputConfig controls how the CLI renders an OcrResult.
type OutputConfig struct {
	Format              string `mapstructure:"format" yaml:"format" json:"format"`
	File                string `mapstructure:"file" yaml:"file" json:"file"`
	ConfidencePrecision int    `mapstructure:"confidence_precision" yaml:"confidence_precision" json:"confidence_precision"`
}

// GPUConfig mirrors onnxgw.GPUConfig's fields, exposed separately so it can
// be loaded from YAML/env/flags before being translated into the gateway type.
type GPUConfig struct {
	Enabled     bool   `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	DeviceID    int    `mapstructure:"device_id" yaml:"device_id" json:"device_id"`
	MemoryLimit string `mapstructure:"memory_limit" yaml:"memory_limit" json:"memory_limit"`
}

// MetricsConfig controls the optional debug metrics listener. A non-empty
// Addr starts a promhttp listener exposing internal/obsmetrics' histograms.
type MetricsConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr" json:"addr"`
}
