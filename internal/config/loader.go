package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the base name for configuration files (without extension).
	ConfigFileName = "ocrlite"

	// EnvPrefix is the prefix for environment variables.
	EnvPrefix = "OCRLITE"
)

// Loader handles loading configuration from files, environment, and flags.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader bound to the global viper
// instance, so flag bindings set up by cobra keep working.
func NewLoader() *Loader {
	return &Loader{v: viper.GetViper()}
}

// Load reads configuration from file, environment and flags, applies
// defaults, and validates the result.
func (l *Loader) Load() (*Config, error) {
	cfg, err := l.LoadWithoutValidation()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// LoadWithoutValidation is Load without the final Validate call, for
// callers (like `ocrlite info`) that want to inspect a possibly-incomplete
// configuration.
func (l *Loader) LoadWithoutValidation() (*Config, error) {
	l.v.SetConfigName(ConfigFileName)
	l.v.SetConfigType("yaml")
	l.addConfigPaths()
	l.setupEnvironmentVariables()
	l.setDefaults()

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// LoadWithFile loads configuration from an explicit file path.
func (l *Loader) LoadWithFile(configFile string) (*Config, error) {
	if configFile == "" {
		return l.Load()
	}
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configFile)
	}

	l.v.SetConfigFile(configFile)
	l.setupEnvironmentVariables()
	l.setDefaults()

	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// GetConfigFileUsed returns the path of the config file actually loaded.
func (l *Loader) GetConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// GetViper returns the underlying viper instance for cobra flag binding.
func (l *Loader) GetViper() *viper.Viper {
	return l.v
}

func (l *Loader) addConfigPaths() {
	l.v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		l.v.AddConfigPath(home)
	}
	if configDir, exists := os.LookupEnv("XDG_CONFIG_HOME"); exists {
		l.v.AddConfigPath(filepath.Join(configDir, "ocrlite"))
	} else if home, err := os.UserHomeDir(); err == nil {
		l.v.AddConfigPath(filepath.Join(home, ".config", "ocrlite"))
	}
	l.v.AddConfigPath("/etc/ocrlite")
}

func (l *Loader) setupEnvironmentVariables() {
	l.v.SetEnvPrefix(EnvPrefix)
	l.v.AutomaticEnv()
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
}

func (l *Loader) setDefaults() {
	defaults := DefaultConfig()

	l.v.SetDefault("log_level", defaults.LogLevel)
	l.v.SetDefault("verbose", defaults.Verbose)

	l.v.SetDefault("detector.model_path", defaults.Detector.ModelPath)
	l.v.SetDefault("detector.padding", defaults.Detector.Padding)
	l.v.SetDefault("detector.max_side_length", defaults.Detector.MaxSideLength)
	l.v.SetDefault("detector.text_pixel_threshold", defaults.Detector.TextPixelThreshold)
	l.v.SetDefault("detector.minimum_area_threshold", defaults.Detector.MinimumAreaThreshold)
	l.v.SetDefault("detector.padding_box_vertical", defaults.Detector.PaddingBoxVertical)
	l.v.SetDefault("detector.padding_box_horizontal", defaults.Detector.PaddingBoxHorizontal)

	l.v.SetDefault("recognizer.model_path", defaults.Recognizer.ModelPath)
	l.v.SetDefault("recognizer.dict_path", defaults.Recognizer.DictPath)
	l.v.SetDefault("recognizer.image_height", defaults.Recognizer.ImageHeight)

	l.v.SetDefault("output.format", defaults.Output.Format)
	l.v.SetDefault("output.file", defaults.Output.File)
	l.v.SetDefault("output.confidence_precision", defaults.Output.ConfidencePrecision)

	l.v.SetDefault("gpu.enabled", defaults.GPU.Enabled)
	l.v.SetDefault("gpu.device_id", defaults.GPU.DeviceID)
	l.v.SetDefault("gpu.memory_limit", defaults.GPU.MemoryLimit)

	l.v.SetDefault("metrics.addr", defaults.Metrics.Addr)
}

// GetConfigSearchPaths returns the paths where configuration files are searched.
func GetConfigSearchPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, home)
	}
	if configDir, exists := os.LookupEnv("XDG_CONFIG_HOME"); exists {
		paths = append(paths, filepath.Join(configDir, "ocrlite"))
	} else if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "ocrlite"))
	}
	paths = append(paths, "/etc/ocrlite")
	return paths
}
