package onnxgw

import (
	"strconv"

	onnxruntime "github.com/yalue/onnxruntime_go"

	"github.com/ocrlite/ocrlite/internal/ocrerr"
)

// GPUConfig configures CUDA execution for a session, passed straight through
// by cmd/ocrlite's --gpu flags. UseGPU=false leaves the session on CPU.
type GPUConfig struct {
	UseGPU                bool
	DeviceID              int
	GPUMemLimit           uint64
	ArenaExtendStrategy   string // "kNextPowerOfTwo" or "kSameAsRequested"
	CUDNNConvAlgoSearch   string // "EXHAUSTIVE", "HEURISTIC", or "DEFAULT"
	DoCopyInDefaultStream bool
}

// DefaultGPUConfig returns CPU-only defaults.
func DefaultGPUConfig() GPUConfig {
	return GPUConfig{
		ArenaExtendStrategy:   "kNextPowerOfTwo",
		CUDNNConvAlgoSearch:   "DEFAULT",
		DoCopyInDefaultStream: true,
	}
}

// Validate checks the fields that have a fixed set of legal values.
func (c GPUConfig) Validate() error {
	if !c.UseGPU {
		return nil
	}
	if c.DeviceID < 0 {
		return ocrerr.Wrapf(ocrerr.Config, "GPUConfig.Validate", "device ID must be non-negative, got %d", c.DeviceID)
	}
	switch c.ArenaExtendStrategy {
	case "", "kNextPowerOfTwo", "kSameAsRequested":
	default:
		return ocrerr.Wrapf(ocrerr.Config, "GPUConfig.Validate", "invalid arena extend strategy %q", c.ArenaExtendStrategy)
	}
	switch c.CUDNNConvAlgoSearch {
	case "", "EXHAUSTIVE", "HEURISTIC", "DEFAULT":
	default:
		return ocrerr.Wrapf(ocrerr.Config, "GPUConfig.Validate", "invalid cudnn conv algo search %q", c.CUDNNConvAlgoSearch)
	}
	return nil
}

// configureSessionForGPU appends a CUDA execution provider to sessionOptions
// when requested. Failure to configure GPU is returned to the caller rather
// than silently falling back, so callers can decide whether to retry CPU-only.
func configureSessionForGPU(sessionOptions *onnxruntime.SessionOptions, cfg GPUConfig) error {
	if !cfg.UseGPU {
		return nil
	}
	cudaOpts, err := onnxruntime.NewCUDAProviderOptions()
	if err != nil {
		return ocrerr.Wrap(ocrerr.Inference, "configureSessionForGPU", err)
	}
	defer cudaOpts.Destroy() //nolint:errcheck // best-effort cleanup

	settings := map[string]string{
		"device_id": strconv.Itoa(cfg.DeviceID),
	}
	if cfg.GPUMemLimit > 0 {
		settings["gpu_mem_limit"] = strconv.FormatUint(cfg.GPUMemLimit, 10)
	}
	if cfg.ArenaExtendStrategy != "" {
		settings["arena_extend_strategy"] = cfg.ArenaExtendStrategy
	}
	if cfg.CUDNNConvAlgoSearch != "" {
		settings["cudnn_conv_algo_search"] = cfg.CUDNNConvAlgoSearch
	}
	if cfg.DoCopyInDefaultStream {
		settings["do_copy_in_default_stream"] = "1"
	} else {
		settings["do_copy_in_default_stream"] = "0"
	}

	if err := cudaOpts.Update(settings); err != nil {
		return ocrerr.Wrap(ocrerr.Inference, "configureSessionForGPU", err)
	}
	if err := sessionOptions.AppendExecutionProviderCUDA(cudaOpts); err != nil {
		return ocrerr.Wrap(ocrerr.Inference, "configureSessionForGPU", err)
	}
	return nil
}
