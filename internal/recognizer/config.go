// Package recognizer implements the text-recognition stage: crop each
// detected box, height-normalize it, run the PP-OCR recognition model, and
// CTC-decode its logits into text.
package recognizer

import "github.com/ocrlite/ocrlite/internal/onnxgw"

// Config holds recognition-time parameters. Mean/Norm follow the same
// normalization convention as detector.Config.
type Config struct {
	ModelPath string

	Mean [3]float32
	Norm [3]float32

	ImageHeight int

	// Dictionary is the ordered character set; index 0 is the CTC blank and
	// is never emitted. Dictionary[i] is the glyph for class i.
	Dictionary []string

	GPU onnxgw.GPUConfig
}

// DefaultConfig returns the PP-OCR recognition defaults. Dictionary must
// still be supplied by the caller.
func DefaultConfig() Config {
	return Config{
		Mean:        [3]float32{123.675, 116.28, 103.53},
		Norm:        [3]float32{1.0 / (0.229 * 255), 1.0 / (0.224 * 255), 1.0 / (0.225 * 255)},
		ImageHeight: 48,
		GPU:         onnxgw.DefaultGPUConfig(),
	}
}
