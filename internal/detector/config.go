// Package detector implements the text-detection stage: preprocess an
// ImageBuffer, run the PP-OCR detection model through an onnxgw.Gateway, and
// turn its dense probability map into source-coordinate text boxes.
package detector

import "github.com/ocrlite/ocrlite/internal/onnxgw"

// Config holds detection-time parameters. Mean/Norm follow the teacher's
// normalization convention: out = src*Norm - Mean*Norm, algebraically
// equivalent to (src/255 - mean)/std once Mean is the ImageNet mean scaled by
// 255 and Norm is 1/(255*std).
type Config struct {
	ModelPath string

	// Padding is outer whitespace added by the pipeline before detection;
	// the detector itself does not apply it, but carries it so Config can
	// be the single source of truth the pipeline reads from.
	Padding int

	Mean [3]float32
	Norm [3]float32

	MaxSideLength        int
	TextPixelThreshold   float32
	MinimumAreaThreshold int
	PaddingBoxVertical   float32
	PaddingBoxHorizontal float32

	GPU onnxgw.GPUConfig
}

// DefaultConfig returns the PP-OCR detection defaults.
func DefaultConfig() Config {
	return Config{
		Mean:                 [3]float32{123.675, 116.28, 103.53},
		Norm:                 [3]float32{1.0 / (0.229 * 255), 1.0 / (0.224 * 255), 1.0 / (0.225 * 255)},
		MaxSideLength:        960,
		TextPixelThreshold:   0.5,
		MinimumAreaThreshold: 20,
		PaddingBoxVertical:   0.4,
		PaddingBoxHorizontal: 0.6,
		GPU:                  onnxgw.DefaultGPUConfig(),
	}
}
