package ocrpipeline

import (
	"github.com/ocrlite/ocrlite/internal/detector"
	"github.com/ocrlite/ocrlite/internal/recognizer"
)

// Config wires the detector and recognizer into one end-to-end pipeline.
type Config struct {
	Detector   detector.Config
	Recognizer recognizer.Config
}

// DefaultConfig returns detector/recognizer defaults with no outer padding.
func DefaultConfig() Config {
	return Config{
		Detector:   detector.DefaultConfig(),
		Recognizer: recognizer.DefaultConfig(),
	}
}
