package ocrpipeline

import "github.com/ocrlite/ocrlite/internal/recognizer"

// OcrResult is the pipeline's final output for one image: recognized text
// grouped into reading-order lines, plus the mean per-region confidence.
type OcrResult struct {
	Text       string
	Lines      [][]recognizer.Result
	Confidence float64
}
