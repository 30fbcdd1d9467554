package recognizer

import "github.com/ocrlite/ocrlite/internal/imagebuf"

// Result is one recognized text box, in source-image coordinates.
type Result struct {
	Text       string
	Box        imagebuf.Box
	Confidence float64 // NaN when no CTC step survived decoding
}
