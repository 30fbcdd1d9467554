// Package ocrpipeline orchestrates the detector and recognizer into a single
// end-to-end OCR call over one image buffer.
package ocrpipeline

import (
	"context"

	"github.com/ocrlite/ocrlite/internal/detector"
	"github.com/ocrlite/ocrlite/internal/imagebuf"
	"github.com/ocrlite/ocrlite/internal/obsmetrics"
	"github.com/ocrlite/ocrlite/internal/ocrerr"
	"github.com/ocrlite/ocrlite/internal/onnxgw"
	"github.com/ocrlite/ocrlite/internal/recognizer"
)

// Pipeline runs detection then recognition over raw image bytes and returns
// grouped, reading-ordered text.
type Pipeline struct {
	cfg        Config
	detector   *detector.Detector
	recognizer *recognizer.Recognizer
}

// New constructs the detector and recognizer sessions through gw.
func New(ctx context.Context, gw onnxgw.Gateway, cfg Config) (*Pipeline, error) {
	det, err := detector.New(ctx, gw, cfg.Detector)
	if err != nil {
		return nil, ocrerr.Wrap(ocrerr.Config, "ocrpipeline.New", err)
	}
	rec, err := recognizer.New(ctx, gw, cfg.Recognizer)
	if err != nil {
		_ = det.Close()
		return nil, ocrerr.Wrap(ocrerr.Config, "ocrpipeline.New", err)
	}
	return &Pipeline{cfg: cfg, detector: det, recognizer: rec}, nil
}

// Close releases both inference sessions. Idempotent and best-effort: it
// reports the detector's error, if any, but always attempts the recognizer
// close too.
func (p *Pipeline) Close() error {
	var detErr error
	if p.detector != nil {
		detErr = p.detector.Close()
	}
	var recErr error
	if p.recognizer != nil {
		recErr = p.recognizer.Close()
	}
	if detErr != nil {
		return detErr
	}
	return recErr
}

// Recognize runs detection then recognition over an interleaved raw pixel
// buffer of the given width/height and returns the reading-order recognition
// results (§6: `pipeline.recognize(input) → list of RecognitionResult`). The
// channel count is inferred from len(data) and must divide evenly into 1..4
// per §4.5 step 1; anything else is fatal. Call ProcessRecognition on the
// result to obtain the grouped OcrResult.
func (p *Pipeline) Recognize(ctx context.Context, data []byte, width, height int) ([]recognizer.Result, error) {
	timer := obsmetrics.StartStage("pipeline.recognize")
	defer timer.ObserveDuration()

	channels, err := inferChannels(data, width, height)
	if err != nil {
		return nil, err
	}

	buf, err := imagebuf.New(width, height, channels, data)
	if err != nil {
		return nil, ocrerr.Wrap(ocrerr.Input, "Pipeline.Recognize", err)
	}

	if p.cfg.Detector.Padding > 0 {
		padded, err := buf.Pad(imagebuf.PadOptions{
			Padding: p.cfg.Detector.Padding,
			Color:   [4]byte{255, 255, 255, 255},
		})
		if err != nil {
			return nil, ocrerr.Wrap(ocrerr.Input, "Pipeline.Recognize", err)
		}
		buf = padded
	}

	boxes, err := p.detector.Run(ctx, buf)
	if err != nil {
		return nil, err
	}
	obsmetrics.ObserveRegionsDetected(len(boxes))

	return p.recognizer.Run(ctx, buf, boxes)
}

// ProcessRecognition groups reading-order recognition results into
// reading-order lines and joins them into text (§4.5 step 5, §6:
// `pipeline.processRecognition(results) → OcrResult`). Confidence is the
// arithmetic mean of the per-result confidences.
func (p *Pipeline) ProcessRecognition(results []recognizer.Result) *OcrResult {
	timer := obsmetrics.StartStage("pipeline.process_recognition")
	defer timer.ObserveDuration()

	lines := groupLines(results)
	text := joinLines(lines)
	obsmetrics.ObserveTextLength(len(text))

	return &OcrResult{
		Text:       text,
		Lines:      lines,
		Confidence: meanConfidence(results),
	}
}

func inferChannels(data []byte, width, height int) (int, error) {
	area := width * height
	if area <= 0 {
		return 0, ocrerr.Wrapf(ocrerr.Input, "Pipeline.Recognize", "invalid image dimensions %dx%d", width, height)
	}
	if len(data)%area != 0 {
		channelRatio := float64(len(data)) / float64(area)
		return 0, ocrerr.Wrapf(ocrerr.Input, "Pipeline.Recognize",
			"data length %d is not a whole multiple of width*height=%d (computed channel count %.4f)",
			len(data), area, channelRatio)
	}
	channels := len(data) / area
	if channels < 1 || channels > 4 {
		return 0, ocrerr.Wrapf(ocrerr.Input, "Pipeline.Recognize",
			"inferred channel count %d out of range 1..4", channels)
	}
	return channels, nil
}

func meanConfidence(results []recognizer.Result) float64 {
	if len(results) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range results {
		sum += r.Confidence
	}
	return sum / float64(len(results))
}
