package recognizer

import (
	"context"

	"github.com/ocrlite/ocrlite/internal/imagebuf"
	"github.com/ocrlite/ocrlite/internal/ocrerr"
	"github.com/ocrlite/ocrlite/internal/onnxgw"
)

// Recognizer runs the PP-OCR recognition model over detected boxes.
type Recognizer struct {
	cfg         Config
	session     onnxgw.Session
	inputName   string
	outputNames []string
}

// New loads the recognition model through gw.
func New(ctx context.Context, gw onnxgw.Gateway, cfg Config) (*Recognizer, error) {
	inputNames, outputNames, err := gw.Describe(ctx, cfg.ModelPath)
	if err != nil {
		return nil, ocrerr.Wrap(ocrerr.Config, "recognizer.New", err)
	}
	inputName := "x"
	if len(inputNames) > 0 && inputNames[0] != "" {
		inputName = inputNames[0]
	}
	if len(outputNames) == 0 {
		return nil, ocrerr.New(ocrerr.Config, "recognizer.New", "recognition model graph reports no outputs")
	}

	session, err := gw.Load(ctx, cfg.ModelPath, []string{inputName}, outputNames)
	if err != nil {
		return nil, ocrerr.Wrap(ocrerr.Config, "recognizer.New", err)
	}
	return &Recognizer{cfg: cfg, session: session, inputName: inputName, outputNames: outputNames}, nil
}

// Close releases the underlying inference session. Idempotent.
func (r *Recognizer) Close() error {
	if r.session == nil {
		return nil
	}
	err := r.session.Close()
	r.session = nil
	return err
}

// Run recognizes text within each of boxes, cropped from buf, and returns
// results in reading order. Boxes with non-positive width or height are
// dropped per §4.4 step 1. A missing output tensor is fatal.
func (r *Recognizer) Run(ctx context.Context, buf *imagebuf.Buffer, boxes []imagebuf.Box) ([]Result, error) {
	results := make([]Result, 0, len(boxes))
	for _, box := range boxes {
		if box.Width <= 0 || box.Height <= 0 {
			continue
		}
		res, err := r.runOne(ctx, buf, box)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	sortReadingOrder(results)
	return results, nil
}

func (r *Recognizer) runOne(ctx context.Context, buf *imagebuf.Buffer, box imagebuf.Box) (Result, error) {
	cropped, err := buf.CropBox(box)
	if err != nil {
		return Result{}, ocrerr.Wrap(ocrerr.Input, "Recognizer.runOne", err)
	}
	resized, err := cropped.Resize(imagebuf.ResizeOptions{Height: r.cfg.ImageHeight})
	if err != nil {
		return Result{}, ocrerr.Wrap(ocrerr.Input, "Recognizer.runOne", err)
	}
	tensorData := resized.Tensor(imagebuf.TensorOptions{Mean: r.cfg.Mean, Norm: r.cfg.Norm})

	input := onnxgw.Named{
		Name: r.inputName,
		Tensor: onnxgw.Tensor{
			Data:  tensorData,
			Shape: []int64{1, 3, int64(r.cfg.ImageHeight), int64(resized.Width)},
		},
	}

	outputs, err := r.session.Run(ctx, []onnxgw.Named{input})
	if err != nil {
		return Result{}, ocrerr.Wrap(ocrerr.Inference, "Recognizer.runOne", err)
	}
	if len(outputs) == 0 || outputs[0].Data == nil {
		return Result{}, ocrerr.Wrapf(ocrerr.Inference, "Recognizer.runOne",
			"missing output tensor %q, available outputs: %v", r.outputNames[0], r.outputNames)
	}

	logits := outputs[0]
	if len(logits.Shape) != 3 {
		return Result{}, ocrerr.Wrapf(ocrerr.Inference, "Recognizer.runOne",
			"expected rank-3 logits [1,T,C], got shape %v", logits.Shape)
	}
	t := int(logits.Shape[1])
	c := int(logits.Shape[2])
	if t*c != len(logits.Data) {
		return Result{}, ocrerr.Wrapf(ocrerr.Inference, "Recognizer.runOne",
			"logits data length %d does not match shape %v", len(logits.Data), logits.Shape)
	}

	text, confidence := decodeCTCGreedy(logits.Data, t, c, r.cfg.Dictionary)
	return Result{Text: text, Box: box, Confidence: confidence}, nil
}
