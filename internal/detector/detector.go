package detector

import (
	"context"

	"github.com/ocrlite/ocrlite/internal/imagebuf"
	"github.com/ocrlite/ocrlite/internal/ocrerr"
	"github.com/ocrlite/ocrlite/internal/onnxgw"
)

const fallbackOutputName = "fetch_name_0"

// Detector runs the PP-OCR detection model and turns its probability map
// into source-coordinate text boxes.
type Detector struct {
	cfg        Config
	session    onnxgw.Session
	inputName  string
	outputName string
}

// New loads the detection model through gw and returns a ready Detector.
// Per §4.3 the detector feeds input "x" and reads the graph's first declared
// output, falling back to the literal name "fetch_name_0" when the graph
// reports none.
func New(ctx context.Context, gw onnxgw.Gateway, cfg Config) (*Detector, error) {
	_, outputNames, err := gw.Describe(ctx, cfg.ModelPath)
	if err != nil {
		return nil, ocrerr.Wrap(ocrerr.Config, "detector.New", err)
	}
	outputName := fallbackOutputName
	if len(outputNames) > 0 && outputNames[0] != "" {
		outputName = outputNames[0]
	}

	session, err := gw.Load(ctx, cfg.ModelPath, []string{"x"}, []string{outputName})
	if err != nil {
		return nil, ocrerr.Wrap(ocrerr.Config, "detector.New", err)
	}
	return &Detector{cfg: cfg, session: session, inputName: "x", outputName: outputName}, nil
}

// Close releases the underlying inference session. Idempotent.
func (d *Detector) Close() error {
	if d.session == nil {
		return nil
	}
	err := d.session.Close()
	d.session = nil
	return err
}

// Run detects text boxes in buf, returned in source-image coordinates.
// A missing output tensor is non-fatal: it yields an empty box list.
func (d *Detector) Run(ctx context.Context, buf *imagebuf.Buffer) ([]imagebuf.Box, error) {
	dims := calculateResizeDimensions(buf.Width, buf.Height, d.cfg.MaxSideLength)

	resized, err := buf.Resize(imagebuf.ResizeOptions{Width: dims.DstW, Height: dims.DstH})
	if err != nil {
		return nil, ocrerr.Wrap(ocrerr.Inference, "Detector.Run", err)
	}
	tensorData := resized.Tensor(imagebuf.TensorOptions{Mean: d.cfg.Mean, Norm: d.cfg.Norm})

	input := onnxgw.Named{
		Name: d.inputName,
		Tensor: onnxgw.Tensor{
			Data:  tensorData,
			Shape: []int64{1, 3, int64(dims.DstH), int64(dims.DstW)},
		},
	}

	outputs, err := d.session.Run(ctx, []onnxgw.Named{input})
	if err != nil {
		return nil, ocrerr.Wrap(ocrerr.Inference, "Detector.Run", err)
	}
	if len(outputs) == 0 || outputs[0].Data == nil {
		return nil, nil
	}

	boxes, err := postprocess(outputs[0], dims, buf.Width, buf.Height, d.cfg)
	if err != nil {
		return nil, ocrerr.Wrap(ocrerr.Inference, "Detector.Run", err)
	}
	return boxes, nil
}
