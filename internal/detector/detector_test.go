package detector

import (
	"context"
	"testing"

	"github.com/ocrlite/ocrlite/internal/imagebuf"
	"github.com/ocrlite/ocrlite/internal/onnxgw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func whiteImage(w, h int) *imagebuf.Buffer {
	data := make([]byte, w*h*3)
	for i := range data {
		data[i] = 255
	}
	buf, err := imagebuf.New(w, h, 3, data)
	if err != nil {
		panic(err)
	}
	return buf
}

func TestDetector_RunEndToEndWithFakeGateway(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ModelPath = "det.onnx"
	cfg.MinimumAreaThreshold = 1

	dims := calculateResizeDimensions(200, 100, cfg.MaxSideLength)
	prob := blobProbMap(dims.DstW, dims.DstH, dims.DstW/2, dims.DstH/2, 15, 0.95, 0.02)

	gw := &onnxgw.FakeGateway{
		OutputNames: map[string][]string{"det.onnx": {"sigmoid"}},
		Outputs:     map[string][]onnxgw.Tensor{"det.onnx": {prob}},
	}

	d, err := New(context.Background(), gw, cfg)
	require.NoError(t, err)
	defer d.Close()

	boxes, err := d.Run(context.Background(), whiteImage(200, 100))
	require.NoError(t, err)
	require.NotEmpty(t, boxes)
	for _, b := range boxes {
		assert.True(t, b.X >= 0 && b.Y >= 0)
		assert.LessOrEqual(t, b.X+b.Width, 200)
		assert.LessOrEqual(t, b.Y+b.Height, 100)
	}
}

func TestDetector_MissingOutputTensorIsNonFatal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ModelPath = "det.onnx"

	gw := &onnxgw.FakeGateway{
		OutputNames: map[string][]string{"det.onnx": {"sigmoid"}},
		Outputs:     map[string][]onnxgw.Tensor{"det.onnx": {{}}},
	}

	d, err := New(context.Background(), gw, cfg)
	require.NoError(t, err)
	defer d.Close()

	boxes, err := d.Run(context.Background(), whiteImage(64, 64))
	require.NoError(t, err)
	assert.Empty(t, boxes)
}

func TestDetector_FallsBackToFetchName0WhenGraphReportsNoOutputs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ModelPath = "det.onnx"

	gw := &onnxgw.FakeGateway{
		OutputNames: map[string][]string{"det.onnx": {}},
		Outputs:     map[string][]onnxgw.Tensor{"det.onnx": {{}}},
	}

	d, err := New(context.Background(), gw, cfg)
	require.NoError(t, err)
	assert.Equal(t, fallbackOutputName, d.outputName)
}
