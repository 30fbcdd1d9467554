package recognizer

import (
	"context"
	"testing"

	"github.com/ocrlite/ocrlite/internal/imagebuf"
	"github.com/ocrlite/ocrlite/internal/onnxgw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int) *imagebuf.Buffer {
	data := make([]byte, w*h*3)
	for i := range data {
		data[i] = 200
	}
	buf, err := imagebuf.New(w, h, 3, data)
	if err != nil {
		panic(err)
	}
	return buf
}

func constantClassLogits(tSteps, classes, cls int, hi, lo float32) onnxgw.Tensor {
	data := make([]float32, tSteps*classes)
	for step := range tSteps {
		for c := range classes {
			v := lo
			if c == cls {
				v = hi
			}
			data[step*classes+c] = v
		}
	}
	return onnxgw.Tensor{Data: data, Shape: []int64{1, int64(tSteps), int64(classes)}}
}

func TestRecognizer_RunEndToEndWithFakeGateway(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ModelPath = "rec.onnx"
	cfg.Dictionary = []string{"_", "h", "i"}

	gw := &onnxgw.FakeGateway{
		OutputNames: map[string][]string{"rec.onnx": {"softmax"}},
		Outputs:     map[string][]onnxgw.Tensor{"rec.onnx": {constantClassLogits(6, 3, 1, 10, -10)}},
	}

	r, err := New(context.Background(), gw, cfg)
	require.NoError(t, err)
	defer r.Close()

	boxes := []imagebuf.Box{{X: 0, Y: 0, Width: 50, Height: 20}}
	results, err := r.Run(context.Background(), solidImage(50, 20), boxes)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "hhhhhh", results[0].Text)
	assert.Greater(t, results[0].Confidence, 0.9)
}

func TestRecognizer_DropsInvalidBoxes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ModelPath = "rec.onnx"
	cfg.Dictionary = []string{"_", "a"}

	gw := &onnxgw.FakeGateway{
		OutputNames: map[string][]string{"rec.onnx": {"softmax"}},
		Outputs:     map[string][]onnxgw.Tensor{"rec.onnx": {constantClassLogits(4, 2, 1, 10, -10)}},
	}

	r, err := New(context.Background(), gw, cfg)
	require.NoError(t, err)
	defer r.Close()

	boxes := []imagebuf.Box{
		{X: 0, Y: 0, Width: 0, Height: 20},
		{X: 0, Y: 0, Width: 20, Height: -1},
	}
	results, err := r.Run(context.Background(), solidImage(50, 20), boxes)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRecognizer_MissingOutputTensorIsFatal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ModelPath = "rec.onnx"
	cfg.Dictionary = []string{"_", "a"}

	gw := &onnxgw.FakeGateway{
		OutputNames: map[string][]string{"rec.onnx": {"softmax"}},
		Outputs:     map[string][]onnxgw.Tensor{"rec.onnx": {{}}},
	}

	r, err := New(context.Background(), gw, cfg)
	require.NoError(t, err)
	defer r.Close()

	boxes := []imagebuf.Box{{X: 0, Y: 0, Width: 10, Height: 10}}
	_, err = r.Run(context.Background(), solidImage(50, 20), boxes)
	require.Error(t, err)
}
