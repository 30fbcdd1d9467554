package cmd

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ocrlite/ocrlite/internal/ocrpipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecognizeCommand_RequiresAtLeastOneArg(t *testing.T) {
	assert.Error(t, recognizeCmd.Args(recognizeCmd, []string{}))
}

func TestRecognizeCommand_Help(t *testing.T) {
	buf := new(bytes.Buffer)
	recognizeCmd.SetOut(buf)
	recognizeCmd.SetErr(buf)
	require.NoError(t, recognizeCmd.Help())
	assert.Contains(t, buf.String(), "Usage:")
}

func writeTestPNG(t *testing.T, path string, w, h int, fill color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, fill)
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestDecodeImage_ProducesInterleavedRGBBuffer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.png")
	writeTestPNG(t, path, 4, 3, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	data, w, h, err := decodeImage(path)
	require.NoError(t, err)
	assert.Equal(t, 4, w)
	assert.Equal(t, 3, h)
	require.Len(t, data, w*h*3)
	assert.Equal(t, []byte{10, 20, 30}, data[:3])
}

func TestDecodeImage_MissingFileErrors(t *testing.T) {
	_, _, _, err := decodeImage(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
}

func TestRenderResult_Text(t *testing.T) {
	result := &ocrpipeline.OcrResult{Text: "hello", Confidence: 0.9}
	out, err := renderResult("a.png", result, "text", 2)
	require.NoError(t, err)
	assert.Contains(t, out, "a.png")
	assert.Contains(t, out, "hello")
}

func TestRenderResult_JSON(t *testing.T) {
	result := &ocrpipeline.OcrResult{Text: "hi", Confidence: 0.5}
	out, err := renderResult("a.png", result, "json", 2)
	require.NoError(t, err)
	assert.Contains(t, out, `"text": "hi"`)
}

func TestRenderResult_CSV(t *testing.T) {
	result := &ocrpipeline.OcrResult{Text: "hi", Confidence: 0.5}
	out, err := renderResult("a.png", result, "csv", 2)
	require.NoError(t, err)
	assert.Contains(t, out, "a.png")
	assert.Contains(t, out, "0.50")
}

func TestRenderResult_UnsupportedFormatErrors(t *testing.T) {
	result := &ocrpipeline.OcrResult{Text: "hi"}
	_, err := renderResult("a.png", result, "xml", 2)
	require.Error(t, err)
}
