package detector

import (
	"math"

	"github.com/ocrlite/ocrlite/internal/imagebuf"
	"github.com/ocrlite/ocrlite/internal/ocrerr"
	"github.com/ocrlite/ocrlite/internal/onnxgw"
)

// postprocess implements §4.3 postprocess steps 1-6: probability map ->
// 8-bit grayscale -> threshold -> dilate -> connected components -> per-box
// padding inflation -> scale back to source coordinates.
func postprocess(probMap onnxgw.Tensor, dims resizeDims, srcW, srcH int, cfg Config) ([]imagebuf.Box, error) {
	if len(probMap.Data) != dims.DstW*dims.DstH {
		return nil, ocrerr.Wrapf(ocrerr.Inference, "postprocess",
			"probability map has %d elements, want %d for %dx%d", len(probMap.Data), dims.DstW*dims.DstH, dims.DstW, dims.DstH)
	}

	gray := make([]byte, len(probMap.Data))
	for i, p := range probMap.Data {
		gray[i] = clampByteRound(p * 255)
	}
	grayBuf, err := imagebuf.New(dims.DstW, dims.DstH, 1, gray)
	if err != nil {
		return nil, err
	}

	threshold := clampByteRound(255 * cfg.TextPixelThreshold)
	binary := grayBuf.Threshold(imagebuf.ThresholdOptions{Threshold: threshold})

	dilated, err := binary.Dilate(imagebuf.DilateOptions{Norm: "LInf", K: 1})
	if err != nil {
		return nil, err
	}

	components := dilated.Contours(imagebuf.ContoursOptions{MinArea: cfg.MinimumAreaThreshold})

	boxes := make([]imagebuf.Box, 0, len(components))
	for _, box := range components {
		inflated := inflateBox(box, dims.DstW, dims.DstH, cfg.PaddingBoxVertical, cfg.PaddingBoxHorizontal)
		boxes = append(boxes, scaleToSource(inflated, dims.ScaleW, dims.ScaleH, srcW, srcH))
	}
	return boxes, nil
}

// inflateBox expands box by a padding fraction of its height (vertically and
// horizontally — §4.3 note 3 is intentional: horizontal padding scales with
// glyph size, not box width), then clamps to the detector canvas.
func inflateBox(box imagebuf.Box, canvasW, canvasH int, vRatio, hRatio float32) imagebuf.Box {
	vpad := int(math.Round(float64(box.Height) * float64(vRatio)))
	hpad := int(math.Round(float64(box.Height) * float64(hRatio)))

	left := box.X - hpad
	top := box.Y - vpad
	right := box.X + box.Width + hpad
	bottom := box.Y + box.Height + vpad

	if left < 0 {
		left = 0
	}
	if top < 0 {
		top = 0
	}
	if right > canvasW {
		right = canvasW
	}
	if bottom > canvasH {
		bottom = canvasH
	}

	return imagebuf.Box{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// scaleToSource maps a detector-canvas box back to source-image coordinates
// and clamps it to fit within the source dimensions.
func scaleToSource(box imagebuf.Box, scaleW, scaleH float64, srcW, srcH int) imagebuf.Box {
	x := int(math.Round(float64(box.X) / scaleW))
	y := int(math.Round(float64(box.Y) / scaleH))
	w := int(math.Round(float64(box.Width) / scaleW))
	h := int(math.Round(float64(box.Height) / scaleH))

	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x > srcW {
		x = srcW
	}
	if y > srcH {
		y = srcH
	}
	if x+w > srcW {
		w = srcW - x
	}
	if y+h > srcH {
		h = srcH - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return imagebuf.Box{X: x, Y: y, Width: w, Height: h}
}

func clampByteRound(v float32) byte {
	r := math.Round(float64(v))
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return byte(r)
}
