package imagebuf

import (
	"math"

	"github.com/ocrlite/ocrlite/internal/ocrerr"
)

// ResizeOptions requests a resize to a specific width and/or height. At
// least one of Width/Height must be positive; the other is computed to
// preserve the source aspect ratio, rounded to the nearest integer.
type ResizeOptions struct {
	Width  int
	Height int
}

// weight is one tap of a 1D resampling kernel: contribution of source index
// Index to an output sample, already normalized so all taps for one output
// sample sum to 1.
type weight struct {
	Index int
	W     float32
}

// triangle is the kernel max(0, 1 - |t|).
func triangle(t float64) float64 {
	t = math.Abs(t)
	if t >= 1 {
		return 0
	}
	return 1 - t
}

// buildResizeWeights computes, for each of the dst samples mapping from a
// src-length axis, the list of (source index, normalized weight) taps per
// the separable triangle filter described in §4.1.
func buildResizeWeights(src, dst int) [][]weight {
	ratio := float64(src) / float64(dst)
	sratio := ratio
	if sratio < 1 {
		sratio = 1
	}
	support := sratio

	taps := make([][]weight, dst)
	for o := range dst {
		center := (float64(o)+0.5)*ratio - 0.5
		lo := int(math.Floor(center - support))
		hi := int(math.Ceil(center + support))
		if lo < 0 {
			lo = 0
		}
		if hi > src {
			hi = src
		}
		if hi <= lo {
			// Degenerate window (can happen for 1-wide axes); fall back to
			// the single nearest source sample.
			nearest := int(math.Round(center))
			if nearest < 0 {
				nearest = 0
			}
			if nearest > src-1 {
				nearest = src - 1
			}
			taps[o] = []weight{{Index: nearest, W: 1}}
			continue
		}
		ws := make([]weight, 0, hi-lo)
		var sum float64
		for k := lo; k < hi; k++ {
			w := triangle((float64(k) - center) / sratio)
			if w > 0 {
				sum += w
				ws = append(ws, weight{Index: k, W: float32(w)})
			}
		}
		if sum <= 0 {
			nearest := int(math.Round(center))
			if nearest < 0 {
				nearest = 0
			}
			if nearest > src-1 {
				nearest = src - 1
			}
			taps[o] = []weight{{Index: nearest, W: 1}}
			continue
		}
		for i := range ws {
			ws[i].W = float32(float64(ws[i].W) / sum)
		}
		taps[o] = ws
	}
	return taps
}

// Resize implements the separable triangle (linear) filter of §4.1: vertical
// pass first, then horizontal, channels independent, intermediate values
// kept as float32, final pass rounded and clamped to [0, 255].
func (b *Buffer) Resize(opts ResizeOptions) (*Buffer, error) {
	dstW, dstH := opts.Width, opts.Height
	if dstW <= 0 && dstH <= 0 {
		return nil, ocrerr.New(ocrerr.Input, "Resize", "at least one of width or height must be given")
	}
	if dstW <= 0 {
		dstW = int(math.Round(float64(b.Width) * float64(dstH) / float64(b.Height)))
	}
	if dstH <= 0 {
		dstH = int(math.Round(float64(b.Height) * float64(dstW) / float64(b.Width)))
	}
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	c := b.Channels

	// Vertical pass: src (W x H) -> intermediate (W x dstH), float32.
	vWeights := buildResizeWeights(b.Height, dstH)
	inter := make([]float32, b.Width*dstH*c)
	for oy, taps := range vWeights {
		for x := range b.Width {
			for ch := range c {
				var acc float32
				for _, t := range taps {
					acc += float32(b.Bytes[b.offset(x, t.Index)+ch]) * t.W
				}
				inter[(oy*b.Width+x)*c+ch] = acc
			}
		}
	}

	// Horizontal pass: intermediate (W x dstH) -> dst (dstW x dstH), uint8.
	hWeights := buildResizeWeights(b.Width, dstW)
	out := make([]byte, dstW*dstH*c)
	for oy := range dstH {
		for ox, taps := range hWeights {
			for ch := range c {
				var acc float32
				for _, t := range taps {
					acc += inter[(oy*b.Width+t.Index)*c+ch] * t.W
				}
				out[(oy*dstW+ox)*c+ch] = clampByte(acc)
			}
		}
	}

	return &Buffer{Width: dstW, Height: dstH, Channels: c, Bytes: out}, nil
}

func clampByte(v float32) byte {
	r := math.Round(float64(v))
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return byte(r)
}
