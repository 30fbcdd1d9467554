package imagebuf

import (
	"github.com/ocrlite/ocrlite/internal/ocrerr"
)

// DilateOptions configures Dilate. Norm must be "LInf"; k is the dilation
// radius in pixels (equivalent to a (2k+1)x(2k+1) square structuring
// element, per the GLOSSARY).
type DilateOptions struct {
	Norm string
	K    int
}

// DefaultDilateOptions returns norm="LInf", k=1.
func DefaultDilateOptions() DilateOptions { return DilateOptions{Norm: "LInf", K: 1} }

const infDist = 1 << 30

// Dilate computes, for every pixel, its Chebyshev distance to the nearest
// foreground (255) pixel via a two-pass 8-neighbor chamfer transform, then
// sets any pixel with distance <= k to 255. Only single-channel ("LInf")
// input is accepted.
func (b *Buffer) Dilate(opts DilateOptions) (*Buffer, error) {
	if opts.Norm != "LInf" {
		return nil, ocrerr.Wrapf(ocrerr.Input, "Dilate", "unsupported norm %q, only \"LInf\" is implemented", opts.Norm)
	}
	if b.Channels != 1 {
		return nil, ocrerr.Wrapf(ocrerr.Input, "Dilate", "dilate requires a single-channel image, got %d channels", b.Channels)
	}

	w, h := b.Width, b.Height
	dist := make([]int, w*h)
	for i, v := range b.Bytes {
		if v != 0 {
			dist[i] = 0
		} else {
			dist[i] = infDist
		}
	}

	idx := func(x, y int) int { return y*w + x }
	relax := func(p, nx, ny int) {
		if nx < 0 || nx >= w || ny < 0 || ny >= h {
			return
		}
		q := idx(nx, ny)
		if dist[q]+1 < dist[p] {
			dist[p] = dist[q] + 1
		}
	}

	// Forward sweep: row-major top-to-bottom, left-to-right. Upper-left
	// neighbors (W, NW, N) plus direct up-right (NE): 4 in total.
	for y := range h {
		for x := range w {
			p := idx(x, y)
			relax(p, x-1, y)
			relax(p, x-1, y-1)
			relax(p, x, y-1)
			relax(p, x+1, y-1)
		}
	}

	// Reverse sweep: bottom-to-top, right-to-left. Lower-right 4 neighbors
	// (E, SE, S, SW).
	for y := h - 1; y >= 0; y-- {
		for x := w - 1; x >= 0; x-- {
			p := idx(x, y)
			relax(p, x+1, y)
			relax(p, x+1, y+1)
			relax(p, x, y+1)
			relax(p, x-1, y+1)
		}
	}

	out := make([]byte, w*h)
	for i, d := range dist {
		if d <= opts.K {
			out[i] = 255
		}
	}
	return &Buffer{Width: w, Height: h, Channels: 1, Bytes: out}, nil
}
