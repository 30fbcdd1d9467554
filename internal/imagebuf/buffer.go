// Package imagebuf implements the pixel-processing primitives the OCR
// pipeline is built on: an owned raw byte buffer plus crop, resize, pad,
// tensor packing, thresholding, dilation and connected-component extraction.
//
// Every operation returns a fresh buffer; callers chain them functionally,
// the way the teacher's image utilities return new image.Image values rather
// than mutating in place.
package imagebuf

import (
	"fmt"

	"github.com/ocrlite/ocrlite/internal/ocrerr"
)

// Buffer is a raster image: width x height pixels, Channels interleaved,
// 8 bits per channel, rows stored top-to-bottom.
type Buffer struct {
	Width    int
	Height   int
	Channels int
	Bytes    []byte
}

// New validates and wraps a raw byte buffer as an image Buffer. channels must
// be one of 1 (gray), 2 (gray+alpha), 3 (RGB) or 4 (RGBA).
func New(width, height, channels int, data []byte) (*Buffer, error) {
	if channels < 1 || channels > 4 {
		return nil, ocrerr.Wrapf(ocrerr.Input, "imagebuf.New", "invalid channel count %d", channels)
	}
	want := width * height * channels
	if len(data) != want {
		return nil, ocrerr.Wrapf(ocrerr.Input, "imagebuf.New",
			"data length %d does not match width*height*channels=%d", len(data), want)
	}
	return &Buffer{Width: width, Height: height, Channels: channels, Bytes: data}, nil
}

// offset returns the byte offset of pixel (x, y) channel 0 within Bytes.
func (b *Buffer) offset(x, y int) int { return (y*b.Width + x) * b.Channels }

// Box is an axis-aligned pixel rectangle with top-left origin.
type Box struct {
	X, Y, Width, Height int
}

// Valid reports whether the box has positive extent.
func (bx Box) Valid() bool { return bx.Width > 0 && bx.Height > 0 }

// Right returns the exclusive right edge.
func (bx Box) Right() int { return bx.X + bx.Width }

// Bottom returns the exclusive bottom edge.
func (bx Box) Bottom() int { return bx.Y + bx.Height }

// Crop extracts the rectangle (x, y, w, h); the rectangle must be fully
// contained in the source image.
func (b *Buffer) Crop(x, y, w, h int) (*Buffer, error) {
	if w <= 0 || h <= 0 || x < 0 || y < 0 || x+w > b.Width || y+h > b.Height {
		return nil, ocrerr.Wrapf(ocrerr.Input, "Crop",
			"rect (%d,%d,%d,%d) out of bounds for %dx%d image", x, y, w, h, b.Width, b.Height)
	}
	out := make([]byte, w*h*b.Channels)
	rowBytes := w * b.Channels
	for row := range h {
		srcOff := b.offset(x, y+row)
		copy(out[row*rowBytes:(row+1)*rowBytes], b.Bytes[srcOff:srcOff+rowBytes])
	}
	return &Buffer{Width: w, Height: h, Channels: b.Channels, Bytes: out}, nil
}

// CropBox is a convenience wrapper over Crop taking a Box.
func (b *Buffer) CropBox(bx Box) (*Buffer, error) {
	return b.Crop(bx.X, bx.Y, bx.Width, bx.Height)
}

// PadOptions controls Pad. Option precedence follows §4.1: Padding overrides
// Vertical/Horizontal, which override the per-side fields. Unset sides
// default to 0.
type PadOptions struct {
	Padding    int // overrides everything below when > 0
	Vertical   int // overrides Top/Bottom when > 0
	Horizontal int // overrides Left/Right when > 0
	Top        int
	Bottom     int
	Left       int
	Right      int
	// Color is the RGBA fill for the padded border and any channel gap.
	// Zero value is transparent black, matching the teacher's background
	// fill default.
	Color [4]byte
}

// resolveSides applies the documented precedence and returns (top, bottom, left, right).
func (o PadOptions) resolveSides() (top, bottom, left, right int) {
	top, bottom, left, right = o.Top, o.Bottom, o.Left, o.Right
	if o.Vertical > 0 {
		top, bottom = o.Vertical, o.Vertical
	}
	if o.Horizontal > 0 {
		left, right = o.Horizontal, o.Horizontal
	}
	if o.Padding > 0 {
		top, bottom, left, right = o.Padding, o.Padding, o.Padding, o.Padding
	}
	return
}

// Pad produces a new RGBA canvas (always 4 channels — see §9 note on this
// design quirk) of size (W+left+right) x (H+top+bottom), filled with
// opts.Color, with the source pasted at (left, top).
func (b *Buffer) Pad(opts PadOptions) (*Buffer, error) {
	top, bottom, left, right := opts.resolveSides()
	newW := b.Width + left + right
	newH := b.Height + top + bottom
	out := make([]byte, newW*newH*4)
	for i := 0; i < len(out); i += 4 {
		out[i+0] = opts.Color[0]
		out[i+1] = opts.Color[1]
		out[i+2] = opts.Color[2]
		out[i+3] = opts.Color[3]
	}
	dst := &Buffer{Width: newW, Height: newH, Channels: 4, Bytes: out}
	for y := range b.Height {
		for x := range b.Width {
			srcOff := b.offset(x, y)
			dstOff := dst.offset(x+left, y+top)
			var r, g, bl, a byte
			switch b.Channels {
			case 1:
				r, g, bl, a = b.Bytes[srcOff], b.Bytes[srcOff], b.Bytes[srcOff], 255
			case 2:
				r, g, bl, a = b.Bytes[srcOff], b.Bytes[srcOff], b.Bytes[srcOff], b.Bytes[srcOff+1]
			case 3:
				r, g, bl, a = b.Bytes[srcOff], b.Bytes[srcOff+1], b.Bytes[srcOff+2], 255
			default: // 4
				r, g, bl, a = b.Bytes[srcOff], b.Bytes[srcOff+1], b.Bytes[srcOff+2], b.Bytes[srcOff+3]
			}
			out[dstOff+0], out[dstOff+1], out[dstOff+2], out[dstOff+3] = r, g, bl, a
		}
	}
	return dst, nil
}

// String implements fmt.Stringer for debug logging.
func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer(%dx%dx%d)", b.Width, b.Height, b.Channels)
}
