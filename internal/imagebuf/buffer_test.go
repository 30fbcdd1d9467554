package imagebuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidRGBA(w, h int, r, g, b, a byte) *Buffer {
	data := make([]byte, w*h*4)
	for i := 0; i < len(data); i += 4 {
		data[i], data[i+1], data[i+2], data[i+3] = r, g, b, a
	}
	buf, err := New(w, h, 4, data)
	if err != nil {
		panic(err)
	}
	return buf
}

func TestNew_RejectsBadLength(t *testing.T) {
	_, err := New(4, 4, 3, make([]byte, 10))
	require.Error(t, err)
}

func TestNew_RejectsBadChannels(t *testing.T) {
	_, err := New(4, 4, 5, make([]byte, 80))
	require.Error(t, err)
}

func TestCrop_OutOfBounds(t *testing.T) {
	buf := solidRGBA(10, 10, 1, 2, 3, 4)
	_, err := buf.Crop(5, 5, 10, 10)
	require.Error(t, err)
}

// E1 from §8: 32x32 white RGBA image, outer padding=4, white fill -> 40x40,
// all pixels white.
func TestPad_E1(t *testing.T) {
	buf := solidRGBA(32, 32, 255, 255, 255, 255)
	out, err := buf.Pad(PadOptions{Padding: 4, Color: [4]byte{255, 255, 255, 255}})
	require.NoError(t, err)
	assert.Equal(t, 40, out.Width)
	assert.Equal(t, 40, out.Height)
	for i := 0; i < len(out.Bytes); i++ {
		assert.Equal(t, byte(255), out.Bytes[i])
	}
}

// §8 property 3: the padded image's interior equals the source exactly; the
// border equals the fill color exactly.
func TestPad_InteriorAndBorder(t *testing.T) {
	buf := solidRGBA(5, 3, 10, 20, 30, 40)
	out, err := buf.Pad(PadOptions{Top: 2, Bottom: 1, Left: 3, Right: 4, Color: [4]byte{1, 2, 3, 4}})
	require.NoError(t, err)
	require.Equal(t, 12, out.Width) // 5+3+4
	require.Equal(t, 6, out.Height) // 3+2+1

	for y := range out.Height {
		for x := range out.Width {
			off := out.offset(x, y)
			inInterior := x >= 3 && x < 8 && y >= 2 && y < 5
			if inInterior {
				assert.Equal(t, []byte{10, 20, 30, 40}, out.Bytes[off:off+4])
			} else {
				assert.Equal(t, []byte{1, 2, 3, 4}, out.Bytes[off:off+4])
			}
		}
	}
}

func TestPad_PrecedencePaddingOverridesSides(t *testing.T) {
	buf := solidRGBA(2, 2, 0, 0, 0, 0)
	out, err := buf.Pad(PadOptions{Padding: 3, Vertical: 1, Top: 9})
	require.NoError(t, err)
	assert.Equal(t, 8, out.Width)  // 2+3+3
	assert.Equal(t, 8, out.Height) // 2+3+3
}

func TestPad_VerticalHorizontalOverridePerSide(t *testing.T) {
	buf := solidRGBA(2, 2, 0, 0, 0, 0)
	out, err := buf.Pad(PadOptions{Vertical: 2, Horizontal: 1, Top: 9, Left: 9})
	require.NoError(t, err)
	assert.Equal(t, 4, out.Width)  // 2+1+1
	assert.Equal(t, 6, out.Height) // 2+2+2
}

// §8 property 2: crop composition.
func TestCropComposition(t *testing.T) {
	buf := solidRGBA(20, 20, 0, 0, 0, 0)
	for y := range 20 {
		for x := range 20 {
			off := buf.offset(x, y)
			buf.Bytes[off] = byte(x)
			buf.Bytes[off+1] = byte(y)
		}
	}
	a, err := buf.Crop(2, 3, 10, 10)
	require.NoError(t, err)
	b, err := a.Crop(1, 1, 4, 4)
	require.NoError(t, err)

	combined, err := buf.Crop(3, 4, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, combined.Bytes, b.Bytes)
}
