package imagebuf

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// §8 property 1: resize idempotence — resizing a w x h image to (w, h)
// returns pixels equal to the input within +/-1 rounding on every channel.
func TestResize_Idempotence(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("resize to same dims is ~identity", prop.ForAll(
		func(w, h int, seed int64) bool {
			buf := randomRGB(w, h, seed)
			out, err := buf.Resize(ResizeOptions{Width: w, Height: h})
			if err != nil {
				return false
			}
			if out.Width != w || out.Height != h {
				return false
			}
			for i := range buf.Bytes {
				d := int(buf.Bytes[i]) - int(out.Bytes[i])
				if d < -1 || d > 1 {
					return false
				}
			}
			return true
		},
		gen.IntRange(2, 30),
		gen.IntRange(2, 30),
		gen.Int64Range(0, 1<<30),
	))

	properties.TestingRun(t)
}

func randomRGB(w, h int, seed int64) *Buffer {
	data := make([]byte, w*h*3)
	s := uint64(seed) | 1
	for i := range data {
		s = s*6364136223846793005 + 1442695040888963407
		data[i] = byte(s >> 33)
	}
	buf, err := New(w, h, 3, data)
	if err != nil {
		panic(err)
	}
	return buf
}

// E3: resizing a solid-color image yields the same color (+/- 1) everywhere.
func TestResize_SolidColorPreserved(t *testing.T) {
	data := make([]byte, 100*50*3)
	for i := 0; i < len(data); i += 3 {
		data[i], data[i+1], data[i+2] = 10, 200, 77
	}
	buf, err := New(100, 50, 3, data)
	require.NoError(t, err)

	out, err := buf.Resize(ResizeOptions{Width: 50, Height: 25})
	require.NoError(t, err)
	require.Equal(t, 50, out.Width)
	require.Equal(t, 25, out.Height)

	for y := range out.Height {
		for x := range out.Width {
			off := out.offset(x, y)
			assert.InDelta(t, 10, out.Bytes[off], 1)
			assert.InDelta(t, 200, out.Bytes[off+1], 1)
			assert.InDelta(t, 77, out.Bytes[off+2], 1)
		}
	}
}

func TestResize_RequiresADimension(t *testing.T) {
	buf := randomRGB(4, 4, 1)
	_, err := buf.Resize(ResizeOptions{})
	require.Error(t, err)
}

func TestResize_PreservesAspectWhenOneDimensionOmitted(t *testing.T) {
	buf := randomRGB(100, 50, 2)
	out, err := buf.Resize(ResizeOptions{Width: 50})
	require.NoError(t, err)
	assert.Equal(t, 50, out.Width)
	assert.Equal(t, 25, out.Height)
}
