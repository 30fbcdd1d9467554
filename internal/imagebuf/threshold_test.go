package imagebuf

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func grayBuffer(w, h int, values []byte) *Buffer {
	buf, err := New(w, h, 1, values)
	if err != nil {
		panic(err)
	}
	return buf
}

func TestThreshold_Basic(t *testing.T) {
	buf := grayBuffer(2, 1, []byte{100, 200})
	out := buf.Threshold(ThresholdOptions{Threshold: 128})
	assert.Equal(t, []byte{0, 255}, out.Bytes)
}

func TestThreshold_StrictlyGreaterThan(t *testing.T) {
	buf := grayBuffer(1, 1, []byte{128})
	out := buf.Threshold(ThresholdOptions{Threshold: 128})
	assert.Equal(t, byte(0), out.Bytes[0])
}

// §8 property 4: raising the threshold can only remove 255 pixels, never add.
func TestThreshold_Monotonic(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("higher threshold is a subset", prop.ForAll(
		func(w, h int, seed int64, t1, t2 byte) bool {
			if t2 < t1 {
				t1, t2 = t2, t1
			}
			buf := randomBinary(w, h, seed)
			lo := buf.Threshold(ThresholdOptions{Threshold: t1})
			hi := buf.Threshold(ThresholdOptions{Threshold: t2})
			for i := range lo.Bytes {
				if hi.Bytes[i] == 255 && lo.Bytes[i] != 255 {
					return false
				}
			}
			return true
		},
		gen.IntRange(3, 20),
		gen.IntRange(3, 20),
		gen.Int64Range(0, 1<<30),
		gen.UInt8(),
		gen.UInt8(),
	))

	properties.TestingRun(t)
}
