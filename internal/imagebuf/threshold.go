package imagebuf

// ThresholdOptions configures Threshold.
type ThresholdOptions struct {
	Threshold byte // default 128 when constructed via DefaultThresholdOptions
}

// DefaultThresholdOptions returns the §4.1 default threshold of 128.
func DefaultThresholdOptions() ThresholdOptions { return ThresholdOptions{Threshold: 128} }

// Threshold reads channel 0 only and produces a single-channel buffer where
// each pixel is 255 if src > threshold, else 0.
func (b *Buffer) Threshold(opts ThresholdOptions) *Buffer {
	out := make([]byte, b.Width*b.Height)
	for y := range b.Height {
		for x := range b.Width {
			v := b.Bytes[b.offset(x, y)]
			if v > opts.Threshold {
				out[y*b.Width+x] = 255
			}
		}
	}
	return &Buffer{Width: b.Width, Height: b.Height, Channels: 1, Bytes: out}
}
