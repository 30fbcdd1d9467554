package imagebuf

// TensorOptions supplies per-channel normalization constants for Tensor.
// Mean and Norm each carry three values, one per RGB channel (channels
// beyond 3, e.g. alpha, are ignored).
type TensorOptions struct {
	Mean [3]float32
	Norm [3]float32
}

// Tensor packs the buffer into a CHW float32 slice of length 3*Height*Width:
// out[c*H*W + h*W + w] = src[c] * norm[c] - mean[c] * norm[c].
//
// This is algebraically equivalent to (src/255 - mean) / std once mean/norm
// are supplied scaled as documented in §9 note 2; callers own that scaling.
func (b *Buffer) Tensor(opts TensorOptions) []float32 {
	h, w, c := b.Height, b.Width, b.Channels
	out := make([]float32, 3*h*w)
	planeSize := h * w
	nCh := c
	if nCh > 3 {
		nCh = 3
	}
	for y := range h {
		for x := range w {
			srcOff := b.offset(x, y)
			idx := y*w + x
			for ch := range nCh {
				v := float32(b.Bytes[srcOff+ch])
				out[ch*planeSize+idx] = v*opts.Norm[ch] - opts.Mean[ch]*opts.Norm[ch]
			}
		}
	}
	return out
}
