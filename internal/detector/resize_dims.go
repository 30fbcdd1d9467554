package detector

// resizeDims is a ResizeParams per §3: destination dimensions (each a
// positive multiple of 32, at least 32) and the scale factors used to map
// detector-space boxes back to source coordinates.
type resizeDims struct {
	DstW, DstH     int
	ScaleW, ScaleH float64
}

// calculateResizeDimensions implements §4.3 preprocess steps 1-3: scale the
// longer source side down to maxSideLength, then round each dimension to the
// nearest multiple of 32 not exceeding it (never below 32).
func calculateResizeDimensions(srcW, srcH, maxSideLength int) resizeDims {
	longer := srcW
	if srcH > longer {
		longer = srcH
	}
	scale := float64(maxSideLength) / float64(longer)

	dstW := roundDownTo32(int(float64(srcW) * scale))
	dstH := roundDownTo32(int(float64(srcH) * scale))

	return resizeDims{
		DstW:   dstW,
		DstH:   dstH,
		ScaleW: float64(dstW) / float64(srcW),
		ScaleH: float64(dstH) / float64(srcH),
	}
}

func roundDownTo32(v int) int {
	r := (v / 32) * 32
	if r < 32 {
		return 32
	}
	return r
}
