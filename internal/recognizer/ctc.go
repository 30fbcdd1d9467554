package recognizer

import (
	"math"
	"strings"
)

// argmax returns the index and value of the largest element of v.
func argmax(v []float32) (int, float32) {
	idx := 0
	maxVal := v[0]
	for i := 1; i < len(v); i++ {
		if v[i] > maxVal {
			maxVal = v[i]
			idx = i
		}
	}
	return idx, maxVal
}

// softmaxProbOfIndex returns the softmax probability of v[idx] among v, using
// a numerically stable max-subtracted softmax. If v already looks like a
// probability distribution (values in [0,1] summing to ~1), it is returned
// directly rather than re-normalized.
func softmaxProbOfIndex(v []float32, idx int) float64 {
	if isProbabilityDistribution(v) {
		return float64(v[idx])
	}
	m := v[0]
	for _, x := range v[1:] {
		if x > m {
			m = x
		}
	}
	var denom float64
	for _, x := range v {
		denom += math.Exp(float64(x - m))
	}
	if denom == 0 {
		return 0
	}
	return math.Exp(float64(v[idx]-m)) / denom
}

func isProbabilityDistribution(v []float32) bool {
	var sum float64
	minV, maxV := v[0], v[0]
	for _, x := range v {
		sum += float64(x)
		if x < minV {
			minV = x
		}
		if x > maxV {
			maxV = x
		}
	}
	return sum > 0.99 && sum < 1.01 && minV >= 0 && maxV <= 1
}

// decodeCTCGreedy implements §4.4 step 6: argmax each of T timesteps over C
// classes, skip any step whose argmax is the blank index 0, and emit
// dict[argmax] for every surviving step. Unlike standard CTC, consecutive
// repeats are NOT collapsed — this is an intentional, documented divergence.
// Confidence is the arithmetic mean of surviving steps' scores, NaN if none
// survive.
func decodeCTCGreedy(logits []float32, t, c int, dict []string) (string, float64) {
	var sb strings.Builder
	var sum float64
	var n int
	for step := 0; step < t; step++ {
		slice := logits[step*c : (step+1)*c]
		idx, _ := argmax(slice)
		if idx == 0 {
			continue
		}
		score := softmaxProbOfIndex(slice, idx)
		if idx < len(dict) {
			sb.WriteString(dict[idx])
		}
		sum += score
		n++
	}
	if n == 0 {
		return "", math.NaN()
	}
	return sb.String(), sum / float64(n)
}
