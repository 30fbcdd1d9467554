package ocrpipeline

import (
	"math"
	"strings"

	"github.com/ocrlite/ocrlite/internal/recognizer"
)

// groupLines partitions reading-order-sorted results into lines per §4.5
// step 5: a running average of the current line's box heights is compared
// against the vertical gap to the previous box. A gap no larger than half
// that average keeps the box on the same line; a larger gap starts a new
// line. The running average (not each box's own height) is what decides the
// threshold, so a line's tolerance widens or narrows as boxes join it.
func groupLines(results []recognizer.Result) [][]recognizer.Result {
	if len(results) == 0 {
		return nil
	}
	lines := make([][]recognizer.Result, 0)
	line := []recognizer.Result{results[0]}
	avgHeight := float64(results[0].Box.Height)
	lastY := results[0].Box.Y

	for _, r := range results[1:] {
		deltaY := math.Abs(float64(r.Box.Y - lastY))
		if deltaY <= avgHeight*0.5 {
			line = append(line, r)
			avgHeight = runningAverageHeight(line)
		} else {
			lines = append(lines, line)
			line = []recognizer.Result{r}
			avgHeight = float64(r.Box.Height)
		}
		lastY = r.Box.Y
	}
	lines = append(lines, line)
	return lines
}

func runningAverageHeight(line []recognizer.Result) float64 {
	sum := 0
	for _, r := range line {
		sum += r.Box.Height
	}
	return float64(sum) / float64(len(line))
}

// joinLines renders grouped lines as text: boxes on the same line are joined
// with a space, lines are joined with a newline.
func joinLines(lines [][]recognizer.Result) string {
	parts := make([]string, len(lines))
	for i, line := range lines {
		words := make([]string, len(line))
		for j, r := range line {
			words[j] = r.Text
		}
		parts[i] = strings.Join(words, " ")
	}
	return strings.Join(parts, "\n")
}
