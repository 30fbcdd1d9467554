package ocrpipeline

import (
	"testing"

	"github.com/ocrlite/ocrlite/internal/imagebuf"
	"github.com/ocrlite/ocrlite/internal/recognizer"
	"github.com/stretchr/testify/assert"
)

func result(text string, y, height int) recognizer.Result {
	return recognizer.Result{Text: text, Box: imagebuf.Box{X: 0, Y: y, Width: 10, Height: height}}
}

// §4.5 step 5 / E7: y-coords (10, 12, 40) with height ~20 groups as [[0,1],[2]].
func TestGroupLines_E7(t *testing.T) {
	results := []recognizer.Result{
		result("a", 10, 20),
		result("b", 12, 20),
		result("c", 40, 20),
	}
	lines := groupLines(results)
	require := assert.New(t)
	require.Len(lines, 2)
	require.Len(lines[0], 2)
	require.Len(lines[1], 1)
	require.Equal("a", lines[0][0].Text)
	require.Equal("b", lines[0][1].Text)
	require.Equal("c", lines[1][0].Text)
}

func TestGroupLines_Empty(t *testing.T) {
	assert.Nil(t, groupLines(nil))
}

func TestGroupLines_SingleResult(t *testing.T) {
	lines := groupLines([]recognizer.Result{result("only", 5, 10)})
	assert.Len(t, lines, 1)
	assert.Len(t, lines[0], 1)
}

func TestJoinLines_SpaceWithinLineNewlineBetween(t *testing.T) {
	lines := [][]recognizer.Result{
		{result("hello", 0, 20), result("world", 0, 20)},
		{result("second", 40, 20)},
	}
	assert.Equal(t, "hello world\nsecond", joinLines(lines))
}
