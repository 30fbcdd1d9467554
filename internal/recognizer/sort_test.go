package recognizer

import (
	"testing"

	"github.com/ocrlite/ocrlite/internal/imagebuf"
	"github.com/stretchr/testify/assert"
)

func TestSortReadingOrder_SameLineSortsByX(t *testing.T) {
	results := []Result{
		{Text: "b", Box: imagebuf.Box{X: 50, Y: 10, Width: 10, Height: 20}},
		{Text: "a", Box: imagebuf.Box{X: 10, Y: 12, Width: 10, Height: 20}},
	}
	sortReadingOrder(results)
	assert.Equal(t, "a", results[0].Text)
	assert.Equal(t, "b", results[1].Text)
}

func TestSortReadingOrder_DifferentLinesSortByY(t *testing.T) {
	results := []Result{
		{Text: "line2", Box: imagebuf.Box{X: 10, Y: 40, Width: 10, Height: 20}},
		{Text: "line1", Box: imagebuf.Box{X: 10, Y: 10, Width: 10, Height: 20}},
	}
	sortReadingOrder(results)
	assert.Equal(t, "line1", results[0].Text)
	assert.Equal(t, "line2", results[1].Text)
}

func TestSortReadingOrder_StableForEqualKeys(t *testing.T) {
	results := []Result{
		{Text: "first", Box: imagebuf.Box{X: 10, Y: 10, Width: 10, Height: 20}},
		{Text: "second", Box: imagebuf.Box{X: 10, Y: 10, Width: 10, Height: 20}},
	}
	sortReadingOrder(results)
	assert.Equal(t, "first", results[0].Text)
	assert.Equal(t, "second", results[1].Text)
}
