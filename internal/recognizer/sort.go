package recognizer

import "sort"

// sortReadingOrder implements §4.4's reading-order comparator: stable sort,
// comparing by x when the two boxes' top edges (Y) differ by less than a
// quarter of their summed heights, else by y.
func sortReadingOrder(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i].Box, results[j].Box
		dy := a.Y - b.Y
		if dy < 0 {
			dy = -dy
		}
		if float64(dy) < float64(a.Height+b.Height)/4 {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
}
