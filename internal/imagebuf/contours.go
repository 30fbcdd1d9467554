package imagebuf

// ContoursOptions configures Contours.
type ContoursOptions struct {
	MinArea int // default 1
}

// DefaultContoursOptions returns MinArea=1.
func DefaultContoursOptions() ContoursOptions { return ContoursOptions{MinArea: 1} }

// Contours performs 8-connected BFS flood-fill over unvisited foreground
// (non-zero) pixels in row-major order and returns each component's
// axis-aligned bounding box, provided its pixel area meets MinArea.
// Components are returned in discovery order.
func (b *Buffer) Contours(opts ContoursOptions) []Box {
	minArea := opts.MinArea
	if minArea <= 0 {
		minArea = 1
	}
	w, h := b.Width, b.Height
	visited := make([]bool, w*h)
	isFG := func(x, y int) bool {
		return b.Bytes[(y*w+x)*b.Channels] != 0
	}

	var boxes []Box
	var queue []int
	dx8 := [8]int{-1, 0, 1, -1, 1, -1, 0, 1}
	dy8 := [8]int{-1, -1, -1, 0, 0, 1, 1, 1}

	for y := range h {
		for x := range w {
			i := y*w + x
			if visited[i] || !isFG(x, y) {
				continue
			}
			queue = queue[:0]
			queue = append(queue, i)
			visited[i] = true
			minX, minY, maxX, maxY := x, y, x, y
			area := 0
			for qi := 0; qi < len(queue); qi++ {
				ci := queue[qi]
				cx, cy := ci%w, ci/w
				area++
				if cx < minX {
					minX = cx
				}
				if cy < minY {
					minY = cy
				}
				if cx > maxX {
					maxX = cx
				}
				if cy > maxY {
					maxY = cy
				}
				for k := range 8 {
					nx, ny := cx+dx8[k], cy+dy8[k]
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					ni := ny*w + nx
					if visited[ni] || !isFG(nx, ny) {
						continue
					}
					visited[ni] = true
					queue = append(queue, ni)
				}
			}
			if area >= minArea {
				boxes = append(boxes, Box{X: minX, Y: minY, Width: maxX - minX + 1, Height: maxY - minY + 1})
			}
		}
	}
	return boxes
}
