package easel

// TraceLine walks the discrete pixel path of the straight segment from
// (x0, y0) to (x1, y1), calling plot for every pixel including both
// endpoints. A zero-length segment plots exactly one pixel.
//
// The walk advances one step at a time along the dominant axis, so the
// path never skips a row or column: when the segment is steeper than 45
// degrees the roles of x and y are swapped for the duration of the walk,
// and when the start exceeds the end on the primary axis the walk runs
// downward instead of upward. The secondary axis advances whenever the
// error accumulator (biased by half a primary step) goes negative.
//
// plot receives coordinates in the original, unswapped orientation. It is
// the caller's job to bounds-check writes; TraceLine itself never clips.
func TraceLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}

	rev := x0 > x1
	dx := x1 - x0
	if rev {
		dx = x0 - x1
	}
	dy := abs(y1 - y0)

	err := dx / 2
	ystep := -1
	if y0 < y1 {
		ystep = 1
	}

	x, y := x0, y0
	for {
		if rev {
			if x < x1 {
				return
			}
		} else if x > x1 {
			return
		}

		if steep {
			plot(y, x)
		} else {
			plot(x, y)
		}

		err -= dy
		if err < 0 {
			y += ystep
			err += dx
		}
		if rev {
			x--
		} else {
			x++
		}
	}
}

// LinePoints returns the pixels of the segment from (x0, y0) to (x1, y1)
// in traversal order. Convenience wrapper around TraceLine for callers
// that want the path as a value.
func LinePoints(x0, y0, x1, y1 int) []Point {
	n := abs(x1-x0) + 1
	if d := abs(y1-y0) + 1; d > n {
		n = d
	}
	pts := make([]Point, 0, n)
	TraceLine(x0, y0, x1, y1, func(x, y int) {
		pts = append(pts, Point{X: x, Y: y})
	})
	return pts
}
