package mixer

// band is a run of whole rows [y0, y1) blended by one worker.
type band struct {
	y0, y1 int
}

func (b band) rows() int {
	return b.y1 - b.y0
}

// splitRows cuts height rows into bands of at most size rows.
func splitRows(height, size int) []band {
	if size < 1 {
		size = 1
	}

	var bs []band
	for y := 0; y < height; y += size {
		end := y + size
		if end > height {
			end = height
		}
		bs = append(bs, band{y0: y, y1: end})
	}

	return bs
}
