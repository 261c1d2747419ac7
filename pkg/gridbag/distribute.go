package gridbag

// distribute sizes one axis for the available length. It returns the final
// column sizes and the offset of the grid block from the content origin.
//
// Preferred sizes are used when they fit, minimum sizes otherwise. Any
// surplus over the chosen base goes to weighted columns: each gets the
// truncated proportional share, then leftover pixels are handed out one at a
// time to weighted columns in index order. Without weights the block keeps
// its base sizes and is centered.
//
// When even the minimum sizes do not fit, the deficit is taken from the
// leading columns in index order, each shrinking to no less than 0, so the
// trailing columns keep their minimum and stay inside the container.
func distribute(a axis, available, gap int) ([]int, int) {
	sizes := make([]int, len(a.pref))
	if len(sizes) == 0 {
		return sizes, 0
	}

	base := a.pref
	if available < span(a.pref, gap) {
		base = a.min
	}
	copy(sizes, base)

	extra := available - span(sizes, gap)
	if extra < 0 {
		shrink(sizes, -extra)
		return sizes, 0
	}
	weight := 0.0
	for _, w := range a.weights {
		weight += w
	}
	if extra == 0 || weight <= 0 {
		return sizes, extra / 2
	}

	given := 0
	for i, w := range a.weights {
		if w <= 0 {
			continue
		}
		share := min(int(float64(extra)*w/weight), extra-given)
		sizes[i] += share
		given += share
	}
	for left := extra - given; left > 0; {
		for i, w := range a.weights {
			if left == 0 {
				break
			}
			if w > 0 {
				sizes[i]++
				left--
			}
		}
	}
	return sizes, 0
}

// shrink removes deficit pixels from sizes, front to back.
func shrink(sizes []int, deficit int) {
	for i := range sizes {
		if deficit <= 0 {
			return
		}
		cut := min(sizes[i], deficit)
		sizes[i] -= cut
		deficit -= cut
	}
}

// span returns the total length of sizes laid end to end with gaps between them.
func span(sizes []int, gap int) int {
	if len(sizes) == 0 {
		return 0
	}
	total := gap * (len(sizes) - 1)
	for _, s := range sizes {
		total += s
	}
	return total
}

// starts returns the leading edge of each column for a block beginning at origin.
func starts(sizes []int, origin, gap int) []int {
	out := make([]int, len(sizes))
	pos := origin
	for i, s := range sizes {
		out[i] = pos
		pos += s + gap
	}
	return out
}
