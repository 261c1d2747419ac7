package gridbag

import (
	"cmp"
	"slices"
)

// axis holds the sizing tables for the columns (or rows) of a grid.
type axis struct {
	min     []int
	pref    []int
	weights []float64
}

func newAxis(n int, floors []int, weights []float64) axis {
	a := axis{
		min:     make([]int, n),
		pref:    make([]int, n),
		weights: make([]float64, n),
	}
	copy(a.min, floors)
	copy(a.pref, floors)
	copy(a.weights, weights)
	return a
}

// add folds one element covering [lo, hi) into the tables. need values
// already include padding and insets.
func (a *axis) add(lo, hi int, weight float64, minNeed, prefNeed, gap int) {
	spreadWeight(a.weights[lo:hi], weight)
	growSpan(a.min[lo:hi], a.weights[lo:hi], minNeed, gap)
	growSpan(a.pref[lo:hi], a.weights[lo:hi], prefNeed, gap)
}

// measure computes the column and row tables. Elements are folded in order
// of increasing span so that narrow elements establish sizes and weights
// before wide elements distribute their surplus over them.
func measure(items []item, cols, rows int, o *options) (x, y axis) {
	x = newAxis(cols, o.columnWidths, o.columnWeights)
	y = newAxis(rows, o.rowHeights, o.rowWeights)

	for _, i := range bySpan(items, func(c Cell) int { return c.Columns }) {
		it := &items[i]
		pad := it.con.IPadX + it.con.Insets.Horizontal()
		lo := it.cell.Column
		x.add(lo, lo+it.cell.Columns, it.con.WeightX, it.min.Width+pad, it.pref.Width+pad, o.hgap)
	}
	for _, i := range bySpan(items, func(c Cell) int { return c.Rows }) {
		it := &items[i]
		pad := it.con.IPadY + it.con.Insets.Vertical()
		lo := it.cell.Row
		y.add(lo, lo+it.cell.Rows, it.con.WeightY, it.min.Height+pad, it.pref.Height+pad, o.vgap)
	}

	// A column is never preferred smaller than its minimum.
	for _, a := range []*axis{&x, &y} {
		for i := range a.pref {
			a.pref[i] = max(a.pref[i], a.min[i])
		}
	}
	return x, y
}

// bySpan returns item indexes stably sorted by span.
func bySpan(items []item, span func(Cell) int) []int {
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(span(items[a].cell), span(items[b].cell))
	})
	return idx
}

// spreadWeight raises the weights of a span so they sum to at least w.
// The difference is split in proportion to the existing weights, or evenly
// when all are zero. Existing weights are never lowered.
func spreadWeight(ws []float64, w float64) {
	total := 0.0
	for _, v := range ws {
		total += v
	}
	diff := w - total
	if diff <= 0 {
		return
	}
	if total <= 0 {
		share := diff / float64(len(ws))
		for i := range ws {
			ws[i] += share
		}
		return
	}
	last := lastWeighted(ws)
	remaining := diff
	for i, v := range ws {
		if v <= 0 {
			continue
		}
		share := v * diff / total
		if i == last {
			share = remaining
		}
		ws[i] += share
		remaining -= share
	}
}

// growSpan grows sizes so that together with the gaps between them they
// cover need. The surplus goes to weighted cells in proportion to weight, the
// last weighted cell taking the rounding remainder. Unweighted spans grow
// evenly with leftover pixels going to the leading cells.
func growSpan(sizes []int, weights []float64, need, gap int) {
	have := gap * (len(sizes) - 1)
	total := 0.0
	for i, s := range sizes {
		have += s
		total += weights[i]
	}
	diff := need - have
	if diff <= 0 {
		return
	}

	if total <= 0 {
		n := len(sizes)
		for i := range sizes {
			sizes[i] += diff / n
			if i < diff%n {
				sizes[i]++
			}
		}
		return
	}

	last := lastWeighted(weights)
	remaining := diff
	for i, w := range weights {
		if w <= 0 || i == last {
			continue
		}
		share := min(int(w*float64(diff)/total), remaining)
		sizes[i] += share
		remaining -= share
	}
	sizes[last] += remaining
}

func lastWeighted(ws []float64) int {
	for i := len(ws) - 1; i >= 0; i-- {
		if ws[i] > 0 {
			return i
		}
	}
	return len(ws) - 1
}
