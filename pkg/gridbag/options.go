package gridbag

import (
	"io"

	"github.com/charmbracelet/log"
)

// Option configures a [Layout].
type Option func(*options)

type options struct {
	hgap, vgap    int
	columnWidths  []int
	rowHeights    []int
	columnWeights []float64
	rowWeights    []float64
	orientation   Orientation
	logger        *log.Logger
}

func defaultOptions() options {
	return options{logger: log.NewWithOptions(io.Discard, log.Options{})}
}

// WithGaps sets the space between adjacent columns and rows.
// Negative gaps are treated as 0.
func WithGaps(h, v int) Option {
	return func(o *options) { o.hgap, o.vgap = max(h, 0), max(v, 0) }
}

// WithColumnWidths sets minimum column widths. The grid has at least as
// many columns as widths given.
func WithColumnWidths(widths ...int) Option {
	return func(o *options) { o.columnWidths = nonNegative(widths) }
}

// WithRowHeights sets minimum row heights. The grid has at least as many
// rows as heights given.
func WithRowHeights(heights ...int) Option {
	return func(o *options) { o.rowHeights = nonNegative(heights) }
}

// WithColumnWeights sets base column weights that element weights can only raise.
func WithColumnWeights(weights ...float64) Option {
	return func(o *options) { o.columnWeights = cleanWeights(weights) }
}

// WithRowWeights sets base row weights that element weights can only raise.
func WithRowWeights(weights ...float64) Option {
	return func(o *options) { o.rowWeights = cleanWeights(weights) }
}

// WithOrientation sets the column direction.
func WithOrientation(or Orientation) Option {
	return func(o *options) { o.orientation = or }
}

// WithLogger sets the logger for recomputation events.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Logger returns the logger set with [WithLogger], or a discarding one.
func (l *Layout) Logger() *log.Logger { return l.opts.logger }

func nonNegative(in []int) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = max(v, 0)
	}
	return out
}

func cleanWeights(in []float64) []float64 {
	out := make([]float64, len(in))
	for i, w := range in {
		out[i] = cleanWeight(w)
	}
	return out
}
