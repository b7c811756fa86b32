package greensim

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrBadSeries reports an invalid time series on construction.
var ErrBadSeries = errors.New("invalid series")

// Series is a set of named channels sharing one strictly increasing
// time grid. Sampling outside the grid clamps to the first or last
// row; inside it interpolates linearly per channel. A channel whose
// first value is NaN counts as absent: sampling it yields NaN.
type Series struct {
	times []float64
	names []string
	cols  [][]float64
	index map[string]int
}

/*
Construct a series over a time grid.

	Args:
	    times: sample instants, s, strictly increasing, at least one

	Returns:
	    empty series, or an error when the grid is invalid
*/
func NewSeries(times []float64) (*Series, error) {
	if len(times) == 0 {
		return nil, fmt.Errorf("%w: empty time grid", ErrBadSeries)
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return nil, fmt.Errorf("%w: time grid not strictly increasing at row %d", ErrBadSeries, i)
		}
	}
	return &Series{
		times: times,
		index: make(map[string]int),
	}, nil
}

// Add appends a named channel. The column length must match the grid.
func (s *Series) Add(name string, col []float64) error {
	if len(col) != len(s.times) {
		return fmt.Errorf("%w: channel %s has %d rows, grid has %d",
			ErrBadSeries, name, len(col), len(s.times))
	}
	if _, dup := s.index[name]; dup {
		return fmt.Errorf("%w: duplicate channel %s", ErrBadSeries, name)
	}
	s.index[name] = len(s.names)
	s.names = append(s.names, name)
	s.cols = append(s.cols, col)
	return nil
}

// Times returns the shared time grid.
func (s *Series) Times() []float64 { return s.times }

// Names returns the channel names in insertion order.
func (s *Series) Names() []string { return s.names }

// Has reports whether a channel exists and is not the NaN sentinel.
func (s *Series) Has(name string) bool {
	i, ok := s.index[name]
	return ok && !math.IsNaN(s.cols[i][0])
}

// Col returns the raw column of a channel, or nil when absent.
func (s *Series) Col(name string) []float64 {
	i, ok := s.index[name]
	if !ok {
		return nil
	}
	return s.cols[i]
}

// First returns the first value of a channel, NaN when absent.
func (s *Series) First(name string) float64 {
	v, _ := s.FirstOK(name)
	return v
}

// FirstOK returns the first value of a channel and whether the
// channel exists and is not the NaN sentinel.
func (s *Series) FirstOK(name string) (float64, bool) {
	i, ok := s.index[name]
	if !ok {
		return math.NaN(), false
	}
	v := s.cols[i][0]
	if math.IsNaN(v) {
		return math.NaN(), false
	}
	return v, true
}

/*
Sample one channel at time t.

	Args:
	    name: channel name
	    t: sample instant, s

	Returns:
	    clamped, linearly interpolated value; NaN when the channel is
	    absent or carries the NaN sentinel
*/
func (s *Series) Sample(name string, t float64) float64 {
	i, ok := s.index[name]
	if !ok {
		return math.NaN()
	}
	return s.sampleCol(i, t)
}

func (s *Series) sampleCol(i int, t float64) float64 {
	col := s.cols[i]
	if math.IsNaN(col[0]) {
		return math.NaN()
	}
	return interp1(s.times, col, t)
}

// SampleRow samples every channel at time t into dst, which must have
// one slot per channel in insertion order.
func (s *Series) SampleRow(t float64, dst []float64) {
	for i := range s.cols {
		dst[i] = s.sampleCol(i, t)
	}
}

/*
Clamped linear interpolation.

	Args:
	    xs: strictly increasing sample points
	    ys: sample values, same length as xs
	    x: query point

	Returns:
	    ys[0] left of the grid, ys[len-1] right of it, the linear
	    interpolant in between
*/
func interp1(xs, ys []float64, x float64) float64 {
	n := len(xs)
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	// j is the first index with xs[j] >= x; 0 < j < n here.
	j := sort.SearchFloat64s(xs, x)
	if xs[j] == x {
		return ys[j]
	}
	w := (x - xs[j-1]) / (xs[j] - xs[j-1])
	return ys[j-1] + w*(ys[j]-ys[j-1])
}

// interpCol interpolates a whole column onto a new grid.
func interpCol(xs, ys, grid []float64) []float64 {
	out := make([]float64, len(grid))
	for i, x := range grid {
		out[i] = interp1(xs, ys, x)
	}
	return out
}

// arange builds the half-open uniform grid t0, t0+step, ... < t1.
func arange(t0, t1, step float64) []float64 {
	n := int(math.Ceil((t1 - t0) / step))
	if n < 1 {
		n = 1
	}
	out := make([]float64, 0, n)
	for k := 0; ; k++ {
		t := t0 + float64(k)*step
		if t >= t1 {
			break
		}
		out = append(out, t)
	}
	return out
}
