package greensim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeriesRejectsBadGrids(t *testing.T) {
	_, err := NewSeries(nil)
	assert.ErrorIs(t, err, ErrBadSeries)

	_, err = NewSeries([]float64{0, 10, 10})
	assert.ErrorIs(t, err, ErrBadSeries)

	_, err = NewSeries([]float64{0, 10, 5})
	assert.ErrorIs(t, err, ErrBadSeries)
}

func TestSeriesAdd(t *testing.T) {
	s, err := NewSeries([]float64{0, 10})
	require.NoError(t, err)

	require.NoError(t, s.Add("a", []float64{1, 2}))
	assert.ErrorIs(t, s.Add("a", []float64{3, 4}), ErrBadSeries)
	assert.ErrorIs(t, s.Add("b", []float64{1}), ErrBadSeries)
	assert.Equal(t, []string{"a"}, s.Names())
}

func TestSeriesSample(t *testing.T) {
	s, err := NewSeries([]float64{0, 10, 20})
	require.NoError(t, err)
	require.NoError(t, s.Add("v", []float64{1, 3, 5}))

	assert.Equal(t, 2.0, s.Sample("v", 5))
	assert.Equal(t, 3.0, s.Sample("v", 10))

	// Outside the grid the value clamps to the nearest end.
	assert.Equal(t, 1.0, s.Sample("v", -100))
	assert.Equal(t, 5.0, s.Sample("v", 100))

	// Unknown channels sample as NaN.
	assert.True(t, math.IsNaN(s.Sample("missing", 5)))
}

func TestSeriesNaNSentinel(t *testing.T) {
	s, err := NewSeries([]float64{0, 10})
	require.NoError(t, err)
	require.NoError(t, s.Add("v", []float64{math.NaN(), 2}))

	assert.False(t, s.Has("v"))
	assert.True(t, math.IsNaN(s.Sample("v", 5)))
	_, ok := s.FirstOK("v")
	assert.False(t, ok)
}

func TestSampleRow(t *testing.T) {
	s, err := NewSeries([]float64{0, 10})
	require.NoError(t, err)
	require.NoError(t, s.Add("a", []float64{0, 10}))
	require.NoError(t, s.Add("b", []float64{10, 0}))

	dst := make([]float64, 2)
	s.SampleRow(5, dst)
	assert.Equal(t, []float64{5, 5}, dst)
}

func TestArangeHalfOpen(t *testing.T) {
	assert.Equal(t, []float64{0, 300, 600, 900}, arange(0, 1000, 300))
	// An exact multiple excludes the end point.
	assert.Equal(t, []float64{0, 300, 600}, arange(0, 900, 300))
	assert.Equal(t, []float64{50}, arange(50, 100, 300))
}
