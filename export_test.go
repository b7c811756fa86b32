package greensim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	s, err := NewSeries([]float64{0, 300})
	require.NoError(t, err)
	require.NoError(t, s.Add("tAir", []float64{18.5, 19}))
	require.NoError(t, s.Add("co2Air", []float64{700, 710}))

	var b strings.Builder
	require.NoError(t, s.WriteCSV(&b, true))

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "time,tAir,co2Air", lines[0])
	assert.Equal(t, "0,18.5,700", lines[1])
	assert.Equal(t, "300,19,710", lines[2])

	// Without a header only the data rows appear.
	b.Reset()
	require.NoError(t, s.WriteCSV(&b, false))
	assert.Len(t, strings.Split(strings.TrimSpace(b.String()), "\n"), 2)
}
