package greensim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtificialWeather(t *testing.T) {
	w := ArtificialWeather(2)
	assert.Len(t, w.Datenum, 2*288)
	assert.Equal(t, w.Datenum[0], w.StartTime())

	// Radiation is nonnegative and reaches its plateau, nights are dark.
	maxRad := 0.0
	for _, g := range w.IGlob {
		assert.GreaterOrEqual(t, g, 0.0)
		if g > maxRad {
			maxRad = g
		}
	}
	assert.InDelta(t, 350, maxRad, 1)
	assert.Equal(t, 0.0, w.IGlob[200]) // middle of the night

	// A fractional length rounds up to whole days.
	assert.Len(t, ArtificialWeather(0.5).Datenum, 288)
}

func TestDisturbancesChannels(t *testing.T) {
	d, err := ArtificialWeather(1).Disturbances()
	require.NoError(t, err)

	for _, name := range []string{
		"iGlob", "tOut", "vpOut", "co2Out", "wind",
		"tSky", "tSoOut", "dayRadSum", "isDay", "isDaySmooth",
	} {
		assert.Truef(t, d.Has(name), "missing channel %s", name)
	}
	assert.False(t, d.Has("tPipe"))

	// The grid is seconds from the first row.
	assert.Equal(t, 0.0, d.Times()[0])
	assert.InDelta(t, 300, d.Times()[1], 1e-6)

	// Outdoor CO2 is in mg m^-3.
	co2 := d.First("co2Out")
	assert.Greater(t, co2, 500.0)
	assert.Less(t, co2, 1000.0)
}

func TestDayIndicatorRamps(t *testing.T) {
	d, err := ArtificialWeather(2).Disturbances()
	require.NoError(t, err)

	isDay := d.Col("isDay")
	ramped := false
	for _, v := range isDay {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
		if v > 0 && v < 1 {
			ramped = true
		}
	}
	// The sunrise and sunset edges are smoothed, not hard switches.
	assert.True(t, ramped)
}

func TestDayLightSum(t *testing.T) {
	// Two days at hourly resolution with constant radiation on day
	// one and darkness on day two.
	n := 48
	datenum := make([]float64, n)
	rad := make([]float64, n)
	for i := range datenum {
		datenum[i] = 737485 + float64(i)/24
		if i < 24 {
			rad[i] = 100
		}
	}
	sums := DayLightSum(datenum, rad)

	// 100 W m^-2 over a day is 8.64 MJ m^-2.
	assert.InDelta(t, 8.64, sums[0], 1e-9)
	assert.InDelta(t, 8.64, sums[12], 1e-9)
	assert.InDelta(t, 0, sums[30], 1e-9)
	// Constant within each day.
	assert.Equal(t, sums[0], sums[23])
}

func TestDayLightSumShortRecord(t *testing.T) {
	assert.Equal(t, []float64{0}, DayLightSum([]float64{737485}, []float64{100}))
}
