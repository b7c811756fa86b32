package greensim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const weatherCSV = `datenum,iGlob,tOut,vaporDens,co2Dens,wind,tSky,tSoOut,elevation
737485.0,0,10,0.006,0.00075,2,-5,18,12
737485.5,400,15,0.007,0.00075,3,0,18,12
737486.0,0,11,0.006,0.00075,2,-4,18,12
`

func TestLoadWeather(t *testing.T) {
	path := writeTestFile(t, "weather.csv", weatherCSV)

	w, elevation, err := LoadWeather(path)
	require.NoError(t, err)

	assert.Equal(t, 12.0, elevation)
	assert.Equal(t, 737485.0, w.StartTime())
	assert.Equal(t, []float64{0, 400, 0}, w.IGlob)
	assert.Equal(t, []float64{10, 15, 11}, w.TOut)
	// The daily radiation sum is derived on load.
	require.Len(t, w.DayRadSum, 3)
	assert.Greater(t, w.DayRadSum[0], 0.0)
}

func TestLoadWeatherErrors(t *testing.T) {
	_, _, err := LoadWeather(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	_, _, err = LoadWeather(writeTestFile(t, "weather.txt", weatherCSV))
	assert.Error(t, err)

	short := "datenum,iGlob,tOut,vaporDens,co2Dens,wind,tSky,tSoOut,elevation\n737485.0,0,10,0.006,0.00075,2,-5,18,12\n"
	_, _, err = LoadWeather(writeTestFile(t, "short.csv", short))
	assert.ErrorIs(t, err, ErrBadSeries)
}

const scheduleCSV = `time,thScr,blScr,roof,tPipe,tGroPipe,lamp,intLamp,extCo2
0,1,0,0,50,0,1,0,0.5
3600,1,0,0.2,45,0,1,0,0.5
7200,0,0,0.4,0,40,0,0,0.5
`

func TestLoadSchedule(t *testing.T) {
	path := writeTestFile(t, "schedule.csv", scheduleCSV)

	sched, err := LoadSchedule(path)
	require.NoError(t, err)

	var u Controls
	sched.sampleInto(1800, &u)
	assert.Equal(t, 1.0, u.thScr)
	assert.InDelta(t, 0.1, u.roof, 1e-12)

	_, tPipe, _, pipeOff, _ := sched.pipeDisturbances()
	assert.Equal(t, []float64{50, 45, 0}, tPipe)
	assert.Equal(t, []float64{0, 1, 0}, pipeOff)
}

func TestLoadScheduleErrors(t *testing.T) {
	_, err := LoadSchedule(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	short := "time,thScr,blScr,roof,tPipe,tGroPipe,lamp,intLamp,extCo2\n0,1,0,0,50,0,1,0,0.5\n"
	_, err = LoadSchedule(writeTestFile(t, "short.csv", short))
	assert.ErrorIs(t, err, ErrBadSeries)
}
