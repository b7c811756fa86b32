package greensim

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// weatherRow is one line of a weather CSV file.
type weatherRow struct {
	Datenum   float64 `csv:"datenum"`
	IGlob     float64 `csv:"iGlob"`
	TOut      float64 `csv:"tOut"`
	VaporDens float64 `csv:"vaporDens"`
	Co2Dens   float64 `csv:"co2Dens"`
	Wind      float64 `csv:"wind"`
	TSky      float64 `csv:"tSky"`
	TSoOut    float64 `csv:"tSoOut"`
	Elevation float64 `csv:"elevation"`
}

/*
LoadWeather reads a weather table from a CSV file. The file carries a
header row with the columns datenum, iGlob, tOut, vaporDens, co2Dens,
wind, tSky, tSoOut and elevation; time is in days (datenum), radiation
in W m^{-2}, temperatures in deg C, vapor in kg m^{-3}, CO2 in
kg m^{-3}, wind in m s^{-1}. Elevation is in m and read from the first
row. The daily radiation sum channel is derived from the radiation
column.

	Returns:
	    the weather table, the site elevation, or an error for a
	    missing file, an unsupported extension or a short table
*/
func LoadWeather(path string) (*Weather, float64, error) {
	rows, err := readRows[weatherRow](path)
	if err != nil {
		return nil, 0, fmt.Errorf("load weather: %w", err)
	}
	if len(rows) < 2 {
		return nil, 0, fmt.Errorf("load weather: %w: need at least 2 rows, got %d", ErrBadSeries, len(rows))
	}
	w := &Weather{
		Datenum:   make([]float64, len(rows)),
		IGlob:     make([]float64, len(rows)),
		TOut:      make([]float64, len(rows)),
		VaporDens: make([]float64, len(rows)),
		Co2Dens:   make([]float64, len(rows)),
		Wind:      make([]float64, len(rows)),
		TSky:      make([]float64, len(rows)),
		TSoOut:    make([]float64, len(rows)),
	}
	for i, r := range rows {
		w.Datenum[i] = r.Datenum
		w.IGlob[i] = r.IGlob
		w.TOut[i] = r.TOut
		w.VaporDens[i] = r.VaporDens
		w.Co2Dens[i] = r.Co2Dens
		w.Wind[i] = r.Wind
		w.TSky[i] = r.TSky
		w.TSoOut[i] = r.TSoOut
	}
	w.DayRadSum = DayLightSum(w.Datenum, w.IGlob)
	return w, rows[0].Elevation, nil
}

// scheduleRow is one line of a control schedule CSV file.
type scheduleRow struct {
	Time     float64 `csv:"time"`
	ThScr    float64 `csv:"thScr"`
	BlScr    float64 `csv:"blScr"`
	Roof     float64 `csv:"roof"`
	TPipe    float64 `csv:"tPipe"`
	TGroPipe float64 `csv:"tGroPipe"`
	Lamp     float64 `csv:"lamp"`
	IntLamp  float64 `csv:"intLamp"`
	ExtCo2   float64 `csv:"extCo2"`
}

/*
LoadSchedule reads prescribed control trajectories from a CSV file
with the columns time, thScr, blScr, roof, tPipe, tGroPipe, lamp,
intLamp and extCo2. Time is in seconds from the start of the run,
settings in [0, 1], pipe temperatures in deg C.
*/
func LoadSchedule(path string) (*Schedule, error) {
	rows, err := readRows[scheduleRow](path)
	if err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("load schedule: %w: need at least 2 rows, got %d", ErrBadSeries, len(rows))
	}
	times := make([]float64, len(rows))
	cols := map[string][]float64{
		"thScr": make([]float64, len(rows)), "blScr": make([]float64, len(rows)),
		"roof": make([]float64, len(rows)), "lamp": make([]float64, len(rows)),
		"intLamp": make([]float64, len(rows)), "extCo2": make([]float64, len(rows)),
		"tPipe": make([]float64, len(rows)), "tGroPipe": make([]float64, len(rows)),
	}
	for i, r := range rows {
		times[i] = r.Time
		cols["thScr"][i] = r.ThScr
		cols["blScr"][i] = r.BlScr
		cols["roof"][i] = r.Roof
		cols["lamp"][i] = r.Lamp
		cols["intLamp"][i] = r.IntLamp
		cols["extCo2"][i] = r.ExtCo2
		cols["tPipe"][i] = r.TPipe
		cols["tGroPipe"][i] = r.TGroPipe
	}
	sched, err := NewSchedule(times, cols)
	if err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}
	return sched, nil
}

// readRows unmarshals a CSV file into row structs.
func readRows[T any](path string) ([]*T, error) {
	if ext := filepath.Ext(path); ext != ".csv" {
		return nil, fmt.Errorf("unsupported file type %q, want .csv", ext)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var rows []*T
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return rows, nil
}
