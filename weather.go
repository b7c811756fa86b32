package greensim

import (
	"fmt"
	"math"
)

// secPerDay is the number of seconds in a day.
const secPerDay = 86400.0

// Weather holds an outdoor weather record on a regular time grid.
type Weather struct {
	Datenum   []float64 // timestamps, days in datenum convention
	IGlob     []float64 // global irradiation, W m^-2
	TOut      []float64 // outdoor air temperature, °C
	VaporDens []float64 // outdoor vapor concentration, kg m^-3
	Co2Dens   []float64 // outdoor CO2 concentration, kg m^-3
	Wind      []float64 // outdoor wind speed, m s^-1
	TSky      []float64 // sky temperature, °C
	TSoOut    []float64 // temperature of the external soil layer, °C
	DayRadSum []float64 // daily radiation sum, MJ m^-2 day^-1, nil to compute
}

// StartTime is the simulation clock at the first weather row, days.
func (w *Weather) StartTime() float64 { return w.Datenum[0] }

/*
Convert the weather record into the disturbance series of the model.

	Returns:
	    series on a seconds grid starting at 0 with channels iGlob,
	    tOut, vpOut, co2Out, wind, tSky, tSoOut, dayRadSum, isDay and
	    isDaySmooth, or an error for an invalid record
*/
func (w *Weather) Disturbances() (*Series, error) {
	n := len(w.Datenum)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty weather record", ErrBadSeries)
	}
	for _, col := range [][]float64{w.IGlob, w.TOut, w.VaporDens, w.Co2Dens, w.Wind, w.TSky, w.TSoOut} {
		if len(col) != n {
			return nil, fmt.Errorf("%w: weather columns differ in length", ErrBadSeries)
		}
	}

	times := make([]float64, n)
	for i, dn := range w.Datenum {
		times[i] = (dn - w.Datenum[0]) * secPerDay
	}
	d, err := NewSeries(times)
	if err != nil {
		return nil, err
	}

	vpOut := make([]float64, n)
	co2Out := make([]float64, n)
	for i := range times {
		vpOut[i] = VaporDens2Pres(w.TOut[i], w.VaporDens[i])
		co2Out[i] = w.Co2Dens[i] * 1e6 // kg m^-3 to mg m^-3
	}
	daySum := w.DayRadSum
	if daySum == nil {
		daySum = DayLightSum(w.Datenum, w.IGlob)
	}

	isDay := make([]float64, n)
	for i, g := range w.IGlob {
		if g > 0 {
			isDay[i] = 1
		}
	}
	isDaySmooth := append([]float64(nil), isDay...)
	dayTransitions(isDay, linearTransition())
	dayTransitions(isDaySmooth, sigmoidTransition())

	for _, ch := range []struct {
		name string
		col  []float64
	}{
		{"iGlob", w.IGlob},
		{"tOut", w.TOut},
		{"vpOut", vpOut},
		{"co2Out", co2Out},
		{"wind", w.Wind},
		{"tSky", w.TSky},
		{"tSoOut", w.TSoOut},
		{"dayRadSum", daySum},
		{"isDay", isDay},
		{"isDaySmooth", isDaySmooth},
	} {
		if err := d.Add(ch.name, ch.col); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// transSize is the number of samples in a sunrise or sunset transition.
const transSize = 12

func linearTransition() []float64 {
	tr := make([]float64, transSize)
	for i := range tr {
		tr[i] = float64(i) / float64(transSize-1)
	}
	return tr
}

func sigmoidTransition() []float64 {
	tr := linearTransition()
	for i, v := range tr {
		tr[i] = 1 / (1 + math.Exp(-10*(v-0.5)))
	}
	return tr
}

// dayTransitions replaces the hard 0/1 edges of a day indicator with
// the given ramp around each sunrise and the first sunset of a day.
func dayTransitions(isDay []float64, trans []float64) {
	sunset := false
	for k := transSize; k < len(isDay)-transSize; k++ {
		if isDay[k] == 0 {
			sunset = false
		}
		if isDay[k] == 0 && isDay[k+1] == 1 {
			copy(isDay[k-transSize/2:k+transSize/2], trans)
		} else if isDay[k] == 1 && isDay[k+1] == 0 && !sunset {
			for i, v := range trans {
				isDay[k-transSize/2+i] = 1 - v
			}
			sunset = true
		}
	}
}

/*
Daily radiation sums from a radiation record.

	Args:
	    datenum: regularly spaced timestamps, days
	    rad: global radiation at those instants, W m^-2

	Returns:
	    per-day radiation sum, MJ m^-2 day^-1, constant within each
	    day and changing at midnight
*/
func DayLightSum(datenum, rad []float64) []float64 {
	n := len(datenum)
	sums := make([]float64, n)
	if n < 2 {
		return sums
	}
	interval := (datenum[1] - datenum[0]) * secPerDay

	nextMidnight := func(from int) int {
		for k := from; k+1 < n; k++ {
			if math.Floor(datenum[k+1])-math.Floor(datenum[k]) == 1 {
				return k + 1
			}
		}
		return n
	}

	mnBefore := 0
	mnAfter := nextMidnight(0)
	daySum := 0.0
	for k := mnBefore; k < mnAfter; k++ {
		daySum += rad[k]
	}
	for k := 0; k < n; k++ {
		sums[k] = daySum * interval * 1e-6
		if k == mnAfter-1 {
			mnBefore = mnAfter
			mnAfter = nextMidnight(mnBefore + 1)
			daySum = 0
			for j := mnBefore; j < mnAfter; j++ {
				daySum += rad[j]
			}
		}
	}
	return sums
}

/*
Generate an artificial weather record for testing and demos: a clear
sinusoidal day repeated for the given number of days at 300 s
resolution, 410 ppm outdoor CO2, constant wind and deep soil
temperature.

	Args:
	    days: length of the record, days (rounded up)

	Returns:
	    weather record starting at noon of an arbitrary date
*/
func ArtificialWeather(days float64) *Weather {
	nDays := int(math.Ceil(days))
	n := nDays * 288
	w := &Weather{
		Datenum:   make([]float64, n),
		IGlob:     make([]float64, n),
		TOut:      make([]float64, n),
		VaporDens: make([]float64, n),
		Co2Dens:   make([]float64, n),
		Wind:      make([]float64, n),
		TSky:      make([]float64, n),
		TSoOut:    make([]float64, n),
	}
	for i := 0; i < n; i++ {
		t := float64(i) * 300
		w.Datenum[i] = 737485.5 + t/secPerDay
		w.IGlob[i] = 350 * math.Max(0, math.Sin(t*2*math.Pi/secPerDay))
		w.TOut[i] = 5*math.Sin(t*2*math.Pi/secPerDay) + 15
		w.VaporDens[i] = 0.006
		w.Co2Dens[i] = CO2Ppm2Dens(w.TOut[i], 410)
		w.Wind[i] = 1
		w.TSky[i] = w.TOut[i] - 20
		w.TSoOut[i] = 20
	}
	w.DayRadSum = DayLightSum(w.Datenum, w.IGlob)
	return w
}
