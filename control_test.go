package greensim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleControlsStart(t *testing.T) {
	u := newRuleControls()
	assert.Equal(t, 1.0, u.thScr)
	assert.Equal(t, 0.0, u.boil)
	assert.Equal(t, 0.0, u.roof)
}

func TestApplyRulesColdLockout(t *testing.T) {
	p := NewParams(LampNone)
	x := &State{tAir: 30}
	d := &Disturbances{}
	a := &Aux{
		heatSetPoint: 18,
		co2InPpm:     400,
		co2SetPoint:  800,
		ventHeat:     1,
		ventRh:       1,
		ventCold:     0, // too cold outside, vents stay shut
		thScrCold:    1,
		thScrHeat:    1,
		thScrRh:      1,
	}

	u := newRuleControls()
	u.applyRules(p, x, d, a)
	assert.Equal(t, 0.0, u.roof)
	assert.Equal(t, 1.0, u.thScr)
}

func TestApplyRulesScreenTakesMostRestrictive(t *testing.T) {
	p := NewParams(LampNone)
	x := &State{tAir: 20}
	d := &Disturbances{}
	a := &Aux{thScrCold: 1, thScrHeat: 0.4, thScrRh: 0.7, ventCold: 1}

	u := newRuleControls()
	u.applyRules(p, x, d, a)
	assert.Equal(t, 0.4, u.thScr)
}

func TestApplyRulesHeatingDemand(t *testing.T) {
	p := NewParams(LampNone)
	d := &Disturbances{}
	a := &Aux{heatSetPoint: 18, thScrCold: 1, ventCold: 1}

	cold := newRuleControls()
	cold.applyRules(p, &State{tAir: 12}, d, a)
	warm := newRuleControls()
	warm.applyRules(p, &State{tAir: 24}, d, a)

	assert.InDelta(t, 1, cold.boil, 1e-6)
	assert.InDelta(t, 0, warm.boil, 1e-6)
	assert.Equal(t, cold.boil, cold.boilGro)
}

func TestApplyRulesBlackoutScreen(t *testing.T) {
	p := NewParams(LampHPS)
	p.useBlScr = 1
	x := &State{tAir: 20}
	a := &Aux{lampOn: 1, thScrCold: 1, ventCold: 1}

	night := newRuleControls()
	night.applyRules(p, x, &Disturbances{isDaySmooth: 0}, a)
	day := newRuleControls()
	day.applyRules(p, x, &Disturbances{isDaySmooth: 1}, a)

	assert.Equal(t, 1.0, night.blScr)
	assert.Equal(t, 0.0, day.blScr)
}

func testSchedule(t *testing.T) *Schedule {
	t.Helper()
	times := []float64{0, 600, 1200, 1800}
	sched, err := NewSchedule(times, map[string][]float64{
		"thScr":    {1, 1, 0, 0},
		"blScr":    {0, 0, 0, 0},
		"roof":     {0, 0.2, 0.4, 0.6},
		"lamp":     {1, 1, 0, 0},
		"intLamp":  {0, 0, 0, 0},
		"extCo2":   {0.5, 0.5, 0.5, 0.5},
		"tPipe":    {50, 45, 0, 0},
		"tGroPipe": {0, 0, 40, 40},
	})
	require.NoError(t, err)
	return sched
}

func TestScheduleSample(t *testing.T) {
	sched := testSchedule(t)

	var u Controls
	u.boil = 0.7 // must be forced to zero by the schedule
	sched.sampleInto(300, &u)

	assert.Equal(t, 1.0, u.thScr)
	assert.InDelta(t, 0.1, u.roof, 1e-12)
	assert.Equal(t, 1.0, u.lamp)
	assert.Equal(t, 0.5, u.extCo2)
	assert.Equal(t, 0.0, u.boil)
	assert.Equal(t, 0.0, u.side)
}

func TestScheduleSampleAbsentChannel(t *testing.T) {
	nan := math.NaN()
	times := []float64{0, 600, 1200, 1800}
	sched, err := NewSchedule(times, map[string][]float64{
		"thScr":    {1, 1, 0, 0},
		"blScr":    {0, 0, 0, 0},
		"roof":     {0, 0.2, 0.4, 0.6},
		"lamp":     {nan, nan, nan, nan},
		"intLamp":  {0, 0, 0, 0},
		"extCo2":   {0.5, 0.5, 0.5, 0.5},
		"tPipe":    {50, 45, 0, 0},
		"tGroPipe": {0, 0, 40, 40},
	})
	require.NoError(t, err)

	u := newRuleControls()
	u.lamp = 1 // lamps currently on, the schedule does not say otherwise
	sched.sampleInto(300, &u)

	assert.Equal(t, 1.0, u.lamp)
	assert.False(t, math.IsNaN(u.lamp))
	assert.Equal(t, 1.0, u.thScr)
	assert.Equal(t, 0.5, u.extCo2)
}

func TestPipeDisturbances(t *testing.T) {
	sched := testSchedule(t)
	times, tPipe, tGroPipe, pipeOff, groPipeOff := sched.pipeDisturbances()

	assert.Len(t, times, 4)
	assert.Equal(t, []float64{50, 45, 0, 0}, tPipe)
	assert.Equal(t, []float64{0, 0, 40, 40}, tGroPipe)
	// The rail shuts off between samples 1 and 2.
	assert.Equal(t, []float64{0, 1, 0, 0}, pipeOff)
	// The grow pipes are still on at the end; the wrap-around
	// comparison against the first sample flags the last one.
	assert.Equal(t, []float64{0, 0, 0, 1}, groPipeOff)
}

func TestSwitchOffMarkers(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"mid run", []float64{0, 30, 30, 0}, []float64{0, 0, 1, 0}},
		{"always on", []float64{30, 30, 30}, []float64{0, 0, 0}},
		{"always off", []float64{0, 0, 0}, []float64{0, 0, 0}},
		{"wraps to start", []float64{0, 0, 30}, []float64{0, 0, 1}},
		{"on at both ends", []float64{30, 0, 30}, []float64{1, 0, 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, switchOffMarkers(c.in))
		})
	}
}
