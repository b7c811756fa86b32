package greensim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDisturbSeries(t *testing.T) *Series {
	t.Helper()
	d, err := ArtificialWeather(1).Disturbances()
	require.NoError(t, err)
	return d
}

func testInitial(t *testing.T, p *Params, d *Series) *State {
	t.Helper()
	return NewInitialState(p, d, 737485.5, nil)
}

func TestSampleDisturbances(t *testing.T) {
	s := testDisturbSeries(t)

	var d Disturbances
	sampleDisturbances(s, 0, &d)
	assert.False(t, d.hasPipe)
	assert.Equal(t, 1.0, d.wind)
	assert.Equal(t, 20.0, d.tSoOut)
	assert.InDelta(t, d.tOut-20, d.tSky, 1e-9)
	assert.Greater(t, d.dayRadSum, 0.0)
}

func TestEvalProducesFiniteDerivatives(t *testing.T) {
	p := NewParams(LampHPS)
	s := testDisturbSeries(t)
	r := newRHS(p, s, nil)

	x := testInitial(t, p, s)
	xv := make([]float64, stateDim)
	x.Vector(xv)
	dx := make([]float64, stateDim)

	require.NoError(t, r.eval(0, xv, dx))
	for i, v := range dx {
		assert.Falsef(t, math.IsNaN(v) || math.IsInf(v, 0),
			"component %s is %v", stateChannels[i], v)
	}
	// The clock advances one day per day.
	assert.InDelta(t, 1.0/86400, dx[18], 1e-15)
}

func TestGuardFirstEvaluationFails(t *testing.T) {
	p := NewParams(LampNone)
	s := testDisturbSeries(t)
	r := newRHS(p, s, nil)

	x := testInitial(t, p, s)
	xv := make([]float64, stateDim)
	x.Vector(xv)
	xv[22] = math.Inf(1) // tBlScr
	dx := make([]float64, stateDim)

	err := r.eval(0, xv, dx)
	assert.ErrorIs(t, err, ErrNonFiniteState)
}

func TestGuardFallsBackAfterFirstEvaluation(t *testing.T) {
	p := NewParams(LampNone)
	s := testDisturbSeries(t)
	r := newRHS(p, s, nil)

	x := testInitial(t, p, s)
	xv := make([]float64, stateDim)
	x.Vector(xv)
	dx := make([]float64, stateDim)
	require.NoError(t, r.eval(0, xv, dx))

	// A later step overshoots the blackout screen temperature to
	// infinity; the previous value substitutes and the evaluation
	// still succeeds with finite derivatives.
	xv[22] = math.Inf(1)
	require.NoError(t, r.eval(60, xv, dx))
	for i, v := range dx {
		assert.Falsef(t, math.IsNaN(v) || math.IsInf(v, 0),
			"component %s is %v", stateChannels[i], v)
	}

	// Unguarded components are not substituted: an infinite air
	// temperature propagates into the derivatives.
	x.Vector(xv)
	xv[2] = math.Inf(1) // tAir
	require.NoError(t, r.eval(120, xv, dx))
	bad := false
	for _, v := range dx {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			bad = true
		}
	}
	assert.True(t, bad)
}

func TestPrescribedPipeDerivative(t *testing.T) {
	p := NewParams(LampNone)
	var x State
	var a Aux
	dx := make([]float64, stateDim)

	// Tracking: the derivative is the gap to the recorded value.
	x.tPipe = 40
	x.tGroPipe = 35
	d := &Disturbances{hasPipe: true, tPipe: 50, tGroPipe: 45}
	derivatives(p, &x, d, &a, dx)
	assert.InDelta(t, 10, dx[8], 1e-12)
	assert.InDelta(t, 10, dx[20], 1e-12)

	// A zero recorded value hands over to the physical balance,
	// which is zero here because no fluxes act on the pipe.
	d = &Disturbances{hasPipe: true, tPipe: 0, tGroPipe: 0}
	derivatives(p, &x, d, &a, dx)
	assert.Equal(t, 0.0, dx[8])
	assert.Equal(t, 0.0, dx[20])

	// The switch-off marker does the same even with a nonzero
	// recorded value.
	d = &Disturbances{hasPipe: true, tPipe: 50, pipeSwitchOff: 1, tGroPipe: 45, groPipeSwitchOff: 1}
	derivatives(p, &x, d, &a, dx)
	assert.Equal(t, 0.0, dx[8])
	assert.Equal(t, 0.0, dx[20])

	// Without a schedule the physical balance applies directly.
	a.hBoilPipe = p.capPipe
	d = &Disturbances{}
	derivatives(p, &x, d, &a, dx)
	assert.InDelta(t, 1, dx[8], 1e-12)
}

func TestTemperatureSumDerivatives(t *testing.T) {
	p := NewParams(LampNone)
	var x State
	x.tCan = 21.6
	x.tCan24 = 20
	var a Aux
	dx := make([]float64, stateDim)

	derivatives(p, &x, &Disturbances{}, &a, dx)
	assert.InDelta(t, (21.6-20)/86400, dx[17], 1e-15)
	assert.InDelta(t, 21.6/86400, dx[27], 1e-15)
}
