package greensim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrate(t *testing.T) {
	s, err := NewSeries([]float64{0, 100, 200})
	require.NoError(t, err)
	require.NoError(t, s.Add("a", []float64{1, 1, 1}))
	require.NoError(t, s.Add("b", []float64{0, 1, 2}))

	v, err := Integrate(s, "a")
	require.NoError(t, err)
	assert.InDelta(t, 200, v, 1e-9)

	// Summed channels integrate together.
	v, err = Integrate(s, "a", "b")
	require.NoError(t, err)
	assert.InDelta(t, 400, v, 1e-9)

	_, err = Integrate(s, "missing")
	assert.ErrorIs(t, err, ErrBadSeries)
}

func TestEnergyBalance(t *testing.T) {
	res := runShort(t, LampHPS)

	eb, err := NewEnergyBalance(res)
	require.NoError(t, err)

	// A sunny day puts energy in; every term must come out finite.
	assert.Greater(t, eb.SunIn, 0.0)
	for _, v := range []float64{
		eb.SunIn, eb.HeatIn, eb.LampIn, eb.Transp, eb.SoilOut,
		eb.VentOut, eb.ConvOut, eb.FirOut, eb.LampCool, eb.Residual,
	} {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}

	// Outputs carry a negative sign and the residual closes the sum.
	assert.LessOrEqual(t, eb.VentOut, 0.0)
	assert.LessOrEqual(t, eb.FirOut, 0.0)
	sum := eb.SunIn + eb.HeatIn + eb.LampIn + eb.Transp + eb.SoilOut +
		eb.VentOut + eb.ConvOut + eb.FirOut + eb.LampCool
	assert.InDelta(t, sum, eb.Residual, 1e-9)

	// The balance closes: over a full day the imbalance is only the
	// heat stored in construction and soil, a fraction of the input.
	gross := eb.SunIn + eb.HeatIn + eb.LampIn
	assert.Greater(t, gross, 1.0)
	assert.Less(t, math.Abs(eb.Residual), 0.5*gross)
}

func TestEnergyYield(t *testing.T) {
	p := NewParams(LampHPS)
	res := runShort(t, LampHPS)

	ey, err := NewEnergyYield(p, res)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, ey.LampIn, 0.0)
	assert.GreaterOrEqual(t, ey.BoilIn, 0.0)
	assert.Greater(t, ey.ParSun, 0.0)
	assert.GreaterOrEqual(t, ey.YieldFW, 0.0)
}
