package greensim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProportionalControl(t *testing.T) {
	// Heating uses a negative band: full output below the setpoint,
	// zero above it, half at the middle of the band.
	assert.InDelta(t, 1, proportionalControl(10, 20, -1, 0, 1), 1e-6)
	assert.InDelta(t, 0, proportionalControl(30, 20, -1, 0, 1), 1e-6)
	assert.InDelta(t, 0.5, proportionalControl(19.5, 20, -1, 0, 1), 1e-9)

	// Venting uses a positive band and responds the other way.
	assert.InDelta(t, 0, proportionalControl(10, 20, 4, 0, 1), 1e-6)
	assert.InDelta(t, 1, proportionalControl(30, 20, 4, 0, 1), 1e-6)

	// Output respects a non-unit range.
	v := proportionalControl(25, 20, 4, 0.1, 0.8)
	assert.GreaterOrEqual(t, v, 0.1)
	assert.LessOrEqual(t, v, 0.8)

	// Extreme inputs saturate instead of overflowing.
	assert.Equal(t, 0.0, proportionalControl(1e6, 20, -1, 0, 1))
	assert.False(t, math.IsNaN(proportionalControl(-1e6, 20, -1, 0, 1)))
}

func TestFirZeroFactors(t *testing.T) {
	cases := []struct {
		name                string
		a1, eps1, eps2, f12 float64
	}{
		{"no area", 0, 1, 1, 1},
		{"no emission 1", 1, 0, 1, 1},
		{"no emission 2", 1, 1, 0, 1},
		{"no view", 1, 1, 1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, 0.0, fir(c.a1, c.eps1, c.eps2, c.f12, 40, 10))
		})
	}
}

func TestFirDirection(t *testing.T) {
	warm := fir(1, 0.9, 0.9, 1, 40, 10)
	assert.Greater(t, warm, 0.0)
	assert.InDelta(t, -warm, fir(1, 0.9, 0.9, 1, 10, 40), 1e-12)
	assert.Equal(t, 0.0, fir(1, 0.9, 0.9, 1, 20, 20))
}

func TestSensible(t *testing.T) {
	assert.Equal(t, 0.0, sensible(0, 40, 10))
	assert.InDelta(t, 50, sensible(5, 20, 10), 1e-12)
	// Negative coefficients count by magnitude.
	assert.InDelta(t, 50, sensible(-5, 20, 10), 1e-12)
}

func TestOpticalComposition(t *testing.T) {
	// Two non-reflecting layers multiply their transmissions.
	assert.InDelta(t, 0.25, tau12(0.5, 0.5, 0, 0), 1e-12)

	// Inter-reflection raises the combined transmission above the
	// bare product.
	assert.InDelta(t, 1.0/3.0, tau12(0.5, 0.5, 0.5, 0.5), 1e-12)

	// A transparent upper layer exposes the lower reflection.
	assert.InDelta(t, 0.3, rhoUp(1, 0, 0, 0.3), 1e-12)

	// The bottom reflection of a stack with a black lower layer is
	// just that layer's own reflection.
	assert.InDelta(t, 0.3, rhoDn(0, 0.5, 0.3, 0.2), 1e-12)
}

func TestCond(t *testing.T) {
	assert.Equal(t, 0.0, cond(0, 3000, 1000))

	// Condensation towards the colder surface.
	flux := cond(2, 3000, 1000)
	assert.InDelta(t, 6.4e-9*2*2000, flux, 1e-9)

	// Evaporation is blocked by the logistic switch.
	assert.InDelta(t, 0, cond(2, 1000, 3000), 1e-12)
}

func TestAirFluxes(t *testing.T) {
	// No pressure difference, no vapor flux.
	assert.InDelta(t, 0, airMv(1, 1000, 1000, 20, 20), 1e-15)
	// The flux follows the concentration difference regardless of
	// the air flux direction.
	assert.Equal(t, airMv(1, 2000, 1000, 20, 20), airMv(-1, 2000, 1000, 20, 20))

	assert.InDelta(t, 500, airMc(1, 900, 400), 1e-12)
	assert.InDelta(t, 500, airMc(-1, 900, 400), 1e-12)
}

func TestSmoothHar(t *testing.T) {
	// Half the maximal rate at the cutoff.
	assert.InDelta(t, 0.5, smoothHar(300e3, 300e3, 1e4, 1), 1e-9)
	// Saturates above, vanishes below.
	assert.InDelta(t, 1, smoothHar(400e3, 300e3, 1e4, 1), 1e-6)
	assert.InDelta(t, 0, smoothHar(200e3, 300e3, 1e4, 1), 1e-6)
}

func TestIfElse(t *testing.T) {
	assert.Equal(t, 3.0, ifElse(1, 3, 7))
	assert.Equal(t, 7.0, ifElse(0, 3, 7))
}

func TestNthroot(t *testing.T) {
	assert.InDelta(t, 3, nthroot(27, 3), 1e-12)
	assert.InDelta(t, 2, nthroot(1024, 10), 1e-12)
}
