package greensim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSatVp(t *testing.T) {
	// 610.78 Pa at the freezing point, about 2.34 kPa at 20 °C.
	assert.InDelta(t, 610.78, SatVp(0), 1e-9)
	assert.InDelta(t, 2339, SatVp(20), 10)
	assert.Greater(t, SatVp(30), SatVp(20))
}

func TestVaporRoundTrips(t *testing.T) {
	for _, temp := range []float64{0, 10, 20, 30} {
		dens := Rh2VaporDens(temp, 80)
		vp := VaporDens2Pres(temp, dens)
		assert.InDelta(t, 0.8*SatVp(temp), vp, 1e-6)
		assert.InDelta(t, dens, Vp2Dens(temp, vp), 1e-12)
	}
}

func TestCO2RoundTrips(t *testing.T) {
	for _, ppm := range []float64{400, 800, 1200} {
		dens := CO2Ppm2Dens(20, ppm)
		assert.InDelta(t, ppm, CO2Dens2Ppm(20, dens), 1e-9)
	}
	// Around 0.74 g m^-3 for ambient air at 20 °C.
	assert.InDelta(t, 7.4e-4, CO2Ppm2Dens(20, 410), 1e-5)
}
