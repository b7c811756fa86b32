package greensim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalTestAux(t *testing.T, lamp LampType) (*Params, *State, *Aux) {
	t.Helper()
	p := NewParams(lamp)
	s := testDisturbSeries(t)
	x := testInitial(t, p, s)

	var d Disturbances
	sampleDisturbances(s, 0, &d)
	u := newRuleControls()
	a := &Aux{}
	evalAux(p, x, &d, &u, a)
	return p, x, a
}

func TestEvalAuxCanopy(t *testing.T) {
	p, x, a := evalTestAux(t, LampNone)

	assert.InDelta(t, p.sla*x.cLeaf, a.lai, 1e-12)
	assert.InDelta(t, p.capLeaf*a.lai, a.capCan, 1e-9)
	assert.Greater(t, a.lai, 0.0)
}

func TestEvalAuxIndoorClimate(t *testing.T) {
	p, x, a := evalTestAux(t, LampNone)

	// The initial state seeds the air at rhMax relative humidity.
	assert.InDelta(t, p.rhMax, a.rhIn, 1e-6)
	assert.InDelta(t, 100*x.vpAir/SatVp(x.tAir), a.rhIn, 1e-9)
	assert.InDelta(t, CO2Dens2Ppm(x.tAir, 1e-6*x.co2Air), a.co2InPpm, 1e-9)
}

func TestEvalAuxNoLampInstallation(t *testing.T) {
	_, _, a := evalTestAux(t, LampNone)

	assert.Equal(t, 0.0, a.qLampIn)
	assert.Equal(t, 0.0, a.qIntLampIn)
	assert.Equal(t, 0.0, a.rParLampCan)
	assert.Equal(t, 0.0, a.hLampCool)
}

func TestEvalAuxRowFinite(t *testing.T) {
	for _, lamp := range []LampType{LampNone, LampHPS, LampLED} {
		_, _, a := evalTestAux(t, lamp)
		row := a.row()
		require.Len(t, row, len(auxChannels))
		for i, v := range row {
			assert.Falsef(t, math.IsNaN(v) || math.IsInf(v, 0),
				"%s quantity %s is %v", lamp, auxChannels[i], v)
		}
	}
}

func TestEvalAuxPhotosynthesisSigns(t *testing.T) {
	_, _, a := evalTestAux(t, LampNone)

	// Gross photosynthesis keeps ahead of photorespiration.
	assert.GreaterOrEqual(t, a.p, a.r)
	assert.GreaterOrEqual(t, a.r, 0.0)
	assert.Greater(t, a.co2Stom, a.gamma)
}
