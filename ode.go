package greensim

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonFiniteState reports that an integration step produced an
// infinite value in a guarded state component before any successful
// evaluation existed to fall back on.
var ErrNonFiniteState = errors.New("non-finite state")

/*
Disturbances holds the boundary conditions sampled at one instant:
outdoor weather, the smoothed day/night indicators, and, when the run
uses a control schedule, the prescribed pipe temperatures with their
switch-off markers.
*/
type Disturbances struct {
	iGlob       float64 // global solar radiation [W m^{-2}]
	tOut        float64 // outdoor temperature [deg C]
	vpOut       float64 // outdoor vapor pressure [Pa]
	co2Out      float64 // outdoor CO2 concentration [mg m^{-3}]
	wind        float64 // outdoor wind speed [m s^{-1}]
	tSky        float64 // sky temperature [deg C]
	tSoOut      float64 // deep soil temperature [deg C]
	dayRadSum   float64 // daily radiation sum [MJ m^{-2} day^{-1}]
	isDay       float64 // smoothed daytime indicator with sunrise/sunset ramps
	isDaySmooth float64 // sigmoid daytime indicator

	hasPipe          bool
	tPipe            float64 // prescribed pipe rail temperature [deg C]
	tGroPipe         float64 // prescribed grow pipe temperature [deg C]
	pipeSwitchOff    float64 // 1 at the sample where the pipe rail shuts off
	groPipeSwitchOff float64 // 1 at the sample where the grow pipes shut off
}

// sampleDisturbances interpolates the disturbance series at t seconds.
func sampleDisturbances(s *Series, t float64, d *Disturbances) {
	d.iGlob = s.Sample("iGlob", t)
	d.tOut = s.Sample("tOut", t)
	d.vpOut = s.Sample("vpOut", t)
	d.co2Out = s.Sample("co2Out", t)
	d.wind = s.Sample("wind", t)
	d.tSky = s.Sample("tSky", t)
	d.tSoOut = s.Sample("tSoOut", t)
	d.dayRadSum = s.Sample("dayRadSum", t)
	d.isDay = s.Sample("isDay", t)
	d.isDaySmooth = s.Sample("isDaySmooth", t)
	d.hasPipe = s.Has("tPipe")
	if d.hasPipe {
		d.tPipe = s.Sample("tPipe", t)
		d.tGroPipe = s.Sample("tGroPipe", t)
		d.pipeSwitchOff = s.Sample("pipeSwitchOff", t)
		d.groPipeSwitchOff = s.Sample("groPipeSwitchOff", t)
	}
}

/*
rhs evaluates the model derivatives. It carries the controller state
between calls: the actuator settings from the previous evaluation feed
the first pass over the auxiliary quantities, the controller rules (or
the schedule) then update the settings, and a second pass recomputes
the auxiliary quantities with the new settings. The two passes are
never iterated further.
*/
type rhs struct {
	p     *Params
	dist  *Series
	sched *Schedule

	x    State
	d    Disturbances
	u    Controls
	a    Aux
	prev State // last successfully evaluated state, for the guard
	seen bool
}

func newRHS(p *Params, dist *Series, sched *Schedule) *rhs {
	return &rhs{p: p, dist: dist, sched: sched, u: newRuleControls()}
}

// guard replaces infinite values in the guarded state components with
// their value at the last successful evaluation.
func (r *rhs) guard() error {
	checks := []struct {
		name string
		cur  *float64
		last float64
	}{
		{"tBlScr", &r.x.tBlScr, r.prev.tBlScr},
		{"tThScr", &r.x.tThScr, r.prev.tThScr},
		{"tIntLamp", &r.x.tIntLamp, r.prev.tIntLamp},
		{"tCovIn", &r.x.tCovIn, r.prev.tCovIn},
		{"time", &r.x.time, r.prev.time},
	}
	for _, c := range checks {
		if !math.IsInf(*c.cur, 0) {
			continue
		}
		if !r.seen {
			return fmt.Errorf("%w: %s is infinite on the first evaluation", ErrNonFiniteState, c.name)
		}
		*c.cur = c.last
	}
	return nil
}

// eval computes dx/dt at time t (seconds) for the state vector xv.
func (r *rhs) eval(t float64, xv, dxv []float64) error {
	r.x.SetVector(xv)
	sampleDisturbances(r.dist, t, &r.d)
	if err := r.guard(); err != nil {
		return err
	}
	evalAux(r.p, &r.x, &r.d, &r.u, &r.a)
	if r.sched != nil {
		r.sched.sampleInto(t, &r.u)
	} else {
		r.u.applyRules(r.p, &r.x, &r.d, &r.a)
	}
	evalAux(r.p, &r.x, &r.d, &r.u, &r.a)
	derivatives(r.p, &r.x, &r.d, &r.a, dxv)
	r.prev = r.x
	r.seen = true
	return nil
}

/*
derivatives assembles the 28 state derivatives from the auxiliary
fluxes, in state vector order. The pipe temperatures follow the
prescribed trajectory when one is present: the derivative is then the
tracking error towards the recorded temperature, except where the
recorded value is zero or the rail has just shut off, in which case
the physical energy balance takes over.
*/
func derivatives(p *Params, x *State, d *Disturbances, a *Aux, dx []float64) {
	tPipePhys := 1 / p.capPipe * (a.hBoilPipe + a.hIndPipe + a.hGeoPipe -
		a.rPipeSky - a.rPipeCovIn - a.rPipeCan - a.rPipeFlr - a.rPipeThScr -
		a.hPipeAir + a.rLampPipe - a.rPipeBlScr + a.hBufHotPipe + a.rIntLampPipe)
	tGroPipePhys := 1 / p.capGroPipe * (a.hBoilGroPipe - a.rGroPipeCan - a.hGroPipeAir)

	var dTPipe, dTGroPipe float64
	if d.hasPipe {
		a.tPipeOn = d.tPipe - x.tPipe
		a.tPipeOff = tPipePhys
		dTPipe = ifElse(b2f(d.tPipe == 0 || d.pipeSwitchOff > 0), a.tPipeOff, a.tPipeOn)
		a.tGroPipeOn = d.tGroPipe - x.tGroPipe
		a.tGroPipeOff = tGroPipePhys
		dTGroPipe = ifElse(b2f(d.tGroPipe == 0 || d.groPipeSwitchOff > 0), a.tGroPipeOff, a.tGroPipeOn)
	} else {
		a.tPipeOn = 0
		a.tPipeOff = tPipePhys
		dTPipe = tPipePhys
		a.tGroPipeOn = 0
		a.tGroPipeOff = tGroPipePhys
		dTGroPipe = tGroPipePhys
	}

	dx[0] = 1 / p.capCo2Air * (a.mcBlowAir + a.mcExtAir + a.mcPadAir -
		a.mcAirCan - a.mcAirTop - a.mcAirOut)
	dx[1] = 1 / p.capCo2Top * (a.mcAirTop - a.mcTopOut)
	dx[2] = 1 / p.capAir * (a.hCanAir + a.hPadAir - a.hAirMech + a.hPipeAir +
		a.hPasAir + a.hBlowAir + a.rGlobSunAir - a.hAirFlr - a.hAirThScr -
		a.hAirOut - a.hAirTop - a.hAirOutPad - a.lAirFog - a.hAirBlScr +
		a.hLampAir + a.rLampAir + a.hGroPipeAir + a.hIntLampAir + a.rIntLampAir)
	dx[3] = 1 / p.capTop * (a.hThScrTop + a.hAirTop - a.hTopCovIn - a.hTopOut +
		a.hBlScrTop)
	dx[4] = 1 / a.capCan * (a.rParSunCan + a.rNirSunCan + a.rPipeCan -
		a.hCanAir - a.lCanAir - a.rCanCovIn - a.rCanFlr - a.rCanSky -
		a.rCanThScr - a.rCanBlScr + a.rParLampCan + a.rNirLampCan +
		a.rFirLampCan + a.rGroPipeCan + a.rParIntLampCan + a.rNirIntLampCan +
		a.rFirIntLampCan)
	dx[5] = 1 / a.capCovIn * (a.hTopCovIn + a.lTopCovIn + a.rCanCovIn +
		a.rFlrCovIn + a.rPipeCovIn + a.rThScrCovIn - a.hCovInCovE +
		a.rLampCovIn + a.rBlScrCovIn + a.rIntLampCovIn)
	dx[6] = 1 / p.capThScr * (a.hAirThScr + a.lAirThScr + a.rCanThScr +
		a.rFlrThScr + a.rPipeThScr - a.hThScrTop - a.rThScrCovIn -
		a.rThScrSky + a.rBlScrThScr + a.rLampThScr + a.rIntLampThScr)
	dx[7] = 1 / p.capFlr * (a.hAirFlr + a.rParSunFlr + a.rNirSunFlr +
		a.rCanFlr + a.rPipeFlr - a.hFlrSo1 - a.rFlrCovIn - a.rFlrSky -
		a.rFlrThScr + a.rParLampFlr + a.rNirLampFlr + a.rFirLampFlr -
		a.rFlrBlScr + a.rParIntLampFlr + a.rNirIntLampFlr + a.rFirIntLampFlr)
	dx[8] = dTPipe
	dx[9] = 1 / a.capCovE * (a.rGlobSunCovE + a.hCovInCovE - a.hCovEOut - a.rCovESky)
	dx[10] = 1 / p.capSo1 * (a.hFlrSo1 - a.hSo1So2)
	dx[11] = 1 / p.capSo2 * (a.hSo1So2 - a.hSo2So3)
	dx[12] = 1 / p.capSo3 * (a.hSo2So3 - a.hSo3So4)
	dx[13] = 1 / p.capSo4 * (a.hSo3So4 - a.hSo4So5)
	dx[14] = 1 / p.capSo5 * (a.hSo4So5 - a.hSo5SoOut)
	dx[15] = 1 / a.capVpAir * (a.mvCanAir + a.mvPadAir + a.mvFogAir +
		a.mvBlowAir - a.mvAirThScr - a.mvAirTop - a.mvAirOut - a.mvAirOutPad -
		a.mvAirMech - a.mvAirBlScr)
	dx[16] = 1 / a.capVpTop * (a.mvAirTop - a.mvTopCovIn - a.mvTopOut)
	dx[17] = 1 / 86400.0 * (x.tCan - x.tCan24)
	dx[18] = 1 / 86400.0
	dx[19] = 1 / p.capLamp * (a.qLampIn - a.hLampAir - a.rLampSky -
		a.rLampCovIn - a.rLampThScr - a.rLampPipe - a.rLampAir - a.rLampBlScr -
		a.rParLampFlr - a.rNirLampFlr - a.rFirLampFlr - a.rParLampCan -
		a.rNirLampCan - a.rFirLampCan - a.hLampCool + a.rIntLampLamp)
	dx[20] = dTGroPipe
	dx[21] = 1 / p.capIntLamp * (a.qIntLampIn - a.hIntLampAir - a.rIntLampSky -
		a.rIntLampCovIn - a.rIntLampThScr - a.rIntLampPipe - a.rIntLampAir -
		a.rIntLampBlScr - a.rParIntLampFlr - a.rNirIntLampFlr -
		a.rFirIntLampFlr - a.rParIntLampCan - a.rNirIntLampCan -
		a.rFirIntLampCan - a.rIntLampLamp)
	dx[22] = 1 / p.capBlScr * (a.hAirBlScr + a.lAirBlScr + a.rCanBlScr +
		a.rFlrBlScr + a.rPipeBlScr - a.hBlScrTop - a.rBlScrCovIn -
		a.rBlScrSky - a.rBlScrThScr + a.rLampBlScr + a.rIntLampBlScr)
	dx[23] = a.mcAirBuf - a.mcBufFruit - a.mcBufLeaf - a.mcBufStem - a.mcBufAir
	dx[24] = a.mcBufLeaf - a.mcLeafAir - a.mcLeafHar
	dx[25] = a.mcBufStem - a.mcStemAir
	dx[26] = a.mcBufFruit - a.mcFruitAir - a.mcFruitHar
	dx[27] = 1 / 86400.0 * x.tCan
}
