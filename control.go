package greensim

import "math"

/*
Controls holds the actuator settings of the greenhouse. All values are
dimensionless settings in [0, 1]: 0 is fully off or closed, 1 is fully
on or open.
*/
type Controls struct {
	boil     float64 // boiler valve towards the heating pipe rail
	boilGro  float64 // boiler valve towards the grow pipes
	extCo2   float64 // external CO2 injection valve
	shScr    float64 // external shading screen closure
	shScrPer float64 // semi-permanent shading screen closure
	thScr    float64 // thermal screen closure
	roof     float64 // roof vent aperture
	side     float64 // side vent aperture
	lamp     float64 // toplights
	intLamp  float64 // interlights
	blScr    float64 // blackout screen closure
}

// controlChannels lists the control setting names in output order.
var controlChannels = []string{
	"boil", "boilGro", "extCo2", "shScr", "shScrPer",
	"thScr", "roof", "side", "lamp", "intLamp", "blScr",
}

// row returns the settings in controlChannels order.
func (u *Controls) row() []float64 {
	return []float64{
		u.boil, u.boilGro, u.extCo2, u.shScr, u.shScrPer,
		u.thScr, u.roof, u.side, u.lamp, u.intLamp, u.blScr,
	}
}

// newRuleControls returns the settings the rule-based climate
// controller starts from: thermal screen closed, everything else off.
func newRuleControls() Controls {
	return Controls{thScr: 1}
}

/*
applyRules computes the actuator settings from the climate controller
rules, reading the setpoints and smoothed conditions prepared in a.

The heating valves and the CO2 valve are proportional controllers.
The thermal screen closes for cold outside weather, heating demand and
humidity all at once, taking the most restrictive of the three. The
roof opens on excess heat or humidity but is locked shut when the air
is too cold. The blackout screen closes at night while lamps run, when
the greenhouse is configured with one.
*/
func (u *Controls) applyRules(p *Params, x *State, d *Disturbances, a *Aux) {
	u.boil = proportionalControl(x.tAir, a.heatSetPoint, p.tHeatBand, 0, 1)
	u.extCo2 = proportionalControl(a.co2InPpm, a.co2SetPoint, p.co2Band, 0, 1)
	u.shScr = 0
	u.shScrPer = 0
	u.thScr = math.Min(a.thScrCold, math.Min(a.thScrHeat, a.thScrRh))
	u.roof = math.Min(a.ventCold, math.Max(a.ventHeat, a.ventRh))
	u.side = 0
	u.lamp = a.lampOn
	u.intLamp = a.intLampOn
	u.boilGro = proportionalControl(x.tAir, a.heatSetPoint, p.tHeatBand, 0, 1)
	u.blScr = p.useBlScr * (1 - d.isDaySmooth) * math.Max(a.lampOn, a.intLampOn)
}

/*
Schedule holds prescribed control trajectories. When a schedule is
set on a model the climate controller rules are bypassed and the
scheduled settings are interpolated at each instant instead. Pipe
temperatures recorded alongside the settings are treated as
disturbances, see Disturbances.
*/
type Schedule struct {
	series *Series
}

// scheduleChannels are the setting trajectories a schedule carries.
var scheduleChannels = []string{"thScr", "blScr", "roof", "lamp", "intLamp", "extCo2"}

/*
NewSchedule builds a schedule from trajectories on a shared time grid.
cols must contain the scheduleChannels plus tPipe and tGroPipe, each
as long as times. Times are in seconds.

	Returns:
	    the schedule, or an error wrapping ErrBadSeries
*/
func NewSchedule(times []float64, cols map[string][]float64) (*Schedule, error) {
	s, err := NewSeries(times)
	if err != nil {
		return nil, err
	}
	for _, name := range scheduleChannels {
		if err := s.Add(name, cols[name]); err != nil {
			return nil, err
		}
	}
	for _, name := range []string{"tPipe", "tGroPipe"} {
		if err := s.Add(name, cols[name]); err != nil {
			return nil, err
		}
	}
	return &Schedule{series: s}, nil
}

// sampleInto interpolates the scheduled settings at time t (seconds).
// A channel whose trajectory is absent (NaN sentinel) leaves its
// setting at the current value. Settings a schedule never carries are
// forced to zero.
func (sc *Schedule) sampleInto(t float64, u *Controls) {
	setIfGiven(&u.thScr, sc.series.Sample("thScr", t))
	setIfGiven(&u.blScr, sc.series.Sample("blScr", t))
	setIfGiven(&u.roof, sc.series.Sample("roof", t))
	setIfGiven(&u.lamp, sc.series.Sample("lamp", t))
	setIfGiven(&u.intLamp, sc.series.Sample("intLamp", t))
	setIfGiven(&u.extCo2, sc.series.Sample("extCo2", t))
	u.boil = 0
	u.boilGro = 0
	u.side = 0
	u.shScr = 0
	u.shScrPer = 0
}

func setIfGiven(dst *float64, v float64) {
	if !math.IsNaN(v) {
		*dst = v
	}
}

/*
pipeDisturbances derives the prescribed pipe temperature channels for
the disturbance set: tPipe and tGroPipe as recorded, plus switch-off
markers that flag the sample where a pipe rail goes from heating to
off. The marker at sample k is 1 when the pipe temperature is nonzero
at k and zero at k+1; the comparison wraps around at the end of the
trajectory.
*/
func (sc *Schedule) pipeDisturbances() (times, tPipe, tGroPipe, pipeOff, groPipeOff []float64) {
	times = sc.series.Times()
	tPipe = sc.series.Col("tPipe")
	tGroPipe = sc.series.Col("tGroPipe")
	pipeOff = switchOffMarkers(tPipe)
	groPipeOff = switchOffMarkers(tGroPipe)
	return times, tPipe, tGroPipe, pipeOff, groPipeOff
}

func switchOffMarkers(v []float64) []float64 {
	n := len(v)
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		next := v[(k+1)%n]
		if v[k] != 0 && next == 0 {
			out[k] = 1
		}
	}
	return out
}
