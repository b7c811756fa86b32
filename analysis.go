package greensim

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

/*
Post-run accounting over result trajectories: time integrals of flux
channels, the greenhouse energy balance, and the energy input per unit
of tomato yield.
*/

// dryMatterContent is the fruit dry matter fraction used to convert
// harvested dry weight to fresh weight.
const dryMatterContent = 0.06

// Integrate computes the time integral of the sum of the named
// channels by the trapezoidal rule. For W m^{-2} channels the result
// is in J m^{-2}.
func Integrate(s *Series, names ...string) (float64, error) {
	times := s.Times()
	sum := make([]float64, len(times))
	for _, name := range names {
		if !s.Has(name) {
			return 0, fmt.Errorf("integrate: %w: no channel %q", ErrBadSeries, name)
		}
		floats.Add(sum, s.Col(name))
	}
	return integrate.Trapezoidal(times, sum), nil
}

// megaJoules integrates flux channels and converts to MJ m^{-2}.
func megaJoules(s *Series, names ...string) (float64, error) {
	v, err := Integrate(s, names...)
	return v / 1e6, err
}

/*
EnergyBalance is the seasonal energy bookkeeping of the greenhouse, in
MJ m^{-2}. Inputs are positive, outputs negative. Residual is the sum
of all terms; for a closed run it stays near zero, with the heat
stored in the greenhouse construction and soil as the remainder.
*/
type EnergyBalance struct {
	SunIn    float64 // solar radiation entering the greenhouse
	HeatIn   float64 // boiler heat into both pipe rails
	LampIn   float64 // electrical input of all lamps
	Transp   float64 // net latent heat from transpiration and condensation
	SoilOut  float64 // conduction to the deep soil
	VentOut  float64 // sensible heat carried out by ventilation
	ConvOut  float64 // convection from the cover to the outside air
	FirOut   float64 // thermal radiation to the sky
	LampCool float64 // heat removed by lamp cooling
	Residual float64
}

// NewEnergyBalance accounts the energy flows of a finished run.
func NewEnergyBalance(res *Result) (*EnergyBalance, error) {
	a := res.Aux
	eb := &EnergyBalance{}
	steps := []struct {
		dst   *float64
		sign  float64
		names []string
	}{
		{&eb.SunIn, 1, []string{"rGlobSunAir", "rParSunCan", "rNirSunCan", "rParSunFlr", "rNirSunFlr", "rGlobSunCovE"}},
		{&eb.HeatIn, 1, []string{"hBoilPipe", "hBoilGroPipe"}},
		{&eb.LampIn, 1, []string{"qLampIn", "qIntLampIn"}},
		{&eb.SoilOut, -1, []string{"hSo5SoOut"}},
		{&eb.VentOut, -1, []string{"hAirOut", "hTopOut"}},
		{&eb.ConvOut, -1, []string{"hCovEOut"}},
		{&eb.FirOut, -1, []string{"rCovESky", "rThScrSky", "rBlScrSky", "rCanSky", "rPipeSky", "rFlrSky", "rLampSky"}},
		{&eb.LampCool, -1, []string{"hLampCool"}},
	}
	for _, st := range steps {
		v, err := megaJoules(a, st.names...)
		if err != nil {
			return nil, err
		}
		*st.dst = st.sign * v
	}
	condensed, err := megaJoules(a, "lAirThScr", "lAirBlScr", "lTopCovIn")
	if err != nil {
		return nil, err
	}
	evaporated, err := megaJoules(a, "lCanAir")
	if err != nil {
		return nil, err
	}
	eb.Transp = condensed - evaporated

	eb.Residual = eb.SunIn + eb.HeatIn + eb.LampIn + eb.Transp +
		eb.SoilOut + eb.VentOut + eb.ConvOut + eb.FirOut + eb.LampCool
	return eb, nil
}

/*
EnergyYield summarizes what the run put in and what it got out: energy
inputs in MJ m^{-2}, PAR sums in mol m^{-2}, fresh-weight tomato yield
in kg m^{-2}, and the energy input needed per kilogram of yield.
*/
type EnergyYield struct {
	LampIn     float64 // electrical input of all lamps [MJ m^{-2}]
	BoilIn     float64 // boiler heat input [MJ m^{-2}]
	ParSun     float64 // PAR from the sun above the canopy [mol m^{-2}]
	ParLamps   float64 // PAR from the lamps above the canopy [mol m^{-2}]
	YieldFW    float64 // fresh-weight tomato yield [kg m^{-2}]
	Efficiency float64 // (LampIn+BoilIn)/YieldFW [MJ kg^{-1}]
}

// NewEnergyYield computes the energy and yield summary of a finished
// run with the given parameter set.
func NewEnergyYield(p *Params, res *Result) (*EnergyYield, error) {
	a := res.Aux
	ey := &EnergyYield{}
	var err error
	if ey.LampIn, err = megaJoules(a, "qLampIn", "qIntLampIn"); err != nil {
		return nil, err
	}
	if ey.BoilIn, err = megaJoules(a, "hBoilPipe", "hBoilGroPipe"); err != nil {
		return nil, err
	}

	times := a.Times()
	par := make([]float64, len(times))
	floats.AddScaled(par, p.parJtoUmolSun, a.Col("rParGhSun"))
	ey.ParSun = integrate.Trapezoidal(times, par) / 1e6

	for i := range par {
		par[i] = 0
	}
	floats.AddScaled(par, p.zetaLampPar, a.Col("rParGhLamp"))
	floats.AddScaled(par, p.zetaIntLampPar, a.Col("rParGhIntLamp"))
	ey.ParLamps = integrate.Trapezoidal(times, par) / 1e6

	har, err := Integrate(a, "mcFruitHar")
	if err != nil {
		return nil, err
	}
	// Harvest flux is in mg m^{-2} s^{-1}; convert the integral to kg.
	ey.YieldFW = har / dryMatterContent / 1e6
	if ey.YieldFW != 0 {
		ey.Efficiency = (ey.LampIn + ey.BoilIn) / ey.YieldFW
	}
	return ey, nil
}
