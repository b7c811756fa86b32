package greensim

import (
	"fmt"
	"math"
	"strings"
)

// LampType selects the supplemental lighting installation of the greenhouse.
type LampType int

const (
	LampNone LampType = iota
	LampHPS
	LampLED
)

/*
Parse a lamp type name.

	Args:
	    s: one of "none", "hps", "led" (case insensitive)

	Returns:
	    the lamp type, or an error for an unknown name
*/
func ParseLampType(s string) (LampType, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return LampNone, nil
	case "hps":
		return LampHPS, nil
	case "led":
		return LampLED, nil
	}
	return LampNone, fmt.Errorf("unknown lamp type %q", s)
}

func (l LampType) String() string {
	switch l {
	case LampHPS:
		return "hps"
	case LampLED:
		return "led"
	}
	return "none"
}

// Params holds the lumped greenhouse and tomato crop parameters of the
// Vanthoor (2011) climate and yield model with the Katzin (2020)
// lighting extension. Nominal values describe a modern Dutch greenhouse.
type Params struct {
	// General
	alfaLeafAir float64 // convective heat exchange coefficient leaf to air, W m^-2 K^-1
	l           float64 // latent heat of evaporation, J kg^-1 water
	sigma       float64 // Stefan-Boltzmann constant, W m^-2 K^-4
	epsCan      float64 // FIR emission coefficient of the canopy, -
	epsSky      float64 // FIR emission coefficient of the sky, -
	etaGlobNir  float64 // ratio of NIR in global radiation, -
	etaGlobPar  float64 // ratio of PAR in global radiation, -
	etaMgPpm    float64 // CO2 conversion factor mg m^-3 to ppm, ppm mg^-1 m^3
	etaRoofThr  float64 // roof vent area ratio below which no chimney effect is assumed, -
	rhoAir0     float64 // density of air at sea level, kg m^-3
	rhoCanPar   float64 // PAR reflection coefficient of the canopy, -
	rhoCanNir   float64 // NIR reflection coefficient of the canopy top, -
	rhoSteel    float64 // density of steel, kg m^-3
	rhoWater    float64 // density of water, kg m^-3
	gamma       float64 // psychrometric constant, Pa K^-1
	omega       float64 // yearly frequency for soil temperature, s^-1
	capLeaf     float64 // heat capacity of canopy leaves, J K^-1 m^-2 leaf
	cEvap1      float64 // radiation effect on stomatal resistance, W m^-2
	cEvap2      float64 // radiation effect on stomatal resistance, W m^-2
	cEvap3Day   float64 // CO2 effect on stomatal resistance (day), ppm^-2
	cEvap3Night float64 // CO2 effect on stomatal resistance (night), ppm^-2
	cEvap4Day   float64 // vapor pressure effect on stomatal resistance (day), Pa^-2
	cEvap4Night float64 // vapor pressure effect on stomatal resistance (night), Pa^-2
	cPAir       float64 // specific heat capacity of air, J K^-1 kg^-1
	cPSteel     float64 // specific heat capacity of steel, J K^-1 kg^-1
	cPWater     float64 // specific heat capacity of water, J K^-1 kg^-1
	g           float64 // acceleration of gravity, m s^-2
	hSo1        float64 // thickness of soil layer 1, m
	hSo2        float64 // thickness of soil layer 2, m
	hSo3        float64 // thickness of soil layer 3, m
	hSo4        float64 // thickness of soil layer 4, m
	hSo5        float64 // thickness of soil layer 5, m
	k1Par       float64 // PAR extinction coefficient of the canopy, -
	k2Par       float64 // PAR extinction coefficient for floor-reflected light, -
	kNir        float64 // NIR extinction coefficient of the canopy, -
	kFir        float64 // FIR extinction coefficient of the canopy, -
	mAir        float64 // molar mass of air, kg kmol^-1
	hSoOut      float64 // thickness of the external soil layer, m
	mWater      float64 // molar mass of water, kg kmol^-1
	r           float64 // molar gas constant, J kmol^-1 K^-1
	rCanSp      float64 // radiation above the canopy when night becomes day, W m^-2
	rB          float64 // boundary layer resistance for transpiration, s m^-1
	rSMin       float64 // minimum canopy resistance for transpiration, s m^-1
	sRsSlope    float64 // slope of the smoothed stomatal resistance model, m W^-2

	// Construction
	etaGlobAir float64 // ratio of global radiation absorbed by the construction, -
	psi        float64 // mean greenhouse cover slope, degrees
	aFlr       float64 // floor area, m^2
	aCov       float64 // cover surface including side walls, m^2
	hAir       float64 // height of the main compartment, m
	hGh        float64 // mean height of the greenhouse, m
	cHecIn     float64 // convective exchange cover to indoor air, W m^-2 K^-1
	cHecOut1   float64 // convective exchange cover to outdoor air, W m^-2 K^-1
	cHecOut2   float64 // convective exchange cover to outdoor air, J m^-3 K^-1
	cHecOut3   float64 // convective exchange cover to outdoor air, -
	hElevation float64 // altitude of the greenhouse, m above sea level

	// Ventilation
	aRoof     float64 // maximum roof ventilation area, m^2
	hVent     float64 // vertical dimension of a single vent opening, m
	etaInsScr float64 // porosity of the insect screen, -
	aSide     float64 // side ventilation area, m^2
	cDgh      float64 // ventilation discharge coefficient, -
	cLeakage  float64 // greenhouse leakage coefficient, -
	cWgh      float64 // ventilation global wind pressure coefficient, -
	hSideRoof float64 // vertical distance between side and roof vent midpoints, m

	// Roof
	epsRfFir float64 // FIR emission coefficient of the roof, -
	rhoRf    float64 // density of the roof layer, kg m^-3
	rhoRfNir float64 // NIR reflection coefficient of the roof, -
	rhoRfPar float64 // PAR reflection coefficient of the roof, -
	rhoRfFir float64 // FIR reflection coefficient of the roof, -
	tauRfNir float64 // NIR transmission coefficient of the roof, -
	tauRfPar float64 // PAR transmission coefficient of the roof, -
	tauRfFir float64 // FIR transmission coefficient of the roof, -
	lambdaRf float64 // thermal conductivity of the roof, W m^-1 K^-1
	cPRf     float64 // specific heat capacity of the roof layer, J K^-1 kg^-1
	hRf      float64 // thickness of the roof layer, m

	// Permanent shading screen (whitewash), absent by default
	epsShScrPerFir float64
	rhoShScrPer    float64
	rhoShScrPerNir float64
	rhoShScrPerPar float64
	rhoShScrPerFir float64
	tauShScrPerNir float64
	tauShScrPerPar float64
	tauShScrPerFir float64
	lambdaShScrPer float64
	cPShScrPer     float64
	hShScrPer      float64

	// Movable shading screen, absent by default
	rhoShScrNir float64
	rhoShScrPar float64
	rhoShScrFir float64
	tauShScrNir float64
	tauShScrPar float64
	tauShScrFir float64
	etaShScrCd  float64 // effect of the shadow screen on the discharge coefficient, -
	etaShScrCw  float64 // effect of the shadow screen on the wind pressure coefficient, -
	kShScr      float64 // shadow screen flux coefficient, m^3 m^-2 K^-2/3 s^-1

	// Thermal screen
	epsThScrFir float64 // FIR emission coefficient of the thermal screen, -
	rhoThScr    float64 // density of the thermal screen, kg m^-3
	rhoThScrNir float64 // NIR reflection coefficient of the thermal screen, -
	rhoThScrPar float64 // PAR reflection coefficient of the thermal screen, -
	rhoThScrFir float64 // FIR reflection coefficient of the thermal screen, -
	tauThScrNir float64 // NIR transmission coefficient of the thermal screen, -
	tauThScrPar float64 // PAR transmission coefficient of the thermal screen, -
	tauThScrFir float64 // FIR transmission coefficient of the thermal screen, -
	cPThScr     float64 // specific heat capacity of the thermal screen, J K^-1 kg^-1
	hThScr      float64 // thickness of the thermal screen, m
	kThScr      float64 // thermal screen flux coefficient, m^3 m^-2 K^-2/3 s^-1

	// Blackout screen
	epsBlScrFir float64 // FIR emission coefficient of the blackout screen, -
	rhoBlScr    float64 // density of the blackout screen, kg m^-3
	rhoBlScrNir float64 // NIR reflection coefficient of the blackout screen, -
	rhoBlScrPar float64 // PAR reflection coefficient of the blackout screen, -
	tauBlScrNir float64 // NIR transmission coefficient of the blackout screen, -
	tauBlScrPar float64 // PAR transmission coefficient of the blackout screen, -
	tauBlScrFir float64 // FIR transmission coefficient of the blackout screen, -
	cPBlScr     float64 // specific heat capacity of the blackout screen, J K^-1 kg^-1
	hBlScr      float64 // thickness of the blackout screen, m
	kBlScr      float64 // blackout screen flux coefficient, m^3 m^-2 K^-2/3 s^-1

	// Floor
	epsFlr    float64 // FIR emission coefficient of the floor, -
	rhoFlr    float64 // density of the floor, kg m^-3
	rhoFlrNir float64 // NIR reflection coefficient of the floor, -
	rhoFlrPar float64 // PAR reflection coefficient of the floor, -
	lambdaFlr float64 // thermal conductivity of the floor, W m^-1 K^-1
	cPFlr     float64 // specific heat capacity of the floor, J K^-1 kg^-1
	hFlr      float64 // thickness of the floor, m

	// Soil
	rhoCpSo  float64 // volumetric heat capacity of the soil, J K^-1 m^-3
	lambdaSo float64 // thermal conductivity of the soil layers, W m^-1 K^-1

	// Heating system
	epsPipe  float64 // FIR emission coefficient of the heating pipes, -
	phiPipeE float64 // external diameter of the pipes, m
	phiPipeI float64 // internal diameter of the pipes, m
	lPipe    float64 // length of heating pipes per floor area, m m^-2
	pBoil    float64 // capacity of the heating system, W

	// CO2 supply
	phiExtCo2 float64 // capacity of external CO2 supply, mg s^-1

	// Crop photosynthesis and growth
	globJtoUmol   float64 // conversion of global radiation, umol photons J^-1
	j25LeafMax    float64 // maximal electron transport rate at 25°C per leaf, umol e- m^-2 leaf s^-1
	cGamma        float64 // effect of temperature on the CO2 compensation point, umol mol^-1 K^-1
	etaCo2AirStom float64 // ratio between stomatal and air CO2 concentration, -
	eJ            float64 // activation energy of Jpot, J mol^-1
	t25k          float64 // 25°C in Kelvin, K
	s             float64 // entropy term of Jpot, J mol^-1 K^-1
	h             float64 // deactivation energy of Jpot, J mol^-1
	theta         float64 // degree of curvature of the electron transport rate, -
	alpha         float64 // conversion of photons to electrons, umol e- umol^-1 photons
	mCh2o         float64 // molar mass of CH2O, mg umol^-1
	mCo2          float64 // molar mass of CO2, mg umol^-1
	parJtoUmolSun float64 // conversion of sun PAR, umol photons J^-1
	laiMax        float64 // maximal leaf area index, m^2 leaf m^-2
	sla           float64 // specific leaf area, m^2 leaf mg^-1 CH2O
	rgr           float64 // potential relative growth rate, kg DW kg^-1 DW s^-1
	cLeafMax      float64 // maximal leaf size, mg CH2O m^-2
	cFruitMax     float64 // maximal fruit size, mg CH2O m^-2
	cFruitG       float64 // fruit growth respiration coefficient, -
	cLeafG        float64 // leaf growth respiration coefficient, -
	cStemG        float64 // stem growth respiration coefficient, -
	cRgr          float64 // regression coefficient in the maintenance respiration function, s^-1
	q10m          float64 // Q10 value of temperature effect on maintenance respiration, -
	cFruitM       float64 // fruit maintenance respiration coefficient, mg mg^-1 s^-1
	cLeafM        float64 // leaf maintenance respiration coefficient, mg mg^-1 s^-1
	cStemM        float64 // stem maintenance respiration coefficient, mg mg^-1 s^-1
	rgFruit       float64 // potential fruit growth coefficient, mg m^-2 s^-1
	rgLeaf        float64 // potential leaf growth coefficient, mg m^-2 s^-1
	rgStem        float64 // potential stem growth coefficient, mg m^-2 s^-1

	// Carbohydrate buffer
	cBufMax   float64 // maximum buffer capacity, mg m^-2
	cBufMin   float64 // minimum buffer capacity, mg m^-2
	tCan24Max float64 // inhibition of growth above this mean canopy temperature, °C
	tCan24Min float64 // inhibition of growth below this mean canopy temperature, °C
	tCanMax   float64 // inhibition of growth above this instantaneous canopy temperature, °C
	tCanMin   float64 // inhibition of growth below this instantaneous canopy temperature, °C
	tEndSum   float64 // temperature sum where all growth is to fruit, °C day
	dayThresh float64 // radiation above which it is considered day, W m^-2

	// Climate control setpoints
	rhMax         float64 // upper bound on relative humidity, %
	tSpDay        float64 // heating temperature setpoint during the day, °C
	tSpNight      float64 // heating temperature setpoint during the night, °C
	tHeatBand     float64 // P-band for heating, °C
	tVentOff      float64 // distance from heating setpoint where ventilation stops, °C
	tScreenOn     float64 // distance from screen setpoint where the screen closes, °C
	thScrSpDay    float64 // screen deployment setpoint during the day, °C
	thScrSpNight  float64 // screen deployment setpoint during the night, °C
	thScrPband    float64 // P-band for screen deployment, °C
	co2SpDay      float64 // CO2 setpoint during the day, ppm
	co2Band       float64 // P-band for CO2 supply, ppm
	heatDeadZone  float64 // zone between heating and ventilation setpoints, °C
	ventHeatPband float64 // P-band for ventilation due to excess heat, °C
	ventColdPband float64 // P-band for closing vents when too cold, °C
	ventRhPband   float64 // P-band for ventilation due to high humidity, % humidity
	thScrRh       float64 // humidity distance from rhMax where the screen opens, % humidity
	thScrRhPband  float64 // P-band for screen opening due to high humidity, % humidity
	thScrDeadZone float64 // zone above the screen setpoint where the screen stays closed, °C

	// Lamp scheduling
	lampsOn         float64 // time of day to switch on lamps, hours (0-24)
	lampsOff        float64 // time of day to switch off lamps, hours (0-24)
	dayLampStart    float64 // day of year when lamps may be used, day
	dayLampStop     float64 // day of year after which lamps are not used, day
	lampsOffSun     float64 // global radiation above which lamps are off, W m^-2
	lampRadSumLimit float64 // daily radiation sum above which lamps stay off, MJ m^-2 day^-1
	lampExtraHeat   float64 // heating setpoint bonus while lamps are on, °C
	blScrExtraRh    float64 // humidity bound bonus while the blackout screen is open at night, %
	useBlScr        float64 // 1 if a blackout screen is present, -

	// Mechanical cooling, unused by the rule controller
	mechCoolPband    float64 // P-band of mechanical cooling, °C
	mechDehumidPband float64 // P-band of mechanical dehumidification, % humidity
	heatBufPband     float64 // P-band of the hot water buffer, °C
	mechCoolDeadZone float64 // zone between heating and mechanical cooling setpoints, °C

	// Grow pipes
	epsGroPipe  float64 // FIR emission coefficient of the grow pipes, -
	lGroPipe    float64 // length of grow pipes per floor area, m m^-2
	phiGroPipeE float64 // external diameter of the grow pipes, m
	phiGroPipeI float64 // internal diameter of the grow pipes, m
	pBoilGro    float64 // capacity of the grow pipe heating system, W

	// Top lights
	thetaLampMax   float64 // maximum lamp intensity, W m^-2
	heatCorrection float64 // heating setpoint correction while lamps are on, °C
	etaLampPar     float64 // fraction of lamp input converted to PAR, -
	etaLampNir     float64 // fraction of lamp input converted to NIR, -
	tauLampPar     float64 // PAR transmission of the lamp layer, -
	rhoLampPar     float64 // PAR reflection of the lamp layer, -
	tauLampNir     float64 // NIR transmission of the lamp layer, -
	rhoLampNir     float64 // NIR reflection of the lamp layer, -
	tauLampFir     float64 // FIR transmission of the lamp layer, -
	aLamp          float64 // lamp area per floor area, m^2 m^-2
	epsLampTop     float64 // FIR emission of the top side of the lamps, -
	epsLampBottom  float64 // FIR emission of the bottom side of the lamps, -
	capLamp        float64 // heat capacity of the lamps, J K^-1 m^-2
	cHecLampAir    float64 // convective exchange lamps to air, W m^-2 K^-1
	etaLampCool    float64 // fraction of lamp input removed by active cooling, -
	zetaLampPar    float64 // photons per Joule of lamp PAR, umol photons J^-1

	// Interlights
	vIntLampPos     float64 // vertical position of the interlights in the canopy, -
	fIntLampDown    float64 // fraction of interlight output directed downward, -
	capIntLamp      float64 // heat capacity of the interlights, J K^-1 m^-2
	etaIntLampPar   float64 // fraction of interlight input converted to PAR, -
	etaIntLampNir   float64 // fraction of interlight input converted to NIR, -
	aIntLamp        float64 // interlight area per floor area, m^2 m^-2
	epsIntLamp      float64 // FIR emission of the interlights, -
	thetaIntLampMax float64 // maximum interlight intensity, W m^-2
	zetaIntLampPar  float64 // photons per Joule of interlight PAR, umol photons J^-1
	cHecIntLampAir  float64 // convective exchange interlights to air, W m^-2 K^-1
	tauIntLampFir   float64 // FIR transmission of the interlight layer, -
	k1IntPar        float64 // PAR extinction for interlight light going up or down, -
	k2IntPar        float64 // PAR extinction for interlight light reflected from the floor, -
	kIntNir         float64 // NIR extinction for interlight light, -
	kIntFir         float64 // FIR extinction for interlight light, -

	// Leakage and air exchange
	cLeakTop float64 // fraction of leakage occurring in the top compartment, -
	minWind  float64 // wind speed below which leakage is computed as if at this speed, m s^-1

	// Dependent parameters, recomputed by ResetDependent
	capPipe    float64 // heat capacity of the heating pipes, J K^-1 m^-2
	rhoAir     float64 // density of greenhouse air, kg m^-3
	capAir     float64 // heat capacity of main compartment air, J K^-1 m^-2
	capFlr     float64 // heat capacity of the floor, J K^-1 m^-2
	capSo1     float64 // heat capacity of soil layer 1, J K^-1 m^-2
	capSo2     float64 // heat capacity of soil layer 2, J K^-1 m^-2
	capSo3     float64 // heat capacity of soil layer 3, J K^-1 m^-2
	capSo4     float64 // heat capacity of soil layer 4, J K^-1 m^-2
	capSo5     float64 // heat capacity of soil layer 5, J K^-1 m^-2
	capThScr   float64 // heat capacity of the thermal screen, J K^-1 m^-2
	capTop     float64 // heat capacity of top compartment air, J K^-1 m^-2
	capBlScr   float64 // heat capacity of the blackout screen, J K^-1 m^-2
	capCo2Air  float64 // CO2 capacity of the main compartment, m
	capCo2Top  float64 // CO2 capacity of the top compartment, m
	aPipe      float64 // pipe surface per floor area, m^2 m^-2
	fCanFlr    float64 // view factor canopy to floor, -
	pressure   float64 // air pressure at elevation, Pa
	aGroPipe   float64 // grow pipe surface per floor area, m^2 m^-2
	capGroPipe float64 // heat capacity of the grow pipes, J K^-1 m^-2
}

/*
Construct the nominal parameter set.

	Args:
	    lamp: lamp installation; HPS and LED overlay their published
	        parameter bundles over the no-lamp defaults

	Returns:
	    parameter set with dependent values computed
*/
func NewParams(lamp LampType) *Params {
	p := &Params{
		alfaLeafAir: 5,
		l:           2.45e6,
		sigma:       5.67e-8,
		epsCan:      1,
		epsSky:      1,
		etaGlobNir:  0.5,
		etaGlobPar:  0.5,
		etaMgPpm:    0.554,
		etaRoofThr:  0.9,
		rhoAir0:     1.2,
		rhoCanPar:   0.07,
		rhoCanNir:   0.35,
		rhoSteel:    7850,
		rhoWater:    1e3,
		gamma:       65.8,
		omega:       1.99e-7,
		capLeaf:     1.2e3,
		cEvap1:      4.3,
		cEvap2:      0.54,
		cEvap3Day:   6.1e-7,
		cEvap3Night: 1.1e-11,
		cEvap4Day:   4.3e-6,
		cEvap4Night: 5.2e-6,
		cPAir:       1e3,
		cPSteel:     0.64e3,
		cPWater:     4.18e3,
		g:           9.81,
		hSo1:        0.04,
		hSo2:        0.08,
		hSo3:        0.16,
		hSo4:        0.32,
		hSo5:        0.64,
		k1Par:       0.7,
		k2Par:       0.7,
		kNir:        0.27,
		kFir:        0.94,
		mAir:        28.96,
		hSoOut:      1.28,
		mWater:      18,
		r:           8314,
		rCanSp:      5,
		rB:          275,
		rSMin:       82,
		sRsSlope:    -1,

		etaGlobAir: 0.1,
		psi:        25,
		aFlr:       1.4e4,
		aCov:       1.8e4,
		hAir:       3.8,
		hGh:        4.2,
		cHecIn:     1.86,
		cHecOut1:   2.8,
		cHecOut2:   1.2,
		cHecOut3:   1,
		hElevation: 0,

		aRoof:     1.4e3,
		hVent:     0.68,
		etaInsScr: 1,
		aSide:     0,
		cDgh:      0.75,
		cLeakage:  1e-4,
		cWgh:      0.09,
		hSideRoof: 0,

		epsRfFir: 0.85,
		rhoRf:    2.6e3,
		rhoRfNir: 0.13,
		rhoRfPar: 0.13,
		rhoRfFir: 0.15,
		tauRfNir: 0.85,
		tauRfPar: 0.85,
		tauRfFir: 0,
		lambdaRf: 1.05,
		cPRf:     0.84e3,
		hRf:      4e-3,

		epsShScrPerFir: 0,
		rhoShScrPer:    0,
		rhoShScrPerNir: 0,
		rhoShScrPerPar: 0,
		rhoShScrPerFir: 0,
		tauShScrPerNir: 1,
		tauShScrPerPar: 1,
		tauShScrPerFir: 1,
		lambdaShScrPer: 1e20,
		cPShScrPer:     0,
		hShScrPer:      0,

		rhoShScrNir: 0,
		rhoShScrPar: 0,
		rhoShScrFir: 0,
		tauShScrNir: 1,
		tauShScrPar: 1,
		tauShScrFir: 1,
		etaShScrCd:  0,
		etaShScrCw:  0,
		kShScr:      0,

		epsThScrFir: 0.67,
		rhoThScr:    0.2e3,
		rhoThScrNir: 0.35,
		rhoThScrPar: 0.35,
		rhoThScrFir: 0.18,
		tauThScrNir: 0.6,
		tauThScrPar: 0.6,
		tauThScrFir: 0.15,
		cPThScr:     1.8e3,
		hThScr:      0.35e-3,
		kThScr:      0.05e-3,

		epsBlScrFir: 0.67,
		rhoBlScr:    0.2e3,
		rhoBlScrNir: 0.35,
		rhoBlScrPar: 0.35,
		tauBlScrNir: 0.01,
		tauBlScrPar: 0.01,
		tauBlScrFir: 0.7,
		cPBlScr:     1.8e3,
		hBlScr:      0.35e-3,
		kBlScr:      0.05e-3,

		epsFlr:    1,
		rhoFlr:    2300,
		rhoFlrNir: 0.5,
		rhoFlrPar: 0.65,
		lambdaFlr: 1.7,
		cPFlr:     0.88e3,
		hFlr:      0.02,

		rhoCpSo:  1.73e6,
		lambdaSo: 0.85,

		epsPipe:  0.88,
		phiPipeE: 51e-3,
		phiPipeI: 47e-3,
		lPipe:    1.875,
		pBoil:    130 * 1.4e4,

		phiExtCo2: 7.2e4,

		globJtoUmol:   2.3,
		j25LeafMax:    210,
		cGamma:        1.7,
		etaCo2AirStom: 0.67,
		eJ:            37e3,
		t25k:          298.15,
		s:             710,
		h:             22e4,
		theta:         0.7,
		alpha:         0.385,
		mCh2o:         30e-3,
		mCo2:          44e-3,
		parJtoUmolSun: 4.6,
		laiMax:        3,
		sla:           2.66e-5,
		rgr:           3e-6,
		cFruitMax:     300e3,
		cFruitG:       0.27,
		cLeafG:        0.28,
		cStemG:        0.3,
		cRgr:          2.85e6,
		q10m:          2,
		cFruitM:       1.16e-7,
		cLeafM:        3.47e-7,
		cStemM:        1.47e-7,
		rgFruit:       0.328,
		rgLeaf:        0.095,
		rgStem:        0.074,

		cBufMax:   20e3,
		cBufMin:   1e3,
		tCan24Max: 24.5,
		tCan24Min: 15,
		tCanMax:   34,
		tCanMin:   10,
		tEndSum:   1035,
		dayThresh: 20,

		rhMax:         90,
		tSpDay:        19.5,
		tSpNight:      16.5,
		tHeatBand:     -1,
		tVentOff:      1,
		tScreenOn:     2,
		thScrSpDay:    5,
		thScrSpNight:  10,
		thScrPband:    -1,
		co2SpDay:      800,
		co2Band:       -100,
		heatDeadZone:  5,
		ventHeatPband: 4,
		ventColdPband: -1,
		ventRhPband:   5,
		thScrRh:       -2,
		thScrRhPband:  2,
		thScrDeadZone: 4,

		lampsOn:         0,
		lampsOff:        0,
		dayLampStart:    -1,
		dayLampStop:     400,
		lampsOffSun:     400,
		lampRadSumLimit: 10,
		lampExtraHeat:   2,
		blScrExtraRh:    100,
		useBlScr:        0,

		mechCoolPband:    1,
		mechDehumidPband: 2,
		heatBufPband:     -1,
		mechCoolDeadZone: 2,

		epsGroPipe:  0,
		lGroPipe:    1.655,
		phiGroPipeE: 35e-3,
		phiGroPipeI: 35e-3 - 1.2e-3,
		pBoilGro:    0,

		thetaLampMax:   0,
		heatCorrection: 0,
		etaLampPar:     0,
		etaLampNir:     0,
		tauLampPar:     1,
		rhoLampPar:     0,
		tauLampNir:     1,
		rhoLampNir:     0,
		tauLampFir:     1,
		aLamp:          0,
		epsLampTop:     0,
		epsLampBottom:  0,
		capLamp:        350,
		cHecLampAir:    0,
		etaLampCool:    0,
		zetaLampPar:    0,

		vIntLampPos:     0.5,
		fIntLampDown:    0.5,
		capIntLamp:      10,
		etaIntLampPar:   0,
		etaIntLampNir:   0,
		aIntLamp:        0,
		epsIntLamp:      0,
		thetaIntLampMax: 0,
		zetaIntLampPar:  0,
		cHecIntLampAir:  0,
		tauIntLampFir:   1,
		k1IntPar:        1.4,
		k2IntPar:        1.4,
		kIntNir:         0.54,
		kIntFir:         1.88,

		cLeakTop: 0.5,
		minWind:  0.25,
	}
	p.applyLampDefaults(lamp)
	p.ResetDependent()
	return p
}

func (p *Params) applyLampDefaults(lamp LampType) {
	switch lamp {
	case LampHPS:
		p.thetaLampMax = 200 / 1.8
		p.heatCorrection = 0
		p.etaLampPar = 1.8 / 4.9
		p.etaLampNir = 0.22
		p.tauLampPar = 0.98
		p.rhoLampPar = 0
		p.tauLampNir = 0.98
		p.rhoLampNir = 0
		p.tauLampFir = 0.98
		p.aLamp = 0.02
		p.epsLampTop = 0.1
		p.epsLampBottom = 0.9
		p.capLamp = 100
		p.cHecLampAir = 0.09
		p.etaLampCool = 0
		p.zetaLampPar = 4.9
		p.lampsOn = 0
		p.lampsOff = 18
	case LampLED:
		p.thetaLampMax = 200 / 3
		p.heatCorrection = 0
		p.etaLampPar = 3 / 5.41
		p.etaLampNir = 0.02
		p.tauLampPar = 0.98
		p.rhoLampPar = 0
		p.tauLampNir = 0.98
		p.rhoLampNir = 0
		p.tauLampFir = 0.98
		p.aLamp = 0.02
		p.epsLampTop = 0.88
		p.epsLampBottom = 0.88
		p.capLamp = 10
		p.cHecLampAir = 2.3
		p.etaLampCool = 0
		p.zetaLampPar = 5.41
		p.lampsOn = 0
		p.lampsOff = 18
	}
}

// SetElevation overrides the site altitude in m above sea level and
// recomputes the air density and pressure that depend on it.
func (p *Params) SetElevation(h float64) {
	p.hElevation = h
	p.ResetDependent()
}

/*
Recompute the parameters that derive from other parameters.

Must be called after overriding any primary parameter so that
capacities, areas and the pressure stay consistent.
*/
func (p *Params) ResetDependent() {
	p.capPipe = 0.25 * math.Pi * p.lPipe *
		((p.phiPipeE*p.phiPipeE-p.phiPipeI*p.phiPipeI)*p.rhoSteel*p.cPSteel +
			p.phiPipeI*p.phiPipeI*p.rhoWater*p.cPWater)
	p.rhoAir = p.rhoAir0 * math.Exp(p.g*p.mAir*p.hElevation/(293.15*p.r))
	p.capAir = p.hAir * p.rhoAir * p.cPAir
	p.capFlr = p.hFlr * p.rhoFlr * p.cPFlr
	p.capSo1 = p.hSo1 * p.rhoCpSo
	p.capSo2 = p.hSo2 * p.rhoCpSo
	p.capSo3 = p.hSo3 * p.rhoCpSo
	p.capSo4 = p.hSo4 * p.rhoCpSo
	p.capSo5 = p.hSo5 * p.rhoCpSo
	p.capThScr = p.hThScr * p.rhoThScr * p.cPThScr
	p.capTop = (p.hGh - p.hAir) * p.rhoAir * p.cPAir
	p.capBlScr = p.hBlScr * p.rhoBlScr * p.cPBlScr
	p.capCo2Air = p.hAir
	p.capCo2Top = p.hGh - p.hAir
	p.aPipe = math.Pi * p.lPipe * p.phiPipeE
	p.fCanFlr = 1 - 0.49*math.Pi*p.lPipe*p.phiPipeE
	p.pressure = 101325 * math.Pow(1-2.5577e-5*p.hElevation, 5.25588)
	p.cLeafMax = p.laiMax / p.sla
	p.aGroPipe = math.Pi * p.lGroPipe * p.phiGroPipeE
	p.capGroPipe = 0.25 * math.Pi * p.lGroPipe *
		((p.phiGroPipeE*p.phiGroPipeE-p.phiGroPipeI*p.phiGroPipeI)*p.rhoSteel*p.cPSteel +
			p.phiGroPipeI*p.phiGroPipeI*p.rhoWater*p.cPWater)
}

/*
Adjust the parameters to the 4 ha reference greenhouse used in the
world comparison studies: a taller, larger house with different
ventilation, setpoint and boiler settings. Dependent parameters are
recomputed.
*/
func (p *Params) ApplyFourHectare() {
	p.psi = 22
	p.aFlr = 4e4
	p.aCov = 4.84e4
	p.hAir = 6.3
	p.hGh = 6.905
	p.aRoof = 0.1169 * 4e4
	p.hVent = 1.3
	p.cDgh = 0.75
	p.lPipe = 1.25
	p.phiExtCo2 = 7.2e4 * 4e4 / 1.4e4
	p.co2SpDay = 1000
	p.tSpNight = 18.5
	p.tSpDay = 19.5
	p.rhMax = 87
	p.ventHeatPband = 4
	p.ventRhPband = 50
	p.thScrRhPband = 10
	p.lampsOn = 0
	p.lampsOff = 18
	p.lampsOffSun = 400
	p.lampRadSumLimit = 10
	p.pBoil = 300 * p.aFlr
	p.ResetDependent()
}
