package greensim

import "math"

// Gas and moisture constants shared by the conversion helpers.
const (
	rGas     = 8.3144598 // molar gas constant, J mol^-1 K^-1
	mWaterKg = 18.01528e-3
	mCo2Kg   = 44.01e-3
	pAtm     = 101325.0 // standard atmospheric pressure, Pa
	zeroC    = 273.15
)

/*
Saturation vapor pressure of air at a given temperature.

	Args:
	    t: air temperature, °C

	Returns:
	    saturation vapor pressure, Pa
*/
func SatVp(t float64) float64 {
	return 610.78 * math.Exp(17.2694*t/(t+238.3))
}

/*
Vapor density of air at a given temperature and relative humidity.

	Args:
	    t: air temperature, °C
	    rh: relative humidity, % (0-100)

	Returns:
	    vapor density, kg m^-3
*/
func Rh2VaporDens(t, rh float64) float64 {
	pascals := rh / 100 * SatVp(t)
	return pascals * mWaterKg / (rGas * (t + zeroC))
}

/*
Partial vapor pressure corresponding to a vapor density.

	Args:
	    t: air temperature, °C
	    vaporDens: vapor density, kg m^-3

	Returns:
	    vapor pressure, Pa
*/
func VaporDens2Pres(t, vaporDens float64) float64 {
	return vaporDens * rGas * (t + zeroC) / mWaterKg
}

/*
Vapor density corresponding to a partial vapor pressure.

	Args:
	    t: air temperature, °C
	    vp: vapor pressure, Pa

	Returns:
	    vapor density, kg m^-3
*/
func Vp2Dens(t, vp float64) float64 {
	return vp * mWaterKg / (rGas * (t + zeroC))
}

/*
CO2 concentration by volume corresponding to a CO2 density.

	Args:
	    t: air temperature, °C
	    dens: CO2 density, kg m^-3

	Returns:
	    CO2 concentration, ppm
*/
func CO2Dens2Ppm(t, dens float64) float64 {
	return 1e6 * rGas * (t + zeroC) * dens / (pAtm * mCo2Kg)
}

/*
CO2 density corresponding to a CO2 concentration by volume.

	Args:
	    t: air temperature, °C
	    ppm: CO2 concentration, ppm

	Returns:
	    CO2 density, kg m^-3
*/
func CO2Ppm2Dens(t, ppm float64) float64 {
	return pAtm * 1e-6 * ppm * mCo2Kg / (rGas * (t + zeroC))
}
