package greensim

import "math"

const sigmaSB = 5.67e-8 // Stefan-Boltzmann constant, W m^-2 K^-4

/*
Transmission coefficient of a double layer.

	Args:
	    tau1, tau2: transmission of the upper and lower layer, -
	    rho1Dn: reflection of the lower side of the upper layer, -
	    rho2Up: reflection of the upper side of the lower layer, -

	Returns:
	    transmission of the combined layer, -
*/
func tau12(tau1, tau2, rho1Dn, rho2Up float64) float64 {
	return tau1 * tau2 / (1 - rho1Dn*rho2Up)
}

// rhoUp is the reflection of the top side of a double layer.
func rhoUp(tau1, rho1Up, rho1Dn, rho2Up float64) float64 {
	return rho1Up + tau1*tau1*rho2Up/(1-rho1Dn*rho2Up)
}

// rhoDn is the reflection of the bottom side of a double layer.
func rhoDn(tau2, rho1Dn, rho2Dn, rho2Up float64) float64 {
	return rho2Dn + tau2*tau2*rho1Dn/(1-rho1Dn*rho2Up)
}

/*
Net far infrared flux from surface 1 to surface 2.

	Args:
	    a1: area of surface 1 per floor area, m^2 m^-2
	    eps1, eps2: emissivities of the two surfaces, -
	    f12: view factor from 1 to 2, -
	    t1, t2: surface temperatures, °C

	Returns:
	    net radiative flux, W m^-2

	Notes:
	    Returns exactly zero when any of the factors is zero, so
	    absent surfaces drop out of the balance without residue.
*/
func fir(a1, eps1, eps2, f12, t1, t2 float64) float64 {
	if a1 == 0 || eps1 == 0 || eps2 == 0 || f12 == 0 {
		return 0
	}
	return a1 * eps1 * eps2 * f12 * sigmaSB *
		(math.Pow(t1+zeroC, 4) - math.Pow(t2+zeroC, 4))
}

// sensible is the convective or conductive flux for a heat exchange
// coefficient hec, exactly zero when hec is zero.
func sensible(hec, t1, t2 float64) float64 {
	if hec == 0 {
		return 0
	}
	return math.Abs(hec) * (t1 - t2)
}

/*
Condensation flux between two vapor pressures.

	Args:
	    hec: heat exchange coefficient of the surface pair, W m^-2 K^-1
	    vp1, vp2: vapor pressures, Pa

	Returns:
	    vapor flux from 1 to 2, kg m^-2 s^-1

	Notes:
	    The logistic switch blocks evaporation (vp1 < vp2). Its
	    exponent is clipped to ±100 to avoid overflow.
*/
func cond(hec, vp1, vp2 float64) float64 {
	if hec == 0 {
		return 0
	}
	const sMV12 = -0.1
	arg := sMV12 * (vp1 - vp2)
	if arg > 100 {
		arg = 100
	} else if arg < -100 {
		arg = -100
	}
	return 1 / (1 + math.Exp(arg)) * 6.4e-9 * hec * (vp1 - vp2)
}

// airMv is the vapor flux accompanying an air flux f12 between two air
// volumes with vapor pressures vp1, vp2 and temperatures t1, t2.
func airMv(f12, vp1, vp2, t1, t2 float64) float64 {
	const mWater, r = 18.0, 8.314e3 // g mol^-1, J K^-1 kmol^-1
	return mWater / r * math.Abs(f12) *
		(vp1/(t1+zeroC) - vp2/(t2+zeroC))
}

// airMc is the CO2 flux accompanying an air flux f12 between two air
// volumes with CO2 concentrations c1, c2 (mg m^-3).
func airMc(f12, c1, c2 float64) float64 {
	return math.Abs(f12) * (c1 - c2)
}

/*
Smoothed harvest rate of a carbohydrate pool.

	Args:
	    pv: value of the pool, mg m^-2
	    cutOff: pool value where the rate is half of maxRate, mg m^-2
	    smooth: width of the transition, mg m^-2
	    maxRate: maximal harvest rate, mg m^-2 s^-1

	Returns:
	    harvest rate, mg m^-2 s^-1
*/
func smoothHar(pv, cutOff, smooth, maxRate float64) float64 {
	return maxRate / (1 + math.Exp(-(pv-cutOff)*2*math.Log(100)/smooth))
}

/*
Smoothed proportional controller.

	Args:
	    pv: process variable
	    sp: setpoint
	    pBand: proportional band; a negative band inverts the response
	    minVal, maxVal: controller output range

	Returns:
	    controller output in [minVal, maxVal]
*/
func proportionalControl(pv, sp, pBand, minVal, maxVal float64) float64 {
	e := -2 / pBand * math.Log(100) * (pv - sp - pBand/2)
	// exp overflows around 709; the output has saturated long before.
	if e > 700 {
		return minVal
	}
	return minVal + (maxVal-minVal)/(1+math.Exp(e))
}

// ifElse is the arithmetic branch used throughout the model equations:
// cond is expected to be 0 or 1.
func ifElse(cond, ifTrue, ifFalse float64) float64 {
	return cond*ifTrue + (1-cond)*ifFalse
}

// nthroot is the real n-th root of x.
func nthroot(x float64, n float64) float64 {
	return math.Pow(x, 1/n)
}
