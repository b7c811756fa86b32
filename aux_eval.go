package greensim

import "math"

// b2f maps a condition to the 0/1 weights used by the arithmetic
// branches of the model equations.
func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// layers combines two optical layers into the transmission and the
// upward and downward reflection of the pair.
func layers(tau1, tau2, rho1Up, rho1Dn, rho2Up, rho2Dn float64) (tau, up, dn float64) {
	return tau12(tau1, tau2, rho1Dn, rho2Up),
		rhoUp(tau1, rho1Up, rho1Dn, rho2Up),
		rhoDn(tau2, rho1Dn, rho2Dn, rho2Up)
}

/*
Evaluate all auxiliary quantities into a.

The groups build on each other and must run in this order: cover
optics, capacities, PAR/NIR/global radiation, FIR exchange,
ventilation rates, control rule inputs, convection and conduction,
transpiration, vapor fluxes, latent heat, photosynthesis, the
carbohydrate buffer, respiration and harvest, CO2 fluxes, and the
actuator fluxes.

	Args:
	    p: parameters
	    x: current state
	    d: disturbances sampled at the current instant
	    u: current control settings
	    a: result, fully overwritten
*/
func evalAux(p *Params, x *State, d *Disturbances, u *Controls, a *Aux) {
	// Shadow screen and whitewash optics, per spectral band.
	a.tauShScrPar = 1 - u.shScr*(1-p.tauShScrPar)
	a.tauShScrPerPar = 1 - u.shScrPer*(1-p.tauShScrPerPar)
	a.rhoShScrPar = u.shScr * p.rhoShScrPar
	a.rhoShScrPerPar = u.shScrPer * p.rhoShScrPerPar
	a.tauShScrShScrPerPar, a.rhoShScrShScrPerParUp, a.rhoShScrShScrPerParDn = layers(
		a.tauShScrPar, a.tauShScrPerPar,
		a.rhoShScrPar, a.rhoShScrPar, a.rhoShScrPerPar, a.rhoShScrPerPar)

	a.tauShScrNir = 1 - u.shScr*(1-p.tauShScrNir)
	a.tauShScrPerNir = 1 - u.shScrPer*(1-p.tauShScrPerNir)
	a.rhoShScrNir = u.shScr * p.rhoShScrNir
	a.rhoShScrPerNir = u.shScrPer * p.rhoShScrPerNir
	a.tauShScrShScrPerNir, a.rhoShScrShScrPerNirUp, a.rhoShScrShScrPerNirDn = layers(
		a.tauShScrNir, a.tauShScrPerNir,
		a.rhoShScrNir, a.rhoShScrNir, a.rhoShScrPerNir, a.rhoShScrPerNir)

	a.tauShScrFir = 1 - u.shScr*(1-p.tauShScrFir)
	a.tauShScrPerFir = 1 - u.shScrPer*(1-p.tauShScrPerFir)
	a.rhoShScrFir = u.shScr * p.rhoShScrFir
	a.rhoShScrPerFir = u.shScrPer * p.rhoShScrPerFir
	a.tauShScrShScrPerFir, a.rhoShScrShScrPerFirUp, a.rhoShScrShScrPerFirDn = layers(
		a.tauShScrFir, a.tauShScrPerFir,
		a.rhoShScrFir, a.rhoShScrFir, a.rhoShScrPerFir, a.rhoShScrPerFir)

	// Roof and thermal screen.
	a.tauThScrPar = 1 - u.thScr*(1-p.tauThScrPar)
	a.rhoThScrPar = u.thScr * p.rhoThScrPar
	a.tauCovThScrPar, a.rhoCovThScrParUp, a.rhoCovThScrParDn = layers(
		p.tauRfPar, a.tauThScrPar,
		p.rhoRfPar, p.rhoRfPar, a.rhoThScrPar, a.rhoThScrPar)

	a.tauThScrNir = 1 - u.thScr*(1-p.tauThScrNir)
	a.rhoThScrNir = u.thScr * p.rhoThScrNir
	a.tauCovThScrNir, a.rhoCovThScrNirUp, a.rhoCovThScrNirDn = layers(
		p.tauRfNir, a.tauThScrNir,
		p.rhoRfNir, p.rhoRfNir, a.rhoThScrNir, a.rhoThScrNir)

	// All layers above the blackout screen.
	a.tauCovParOld, a.rhoCovParOldUp, a.rhoCovParOldDn = layers(
		a.tauShScrShScrPerPar, a.tauCovThScrPar,
		a.rhoShScrShScrPerParUp, a.rhoShScrShScrPerParDn,
		a.rhoCovThScrParUp, a.rhoCovThScrParDn)
	a.tauCovNirOld, a.rhoCovNirOldUp, a.rhoCovNirOldDn = layers(
		a.tauShScrShScrPerNir, a.tauCovThScrNir,
		a.rhoShScrShScrPerNirUp, a.rhoShScrShScrPerNirDn,
		a.rhoCovThScrNirUp, a.rhoCovThScrNirDn)

	a.tauBlScrPar = 1 - u.blScr*(1-p.tauBlScrPar)
	a.rhoBlScrPar = u.blScr * p.rhoBlScrPar
	a.tauCovBlScrPar, a.rhoCovBlScrParUp, a.rhoCovBlScrParDn = layers(
		a.tauCovParOld, a.tauBlScrPar,
		a.rhoCovParOldUp, a.rhoCovParOldDn, a.rhoBlScrPar, a.rhoBlScrPar)

	a.tauBlScrNir = 1 - u.blScr*(1-p.tauBlScrNir)
	a.rhoBlScrNir = u.blScr * p.rhoBlScrNir
	a.tauCovBlScrNir, a.rhoCovBlScrNirUp, a.rhoCovBlScrNirDn = layers(
		a.tauCovNirOld, a.tauBlScrNir,
		a.rhoCovNirOldUp, a.rhoCovNirOldDn, a.rhoBlScrNir, a.rhoBlScrNir)

	// Whole cover including the lamp layer.
	a.tauCovPar = tau12(a.tauCovBlScrPar, p.tauLampPar, a.rhoCovBlScrParDn, p.rhoLampPar)
	a.rhoCovPar = rhoUp(a.tauCovBlScrPar, a.rhoCovBlScrParUp, a.rhoCovBlScrParDn, p.rhoLampPar)
	a.tauCovNir = tau12(a.tauCovBlScrNir, p.tauLampNir, a.rhoCovBlScrNirDn, p.rhoLampNir)
	a.rhoCovNir = rhoUp(a.tauCovBlScrNir, a.rhoCovBlScrNirUp, a.rhoCovBlScrNirDn, p.rhoLampNir)
	a.tauCovFir = tau12(a.tauShScrShScrPerFir, p.tauRfFir, a.rhoShScrShScrPerFirDn, p.rhoRfFir)
	a.rhoCovFir = rhoUp(a.tauShScrShScrPerFir, a.rhoShScrShScrPerFirUp, a.rhoShScrShScrPerFirDn, p.rhoRfFir)

	a.aCovPar = 1 - a.tauCovPar - a.rhoCovPar
	a.aCovNir = 1 - a.tauCovNir - a.rhoCovNir
	a.aCovFir = 1 - a.tauCovFir - a.rhoCovFir
	a.epsCovFir = a.aCovFir
	a.capCov = math.Cos(p.psi*math.Pi/180) *
		(u.shScrPer*p.hShScrPer*p.rhoShScrPer*p.cPShScrPer + p.hRf*p.rhoRf*p.cPRf)

	// Capacities.
	a.lai = p.sla * x.cLeaf
	a.capCan = p.capLeaf * a.lai
	a.capCovE = 0.1 * a.capCov
	a.capCovIn = 0.1 * a.capCov
	a.capVpAir = p.mWater * p.hAir / (p.r * (x.tAir + zeroC))
	a.capVpTop = p.mWater * (p.hGh - p.hAir) / (p.r * (x.tTop + zeroC))

	// Global, PAR and NIR radiation fluxes.
	a.qLampIn = p.thetaLampMax * u.lamp
	a.qIntLampIn = p.thetaIntLampMax * u.intLamp
	a.rParGhSun = (1 - p.etaGlobAir) * a.tauCovPar * p.etaGlobPar * d.iGlob
	a.rParGhLamp = p.etaLampPar * a.qLampIn
	a.rParGhIntLamp = p.etaIntLampPar * a.qIntLampIn
	a.rCanSun = (1 - p.etaGlobAir) * d.iGlob *
		(p.etaGlobPar*a.tauCovPar + p.etaGlobNir*a.tauCovNir)
	a.rCanLamp = (p.etaLampPar + p.etaLampNir) * a.qLampIn
	a.rCanIntLamp = (p.etaIntLampPar + p.etaIntLampNir) * a.qIntLampIn
	a.rCan = a.rCanSun + a.rCanLamp + a.rCanIntLamp

	a.rParSunCanDown = a.rParGhSun * (1 - p.rhoCanPar) * (1 - math.Exp(-p.k1Par*a.lai))
	a.rParLampCanDown = a.rParGhLamp * (1 - p.rhoCanPar) * (1 - math.Exp(-p.k1Par*a.lai))
	a.fIntLampCanPar = 1 - p.fIntLampDown*math.Exp(-p.k1IntPar*p.vIntLampPos*a.lai) +
		(p.fIntLampDown-1)*math.Exp(-p.k1IntPar*(1-p.vIntLampPos)*a.lai)
	a.fIntLampCanNir = 1 - p.fIntLampDown*math.Exp(-p.kIntNir*p.vIntLampPos*a.lai) +
		(p.fIntLampDown-1)*math.Exp(-p.kIntNir*(1-p.vIntLampPos)*a.lai)
	a.rParIntLampCanDown = a.rParGhIntLamp * a.fIntLampCanPar * (1 - p.rhoCanPar)
	a.rParSunFlrCanUp = a.rParGhSun * math.Exp(-p.k1Par*a.lai) * p.rhoFlrPar *
		(1 - p.rhoCanPar) * (1 - math.Exp(-p.k2Par*a.lai))
	a.rParLampFlrCanUp = a.rParGhLamp * math.Exp(-p.k1Par*a.lai) * p.rhoFlrPar *
		(1 - p.rhoCanPar) * (1 - math.Exp(-p.k2Par*a.lai))
	a.rParIntLampFlrCanUp = a.rParGhIntLamp * p.fIntLampDown *
		math.Exp(-p.k1IntPar*p.vIntLampPos*a.lai) * p.rhoFlrPar *
		(1 - p.rhoCanPar) * (1 - math.Exp(-p.k2IntPar*a.lai))
	a.rParSunCan = a.rParSunCanDown + a.rParSunFlrCanUp
	a.rParLampCan = a.rParLampCanDown + a.rParLampFlrCanUp
	a.rParIntLampCan = a.rParIntLampCanDown + a.rParIntLampFlrCanUp

	a.tauHatCovNir = 1 - a.rhoCovNir
	a.tauHatFlrNir = 1 - p.rhoFlrNir
	a.tauHatCanNir = math.Exp(-p.kNir * a.lai)
	a.rhoHatCanNir = p.rhoCanNir * (1 - a.tauHatCanNir)
	a.tauCovCanNir, a.rhoCovCanNirUp, a.rhoCovCanNirDn = layers(
		a.tauHatCovNir, a.tauHatCanNir,
		a.rhoCovNir, a.rhoCovNir, a.rhoHatCanNir, a.rhoHatCanNir)
	a.tauCovCanFlrNir = tau12(a.tauCovCanNir, a.tauHatFlrNir, a.rhoCovCanNirDn, p.rhoFlrNir)
	a.rhoCovCanFlrNir = rhoUp(a.tauCovCanNir, a.rhoCovCanNirUp, a.rhoCovCanNirDn, p.rhoFlrNir)
	a.aCanNir = 1 - a.tauCovCanFlrNir - a.rhoCovCanFlrNir
	a.aFlrNir = a.tauCovCanFlrNir

	a.rNirSunCan = (1 - p.etaGlobAir) * a.aCanNir * p.etaGlobNir * d.iGlob
	a.rNirLampCan = p.etaLampNir * a.qLampIn * (1 - p.rhoCanNir) * (1 - math.Exp(-p.kNir*a.lai))
	a.rNirIntLampCan = p.etaIntLampNir * a.qIntLampIn * a.fIntLampCanNir * (1 - p.rhoCanNir)
	a.rNirSunFlr = (1 - p.etaGlobAir) * a.aFlrNir * p.etaGlobNir * d.iGlob
	a.rNirLampFlr = (1 - p.rhoFlrNir) * math.Exp(-p.kNir*a.lai) * p.etaLampNir * a.qLampIn
	a.rNirIntLampFlr = p.fIntLampDown * (1 - p.rhoFlrNir) *
		math.Exp(-p.kIntNir*a.lai*p.vIntLampPos) * p.etaIntLampNir * a.qIntLampIn
	a.rParSunFlr = (1 - p.rhoFlrPar) * math.Exp(-p.k1Par*a.lai) * a.rParGhSun
	a.rParLampFlr = (1 - p.rhoFlrPar) * math.Exp(-p.k1Par*a.lai) * a.rParGhLamp
	a.rParIntLampFlr = a.rParGhIntLamp * p.fIntLampDown * (1 - p.rhoFlrPar) *
		math.Exp(-p.k1IntPar*a.lai*p.vIntLampPos)
	a.rLampAir = (p.etaLampPar+p.etaLampNir)*a.qLampIn -
		a.rParLampCan - a.rNirLampCan - a.rParLampFlr - a.rNirLampFlr
	a.rIntLampAir = (p.etaIntLampPar+p.etaIntLampNir)*a.qIntLampIn -
		a.rParIntLampCan - a.rNirIntLampCan - a.rParIntLampFlr - a.rNirIntLampFlr
	a.rGlobSunAir = p.etaGlobAir * d.iGlob *
		(a.tauCovPar*p.etaGlobPar + (a.aCanNir+a.aFlrNir)*p.etaGlobNir)
	a.rGlobSunCovE = (a.aCovPar*p.etaGlobPar + a.aCovNir*p.etaGlobNir) * d.iGlob

	// FIR exchange. piFrac is the view blocked by the pipe rack.
	piFrac := 0.49 * math.Pi * p.lPipe * p.phiPipeE
	canExt := math.Exp(-p.kFir * a.lai)
	a.tauThScrFirU = 1 - u.thScr*(1-p.tauThScrFir)
	a.tauBlScrFirU = 1 - u.blScr*(1-p.tauBlScrFir)
	a.aCan = 1 - canExt
	a.rCanCovIn = fir(a.aCan, p.epsCan, a.epsCovFir,
		p.tauLampFir*a.tauThScrFirU*a.tauBlScrFirU, x.tCan, x.tCovIn)
	a.rCanSky = fir(a.aCan, p.epsCan, p.epsSky,
		p.tauLampFir*a.tauCovFir*a.tauThScrFirU*a.tauBlScrFirU, x.tCan, d.tSky)
	a.rCanThScr = fir(a.aCan, p.epsCan, p.epsThScrFir,
		p.tauLampFir*u.thScr*a.tauBlScrFirU, x.tCan, x.tThScr)
	a.rCanFlr = fir(a.aCan, p.epsCan, p.epsFlr, p.fCanFlr, x.tCan, x.tFlr)
	a.rPipeCovIn = fir(p.aPipe, p.epsPipe, a.epsCovFir,
		p.tauIntLampFir*p.tauLampFir*a.tauThScrFirU*a.tauBlScrFirU*0.49*canExt,
		x.tPipe, x.tCovIn)
	a.rPipeSky = fir(p.aPipe, p.epsPipe, p.epsSky,
		p.tauIntLampFir*p.tauLampFir*a.tauCovFir*a.tauThScrFirU*a.tauBlScrFirU*0.49*canExt,
		x.tPipe, d.tSky)
	a.rPipeThScr = fir(p.aPipe, p.epsPipe, p.epsThScrFir,
		p.tauIntLampFir*p.tauLampFir*u.thScr*a.tauBlScrFirU*0.49*canExt,
		x.tPipe, x.tThScr)
	a.rPipeFlr = fir(p.aPipe, p.epsPipe, p.epsFlr, 0.49, x.tPipe, x.tFlr)
	a.rPipeCan = fir(p.aPipe, p.epsPipe, p.epsCan, 0.49*(1-canExt), x.tPipe, x.tCan)
	a.rFlrCovIn = fir(1, p.epsFlr, a.epsCovFir,
		p.tauIntLampFir*p.tauLampFir*a.tauThScrFirU*a.tauBlScrFirU*(1-piFrac)*canExt,
		x.tFlr, x.tCovIn)
	a.rFlrSky = fir(1, p.epsFlr, p.epsSky,
		p.tauIntLampFir*p.tauLampFir*a.tauCovFir*a.tauThScrFirU*a.tauBlScrFirU*(1-piFrac)*canExt,
		x.tFlr, d.tSky)
	a.rFlrThScr = fir(1, p.epsFlr, p.epsThScrFir,
		p.tauIntLampFir*p.tauLampFir*u.thScr*a.tauBlScrFirU*(1-piFrac)*canExt,
		x.tFlr, x.tThScr)
	a.rThScrCovIn = fir(1, p.epsThScrFir, a.epsCovFir, u.thScr, x.tThScr, x.tCovIn)
	a.rThScrSky = fir(1, p.epsThScrFir, p.epsSky, a.tauCovFir*u.thScr, x.tThScr, d.tSky)
	a.rCovESky = fir(1, a.aCovFir, p.epsSky, 1, x.tCovE, d.tSky)
	a.rFirLampFlr = fir(p.aLamp, p.epsLampBottom, p.epsFlr,
		p.tauIntLampFir*(1-piFrac)*canExt, x.tLamp, x.tFlr)
	a.rLampPipe = fir(p.aLamp, p.epsLampBottom, p.epsPipe,
		p.tauIntLampFir*piFrac*canExt, x.tLamp, x.tPipe)
	a.rFirLampCan = fir(p.aLamp, p.epsLampBottom, p.epsCan, a.aCan, x.tLamp, x.tCan)
	a.rLampThScr = fir(p.aLamp, p.epsLampTop, p.epsThScrFir,
		u.thScr*a.tauBlScrFirU, x.tLamp, x.tThScr)
	a.rLampCovIn = fir(p.aLamp, p.epsLampTop, a.epsCovFir,
		a.tauThScrFirU*a.tauBlScrFirU, x.tLamp, x.tCovIn)
	a.rLampSky = fir(p.aLamp, p.epsLampTop, p.epsSky,
		a.tauCovFir*a.tauThScrFirU*a.tauBlScrFirU, x.tLamp, d.tSky)
	a.rGroPipeCan = fir(p.aGroPipe, p.epsGroPipe, p.epsCan, 1, x.tGroPipe, x.tCan)
	a.rFlrBlScr = fir(1, p.epsFlr, p.epsBlScrFir,
		p.tauIntLampFir*p.tauLampFir*u.blScr*(1-piFrac)*canExt, x.tFlr, x.tBlScr)
	a.rPipeBlScr = fir(p.aPipe, p.epsPipe, p.epsBlScrFir,
		p.tauIntLampFir*p.tauLampFir*u.blScr*0.49*canExt, x.tPipe, x.tBlScr)
	a.rCanBlScr = fir(a.aCan, p.epsCan, p.epsBlScrFir,
		p.tauLampFir*u.blScr, x.tCan, x.tBlScr)
	a.rBlScrThScr = fir(u.blScr, p.epsBlScrFir, p.epsThScrFir, u.thScr, x.tBlScr, x.tThScr)
	a.rBlScrCovIn = fir(u.blScr, p.epsBlScrFir, a.epsCovFir, a.tauThScrFirU, x.tBlScr, x.tCovIn)
	a.rBlScrSky = fir(u.blScr, p.epsBlScrFir, p.epsSky,
		a.tauCovFir*a.tauThScrFirU, x.tBlScr, d.tSky)
	a.rLampBlScr = fir(p.aLamp, p.epsLampTop, p.epsBlScrFir, u.blScr, x.tLamp, x.tBlScr)
	a.fIntLampCanUp = 1 - math.Exp(-p.kIntFir*(1-p.vIntLampPos)*a.lai)
	a.fIntLampCanDown = 1 - math.Exp(-p.kIntFir*p.vIntLampPos*a.lai)
	a.rFirIntLampFlr = fir(p.aIntLamp, p.epsIntLamp, p.epsFlr,
		(1-piFrac)*(1-a.fIntLampCanDown), x.tIntLamp, x.tFlr)
	a.rIntLampPipe = fir(p.aIntLamp, p.epsIntLamp, p.epsPipe,
		piFrac*(1-a.fIntLampCanDown), x.tIntLamp, x.tPipe)
	a.rFirIntLampCan = fir(p.aIntLamp, p.epsIntLamp, p.epsCan,
		a.fIntLampCanDown+a.fIntLampCanUp, x.tIntLamp, x.tCan)
	a.rIntLampLamp = fir(p.aIntLamp, p.epsIntLamp, p.epsLampBottom,
		(1-a.fIntLampCanUp)*p.aLamp, x.tIntLamp, x.tLamp)
	a.rIntLampBlScr = fir(p.aIntLamp, p.epsIntLamp, p.epsBlScrFir,
		u.blScr*p.tauLampFir*(1-a.fIntLampCanUp), x.tIntLamp, x.tBlScr)
	a.rIntLampThScr = fir(p.aIntLamp, p.epsIntLamp, p.epsThScrFir,
		u.thScr*a.tauBlScrFirU*p.tauLampFir*(1-a.fIntLampCanUp), x.tIntLamp, x.tThScr)
	a.rIntLampCovIn = fir(p.aIntLamp, p.epsIntLamp, a.epsCovFir,
		a.tauThScrFirU*a.tauBlScrFirU*p.tauLampFir*(1-a.fIntLampCanUp), x.tIntLamp, x.tCovIn)
	a.rIntLampSky = fir(p.aIntLamp, p.epsIntLamp, p.epsSky,
		a.tauCovFir*a.tauThScrFirU*a.tauBlScrFirU*p.tauLampFir*(1-a.fIntLampCanUp),
		x.tIntLamp, d.tSky)

	// Natural ventilation.
	a.aRoofU = u.roof * p.aRoof
	a.aRoofUMax = p.aRoof
	a.aRoofMin = 0
	a.aSideU = u.side * p.aSide
	a.etaRoof = 1
	a.etaRoofNoSide = 1
	a.etaSide = 0
	a.cD = p.cDgh * (1 - p.etaShScrCd*u.shScr)
	a.cW = p.cWgh * (1 - p.etaShScrCw*u.shScr)
	stack := p.g * p.hVent * (x.tAir - d.tOut) /
		(2 * (0.5*x.tAir + 0.5*d.tOut + zeroC))
	a.fVentRoof2 = u.roof * p.aRoof * a.cD / (2 * p.aFlr) *
		math.Sqrt(math.Abs(stack+a.cW*d.wind*d.wind))
	a.fVentRoof2Max = p.aRoof * a.cD / (2 * p.aFlr) *
		math.Sqrt(math.Abs(stack+a.cW*d.wind*d.wind))
	a.fVentRoof2Min = 0
	a.fVentRoofSide2 = a.cD / p.aFlr * math.Sqrt(
		math.Pow(a.aRoofU*a.aSideU/math.Sqrt(math.Max(a.aRoofU*a.aRoofU+a.aSideU*a.aSideU, 0.01)), 2)*
			(2*p.g*p.hSideRoof*(x.tAir-d.tOut)/(0.5*x.tAir+0.5*d.tOut+zeroC))+
			math.Pow((a.aRoofU+a.aSideU)/2, 2)*a.cW*d.wind*d.wind)
	a.fVentSide2 = a.cD * a.aSideU * d.wind / (2 * p.aFlr) * math.Sqrt(a.cW)
	a.fLeakage = ifElse(b2f(d.wind < p.minWind),
		p.minWind*p.cLeakage, p.cLeakage*d.wind)
	scrMax := math.Max(u.thScr, u.blScr)
	a.fVentRoof = ifElse(b2f(a.etaRoof >= p.etaRoofThr),
		p.etaInsScr*a.fVentRoof2+p.cLeakTop*a.fLeakage,
		p.etaInsScr*(scrMax*a.fVentRoof2+(1-scrMax)*a.fVentRoofSide2*a.etaRoof)+
			p.cLeakTop*a.fLeakage)
	a.fVentSide = ifElse(b2f(a.etaRoof >= p.etaRoofThr),
		p.etaInsScr*a.fVentSide2+(1-p.cLeakTop)*a.fLeakage,
		p.etaInsScr*(scrMax*a.fVentSide2+(1-scrMax)*a.fVentRoofSide2*a.etaSide)+
			(1-p.cLeakTop)*a.fLeakage)

	// Control rule inputs.
	a.timeOfDay = 24 * (x.time - math.Floor(x.time))
	a.dayOfYear = math.Mod(x.time, 365.2425)
	a.lampTimeOfDay = b2f(p.lampsOn <= p.lampsOff && p.lampsOn < a.timeOfDay && a.timeOfDay < p.lampsOff) +
		b2f(p.lampsOn > p.lampsOff)*b2f(p.lampsOn < a.timeOfDay || a.timeOfDay < p.lampsOff)
	a.lampDayOfYear = b2f(p.dayLampStart <= p.dayLampStop && p.dayLampStart < a.dayOfYear && a.dayOfYear < p.dayLampStop) +
		b2f(p.dayLampStart > p.dayLampStop)*b2f(p.dayLampStart < a.dayOfYear || a.dayOfYear < p.dayLampStop)
	a.lampNoCons = b2f(d.iGlob < p.lampsOffSun) * b2f(d.dayRadSum < p.lampRadSumLimit) *
		a.lampTimeOfDay * a.lampDayOfYear
	a.linearLampSwitchOn = math.Max(0, math.Min(1, a.timeOfDay-p.lampsOn+1))
	a.linearLampSwitchOff = math.Max(0, math.Min(1, p.lampsOff-a.timeOfDay+1))
	a.linearLampBothSwitches = b2f(p.lampsOn != p.lampsOff) *
		(b2f(p.lampsOn < p.lampsOff)*math.Min(a.linearLampSwitchOn, a.linearLampSwitchOff) +
			(1-b2f(p.lampsOn < p.lampsOff))*math.Max(a.linearLampSwitchOn, a.linearLampSwitchOff))
	a.smoothLamp = a.linearLampBothSwitches * b2f(d.dayRadSum < p.lampRadSumLimit) * a.lampDayOfYear
	a.isDayInside = math.Max(a.smoothLamp, d.isDay)
	a.mechAllowed = 0
	a.hotBufAllowed = 0
	a.heatSetPoint = a.isDayInside*p.tSpDay + (1-a.isDayInside)*p.tSpNight +
		p.heatCorrection*a.lampNoCons
	a.heatMax = a.heatSetPoint + p.heatDeadZone
	a.co2SetPoint = a.isDayInside * p.co2SpDay
	a.co2InPpm = CO2Dens2Ppm(x.tAir, 1e-6*x.co2Air)
	a.ventHeat = proportionalControl(x.tAir, a.heatMax, p.ventHeatPband, 0, 1)
	if SatVp(x.tAir) == 0 {
		a.rhIn = 100
	} else {
		a.rhIn = 100 * x.vpAir / SatVp(x.tAir)
	}
	a.ventRh = proportionalControl(a.rhIn,
		p.rhMax+a.mechAllowed*p.mechDehumidPband, p.ventRhPband, 0, 1)
	a.ventCold = proportionalControl(x.tAir,
		a.heatSetPoint-p.tVentOff, p.ventColdPband, 1, 0)
	a.thScrSp = d.isDay*p.thScrSpDay + (1-d.isDay)*p.thScrSpNight
	a.thScrCold = proportionalControl(d.tOut, a.thScrSp, p.thScrPband, 0, 1)
	a.thScrHeat = proportionalControl(x.tAir,
		a.heatSetPoint+p.thScrDeadZone, -p.thScrPband, 1, 0)
	a.thScrRh = math.Max(
		proportionalControl(a.rhIn, p.rhMax+p.thScrRh, p.thScrRhPband, 1, 0),
		1-a.ventCold)
	// Lamps may run against the humidity bound at night unless the
	// cold lockout is active.
	nightAllowed := d.isDaySmooth + (1-d.isDaySmooth)*math.Max(
		proportionalControl(a.rhIn, p.rhMax+p.blScrExtraRh, -0.5, 0, 1),
		1-a.ventCold)
	heatAllowed := proportionalControl(x.tAir, a.heatMax+p.lampExtraHeat, -0.5, 0, 1)
	a.lampOn = a.lampNoCons * heatAllowed * nightAllowed
	a.intLampOn = a.lampNoCons * heatAllowed * nightAllowed

	// Convection, conduction and air exchange.
	a.rhoTop = p.mAir * p.pressure / ((x.tTop + zeroC) * p.r)
	a.rhoAir = p.mAir * p.pressure / ((x.tAir + zeroC) * p.r)
	a.rhoAirMean = 0.5 * (a.rhoTop + a.rhoAir)
	a.fThScr = u.thScr*p.kThScr*math.Pow(math.Abs(x.tAir-x.tTop), 0.66) +
		(1-u.thScr)/a.rhoAirMean*
			math.Sqrt(0.5*a.rhoAirMean*(1-u.thScr)*p.g*math.Abs(a.rhoAir-a.rhoTop))
	a.fBlScr = u.blScr*p.kBlScr*math.Pow(math.Abs(x.tAir-x.tTop), 0.66) +
		(1-u.blScr)/a.rhoAirMean*
			math.Sqrt(0.5*a.rhoAirMean*(1-u.blScr)*p.g*math.Abs(a.rhoAir-a.rhoTop))
	a.fScr = math.Min(a.fThScr, a.fBlScr)
	a.fVentForced = 0

	a.hCanAir = sensible(2*p.alfaLeafAir*a.lai, x.tCan, x.tAir)
	a.hAirFlr = sensible(
		ifElse(b2f(x.tFlr > x.tAir),
			1.7*nthroot(math.Abs(x.tFlr-x.tAir), 3),
			1.3*nthroot(math.Abs(x.tAir-x.tFlr), 4)),
		x.tAir, x.tFlr)
	a.hAirThScr = sensible(1.7*u.thScr*nthroot(math.Abs(x.tAir-x.tThScr), 3),
		x.tAir, x.tThScr)
	a.hAirBlScr = sensible(1.7*u.blScr*nthroot(math.Abs(x.tAir-x.tBlScr), 3),
		x.tAir, x.tBlScr)
	a.hAirOut = sensible(p.rhoAir*p.cPAir*(a.fVentSide+a.fVentForced), x.tAir, d.tOut)
	a.hAirTop = sensible(p.rhoAir*p.cPAir*a.fScr, x.tAir, x.tTop)
	a.hThScrTop = sensible(1.7*u.thScr*nthroot(math.Abs(x.tThScr-x.tTop), 3),
		x.tThScr, x.tTop)
	a.hBlScrTop = sensible(1.7*u.blScr*nthroot(math.Abs(x.tBlScr-x.tTop), 3),
		x.tBlScr, x.tTop)
	a.hTopCovIn = sensible(p.cHecIn*nthroot(math.Abs(x.tTop-x.tCovIn), 3)*p.aCov/p.aFlr,
		x.tTop, x.tCovIn)
	a.hTopOut = sensible(p.rhoAir*p.cPAir*a.fVentRoof, x.tTop, d.tOut)
	a.hCovEOut = sensible(
		p.aCov/p.aFlr*(p.cHecOut1+p.cHecOut2*math.Pow(d.wind, p.cHecOut3)),
		x.tCovE, d.tOut)
	a.hPipeAir = sensible(
		1.99*math.Pi*p.phiPipeE*p.lPipe*math.Pow(math.Abs(x.tPipe-x.tAir), 0.32),
		x.tPipe, x.tAir)
	a.hFlrSo1 = sensible(2/(p.hFlr/p.lambdaFlr+p.hSo1/p.lambdaSo), x.tFlr, x.tSo1)
	a.hSo1So2 = sensible(2*p.lambdaSo/(p.hSo1+p.hSo2), x.tSo1, x.tSo2)
	a.hSo2So3 = sensible(2*p.lambdaSo/(p.hSo2+p.hSo3), x.tSo2, x.tSo3)
	a.hSo3So4 = sensible(2*p.lambdaSo/(p.hSo3+p.hSo4), x.tSo3, x.tSo4)
	a.hSo4So5 = sensible(2*p.lambdaSo/(p.hSo4+p.hSo5), x.tSo4, x.tSo5)
	a.hSo5SoOut = sensible(2*p.lambdaSo/(p.hSo5+p.hSoOut), x.tSo5, d.tSoOut)
	a.hCovInCovE = sensible(
		1/(p.hRf/p.lambdaRf+u.shScrPer*p.hShScrPer/p.lambdaShScrPer),
		x.tCovIn, x.tCovE)
	a.hLampAir = sensible(p.cHecLampAir, x.tLamp, x.tAir)
	a.hGroPipeAir = sensible(
		1.99*math.Pi*p.phiGroPipeE*p.lGroPipe*math.Pow(math.Abs(x.tGroPipe-x.tAir), 0.32),
		x.tGroPipe, x.tAir)
	a.hIntLampAir = sensible(p.cHecIntLampAir, x.tIntLamp, x.tAir)

	// Canopy transpiration.
	a.sRs = 1 / (1 + math.Exp(p.sRsSlope*(a.rCan-p.rCanSp)))
	a.cEvap3 = p.cEvap3Night*(1-a.sRs) + p.cEvap3Day*a.sRs
	a.cEvap4 = p.cEvap4Night*(1-a.sRs) + p.cEvap4Day*a.sRs
	a.rfRCan = (a.rCan + p.cEvap1) / (a.rCan + p.cEvap2)
	a.rfCo2 = math.Min(1.5, 1+a.cEvap3*math.Pow(p.etaMgPpm*x.co2Air-200, 2))
	a.rfVp = math.Min(5.8, 1+a.cEvap4*math.Pow(SatVp(x.tCan)-x.vpAir, 2))
	a.rS = p.rSMin * a.rfRCan * a.rfCo2 * a.rfVp
	a.vecCanAir = 2 * p.rhoAir * p.cPAir * a.lai / (p.l * p.gamma * (p.rB + a.rS))
	a.mvCanAir = (SatVp(x.tCan) - x.vpAir) * a.vecCanAir

	// Vapor fluxes.
	a.mvPadAir = 0
	a.mvFogAir = 0
	a.mvBlowAir = 0
	a.mvAirOutPad = 0
	a.mvAirThScr = cond(1.7*u.thScr*nthroot(math.Abs(x.tAir-x.tThScr), 3),
		x.vpAir, SatVp(x.tThScr))
	a.mvAirBlScr = cond(1.7*u.blScr*nthroot(math.Abs(x.tAir-x.tBlScr), 3),
		x.vpAir, SatVp(x.tBlScr))
	a.mvTopCovIn = cond(p.cHecIn*nthroot(math.Abs(x.tTop-x.tCovIn), 3)*p.aCov/p.aFlr,
		x.vpTop, SatVp(x.tCovIn))
	a.mvAirTop = airMv(a.fScr, x.vpAir, x.vpTop, x.tAir, x.tTop)
	a.mvTopOut = airMv(a.fVentRoof, x.vpTop, d.vpOut, x.tTop, d.tOut)
	a.mvAirOut = airMv(a.fVentSide+a.fVentForced, x.vpAir, d.vpOut, x.tAir, d.tOut)

	// Latent heat.
	a.lCanAir = p.l * a.mvCanAir
	a.lAirThScr = p.l * a.mvAirThScr
	a.lAirBlScr = p.l * a.mvAirBlScr
	a.lTopCovIn = p.l * a.mvTopCovIn

	// Photosynthesis.
	a.parCan = p.zetaLampPar*a.rParLampCan + p.parJtoUmolSun*a.rParSunCan +
		p.zetaIntLampPar*a.rParIntLampCan
	a.j25CanMax = a.lai * p.j25LeafMax
	a.gamma = p.j25LeafMax/a.j25CanMax*p.cGamma*x.tCan +
		20*p.cGamma*(1-p.j25LeafMax/a.j25CanMax)
	a.co2Stom = p.etaCo2AirStom * a.co2InPpm
	tCanK := x.tCan + zeroC
	a.jPot = a.j25CanMax * math.Exp(p.eJ*(tCanK-p.t25k)/(1e-3*p.r*tCanK*p.t25k)) *
		(1 + math.Exp((p.s*p.t25k-p.h)/(1e-3*p.r*p.t25k))) /
		(1 + math.Exp((p.s*tCanK-p.h)/(1e-3*p.r*tCanK)))
	a.j = (a.jPot + p.alpha*a.parCan -
		math.Sqrt(math.Pow(a.jPot+p.alpha*a.parCan, 2)-
			4*p.theta*a.jPot*p.alpha*a.parCan)) / (2 * p.theta)
	a.p = a.j * (a.co2Stom - a.gamma) / (4 * (a.co2Stom + 2*a.gamma))
	a.r = a.p * a.gamma / a.co2Stom
	a.hAirBuf = 1 / (1 + math.Exp(5e-4*(x.cBuf-p.cBufMax)))
	a.mcAirBuf = p.mCh2o * a.hAirBuf * (a.p - a.r)

	// Carbohydrate buffer flows.
	a.gTCan24 = 0.047*x.tCan24 + 0.06
	a.hTCan24 = 1 / (1 + math.Exp(-1.1587*(x.tCan24-p.tCan24Min))) *
		1 / (1 + math.Exp(1.3904*(x.tCan24-p.tCan24Max)))
	a.hTCan = 1 / (1 + math.Exp(-0.869*(x.tCan-p.tCanMin))) *
		1 / (1 + math.Exp(0.5793*(x.tCan-p.tCanMax)))
	a.hTCanSum = 0.5*(x.tCanSum/p.tEndSum+
		math.Sqrt(math.Pow(x.tCanSum/p.tEndSum, 2)+1e-4)) -
		0.5*((x.tCanSum-p.tEndSum)/p.tEndSum+
			math.Sqrt(math.Pow((x.tCanSum-p.tEndSum)/p.tEndSum, 2)+1e-4))
	a.hBufOrg = 1 / (1 + math.Exp(-5e-3*(x.cBuf-p.cBufMin)))
	a.mcBufLeaf = a.hBufOrg * a.hTCan24 * a.gTCan24 * p.rgLeaf
	a.mcBufStem = a.hBufOrg * a.hTCan24 * a.gTCan24 * p.rgStem
	a.mcBufFruit = a.hBufOrg * a.hTCan * a.hTCan24 * a.hTCanSum * a.gTCan24 * p.rgFruit

	// Growth and maintenance respiration.
	a.mcBufAir = p.cLeafG*a.mcBufLeaf + p.cStemG*a.mcBufStem + p.cFruitG*a.mcBufFruit
	q10 := math.Pow(p.q10m, 0.1*(x.tCan24-25))
	growthFrac := 1 - math.Exp(-p.cRgr*p.rgr)
	a.mcLeafAir = growthFrac * q10 * x.cLeaf * p.cLeafM
	a.mcStemAir = growthFrac * q10 * x.cStem * p.cStemM
	a.mcFruitAir = growthFrac * q10 * x.cFruit * p.cFruitM
	a.mcOrgAir = a.mcLeafAir + a.mcStemAir + a.mcFruitAir

	// Leaf pruning and fruit harvest.
	a.mcLeafHar = smoothHar(x.cLeaf, p.cLeafMax, 1e4, 5e4)
	a.mcFruitHar = smoothHar(x.cFruit, p.cFruitMax, 1e4, 5e4)

	// CO2 fluxes.
	a.mcAirCan = p.mCo2 / p.mCh2o * (a.mcAirBuf - a.mcBufAir - a.mcOrgAir)
	a.mcAirTop = airMc(a.fScr, x.co2Air, x.co2Top)
	a.mcTopOut = airMc(a.fVentRoof, x.co2Top, d.co2Out)
	a.mcAirOut = airMc(a.fVentSide+a.fVentForced, x.co2Air, d.co2Out)

	// Actuator fluxes.
	a.hBoilPipe = u.boil * p.pBoil / p.aFlr
	a.hBoilGroPipe = u.boilGro * p.pBoilGro / p.aFlr
	a.mcExtAir = u.extCo2 * p.phiExtCo2 / p.aFlr

	// Equipment not present in this configuration.
	a.mcBlowAir = 0
	a.mcPadAir = 0
	a.hPadAir = 0
	a.hPasAir = 0
	a.hBlowAir = 0
	a.hAirPadOut = 0
	a.hAirOutPad = 0
	a.lAirFog = 0
	a.hIndPipe = 0
	a.hGeoPipe = 0
	a.hLampCool = p.etaLampCool * a.qLampIn
	a.hecMechAir = 0
	a.hAirMech = 0
	a.mvAirMech = 0
	a.lAirMech = 0
	a.hBufHotPipe = 0
}
