package greensim

// Aux holds the auxiliary quantities of the model, one field per
// quantity, grouped in evaluation order. They are recomputed from the
// state, disturbances and controls on every right-hand-side call and
// reconstructed per output row by the resampler.
type Aux struct {

	// optics
	tauShScrPar           float64
	tauShScrPerPar        float64
	rhoShScrPar           float64
	rhoShScrPerPar        float64
	tauShScrShScrPerPar   float64
	rhoShScrShScrPerParUp float64
	rhoShScrShScrPerParDn float64
	tauShScrNir           float64
	tauShScrPerNir        float64
	rhoShScrNir           float64
	rhoShScrPerNir        float64
	tauShScrShScrPerNir   float64
	rhoShScrShScrPerNirUp float64
	rhoShScrShScrPerNirDn float64
	tauShScrFir           float64
	tauShScrPerFir        float64
	rhoShScrFir           float64
	rhoShScrPerFir        float64
	tauShScrShScrPerFir   float64
	rhoShScrShScrPerFirUp float64
	rhoShScrShScrPerFirDn float64
	tauThScrPar           float64
	rhoThScrPar           float64
	tauCovThScrPar        float64
	rhoCovThScrParUp      float64
	rhoCovThScrParDn      float64
	tauThScrNir           float64
	rhoThScrNir           float64
	tauCovThScrNir        float64
	rhoCovThScrNirUp      float64
	rhoCovThScrNirDn      float64
	tauCovParOld          float64
	rhoCovParOldUp        float64
	rhoCovParOldDn        float64
	tauCovNirOld          float64
	rhoCovNirOldUp        float64
	rhoCovNirOldDn        float64
	tauBlScrPar           float64
	rhoBlScrPar           float64
	tauCovBlScrPar        float64
	rhoCovBlScrParUp      float64
	rhoCovBlScrParDn      float64
	tauBlScrNir           float64
	rhoBlScrNir           float64
	tauCovBlScrNir        float64
	rhoCovBlScrNirUp      float64
	rhoCovBlScrNirDn      float64
	tauCovPar             float64
	rhoCovPar             float64
	tauCovNir             float64
	rhoCovNir             float64
	tauCovFir             float64
	rhoCovFir             float64
	aCovPar               float64
	aCovNir               float64
	aCovFir               float64
	epsCovFir             float64
	capCov                float64

	// capacities
	lai      float64
	capCan   float64
	capCovE  float64
	capCovIn float64
	capVpAir float64
	capVpTop float64

	// radiation
	qLampIn             float64
	qIntLampIn          float64
	rParGhSun           float64
	rParGhLamp          float64
	rParGhIntLamp       float64
	rCanSun             float64
	rCanLamp            float64
	rCanIntLamp         float64
	rCan                float64
	rParSunCanDown      float64
	rParLampCanDown     float64
	fIntLampCanPar      float64
	fIntLampCanNir      float64
	rParIntLampCanDown  float64
	rParSunFlrCanUp     float64
	rParLampFlrCanUp    float64
	rParIntLampFlrCanUp float64
	rParSunCan          float64
	rParLampCan         float64
	rParIntLampCan      float64
	tauHatCovNir        float64
	tauHatFlrNir        float64
	tauHatCanNir        float64
	rhoHatCanNir        float64
	tauCovCanNir        float64
	rhoCovCanNirUp      float64
	rhoCovCanNirDn      float64
	tauCovCanFlrNir     float64
	rhoCovCanFlrNir     float64
	aCanNir             float64
	aFlrNir             float64
	rNirSunCan          float64
	rNirLampCan         float64
	rNirIntLampCan      float64
	rNirSunFlr          float64
	rNirLampFlr         float64
	rNirIntLampFlr      float64
	rParSunFlr          float64
	rParLampFlr         float64
	rParIntLampFlr      float64
	rLampAir            float64
	rIntLampAir         float64
	rGlobSunAir         float64
	rGlobSunCovE        float64

	// fir
	tauThScrFirU    float64
	tauBlScrFirU    float64
	aCan            float64
	rCanCovIn       float64
	rCanSky         float64
	rCanThScr       float64
	rCanFlr         float64
	rPipeCovIn      float64
	rPipeSky        float64
	rPipeThScr      float64
	rPipeFlr        float64
	rPipeCan        float64
	rFlrCovIn       float64
	rFlrSky         float64
	rFlrThScr       float64
	rThScrCovIn     float64
	rThScrSky       float64
	rCovESky        float64
	rFirLampFlr     float64
	rLampPipe       float64
	rFirLampCan     float64
	rLampThScr      float64
	rLampCovIn      float64
	rLampSky        float64
	rGroPipeCan     float64
	rFlrBlScr       float64
	rPipeBlScr      float64
	rCanBlScr       float64
	rBlScrThScr     float64
	rBlScrCovIn     float64
	rBlScrSky       float64
	rLampBlScr      float64
	fIntLampCanUp   float64
	fIntLampCanDown float64
	rFirIntLampFlr  float64
	rIntLampPipe    float64
	rFirIntLampCan  float64
	rIntLampLamp    float64
	rIntLampBlScr   float64
	rIntLampThScr   float64
	rIntLampCovIn   float64
	rIntLampSky     float64

	// ventilation
	aRoofU         float64
	aRoofUMax      float64
	aRoofMin       float64
	aSideU         float64
	etaRoof        float64
	etaRoofNoSide  float64
	etaSide        float64
	cD             float64
	cW             float64
	fVentRoof2     float64
	fVentRoof2Max  float64
	fVentRoof2Min  float64
	fVentRoofSide2 float64
	fVentSide2     float64
	fLeakage       float64
	fVentRoof      float64
	fVentSide      float64

	// control rule inputs
	timeOfDay              float64
	dayOfYear              float64
	lampTimeOfDay          float64
	lampDayOfYear          float64
	lampNoCons             float64
	linearLampSwitchOn     float64
	linearLampSwitchOff    float64
	linearLampBothSwitches float64
	smoothLamp             float64
	isDayInside            float64
	mechAllowed            float64
	hotBufAllowed          float64
	heatSetPoint           float64
	heatMax                float64
	co2SetPoint            float64
	co2InPpm               float64
	ventHeat               float64
	rhIn                   float64
	ventRh                 float64
	ventCold               float64
	thScrSp                float64
	thScrCold              float64
	thScrHeat              float64
	thScrRh                float64
	lampOn                 float64
	intLampOn              float64

	// convection and conduction
	rhoTop      float64
	rhoAir      float64
	rhoAirMean  float64
	fThScr      float64
	fBlScr      float64
	fScr        float64
	fVentForced float64
	hCanAir     float64
	hAirFlr     float64
	hAirThScr   float64
	hAirBlScr   float64
	hAirOut     float64
	hAirTop     float64
	hThScrTop   float64
	hBlScrTop   float64
	hTopCovIn   float64
	hTopOut     float64
	hCovEOut    float64
	hPipeAir    float64
	hFlrSo1     float64
	hSo1So2     float64
	hSo2So3     float64
	hSo3So4     float64
	hSo4So5     float64
	hSo5SoOut   float64
	hCovInCovE  float64
	hLampAir    float64
	hGroPipeAir float64
	hIntLampAir float64

	// transpiration
	sRs       float64
	cEvap3    float64
	cEvap4    float64
	rfRCan    float64
	rfCo2     float64
	rfVp      float64
	rS        float64
	vecCanAir float64
	mvCanAir  float64

	// vapor fluxes
	mvPadAir    float64
	mvFogAir    float64
	mvBlowAir   float64
	mvAirOutPad float64
	mvAirThScr  float64
	mvAirBlScr  float64
	mvTopCovIn  float64
	mvAirTop    float64
	mvTopOut    float64
	mvAirOut    float64

	// latent heat
	lCanAir   float64
	lAirThScr float64
	lAirBlScr float64
	lTopCovIn float64

	// photosynthesis
	parCan    float64
	j25CanMax float64
	gamma     float64
	co2Stom   float64
	jPot      float64
	j         float64
	p         float64
	r         float64
	hAirBuf   float64
	mcAirBuf  float64

	// carbohydrate buffer
	gTCan24    float64
	hTCan24    float64
	hTCan      float64
	hTCanSum   float64
	hBufOrg    float64
	mcBufLeaf  float64
	mcBufStem  float64
	mcBufFruit float64
	mcBufAir   float64
	mcLeafAir  float64
	mcStemAir  float64
	mcFruitAir float64
	mcOrgAir   float64
	mcLeafHar  float64
	mcFruitHar float64

	// co2 fluxes
	mcAirCan float64
	mcAirTop float64
	mcTopOut float64
	mcAirOut float64

	// actuators
	hBoilPipe    float64
	hBoilGroPipe float64
	mcExtAir     float64

	// not modelled
	mcBlowAir   float64
	mcPadAir    float64
	hPadAir     float64
	hPasAir     float64
	hBlowAir    float64
	hAirPadOut  float64
	hAirOutPad  float64
	lAirFog     float64
	hIndPipe    float64
	hGeoPipe    float64
	hLampCool   float64
	hecMechAir  float64
	hAirMech    float64
	mvAirMech   float64
	lAirMech    float64
	hBufHotPipe float64

	// prescribed pipe branches
	tPipeOn     float64
	tPipeOff    float64
	tGroPipeOn  float64
	tGroPipeOff float64
}

// auxChannels lists the auxiliary quantities in struct order; it is
// the channel layout of the auxiliary output series.
var auxChannels = []string{
	"tauShScrPar",
	"tauShScrPerPar",
	"rhoShScrPar",
	"rhoShScrPerPar",
	"tauShScrShScrPerPar",
	"rhoShScrShScrPerParUp",
	"rhoShScrShScrPerParDn",
	"tauShScrNir",
	"tauShScrPerNir",
	"rhoShScrNir",
	"rhoShScrPerNir",
	"tauShScrShScrPerNir",
	"rhoShScrShScrPerNirUp",
	"rhoShScrShScrPerNirDn",
	"tauShScrFir",
	"tauShScrPerFir",
	"rhoShScrFir",
	"rhoShScrPerFir",
	"tauShScrShScrPerFir",
	"rhoShScrShScrPerFirUp",
	"rhoShScrShScrPerFirDn",
	"tauThScrPar",
	"rhoThScrPar",
	"tauCovThScrPar",
	"rhoCovThScrParUp",
	"rhoCovThScrParDn",
	"tauThScrNir",
	"rhoThScrNir",
	"tauCovThScrNir",
	"rhoCovThScrNirUp",
	"rhoCovThScrNirDn",
	"tauCovParOld",
	"rhoCovParOldUp",
	"rhoCovParOldDn",
	"tauCovNirOld",
	"rhoCovNirOldUp",
	"rhoCovNirOldDn",
	"tauBlScrPar",
	"rhoBlScrPar",
	"tauCovBlScrPar",
	"rhoCovBlScrParUp",
	"rhoCovBlScrParDn",
	"tauBlScrNir",
	"rhoBlScrNir",
	"tauCovBlScrNir",
	"rhoCovBlScrNirUp",
	"rhoCovBlScrNirDn",
	"tauCovPar",
	"rhoCovPar",
	"tauCovNir",
	"rhoCovNir",
	"tauCovFir",
	"rhoCovFir",
	"aCovPar",
	"aCovNir",
	"aCovFir",
	"epsCovFir",
	"capCov",
	"lai",
	"capCan",
	"capCovE",
	"capCovIn",
	"capVpAir",
	"capVpTop",
	"qLampIn",
	"qIntLampIn",
	"rParGhSun",
	"rParGhLamp",
	"rParGhIntLamp",
	"rCanSun",
	"rCanLamp",
	"rCanIntLamp",
	"rCan",
	"rParSunCanDown",
	"rParLampCanDown",
	"fIntLampCanPar",
	"fIntLampCanNir",
	"rParIntLampCanDown",
	"rParSunFlrCanUp",
	"rParLampFlrCanUp",
	"rParIntLampFlrCanUp",
	"rParSunCan",
	"rParLampCan",
	"rParIntLampCan",
	"tauHatCovNir",
	"tauHatFlrNir",
	"tauHatCanNir",
	"rhoHatCanNir",
	"tauCovCanNir",
	"rhoCovCanNirUp",
	"rhoCovCanNirDn",
	"tauCovCanFlrNir",
	"rhoCovCanFlrNir",
	"aCanNir",
	"aFlrNir",
	"rNirSunCan",
	"rNirLampCan",
	"rNirIntLampCan",
	"rNirSunFlr",
	"rNirLampFlr",
	"rNirIntLampFlr",
	"rParSunFlr",
	"rParLampFlr",
	"rParIntLampFlr",
	"rLampAir",
	"rIntLampAir",
	"rGlobSunAir",
	"rGlobSunCovE",
	"tauThScrFirU",
	"tauBlScrFirU",
	"aCan",
	"rCanCovIn",
	"rCanSky",
	"rCanThScr",
	"rCanFlr",
	"rPipeCovIn",
	"rPipeSky",
	"rPipeThScr",
	"rPipeFlr",
	"rPipeCan",
	"rFlrCovIn",
	"rFlrSky",
	"rFlrThScr",
	"rThScrCovIn",
	"rThScrSky",
	"rCovESky",
	"rFirLampFlr",
	"rLampPipe",
	"rFirLampCan",
	"rLampThScr",
	"rLampCovIn",
	"rLampSky",
	"rGroPipeCan",
	"rFlrBlScr",
	"rPipeBlScr",
	"rCanBlScr",
	"rBlScrThScr",
	"rBlScrCovIn",
	"rBlScrSky",
	"rLampBlScr",
	"fIntLampCanUp",
	"fIntLampCanDown",
	"rFirIntLampFlr",
	"rIntLampPipe",
	"rFirIntLampCan",
	"rIntLampLamp",
	"rIntLampBlScr",
	"rIntLampThScr",
	"rIntLampCovIn",
	"rIntLampSky",
	"aRoofU",
	"aRoofUMax",
	"aRoofMin",
	"aSideU",
	"etaRoof",
	"etaRoofNoSide",
	"etaSide",
	"cD",
	"cW",
	"fVentRoof2",
	"fVentRoof2Max",
	"fVentRoof2Min",
	"fVentRoofSide2",
	"fVentSide2",
	"fLeakage",
	"fVentRoof",
	"fVentSide",
	"timeOfDay",
	"dayOfYear",
	"lampTimeOfDay",
	"lampDayOfYear",
	"lampNoCons",
	"linearLampSwitchOn",
	"linearLampSwitchOff",
	"linearLampBothSwitches",
	"smoothLamp",
	"isDayInside",
	"mechAllowed",
	"hotBufAllowed",
	"heatSetPoint",
	"heatMax",
	"co2SetPoint",
	"co2InPpm",
	"ventHeat",
	"rhIn",
	"ventRh",
	"ventCold",
	"thScrSp",
	"thScrCold",
	"thScrHeat",
	"thScrRh",
	"lampOn",
	"intLampOn",
	"rhoTop",
	"rhoAir",
	"rhoAirMean",
	"fThScr",
	"fBlScr",
	"fScr",
	"fVentForced",
	"hCanAir",
	"hAirFlr",
	"hAirThScr",
	"hAirBlScr",
	"hAirOut",
	"hAirTop",
	"hThScrTop",
	"hBlScrTop",
	"hTopCovIn",
	"hTopOut",
	"hCovEOut",
	"hPipeAir",
	"hFlrSo1",
	"hSo1So2",
	"hSo2So3",
	"hSo3So4",
	"hSo4So5",
	"hSo5SoOut",
	"hCovInCovE",
	"hLampAir",
	"hGroPipeAir",
	"hIntLampAir",
	"sRs",
	"cEvap3",
	"cEvap4",
	"rfRCan",
	"rfCo2",
	"rfVp",
	"rS",
	"vecCanAir",
	"mvCanAir",
	"mvPadAir",
	"mvFogAir",
	"mvBlowAir",
	"mvAirOutPad",
	"mvAirThScr",
	"mvAirBlScr",
	"mvTopCovIn",
	"mvAirTop",
	"mvTopOut",
	"mvAirOut",
	"lCanAir",
	"lAirThScr",
	"lAirBlScr",
	"lTopCovIn",
	"parCan",
	"j25CanMax",
	"gamma",
	"co2Stom",
	"jPot",
	"j",
	"p",
	"r",
	"hAirBuf",
	"mcAirBuf",
	"gTCan24",
	"hTCan24",
	"hTCan",
	"hTCanSum",
	"hBufOrg",
	"mcBufLeaf",
	"mcBufStem",
	"mcBufFruit",
	"mcBufAir",
	"mcLeafAir",
	"mcStemAir",
	"mcFruitAir",
	"mcOrgAir",
	"mcLeafHar",
	"mcFruitHar",
	"mcAirCan",
	"mcAirTop",
	"mcTopOut",
	"mcAirOut",
	"hBoilPipe",
	"hBoilGroPipe",
	"mcExtAir",
	"mcBlowAir",
	"mcPadAir",
	"hPadAir",
	"hPasAir",
	"hBlowAir",
	"hAirPadOut",
	"hAirOutPad",
	"lAirFog",
	"hIndPipe",
	"hGeoPipe",
	"hLampCool",
	"hecMechAir",
	"hAirMech",
	"mvAirMech",
	"lAirMech",
	"hBufHotPipe",
	"tPipeOn",
	"tPipeOff",
	"tGroPipeOn",
	"tGroPipeOff",
}

// row returns the auxiliary quantities in auxChannels order.
func (a *Aux) row() []float64 {
	return []float64{
		a.tauShScrPar,
		a.tauShScrPerPar,
		a.rhoShScrPar,
		a.rhoShScrPerPar,
		a.tauShScrShScrPerPar,
		a.rhoShScrShScrPerParUp,
		a.rhoShScrShScrPerParDn,
		a.tauShScrNir,
		a.tauShScrPerNir,
		a.rhoShScrNir,
		a.rhoShScrPerNir,
		a.tauShScrShScrPerNir,
		a.rhoShScrShScrPerNirUp,
		a.rhoShScrShScrPerNirDn,
		a.tauShScrFir,
		a.tauShScrPerFir,
		a.rhoShScrFir,
		a.rhoShScrPerFir,
		a.tauShScrShScrPerFir,
		a.rhoShScrShScrPerFirUp,
		a.rhoShScrShScrPerFirDn,
		a.tauThScrPar,
		a.rhoThScrPar,
		a.tauCovThScrPar,
		a.rhoCovThScrParUp,
		a.rhoCovThScrParDn,
		a.tauThScrNir,
		a.rhoThScrNir,
		a.tauCovThScrNir,
		a.rhoCovThScrNirUp,
		a.rhoCovThScrNirDn,
		a.tauCovParOld,
		a.rhoCovParOldUp,
		a.rhoCovParOldDn,
		a.tauCovNirOld,
		a.rhoCovNirOldUp,
		a.rhoCovNirOldDn,
		a.tauBlScrPar,
		a.rhoBlScrPar,
		a.tauCovBlScrPar,
		a.rhoCovBlScrParUp,
		a.rhoCovBlScrParDn,
		a.tauBlScrNir,
		a.rhoBlScrNir,
		a.tauCovBlScrNir,
		a.rhoCovBlScrNirUp,
		a.rhoCovBlScrNirDn,
		a.tauCovPar,
		a.rhoCovPar,
		a.tauCovNir,
		a.rhoCovNir,
		a.tauCovFir,
		a.rhoCovFir,
		a.aCovPar,
		a.aCovNir,
		a.aCovFir,
		a.epsCovFir,
		a.capCov,
		a.lai,
		a.capCan,
		a.capCovE,
		a.capCovIn,
		a.capVpAir,
		a.capVpTop,
		a.qLampIn,
		a.qIntLampIn,
		a.rParGhSun,
		a.rParGhLamp,
		a.rParGhIntLamp,
		a.rCanSun,
		a.rCanLamp,
		a.rCanIntLamp,
		a.rCan,
		a.rParSunCanDown,
		a.rParLampCanDown,
		a.fIntLampCanPar,
		a.fIntLampCanNir,
		a.rParIntLampCanDown,
		a.rParSunFlrCanUp,
		a.rParLampFlrCanUp,
		a.rParIntLampFlrCanUp,
		a.rParSunCan,
		a.rParLampCan,
		a.rParIntLampCan,
		a.tauHatCovNir,
		a.tauHatFlrNir,
		a.tauHatCanNir,
		a.rhoHatCanNir,
		a.tauCovCanNir,
		a.rhoCovCanNirUp,
		a.rhoCovCanNirDn,
		a.tauCovCanFlrNir,
		a.rhoCovCanFlrNir,
		a.aCanNir,
		a.aFlrNir,
		a.rNirSunCan,
		a.rNirLampCan,
		a.rNirIntLampCan,
		a.rNirSunFlr,
		a.rNirLampFlr,
		a.rNirIntLampFlr,
		a.rParSunFlr,
		a.rParLampFlr,
		a.rParIntLampFlr,
		a.rLampAir,
		a.rIntLampAir,
		a.rGlobSunAir,
		a.rGlobSunCovE,
		a.tauThScrFirU,
		a.tauBlScrFirU,
		a.aCan,
		a.rCanCovIn,
		a.rCanSky,
		a.rCanThScr,
		a.rCanFlr,
		a.rPipeCovIn,
		a.rPipeSky,
		a.rPipeThScr,
		a.rPipeFlr,
		a.rPipeCan,
		a.rFlrCovIn,
		a.rFlrSky,
		a.rFlrThScr,
		a.rThScrCovIn,
		a.rThScrSky,
		a.rCovESky,
		a.rFirLampFlr,
		a.rLampPipe,
		a.rFirLampCan,
		a.rLampThScr,
		a.rLampCovIn,
		a.rLampSky,
		a.rGroPipeCan,
		a.rFlrBlScr,
		a.rPipeBlScr,
		a.rCanBlScr,
		a.rBlScrThScr,
		a.rBlScrCovIn,
		a.rBlScrSky,
		a.rLampBlScr,
		a.fIntLampCanUp,
		a.fIntLampCanDown,
		a.rFirIntLampFlr,
		a.rIntLampPipe,
		a.rFirIntLampCan,
		a.rIntLampLamp,
		a.rIntLampBlScr,
		a.rIntLampThScr,
		a.rIntLampCovIn,
		a.rIntLampSky,
		a.aRoofU,
		a.aRoofUMax,
		a.aRoofMin,
		a.aSideU,
		a.etaRoof,
		a.etaRoofNoSide,
		a.etaSide,
		a.cD,
		a.cW,
		a.fVentRoof2,
		a.fVentRoof2Max,
		a.fVentRoof2Min,
		a.fVentRoofSide2,
		a.fVentSide2,
		a.fLeakage,
		a.fVentRoof,
		a.fVentSide,
		a.timeOfDay,
		a.dayOfYear,
		a.lampTimeOfDay,
		a.lampDayOfYear,
		a.lampNoCons,
		a.linearLampSwitchOn,
		a.linearLampSwitchOff,
		a.linearLampBothSwitches,
		a.smoothLamp,
		a.isDayInside,
		a.mechAllowed,
		a.hotBufAllowed,
		a.heatSetPoint,
		a.heatMax,
		a.co2SetPoint,
		a.co2InPpm,
		a.ventHeat,
		a.rhIn,
		a.ventRh,
		a.ventCold,
		a.thScrSp,
		a.thScrCold,
		a.thScrHeat,
		a.thScrRh,
		a.lampOn,
		a.intLampOn,
		a.rhoTop,
		a.rhoAir,
		a.rhoAirMean,
		a.fThScr,
		a.fBlScr,
		a.fScr,
		a.fVentForced,
		a.hCanAir,
		a.hAirFlr,
		a.hAirThScr,
		a.hAirBlScr,
		a.hAirOut,
		a.hAirTop,
		a.hThScrTop,
		a.hBlScrTop,
		a.hTopCovIn,
		a.hTopOut,
		a.hCovEOut,
		a.hPipeAir,
		a.hFlrSo1,
		a.hSo1So2,
		a.hSo2So3,
		a.hSo3So4,
		a.hSo4So5,
		a.hSo5SoOut,
		a.hCovInCovE,
		a.hLampAir,
		a.hGroPipeAir,
		a.hIntLampAir,
		a.sRs,
		a.cEvap3,
		a.cEvap4,
		a.rfRCan,
		a.rfCo2,
		a.rfVp,
		a.rS,
		a.vecCanAir,
		a.mvCanAir,
		a.mvPadAir,
		a.mvFogAir,
		a.mvBlowAir,
		a.mvAirOutPad,
		a.mvAirThScr,
		a.mvAirBlScr,
		a.mvTopCovIn,
		a.mvAirTop,
		a.mvTopOut,
		a.mvAirOut,
		a.lCanAir,
		a.lAirThScr,
		a.lAirBlScr,
		a.lTopCovIn,
		a.parCan,
		a.j25CanMax,
		a.gamma,
		a.co2Stom,
		a.jPot,
		a.j,
		a.p,
		a.r,
		a.hAirBuf,
		a.mcAirBuf,
		a.gTCan24,
		a.hTCan24,
		a.hTCan,
		a.hTCanSum,
		a.hBufOrg,
		a.mcBufLeaf,
		a.mcBufStem,
		a.mcBufFruit,
		a.mcBufAir,
		a.mcLeafAir,
		a.mcStemAir,
		a.mcFruitAir,
		a.mcOrgAir,
		a.mcLeafHar,
		a.mcFruitHar,
		a.mcAirCan,
		a.mcAirTop,
		a.mcTopOut,
		a.mcAirOut,
		a.hBoilPipe,
		a.hBoilGroPipe,
		a.mcExtAir,
		a.mcBlowAir,
		a.mcPadAir,
		a.hPadAir,
		a.hPasAir,
		a.hBlowAir,
		a.hAirPadOut,
		a.hAirOutPad,
		a.lAirFog,
		a.hIndPipe,
		a.hGeoPipe,
		a.hLampCool,
		a.hecMechAir,
		a.hAirMech,
		a.mvAirMech,
		a.lAirMech,
		a.hBufHotPipe,
		a.tPipeOn,
		a.tPipeOff,
		a.tGroPipeOn,
		a.tGroPipeOff,
	}
}
