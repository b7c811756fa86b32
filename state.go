package greensim

// stateDim is the size of the packed state vector.
const stateDim = 28

// State holds the model state. The packing order of Vector and
// SetVector is fixed and must not change: the solver, the guard
// snapshot and the output series all rely on it.
type State struct {
	co2Air   float64 // CO2 concentration of the main compartment, mg m^-3
	co2Top   float64 // CO2 concentration of the top compartment, mg m^-3
	tAir     float64 // air temperature of the main compartment, °C
	tTop     float64 // air temperature of the top compartment, °C
	tCan     float64 // canopy temperature, °C
	tCovIn   float64 // indoor cover temperature, °C
	tThScr   float64 // thermal screen temperature, °C
	tFlr     float64 // floor temperature, °C
	tPipe    float64 // pipe temperature, °C
	tCovE    float64 // external cover temperature, °C
	tSo1     float64 // soil layer 1 temperature, °C
	tSo2     float64 // soil layer 2 temperature, °C
	tSo3     float64 // soil layer 3 temperature, °C
	tSo4     float64 // soil layer 4 temperature, °C
	tSo5     float64 // soil layer 5 temperature, °C
	vpAir    float64 // vapor pressure of the main compartment, Pa
	vpTop    float64 // vapor pressure of the top compartment, Pa
	tCan24   float64 // mean canopy temperature of the last 24 hours, °C
	time     float64 // simulation clock, days since 0-0-0000 (datenum)
	tLamp    float64 // lamp temperature, °C
	tGroPipe float64 // grow pipe temperature, °C
	tIntLamp float64 // interlight temperature, °C
	tBlScr   float64 // blackout screen temperature, °C
	cBuf     float64 // carbohydrates in the buffer, mg CH2O m^-2
	cLeaf    float64 // carbohydrates in the leaves, mg CH2O m^-2
	cStem    float64 // carbohydrates in stems and roots, mg CH2O m^-2
	cFruit   float64 // carbohydrates in the fruit, mg CH2O m^-2
	tCanSum  float64 // crop development stage, °C day
}

// stateChannels lists the packed components in vector order.
var stateChannels = []string{
	"co2Air", "co2Top", "tAir", "tTop", "tCan", "tCovIn", "tThScr",
	"tFlr", "tPipe", "tCovE", "tSo1", "tSo2", "tSo3", "tSo4", "tSo5",
	"vpAir", "vpTop", "tCan24", "time", "tLamp", "tGroPipe",
	"tIntLamp", "tBlScr", "cBuf", "cLeaf", "cStem", "cFruit", "tCanSum",
}

// Vector appends the packed state to dst, which must have length stateDim.
func (x *State) Vector(dst []float64) {
	dst[0] = x.co2Air
	dst[1] = x.co2Top
	dst[2] = x.tAir
	dst[3] = x.tTop
	dst[4] = x.tCan
	dst[5] = x.tCovIn
	dst[6] = x.tThScr
	dst[7] = x.tFlr
	dst[8] = x.tPipe
	dst[9] = x.tCovE
	dst[10] = x.tSo1
	dst[11] = x.tSo2
	dst[12] = x.tSo3
	dst[13] = x.tSo4
	dst[14] = x.tSo5
	dst[15] = x.vpAir
	dst[16] = x.vpTop
	dst[17] = x.tCan24
	dst[18] = x.time
	dst[19] = x.tLamp
	dst[20] = x.tGroPipe
	dst[21] = x.tIntLamp
	dst[22] = x.tBlScr
	dst[23] = x.cBuf
	dst[24] = x.cLeaf
	dst[25] = x.cStem
	dst[26] = x.cFruit
	dst[27] = x.tCanSum
}

// SetVector unpacks a state vector produced by Vector.
func (x *State) SetVector(v []float64) {
	x.co2Air = v[0]
	x.co2Top = v[1]
	x.tAir = v[2]
	x.tTop = v[3]
	x.tCan = v[4]
	x.tCovIn = v[5]
	x.tThScr = v[6]
	x.tFlr = v[7]
	x.tPipe = v[8]
	x.tCovE = v[9]
	x.tSo1 = v[10]
	x.tSo2 = v[11]
	x.tSo3 = v[12]
	x.tSo4 = v[13]
	x.tSo5 = v[14]
	x.vpAir = v[15]
	x.vpTop = v[16]
	x.tCan24 = v[17]
	x.time = v[18]
	x.tLamp = v[19]
	x.tGroPipe = v[20]
	x.tIntLamp = v[21]
	x.tBlScr = v[22]
	x.cBuf = v[23]
	x.cLeaf = v[24]
	x.cStem = v[25]
	x.cFruit = v[26]
	x.tCanSum = v[27]
}

// IndoorInit optionally seeds the indoor climate of the initial state
// from a measurement instead of the setpoint defaults.
type IndoorInit struct {
	TAir   float64 // air temperature, °C
	VpAir  float64 // vapor pressure, Pa
	Co2Air float64 // CO2 concentration, mg m^-3
}

/*
Build the initial state for a simulation.

	Args:
	    p: parameter set
	    d: disturbance series; co2Out, tSoOut and, when present, the
	        prescribed pipe temperatures seed parts of the state
	    startTime: simulation clock at t=0, days (datenum)
	    indoor: optional measured indoor climate; nil uses the
	        night setpoint, rhMax humidity and the outdoor CO2 level

	Returns:
	    initial state with a young crop
*/
func NewInitialState(p *Params, d *Series, startTime float64, indoor *IndoorInit) *State {
	x := &State{}
	if indoor != nil {
		x.tAir = indoor.TAir
		x.vpAir = indoor.VpAir
		x.co2Air = indoor.Co2Air
	} else {
		x.tAir = p.tSpNight
		x.vpAir = p.rhMax / 100 * SatVp(x.tAir)
		x.co2Air = d.First("co2Out")
	}
	tSoOut := d.First("tSoOut")

	x.tTop = x.tAir
	x.co2Top = x.co2Air
	x.vpTop = x.vpAir

	x.tCan = x.tAir + 4
	x.tCovIn = x.tAir
	x.tThScr = x.tAir
	x.tBlScr = x.tAir
	x.tFlr = x.tAir
	x.tCovE = x.tAir
	x.tSo1 = x.tAir
	x.tSo2 = (3*x.tAir + tSoOut) / 4
	x.tSo3 = (2*x.tAir + 2*tSoOut) / 4
	x.tSo4 = (x.tAir + 3*tSoOut) / 4
	x.tSo5 = tSoOut
	x.tLamp = x.tAir
	x.tIntLamp = x.tAir
	x.tCan24 = x.tCan

	x.time = startTime

	x.tPipe = x.tAir
	if tp, ok := d.FirstOK("tPipe"); ok && tp > 0 {
		x.tPipe = tp
	}
	x.tGroPipe = x.tAir
	if tp, ok := d.FirstOK("tGroPipe"); ok && tp > 0 {
		x.tGroPipe = tp
	}

	x.cBuf = 0
	x.cLeaf = 0.7 * 6240
	x.cStem = 0.25 * 6240
	x.cFruit = 0.05 * 6240
	x.tCanSum = 0
	return x
}

// StartMature replaces the young-crop pools with a developed crop,
// used when a simulation starts mid-season.
func (x *State) StartMature() {
	x.cFruit = 2.8e5
	x.cLeaf = 0.9e5
	x.cStem = 2.5e5
	x.tCanSum = 3000
}
