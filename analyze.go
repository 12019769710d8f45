package linkbudget

import (
	log "github.com/sirupsen/logrus"
	"github.com/wiless/vlib"

	"github.com/wiless/linkbudget/calc"
	"github.com/wiless/linkbudget/pointing"
)

// Analyze validates the setting and runs the link budget pipeline:
// geometry, EIRP, transmission loss, the receiver noise chain, CNR and
// capacity. Each intermediate quantity is logged at Info level and handed
// to the OnStage observer when one is set. On invalid input no partial
// result is produced.
func Analyze(s Setting) (Result, error) {
	var res Result
	if err := s.Validate(); err != nil {
		return res, err
	}

	satAlt := pointing.GeoAltitude
	if s.Radar {
		satAlt = *s.RadarAltM
	}

	elev, azimuth, slantRange := pointing.LookAngles(
		s.SatLongDeg, s.RxLongDeg, s.RxLatDeg, satAlt, s.Model)
	s.stage("Elevation", elev, "degrees")
	s.stage("Azimuth", azimuth, "degrees")
	s.stage("Distance", slantRange/1e3, "km")

	var eirp float64
	if s.EirpDbw != nil {
		eirp = *s.EirpDbw
	} else {
		var txGain float64
		if s.TxDishGainDb != nil {
			txGain = *s.TxDishGainDb
		} else {
			txGain = calc.DishGain(*s.TxDishSizeM, s.FreqHz)
			s.stage("Tx dish gain", txGain, "dB")
		}
		eirp = calc.Eirp(*s.TxPowerDbw, txGain)
	}
	s.stage("EIRP", eirp, "dBW")

	pls := pathLossSetting(s)
	pathLossDb, err := calc.PathLoss(slantRange, s.FreqHz, pls)
	if err != nil {
		return res, err
	}
	s.stage("Path loss", pathLossDb, "dB")

	var rxDishGainDb float64
	if s.RxDishGainDb != nil {
		rxDishGainDb = *s.RxDishGainDb
	} else {
		rxDishGainDb = calc.DishGain(*s.RxDishSizeM, s.FreqHz)
	}
	s.stage("Rx dish gain", rxDishGainDb, "dB")

	coaxLossDb, coaxNoiseFigDb := calc.CoaxLossNF(s.CoaxLengthFt, calc.T0)
	s.stage("Coax loss", coaxLossDb, "dB")
	s.stage("Coax noise figure", coaxNoiseFigDb, "dB")

	var lnbNoiseFigDb float64
	if s.LnbNoiseFigDb != nil {
		lnbNoiseFigDb = *s.LnbNoiseFigDb
	} else {
		lnbNoiseFigDb = calc.NoiseTempToNoiseFig(*s.LnbNoiseTempK)
	}
	s.stage("LNB noise figure", lnbNoiseFigDb, "dB")

	// Friis cascade over LNB, coax line and radio interface. The radio is
	// the last stage, so its gain stays out of the list.
	noiseFigDb, err := calc.TotalNoiseFigure(
		vlib.VectorF{lnbNoiseFigDb, coaxNoiseFigDb, s.RxNoiseFigDb},
		vlib.VectorF{s.LnbGainDb, -coaxLossDb},
	)
	if err != nil {
		return res, err
	}
	s.stage("Rx noise figure", noiseFigDb, "dB")

	effInputNoiseTemp := calc.NoiseFigToNoiseTemp(noiseFigDb)
	s.stage("Antenna noise temp", s.AntennaNoiseTempK, "K")
	s.stage("Input-noise temp", effInputNoiseTemp, "K")

	tSyst := calc.RxSysNoiseTemp(s.AntennaNoiseTempK, effInputNoiseTemp)
	s.stage("System noise temp", tSyst, "K")
	tSystDb := vlib.Db(tSyst)

	s.stage("Rx power", calc.RxPower(eirp, pathLossDb, rxDishGainDb)+30, "dBm")
	s.stage("(G/T)", rxDishGainDb-tSystDb, "dB/K")

	cnrDb := calc.CNR(eirp, pathLossDb, rxDishGainDb, tSystDb, s.IfBwHz)
	s.stage("(C/N)", cnrDb, "dB")

	capacityBps := calc.Capacity(cnrDb, s.IfBwHz)
	s.stage("Capacity", capacityBps, "bps")

	res = Result{
		Pointing: Pointing{
			ElevationDeg: elev,
			AzimuthDeg:   azimuth,
			SlantRangeM:  slantRange,
		},
		EirpDbw:      eirp,
		PathLossDb:   pathLossDb,
		RxDishGainDb: rxDishGainDb,
		NoiseFigDb: NoiseFigDb{
			Lnb:   lnbNoiseFigDb,
			Coax:  coaxNoiseFigDb,
			Total: noiseFigDb,
		},
		NoiseTempK: NoiseTempK{
			EffectiveInput: effInputNoiseTemp,
			System:         tSyst,
		},
		CnrDb:       cnrDb,
		CapacityBps: capacityBps,
	}
	return res, nil
}

// pathLossSetting translates the radar members of the setting into the calc
// package's loss options. Validate has already checked presence, but the
// translation keeps the zero-means-unset convention so that calc can reject
// on its own when called directly.
func pathLossSetting(s Setting) calc.PathLossSetting {
	pls := calc.PathLossSetting{Radar: s.Radar, Bistatic: s.RadarBistatic}
	if s.RadarCrossSecM2 != nil {
		pls.RCS = *s.RadarCrossSecM2
	}
	if s.RadarRxDistM != nil {
		pls.RxDistance = *s.RadarRxDistM
	}
	return pls
}

func (s Setting) stage(name string, value float64, unit string) {
	log.Infof("%-19s %10.2f %s", name+":", value, unit)
	if s.OnStage != nil {
		s.OnStage(name, value, unit)
	}
}
