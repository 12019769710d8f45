// Package calc implements the closed-form RF equations of a link budget:
// antenna gain, free-space and radar transmission loss, noise-figure
// cascading, noise-temperature conversions, carrier-to-noise ratio and
// channel capacity. Every function is pure; logging and input resolution
// live in the parent package.
//
// References:
//
//	[1] Couch, Digital & Analog Communication Systems.
//	[2] Lindgren, A 1296 MHz Earth-Moon-Earth Communication System.
package calc

import (
	"errors"
	"fmt"
	"math"

	"github.com/wiless/vlib"
)

// SpeedOfLight in m/s.
const SpeedOfLight = 299792458.0

// T0 is the standard noise temperature in Kelvin. Noise figures are always
// referenced to a source at this temperature.
const T0 = 290.0

// KBoltzmannDb is Boltzmann's constant (1.38e-23) in dB.
const KBoltzmannDb = -228.6

// CoaxLossDbPerFt is the attenuation of the RG6 line type per foot.
const CoaxLossDbPerFt = 0.08

// Eirp computes the effective isotropically radiated power in dBW.
//
// EIRP (dBW) = Tx Power (dBW) + Tx Antenna Gain (dB).
func Eirp(txPowerDbw, txGainDb float64) float64 {
	return txPowerDbw + txGainDb
}

// DishGain calculates the gain in dB of a parabolic dish of the given
// diameter at the frequency of interest.
//
// The linear gain is 4*pi*Ae/lamda^2 with effective aperture Ae equal to the
// physical face area scaled by the aperture efficiency. The factor of 7
// folds in the 56% efficiency assumed by Table 8-4 of [1].
func DishGain(diameterM, freqHz float64) float64 {
	radius := diameterM / 2.0
	faceArea := math.Pi * radius * radius
	lamda := SpeedOfLight / freqHz
	return vlib.Db(7.0 * faceArea / (lamda * lamda))
}

// CoaxLossNF returns the loss and the noise figure (both in dB) of an RG6
// coaxial line of the given length. lineTempK is the physical temperature
// of the line.
//
// When the line sits at T0 the noise figure equals the attenuation in dB,
// a property of any passive two-port at room temperature (Eq. 8.32a in [1]).
// The general relation is F = 1 + (Tl/T0)(L - 1), Eq. 4.22 in [2].
func CoaxLossNF(lengthFt, lineTempK float64) (lossDb, noiseFigDb float64) {
	lossDb = lengthFt * CoaxLossDbPerFt
	loss := vlib.InvDb(lossDb)
	noiseFigDb = vlib.Db(1 + (lineTempK/T0)*(loss-1))
	return lossDb, noiseFigDb
}

// TotalNoiseFigure calculates the overall noise figure in dB of a chain of
// cascaded linear stages, Eq. 8-34 of [1].
//
// nfs holds the per-stage noise figures in dB, gains the per-stage gains in
// dB in the same order. The gain of the last stage is irrelevant to the
// cascade and must be left out, so len(gains) == len(nfs)-1. A single-stage
// chain needs no gains and returns its own figure unchanged.
func TotalNoiseFigure(nfs, gains vlib.VectorF) (float64, error) {
	if len(nfs) == 0 {
		return 0, errors.New("noise figure cascade needs at least one stage")
	}
	if len(gains) != len(nfs)-1 {
		return 0, fmt.Errorf("cascade of %d stages needs %d gains, got %d",
			len(nfs), len(nfs)-1, len(gains))
	}
	if len(nfs) == 1 {
		return nfs[0], nil
	}

	F := vlib.InvDb(nfs[0])
	Gprod := 1.0
	for i, nf := range nfs[1:] {
		Gprod *= vlib.InvDb(gains[i])
		F += (vlib.InvDb(nf) - 1) / Gprod
	}
	return vlib.Db(F), nil
}

// NoiseFigToNoiseTemp converts a noise figure in dB to the effective
// input-noise temperature in Kelvin, Eq. 8-30b in [1]. Unlike the figure,
// the temperature does not depend on the source being at T0.
func NoiseFigToNoiseTemp(nfDb float64) float64 {
	return T0 * (vlib.InvDb(nfDb) - 1)
}

// NoiseTempToNoiseFig converts an effective input-noise temperature in
// Kelvin to a noise figure in dB. Inverse of NoiseFigToNoiseTemp.
func NoiseTempToNoiseFig(tempK float64) float64 {
	return vlib.Db(1 + tempK/T0)
}

// RxSysNoiseTemp computes the receiver system noise temperature in Kelvin,
// Eq. 8-41 in [1].
//
// The antenna noise temperature is an external additive term, not another
// cascaded stage: it models sky and ground radiation collected by the
// antenna, while the effective input-noise temperature covers the noise the
// receiver chain generates internally.
func RxSysNoiseTemp(antennaNoiseTempK, effInputNoiseTempK float64) float64 {
	return antennaNoiseTempK + effInputNoiseTempK
}

// CNR computes the carrier-to-noise ratio in dB, Eq. 8-43 in [1].
//
// tSysDb is the receiver system noise temperature in dBK. The noise power
// is k*Tsys*bw, so k, Tsys and the bandwidth subtract directly in dB.
func CNR(eirpDb, pathLossDb, rxAntGainDb, tSysDb, bwHz float64) float64 {
	gOverT := rxAntGainDb - tSysDb
	return eirpDb - pathLossDb + gOverT - KBoltzmannDb - vlib.Db(bwHz)
}

// RxPower returns the received power in dBW at the antenna terminals.
func RxPower(eirpDb, pathLossDb, rxAntGainDb float64) float64 {
	return eirpDb - pathLossDb + rxAntGainDb
}

// Capacity computes the Shannon-Hartley channel capacity in bits per second
// for the given SNR in dB and bandwidth in Hz.
func Capacity(snrDb, bwHz float64) float64 {
	return bwHz * math.Log2(1+vlib.InvDb(snrDb))
}
