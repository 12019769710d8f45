package calc

import (
	"errors"
	"math"

	"github.com/wiless/vlib"
)

// PathLossSetting selects between the plain one-way free-space loss and the
// radar transmission loss. The zero value requests the one-way loss. RCS and
// RxDistance left at zero mean "not supplied"; missing radar parameters are
// rejected before any loss is computed.
type PathLossSetting struct {
	Radar      bool
	RCS        float64 // radar cross section of the object in m2
	Bistatic   bool
	RxDistance float64 // object-to-receiver distance in m, bistatic only
}

// FreeSpacePathLoss returns the one-way free-space path loss in dB over the
// given distance, Eq. 8-11 in [1].
//
// L = 20\ \log_{10}\left(\frac{4\pi d}{\lambda}\right)
func FreeSpacePathLoss(distanceM, freqHz float64) float64 {
	lamda := SpeedOfLight / freqHz
	return 20 * math.Log10(4*math.Pi*distanceM/lamda)
}

// ObjectGain returns the gain in dB of a radar object of the given cross
// section, Eq. 3.23 in [2]. The object is modelled as a gain element whose
// cross section is the hypothetical area that, scattering isotropically,
// produces the power density observed at the receiver.
func ObjectGain(rcsM2, freqHz float64) float64 {
	lamda := SpeedOfLight / freqHz
	return vlib.Db(4 * math.Pi * rcsM2 / (lamda * lamda))
}

// PathLoss calculates the transmission loss in dB between the transmitter
// and the receiver. distanceM is the transmitter-to-receiver distance, or in
// radar mode the transmitter-to-object distance.
//
// Monostatic radar doubles the one-way loss and credits the object gain
// (Eq. 3.26 in [2]). Bistatic radar sums the two legs instead, with the
// reverse leg taken over s.RxDistance (Eq. 3.24 in [2]).
func PathLoss(distanceM, freqHz float64, s PathLossSetting) (float64, error) {
	oneWayDb := FreeSpacePathLoss(distanceM, freqHz)
	if !s.Radar {
		return oneWayDb, nil
	}

	if s.RCS <= 0 {
		return 0, errors.New("radar cross section required in radar mode")
	}
	objGainDb := ObjectGain(s.RCS, freqHz)

	if s.Bistatic {
		if s.RxDistance <= 0 {
			return 0, errors.New("rx distance required in bistatic radar mode")
		}
		return oneWayDb + FreeSpacePathLoss(s.RxDistance, freqHz) - objGainDb, nil
	}
	return 2*oneWayDb - objGainDb, nil
}
