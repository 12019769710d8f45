// Package linkbudget evaluates end-to-end RF link performance for satellite
// and radar links: pointing geometry, EIRP, transmission loss, the receiver
// noise chain, carrier-to-noise ratio and channel capacity.
//
// The pure equations live in the calc and pointing subpackages; this package
// resolves the mutually exclusive input forms and runs the pipeline in data
// flow order.
package linkbudget

import (
	"encoding/json"
	"errors"

	ms "github.com/mitchellh/mapstructure"
	log "github.com/sirupsen/logrus"

	"github.com/wiless/linkbudget/pointing"
)

// StageFn receives every intermediate quantity of the pipeline in
// computation order. unit is a plain suffix such as "dB" or "K".
type StageFn func(name string, value float64, unit string)

// Setting carries the inputs of one link budget evaluation. Members of a
// mutually exclusive pair are pointers so that an explicit zero can be told
// apart from "not set"; exactly one member of each pair must be supplied.
type Setting struct {
	// Power: either the EIRP directly, or the power feeding the Tx
	// antenna together with one form of the Tx antenna.
	EirpDbw      *float64
	TxPowerDbw   *float64
	TxDishSizeM  *float64
	TxDishGainDb *float64

	FreqHz float64
	IfBwHz float64

	// Receive antenna: dish diameter or dish gain.
	RxDishSizeM  *float64
	RxDishGainDb *float64

	AntennaNoiseTempK float64

	// LNB noise: figure in dB or temperature in K.
	LnbNoiseFigDb *float64
	LnbNoiseTempK *float64
	LnbGainDb     float64

	CoaxLengthFt float64
	RxNoiseFigDb float64

	// Geometry. Positive longitudes east, positive latitudes north.
	SatLongDeg float64
	RxLongDeg  float64
	RxLatDeg   float64

	Model pointing.Model

	// Radar mode replaces the one-way loss with the radar transmission
	// loss and overrides the reflector altitude.
	Radar           bool
	RadarAltM       *float64
	RadarCrossSecM2 *float64
	RadarBistatic   bool
	RadarRxDistM    *float64

	// OnStage, when set, observes every intermediate quantity.
	OnStage StageFn `json:"-" mapstructure:"-"`
}

// NewSetting returns a Setting with the defaults filled in.
func NewSetting() *Setting {
	result := new(Setting)
	result.SetDefault()
	return result
}

func (s *Setting) SetDefault() {
	s.Model = pointing.Ellipsoidal
}

// Set fills the setting from a JSON string.
func (s *Setting) Set(str string) {
	err := json.Unmarshal([]byte(str), s)
	if err != nil {
		log.Print("Error ", err)
	}
}

// DecodeMap fills the setting from a generic map, as produced by a JSON or
// viper configuration source. Keys match field names case-insensitively.
func (s *Setting) DecodeMap(m map[string]interface{}) error {
	return ms.Decode(m, s)
}

// Float is a convenience for filling the optional members of a Setting.
func Float(v float64) *float64 { return &v }

// Validate checks that every required input is present, that each mutually
// exclusive group resolves to exactly one member, and that radar mode
// carries its parameters. It never recovers or fills in defaults; invalid
// input is rejected before any computation runs.
func (s *Setting) Validate() error {
	if s.EirpDbw == nil && s.TxPowerDbw == nil {
		return errors.New("define the transmit power through eirp or tx-power")
	}
	if s.EirpDbw != nil && s.TxPowerDbw != nil {
		return errors.New("eirp and tx-power are mutually exclusive")
	}
	if s.TxPowerDbw != nil {
		if s.TxDishSizeM == nil && s.TxDishGainDb == nil {
			return errors.New("define either tx-dish-size or tx-dish-gain with tx-power")
		}
		if s.TxDishSizeM != nil && s.TxDishGainDb != nil {
			return errors.New("tx-dish-size and tx-dish-gain are mutually exclusive")
		}
	}

	if s.FreqHz <= 0 {
		return errors.New("carrier frequency required")
	}
	if s.IfBwHz <= 0 {
		return errors.New("if bandwidth required")
	}

	if s.RxDishSizeM == nil && s.RxDishGainDb == nil {
		return errors.New("define the rx antenna through rx-dish-size or rx-dish-gain")
	}
	if s.RxDishSizeM != nil && s.RxDishGainDb != nil {
		return errors.New("rx-dish-size and rx-dish-gain are mutually exclusive")
	}

	if s.LnbNoiseFigDb == nil && s.LnbNoiseTempK == nil {
		return errors.New("define the lnb noise through lnb-noise-fig or lnb-noise-temp")
	}
	if s.LnbNoiseFigDb != nil && s.LnbNoiseTempK != nil {
		return errors.New("lnb-noise-fig and lnb-noise-temp are mutually exclusive")
	}

	if s.Radar {
		if s.RadarAltM == nil {
			return errors.New("radar-alt required in radar mode")
		}
		if s.RadarCrossSecM2 == nil {
			return errors.New("radar-cross-section required in radar mode")
		}
		if s.RadarBistatic && s.RadarRxDistM == nil {
			return errors.New("object-to-rx distance required in bistatic radar mode")
		}
	}
	return nil
}
