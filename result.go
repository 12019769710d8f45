package linkbudget

// Pointing holds the look angles and slant range of the evaluated link.
type Pointing struct {
	ElevationDeg float64 `json:"elevation"`
	AzimuthDeg   float64 `json:"azimuth"`
	SlantRangeM  float64 `json:"slant_range"`
}

// NoiseFigDb breaks the receiver noise figure down per stage, all in dB.
type NoiseFigDb struct {
	Lnb   float64 `json:"lnb"`
	Coax  float64 `json:"coax"`
	Total float64 `json:"total"`
}

// NoiseTempK breaks the noise temperatures down, in Kelvin.
type NoiseTempK struct {
	EffectiveInput float64 `json:"effective_input"`
	System         float64 `json:"system"`
}

// Result aggregates the outputs of one link budget evaluation. It is built
// once per Analyze call and never mutated afterwards. The JSON keys form
// the flat machine-readable record of the tool.
type Result struct {
	Pointing     Pointing   `json:"pointing"`
	EirpDbw      float64    `json:"eirp_db"`
	PathLossDb   float64    `json:"path_loss_db"`
	RxDishGainDb float64    `json:"rx_dish_gain_db"`
	NoiseFigDb   NoiseFigDb `json:"noise_fig_db"`
	NoiseTempK   NoiseTempK `json:"noise_temp_k"`
	CnrDb        float64    `json:"cnr_db"`
	CapacityBps  float64    `json:"capacity_bps"`
}
