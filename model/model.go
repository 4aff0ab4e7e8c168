package model

// Msg is the envelope exchanged with a websocket client.
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Env is the simulation request sent by a client before starting a run.
// Flowrates are given in mL/min, volumes in mL.
type Env struct {
	Technique     string    `json:"technique"`
	GasRatio      int       `json:"gas_ratio"`
	SyringeVolume int       `json:"syringe_volume"`
	Flowrates     []float64 `json:"flowrates"`
	FoamVolumes   []float64 `json:"foam_volumes"`
}

// Sample is one point of a drainage curve.
type Sample struct {
	Time   float64 `json:"time"`   // s
	Height float64 `json:"height"` // mm
}
