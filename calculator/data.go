package calculator

import (
	"github.com/aliizzzzz/Aqueous-Foam-Drainage-Simulatior-Inside-Syringe/model"
)

// DrainageData is the push payload streamed to clients: the solved curves,
// downsampled by the configured stride, plus the formulation they were
// solved with.
type DrainageData struct {
	Requested   string     `json:"requested"` // formulation the client asked for
	Effective   string     `json:"effective"` // formulation the kinetics come from
	HalfTime    float64    `json:"half_time"` // s
	Substituted bool       `json:"substituted"`
	Cases       []CaseData `json:"cases"`
}

// CaseData is one downsampled drainage curve.
type CaseData struct {
	Flowrate   float64        `json:"flowrate"`    // mL/min
	FoamVolume float64        `json:"foam_volume"` // mL
	Samples    []model.Sample `json:"samples"`
}

// BuildData assembles the push payload from the solved curves. The last
// sample of each curve is always kept so the plateau is visible.
func (c *drainageCalculator) BuildData() *DrainageData {
	data := &DrainageData{
		Requested:   c.requested.String(),
		Effective:   c.effective.String(),
		HalfTime:    c.kinetics.HalfTime,
		Substituted: c.kinetics.Substituted,
		Cases:       make([]CaseData, 0, len(c.curves)),
	}
	step := c.cfg.PushStep
	if step <= 0 {
		step = 1
	}
	for _, curve := range c.curves {
		n := len(curve.Times)
		samples := make([]model.Sample, 0, n/step+1)
		for i := 0; i < n; i += step {
			samples = append(samples, model.Sample{Time: curve.Times[i], Height: curve.Heights[i]})
		}
		if n > 0 && (n-1)%step != 0 {
			samples = append(samples, model.Sample{Time: curve.Times[n-1], Height: curve.Heights[n-1]})
		}
		data.Cases = append(data.Cases, CaseData{
			Flowrate:   curve.Case.Flowrate * 60,
			FoamVolume: curve.Case.FoamVolume,
			Samples:    samples,
		})
	}
	return data
}
