package calculator

import (
	"github.com/aliizzzzz/Aqueous-Foam-Drainage-Simulatior-Inside-Syringe/foam"
)

// Calculator runs quasi-static drainage simulations for a configured
// formulation, syringe and set of injection cases.
type Calculator interface {
	// InitFormulation selects the foam technique and liquid-to-gas ratio.
	InitFormulation(technique foam.Technique, gasRatio int) error

	// SetSyringe selects the syringe by nominal volume in mL.
	SetSyringe(volume int) error

	// SetFlowrates sets the injection flowrates in mL/min.
	SetFlowrates(ratesMLMin []float64) error

	// SetFoamVolumes sets the foam volumes in mL.
	SetFoamVolumes(volumes []float64) error

	// Run solves every flowrate x volume case.
	Run() error

	// Curves returns the solved drainage curves in case order.
	Curves() []Curve

	// BuildData assembles the downsampled push payload.
	BuildData() *DrainageData

	// GetCalcHub exposes the signalling hub.
	GetCalcHub() *CalcHub
}
