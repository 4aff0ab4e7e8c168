package calculator

import (
	"fmt"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/aliizzzzz/Aqueous-Foam-Drainage-Simulatior-Inside-Syringe/foam"
	"github.com/aliizzzzz/Aqueous-Foam-Drainage-Simulatior-Inside-Syringe/syringe"
)

// Case is one injection scenario: a flowrate pushing a foam volume out of
// the syringe.
type Case struct {
	Flowrate   float64 // mL/s
	FoamVolume float64 // mL
}

// Curve is the drained-liquid-height history of one case. Times are strictly
// increasing, heights non-negative and non-decreasing.
type Curve struct {
	Case    Case
	Times   []float64 // s
	Heights []float64 // mm
}

type drainageCalculator struct {
	cfg Config

	syr       syringe.Syringe
	requested foam.Formulation
	effective foam.Formulation
	kinetics  foam.Kinetics

	flowrates   []float64 // mL/s, ascending
	foamVolumes []float64 // mL, ascending

	curves []Curve

	hub  *CalcHub
	exec *executor
}

// NewCalculator builds a calculator with the default syringe and the
// reference formulation.
func NewCalculator(cfg Config) Calculator {
	c := &drainageCalculator{
		cfg:  cfg,
		syr:  syringe.Default(),
		hub:  NewCalcHub(),
		exec: newExecutor(cfg.Workers),
	}
	f, _ := foam.NewFormulation(foam.TechniqueDSS, 4)
	c.requested = f
	c.effective, c.kinetics = foam.Resolve(f)
	return c
}

func (c *drainageCalculator) InitFormulation(technique foam.Technique, gasRatio int) error {
	f, err := foam.NewFormulation(technique, gasRatio)
	if err != nil {
		return err
	}
	c.requested = f
	c.effective, c.kinetics = foam.Resolve(f)
	log.WithFields(log.Fields{
		"requested": c.requested.String(),
		"effective": c.effective.String(),
		"halfTime":  c.kinetics.HalfTime,
	}).Info("formulation set")
	return nil
}

func (c *drainageCalculator) SetSyringe(volume int) error {
	s, err := syringe.ByVolume(volume)
	if err != nil {
		return err
	}
	c.syr = s
	log.WithFields(log.Fields{
		"volume":   s.Volume,
		"diameter": s.Diameter,
	}).Info("syringe set")
	return nil
}

func (c *drainageCalculator) SetFlowrates(ratesMLMin []float64) error {
	if len(ratesMLMin) == 0 {
		return fmt.Errorf("no flowrates given")
	}
	if len(ratesMLMin) > c.cfg.MaxFlowrates {
		return fmt.Errorf("%d flowrates given, at most %d supported", len(ratesMLMin), c.cfg.MaxFlowrates)
	}
	rates := make([]float64, len(ratesMLMin))
	for i, q := range ratesMLMin {
		if q <= 0 {
			return fmt.Errorf("flowrate %g mL/min is not positive", q)
		}
		rates[i] = q / 60 // stored in mL/s
	}
	sort.Float64s(rates)
	c.flowrates = rates
	return nil
}

func (c *drainageCalculator) SetFoamVolumes(volumes []float64) error {
	if len(volumes) == 0 {
		return fmt.Errorf("no foam volumes given")
	}
	if len(volumes) > c.cfg.MaxFoamVolumes {
		return fmt.Errorf("%d foam volumes given, at most %d supported", len(volumes), c.cfg.MaxFoamVolumes)
	}
	vs := make([]float64, len(volumes))
	for i, v := range volumes {
		if v <= 0 {
			return fmt.Errorf("foam volume %g mL is not positive", v)
		}
		if v > c.syr.Volume {
			return fmt.Errorf("foam volume %g mL exceeds the %g mL syringe", v, c.syr.Volume)
		}
		vs[i] = v
	}
	sort.Float64s(vs)
	c.foamVolumes = vs
	return nil
}

// Run solves every flowrate x foam-volume case on the executor and stores
// the resulting curves in case order.
func (c *drainageCalculator) Run() error {
	if len(c.flowrates) == 0 || len(c.foamVolumes) == 0 {
		return fmt.Errorf("flowrates and foam volumes must be set before running")
	}
	cases := make([]Case, 0, len(c.flowrates)*len(c.foamVolumes))
	for _, q := range c.flowrates {
		for _, v := range c.foamVolumes {
			cases = append(cases, Case{Flowrate: q, FoamVolume: v})
		}
	}

	start := time.Now()
	curves, err := c.exec.run(c, cases)
	if err != nil {
		return err
	}
	c.curves = curves
	log.WithFields(log.Fields{
		"cases":   len(cases),
		"elapsed": time.Since(start),
	}).Info("drainage simulation finished")
	c.hub.PushSignal()
	return nil
}

func (c *drainageCalculator) Curves() []Curve {
	return c.curves
}

func (c *drainageCalculator) GetCalcHub() *CalcHub {
	return c.hub
}

// solveCase integrates the quasi-static drainage of a single case. Per time
// step the foam loses dv = dt*VL/(2*halfTime) of liquid to the pool at the
// bottom of the barrel, while the foam column shortens with the injection.
// The pooled cross-section area maps to a liquid height through the
// circular-segment geometry of the horizontal barrel.
func (c *drainageCalculator) solveCase(cs Case) (Curve, error) {
	duration := c.syr.Volume / cs.Flowrate // s, until the syringe is empty
	n := int(duration)*c.cfg.SampleRate + 1
	if n < 2 {
		return Curve{}, fmt.Errorf("injection of %g s at %g Hz yields fewer than two samples",
			duration, float64(c.cfg.SampleRate))
	}
	times := floats.Span(make([]float64, n), 0, duration)
	dt := times[1] - times[0]

	area := c.syr.CrossSectionArea()                       // mm²
	liquid := cs.FoamVolume * c.effective.LiquidFraction() // mL still held in the foam
	drained := 0.0                                         // mL pooled so far
	length := c.syr.Volume * 1000 / area                   // mm of foam column

	heights := make([]float64, 0, n)
	for range times {
		dv := dt * liquid / (2 * c.kinetics.HalfTime)
		liquid -= dv
		drained += dv
		length -= dt * cs.Flowrate * 1000 / area
		if length <= 0 {
			break
		}
		a := drained * 1000 / length // mm²
		if a <= 0 || a >= area {
			break
		}
		h := c.syr.HeightForArea(a)
		// Liquid that reaches the nozzle level exits with the injected foam.
		if r := c.syr.Radius(); h > r {
			h = r
		}
		heights = append(heights, h)
	}
	if len(heights) == 0 {
		return Curve{}, fmt.Errorf("case Q=%g mL/s VF=%g mL produced no valid samples", cs.Flowrate, cs.FoamVolume)
	}
	return Curve{Case: cs, Times: times[:len(heights)], Heights: heights}, nil
}
