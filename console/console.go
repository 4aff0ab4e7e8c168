// Package console drives an interactive drainage-simulation session: it
// collects a validated formulation, syringe and injection plan, runs the
// calculator and renders the figures.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/aliizzzzz/Aqueous-Foam-Drainage-Simulatior-Inside-Syringe/calculator"
	"github.com/aliizzzzz/Aqueous-Foam-Drainage-Simulatior-Inside-Syringe/foam"
	"github.com/aliizzzzz/Aqueous-Foam-Drainage-Simulatior-Inside-Syringe/plotter"
	"github.com/aliizzzzz/Aqueous-Foam-Drainage-Simulatior-Inside-Syringe/syringe"
)

// Run executes one interactive session, reading answers from in and writing
// prompts, the parameter summary and result paths to out.
func Run(cfg calculator.Config, in io.Reader, out io.Writer) error {
	p := NewPrompter(in, out)
	fmt.Fprint(out, "\nQuasi Static Drainage Simulator for Sclerosing Foams\n\n")

	techAns, err := p.Choice("Enter foam type (D/d) for DSS, (T/t) for Tessari: ", "d", "t", "dss", "tessari")
	if err != nil {
		return err
	}
	technique, err := foam.ParseTechnique(techAns)
	if err != nil {
		return err
	}

	c := calculator.NewCalculator(cfg)

	syrVolume := 10
	ans, err := p.Choice("Default syringe: 10 (12) mL NormJect. Proceed (y/n)? ", "", "y", "n")
	if err != nil {
		return err
	}
	if ans == "n" {
		syrVolume, err = p.IntChoice("Enter syringe volume in mL (20, 10, 5, 3 mL): ", syringe.Volumes()...)
		if err != nil {
			return err
		}
	}
	if err := c.SetSyringe(syrVolume); err != nil {
		return err
	}
	syr, err := syringe.ByVolume(syrVolume)
	if err != nil {
		return err
	}

	volumes, err := p.FloatList(
		fmt.Sprintf("Enter foam volumes (maximum %g) in mL (maximum %d values, separated with spaces): ",
			syr.Volume, cfg.MaxFoamVolumes),
		cfg.MaxFoamVolumes, syr.Volume)
	if err != nil {
		return err
	}
	rates, err := p.FloatList(
		fmt.Sprintf("Enter injection flowrates in mL/min (maximum %d values, separated with spaces): ",
			cfg.MaxFlowrates),
		cfg.MaxFlowrates, 0)
	if err != nil {
		return err
	}
	gasRatio, err := p.IntChoice("Enter ratio of gas (3,4,5): ", foam.GasRatios...)
	if err != nil {
		return err
	}

	if err := c.InitFormulation(technique, gasRatio); err != nil {
		return err
	}
	if err := c.SetFoamVolumes(volumes); err != nil {
		return err
	}
	if err := c.SetFlowrates(rates); err != nil {
		return err
	}

	data := c.BuildData()
	printSummary(out, syr, data.HalfTime, headingFor(data), volumes, rates)

	if err := c.Run(); err != nil {
		return err
	}
	paths, err := plotter.Render(c.Curves(), headingFor(data), cfg.OutDir)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "\nFigures written:")
	for _, path := range paths {
		fmt.Fprintf(out, "  %s\n", path)
	}
	return nil
}

// headingFor names the formulation on figures. A substituted run says so
// instead of passing the reference curve off as the requested formulation.
func headingFor(data *calculator.DrainageData) string {
	if data.Substituted {
		return fmt.Sprintf("%s Foam (%s kinetics)", data.Requested, data.Effective)
	}
	return fmt.Sprintf("%s Foam", data.Effective)
}

func printSummary(w io.Writer, syr syringe.Syringe, halfTime float64, heading string, volumes, rates []float64) {
	fmt.Fprintf(w, "\n\nSimulation Parameters\n%s\n", strings.Repeat("=", 50))
	fmt.Fprintf(w, "\n%g mL syringe (centric tip), ID = %.2f mm\n", syr.Volume, syr.Diameter)
	fmt.Fprintf(w, "\n%s, half time: %g seconds\n", heading, halfTime)
	fmt.Fprintf(w, "Foam volumes: %v mL\n", volumes)
	fmt.Fprintf(w, "Injection flowrates: %v mL/min\n", rates)
}
