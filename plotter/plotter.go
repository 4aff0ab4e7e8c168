// Package plotter renders drained-liquid-height figures, one per injection
// flowrate, with one curve per foam volume.
package plotter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/aliizzzzz/Aqueous-Foam-Drainage-Simulatior-Inside-Syringe/calculator"
)

// Render writes one PNG per flowrate found in curves and returns the paths
// written. heading names the formulation, e.g. "1:4 DSS Foam".
func Render(curves []calculator.Curve, heading, dir string) ([]string, error) {
	if len(curves) == 0 {
		return nil, fmt.Errorf("no curves to plot")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	// Group by flowrate, keeping first-seen order.
	var rates []float64
	byRate := make(map[float64][]calculator.Curve)
	for _, c := range curves {
		if _, ok := byRate[c.Case.Flowrate]; !ok {
			rates = append(rates, c.Case.Flowrate)
		}
		byRate[c.Case.Flowrate] = append(byRate[c.Case.Flowrate], c)
	}

	paths := make([]string, 0, len(rates))
	for _, q := range rates {
		path := filepath.Join(dir, fileName(heading, q*60))
		if err := renderFigure(byRate[q], heading, q*60, path); err != nil {
			return nil, err
		}
		log.WithField("path", path).Info("figure written")
		paths = append(paths, path)
	}
	return paths, nil
}

func renderFigure(curves []calculator.Curve, heading string, rateMLMin float64, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s\nInjection flowrate: %g mL/min", heading, rateMLMin)
	p.X.Label.Text = "Injection Time (s)"
	p.Y.Label.Text = "Liquid Height (mm)"
	p.Add(plotter.NewGrid())

	for i, c := range curves {
		xys := make(plotter.XYs, len(c.Times))
		for j := range c.Times {
			xys[j].X = c.Times[j]
			xys[j].Y = c.Heights[j]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("building line for VF=%g mL: %w", c.Case.FoamVolume, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("Vfoam: %.1f mL", c.Case.FoamVolume), line)
	}
	p.Legend.Top = true
	p.Legend.Left = true
	p.X.Min = 0
	p.Y.Min = 0

	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func fileName(heading string, rateMLMin float64) string {
	slug := strings.ToLower(heading)
	for _, r := range []string{" ", ":", "(", ")"} {
		slug = strings.ReplaceAll(slug, r, "-")
	}
	slug = strings.Trim(strings.ReplaceAll(slug, "--", "-"), "-")
	return fmt.Sprintf("drainage_%s_%gmLmin.png", slug, rateMLMin)
}
