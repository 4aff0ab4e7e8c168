package calculator

import (
	"testing"

	"github.com/aliizzzzz/Aqueous-Foam-Drainage-Simulatior-Inside-Syringe/foam"
)

func newTestCalculator(t *testing.T) Calculator {
	t.Helper()
	c := NewCalculator(defaultConfig())
	if err := c.InitFormulation(foam.TechniqueDSS, 4); err != nil {
		t.Fatal(err)
	}
	if err := c.SetFlowrates([]float64{40, 20}); err != nil {
		t.Fatal(err)
	}
	if err := c.SetFoamVolumes([]float64{2, 4}); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestRunProducesWellFormedCurves(t *testing.T) {
	c := newTestCalculator(t)
	if err := c.Run(); err != nil {
		t.Fatal(err)
	}
	curves := c.Curves()
	if len(curves) != 4 {
		t.Fatalf("got %d curves, want 4 (2 flowrates x 2 volumes)", len(curves))
	}
	for _, curve := range curves {
		if len(curve.Times) == 0 {
			t.Fatalf("case %+v: empty curve", curve.Case)
		}
		if len(curve.Times) != len(curve.Heights) {
			t.Fatalf("case %+v: %d times vs %d heights", curve.Case, len(curve.Times), len(curve.Heights))
		}
		for i := 1; i < len(curve.Times); i++ {
			if curve.Times[i] <= curve.Times[i-1] {
				t.Fatalf("case %+v: times not strictly increasing at %d", curve.Case, i)
			}
			if curve.Heights[i] < curve.Heights[i-1] {
				t.Fatalf("case %+v: drained height decreased at %d: %g -> %g",
					curve.Case, i, curve.Heights[i-1], curve.Heights[i])
			}
		}
		for i, h := range curve.Heights {
			if h < 0 {
				t.Fatalf("case %+v: negative height %g at %d", curve.Case, h, i)
			}
		}
	}
}

func TestCasesOrderedByFlowrateThenVolume(t *testing.T) {
	c := newTestCalculator(t)
	if err := c.Run(); err != nil {
		t.Fatal(err)
	}
	curves := c.Curves()
	// Flowrates were given unsorted (40, 20 mL/min) and must come back
	// ascending, each with its volumes ascending.
	want := []Case{
		{Flowrate: 20.0 / 60, FoamVolume: 2},
		{Flowrate: 20.0 / 60, FoamVolume: 4},
		{Flowrate: 40.0 / 60, FoamVolume: 2},
		{Flowrate: 40.0 / 60, FoamVolume: 4},
	}
	for i, curve := range curves {
		if curve.Case != want[i] {
			t.Errorf("curve %d is case %+v, want %+v", i, curve.Case, want[i])
		}
	}
}

// Every formulation other than 1:4 DSS has no measured kinetics and must
// reproduce the 1:4 DSS curves exactly.
func TestUnsupportedFormulationsMatchReference(t *testing.T) {
	ref := newTestCalculator(t)
	if err := ref.Run(); err != nil {
		t.Fatal(err)
	}

	for _, f := range []struct {
		technique foam.Technique
		gasRatio  int
	}{
		{foam.TechniqueTessari, 3},
		{foam.TechniqueTessari, 4},
		{foam.TechniqueDSS, 5},
	} {
		c := NewCalculator(defaultConfig())
		if err := c.InitFormulation(f.technique, f.gasRatio); err != nil {
			t.Fatal(err)
		}
		if err := c.SetFlowrates([]float64{40, 20}); err != nil {
			t.Fatal(err)
		}
		if err := c.SetFoamVolumes([]float64{2, 4}); err != nil {
			t.Fatal(err)
		}
		if err := c.Run(); err != nil {
			t.Fatal(err)
		}
		got := c.Curves()
		want := ref.Curves()
		if len(got) != len(want) {
			t.Fatalf("%s 1:%d: %d curves, want %d", f.technique, f.gasRatio, len(got), len(want))
		}
		for i := range got {
			if len(got[i].Heights) != len(want[i].Heights) {
				t.Fatalf("%s 1:%d case %d: curve length differs", f.technique, f.gasRatio, i)
			}
			for j := range got[i].Heights {
				if got[i].Heights[j] != want[i].Heights[j] || got[i].Times[j] != want[i].Times[j] {
					t.Fatalf("%s 1:%d case %d: sample %d differs from reference",
						f.technique, f.gasRatio, i, j)
				}
			}
		}
	}
}

func TestSetterValidation(t *testing.T) {
	c := NewCalculator(defaultConfig())
	if err := c.SetFlowrates(nil); err == nil {
		t.Error("empty flowrates accepted")
	}
	if err := c.SetFlowrates([]float64{10, -3}); err == nil {
		t.Error("negative flowrate accepted")
	}
	if err := c.SetFlowrates([]float64{1, 2, 3, 4, 5, 6, 7}); err == nil {
		t.Error("seven flowrates accepted")
	}
	if err := c.SetFoamVolumes([]float64{11}); err == nil {
		t.Error("foam volume above the 10 mL syringe accepted")
	}
	if err := c.SetFoamVolumes([]float64{1, 2, 3, 4, 5}); err == nil {
		t.Error("five foam volumes accepted")
	}
	if err := c.SetSyringe(12); err == nil {
		t.Error("unknown syringe volume accepted")
	}
	if err := c.Run(); err == nil {
		t.Error("Run succeeded without flowrates and volumes")
	}
}

func TestDegenerateTimeGridRejected(t *testing.T) {
	c := NewCalculator(defaultConfig())
	if err := c.InitFormulation(foam.TechniqueDSS, 4); err != nil {
		t.Fatal(err)
	}
	// 1200 mL/min empties the 10 mL syringe in half a second, below one
	// full sampling interval.
	if err := c.SetFlowrates([]float64{1200}); err != nil {
		t.Fatal(err)
	}
	if err := c.SetFoamVolumes([]float64{4}); err != nil {
		t.Fatal(err)
	}
	if err := c.Run(); err == nil {
		t.Error("Run accepted a grid with fewer than two samples")
	}
}

func TestHeightsNeverExceedRadius(t *testing.T) {
	c := NewCalculator(defaultConfig())
	if err := c.InitFormulation(foam.TechniqueDSS, 4); err != nil {
		t.Fatal(err)
	}
	// A slow injection of a full syringe drains the most liquid.
	if err := c.SetFlowrates([]float64{2}); err != nil {
		t.Fatal(err)
	}
	if err := c.SetFoamVolumes([]float64{10}); err != nil {
		t.Fatal(err)
	}
	if err := c.Run(); err != nil {
		t.Fatal(err)
	}
	for _, curve := range c.Curves() {
		for i, h := range curve.Heights {
			if h > 15.96/2+1e-9 {
				t.Fatalf("height %g at sample %d exceeds the barrel radius", h, i)
			}
		}
	}
}

func TestBuildData(t *testing.T) {
	cfg := defaultConfig()
	cfg.PushStep = 5
	c := NewCalculator(cfg)
	if err := c.InitFormulation(foam.TechniqueTessari, 3); err != nil {
		t.Fatal(err)
	}
	if err := c.SetFlowrates([]float64{30}); err != nil {
		t.Fatal(err)
	}
	if err := c.SetFoamVolumes([]float64{4}); err != nil {
		t.Fatal(err)
	}
	if err := c.Run(); err != nil {
		t.Fatal(err)
	}

	data := c.BuildData()
	if data.Requested != "1:3 Tessari" {
		t.Errorf("Requested = %q", data.Requested)
	}
	if data.Effective != "1:4 DSS" || !data.Substituted {
		t.Errorf("substitution not surfaced: effective %q, substituted %v", data.Effective, data.Substituted)
	}
	if data.HalfTime != 160.0 {
		t.Errorf("HalfTime = %g, want 160", data.HalfTime)
	}
	if len(data.Cases) != 1 {
		t.Fatalf("got %d cases, want 1", len(data.Cases))
	}

	cd := data.Cases[0]
	if cd.Flowrate != 30 {
		t.Errorf("push flowrate = %g mL/min, want 30", cd.Flowrate)
	}
	full := c.Curves()[0]
	if len(cd.Samples) >= len(full.Times) {
		t.Errorf("push frame not downsampled: %d samples vs %d in the curve", len(cd.Samples), len(full.Times))
	}
	last := cd.Samples[len(cd.Samples)-1]
	if last.Time != full.Times[len(full.Times)-1] {
		t.Errorf("last curve sample missing from push frame")
	}
}
