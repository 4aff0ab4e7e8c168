package calculator

import (
	"testing"

	"github.com/aliizzzzz/Aqueous-Foam-Drainage-Simulatior-Inside-Syringe/foam"
)

func TestCalcHubStartStop(t *testing.T) {
	hub := NewCalcHub()
	if hub.Stopped() {
		t.Error("new hub reports stopped")
	}
	hub.StopSignal()
	if !hub.Stopped() {
		t.Error("hub not stopped after StopSignal")
	}
	hub.StopSignal() // second stop must not panic
	hub.StartSignal()
	if hub.Stopped() {
		t.Error("hub still stopped after StartSignal")
	}
}

func TestPushSignalNeverBlocks(t *testing.T) {
	hub := NewCalcHub()
	hub.PushSignal()
	hub.PushSignal() // no consumer, must not block
	select {
	case <-hub.PeriodCalcResult:
	default:
		t.Error("no result signal pending")
	}
}

func TestStoppedRunReturnsErrStopped(t *testing.T) {
	c := NewCalculator(defaultConfig())
	if err := c.InitFormulation(foam.TechniqueDSS, 4); err != nil {
		t.Fatal(err)
	}
	if err := c.SetFlowrates([]float64{20}); err != nil {
		t.Fatal(err)
	}
	if err := c.SetFoamVolumes([]float64{4}); err != nil {
		t.Fatal(err)
	}
	c.GetCalcHub().StopSignal()
	if err := c.Run(); err != ErrStopped {
		t.Errorf("Run on a stopped hub returned %v, want ErrStopped", err)
	}
}
