package calculator

import "errors"

// ErrStopped is returned by Run when the client stopped the simulation
// before it finished.
var ErrStopped = errors.New("simulation stopped")

// CalcHub carries the signals between a running calculator and whoever
// consumes its results.
type CalcHub struct {
	Stop             chan struct{}
	PeriodCalcResult chan struct{}
}

func NewCalcHub() *CalcHub {
	return &CalcHub{
		Stop:             make(chan struct{}),
		PeriodCalcResult: make(chan struct{}, 1),
	}
}

// PushSignal announces that a full result set is ready to be built.
func (ch *CalcHub) PushSignal() {
	select {
	case ch.PeriodCalcResult <- struct{}{}:
	default:
	}
}

// StartSignal arms the stop channel for a new run.
func (ch *CalcHub) StartSignal() {
	ch.Stop = make(chan struct{})
}

// StopSignal aborts the run in progress.
func (ch *CalcHub) StopSignal() {
	select {
	case <-ch.Stop:
		// already stopped
	default:
		close(ch.Stop)
	}
}

// Stopped reports whether StopSignal was called since the last StartSignal.
func (ch *CalcHub) Stopped() bool {
	select {
	case <-ch.Stop:
		return true
	default:
		return false
	}
}
