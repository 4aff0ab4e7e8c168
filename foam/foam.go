package foam

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Foam production techniques.
type Technique string

const (
	TechniqueDSS     Technique = "dss"     // Double Syringe System
	TechniqueTessari Technique = "tessari" // Tessari method
)

// GasRatios lists the gas parts accepted for the liquid-to-gas ratio 1:N.
var GasRatios = []int{3, 4, 5}

// Formulation identifies how a foam batch was produced.
type Formulation struct {
	Technique Technique
	GasRatio  int // liquid:gas = 1:GasRatio
}

// Kinetics holds the measured drainage parameters of a formulation.
type Kinetics struct {
	HalfTime float64 // s, time for half the liquid content to drain
	// Substituted is set when the requested formulation had no measured
	// kinetics and the reference dataset was used instead.
	Substituted bool
}

// reference is the only formulation with experimentally measured drainage
// kinetics. Every other formulation falls back to it, liquid fraction
// included, so that unsupported requests reproduce the reference curve
// rather than an unvalidated hybrid.
var reference = Formulation{Technique: TechniqueDSS, GasRatio: 4}

var catalog = map[Formulation]Kinetics{
	reference: {HalfTime: 160.0},
}

// ParseTechnique accepts the single-letter console shorthand as well as the
// full technique name.
func ParseTechnique(s string) (Technique, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "d", "dss":
		return TechniqueDSS, nil
	case "t", "tessari":
		return TechniqueTessari, nil
	}
	return "", fmt.Errorf("unknown foam technique %q", s)
}

// Name returns the display name of the technique.
func (t Technique) Name() string {
	switch t {
	case TechniqueDSS:
		return "DSS"
	case TechniqueTessari:
		return "Tessari"
	}
	return string(t)
}

// NewFormulation validates technique and ratio and returns the formulation.
func NewFormulation(technique Technique, gasRatio int) (Formulation, error) {
	switch technique {
	case TechniqueDSS, TechniqueTessari:
	default:
		return Formulation{}, fmt.Errorf("unknown foam technique %q", technique)
	}
	ok := false
	for _, r := range GasRatios {
		if gasRatio == r {
			ok = true
			break
		}
	}
	if !ok {
		return Formulation{}, fmt.Errorf("unsupported gas ratio 1:%d, want one of 1:3, 1:4, 1:5", gasRatio)
	}
	return Formulation{Technique: technique, GasRatio: gasRatio}, nil
}

// String implements fmt.Stringer, e.g. "1:4 DSS".
func (f Formulation) String() string {
	return fmt.Sprintf("1:%d %s", f.GasRatio, f.Technique.Name())
}

// LiquidFraction is the liquid share of the foam volume for a 1:N ratio.
func (f Formulation) LiquidFraction() float64 {
	return 1.0 / float64(1+f.GasRatio)
}

// Resolve returns the formulation whose measured kinetics will actually
// drive a simulation, and those kinetics. Only the 1:4 DSS dataset exists;
// any other request resolves to it and the substitution is logged so it
// never happens silently.
func Resolve(f Formulation) (Formulation, Kinetics) {
	if k, ok := catalog[f]; ok {
		return f, k
	}
	k := catalog[reference]
	k.Substituted = true
	log.WithFields(log.Fields{
		"requested": f.String(),
		"using":     reference.String(),
		"halfTime":  k.HalfTime,
	}).Warn("no measured drainage kinetics for requested formulation, substituting reference dataset")
	return reference, k
}
