package syringe

import (
	"fmt"
	"math"
)

// Syringe holds the geometry of a luer-lock NormJect syringe lying
// horizontally during injection. Volumes in mL, lengths in mm.
type Syringe struct {
	Volume   float64 // mL, nominal
	Diameter float64 // mm, inner
}

// Inner diameters of the supported NormJect sizes, keyed by nominal volume.
var catalog = map[int]Syringe{
	20: {Volume: 20.0, Diameter: 20.10},
	10: {Volume: 10.0, Diameter: 15.96},
	5:  {Volume: 5.0, Diameter: 12.46},
	3:  {Volume: 3.0, Diameter: 9.83},
}

// Default returns the 10 (12) mL NormJect syringe.
func Default() Syringe {
	return catalog[10]
}

// ByVolume looks up a syringe size by nominal volume in mL.
func ByVolume(v int) (Syringe, error) {
	s, ok := catalog[v]
	if !ok {
		return Syringe{}, fmt.Errorf("no syringe of volume %d mL, want one of 3, 5, 10, 20", v)
	}
	return s, nil
}

// Volumes lists the supported nominal volumes.
func Volumes() []int {
	return []int{3, 5, 10, 20}
}

// Radius is the inner radius in mm.
func (s Syringe) Radius() float64 {
	return s.Diameter / 2
}

// CrossSectionArea is the inner cross-section area in mm².
func (s Syringe) CrossSectionArea() float64 {
	r := s.Radius()
	return math.Pi * r * r
}

// SegmentArea is the cross-section area in mm² occupied by liquid pooled at
// the bottom of the barrel, for central angle theta in [0, 2π].
func (s Syringe) SegmentArea(theta float64) float64 {
	r := s.Radius()
	return r * r / 2 * (theta - math.Sin(theta))
}

// SegmentHeight is the liquid height in mm for central angle theta.
func (s Syringe) SegmentHeight(theta float64) float64 {
	return s.Radius() * (1 - math.Cos(theta/2))
}

// AngleForArea solves SegmentArea(theta) = area for theta by bisection.
// The segment area is strictly increasing on [0, 2π], so the bracket never
// loses the root. Areas outside [0, full cross-section] are clamped.
func (s Syringe) AngleForArea(area float64) float64 {
	if area <= 0 {
		return 0
	}
	if area >= s.CrossSectionArea() {
		return 2 * math.Pi
	}
	lo, hi := 0.0, 2*math.Pi
	for i := 0; i < 64; i++ {
		mid := (lo + hi) / 2
		if s.SegmentArea(mid) < area {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// HeightForArea is the pooled-liquid height in mm for a given liquid
// cross-section area in mm².
func (s Syringe) HeightForArea(area float64) float64 {
	return s.SegmentHeight(s.AngleForArea(area))
}
