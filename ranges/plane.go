package ranges

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ScatteringPlane describes one scattering plane: a fixed azimuth Phi and a
// theta sweep from ThetaMin to ThetaMax in steps of DTheta.
//
// It is a plain record. Nothing checks that ThetaMin <= ThetaMax or that
// the step is positive, and it cannot be iterated.
type ScatteringPlane struct {
	Phi      float64
	ThetaMin float64
	ThetaMax float64

	// DTheta is the step exactly as it is written in the parameter file.
	DTheta string
}

// NewScatteringPlane returns a plane whose step is rendered as the shortest
// decimal that round-trips dTheta, always with a fractional part or an
// exponent (5 becomes "5.0").
func NewScatteringPlane(phi, thetaMin, thetaMax, dTheta float64) ScatteringPlane {
	return NewScatteringPlaneText(phi, thetaMin, thetaMax, formatStep(dTheta))
}

// NewScatteringPlaneText returns a plane that keeps dTheta verbatim.
func NewScatteringPlaneText(phi, thetaMin, thetaMax float64, dTheta string) ScatteringPlane {
	return ScatteringPlane{
		Phi:      phi,
		ThetaMin: thetaMin,
		ThetaMax: thetaMax,
		DTheta:   dTheta,
	}
}

// String formats the plane as "<phi>  <theta_min>  <theta_max>  <d_theta>".
func (p ScatteringPlane) String() string {
	return fmt.Sprintf("%f  %f  %f  %s", p.Phi, p.ThetaMin, p.ThetaMax, p.DTheta)
}

func formatStep(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
