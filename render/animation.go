package render

import "math"

const (
	greyStep  = 0.01
	omegaStep = 0.02
	phiStep   = 0.03
	kappaStep = 0.025
)

// Animation advances one step per rendered frame, independent of wall time.
// Angles stay in [-pi, pi) and Grey in [0, 1].
type Animation struct {
	Grey  float32
	Omega float32
	Phi   float32
	Kappa float32
}

func (a *Animation) Step() {

	a.Grey += greyStep
	if a.Grey > 1.0 {
		a.Grey = 0
	}

	a.Omega = stepAngle(a.Omega, omegaStep)
	a.Phi = stepAngle(a.Phi, phiStep)
	a.Kappa = stepAngle(a.Kappa, kappaStep)
}

// stepAngle adds step in float64 and jumps to -pi once pi is reached. The
// overshoot is dropped, not carried.
func stepAngle(angle float32, step float64) float32 {
	next := float32(float64(angle) + step)
	if float64(next) >= math.Pi {
		next = float32(-math.Pi)
	}
	return next
}

func (a Animation) Rotation() Mat4 {
	return EulerRotation(a.Omega, a.Phi, a.Kappa)
}
