package render

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepN(n int) Animation {
	var anim Animation
	for i := 0; i < n; i++ {
		anim.Step()
	}
	return anim
}

func TestAnimationFirstStep(t *testing.T) {
	anim := stepN(1)

	assert.Equal(t, float32(0.01), anim.Grey)
	assert.Equal(t, float32(0.02), anim.Omega)
	assert.Equal(t, float32(0.03), anim.Phi)
	assert.Equal(t, float32(0.025), anim.Kappa)
}

// closedFormAngle is the angle after n steps from zero while no wrap has
// happened yet.
func closedFormAngle(n int, step float64) float64 {
	return math.Mod(float64(n)*step+math.Pi, 2*math.Pi) - math.Pi
}

func TestAnimationHundredSteps(t *testing.T) {
	anim := stepN(100)

	assert.InDelta(t, closedFormAngle(100, omegaStep), anim.Omega, 1e-4)
	assert.InDelta(t, closedFormAngle(100, phiStep), anim.Phi, 1e-4)
	assert.InDelta(t, closedFormAngle(100, kappaStep), anim.Kappa, 1e-4)
	assert.InDelta(t, 2.0, anim.Omega, 1e-4)
}

func TestAnimationWrapsToMinusPi(t *testing.T) {
	// 157 * 0.02 = 3.14 is still below pi, 158 steps reach it
	before := stepN(157)
	assert.InDelta(t, 3.14, before.Omega, 1e-4)

	wrapped := stepN(158)
	assert.Equal(t, float32(-math.Pi), wrapped.Omega)
	assert.Equal(t, -math32.Pi, wrapped.Omega)

	after := stepN(159)
	assert.InDelta(t, -math.Pi+0.02, after.Omega, 1e-5)
}

func TestAnimationAnglesStayInRange(t *testing.T) {
	var anim Animation
	for i := 0; i < 10000; i++ {
		anim.Step()
		for _, a := range []float32{anim.Omega, anim.Phi, anim.Kappa} {
			require.True(t, a >= -math32.Pi && a < math32.Pi, "step %d angle %v", i, a)
		}
	}
}

func TestAnimationGreyWraps(t *testing.T) {
	assert.InDelta(t, 0.5, stepN(50).Grey, 1e-5)

	var anim Animation
	wrappedAt := 0
	for i := 1; i <= 300; i++ {
		prev := anim.Grey
		anim.Step()

		require.True(t, anim.Grey >= 0 && anim.Grey <= 1, "step %d grey %v", i, anim.Grey)

		if anim.Grey == 0 {
			// only when the step would have pushed it past 1
			assert.Greater(t, prev+greyStep, float32(1))
			if wrappedAt == 0 {
				wrappedAt = i
			}
		} else {
			assert.Equal(t, prev+greyStep, anim.Grey)
		}
	}

	assert.Contains(t, []int{100, 101}, wrappedAt)
}

func TestAnimationRotationUsesAngles(t *testing.T) {
	anim := stepN(3)
	assert.Equal(t, EulerRotation(anim.Omega, anim.Phi, anim.Kappa), anim.Rotation())
}
