package render

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standardTol = float32(1.0e-6)

func assertEqualTol(t *testing.T, expected, actual, tol float32, msgAndArgs ...interface{}) {
	t.Helper()
	if math32.Abs(expected-actual) > tol {
		assert.Fail(t, "values differ", "expected %v, actual %v (tol %v)", expected, actual, tol)
		if len(msgAndArgs) > 0 {
			t.Log(msgAndArgs...)
		}
	}
}

func TestEulerRotationZeroIsIdentity(t *testing.T) {
	assert.Equal(t, Identity(), EulerRotation(0, 0, 0))
}

// float32Rotation evaluates the rotation in single precision: each trig
// value and each intermediate result is a float32.
func float32Rotation(omega, phi, kappa float32) [16]float32 {
	so, co := float32(math.Sin(float64(omega))), float32(math.Cos(float64(omega)))
	sp, cp := float32(math.Sin(float64(phi))), float32(math.Cos(float64(phi)))
	sk, ck := float32(math.Sin(float64(kappa))), float32(math.Cos(float64(kappa)))

	mCoCp := float32(co * cp)
	mCpCk := float32(cp * ck)
	mCpSo := float32(cp * so)

	return [16]float32{
		cp, float32(-ck * sp), float32(sp * sk), 0,
		float32(co * sp), float32(mCoCp*ck) - float32(so*sk), float32(-ck*so) - float32(mCoCp*sk), 0,
		float32(so * sp), float32(co*sk) + float32(mCpCk*so), float32(co*ck) - float32(mCpSo*sk), 0,
		0, 0, 0, 1,
	}
}

func TestEulerRotationFormula(t *testing.T) {
	omega, phi, kappa := float32(0.7), float32(-1.3), float32(2.9)
	m := EulerRotation(omega, phi, kappa)

	assert.Equal(t, float32Rotation(omega, phi, kappa), [16]float32(m))

	// the float32 result stays within rounding of the exact float64 formula
	so, co := math.Sin(float64(omega)), math.Cos(float64(omega))
	sp, cp := math.Sin(float64(phi)), math.Cos(float64(phi))
	sk, ck := math.Sin(float64(kappa)), math.Cos(float64(kappa))

	exact := [16]float64{
		cp, -ck * sp, sp * sk, 0,
		co * sp, co*cp*ck - so*sk, -ck*so - co*cp*sk, 0,
		so * sp, co*sk + cp*ck*so, co*ck - cp*so*sk, 0,
		0, 0, 0, 1,
	}
	for i := range exact {
		assertEqualTol(t, float32(exact[i]), m[i], standardTol, "entry", i)
	}
}

func TestEulerRotationSinglePrecisionOverFrames(t *testing.T) {
	var anim Animation

	anim.Step()
	assert.Equal(t, float32(-0.029986124), anim.Rotation()[1])

	for i := 1; i < 1000; i++ {
		anim.Step()
		require.Equal(t, float32Rotation(anim.Omega, anim.Phi, anim.Kappa), [16]float32(anim.Rotation()), "frame %d", i+1)
	}
}

func TestEulerRotationIsOrthonormal(t *testing.T) {
	angles := []float32{-math32.Pi, -2.5, -1, -0.25, 0, 0.3, 1.2, 2.2, 3.1}

	for _, omega := range angles {
		for _, phi := range angles {
			for _, kappa := range angles {
				m := EulerRotation(omega, phi, kappa)

				for c1 := 0; c1 < 3; c1++ {
					for c2 := c1; c2 < 3; c2++ {
						var dot float32
						for r := 0; r < 3; r++ {
							dot += m.At(r, c1) * m.At(r, c2)
						}
						expected := float32(0)
						if c1 == c2 {
							expected = 1
						}
						assertEqualTol(t, expected, dot, 1e-5, omega, phi, kappa, c1, c2)
					}
				}

				assert.Equal(t, [4]float32{0, 0, 0, 1}, [4]float32{m[12], m[13], m[14], m[15]})
				assert.Equal(t, [3]float32{0, 0, 0}, [3]float32{m[3], m[7], m[11]})
			}
		}
	}
}

func TestProjection(t *testing.T) {
	p := Projection()

	assert.Equal(t, float32(-1010)/float32(990), p[10])
	assert.Equal(t, float32(-20000)/float32(990), p[11])
	assert.Equal(t, float32(-1), p[14])
	assert.Equal(t, float32(0), p[15])
	assert.Equal(t, float32(1), p[0])
	assert.Equal(t, float32(1), p[5])
}

func TestShift(t *testing.T) {
	s := Shift(1, 2, -15.5)

	assert.Equal(t, float32(1), s.At(0, 3))
	assert.Equal(t, float32(2), s.At(1, 3))
	assert.Equal(t, float32(-15.5), s.At(2, 3))
	assert.Equal(t, Identity(), Shift(0, 0, 0))
}

func TestMul(t *testing.T) {
	a := Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}

	assert.Equal(t, a, a.Mul(Identity()))
	assert.Equal(t, a, Identity().Mul(a))

	// row 0 of a times column 3 of the shift: 1*1 + 2*2 + 3*3 + 4*1
	assert.Equal(t, float32(18), a.Mul(Shift(1, 2, 3)).At(0, 3))

	expected := Mat4{
		90, 100, 110, 120,
		202, 228, 254, 280,
		314, 356, 398, 440,
		426, 484, 542, 600,
	}
	assert.Equal(t, expected, a.Mul(a))
}

func TestCompositionOrderMatters(t *testing.T) {
	model := EulerRotation(0.4, 0.9, -0.6)
	camera := Shift(0, 0, cameraDistance)
	proj := Projection()

	mvp := proj.Mul(camera.Mul(model))

	assert.NotEqual(t, mvp, proj.Mul(model.Mul(camera)))
	assert.NotEqual(t, mvp, camera.Mul(proj.Mul(model)))
	assert.NotEqual(t, camera.Mul(model), model.Mul(camera))

	// translation survives model-then-camera untouched
	modelCam := camera.Mul(model)
	assert.Equal(t, float32(cameraDistance), modelCam.At(2, 3))
}
