package render

import "math"

// Mat4 is a row-major 4x4 matrix: element (row, col) is at row*4+col.
type Mat4 [16]float32

func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// EulerRotation builds the rotation for angles omega, phi and kappa in
// radians. Every sine, cosine, product and difference is rounded to float32;
// the explicit conversions keep products from being fused.
func EulerRotation(omega, phi, kappa float32) Mat4 {

	so, co := sin32(omega), cos32(omega)
	sp, cp := sin32(phi), cos32(phi)
	sk, ck := sin32(kappa), cos32(kappa)

	return Mat4{
		cp, float32(-ck * sp), float32(sp * sk), 0,
		float32(co * sp), float32(float32(co*cp)*ck) - float32(so*sk), float32(-ck*so) - float32(float32(co*cp)*sk), 0,
		float32(so * sp), float32(co*sk) + float32(float32(cp*ck)*so), float32(co*ck) - float32(float32(cp*so)*sk), 0,
		0, 0, 0, 1,
	}
}

func sin32(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func cos32(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

const (
	projNear = 10
	projFar  = 1000
)

// Projection is the fixed perspective for near=10, far=1000 with unit focal
// length.
func Projection() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, float32(-(projFar + projNear)) / (projFar - projNear), float32(-2*projFar*projNear) / (projFar - projNear),
		0, 0, -1, 0,
	}
}

func Shift(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// Mul returns m*n. Each product is rounded to float32 before it is summed so
// the result does not depend on fused multiply-add support.
func (m Mat4) Mul(n Mat4) Mat4 {
	var z Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += float32(m[i*4+k] * n[k*4+j])
			}
			z[i*4+j] = sum
		}
	}
	return z
}

func (m Mat4) At(row, col int) float32 {
	return m[row*4+col]
}
