package glm

import "math"

// Rad is an angle in radians.
type Rad float64

// Perspective returns a right handed projection matrix mapping the view
// frustum to clip space with depth in [-1, 1].
//
// Passing +Inf or NaN as far yields a projection with an infinitely
// distant far plane. Degenerate arguments like a zero aspect ratio are not
// checked and produce non finite elements.
func Perspective[T Float](fovY Rad, aspect, near, far T) Mat4[T] {
	f := 1 / math.Tan(float64(fovY)/2)

	m := Mat4[T]{
		T(f / float64(aspect)), 0, 0, 0,
		0, T(f), 0, 0,
		0, 0, 0, -1,
		0, 0, 0, 0,
	}

	if isInfiniteFar(far) {
		m[10] = -1
		m[14] = -2 * near
	} else {
		nf := 1 / (near - far)
		m[10] = (far + near) * nf
		m[14] = 2 * far * near * nf
	}

	return m
}

// InfinitePerspective is Perspective with the far plane at infinity.
func InfinitePerspective[T Float](fovY Rad, aspect, near T) Mat4[T] {
	return Perspective(fovY, aspect, near, T(math.Inf(1)))
}

func isInfiniteFar[T Float](far T) bool {
	v := float64(far)
	return math.IsInf(v, 1) || math.IsNaN(v)
}

func DegToRad[T Float](deg T) Rad {
	return Rad(float64(deg) * (math.Pi / 180))
}

func RadToDeg[T Float](rad Rad) (deg T) {
	return T(rad * (180 / math.Pi))
}
