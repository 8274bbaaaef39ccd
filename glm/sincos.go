package glm

import "math"

// sincos evaluates in float64 and narrows to the element type, so chained
// transforms of a Mat4f agree with the float32 reference values.
func sincos[T Float](r Rad) (s, c T) {
	return T(math.Sin(float64(r))), T(math.Cos(float64(r)))
}
