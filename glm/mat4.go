package glm

import "math"

// Mat4 is a 4x4 homogeneous transform in column-major order.
//
// m[4*c + r] is the element in the r'th row and c'th column. Columns 0 to 2
// hold the linear part, column 3 the translation and row 3 the projective
// part.
//
// Methods with a pointer receiver modify the matrix in place and return the
// receiver, so calls can be chained:
//
//	model := glm.IdentityMat4[float32]()
//	model.Translate(x, y, z).RotateY(yaw).Scale(2, 2, 2)
type Mat4[T Float] [16]T

func IdentityMat4[T Float]() Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func TranslationMat4[T Float](x, y, z T) Mat4[T] {
	m := IdentityMat4[T]()
	m.Translate(x, y, z)
	return m
}

func ScaleMat4[T Float](x, y, z T) Mat4[T] {
	m := IdentityMat4[T]()
	m.Scale(x, y, z)
	return m
}

// RotationMat4 returns a rotation by angle around the axis (x, y, z). A zero
// length axis yields the identity.
func RotationMat4[T Float](angle Rad, x, y, z T) Mat4[T] {
	m := IdentityMat4[T]()
	m.Rotate(angle, x, y, z)
	return m
}

func RotationXMat4[T Float](angle Rad) Mat4[T] {
	m := IdentityMat4[T]()
	m.RotateX(angle)
	return m
}

func RotationYMat4[T Float](angle Rad) Mat4[T] {
	m := IdentityMat4[T]()
	m.RotateY(angle)
	return m
}

func RotationZMat4[T Float](angle Rad) Mat4[T] {
	m := IdentityMat4[T]()
	m.RotateZ(angle)
	return m
}

func (m *Mat4[T]) SetIdentity() *Mat4[T] {
	*m = IdentityMat4[T]()
	return m
}

// Translate multiplies m with a translation by (x, y, z) from the right.
func (m *Mat4[T]) Translate(x, y, z T) *Mat4[T] {
	m[12] = m[0]*x + m[4]*y + m[8]*z + m[12]
	m[13] = m[1]*x + m[5]*y + m[9]*z + m[13]
	m[14] = m[2]*x + m[6]*y + m[10]*z + m[14]
	m[15] = m[3]*x + m[7]*y + m[11]*z + m[15]
	return m
}

// Scale multiplies m with a scale by (x, y, z) from the right. The
// translation column is not touched.
func (m *Mat4[T]) Scale(x, y, z T) *Mat4[T] {
	m[0] *= x
	m[1] *= x
	m[2] *= x
	m[3] *= x

	m[4] *= y
	m[5] *= y
	m[6] *= y
	m[7] *= y

	m[8] *= z
	m[9] *= z
	m[10] *= z
	m[11] *= z

	return m
}

// Rotate multiplies m with a rotation by angle around the axis (x, y, z)
// from the right. The axis does not need to be normalized. If the axis has
// (close to) zero length, m is left unchanged.
func (m *Mat4[T]) Rotate(angle Rad, x, y, z T) *Mat4[T] {
	m.rotate(angle, x, y, z)
	return m
}

func (m *Mat4[T]) rotate(angle Rad, x, y, z T) bool {
	length := T(math.Sqrt(float64(x*x + y*y + z*z)))
	if float64(length) < math.SmallestNonzeroFloat32 {
		return false
	}

	length = 1 / length
	x *= length
	y *= length
	z *= length

	s, c := sincos[T](angle)
	t := 1 - c

	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]

	// rodrigues rotation, one column per row of b
	b00 := x*x*t + c
	b01 := y*x*t + z*s
	b02 := z*x*t - y*s
	b10 := x*y*t - z*s
	b11 := y*y*t + c
	b12 := z*y*t + x*s
	b20 := x*z*t + y*s
	b21 := y*z*t - x*s
	b22 := z*z*t + c

	m[0] = a00*b00 + a10*b01 + a20*b02
	m[1] = a01*b00 + a11*b01 + a21*b02
	m[2] = a02*b00 + a12*b01 + a22*b02
	m[3] = a03*b00 + a13*b01 + a23*b02

	m[4] = a00*b10 + a10*b11 + a20*b12
	m[5] = a01*b10 + a11*b11 + a21*b12
	m[6] = a02*b10 + a12*b11 + a22*b12
	m[7] = a03*b10 + a13*b11 + a23*b12

	m[8] = a00*b20 + a10*b21 + a20*b22
	m[9] = a01*b20 + a11*b21 + a21*b22
	m[10] = a02*b20 + a12*b21 + a22*b22
	m[11] = a03*b20 + a13*b21 + a23*b22

	return true
}

// RotateX is Rotate(angle, 1, 0, 0), touching only columns 1 and 2.
func (m *Mat4[T]) RotateX(angle Rad) *Mat4[T] {
	s, c := sincos[T](angle)

	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]

	m[4] = a10*c + a20*s
	m[5] = a11*c + a21*s
	m[6] = a12*c + a22*s
	m[7] = a13*c + a23*s

	m[8] = a20*c - a10*s
	m[9] = a21*c - a11*s
	m[10] = a22*c - a12*s
	m[11] = a23*c - a13*s

	return m
}

// RotateY is Rotate(angle, 0, 1, 0), touching only columns 0 and 2.
func (m *Mat4[T]) RotateY(angle Rad) *Mat4[T] {
	s, c := sincos[T](angle)

	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]

	m[0] = a00*c - a20*s
	m[1] = a01*c - a21*s
	m[2] = a02*c - a22*s
	m[3] = a03*c - a23*s

	m[8] = a00*s + a20*c
	m[9] = a01*s + a21*c
	m[10] = a02*s + a22*c
	m[11] = a03*s + a23*c

	return m
}

// RotateZ is Rotate(angle, 0, 0, 1), touching only columns 0 and 1.
func (m *Mat4[T]) RotateZ(angle Rad) *Mat4[T] {
	s, c := sincos[T](angle)

	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]

	m[0] = a00*c + a10*s
	m[1] = a01*c + a11*s
	m[2] = a02*c + a12*s
	m[3] = a03*c + a13*s

	m[4] = a10*c - a00*s
	m[5] = a11*c - a01*s
	m[6] = a12*c - a02*s
	m[7] = a13*c - a03*s

	return m
}

func (m *Mat4[T]) Transpose() *Mat4[T] {
	// storage indices
	// 0  4  8 12
	// 1  5  9 13
	// 2  6 10 14
	// 3  7 11 15

	a01, a02, a03 := m[1], m[2], m[3]
	a12, a13 := m[6], m[7]
	a23 := m[11]

	m[1] = m[4]
	m[2] = m[8]
	m[3] = m[12]
	m[4] = a01
	m[6] = m[9]
	m[7] = m[13]
	m[8] = a02
	m[9] = a12
	m[11] = m[14]
	m[12] = a03
	m[13] = a13
	m[14] = a23

	return m
}

// Invert stores the inverse of src in m. src may be m itself.
//
// If src is singular, m keeps its previous contents. Callers that need to
// know about that should use TryInvert or Inverse.
func (m *Mat4[T]) Invert(src *Mat4[T]) *Mat4[T] {
	invert(m, src)
	return m
}

func invert[T Float](dst, src *Mat4[T]) bool {
	a00, a01, a02, a03 := src[0], src[1], src[2], src[3]
	a10, a11, a12, a13 := src[4], src[5], src[6], src[7]
	a20, a21, a22, a23 := src[8], src[9], src[10], src[11]
	a30, a31, a32, a33 := src[12], src[13], src[14], src[15]

	b00 := a00*a11 - a01*a10
	b01 := a00*a12 - a02*a10
	b02 := a00*a13 - a03*a10
	b03 := a01*a12 - a02*a11
	b04 := a01*a13 - a03*a11
	b05 := a02*a13 - a03*a12
	b06 := a20*a31 - a21*a30
	b07 := a20*a32 - a22*a30
	b08 := a20*a33 - a23*a30
	b09 := a21*a32 - a22*a31
	b10 := a21*a33 - a23*a31
	b11 := a22*a33 - a23*a32

	det := b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
	if det == 0 {
		return false
	}

	det = 1 / det

	dst[0] = (a11*b11 - a12*b10 + a13*b09) * det
	dst[1] = (a02*b10 - a01*b11 - a03*b09) * det
	dst[2] = (a31*b05 - a32*b04 + a33*b03) * det
	dst[3] = (a22*b04 - a21*b05 - a23*b03) * det
	dst[4] = (a12*b08 - a10*b11 - a13*b07) * det
	dst[5] = (a00*b11 - a02*b08 + a03*b07) * det
	dst[6] = (a32*b02 - a30*b05 - a33*b01) * det
	dst[7] = (a20*b05 - a22*b02 + a23*b01) * det
	dst[8] = (a10*b10 - a11*b08 + a13*b06) * det
	dst[9] = (a01*b08 - a00*b10 - a03*b06) * det
	dst[10] = (a30*b04 - a31*b02 + a33*b00) * det
	dst[11] = (a21*b02 - a20*b04 - a23*b00) * det
	dst[12] = (a11*b07 - a10*b09 - a12*b06) * det
	dst[13] = (a00*b09 - a01*b07 + a02*b06) * det
	dst[14] = (a31*b01 - a30*b03 - a32*b00) * det
	dst[15] = (a20*b03 - a21*b01 + a22*b00) * det

	return true
}

func (lhs Mat4[T]) Determinant() T {
	b00 := lhs[0]*lhs[5] - lhs[1]*lhs[4]
	b01 := lhs[0]*lhs[6] - lhs[2]*lhs[4]
	b02 := lhs[0]*lhs[7] - lhs[3]*lhs[4]
	b03 := lhs[1]*lhs[6] - lhs[2]*lhs[5]
	b04 := lhs[1]*lhs[7] - lhs[3]*lhs[5]
	b05 := lhs[2]*lhs[7] - lhs[3]*lhs[6]
	b06 := lhs[8]*lhs[13] - lhs[9]*lhs[12]
	b07 := lhs[8]*lhs[14] - lhs[10]*lhs[12]
	b08 := lhs[8]*lhs[15] - lhs[11]*lhs[12]
	b09 := lhs[9]*lhs[14] - lhs[10]*lhs[13]
	b10 := lhs[9]*lhs[15] - lhs[11]*lhs[13]
	b11 := lhs[10]*lhs[15] - lhs[11]*lhs[14]

	return b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
}

// Inverse returns the inverse of lhs. The boolean is false if lhs is
// singular, the returned matrix is lhs in that case.
func (lhs Mat4[T]) Inverse() (Mat4[T], bool) {
	result := lhs
	ok := invert(&result, &lhs)
	return result, ok
}

func (lhs Mat4[T]) Transposed() Mat4[T] {
	lhs.Transpose()
	return lhs
}

func (lhs Mat4[T]) Mul(rhs Mat4[T]) Mat4[T] {
	return Mat4[T]{
		lhs[0]*rhs[0] + lhs[4]*rhs[1] + lhs[8]*rhs[2] + lhs[12]*rhs[3],
		lhs[1]*rhs[0] + lhs[5]*rhs[1] + lhs[9]*rhs[2] + lhs[13]*rhs[3],
		lhs[2]*rhs[0] + lhs[6]*rhs[1] + lhs[10]*rhs[2] + lhs[14]*rhs[3],
		lhs[3]*rhs[0] + lhs[7]*rhs[1] + lhs[11]*rhs[2] + lhs[15]*rhs[3],
		lhs[0]*rhs[4] + lhs[4]*rhs[5] + lhs[8]*rhs[6] + lhs[12]*rhs[7],
		lhs[1]*rhs[4] + lhs[5]*rhs[5] + lhs[9]*rhs[6] + lhs[13]*rhs[7],
		lhs[2]*rhs[4] + lhs[6]*rhs[5] + lhs[10]*rhs[6] + lhs[14]*rhs[7],
		lhs[3]*rhs[4] + lhs[7]*rhs[5] + lhs[11]*rhs[6] + lhs[15]*rhs[7],
		lhs[0]*rhs[8] + lhs[4]*rhs[9] + lhs[8]*rhs[10] + lhs[12]*rhs[11],
		lhs[1]*rhs[8] + lhs[5]*rhs[9] + lhs[9]*rhs[10] + lhs[13]*rhs[11],
		lhs[2]*rhs[8] + lhs[6]*rhs[9] + lhs[10]*rhs[10] + lhs[14]*rhs[11],
		lhs[3]*rhs[8] + lhs[7]*rhs[9] + lhs[11]*rhs[10] + lhs[15]*rhs[11],
		lhs[0]*rhs[12] + lhs[4]*rhs[13] + lhs[8]*rhs[14] + lhs[12]*rhs[15],
		lhs[1]*rhs[12] + lhs[5]*rhs[13] + lhs[9]*rhs[14] + lhs[13]*rhs[15],
		lhs[2]*rhs[12] + lhs[6]*rhs[13] + lhs[10]*rhs[14] + lhs[14]*rhs[15],
		lhs[3]*rhs[12] + lhs[7]*rhs[13] + lhs[11]*rhs[14] + lhs[15]*rhs[15],
	}
}

func (lhs Mat4[T]) At(row, col int) T {
	return lhs[4*col+row]
}

func (m *Mat4[T]) Set(row, col int, value T) {
	m[4*col+row] = value
}

func (lhs Mat4[T]) Column(c int) [4]T {
	return [4]T(lhs[4*c : 4*c+4])
}

func (lhs Mat4[T]) Row(r int) [4]T {
	return [4]T{
		lhs[r+0],
		lhs[r+4],
		lhs[r+8],
		lhs[r+12],
	}
}

func (lhs Mat4[T]) IsZero() bool {
	return lhs == Mat4[T]{}
}

func (lhs Mat4[T]) IsIdentity() bool {
	return lhs == IdentityMat4[T]()
}

// IsFinite reports whether no element is NaN or infinite.
func (lhs Mat4[T]) IsFinite() bool {
	for _, value := range lhs {
		v := float64(value)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// ApproxEqual reports whether every element of lhs is within epsilon
// of the matching element in rhs.
func (lhs Mat4[T]) ApproxEqual(rhs Mat4[T], epsilon T) bool {
	for idx := range lhs {
		if math.Abs(float64(lhs[idx]-rhs[idx])) > float64(epsilon) {
			return false
		}
	}

	return true
}
