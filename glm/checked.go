package glm

import "errors"

var (
	ErrSingular       = errors.New("glm: matrix is singular")
	ErrDegenerateAxis = errors.New("glm: rotation axis has zero length")
)

// TryInvert is Invert, but reports a singular src instead of silently
// keeping the previous contents of m. m is unchanged on error.
func (m *Mat4[T]) TryInvert(src *Mat4[T]) error {
	if !invert(m, src) {
		return ErrSingular
	}

	return nil
}

// TryRotate is Rotate, but reports a zero length axis. m is unchanged on
// error.
func (m *Mat4[T]) TryRotate(angle Rad, x, y, z T) error {
	if !m.rotate(angle, x, y, z) {
		return ErrDegenerateAxis
	}

	return nil
}
