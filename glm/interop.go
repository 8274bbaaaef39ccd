package glm

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	imagef32 "golang.org/x/image/math/f32"
	mobilef32 "golang.org/x/mobile/exp/f32"
)

// mathgl stores its matrices column-major as well, conversion is a plain copy.

func (lhs Mat4[T]) ToMgl32() mgl32.Mat4 {
	var result mgl32.Mat4
	for idx, value := range lhs {
		result[idx] = float32(value)
	}

	return result
}

func FromMgl32[T Float](m mgl32.Mat4) Mat4[T] {
	var result Mat4[T]
	for idx, value := range m {
		result[idx] = T(value)
	}

	return result
}

func (lhs Mat4[T]) ToMgl64() mgl64.Mat4 {
	var result mgl64.Mat4
	for idx, value := range lhs {
		result[idx] = float64(value)
	}

	return result
}

func FromMgl64[T Float](m mgl64.Mat4) Mat4[T] {
	var result Mat4[T]
	for idx, value := range m {
		result[idx] = T(value)
	}

	return result
}

// ToMobile converts to the row indexed matrix of x/mobile, m[r][c] is the
// element in the r'th row and c'th column.
func (lhs Mat4[T]) ToMobile() mobilef32.Mat4 {
	var result mobilef32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			result[r][c] = float32(lhs[4*c+r])
		}
	}

	return result
}

func FromMobile[T Float](m mobilef32.Mat4) Mat4[T] {
	var result Mat4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			result[4*c+r] = T(m[r][c])
		}
	}

	return result
}

// ToImage converts to the row-major layout of x/image, m[4*r + c] is the
// element in the r'th row and c'th column.
func (lhs Mat4[T]) ToImage() imagef32.Mat4 {
	var result imagef32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			result[4*r+c] = float32(lhs[4*c+r])
		}
	}

	return result
}

func FromImage[T Float](m imagef32.Mat4) Mat4[T] {
	var result Mat4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			result[4*c+r] = T(m[4*r+c])
		}
	}

	return result
}
