package glm

import "golang.org/x/exp/constraints"

// Float is the element type of a matrix. Storage precision is picked at
// compile time, all trigonometry is evaluated in float64.
type Float interface {
	constraints.Float
}
