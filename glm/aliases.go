package glm

type Mat4f = Mat4[float32]
type Mat4d = Mat4[float64]
