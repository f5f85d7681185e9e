package mathutil

import "math"

// Vec3 is a 3-component vector (value type, stack-allocated).
// Colors use it as (R, G, B); X, Y, Z alias indices 0, 1, 2.
type Vec3[T Number] [Dim3]T

type (
	Vec3f = Vec3[float32]
	Vec3i = Vec3[int]
)

func V3[T Number](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

func (v Vec3[T]) Len() int { return Dim3 }

// At returns component i. It panics with *IndexError if i is outside [0, 3).
func (v Vec3[T]) At(i int) T {
	checkIndex(i, Dim3)
	return v[i]
}

// Set overwrites component i. It panics with *IndexError if i is outside [0, 3).
func (v *Vec3[T]) Set(i int, x T) {
	checkIndex(i, Dim3)
	v[i] = x
}

func (v Vec3[T]) Lookup(i int) (T, error) { return lookup[T](v, i) }

func (v Vec3[T]) X() T { return v[0] }
func (v Vec3[T]) Y() T { return v[1] }
func (v Vec3[T]) Z() T { return v[2] }

func (v *Vec3[T]) SetX(x T) { v[0] = x }
func (v *Vec3[T]) SetY(y T) { v[1] = y }
func (v *Vec3[T]) SetZ(z T) { v[2] = z }

func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{v[0] * s, v[1] * s, v[2] * s}
}

func (a Vec3[T]) Dot(b Vec3[T]) T {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (v Vec3[T]) Norm() float64 {
	return math.Sqrt(float64(v.Dot(v)))
}
