package mathutil

// Vec4 is a 4-component vector. X, Y, Z, W alias indices 0..3.
type Vec4[T Number] [Dim4]T

type Vec4f = Vec4[float32]

func V4[T Number](x, y, z, w T) Vec4[T] {
	return Vec4[T]{x, y, z, w}
}

func (v Vec4[T]) Len() int { return Dim4 }

// At returns component i. It panics with *IndexError if i is outside [0, 4).
func (v Vec4[T]) At(i int) T {
	checkIndex(i, Dim4)
	return v[i]
}

// Set overwrites component i. It panics with *IndexError if i is outside [0, 4).
func (v *Vec4[T]) Set(i int, x T) {
	checkIndex(i, Dim4)
	v[i] = x
}

func (v Vec4[T]) Lookup(i int) (T, error) { return lookup[T](v, i) }

func (v Vec4[T]) X() T { return v[0] }
func (v Vec4[T]) Y() T { return v[1] }
func (v Vec4[T]) Z() T { return v[2] }
func (v Vec4[T]) W() T { return v[3] }

func (v *Vec4[T]) SetX(x T) { v[0] = x }
func (v *Vec4[T]) SetY(y T) { v[1] = y }
func (v *Vec4[T]) SetZ(z T) { v[2] = z }
func (v *Vec4[T]) SetW(w T) { v[3] = w }

// XYZ drops the W component.
func (v Vec4[T]) XYZ() Vec3[T] {
	return Vec3[T]{v[0], v[1], v[2]}
}
