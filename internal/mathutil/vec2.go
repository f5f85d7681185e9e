package mathutil

// Vec2 is a 2-component vector (value type, stack-allocated).
// X and Y name components 0 and 1 of the same array.
type Vec2[T Number] [Dim2]T

type (
	Vec2f = Vec2[float32]
	Vec2i = Vec2[int]
)

func V2[T Number](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

func (v Vec2[T]) Len() int { return Dim2 }

// At returns component i. It panics with *IndexError if i is outside [0, 2).
func (v Vec2[T]) At(i int) T {
	checkIndex(i, Dim2)
	return v[i]
}

// Set overwrites component i. It panics with *IndexError if i is outside [0, 2).
func (v *Vec2[T]) Set(i int, x T) {
	checkIndex(i, Dim2)
	v[i] = x
}

func (v Vec2[T]) Lookup(i int) (T, error) { return lookup[T](v, i) }

func (v Vec2[T]) X() T { return v[0] }
func (v Vec2[T]) Y() T { return v[1] }

func (v *Vec2[T]) SetX(x T) { v[0] = x }
func (v *Vec2[T]) SetY(y T) { v[1] = y }
