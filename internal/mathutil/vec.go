package mathutil

import (
	"errors"
	"fmt"
)

// Dimensions of the fixed-size vector types.
const (
	Dim2 = 2
	Dim3 = 3
	Dim4 = 4
)

// ErrIndexOutOfRange is wrapped by every out-of-bounds component access.
var ErrIndexOutOfRange = errors.New("mathutil: index out of range")

// Number is the set of element types a vector may hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Vector is the positional view shared by Vec2, Vec3 and Vec4.
type Vector[T Number] interface {
	Len() int
	At(i int) T
	Lookup(i int) (T, error)
}

// IndexError describes an access outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("mathutil: index %d out of range [0,%d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// checkIndex panics with *IndexError when i is not a valid component index.
func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic(&IndexError{Index: i, Len: n})
	}
}

func lookup[T Number](v Vector[T], i int) (T, error) {
	if i < 0 || i >= v.Len() {
		var zero T
		return zero, &IndexError{Index: i, Len: v.Len()}
	}
	return v.At(i), nil
}

// Components copies the components of any vector into a slice, in index order.
func Components[T Number](v Vector[T]) []T {
	out := make([]T, v.Len())
	for i := range out {
		out[i] = v.At(i)
	}
	return out
}
