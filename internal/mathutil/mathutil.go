// Package mathutil holds the alignment arithmetic of the arena allocator.
package mathutil

// Unsigned is the set of integer types addresses and offsets are kept in.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// NextMultiple returns the smallest multiple of multipleOf that is >= value.
// multipleOf must be non-zero.
func NextMultiple[T Unsigned](multipleOf, value T) T {
	multiple := value + multipleOf - 1
	multiple -= multiple % multipleOf
	return multiple
}

// Padding returns how many bytes must be skipped from offset to reach the
// next multiple of align.
func Padding[T Unsigned](offset, align T) T {
	return NextMultiple(align, offset) - offset
}
