package arena

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/pavanmanishd/framealloc/diag"
)

// Destroyer is implemented by types that have cleanup to run when the arena
// unwinds them. Destroy runs before the memory is zeroed.
type Destroyer interface {
	Destroy()
}

// Allocate copies v into the arena and returns its address, or nil if the
// arena is exhausted. T must not contain Go pointers.
func Allocate[T any](a *Arena, v T) *T {
	p := reserve[T](a)
	if p == nil {
		return nil
	}
	*p = v
	return p
}

// AllocateFunc hands zeroed arena memory to init for in-place construction
// and returns its address, or nil if the arena is exhausted.
func AllocateFunc[T any](a *Arena, init func(*T)) *T {
	p := reserve[T](a)
	if p == nil {
		return nil
	}
	if init != nil {
		init(p)
	}
	return p
}

func reserve[T any](a *Arena) *T {
	var zero T
	diag.Check(a.rep, isPlain[T](), "arena: %T holds Go pointers and cannot live in an arena", zero)
	// zero-size values still take a byte so every record moves the head
	size := max(unsafe.Sizeof(zero), 1)
	return (*T)(a.reserve(size, unsafe.Alignof(zero), destroyFunc[T]()))
}

// destroyFunc picks the unwind action for T while T is still known.
func destroyFunc[T any]() func(unsafe.Pointer) {
	if _, ok := any((*T)(nil)).(Destroyer); ok {
		return destroyAndClear[T]
	}
	return clearOnly[T]
}

func destroyAndClear[T any](p unsafe.Pointer) {
	v := (*T)(p)
	any(v).(Destroyer).Destroy()
	var zero T
	*v = zero
}

func clearOnly[T any](p unsafe.Pointer) {
	var zero T
	*(*T)(p) = zero
}

// plainTypes caches whether a type is free of Go pointers.
var plainTypes sync.Map

// isPlain reports whether T can be stored in memory the garbage collector
// does not scan.
func isPlain[T any]() bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if v, ok := plainTypes.Load(t); ok {
		return v.(bool)
	}
	plain := !hasPointers(t)
	plainTypes.Store(t, plain)
	return plain
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
