// Package arena implements a fixed-size LIFO allocator for values of
// different types.
//
// # Overview
//
// An Arena owns one contiguous buffer and a head offset. Every allocation
// aligns the head for its type, places the value there and moves the head
// past it. Nothing is freed individually: objects leave the arena newest
// first, either all at once or back to a marker. This fits memory whose
// lifetime follows a loop, such as the temporaries of one frame or one
// request.
//
// # Basic Usage
//
//	a, err := arena.New(64 << 10)
//	if err != nil {
//		return err
//	}
//
//	pos := arena.Allocate(a, Vec3{X: 1})
//	if pos == nil {
//		// arena exhausted
//	}
//	hits := arena.AllocateFunc(a, func(h *[16]int32) { h[0] = -1 })
//
//	a.PopAll()
//	if err := a.Release(); err != nil {
//		return err
//	}
//
// # Markers
//
// PushMarker saves the head. PopMarker unwinds every object allocated since
// then, newest first, and puts the head back exactly where it was, so the
// next allocation reuses the same addresses:
//
//	a.PushMarker()
//	for _, e := range entities {
//		scratch := arena.Allocate(a, contact{ID: e.ID})
//		...
//	}
//	a.PopMarker()
//
// Markers nest. PopAll discards all of them.
//
// # Destruction
//
// When *T implements Destroyer, Destroy runs on every T the arena unwinds.
// Every unwound value is then zeroed.
//
// # Memory Layout
//
// The buffer is a Go byte slice, or an anonymous memory mapping with
// WithMapped. Each allocation occupies at least one byte. Offsets are
// aligned against the real address of the buffer, so alignment holds for
// mapped and heap buffers alike. Padding between objects is reported by
// PaddingOverhead.
//
// # Pointer-Free Values
//
// The garbage collector does not scan arena memory. A type that holds Go
// pointers (pointers, strings, slices, maps, channels, funcs, interfaces)
// is rejected the first time it is allocated. Use indexes or handles into
// Go-managed storage instead.
//
// # Failure Policy
//
// Running out of buffer is ordinary: Allocate returns nil. Misuse is fatal
// and goes to the arena's diag.Reporter: allocating past WithMaxAllocations,
// popping a marker that does not exist, pushing past WithMaxMarkers,
// releasing a non-empty arena, or touching an arena after Release.
//
// # Thread Safety
//
// An Arena is not safe for concurrent use. Keep one per goroutine.
//
// # Metrics
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Padding: %d bytes\n", m.Padding)
package arena
