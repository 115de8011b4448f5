package arena

import (
	"unsafe"

	"github.com/pkg/errors"

	"github.com/pavanmanishd/framealloc/diag"
	"github.com/pavanmanishd/framealloc/internal/block"
	"github.com/pavanmanishd/framealloc/internal/mathutil"
	"github.com/pavanmanishd/framealloc/stack"
)

// DefaultSize is the buffer size New reserves when asked for a
// non-positive size (1 KiB).
const DefaultSize = 1 << 10

// minDepth is the smallest default capacity of the record and marker stacks.
const minDepth = 16

// record is the bookkeeping kept for one live allocation.
type record struct {
	offset  uintptr // aligned offset of the object
	root    uintptr // head before alignment padding
	size    uintptr
	destroy func(unsafe.Pointer)
}

// Arena is a fixed-size bump allocator for values of different types.
// Allocations are released in LIFO order, either all at once with PopAll
// or back to a marker with PopMarker. Not goroutine-safe.
type Arena struct {
	_ noCopy

	blk  *block.Block
	buf  []byte
	base uintptr
	head uintptr

	records *stack.Stack[record]
	markers *stack.Stack[uintptr]

	dataBytes uintptr
	peak      uintptr

	rep diag.Reporter
}

// New reserves an arena of size bytes. If size <= 0, DefaultSize is used.
// An error is returned only when WithMapped is given and the mapping fails.
func New(size int, opts ...Option) (*Arena, error) {
	if size <= 0 {
		size = DefaultSize
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	rep := diag.OrDefault(cfg.rep)

	var blk *block.Block
	if cfg.mapped {
		b, err := block.Map(size)
		if err != nil {
			return nil, errors.Wrap(err, "arena: reserve buffer")
		}
		blk = b
	} else {
		blk = block.Heap(size)
	}

	maxAllocations := cfg.maxAllocations
	if maxAllocations <= 0 {
		maxAllocations = max(size/int(unsafe.Sizeof(record{})), minDepth)
	}
	maxMarkers := cfg.maxMarkers
	if maxMarkers <= 0 {
		maxMarkers = max(size/int(unsafe.Sizeof(uintptr(0))), minDepth)
	}

	return &Arena{
		blk:     blk,
		buf:     blk.Bytes(),
		base:    blk.Base(),
		records: stack.New[record](maxAllocations, rep),
		markers: stack.New[uintptr](maxMarkers, rep),
		rep:     rep,
	}, nil
}

// reserve carves size bytes aligned to align off the head and records
// destroy for the unwind. Returns nil if the buffer is exhausted; a full
// record stack is fatal.
func (a *Arena) reserve(size, align uintptr, destroy func(unsafe.Pointer)) unsafe.Pointer {
	a.checkLive()
	root := a.head
	aligned := root + mathutil.Padding(a.base+root, align)
	end := aligned + size
	if end > uintptr(len(a.buf)) {
		return nil
	}

	a.records.Push(record{offset: aligned, root: root, size: size, destroy: destroy})
	clear(a.buf[aligned:end])
	a.head = end
	a.dataBytes += size
	if end > a.peak {
		a.peak = end
	}
	return unsafe.Pointer(&a.buf[aligned])
}

// unwind destroys the object r describes.
func (a *Arena) unwind(r record) {
	a.dataBytes -= r.size
	r.destroy(unsafe.Pointer(&a.buf[r.offset]))
}

// PopAll destroys every live object, newest first, and resets the arena to
// empty. Outstanding markers are discarded.
func (a *Arena) PopAll() {
	a.checkLive()
	for !a.records.IsEmpty() {
		a.unwind(a.records.Pop())
	}
	a.head = 0
	a.markers.Clear()
}

// PushMarker saves the current head as a rollback point.
func (a *Arena) PushMarker() {
	a.checkLive()
	a.markers.Push(a.head)
}

// PopMarker destroys every object allocated since the last PushMarker,
// newest first, and restores the head to the marker.
func (a *Arena) PopMarker() {
	a.checkLive()
	diag.Check(a.rep, !a.markers.IsEmpty(), "arena: no markers to pop")
	m := a.markers.Pop()
	for a.head != m {
		diag.Check(a.rep, !a.records.IsEmpty(), "arena: marker at %d unreachable from head %d", m, a.head)
		r := a.records.Pop()
		a.head = r.root
		a.unwind(r)
	}
}

// Release gives the buffer back. The arena must be empty; it cannot be
// used afterwards.
func (a *Arena) Release() error {
	a.checkLive()
	diag.Check(a.rep, a.head == 0 && a.records.IsEmpty(),
		"arena: released with %d objects still on the stack", a.records.Len())
	a.markers.Clear()
	a.buf = nil
	a.base = 0
	if err := a.blk.Free(); err != nil {
		return errors.Wrap(err, "arena: release")
	}
	return nil
}

// ObjectCount returns the number of live allocations.
func (a *Arena) ObjectCount() int {
	return a.records.Len()
}

// MarkerCount returns the number of outstanding markers.
func (a *Arena) MarkerCount() int {
	return a.markers.Len()
}

// Offset returns the head: the offset the next allocation starts from,
// before alignment.
func (a *Arena) Offset() uintptr {
	return a.head
}

func (a *Arena) checkLive() {
	diag.Check(a.rep, a.buf != nil, "arena: use after Release()")
}

// noCopy makes go vet report copies of an Arena.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
