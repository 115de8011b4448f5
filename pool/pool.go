package pool

import (
	"unsafe"

	"github.com/pavanmanishd/framealloc/diag"
)

// DefaultCapacity is the number of cells New reserves when asked for a
// non-positive capacity.
const DefaultCapacity = 1024

// Destroyer is implemented by types that hold something to clean up when
// their cell is reclaimed. Destroy runs before the value is zeroed.
type Destroyer interface {
	Destroy()
}

// cell is one slot of the block. The zero-length pointer array makes every
// cell pointer-aligned and at least pointer-sized whenever T is non-empty,
// so a free cell can hold its link in its first word.
type cell[T any] struct {
	_     [0]unsafe.Pointer
	value T
}

// link reinterprets the first word of a free cell as the next-free pointer.
func (c *cell[T]) link() **cell[T] {
	return (**cell[T])(unsafe.Pointer(c))
}

// Pool hands out values of T from a block reserved up front.
type Pool[T any] struct {
	_ noCopy

	cells []cell[T]
	first uintptr
	last  uintptr
	head  *cell[T]
	free  int
	peak  int

	rep diag.Reporter
}

// New reserves capacity cells of T. If capacity <= 0, DefaultCapacity is used.
func New[T any](capacity int, opts ...Option) *Pool[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	p := &Pool[T]{rep: diag.OrDefault(cfg.rep)}

	var zero T
	diag.Check(p.rep, unsafe.Sizeof(zero) > 0, "pool: element type %T has zero size", zero)

	p.cells = make([]cell[T], capacity)
	for i := 0; i < capacity-1; i++ {
		*p.cells[i].link() = &p.cells[i+1]
	}
	p.head = &p.cells[0]
	p.free = capacity
	p.first = uintptr(unsafe.Pointer(&p.cells[0]))
	p.last = uintptr(unsafe.Pointer(&p.cells[capacity-1]))
	return p
}

// Allocate stores v in a free cell and returns its address, or nil if the
// pool is exhausted.
func (p *Pool[T]) Allocate(v T) *T {
	c := p.take()
	if c == nil {
		return nil
	}
	c.value = v
	return &c.value
}

// AllocateFunc hands a zeroed cell to init for in-place construction and
// returns its address, or nil if the pool is exhausted.
func (p *Pool[T]) AllocateFunc(init func(*T)) *T {
	c := p.take()
	if c == nil {
		return nil
	}
	if init != nil {
		init(&c.value)
	}
	return &c.value
}

// take unlinks the head of the free list and leaves it zeroed.
func (p *Pool[T]) take() *cell[T] {
	p.checkLive()
	c := p.head
	if c == nil {
		return nil
	}
	link := c.link()
	p.head = *link
	*link = nil
	p.free--
	if n := len(p.cells) - p.free; n > p.peak {
		p.peak = n
	}
	return c
}

// Deallocate destroys the value at ptr and puts its cell on top of the free
// list. ptr must have been returned by this pool.
func (p *Pool[T]) Deallocate(ptr *T) {
	p.checkLive()
	diag.Check(p.rep, p.Contains(ptr), "pool: pointer %p was not allocated here", ptr)

	if d, ok := any(ptr).(Destroyer); ok {
		d.Destroy()
	}
	var zero T
	*ptr = zero

	c := (*cell[T])(unsafe.Pointer(ptr))
	*c.link() = p.head
	p.head = c
	p.free++
}

// Contains reports whether ptr addresses a cell of this pool.
func (p *Pool[T]) Contains(ptr *T) bool {
	if ptr == nil || p.cells == nil {
		return false
	}
	addr := uintptr(unsafe.Pointer(ptr))
	if addr < p.first || addr > p.last {
		return false
	}
	return (addr-p.first)%unsafe.Sizeof(p.cells[0]) == 0
}

// Release drops the block. Every object must have been deallocated; the
// pool cannot be used afterwards.
func (p *Pool[T]) Release() {
	p.checkLive()
	diag.Check(p.rep, p.ObjectCount() == 0, "pool: released with %d live objects", p.ObjectCount())
	p.cells = nil
	p.head = nil
	p.free = 0
	p.first, p.last = 0, 0
}

// ObjectCount returns the number of live objects.
func (p *Pool[T]) ObjectCount() int {
	return len(p.cells) - p.free
}

// FreeChunkCount returns the number of cells on the free list.
func (p *Pool[T]) FreeChunkCount() int {
	return p.free
}

// Capacity returns the number of cells reserved.
func (p *Pool[T]) Capacity() int {
	return len(p.cells)
}

func (p *Pool[T]) checkLive() {
	diag.Check(p.rep, p.cells != nil, "pool: use after Release()")
}

// noCopy makes go vet report copies of a Pool; outstanding pointers refer
// to the original's block.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
