// Package block provides the reserved byte regions the arena allocator
// carves objects out of.
package block

import (
	"unsafe"

	"github.com/pkg/errors"
)

// ErrMapUnsupported is returned by Map on platforms without anonymous mmap.
var ErrMapUnsupported = errors.New("block: anonymous mapping is not supported on this platform")

// Block is a fixed-size byte region owned by exactly one allocator.
type Block struct {
	buf    []byte
	mapped bool
}

// Heap reserves size bytes on the Go heap.
func Heap(size int) *Block {
	return &Block{buf: make([]byte, size)}
}

// Map reserves size bytes with an anonymous private mapping, outside the
// Go heap. The memory is zeroed by the kernel.
func Map(size int) (*Block, error) {
	buf, err := mapAnon(size)
	if err != nil {
		return nil, errors.Wrapf(err, "block: map %d bytes", size)
	}
	return &Block{buf: buf, mapped: true}, nil
}

// Bytes returns the whole region.
func (b *Block) Bytes() []byte {
	return b.buf
}

// Len returns the region size in bytes.
func (b *Block) Len() int {
	return len(b.buf)
}

// Base returns the address of the first byte, or 0 for an empty block.
func (b *Block) Base() uintptr {
	if len(b.buf) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b.buf[0]))
}

// Mapped reports whether the region lives outside the Go heap.
func (b *Block) Mapped() bool {
	return b.mapped
}

// Free gives the region back. A heap block is left to the garbage
// collector; a mapped block is unmapped. The block is empty afterwards.
func (b *Block) Free() error {
	buf := b.buf
	b.buf = nil
	if !b.mapped || buf == nil {
		return nil
	}
	b.mapped = false
	if err := unmap(buf); err != nil {
		return errors.Wrapf(err, "block: unmap %d bytes", len(buf))
	}
	return nil
}
