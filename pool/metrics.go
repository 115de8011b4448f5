package pool

import "unsafe"

// Metrics is a snapshot of pool occupancy.
type Metrics struct {
	Capacity    int     // Cells reserved
	Objects     int     // Live objects
	Free        int     // Cells on the free list
	Peak        int     // Highest Objects seen since New
	SlotSize    uintptr // Bytes per cell
	Utilization float64 // Objects / Capacity (0.0-1.0)
}

// Utilization returns the ratio of live objects to capacity.
// Returns 0.0 for a released pool.
func (p *Pool[T]) Utilization() float64 {
	if len(p.cells) == 0 {
		return 0
	}
	return float64(p.ObjectCount()) / float64(len(p.cells))
}

// Metrics returns a snapshot of pool statistics.
func (p *Pool[T]) Metrics() Metrics {
	var c cell[T]
	return Metrics{
		Capacity:    p.Capacity(),
		Objects:     p.ObjectCount(),
		Free:        p.FreeChunkCount(),
		Peak:        p.peak,
		SlotSize:    unsafe.Sizeof(c),
		Utilization: p.Utilization(),
	}
}
