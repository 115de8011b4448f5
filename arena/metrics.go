package arena

// SizeInUse returns the number of bytes between the start of the buffer
// and the head. This includes alignment padding.
func (a *Arena) SizeInUse() int {
	return int(a.head)
}

// Capacity returns the buffer size in bytes, or 0 after Release.
func (a *Arena) Capacity() int {
	return len(a.buf)
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// Peak returns the highest head reached since New.
func (a *Arena) Peak() int {
	return int(a.peak)
}

// PaddingOverhead returns the bytes in use that belong to no object.
func (a *Arena) PaddingOverhead() int {
	return int(a.head - a.dataBytes)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		Objects:     a.ObjectCount(),
		Markers:     a.MarkerCount(),
		Peak:        a.Peak(),
		Padding:     a.PaddingOverhead(),
		Mapped:      a.blk.Mapped(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Bytes between buffer start and head
	Capacity    int     // Buffer size in bytes
	Objects     int     // Live allocations
	Markers     int     // Outstanding markers
	Peak        int     // Highest SizeInUse seen
	Padding     int     // Alignment bytes inside SizeInUse
	Mapped      bool    // Buffer lives outside the Go heap
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}
