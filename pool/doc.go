// Package pool implements a fixed-capacity allocator for objects of a
// single type.
//
// # Overview
//
// A Pool reserves storage for exactly N values of T when it is created and
// hands out and takes back individual values in O(1). It never grows and
// never returns memory to the runtime until Release.
//
// # Free List
//
// Unused cells form an intrusive free list: the first machine word of every
// free cell holds the address of the next free cell. No storage exists for
// the list beyond the cells themselves. A cell is either live (holds a T)
// or free (holds a link), and only Allocate and Deallocate switch it.
// The most recently deallocated cell is the next one Allocate returns.
//
// # Basic Usage
//
//	particles := pool.New[Particle](4096)
//	defer particles.Release()
//
//	p := particles.Allocate(Particle{TTL: 30})
//	if p == nil {
//		// pool exhausted
//	}
//	particles.Deallocate(p)
//
// # Failure Policy
//
// Exhaustion is not an error: Allocate returns nil and the caller decides.
// Handing Deallocate a pointer that does not lie on a cell of this pool,
// releasing a pool with live objects and using a released pool are
// programmer errors reported through the pool's diag.Reporter.
//
// Deallocating the same pointer twice is not detected. The cell is linked
// into the free list a second time, which forms a cycle, and two later
// Allocate calls return the same address.
//
// # Thread Safety
//
// A Pool is not safe for concurrent use.
package pool
