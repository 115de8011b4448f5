package pool_test

import (
	"fmt"

	"github.com/pavanmanishd/framealloc/pool"
)

type bullet struct {
	X, Y float32
	TTL  int
}

// Example recycles a small set of bullets through a pool.
func Example() {
	p := pool.New[bullet](3)

	var live []*bullet
	for i := 0; i < 4; i++ {
		b := p.Allocate(bullet{TTL: 10 * (i + 1)})
		if b == nil {
			fmt.Println("pool exhausted")
			continue
		}
		live = append(live, b)
	}
	fmt.Printf("live: %d, free: %d\n", p.ObjectCount(), p.FreeChunkCount())

	p.Deallocate(live[1])
	reused := p.Allocate(bullet{TTL: 99})
	fmt.Printf("reused freed cell: %v\n", reused == live[1])

	live[1] = reused
	for _, b := range live {
		p.Deallocate(b)
	}
	p.Release()

	// Output:
	// pool exhausted
	// live: 3, free: 0
	// reused freed cell: true
}

func ExamplePool_Metrics() {
	p := pool.New[int64](8)
	a := p.Allocate(1)
	p.Allocate(2)
	p.Deallocate(a)

	m := p.Metrics()
	fmt.Printf("Objects: %d/%d (peak %d)\n", m.Objects, m.Capacity, m.Peak)
	fmt.Printf("Utilization: %.1f%%\n", m.Utilization*100)

	// Output:
	// Objects: 1/8 (peak 2)
	// Utilization: 12.5%
}
