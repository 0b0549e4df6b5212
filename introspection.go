package heap

import (
	"fmt"
	"strings"
)

// CountAllocated returns the number of currently allocated chunks.
func (a *Allocator) CountAllocated() int {
	return a.allocated.count
}

// CountFreed returns the number of currently free chunks.
func (a *Allocator) CountFreed() int {
	return a.freed.count
}

// IsFreed reports whether p's chunk is currently on the free list. p must
// not be the null sentinel (nil); violating that precondition is fatal.
func (a *Allocator) IsFreed(p []byte) bool {
	if p == nil {
		fatalf("is_freed", "p must not be nil")
	}
	start := headerOffsetOf(a.arena.buf, p)
	return a.freed.findByStart(start) != nil
}

// CheckPointer is an assertion helper, primarily useful from tests: if n
// == 0, p must be the null sentinel (nil); otherwise p must be non-nil
// and its chunk's payload size must be >= n. A violation is fatal.
func (a *Allocator) CheckPointer(p []byte, n int) {
	if n == 0 {
		if p != nil {
			fatalf("check_pointer", "expected nil for a zero-size allocation, got %d bytes", len(p))
		}
		return
	}

	if p == nil {
		fatalf("check_pointer", "expected a non-nil pointer for a %d-byte allocation", n)
	}
	start := headerOffsetOf(a.arena.buf, p)
	size := headerAt(a.arena.buf, start).size
	if size < n {
		fatalf("check_pointer", "chunk size %d is smaller than expected %d", size, n)
	}
}

// Stats is a snapshot of allocator-wide bookkeeping, useful for
// diagnostics and tests.
type Stats struct {
	Watermark      int
	Capacity       int
	CountAllocated int
	CountFreed     int
	Utilization    float64
}

// Stats returns a point-in-time snapshot of the allocator's bookkeeping.
func (a *Allocator) Stats() Stats {
	cap := a.arena.capacity()
	var utilization float64
	if cap > 0 {
		utilization = float64(a.arena.watermark) / float64(cap)
	}
	return Stats{
		Watermark:      a.arena.watermark,
		Capacity:       cap,
		CountAllocated: a.allocated.count,
		CountFreed:     a.freed.count,
		Utilization:    utilization,
	}
}

// Dump returns a human-readable description of both segments, purely for
// diagnostics; its format is not part of this package's API contract.
// Each line names a segment, its count, then every chunk's
// header/start/end/size.
func (a *Allocator) Dump() string {
	var b strings.Builder
	fmt.Fprintln(&b, "----------------------------------")
	a.dumpSegment(&b, a.allocated)
	a.dumpSegment(&b, a.freed)
	fmt.Fprintln(&b, "----------------------------------")
	return b.String()
}

func (a *Allocator) dumpSegment(b *strings.Builder, s *segment) {
	fmt.Fprintf(b, "%s \t#%d\n", s.name, s.count)
	if s.count == 0 {
		fmt.Fprintln(b, "   - no chunk found")
		return
	}
	for n := s.head; n != nil; n = n.next {
		size := headerAt(a.arena.buf, n.start).size
		fmt.Fprintf(b, "   - header: %#x, start: %#x, end: %#x, size: %d\n",
			n.start, payloadOffset(n.start), chunkEnd(n.start, size), size)
	}
}
