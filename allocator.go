package heap

// Allocator is the malloc/free façade: it drives a fixed-capacity arena
// and two chunk segments (allocated, freed) together to preserve the
// disjointness, coverage, and free-list-maximality invariants described
// in the package's design notes.
//
// Allocator is not safe for concurrent use. Every operation must run to
// completion before the next begins; callers embedding it in a
// multithreaded host must serialize access externally.
type Allocator struct {
	arena     *arena
	allocated *segment
	freed     *segment
}

// NewAllocator creates an Allocator with the given arena and segment
// capacities. A value <= 0 for either uses its package default
// (DefaultArenaCap, DefaultSegmentCap).
func NewAllocator(arenaCap, segmentCap int) *Allocator {
	a := &Allocator{arena: newArena(arenaCap)}
	sizeOf := func(start int) int { return headerAt(a.arena.buf, start).size }
	a.allocated = newSegment("allocated", segmentCap, sizeOf)
	a.freed = newSegment("freed", segmentCap, sizeOf)
	return a
}

// Alloc returns a slice of at least req addressable bytes, or nil if
// req == 0. A req == 0 call changes no state.
//
// The free list is searched first-fit for a chunk whose payload can hold
// req; a match large enough to leave payload for its own header behind is
// split, with the residue reinserted into the free list. On a miss, fresh
// bytes are carved from the arena's watermark.
func (a *Allocator) Alloc(req int) []byte {
	if req <= 0 {
		return nil
	}

	if node := a.freed.findByMinSize(req); node != nil {
		return a.allocFromFree(node, req)
	}

	start := a.arena.carve(req)
	a.allocated.pushFront(start)
	return payloadSlice(a.arena.buf, start, req)
}

// allocFromFree reuses the free chunk referenced by node to satisfy req,
// splitting off a residue when enough payload is left over to host one.
func (a *Allocator) allocFromFree(node *segmentNode, req int) []byte {
	start := node.start
	hdr := headerAt(a.arena.buf, start)
	remain := hdr.size - req

	a.freed.unlink(node)
	hdr.size = req

	switch {
	case remain > headerSize:
		residueStart := chunkEnd(start, req)
		headerAt(a.arena.buf, residueStart).size = remain - headerSize
		a.freed.pushFront(residueStart)
	case remain > 0:
		// Not enough leftover payload to host a residue header of its
		// own (0 < remain <= headerSize): folding it into the allocated
		// chunk instead of orphaning header-less bytes. Every byte below
		// the watermark must stay covered by exactly one chunk, and a
		// residue chunk without room for its own header would violate
		// that.
		hdr.size = req + remain
	}

	a.allocated.pushFront(start)
	return payloadSlice(a.arena.buf, start, hdr.size)
}

// Free releases p, a slice previously returned by Alloc, back to the free
// list, coalescing it with any physically adjacent free chunk on either
// side. Free(nil) is a no-op. Freeing anything else not currently
// allocated (a foreign pointer or a double free) is fatal.
func (a *Allocator) Free(p []byte) {
	if p == nil {
		return
	}

	start := headerOffsetOf(a.arena.buf, p)
	node := a.allocated.findByStart(start)
	if node == nil {
		fatalf("free", "pointer not currently allocated (double free or foreign pointer)")
	}

	size := headerAt(a.arena.buf, start).size
	a.allocated.unlink(node)
	a.coalesceAndInsert(start, size)
}

// coalesceAndInsert is the heart of Free: it scans the freed list once,
// merging the newly freed [start, start+headerSize+size) span with any
// chunk immediately to its left, any chunk immediately to its right, or
// both at once, and otherwise inserts it as a new free chunk.
func (a *Allocator) coalesceAndInsert(start, size int) {
	var survivor *segmentNode

	for node := a.freed.head; node != nil; {
		next := node.next // capture before a possible unlink
		hdr := headerAt(a.arena.buf, node.start)

		switch {
		case chunkEnd(node.start, hdr.size) == start:
			// node sits immediately to the left: absorb the running
			// region into node's header and keep scanning from there.
			hdr.size += size + headerSize
			start, size = node.start, hdr.size
			if survivor == nil {
				survivor = node
			} else if survivor != node {
				old := survivor
				survivor = node
				a.freed.unlink(old)
			}

		case node.start == chunkEnd(start, size):
			// node sits immediately to the right: fold it into the
			// running region.
			merged := size + hdr.size + headerSize
			if survivor == nil {
				node.start = start
				headerAt(a.arena.buf, start).size = merged
				survivor = node
			} else if survivor != node {
				headerAt(a.arena.buf, survivor.start).size = merged
				a.freed.unlink(node)
			}
			size = merged
		}

		node = next
	}

	if survivor == nil {
		a.freed.pushFront(start)
	}
}
