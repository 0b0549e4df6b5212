package heap

// DefaultSegmentCap is the default maximum number of chunk-header
// references a single segment (allocated or freed) may hold at once.
const DefaultSegmentCap = 1024

// segmentNode is one entry of a segment: a non-owning reference to a
// chunk header living at some offset in the arena's backing buffer.
// Exactly one segment holds a reference to a given header offset at any
// moment, except transiently while Free is coalescing.
type segmentNode struct {
	prev, next *segmentNode
	start      int // header offset within the arena buffer
}

// segment is a doubly linked list of segmentNodes. Insertion is always
// head-first, so iteration order is most-recent-first and carries no
// semantic weight beyond first-fit tie-breaking. Two segments exist per
// Allocator: allocated and freed.
type segment struct {
	name     string
	head     *segmentNode
	count    int
	capacity int
	// sizeOf reads the payload size of the chunk header at a given
	// offset. Injected rather than holding a reference to the arena
	// directly, so segment stays a plain list implementation.
	sizeOf func(start int) int
}

func newSegment(name string, capacity int, sizeOf func(start int) int) *segment {
	if capacity <= 0 {
		capacity = DefaultSegmentCap
	}
	return &segment{name: name, capacity: capacity, sizeOf: sizeOf}
}

// pushFront prepends a new node referencing the chunk header at start.
func (s *segment) pushFront(start int) *segmentNode {
	if s.count >= s.capacity {
		fatalf("segment", "%s segment capacity exceeded (%d entries)", s.name, s.capacity)
	}

	node := &segmentNode{start: start, next: s.head}
	if s.head != nil {
		s.head.prev = node
	}
	s.head = node
	s.count++
	return node
}

// unlink detaches node from the list, patching both neighbours (the
// standard doubly linked list contract, including the head and tail
// cases).
func (s *segment) unlink(node *segmentNode) {
	if node == nil {
		return
	}

	if node.prev != nil {
		node.prev.next = node.next
	} else {
		s.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	}
	node.prev, node.next = nil, nil
	s.count--
}

// findByStart performs a linear scan for the node whose header offset
// equals start, returning nil if none matches.
func (s *segment) findByStart(start int) *segmentNode {
	for n := s.head; n != nil; n = n.next {
		if n.start == start {
			return n
		}
	}
	return nil
}

// findByMinSize performs a linear scan for the first (head-order) node
// whose chunk payload size is >= n: the first-fit rule. No ordering is
// imposed on the list to optimize this; among several fitting nodes the
// most recently inserted one is found first.
func (s *segment) findByMinSize(n int) *segmentNode {
	for node := s.head; node != nil; node = node.next {
		if s.sizeOf(node.start) >= n {
			return node
		}
	}
	return nil
}
