// Package heap implements a fixed-capacity memory arena with an explicit
// malloc/free interface, backed by first-fit allocation, splitting, and
// two-sided coalescing.
//
// # Overview
//
// Unlike a bump allocator, every allocation returned by this package can be
// freed individually. The allocator carves chunks out of a single
// statically sized byte region (the arena) and tracks which chunks are
// live and which are free in two doubly linked lists. Freeing a chunk
// merges it with any physically adjacent free chunk, on either side, so
// the free list never accumulates avoidable fragmentation.
//
// # Basic Usage
//
//	a := heap.NewAllocator(0, 0) // use the default arena/segment capacities
//
//	buf := a.Alloc(128)
//	// ... use buf ...
//	a.Free(buf)
//
// The package-level functions (Alloc, Free, IsFreed, ...) delegate to a
// single process-wide Allocator for callers that don't need more than one
// arena:
//
//	buf := heap.Alloc(64)
//	defer heap.Free(buf)
//
// # Thread Safety
//
// Neither Allocator nor the package-level wrappers synchronize access.
// Every operation must run to completion before the next begins; a caller
// embedding this package in a multithreaded host must serialize all calls
// externally (see the Non-goals in the allocator's design notes).
//
// # Memory Layout
//
// Every chunk is a header (one machine word, the payload size) followed
// immediately by the payload. The header address is a chunk's "start";
// the payload address, returned to callers, begins one header width after
// it. Bytes below the arena's watermark are always covered by exactly one
// chunk, live or free; bytes above it have never been carved.
//
// # Performance Characteristics
//
//   - Alloc: O(n) in the number of free chunks (first-fit scan), O(1)
//     when nothing is free and a fresh carve is possible
//   - Free: O(n) in the number of allocated chunks (pointer lookup) plus
//     the number of free chunks (coalesce scan)
//   - IsFreed: O(n) in the number of free chunks
//   - CheckPointer: O(1), it reads the chunk header directly
//   - CountAllocated / CountFreed: O(1)
//
// # Important Notes
//
//   - A zero-byte Alloc returns nil and changes no state; Free(nil) is a
//     no-op.
//   - Freeing a pointer not currently allocated (including a double free)
//     is fatal: the allocator panics rather than silently corrupting its
//     bookkeeping. See FatalError.
//   - There is no growth, no compaction, and no best-fit search. These are
//     explicit non-goals, not missing features.
package heap
