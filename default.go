package heap

// process-wide default Allocator, created at package initialization. There is
// exactly one owning *Allocator value; the package-level functions below
// are a thin delegating wrapper around it, for callers that don't need
// more than one arena.
var defaultAllocator = NewAllocator(0, 0)

// Alloc allocates req bytes from the process-wide default Allocator. See
// Allocator.Alloc.
func Alloc(req int) []byte { return defaultAllocator.Alloc(req) }

// Free releases p back to the process-wide default Allocator. See
// Allocator.Free.
func Free(p []byte) { defaultAllocator.Free(p) }

// IsFreed reports whether p is currently free in the process-wide default
// Allocator. See Allocator.IsFreed.
func IsFreed(p []byte) bool { return defaultAllocator.IsFreed(p) }

// CheckPointer asserts p's chunk against the process-wide default
// Allocator. See Allocator.CheckPointer.
func CheckPointer(p []byte, n int) { defaultAllocator.CheckPointer(p, n) }

// CountAllocated returns the process-wide default Allocator's allocated
// chunk count.
func CountAllocated() int { return defaultAllocator.CountAllocated() }

// CountFreed returns the process-wide default Allocator's free chunk
// count.
func CountFreed() int { return defaultAllocator.CountFreed() }

// Dump returns a diagnostic dump of the process-wide default Allocator.
func Dump() string { return defaultAllocator.Dump() }
