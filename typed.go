package heap

import "unsafe"

// AllocT returns a pointer to a zeroed T carved from a. The returned
// pointer aliases arena-owned memory: it is only valid until FreeT(a, p)
// is called or the chunk is otherwise absorbed by a coalesce. Unlike a
// bump allocation, every AllocT allocation is a regular freeable chunk
// and must be paired with FreeT.
func AllocT[T any](a *Allocator) *T {
	var zero T
	b := a.Alloc(int(unsafe.Sizeof(zero)))
	if b == nil {
		return nil
	}
	clear(b)
	return (*T)(unsafe.Pointer(&b[0]))
}

// FreeT releases a pointer previously returned by AllocT[T](a).
func FreeT[T any](a *Allocator, p *T) {
	if p == nil {
		return
	}
	size := int(unsafe.Sizeof(*p))
	a.Free(unsafe.Slice((*byte)(unsafe.Pointer(p)), size))
}
