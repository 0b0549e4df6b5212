package heap

import "unsafe"

// chunkHeader is the in-arena metadata prefix of a chunk. It records only
// the chunk's payload size; the chunk's identity (allocated vs. freed) and
// position are owned by the segment lists, not by the header itself.
type chunkHeader struct {
	size int
}

// headerSize is HEADER from the spec: the footprint of a chunkHeader,
// chosen by the Go compiler to be pointer-sized-or-larger and naturally
// aligned.
const headerSize = int(unsafe.Sizeof(chunkHeader{}))

// All address arithmetic on the arena lives in this file. Everywhere else,
// a chunk is addressed by its header offset into the arena's backing
// buffer, never by a raw unsafe.Pointer.

// headerAt returns the chunkHeader stored at the given byte offset of buf.
func headerAt(buf []byte, offset int) *chunkHeader {
	return (*chunkHeader)(unsafe.Pointer(&buf[offset]))
}

// payloadOffset returns the offset of a chunk's payload, given its header
// offset.
func payloadOffset(headerOffset int) int {
	return headerOffset + headerSize
}

// payloadSlice returns the n-byte payload slice for the chunk whose header
// starts at headerOffset.
func payloadSlice(buf []byte, headerOffset, n int) []byte {
	start := payloadOffset(headerOffset)
	return unsafe.Slice(&buf[start], n)
}

// headerOffsetOf recovers a chunk's header offset from a user pointer (a
// payload slice previously returned by Alloc) by walking headerSize bytes
// backwards within buf's backing array.
func headerOffsetOf(buf []byte, p []byte) int {
	base := uintptr(unsafe.Pointer(&buf[0]))
	payload := uintptr(unsafe.Pointer(&p[0]))
	return int(payload-base) - headerSize
}

// chunkEnd returns the offset one past the end of the chunk (header +
// payload) whose header starts at headerOffset and whose payload size is
// size.
func chunkEnd(headerOffset, size int) int {
	return headerOffset + headerSize + size
}
