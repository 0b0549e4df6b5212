package heap

import (
	"runtime"
	"testing"
)

// BenchmarkRealisticUsage compares malloc/free-style churn against Go's
// built-in allocator + GC for the access patterns the allocator targets:
// many small same-size allocations, struct-shaped allocations, and a
// multi-buffer request/response pattern.
func BenchmarkRealisticUsage(b *testing.B) {
	b.Run("ManySmallAllocs/Allocator", func(b *testing.B) {
		a := NewAllocator(64*1024, 0)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			bufs := make([][]byte, 100)
			for j := 0; j < 100; j++ {
				bufs[j] = a.Alloc(64)
			}
			for j := 0; j < 100; j++ {
				a.Free(bufs[j])
			}
		}
	})

	b.Run("ManySmallAllocs/Builtin", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			objects := make([][]byte, 100)
			for j := 0; j < 100; j++ {
				objects[j] = make([]byte, 64)
			}
			if i%10 == 0 {
				runtime.GC()
			}
		}
	})

	type testStruct struct {
		ID   int64
		Data [56]byte
	}

	b.Run("StructAllocs/Allocator", func(b *testing.B) {
		a := NewAllocator(64*1024, 0)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			ptrs := make([]*testStruct, 50)
			for j := 0; j < 50; j++ {
				s := AllocT[testStruct](a)
				s.ID = int64(j)
				ptrs[j] = s
			}
			for _, s := range ptrs {
				FreeT(a, s)
			}
		}
	})

	b.Run("StructAllocs/Builtin", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			structs := make([]*testStruct, 50)
			for j := 0; j < 50; j++ {
				structs[j] = &testStruct{ID: int64(j)}
			}
			if i%10 == 0 {
				runtime.GC()
			}
		}
	})

	b.Run("BufferReuse/Allocator", func(b *testing.B) {
		a := NewAllocator(1024*1024, 0)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 10; j++ {
				buf1 := a.Alloc(1024)
				buf2 := a.Alloc(2048)
				buf3 := a.Alloc(512)

				buf1[0] = byte(j)
				buf2[0] = byte(j)
				buf3[0] = byte(j)

				a.Free(buf1)
				a.Free(buf2)
				a.Free(buf3)
			}
		}
	})

	b.Run("BufferReuse/Builtin", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			buffers := make([][]byte, 30)
			for j := 0; j < 10; j++ {
				buffers[j*3] = make([]byte, 1024)
				buffers[j*3+1] = make([]byte, 2048)
				buffers[j*3+2] = make([]byte, 512)

				buffers[j*3][0] = byte(j)
				buffers[j*3+1][0] = byte(j)
				buffers[j*3+2][0] = byte(j)
			}
			if i%5 == 0 {
				runtime.GC()
			}
		}
	})

	b.Run("NoGCPressure/Allocator", func(b *testing.B) {
		a := NewAllocator(1024*1024, 0)
		runtime.GC()

		b.ResetTimer()
		var ptrs [1000][]byte
		for i := 0; i < b.N; i++ {
			idx := i % 1000
			if ptrs[idx] != nil {
				a.Free(ptrs[idx])
			}
			ptrs[idx] = a.Alloc(128)
		}
	})

	b.Run("NoGCPressure/Builtin", func(b *testing.B) {
		runtime.GC()

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = make([]byte, 128)
		}
	})
}

// BenchmarkFragmentedChurn stresses the free-list search and two-sided
// coalesce path: a ring of in-flight allocations of varying sizes, each
// slot freed before being replaced, so the free list never stays empty or
// uniform.
func BenchmarkFragmentedChurn(b *testing.B) {
	a := NewAllocator(256*1024, 0)
	sizes := []int{16, 32, 64, 128, 256}

	const ring = 64
	var inFlight [ring][]byte

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		slot := i % ring
		if inFlight[slot] != nil {
			a.Free(inFlight[slot])
		}
		inFlight[slot] = a.Alloc(sizes[i%len(sizes)])
	}
}
