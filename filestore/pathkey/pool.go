package pathkey

import "sync"

// maxPooledScratch caps the buffers kept in the pool; longer paths get a
// one-off allocation.
const maxPooledScratch = 1024

type scratchBuf struct {
	b []byte
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{b: make([]byte, 0, 256)} },
}

func acquire(n int) *scratchBuf {
	s := scratchPool.Get().(*scratchBuf)
	if cap(s.b) < n {
		s.b = make([]byte, 0, n)
	}
	s.b = s.b[:0]
	return s
}

func release(s *scratchBuf) {
	if cap(s.b) > maxPooledScratch {
		return
	}
	scratchPool.Put(s)
}
