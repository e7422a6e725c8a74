package memory

import "sync"

const (
	// Pool limits to prevent memory bloat
	initialOutputCap   = 64
	maxPooledOutputCap = 64 << 10
)

var outputPool = sync.Pool{
	New: func() any {
		return NewOutput()
	},
}

// GetOutput returns an empty OutputView from the pool.
func GetOutput() *OutputView {
	return outputPool.Get().(*OutputView)
}

// Release returns w to the pool. w must not be used afterwards.
func Release(w *OutputView) {
	if w == nil || cap(w.buf) > maxPooledOutputCap {
		return // reject oversized
	}
	w.Reset()
	outputPool.Put(w)
}
