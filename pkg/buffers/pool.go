// Package buffers maintains pools of reusable byte slices for scratch
// work: corpus line scanning and benchmark payload staging. Pooled
// buffers never back a published string value; string storage is always
// freshly owned.
package buffers

import (
	"sync"
)

const (
	// DefaultScanSize is the default buffer size for line scanning.
	DefaultScanSize = 64 * 1024

	// DefaultPayloadSize is the default size for benchmark payload
	// staging buffers.
	DefaultPayloadSize = 4096
)

// Pool maintains byte slices of a fixed size to reduce GC pressure.
type Pool struct {
	pool sync.Pool
	size int
}

// NewPool creates a pool handing out buffers of the given size.
func NewPool(size int) *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() interface{} {
				buf := make([]byte, size)
				return &buf
			},
		},
		size: size,
	}
}

// Get retrieves a buffer from the pool, resized to the pool's standard
// length.
func (p *Pool) Get() []byte {
	buffer := *(p.pool.Get().(*[]byte))
	if cap(buffer) < p.size {
		buffer = make([]byte, p.size)
	} else {
		buffer = buffer[:p.size]
	}
	return buffer
}

// Put returns a buffer to the pool. Undersized buffers are dropped.
func (p *Pool) Put(buffer []byte) {
	if buffer == nil || cap(buffer) < p.size {
		return
	}
	buffer = buffer[:p.size]
	p.pool.Put(&buffer)
}

// Global pool instances for the common cases.
var (
	// ScanBufferPool backs bufio scanners reading corpus files.
	ScanBufferPool = NewPool(DefaultScanSize)

	// PayloadBufferPool stages generated benchmark payloads.
	PayloadBufferPool = NewPool(DefaultPayloadSize)
)
