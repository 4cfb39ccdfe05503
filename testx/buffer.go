package testx

import (
	"bytes"
	"sync"
)

// ConcurrentBuffer is a bytes.Buffer safe for writers on multiple goroutines,
// for capturing log output from concurrent handlers in tests.
type ConcurrentBuffer struct {
	mu sync.RWMutex
	b  bytes.Buffer
}

func NewConcurrentBuffer() *ConcurrentBuffer {
	return &ConcurrentBuffer{}
}

func (c *ConcurrentBuffer) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.Write(p)
}

func (c *ConcurrentBuffer) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.b.String()
}
