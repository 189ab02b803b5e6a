package testutil

import (
	"bytes"
	"strings"
	"sync"
)

// LogBuffer is a goroutine-safe io.Writer for capturing structured log
// output in tests. Workers log concurrently, so a plain bytes.Buffer
// would race.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewLogBuffer creates an empty LogBuffer.
func NewLogBuffer() *LogBuffer {
	return &LogBuffer{}
}

// Write implements io.Writer.
func (lb *LogBuffer) Write(p []byte) (int, error) {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.buf.Write(p)
}

// String returns the current buffer contents.
func (lb *LogBuffer) String() string {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.buf.String()
}

// Contains reports whether the captured output contains s.
func (lb *LogBuffer) Contains(s string) bool {
	return strings.Contains(lb.String(), s)
}

// Len returns the current buffer length.
func (lb *LogBuffer) Len() int {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.buf.Len()
}

// Reset clears the buffer.
func (lb *LogBuffer) Reset() {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.buf.Reset()
}
