package spine

// DefaultScratchCapacity is the minimum float capacity of a Scratch,
// enough for a 1024-vertex mesh at the full vertex stride.
const DefaultScratchCapacity = 8 * 1024

// Scratch is the reusable buffer slots compute world vertices into.
//
// Every RenderSlot call overwrites it, so a slot's output must be fully
// consumed before the next slot renders. A Scratch must not be used by
// two render passes at once; renderers that run on different goroutines
// need their own.
type Scratch struct {
	buf []float32
}

// NewScratch creates a scratch buffer with at least capacity floats.
func NewScratch(capacity int) *Scratch {
	if capacity < DefaultScratchCapacity {
		capacity = DefaultScratchCapacity
	}
	return &Scratch{buf: make([]float32, capacity)}
}

// Reserve returns the first n floats of the buffer, growing it when n
// exceeds the current capacity. Contents are not cleared.
func (s *Scratch) Reserve(n int) []float32 {
	if n > len(s.buf) {
		size := len(s.buf) * 2
		if size < n {
			size = n
		}
		Logger().Debug("spine: growing scratch buffer", "from", len(s.buf), "to", size)
		s.buf = make([]float32, size)
	}
	return s.buf[:n]
}

// Cap returns the current capacity in floats.
func (s *Scratch) Cap() int {
	return len(s.buf)
}
