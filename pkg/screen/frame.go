package screen

// DefaultFrameLimit bounds how large a single frame may grow. A full frame
// for even a very large terminal is far below this; the limit exists so a
// runaway append can never exhaust memory or corrupt buffered content.
const DefaultFrameLimit = 1 << 20

// Frame is the append buffer for one screen update. It is filled in a fixed
// composition order, drained once, and reused for the next cycle. A partial
// frame is never exposed to the writer.
type Frame struct {
	buf     []byte
	limit   int
	dropped int
}

// NewFrame creates an empty frame buffer. limit <= 0 selects
// DefaultFrameLimit.
func NewFrame(limit int) *Frame {
	if limit <= 0 {
		limit = DefaultFrameLimit
	}
	return &Frame{limit: limit}
}

// Append grows the buffer by exactly p, preserving prior content and order.
// An append that would exceed the frame limit is dropped whole and counted;
// content appended so far stays intact and the buffer remains usable.
func (f *Frame) Append(p []byte) {
	if len(f.buf)+len(p) > f.limit {
		f.dropped++
		return
	}
	f.buf = append(f.buf, p...)
}

// AppendString is Append for string data.
func (f *Frame) AppendString(s string) {
	if len(f.buf)+len(s) > f.limit {
		f.dropped++
		return
	}
	f.buf = append(f.buf, s...)
}

// Len returns the number of buffered bytes.
func (f *Frame) Len() int {
	return len(f.buf)
}

// Dropped returns how many appends were rejected by the frame limit.
func (f *Frame) Dropped() int {
	return f.dropped
}

// Drain returns the full accumulated byte sequence and resets the buffer to
// empty, keeping its capacity for the next cycle. The returned slice is only
// valid until the next Append.
func (f *Frame) Drain() []byte {
	out := f.buf
	f.buf = f.buf[:0]
	return out
}
