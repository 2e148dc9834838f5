package protocol

// OutputBuffer is a write cursor the encoders append to
type OutputBuffer interface {
	Output(data []byte)
	CurPosition() int
	// DataSince returns everything written from pos onwards
	DataSince(pos int) []byte
}

// ScratchOutput is a fixed OutputBuffer that needs no allocation. Writes
// past ScratchSize are dropped; check Overflowed before trusting Result.
type ScratchOutput struct {
	buf      [ScratchSize]byte
	pos      int
	overflow bool
}

func NewScratchOutput() *ScratchOutput {
	return &ScratchOutput{}
}

func (s *ScratchOutput) Output(data []byte) {
	n := copy(s.buf[s.pos:], data)
	s.pos += n
	if n < len(data) {
		s.overflow = true
	}
}

func (s *ScratchOutput) CurPosition() int {
	return s.pos
}

func (s *ScratchOutput) DataSince(pos int) []byte {
	if pos > s.pos {
		return nil
	}
	return s.buf[pos:s.pos]
}

// Result returns the bytes written so far
func (s *ScratchOutput) Result() []byte {
	return s.buf[:s.pos]
}

// Overflowed reports whether any write was truncated since the last Reset
func (s *ScratchOutput) Overflowed() bool {
	return s.overflow
}

func (s *ScratchOutput) Reset() {
	s.pos = 0
	s.overflow = false
}

// FifoBuffer is a byte ring. One slot stays empty to tell full from empty.
type FifoBuffer struct {
	buf   []byte
	read  int
	write int
}

// NewFifoBuffer holds up to capacity-1 bytes
func NewFifoBuffer(capacity int) *FifoBuffer {
	return &FifoBuffer{buf: make([]byte, capacity)}
}

// Write queues as much of data as fits and returns the count
func (f *FifoBuffer) Write(data []byte) int {
	n := 0
	for _, b := range data {
		next := (f.write + 1) % len(f.buf)
		if next == f.read {
			break
		}
		f.buf[f.write] = b
		f.write = next
		n++
	}
	return n
}

// Read dequeues up to len(data) bytes
func (f *FifoBuffer) Read(data []byte) int {
	n := 0
	for n < len(data) && f.read != f.write {
		data[n] = f.buf[f.read]
		f.read = (f.read + 1) % len(f.buf)
		n++
	}
	return n
}

// Peek returns the queued bytes without consuming them. When the ring has
// wrapped only the first contiguous run is returned.
func (f *FifoBuffer) Peek() []byte {
	if f.read <= f.write {
		return f.buf[f.read:f.write]
	}
	return f.buf[f.read:]
}

// Pop discards up to n queued bytes
func (f *FifoBuffer) Pop(n int) {
	for ; n > 0 && f.read != f.write; n-- {
		f.read = (f.read + 1) % len(f.buf)
	}
}

func (f *FifoBuffer) Available() int {
	if f.write >= f.read {
		return f.write - f.read
	}
	return len(f.buf) - f.read + f.write
}

func (f *FifoBuffer) Free() int {
	return len(f.buf) - f.Available() - 1
}

func (f *FifoBuffer) IsEmpty() bool {
	return f.read == f.write
}

func (f *FifoBuffer) Reset() {
	f.read, f.write = 0, 0
}
