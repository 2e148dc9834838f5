package serial

import (
	"bytes"
	"errors"
	"testing"
)

// mockPort accepts at most limit bytes per Write when limit > 0
type mockPort struct {
	written bytes.Buffer
	limit   int
	err     error
}

func (m *mockPort) Read(b []byte) (int, error) { return 0, nil }
func (m *mockPort) Close() error               { return nil }
func (m *mockPort) Flush() error               { return nil }

func (m *mockPort) Write(b []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.limit > 0 && len(b) > m.limit {
		b = b[:m.limit]
	}
	return m.written.Write(b)
}

func TestMIDIWriterFlush(t *testing.T) {
	port := &mockPort{}
	w := NewMIDIWriter(port, 16)

	w.Send([]byte{0x90, 60, 100})
	w.Send([]byte{0x80, 60, 0})
	if port.written.Len() != 0 {
		t.Fatal("Send wrote before Flush")
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x90, 60, 100, 0x80, 60, 0}
	if !bytes.Equal(port.written.Bytes(), want) {
		t.Errorf("Expected % X, got % X", want, port.written.Bytes())
	}
	if w.Pending() != 0 {
		t.Errorf("Expected empty queue, got %d bytes", w.Pending())
	}
}

func TestMIDIWriterQueueFull(t *testing.T) {
	w := NewMIDIWriter(&mockPort{}, 8)
	w.Send([]byte{1, 2, 3})
	w.Send([]byte{4, 5, 6})
	if err := w.Send([]byte{7, 8, 9}); !errors.Is(err, ErrQueueFull) {
		t.Errorf("Expected ErrQueueFull, got %v", err)
	}
	if w.Pending() != 6 {
		t.Errorf("A rejected message must not be queued in part, got %d bytes", w.Pending())
	}
}

func TestMIDIWriterShortWrites(t *testing.T) {
	port := &mockPort{limit: 2}
	w := NewMIDIWriter(port, 8)

	// wrap the ring so Flush has to write two runs
	w.Send([]byte{1, 2, 3, 4, 5})
	w.Flush()
	port.written.Reset()
	w.Send([]byte{6, 7, 8, 9, 10})
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	if want := []byte{6, 7, 8, 9, 10}; !bytes.Equal(port.written.Bytes(), want) {
		t.Errorf("Expected % X, got % X", want, port.written.Bytes())
	}
}

func TestMIDIWriterKeepsBytesOnError(t *testing.T) {
	port := &mockPort{err: errors.New("unplugged")}
	w := NewMIDIWriter(port, 8)
	w.Send([]byte{0xB0, 1, 64})
	if err := w.Flush(); err == nil {
		t.Fatal("Expected write error")
	}
	if w.Pending() != 3 {
		t.Errorf("Expected 3 bytes still queued, got %d", w.Pending())
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/dev/ttyUSB0")
	if cfg.Baud != 31250 || cfg.Device != "/dev/ttyUSB0" {
		t.Errorf("Unexpected config %+v", cfg)
	}
}
