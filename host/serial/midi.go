package serial

import (
	"errors"

	"hexboard/protocol"
)

var ErrQueueFull = errors.New("serial: MIDI queue full")

// MIDIWriter queues MIDI messages and writes them to a port on Flush, so
// the poll loop never blocks on the device.
type MIDIWriter struct {
	port  Port
	queue *protocol.FifoBuffer
}

// NewMIDIWriter queues up to queueSize-1 bytes between flushes
func NewMIDIWriter(port Port, queueSize int) *MIDIWriter {
	return &MIDIWriter{port: port, queue: protocol.NewFifoBuffer(queueSize)}
}

// Send queues one message whole or not at all
func (w *MIDIWriter) Send(msg []byte) error {
	if len(msg) > w.queue.Free() {
		return ErrQueueFull
	}
	w.queue.Write(msg)
	return nil
}

// Flush writes everything queued. On a write error the unwritten bytes
// stay queued.
func (w *MIDIWriter) Flush() error {
	for !w.queue.IsEmpty() {
		n, err := w.port.Write(w.queue.Peek())
		w.queue.Pop(n)
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
	}
	return nil
}

// Pending returns the number of queued bytes
func (w *MIDIWriter) Pending() int {
	return w.queue.Available()
}
