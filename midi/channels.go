package midi

const noteChannels = LastNoteChannel - FirstNoteChannel + 1

// Allocator hands out note channels round robin, preferring a free
// channel. When all are busy the oldest position in the rotation is
// shared. The zero value is ready to use.
type Allocator struct {
	users [noteChannels]uint8
	next  uint8
}

// Acquire returns a zero-based MIDI channel for a new note
func (a *Allocator) Acquire() uint8 {
	for i := uint8(0); i < noteChannels; i++ {
		idx := (a.next + i) % noteChannels
		if a.users[idx] == 0 {
			return a.take(idx)
		}
	}
	return a.take(a.next)
}

func (a *Allocator) take(idx uint8) uint8 {
	if a.users[idx] < 255 {
		a.users[idx]++
	}
	a.next = (idx + 1) % noteChannels
	return idx + FirstNoteChannel
}

// Release returns a channel obtained from Acquire
func (a *Allocator) Release(ch uint8) {
	if ch < FirstNoteChannel || ch > LastNoteChannel {
		return
	}
	idx := ch - FirstNoteChannel
	if a.users[idx] > 0 {
		a.users[idx]--
	}
}

// InUse returns the number of channels with at least one note
func (a *Allocator) InUse() int {
	n := 0
	for _, u := range a.users {
		if u > 0 {
			n++
		}
	}
	return n
}

// Reset frees every channel
func (a *Allocator) Reset() {
	*a = Allocator{}
}
