//go:build rp2040 || rp2350

package main

import (
	"errors"
	"machine"

	"hexboard/protocol"
)

var errBlobSize = errors.New("flash: settings blob too large")

// flashPage is the program granularity; the blob is written as one page
const flashPage = 256

// flashStore keeps the settings blob in the last erase block of flash.
// The blob's first byte is its length, and erased flash reads 0xFF.
type flashStore struct {
	buf [flashPage]byte
}

func (f *flashStore) offset() int64 {
	return machine.Flash.Size() - machine.Flash.EraseBlockSize()
}

func (f *flashStore) Load() ([]byte, error) {
	if _, err := machine.Flash.ReadAt(f.buf[:], f.offset()); err != nil {
		return nil, err
	}
	n := int(f.buf[0])
	if n == 0xFF || n < protocol.FrameMin {
		return nil, nil
	}
	return f.buf[:n], nil
}

func (f *flashStore) Save(data []byte) error {
	if len(data) > protocol.FrameMax {
		return errBlobSize
	}
	block := f.offset() / machine.Flash.EraseBlockSize()
	if err := machine.Flash.EraseBlocks(block, 1); err != nil {
		return err
	}
	for i := range f.buf {
		f.buf[i] = 0xFF
	}
	copy(f.buf[:], data)
	_, err := machine.Flash.WriteAt(f.buf[:], f.offset())
	return err
}
