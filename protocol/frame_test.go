package protocol

import (
	"bytes"
	"errors"
	"testing"
)

func TestFrameRoundTrip(t *testing.T) {
	output := NewScratchOutput()
	if err := EncodeFrame(output, 1, []byte{0x2A}); err != nil {
		t.Fatal(err)
	}
	want := []byte{6, 1, 0x2A, 0x00, 0x00, FrameSync}
	crc := CRC16(want[:3])
	want[3], want[4] = byte(crc>>8), byte(crc)
	if !bytes.Equal(output.Result(), want) {
		t.Fatalf("Expected % X, got % X", want, output.Result())
	}

	tag, payload, n, err := DecodeFrame(append(output.Result(), 0xFF))
	if err != nil {
		t.Fatal(err)
	}
	if tag != 1 || n != 6 || !bytes.Equal(payload, []byte{0x2A}) {
		t.Errorf("Decoded tag=%d n=%d payload=% X", tag, n, payload)
	}
}

func TestFrameAfterExistingData(t *testing.T) {
	output := NewScratchOutput()
	output.Output([]byte{9, 9})
	if err := EncodeFrame(output, 3, nil); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := DecodeFrame(output.Result()[2:]); err != nil {
		t.Errorf("CRC must cover only the frame: %v", err)
	}
}

func TestFrameTooLong(t *testing.T) {
	output := NewScratchOutput()
	err := EncodeFrame(output, 0, make([]byte, FrameMax-FrameMin+1))
	if !errors.Is(err, ErrFrameTooLong) {
		t.Errorf("Expected ErrFrameTooLong, got %v", err)
	}
	if output.CurPosition() != 0 {
		t.Error("Rejected frame wrote output")
	}
}

func TestFrameCorruption(t *testing.T) {
	output := NewScratchOutput()
	EncodeFrame(output, 2, []byte{1, 2, 3})
	good := append([]byte(nil), output.Result()...)

	mutate := func(f func(b []byte) []byte) []byte {
		return f(append([]byte(nil), good...))
	}
	testCases := []struct {
		name string
		data []byte
		err  error
	}{
		{"truncated", good[:len(good)-1], ErrFrameShort},
		{"tiny", good[:3], ErrFrameShort},
		{"length", mutate(func(b []byte) []byte { b[0] = 2; return b }), ErrFrameLength},
		{"sync", mutate(func(b []byte) []byte { b[len(b)-1] = 0; return b }), ErrFrameSync},
		{"payload", mutate(func(b []byte) []byte { b[3] ^= 0x40; return b }), ErrFrameCRC},
		{"tag", mutate(func(b []byte) []byte { b[1] = 7; return b }), ErrFrameCRC},
	}
	for _, tc := range testCases {
		if _, _, _, err := DecodeFrame(tc.data); !errors.Is(err, tc.err) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.err, err)
		}
	}
}
