package protocol

import (
	"bytes"
	"errors"
	"testing"
)

func TestVLQRoundTrip(t *testing.T) {
	testCases := []int32{
		0, 1, -1, 95, 96, -32, -33, 127, -128, 1000, -1000,
		12287, 12288, 65535, -65535, 1000000, -1000000,
		1<<31 - 1, -1 << 31,
	}

	for _, expected := range testCases {
		output := NewScratchOutput()
		EncodeVLQInt(output, expected)
		encoded := output.Result()

		data := encoded
		decoded, err := DecodeVLQInt(&data)
		if err != nil {
			t.Errorf("Failed to decode VLQ for value %d: %v", expected, err)
			continue
		}
		if decoded != expected {
			t.Errorf("VLQ mismatch: expected %d, got %d (encoded as %v)", expected, decoded, encoded)
		}
		if len(data) != 0 {
			t.Errorf("Value %d left %d bytes unread", expected, len(data))
		}
	}
}

func TestVLQLength(t *testing.T) {
	testCases := []struct {
		v    int32
		size int
	}{
		{0, 1}, {95, 1}, {-32, 1},
		{96, 2}, {-33, 2}, {12287, 2},
		{12288, 3}, {-4097, 3},
		{3 << 19, 4},
		{3 << 26, 5}, {-1 << 31, 5},
	}
	for _, tc := range testCases {
		output := NewScratchOutput()
		EncodeVLQInt(output, tc.v)
		if n := len(output.Result()); n != tc.size {
			t.Errorf("Value %d: expected %d bytes, got %d", tc.v, tc.size, n)
		}
	}
}

func TestVLQKnownBytes(t *testing.T) {
	output := NewScratchOutput()
	EncodeVLQInt(output, -1)
	EncodeVLQInt(output, 1000)
	if want := []byte{0x7F, 0x87, 0x68}; !bytes.Equal(output.Result(), want) {
		t.Errorf("Expected % X, got % X", want, output.Result())
	}
}

func TestVLQUint(t *testing.T) {
	for _, expected := range []uint32{0, 127, 128, 65535, 1000000} {
		output := NewScratchOutput()
		EncodeVLQUint(output, expected)
		data := output.Result()
		decoded, err := DecodeVLQUint(&data)
		if err != nil || decoded != expected {
			t.Errorf("Expected %d, got %d (%v)", expected, decoded, err)
		}
	}
}

func TestVLQTruncated(t *testing.T) {
	for _, data := range [][]byte{{}, {0x80}, {0x81, 0x80}} {
		in := data
		_, err := DecodeVLQInt(&in)
		if !errors.Is(err, ErrTruncated) {
			t.Errorf("% X: expected ErrTruncated, got %v", data, err)
		}
		if len(in) != len(data) {
			t.Errorf("% X: failed decode consumed input", data)
		}
	}
}
