package protocol

import "errors"

var (
	ErrFrameTooLong = errors.New("protocol: payload too long for a frame")
	ErrFrameShort   = errors.New("protocol: frame truncated")
	ErrFrameLength  = errors.New("protocol: bad frame length")
	ErrFrameSync    = errors.New("protocol: missing frame sync")
	ErrFrameCRC     = errors.New("protocol: frame CRC mismatch")
)

// EncodeFrame writes payload to output sealed with its tag and CRC
func EncodeFrame(output OutputBuffer, tag byte, payload []byte) error {
	size := len(payload) + FrameMin
	if size > FrameMax {
		return ErrFrameTooLong
	}
	start := output.CurPosition()
	output.Output([]byte{byte(size), tag})
	output.Output(payload)
	crc := CRC16(output.DataSince(start))
	output.Output([]byte{byte(crc >> 8), byte(crc), FrameSync})
	return nil
}

// DecodeFrame checks the frame at the front of data and returns its tag
// and payload. The payload aliases data. n is the frame's total length.
func DecodeFrame(data []byte) (tag byte, payload []byte, n int, err error) {
	if len(data) < FrameMin {
		return 0, nil, 0, ErrFrameShort
	}
	n = int(data[framePosLen])
	if n < FrameMin {
		return 0, nil, 0, ErrFrameLength
	}
	if len(data) < n {
		return 0, nil, 0, ErrFrameShort
	}
	if data[n-1] != FrameSync {
		return 0, nil, 0, ErrFrameSync
	}
	want := uint16(data[n-FrameTrailer])<<8 | uint16(data[n-FrameTrailer+1])
	if CRC16(data[:n-FrameTrailer]) != want {
		return 0, nil, 0, ErrFrameCRC
	}
	return data[framePosTag], data[FrameHeader : n-FrameTrailer], n, nil
}
