// Package protocol holds the byte codecs the firmware stores and sends:
// variable-length integers, CRC16 and small framed records.
package protocol

// Frame layout: length, tag, payload, crc16 (big endian), sync
const (
	FrameHeader  = 2
	FrameTrailer = 3
	FrameMin     = FrameHeader + FrameTrailer
	FrameMax     = 255 // total length must fit the header byte
	FrameSync    = 0x7E

	framePosLen = 0
	framePosTag = 1
)

// ScratchSize is the capacity of a ScratchOutput
const ScratchSize = 256
