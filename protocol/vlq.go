package protocol

import "errors"

var ErrTruncated = errors.New("protocol: truncated VLQ")

// vlqLimits are the half-open ranges that fit in 1..4 bytes. Each byte
// carries 7 bits, most significant group first; bits 5 and 6 of the first
// byte double as the sign.
var vlqLimits = [4]struct{ lo, hi int32 }{
	{-(1 << 5), 3 << 5},
	{-(1 << 12), 3 << 12},
	{-(1 << 19), 3 << 19},
	{-(1 << 26), 3 << 26},
}

// EncodeVLQInt appends v to output in one to five bytes
func EncodeVLQInt(output OutputBuffer, v int32) {
	var buf [5]byte
	n := 1
	for n < len(buf) && (v < vlqLimits[n-1].lo || v >= vlqLimits[n-1].hi) {
		n++
	}
	for i := 0; i < n; i++ {
		shift := uint(7 * (n - 1 - i))
		buf[i] = byte(v>>shift) & 0x7F
		if i < n-1 {
			buf[i] |= 0x80
		}
	}
	output.Output(buf[:n])
}

// EncodeVLQUint appends v using the signed encoding
func EncodeVLQUint(output OutputBuffer, v uint32) {
	EncodeVLQInt(output, int32(v))
}

// DecodeVLQInt reads one value from the front of *data and advances it
func DecodeVLQInt(data *[]byte) (int32, error) {
	buf := *data
	if len(buf) == 0 {
		return 0, ErrTruncated
	}
	c := uint32(buf[0])
	v := c & 0x7F
	if c&0x60 == 0x60 {
		v |= ^uint32(0x1F)
	}
	i := 1
	for c&0x80 != 0 {
		if i >= len(buf) {
			return 0, ErrTruncated
		}
		c = uint32(buf[i])
		v = v<<7 | c&0x7F
		i++
	}
	*data = buf[i:]
	return int32(v), nil
}

// DecodeVLQUint reads one unsigned value from the front of *data
func DecodeVLQUint(data *[]byte) (uint32, error) {
	v, err := DecodeVLQInt(data)
	return uint32(v), err
}
