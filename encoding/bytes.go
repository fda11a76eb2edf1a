package encoding

import "github.com/arloliu/lzstring/endian"

// ByteUnitBits is the unit width packed by the byte-array adapter.
const ByteUnitBits = 16

var byteOrder = endian.GetBigEndianEngine()

// PackBytes serializes 16-bit units as byte pairs, high byte first.
func PackBytes(units []uint16) []byte {
	out := make([]byte, 0, len(units)*2)
	for _, u := range units {
		out = byteOrder.AppendUint16(out, u)
	}

	return out
}

// UnpackBytes pairs bytes back into 16-bit units and appends them to dst.
//
// Every byte value is valid. When len(data) is odd the trailing byte is the high
// byte of a short final unit whose low byte is zero; PackBytes never produces such
// input, but truncated transports do, and the codec then decides whether the stream
// is still complete.
func UnpackBytes(dst []uint16, data []byte) []uint16 {
	pairs := len(data) / 2
	for i := range pairs {
		dst = append(dst, byteOrder.Uint16(data[2*i:]))
	}
	if len(data)%2 == 1 {
		dst = append(dst, uint16(data[len(data)-1])<<8)
	}

	return dst
}
