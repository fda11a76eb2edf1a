// Package endian provides the byte order used when code units are serialized as bytes.
//
// Compressed streams are sequences of 16-bit code units. The byte-array adapter
// writes every unit high byte first, which is big endian:
//
//	engine := endian.GetBigEndianEngine()
//	buf = engine.AppendUint16(buf, unit)
//
// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder, so the append
// form can be used on hot paths without a scratch buffer.
//
// All engines are immutable and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine, the byte order of the byte-array
// adapter.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
