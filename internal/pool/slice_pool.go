package pool

import "sync"

// Code unit buffer sizes.
const (
	UnitBufferDefaultSize  = 1024       // 2KiB of code units
	UnitBufferMaxThreshold = 1024 * 128 // 256KiB of code units
)

// UnitBuffer is a reusable buffer of UTF-16 code units.
//
// The decoder and the text adapters append into U and store the grown slice back,
// so the capacity is kept for the next user of the pool.
type UnitBuffer struct {
	U []uint16
}

var unitBufferPool = sync.Pool{
	New: func() any {
		return &UnitBuffer{U: make([]uint16, 0, UnitBufferDefaultSize)}
	},
}

// GetUnitBuffer retrieves an empty UnitBuffer from the pool.
//
// The caller must call PutUnitBuffer when done and must not retain U, or any slice
// of it, afterwards.
//
// Example:
//
//	buf := pool.GetUnitBuffer()
//	defer pool.PutUnitBuffer(buf)
//	buf.U = utf16.AppendRune(buf.U, r)
func GetUnitBuffer() *UnitBuffer {
	buf, _ := unitBufferPool.Get().(*UnitBuffer)
	buf.U = buf.U[:0]

	return buf
}

// PutUnitBuffer returns a UnitBuffer to the pool.
//
// Buffers that grew beyond UnitBufferMaxThreshold are dropped.
func PutUnitBuffer(buf *UnitBuffer) {
	if buf == nil || cap(buf.U) > UnitBufferMaxThreshold {
		return
	}

	buf.U = buf.U[:0]
	unitBufferPool.Put(buf)
}
