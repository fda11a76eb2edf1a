package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines(t *testing.T) {
	require.Equal(t, binary.BigEndian, GetBigEndianEngine())
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
}

func TestBigEndianEngine_HighByteFirst(t *testing.T) {
	engine := GetBigEndianEngine()

	buf := engine.AppendUint16(nil, 0x2190)
	buf = engine.AppendUint16(buf, 0x4000)
	require.Equal(t, []byte{0x21, 0x90, 0x40, 0x00}, buf)

	require.Equal(t, uint16(0x2190), engine.Uint16(buf))
	require.Equal(t, uint16(0x4000), engine.Uint16(buf[2:]))
}

func TestLittleEndianEngine_LowByteFirst(t *testing.T) {
	engine := GetLittleEndianEngine()

	buf := engine.AppendUint16(nil, 0x2190)
	require.Equal(t, []byte{0x90, 0x21}, buf)
}
