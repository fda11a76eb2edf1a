package compress

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/lzstring/format"
	"github.com/arloliu/lzstring/internal/hash"
)

// flakyCodec corrupts or fails on demand.
type flakyCodec struct {
	compressErr   error
	decompressErr error
	truncate      bool
}

func (c flakyCodec) Compress(data []byte) ([]byte, error) {
	if c.compressErr != nil {
		return nil, c.compressErr
	}

	return append([]byte(nil), data...), nil
}

func (c flakyCodec) Decompress(data []byte) ([]byte, error) {
	if c.decompressErr != nil {
		return nil, c.decompressErr
	}
	if c.truncate && len(data) > 0 {
		return data[:len(data)-1], nil
	}

	return data, nil
}

func TestMeasure(t *testing.T) {
	for _, cType := range BuiltinTypes() {
		t.Run(cType.String(), func(t *testing.T) {
			codec, err := GetCodec(cType)
			require.NoError(t, err)

			stats, err := Measure(codec, cType, textPayload)
			require.NoError(t, err)
			require.Equal(t, cType, stats.Algorithm)
			require.Equal(t, int64(len(textPayload)), stats.OriginalSize)
			require.Positive(t, stats.CompressedSize)
			require.Equal(t, hash.Bytes(textPayload), stats.Checksum)
			require.InDelta(t, stats.CompressionRatio(), stats.Ratio, 1e-9)
			require.GreaterOrEqual(t, stats.CompressionTimeNs, int64(0))
			require.GreaterOrEqual(t, stats.DecompressionTimeNs, int64(0))

			if cType == format.CompressionNone {
				require.InDelta(t, 1.0, stats.Ratio, 1e-9)
			} else {
				require.Less(t, stats.Ratio, 1.0)
			}
			require.Contains(t, stats.String(), cType.String())
		})
	}
}

func TestMeasure_Errors(t *testing.T) {
	boom := errors.New("boom")

	_, err := Measure(flakyCodec{compressErr: boom}, format.CompressionNone, textPayload)
	require.ErrorIs(t, err, boom)

	_, err = Measure(flakyCodec{decompressErr: boom}, format.CompressionNone, textPayload)
	require.ErrorIs(t, err, boom)

	_, err = Measure(flakyCodec{truncate: true}, format.CompressionNone, textPayload)
	require.ErrorContains(t, err, "round trip mismatch")
}

func TestCompressionStats(t *testing.T) {
	stats := CompressionStats{OriginalSize: 200, CompressedSize: 50}
	require.InDelta(t, 0.25, stats.CompressionRatio(), 1e-9)
	require.InDelta(t, 75.0, stats.SpaceSavings(), 1e-9)

	expanded := CompressionStats{OriginalSize: 10, CompressedSize: 20}
	require.InDelta(t, -100.0, expanded.SpaceSavings(), 1e-9)

	require.Zero(t, CompressionStats{}.CompressionRatio())
}
