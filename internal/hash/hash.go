// Package hash computes xxHash64 digests of payloads.
package hash

import "github.com/cespare/xxhash/v2"

// Bytes computes the xxHash64 of data.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}
