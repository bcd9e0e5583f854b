package int64be

import (
	"encoding/binary"
	"fmt"
)

// BigIntHelpers provides big-endian ⇄ int64 conversions for fixed 8-byte
// two's-complement encodings.
var BigIntHelpers = bigIntHelpers{}

type bigIntHelpers struct{}

// FromBytesBE reads a signed 64-bit value from exactly 8 big-endian bytes.
func (bigIntHelpers) FromBytesBE(b []byte) (int64, error) {
	if len(b) != Size {
		return 0, fmt.Errorf("must be %d bytes, got %d", Size, len(b))
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

// ToBytesBE writes a signed 64-bit value to a fresh 8-byte big-endian slice.
func (bigIntHelpers) ToBytesBE(v int64) []byte {
	b := make([]byte, Size)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

// PutBE writes a signed 64-bit value into the first 8 bytes of b.
func (bigIntHelpers) PutBE(b []byte, v int64) {
	binary.BigEndian.PutUint64(b[:Size], uint64(v))
}

// BE reads a signed 64-bit value from the first 8 bytes of b.
func (bigIntHelpers) BE(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b[:Size]))
}
