package int64be

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Hex provides hex encoding/decoding helpers with strict validation.
var Hex = hexHelpers{}

type hexHelpers struct{}

// FromBytes converts bytes to a lowercase hex string.
func (hexHelpers) FromBytes(b []byte) string {
	return hex.EncodeToString(b)
}

// ToBytes parses a hex string into bytes.
// Accepts an optional "0x" prefix and is case-insensitive.
// Returns an error if the length is odd or non-hex chars are present.
func (hexHelpers) ToBytes(hexStr string) ([]byte, error) {
	h := stripHexPrefix(hexStr)
	if len(h)%2 != 0 {
		return nil, fmt.Errorf("hex length must be even, got %d", len(h))
	}
	if err := validateHex(h); err != nil {
		return nil, err
	}

	b, err := hex.DecodeString(h)
	if err != nil {
		return nil, fmt.Errorf("failed to decode hex: %w", err)
	}
	return b, nil
}

// SplitWords parses up to 16 hex digits into high and low 32-bit words:
// the last 8 (or fewer) digits form the low word and everything before
// forms the high word, zero when absent. Accepts an optional "0x" prefix
// and is case-insensitive.
func (hexHelpers) SplitWords(hexStr string) (hi, lo uint32, err error) {
	h := stripHexPrefix(hexStr)
	if len(h) == 0 {
		return 0, 0, fmt.Errorf("hex string is empty")
	}
	if len(h) > 16 {
		return 0, 0, fmt.Errorf("hex must be at most 16 digits, got %d", len(h))
	}
	if err := validateHex(h); err != nil {
		return 0, 0, err
	}

	split := 0
	if len(h) > 8 {
		split = len(h) - 8
	}
	if split > 0 {
		v, perr := strconv.ParseUint(h[:split], 16, 32)
		if perr != nil {
			return 0, 0, fmt.Errorf("invalid high word %q: %w", h[:split], perr)
		}
		hi = uint32(v)
	}
	v, perr := strconv.ParseUint(h[split:], 16, 32)
	if perr != nil {
		return 0, 0, fmt.Errorf("invalid low word %q: %w", h[split:], perr)
	}
	lo = uint32(v)

	return hi, lo, nil
}

func stripHexPrefix(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:]
	}
	return s
}

func validateHex(h string) error {
	for i, r := range h {
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')) {
			return fmt.Errorf("hex contains non-hex character %q at position %d", r, i)
		}
	}
	return nil
}
