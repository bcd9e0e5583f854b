// Package int64be implements a signed 64-bit integer value type backed by
// an explicit 8-byte big-endian two's-complement buffer. It is meant as an
// interchange type: the 8 bytes are the persisted and wire form, and values
// can alias a larger backing buffer so structured binary records can be read
// and written in place.
package int64be

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Size is the width of the encoded value in bytes.
const Size = 8

const (
	// two32 is 2^32, the limb base for the float64 decomposition.
	two32 = 4294967296

	// maxSafe is 2^53, the largest magnitude a float64 represents exactly.
	maxSafe = 1 << 53
)

// Int64 is a signed 64-bit integer stored as 8 big-endian two's-complement
// bytes at buf[off:off+8]. Values built with FromBuffer alias the caller's
// storage: setters write through to it, and external mutation of the buffer
// changes the observed value. All other constructors allocate a fresh
// exclusively-owned 8-byte buffer.
//
// Setters have value receivers: the mutation flows through the shared byte
// slice, not the struct. The zero Int64 has no backing span and
// must not be used; obtain values from the constructors.
type Int64 struct {
	buf []byte
	off int
}

func alloc() Int64 {
	return Int64{buf: make([]byte, Size)}
}

// span returns the 8 bytes holding the value.
func (n Int64) span() []byte {
	return n.buf[n.off : n.off+Size]
}

// ensure allocates a backing span for the zero Int64. An existing span,
// aliased or owned, is kept so writes keep flowing through it.
func (n *Int64) ensure() {
	if n.buf == nil {
		n.buf = make([]byte, Size)
		n.off = 0
	}
}

// New creates an Int64 from raw high and low 32-bit halves.
// Bytes 0-3 hold hi and bytes 4-7 hold lo, both big-endian.
func New(hi, lo uint32) Int64 {
	n := alloc()
	n.SetPair(hi, lo)
	return n
}

// FromInt creates an Int64 holding exactly v.
func FromInt(v int64) Int64 {
	n := alloc()
	n.SetInt(v)
	return n
}

// FromNumber creates an Int64 from a float64. See SetNumber for the
// decomposition and its range check.
func FromNumber(v float64) (Int64, error) {
	n := alloc()
	if err := n.SetNumber(v); err != nil {
		return Int64{}, err
	}
	return n, nil
}

// FromHex creates an Int64 from a hex string of up to 16 digits.
// See SetHex for the bit-pattern semantics.
func FromHex(hexStr string) (Int64, error) {
	n := alloc()
	if err := n.SetHex(hexStr); err != nil {
		return Int64{}, err
	}
	return n, nil
}

// FromBuffer wraps the 8 bytes of buf starting at off without copying.
// The returned value aliases buf for its whole lifetime: setters write
// through, and external writes to buf change the value. Callers that share
// a buffer across goroutines must synchronize externally.
func FromBuffer(buf []byte, off int) (Int64, error) {
	if off < 0 {
		return Int64{}, fmt.Errorf("offset cannot be negative: %d", off)
	}
	if len(buf)-off < Size {
		return Int64{}, fmt.Errorf("buffer must hold %d bytes at offset %d, got %d", Size, off, len(buf)-off)
	}
	return Int64{buf: buf, off: off}, nil
}

// FromBytes creates an owned Int64 by decoding 8 big-endian bytes.
// Unlike FromBuffer the input is copied, not aliased.
func FromBytes(b []byte) (Int64, error) {
	v, err := BigIntHelpers.FromBytesBE(b)
	if err != nil {
		return Int64{}, fmt.Errorf("failed to parse bytes: %w", err)
	}
	return FromInt(v), nil
}

// FromDecimalString parses an exact signed decimal numeral, the inverse of
// ToDecimalString. At most 19 digits are accepted (20 characters with a
// leading minus); longer numerals and magnitudes outside the signed 64-bit
// range fail with a range error, except the exact minimum
// -9223372036854775808 which is representable and accepted.
func FromDecimalString(text string) (Int64, error) {
	digits := text
	if strings.HasPrefix(text, "-") {
		digits = text[1:]
	}
	if len(digits) == 0 {
		return Int64{}, fmt.Errorf("decimal string is empty")
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Int64{}, fmt.Errorf("decimal contains non-digit character %q at position %d", digits[i], i)
		}
	}
	if len(digits) > 19 {
		return Int64{}, fmt.Errorf("too many digits for a 64-bit value: %d", len(digits))
	}
	v, err := parseInt64(text)
	if err != nil {
		return Int64{}, err
	}
	return FromInt(v), nil
}

// Set assigns from a dynamically typed value: float64 takes the
// decomposition path of SetNumber, int and int64 encode exactly, and a
// string is parsed as hex. Any other type is rejected.
func (n Int64) Set(value any) error {
	switch v := value.(type) {
	case float64:
		return n.SetNumber(v)
	case int:
		n.SetInt(int64(v))
		return nil
	case int64:
		n.SetInt(v)
		return nil
	case string:
		return n.SetHex(v)
	default:
		return fmt.Errorf("cannot set Int64 from type %T", value)
	}
}

// SetPair writes raw high and low 32-bit halves in place.
func (n Int64) SetPair(hi, lo uint32) {
	b := n.span()
	b[0] = byte(hi >> 24)
	b[1] = byte(hi >> 16)
	b[2] = byte(hi >> 8)
	b[3] = byte(hi)
	b[4] = byte(lo >> 24)
	b[5] = byte(lo >> 16)
	b[6] = byte(lo >> 8)
	b[7] = byte(lo)
}

// SetInt writes exactly v in place.
func (n Int64) SetInt(v int64) {
	BigIntHelpers.PutBE(n.span(), v)
}

// SetNumber assigns from a float64. The magnitude splits into 32-bit halves
// as lo = |v| mod 2^32 and hi = floor(|v| / 2^32); negative inputs are
// two's-complemented in place afterwards. Fractional parts truncate and
// only the low 32 bits of each half are honored. NaN is rejected, as is any
// magnitude whose high word exceeds 2^32. The bound is strictly greater-than:
// a high word of exactly 2^32 is accepted and truncates to zero.
func (n Int64) SetNumber(v float64) error {
	if math.IsNaN(v) {
		return fmt.Errorf("cannot set Int64 from NaN")
	}
	negate := v < 0
	if negate {
		v = -v
	}
	lo := math.Mod(v, two32)
	hi := math.Floor(v / two32)
	if hi > two32 {
		return fmt.Errorf("number %g exceeds the 64-bit range", v)
	}
	n.SetPair(uint32(uint64(hi)), uint32(uint64(lo)))
	if negate {
		n.negate()
	}
	return nil
}

// SetHex assigns from a hex string of up to 16 digits, with an optional
// "0x" prefix. The string is taken as the literal bit pattern: a string
// beginning with f encodes a negative value through its sign bit, never
// through negation.
func (n Int64) SetHex(hexStr string) error {
	hi, lo, err := Hex.SplitWords(hexStr)
	if err != nil {
		return err
	}
	n.SetPair(hi, lo)
	return nil
}

// negate applies two's-complement in place: byte-wise complement plus a
// carry propagated upward from the least-significant byte.
func (n Int64) negate() {
	b := n.span()
	carry := 1
	for i := Size - 1; i >= 0; i-- {
		v := int(^b[i]) + carry
		b[i] = byte(v)
		carry = v >> 8
	}
}

// Compare orders two values as signed 64-bit integers without decoding.
// Differing sign bits resolve the comparison immediately, with the negative
// value lesser; matching sign bits reduce to a lexicographic byte
// comparison. Returns -1 if n < other, 0 if equal, 1 if n > other.
func (n Int64) Compare(other Int64) int {
	a, b := n.span(), other.span()
	if sa, sb := a[0]&0x80, b[0]&0x80; sa != sb {
		if sa != 0 {
			return -1
		}
		return 1
	}
	return bytes.Compare(a, b)
}

// Equals checks equality by encoded value.
func (n Int64) Equals(other Int64) bool {
	return n.Compare(other) == 0
}

// String returns a debug form combining the decimal value and the octets,
// e.g. "[Int64 value: 42 octets: 00 00 00 00 00 00 00 2a]". The value part
// renders through ToString and shows ±Inf for magnitudes at or above 2^53;
// the octets are always bit-exact.
func (n Int64) String() string {
	return fmt.Sprintf("[Int64 value: %s octets: %s]", n.ToString(10), n.ToOctetString(" "))
}

// Value implements the driver.Valuer interface for SQL database support.
// The stored form is the 8-byte big-endian encoding, suitable for a BLOB or
// BYTEA column that sorts negative values before positive ones only within
// the same sign.
func (n Int64) Value() (driver.Value, error) {
	return n.ToBuffer(false), nil
}

// Scan implements the sql.Scanner interface for SQL database support.
// Accepts NULL (resulting in zero), int64, and 8-byte []byte values from
// SQL databases. Writes through an existing span; the zero Int64 allocates.
func (n *Int64) Scan(value any) error {
	n.ensure()
	switch v := value.(type) {
	case nil:
		n.SetInt(0)
		return nil
	case int64:
		n.SetInt(v)
		return nil
	case []byte:
		parsed, err := BigIntHelpers.FromBytesBE(v)
		if err != nil {
			return fmt.Errorf("failed to scan bytes: %w", err)
		}
		n.SetInt(parsed)
		return nil
	default:
		return fmt.Errorf("cannot scan type %T into Int64", value)
	}
}

// MarshalJSON implements the json.Marshaler interface.
// Encodes the value as its 16-char lowercase hex bit pattern.
func (n Int64) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.ToOctetString(""))
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Accepts either a hex string or a numeric value from JSON.
func (n *Int64) UnmarshalJSON(data []byte) error {
	n.ensure()

	var hexStr string
	if err := json.Unmarshal(data, &hexStr); err == nil {
		if err := n.SetHex(hexStr); err != nil {
			return fmt.Errorf("failed to parse hex string: %w", err)
		}
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("failed to unmarshal Int64: expected hex string or number")
	}
	if err := n.SetNumber(num); err != nil {
		return fmt.Errorf("failed to set numeric value: %w", err)
	}
	return nil
}
