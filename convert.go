package int64be

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToNumber converts the value to a float64. Magnitudes of 2^53 and above
// have no exact float64 form; unless allowImprecise is true they report as
// +Inf or -Inf instead of a silently inaccurate number.
func (n Int64) ToNumber(allowImprecise bool) float64 {
	v := n.Int64Value()
	f := float64(v)
	if !allowImprecise && (f >= maxSafe || f <= -maxSafe) {
		if v < 0 {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	return f
}

// Float64Value is ToNumber without imprecision allowed.
func (n Int64) Float64Value() float64 {
	return n.ToNumber(false)
}

// Int64Value returns the exact signed 64-bit value.
func (n Int64) Int64Value() int64 {
	return BigIntHelpers.BE(n.span())
}

// ToString renders Float64Value in the given radix. Like strconv.FormatInt
// it panics on a radix outside 2..36. Values whose magnitude is at or above
// 2^53 render as "+Inf" or "-Inf"; use ToDecimalString for an exact form.
func (n Int64) ToString(radix int) string {
	f := n.ToNumber(false)
	if math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatInt(int64(f), radix)
}

// ToOctetString renders each of the 8 bytes as two lowercase hex digits,
// joined by sep. This is the canonical bit-exact debug and serialization
// form; no precision is ever lost.
func (n Int64) ToOctetString(sep string) string {
	b := n.span()
	if sep == "" {
		return Hex.FromBytes(b)
	}
	octets := make([]string, Size)
	for i, c := range b {
		octets[i] = fmt.Sprintf("%02x", c)
	}
	return strings.Join(octets, sep)
}

// ToDecimalString renders the exact signed decimal value across the full
// 64-bit range, unlike ToString which is limited by float64 precision.
func (n Int64) ToDecimalString() string {
	return strconv.FormatInt(n.Int64Value(), 10)
}

// ToBuffer returns the 8 encoded bytes. With rawBuffer true and a zero
// offset the internal buffer itself is returned and stays shared with this
// value; otherwise the bytes are copied into a fresh 8-byte slice.
func (n Int64) ToBuffer(rawBuffer bool) []byte {
	if rawBuffer && n.off == 0 {
		return n.buf
	}
	out := make([]byte, Size)
	copy(out, n.span())
	return out
}

// Copy writes the 8 encoded bytes into dst starting at off.
func (n Int64) Copy(dst []byte, off int) error {
	if off < 0 {
		return fmt.Errorf("offset cannot be negative: %d", off)
	}
	if len(dst)-off < Size {
		return fmt.Errorf("target must hold %d bytes at offset %d, got %d", Size, off, len(dst)-off)
	}
	copy(dst[off:off+Size], n.span())
	return nil
}

// parseInt64 parses a signed decimal numeral, distinguishing range overflow
// from malformed input in the returned error.
func parseInt64(text string) (int64, error) {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("decimal %q out of 64-bit range: %w", text, err)
		}
		return 0, fmt.Errorf("invalid decimal %q: %w", text, err)
	}
	return v, nil
}
