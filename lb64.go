// Package lb64 converts byte sequences and unsigned integers to and from
// Base64 text. A Value carries its encoded text together with the
// configuration it was produced under, so it can be decoded repeatedly,
// compared, or re-encoded under another alphabet. Well-known variants live in
// the config subpackage; custom 64-symbol alphabets are supported through
// config.New.
//
// Every fallible operation returns an error value, never a panic, for any
// input.
package lb64

import (
	"crypto/rand"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/bokysan/lb64/config"
)

// Value is a Base64 number: encoded text bound to the configuration it was
// encoded under. Values are immutable; the text is guaranteed to consist of
// alphabet symbols plus, optionally, trailing padding.
type Value struct {
	encoded string
	conf    *config.Config
}

// EncodeBytes encodes the byte sequence under the given configuration. It
// never fails; empty input encodes to the empty string without padding.
func EncodeBytes(data []byte, conf *config.Config) *Value {
	return &Value{
		encoded: encodeBytes(conf, data),
		conf:    conf,
	}
}

// EncodeUint128 encodes an unsigned 128-bit value under the given
// configuration. The encoding uses the minimal number of digits; zero encodes
// as the single zero-value symbol ("A" under the standard alphabet).
func EncodeUint128(v Uint128, conf *config.Config) *Value {
	return &Value{
		encoded: encodeUint128(conf, v),
		conf:    conf,
	}
}

// EncodeUint64 encodes an unsigned 64-bit value. See EncodeUint128.
func EncodeUint64(v uint64, conf *config.Config) *Value {
	return EncodeUint128(Uint128From64(v), conf)
}

// FromString builds a Value from existing Base64 text. Every symbol must be
// part of the configured alphabet and padding must be well formed, otherwise
// ErrInvalidSymbol or ErrInvalidPadding is returned. On a padded configuration
// an unpadded text is completed with padding symbols, mirroring what the
// encoder would have produced.
func FromString(s string, conf *config.Config) (*Value, error) {
	symbols, pads, err := stripPadding(conf, s)
	if err != nil {
		return nil, err
	}
	if _, err := decodeSymbols(conf, symbols); err != nil {
		return nil, err
	}

	if pads == 0 {
		s = withPadding(conf, s, len(symbols))
	}
	return &Value{
		encoded: s,
		conf:    conf,
	}, nil
}

// Random draws length symbols independently and uniformly from the alphabet
// using the operating system's entropy source. No padding symbols are
// inserted, so the result is syntactically valid Base64 text but does not
// necessarily correspond to any encoded byte sequence. The length must be at
// least 1.
func Random(length int, conf *config.Config) (*Value, error) {
	if length < 1 {
		return nil, errors.Errorf("random length must be at least 1, got %d", length)
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return nil, errors.WithStack(err)
	}

	// 256 is a multiple of 64, so masking keeps the draw uniform.
	var b strings.Builder
	for _, v := range buf {
		b.WriteRune(conf.Symbol(v & 0x3f))
	}

	return &Value{
		encoded: b.String(),
		conf:    conf,
	}, nil
}

// String returns the encoded text.
func (v *Value) String() string {
	return v.encoded
}

// Len returns the number of symbols in the encoded text, padding included.
func (v *Value) Len() int {
	return utf8.RuneCountInString(v.encoded)
}

// Config returns the configuration the value is bound to.
func (v *Value) Config() *config.Config {
	return v.conf
}

// DecodeBytes decodes the value back into the byte sequence it encodes.
// Decoding does not consume the value and may be repeated. Empty text decodes
// to an empty slice.
func (v *Value) DecodeBytes() ([]byte, error) {
	return decodeBytes(v.conf, v.encoded)
}

// DecodeUint128 decodes the value into an unsigned 128-bit integer. Text that
// represents a wider value fails with ErrOverflow. Empty text decodes to zero.
func (v *Value) DecodeUint128() (Uint128, error) {
	return decodeUint128(v.conf, v.encoded)
}

// DecodeUint64 decodes the value into an unsigned 64-bit integer, failing
// with ErrOverflow when it does not fit.
func (v *Value) DecodeUint64() (uint64, error) {
	u, err := decodeUint128(v.conf, v.encoded)
	if err != nil {
		return 0, err
	}
	if u.Hi != 0 {
		return 0, errors.Wrapf(ErrOverflow, "value %s exceeds 64 bits", u)
	}
	return u.Lo, nil
}

// Equal reports whether both values were produced under the same alphabet and
// padding symbol and carry identical text. Values bound to different
// configurations are never equal; no error is reported for comparing them.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.conf.Equal(other.conf) && v.encoded == other.encoded
}

// Compare orders two values by the numbers their digits spell out: first by
// digit count with padding ignored, then digit by digit, each symbol resolved
// through its own value's alphabet. It returns -1, 0 or 1. Note that leading
// zero digits count towards the length, so "AA" sorts after "A" even though
// both decode to zero. A nil value sorts before every non-nil value.
func (v *Value) Compare(other *Value) int {
	if v == nil || other == nil {
		switch {
		case v == other:
			return 0
		case v == nil:
			return -1
		default:
			return 1
		}
	}

	a := v.digits()
	b := other.digits()

	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Convert re-encodes the value under another configuration by mapping every
// symbol through its digit value into the target alphabet, re-deriving the
// padding. The original value is left untouched.
func (v *Value) Convert(conf *config.Config) (*Value, error) {
	symbols, _, err := stripPadding(v.conf, v.encoded)
	if err != nil {
		return nil, err
	}
	vals, err := decodeSymbols(v.conf, symbols)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	for _, d := range vals {
		b.WriteRune(conf.Symbol(d))
	}

	return &Value{
		encoded: withPadding(conf, b.String(), len(vals)),
		conf:    conf,
	}, nil
}

// digits returns the 6-bit values of the text with padding stripped.
// Construction guarantees the text is valid under its configuration, so the
// decode steps cannot fail here.
func (v *Value) digits() []byte {
	symbols, _, err := stripPadding(v.conf, v.encoded)
	if err != nil {
		return nil
	}
	vals, err := decodeSymbols(v.conf, symbols)
	if err != nil {
		return nil
	}
	return vals
}
