package lb64

import "math/big"

// Uint128 is an unsigned 128-bit integer, big enough for every value this
// library can decode. The zero value is the number zero.
type Uint128 struct {
	Hi, Lo uint64
}

// Uint128From64 widens a uint64 into a Uint128.
func Uint128From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Uint128FromBig converts a big.Int into a Uint128. It reports false if the
// value is negative or wider than 128 bits.
func Uint128FromBig(v *big.Int) (Uint128, bool) {
	if v == nil || v.Sign() < 0 || v.BitLen() > 128 {
		return Uint128{}, false
	}
	var lo, hi big.Int
	lo.And(v, mask64)
	hi.Rsh(v, 64)
	return Uint128{Hi: hi.Uint64(), Lo: lo.Uint64()}, true
}

var mask64 = new(big.Int).SetUint64(^uint64(0))

// IsZero reports whether the value is zero.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Equal reports whether both values are the same number.
func (u Uint128) Equal(other Uint128) bool {
	return u == other
}

// Cmp returns -1, 0 or 1 depending on whether u is smaller than, equal to or
// greater than other.
func (u Uint128) Cmp(other Uint128) int {
	switch {
	case u.Hi != other.Hi:
		if u.Hi < other.Hi {
			return -1
		}
		return 1
	case u.Lo != other.Lo:
		if u.Lo < other.Lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Big returns the value as a big.Int.
func (u Uint128) Big() *big.Int {
	v := new(big.Int).SetUint64(u.Hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(u.Lo))
}

// String returns the decimal representation of the value.
func (u Uint128) String() string {
	return u.Big().String()
}

// shiftLeft6 shifts the value left by one base64 digit. It reports false when
// a set bit would be shifted out of the 128-bit width.
func (u Uint128) shiftLeft6() (Uint128, bool) {
	if u.Hi>>58 != 0 {
		return Uint128{}, false
	}
	return Uint128{
		Hi: u.Hi<<6 | u.Lo>>58,
		Lo: u.Lo << 6,
	}, true
}

// orDigit merges a 6-bit digit into the low bits. The caller has shifted the
// value first, so the bits being set are known to be clear.
func (u Uint128) orDigit(d byte) Uint128 {
	u.Lo |= uint64(d & 0x3f)
	return u
}

// divMod64 splits off the least significant base64 digit, returning the
// quotient and the digit.
func (u Uint128) divMod64() (Uint128, byte) {
	d := byte(u.Lo & 0x3f)
	q := Uint128{
		Hi: u.Hi >> 6,
		Lo: u.Hi<<58 | u.Lo>>6,
	}
	return q, d
}
