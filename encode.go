package lb64

import (
	"strings"

	"github.com/bokysan/lb64/config"
)

// encodeBytes runs the input through the 6-bit group extraction, most
// significant bit first. The final group is zero-padded on the right when the
// input bit count is not a multiple of 6.
func encodeBytes(conf *config.Config, data []byte) string {
	if len(data) == 0 {
		return ""
	}

	var b strings.Builder
	symbols := 0

	// Accumulate bits into buf, peeling off a symbol whenever at least
	// 6 bits are pending.
	var buf uint
	var pending uint
	for _, v := range data {
		buf = buf<<8 | uint(v)
		pending += 8
		for pending >= 6 {
			pending -= 6
			b.WriteRune(conf.Symbol(byte(buf >> pending)))
			symbols++
		}
	}
	if pending > 0 {
		b.WriteRune(conf.Symbol(byte(buf << (6 - pending))))
		symbols++
	}

	return withPadding(conf, b.String(), symbols)
}

// encodeUint128 produces the positional base64 digits of the value, most
// significant digit first and without leading zero digits. Zero encodes as the
// single zero-value symbol.
func encodeUint128(conf *config.Config, v Uint128) string {
	digits := make([]byte, 0, 22)
	for !v.IsZero() {
		var d byte
		v, d = v.divMod64()
		digits = append(digits, d)
	}
	if len(digits) == 0 {
		digits = append(digits, 0)
	}

	var b strings.Builder
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteRune(conf.Symbol(digits[i]))
	}

	return withPadding(conf, b.String(), len(digits))
}

// withPadding appends padding symbols until the symbol count is a multiple
// of 4, for configurations that use padding. Empty input stays empty.
func withPadding(conf *config.Config, s string, symbols int) string {
	if !conf.Padded() || symbols == 0 || symbols%4 == 0 {
		return s
	}
	var b strings.Builder
	b.WriteString(s)
	for i := symbols; i%4 != 0; i++ {
		b.WriteRune(conf.Padding())
	}
	return b.String()
}
