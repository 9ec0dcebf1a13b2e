package lb64

import (
	"github.com/pkg/errors"

	"github.com/bokysan/lb64/config"
)

// stripPadding splits encoded text into its data symbols and the trailing
// padding run. Padding is accepted only as a trailing run of at most 3 symbols
// on a padded configuration, and only when the total length is consistent with
// 4-symbol groups.
func stripPadding(conf *config.Config, s string) ([]rune, int, error) {
	runes := []rune(s)

	pads := 0
	if conf.Padded() {
		pad := conf.Padding()
		for pads < len(runes) && runes[len(runes)-1-pads] == pad {
			pads++
		}
		if pads > 3 {
			return nil, 0, errors.Wrapf(ErrInvalidPadding, "trailing run of %d padding symbols", pads)
		}
		if pads > 0 && len(runes)%4 != 0 {
			return nil, 0, errors.Wrapf(ErrInvalidPadding, "padded length %d is not a multiple of 4", len(runes))
		}

		data := runes[:len(runes)-pads]
		for i, r := range data {
			if r == pad {
				return nil, 0, errors.Wrapf(ErrInvalidPadding, "padding symbol at non-trailing position %d", i)
			}
		}
		return data, pads, nil
	}

	return runes, 0, nil
}

// decodeSymbols maps each symbol back to its 6-bit value through the inverse
// alphabet lookup.
func decodeSymbols(conf *config.Config, symbols []rune) ([]byte, error) {
	vals := make([]byte, len(symbols))
	for i, r := range symbols {
		v, ok := conf.Index(r)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidSymbol, "%q at position %d", r, i)
		}
		vals[i] = v
	}
	return vals, nil
}

// decodeBytes reassembles the 6-bit groups into bytes. The zero bits that were
// appended to align the final group are discarded; anything else left over
// means the input is corrupted.
func decodeBytes(conf *config.Config, s string) ([]byte, error) {
	symbols, pads, err := stripPadding(conf, s)
	if err != nil {
		return nil, err
	}
	if pads > 2 {
		return nil, errors.Wrapf(ErrInvalidPadding, "%d padding symbols leave no room for data bits", pads)
	}

	vals, err := decodeSymbols(conf, symbols)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(vals)*6/8)
	var buf uint
	var pending uint
	for _, v := range vals {
		buf = buf<<6 | uint(v)
		pending += 6
		if pending >= 8 {
			pending -= 8
			out = append(out, byte(buf>>pending))
		}
	}
	if pending > 0 && buf&(1<<pending-1) != 0 {
		return nil, errors.Wrapf(ErrTrailingBits, "%d leftover bits", pending)
	}

	return out, nil
}

// decodeUint128 accumulates the positional base64 digits into a 128-bit value.
// Every digit goes through a checked shift-left-by-6-then-or step, so a value
// wider than 128 bits aborts with ErrOverflow instead of wrapping around.
func decodeUint128(conf *config.Config, s string) (Uint128, error) {
	symbols, _, err := stripPadding(conf, s)
	if err != nil {
		return Uint128{}, err
	}

	vals, err := decodeSymbols(conf, symbols)
	if err != nil {
		return Uint128{}, err
	}

	var acc Uint128
	for i, v := range vals {
		shifted, ok := acc.shiftLeft6()
		if !ok {
			return Uint128{}, errors.Wrapf(ErrOverflow, "digit %d of %d exceeds 128 bits", i+1, len(vals))
		}
		acc = shifted.orDigit(v)
	}

	return acc, nil
}
