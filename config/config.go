package config

import (
	"strings"
	"unicode"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"go.chromium.org/luci/common/data/stringset"
)

// NoPadding signals that a configuration does not append padding symbols.
// It follows the same convention as encoding/base64.NoPadding.
const NoPadding rune = -1

var (
	// ErrInvalidLength is raised when the alphabet does not contain exactly 64 symbols.
	ErrInvalidLength = errors.New("alphabet must contain exactly 64 symbols")
	// ErrDuplicateSymbol is raised when the same symbol appears twice in the alphabet.
	ErrDuplicateSymbol = errors.New("alphabet contains a duplicate symbol")
	// ErrPaddingCollision is raised when the padding symbol is also part of the alphabet.
	ErrPaddingCollision = errors.New("padding symbol is already used in the alphabet")
	// ErrUnprintableSymbol is raised when an alphabet symbol is not a graphic, non-space character.
	ErrUnprintableSymbol = errors.New("alphabet contains an unprintable symbol")
	// ErrUnprintablePadding is raised when the padding symbol is not a graphic, non-space character.
	ErrUnprintablePadding = errors.New("padding symbol is unprintable")
)

// Config describes a Base64 variant: an ordered 64-symbol alphabet, mapping the
// 6-bit values 0..63 to their symbols, and an optional padding symbol appended
// to make encoded output a multiple of 4 symbols long.
//
// A Config is immutable after construction and may be shared freely between
// goroutines without synchronization.
type Config struct {
	symbols []rune
	index   map[rune]byte
	pad     rune
}

// New validates the given alphabet and padding symbol and builds a Config from
// them. The alphabet is interpreted as a sequence of runes, so multi-byte
// symbols are supported. Pass NoPadding for unpadded variants.
//
// All violations are collected, so the returned error may report more than one
// problem at once. Individual causes can be matched with errors.Is against the
// Err... values of this package.
func New(alphabet string, padding rune) (*Config, error) {
	symbols := []rune(alphabet)

	var errs error
	if len(symbols) != 64 {
		errs = multierror.Append(errs, errors.Wrapf(ErrInvalidLength, "got %d", len(symbols)))
	}

	seen := stringset.New(len(symbols))
	for _, r := range symbols {
		if !seen.Add(string(r)) {
			errs = multierror.Append(errs, errors.Wrapf(ErrDuplicateSymbol, "%q", r))
		}
		if !printable(r) {
			errs = multierror.Append(errs, errors.Wrapf(ErrUnprintableSymbol, "%q", r))
		}
	}

	if padding != NoPadding {
		if seen.Has(string(padding)) {
			errs = multierror.Append(errs, errors.Wrapf(ErrPaddingCollision, "%q", padding))
		}
		if !printable(padding) {
			errs = multierror.Append(errs, errors.Wrapf(ErrUnprintablePadding, "%q", padding))
		}
	}

	if errs != nil {
		return nil, errs
	}

	index := make(map[rune]byte, len(symbols))
	for i, r := range symbols {
		index[r] = byte(i)
	}

	return &Config{
		symbols: symbols,
		index:   index,
		pad:     padding,
	}, nil
}

// Symbol returns the alphabet symbol for a 6-bit value. Values larger than 63
// wrap around, working on the remainder of the value divided by 64.
func (c *Config) Symbol(v byte) rune {
	return c.symbols[v&0x3f]
}

// Index is the inverse of Symbol. It reports the 6-bit value of the given
// symbol, or false if the symbol is not part of the alphabet. The padding
// symbol is not part of the alphabet.
func (c *Config) Index(r rune) (byte, bool) {
	v, ok := c.index[r]
	return v, ok
}

// Alphabet returns the 64 symbols of this configuration, in value order.
func (c *Config) Alphabet() string {
	return string(c.symbols)
}

// Padding returns the padding symbol, or NoPadding if the variant is unpadded.
func (c *Config) Padding() rune {
	return c.pad
}

// Padded reports whether this configuration appends padding symbols.
func (c *Config) Padded() bool {
	return c.pad != NoPadding
}

// Equal reports whether both configurations denote the same alphabet and
// padding symbol.
func (c *Config) Equal(other *Config) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c == other {
		return true
	}
	if len(c.symbols) != len(other.symbols) || c.pad != other.pad {
		return false
	}
	for i, r := range c.symbols {
		if other.symbols[i] != r {
			return false
		}
	}
	return true
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(string(c.symbols))
	if c.Padded() {
		b.WriteRune(c.pad)
	}
	return b.String()
}

// printable reports whether the rune can stand on its own in encoded text:
// a graphic character that is not whitespace.
func printable(r rune) bool {
	return unicode.IsGraphic(r) && !unicode.IsSpace(r)
}
