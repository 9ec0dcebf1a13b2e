package lb64

import "github.com/pkg/errors"

var (
	// ErrInvalidSymbol is raised when decoding text that contains a symbol
	// which is neither part of the bound alphabet nor its padding symbol.
	ErrInvalidSymbol = errors.New("symbol is not part of the configured alphabet")

	// ErrInvalidPadding is raised when padding symbols appear in a non-trailing
	// position, or the trailing padding run is longer than the group alignment
	// allows.
	ErrInvalidPadding = errors.New("malformed padding")

	// ErrTrailingBits is raised when, after regrouping decoded symbols into
	// bytes, the leftover fractional-byte bits are not zero. Valid encodings
	// never produce such bits, so the input is corrupted.
	ErrTrailingBits = errors.New("non-zero trailing bits after the last full byte")

	// ErrOverflow is raised when a decoded unsigned value does not fit the
	// requested integer width. Decoding aborts instead of wrapping around.
	ErrOverflow = errors.New("unsigned overflow while decoding")
)
