package lb64

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bokysan/lb64/config"
)

func Test_FromString(t *testing.T) {
	v, err := FromString("abcd", config.URLSafe)
	require.NoError(t, err)
	require.Equal(t, "abcd", v.String())
	require.Equal(t, 4, v.Len())
}

func Test_FromStringCompletesPadding(t *testing.T) {
	v, err := FromString("Hello", config.URLSafePadded)
	require.NoError(t, err)
	require.Equal(t, "Hello===", v.String())

	// Already padded text is kept as-is.
	v, err = FromString("SGU=", config.Standard)
	require.NoError(t, err)
	require.Equal(t, "SGU=", v.String())
}

func Test_FromStringRejectsInvalidSymbol(t *testing.T) {
	_, err := FromString("^_^", config.MIME)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidSymbol))
}

func Test_FromStringRejectsMalformedPadding(t *testing.T) {
	_, err := FromString("=AAA", config.Standard)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidPadding))
}

func Test_ValueEqual(t *testing.T) {
	a := EncodeUint64(6, config.URLSafe)
	b := EncodeUint64(6, config.URLSafe)
	c := EncodeUint64(5, config.URLSafe)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func Test_ValueEqualAcrossConfigs(t *testing.T) {
	// Identical text under different configurations is a defined "not equal":
	// the texts may spell the same characters yet mean different numbers.
	url, err := FromString("K", config.URLSafe)
	require.NoError(t, err)
	imap, err := FromString("K", config.IMAP)
	require.NoError(t, err)

	require.Equal(t, url.String(), imap.String())
	require.False(t, url.Equal(imap))
	require.False(t, imap.Equal(url))
}

func Test_ValueCompare(t *testing.T) {
	five := EncodeUint64(5, config.URLSafe)
	six := EncodeUint64(6, config.URLSafe)

	require.Equal(t, -1, five.Compare(six))
	require.Equal(t, 1, six.Compare(five))
	require.Equal(t, 0, six.Compare(EncodeUint64(6, config.URLSafe)))
}

func Test_ValueCompareAcrossConfigs(t *testing.T) {
	// 62 spells "+" under Standard and "-" under URLSafe; both mean the same
	// number, so they compare equal.
	std := EncodeUint64(62, config.Standard)
	url := EncodeUint64(62, config.URLSafe)
	require.Equal(t, 0, std.Compare(url))

	bigger := EncodeUint64(63, config.IMAP)
	require.Equal(t, -1, std.Compare(bigger))
}

func Test_ValueCompareByLength(t *testing.T) {
	short := EncodeUint64(63, config.URLSafe) // "_"
	long, err := FromString("A_", config.URLSafe)
	require.NoError(t, err)

	// Digit count wins before digit values, so "A_" sorts after "_".
	require.Equal(t, -1, short.Compare(long))
}

func Test_ValueCompareNil(t *testing.T) {
	v := EncodeUint64(5, config.URLSafe)
	var none *Value

	require.Equal(t, 1, v.Compare(nil))
	require.Equal(t, -1, none.Compare(v))
	require.Equal(t, 0, none.Compare(nil))
}

func Test_Convert(t *testing.T) {
	v := EncodeUint64(62, config.Standard)
	require.Equal(t, "+===", v.String())

	converted, err := v.Convert(config.URLSafe)
	require.NoError(t, err)
	require.Equal(t, "-", converted.String())
	require.True(t, config.URLSafe.Equal(converted.Config()))

	// The original value is untouched.
	require.Equal(t, "+===", v.String())
}

func Test_ConvertRoundTrip(t *testing.T) {
	v := EncodeBytes([]byte("Hello, World"), config.Standard)

	imap, err := v.Convert(config.IMAP)
	require.NoError(t, err)
	back, err := imap.Convert(config.Standard)
	require.NoError(t, err)

	require.True(t, v.Equal(back))

	decoded, err := imap.DecodeBytes()
	require.NoError(t, err)
	require.Equal(t, []byte("Hello, World"), decoded)
}

func Test_Random(t *testing.T) {
	for _, conf := range []*config.Config{config.Standard, config.URLSafe, config.IMAP} {
		v, err := Random(20, conf)
		require.NoError(t, err)
		require.Equal(t, 20, v.Len())

		for _, r := range v.String() {
			_, ok := conf.Index(r)
			require.True(t, ok, "%q is not part of the alphabet", r)
		}
	}
}

func Test_RandomNeverPads(t *testing.T) {
	v, err := Random(5, config.Standard)
	require.NoError(t, err)
	require.Equal(t, 5, v.Len())
}

func Test_RandomRejectsZeroLength(t *testing.T) {
	_, err := Random(0, config.Standard)
	require.Error(t, err)

	_, err = Random(-3, config.Standard)
	require.Error(t, err)
}

func Test_RandomDecodes(t *testing.T) {
	// A random value is syntactically valid, so the integer decoder accepts
	// it as long as it fits the width. 20 digits always fit 128 bits.
	v, err := Random(20, config.URLSafe)
	require.NoError(t, err)

	_, err = v.DecodeUint128()
	require.NoError(t, err)
}

func Test_ValueAccessors(t *testing.T) {
	v := EncodeBytes([]byte("Hi"), config.Standard)
	require.Equal(t, "SGk=", v.String())
	require.Equal(t, 4, v.Len())
	require.True(t, config.Standard.Equal(v.Config()))
}
