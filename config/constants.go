package config

const (
	rfc4648Set = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	urlSafeSet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	imapSet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+,"
)

var (
	// Standard is the base64 configuration of RFC 4648 section 4: the `+/`
	// alphabet with `=` padding.
	Standard = mustNew(rfc4648Set, '=')

	// URLSafe is the base64url configuration of RFC 4648 section 5, without
	// padding, as conventionally used in URLs and JWTs.
	URLSafe = mustNew(urlSafeSet, NoPadding)

	// URLSafePadded is the base64url alphabet with `=` padding.
	URLSafePadded = mustNew(urlSafeSet, '=')

	// MIME is the configuration of RFC 2045. Line wrapping is out of scope
	// here, so for single values MIME behaves exactly like Standard.
	MIME = mustNew(rfc4648Set, '=')

	// IMAP is the modified base64 of RFC 3501, which replaces `/` with `,`
	// and uses no padding.
	IMAP = mustNew(imapSet, NoPadding)
)

func mustNew(alphabet string, padding rune) *Config {
	c, err := New(alphabet, padding)
	if err != nil {
		panic(err)
	}
	return c
}
