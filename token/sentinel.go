package token

// Forms that want charset detection downstream include a utf8=✓ input.
// How the checkmark arrives tells the receiver which charset encoded
// the submission.
const (
	SentinelKey       = "utf8"
	SentinelUTF8      = "✓"
	SentinelISO       = "&#10003;"
	SentinelISOLegacy = "&#10003"
)

// SentinelCharset classifies a decoded sentinel value. Unrecognized
// values report false.
func SentinelCharset(value string) (Charset, bool) {
	switch value {
	case SentinelUTF8:
		return UTF8, true
	case SentinelISO, SentinelISOLegacy:
		return ISO88591, true
	}
	return UTF8, false
}

// SentinelPair renders the encoded sentinel pair for a query string.
func SentinelPair(cs Charset) string {
	return Encode(SentinelKey, cs) + "=" + Encode(SentinelUTF8, cs)
}
