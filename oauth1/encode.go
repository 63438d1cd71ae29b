package oauth1

import "strings"

const upperhex = "0123456789ABCDEF"

// percentEncode applies RFC 3986 percent-encoding, leaving only the
// unreserved set untouched. Encoding is byte-wise over the UTF-8 form, so a
// multi-byte character expands into consecutive %XX triplets.
func percentEncode(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		c := value[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	}
	return false
}
