package render

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Quote returns s as a double-quoted Go string literal.
//
// Substitutions:
//   - `"` and `\` are backslash-escaped;
//   - \a \b \f \n \r \t \v use their short escapes;
//   - other control bytes (< 0x20, 0x7f) and invalid UTF-8 bytes become \xNN;
//   - runes that are not printable (format characters such as U+200D, line
//     separators, the BOM) become \uNNNN or \UNNNNNNNN.
//
// Everything else, emoji included, is copied through unchanged.
// strconv.Unquote(Quote(s)) == s for every s.
func Quote(s string) string {
	return quote(s, false)
}

// QuoteASCII is Quote with every non-ASCII rune escaped as well.
func QuoteASCII(s string) string {
	return quote(s, true)
}

const lowerhex = "0123456789abcdef"

func quote(s string, asciiOnly bool) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); {
		r, width := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && width == 1 {
			writeByteEscape(&b, s[i])
			i++
			continue
		}
		writeRune(&b, r, asciiOnly)
		i += width
	}
	b.WriteByte('"')
	return b.String()
}

func writeRune(b *strings.Builder, r rune, asciiOnly bool) {
	switch r {
	case '"', '\\':
		b.WriteByte('\\')
		b.WriteByte(byte(r))
		return
	case '\a':
		b.WriteString(`\a`)
		return
	case '\b':
		b.WriteString(`\b`)
		return
	case '\f':
		b.WriteString(`\f`)
		return
	case '\n':
		b.WriteString(`\n`)
		return
	case '\r':
		b.WriteString(`\r`)
		return
	case '\t':
		b.WriteString(`\t`)
		return
	case '\v':
		b.WriteString(`\v`)
		return
	}

	switch {
	case r < ' ' || r == 0x7f:
		writeByteEscape(b, byte(r))
	case r < utf8.RuneSelf:
		b.WriteByte(byte(r))
	case asciiOnly || !strconv.IsPrint(r):
		writeRuneEscape(b, r)
	default:
		b.WriteRune(r)
	}
}

func writeByteEscape(b *strings.Builder, c byte) {
	b.WriteString(`\x`)
	b.WriteByte(lowerhex[c>>4])
	b.WriteByte(lowerhex[c&0xf])
}

func writeRuneEscape(b *strings.Builder, r rune) {
	if r <= 0xffff {
		b.WriteString(`\u`)
		for s := 12; s >= 0; s -= 4 {
			b.WriteByte(lowerhex[r>>uint(s)&0xf])
		}
		return
	}
	b.WriteString(`\U`)
	for s := 28; s >= 0; s -= 4 {
		b.WriteByte(lowerhex[r>>uint(s)&0xf])
	}
}
