// SPDX-License-Identifier: MIT
package types

type (
	// Charset is a byte membership table.
	Charset [256]bool
)

// Lookup tables are cheaper than chained comparisons & keep the callers inlinable.
var (
	// Whitespace holds the bytes discarded between tokens.
	Whitespace = Charset{
		' ':  true,
		'\t': true,
		'\n': true,
		'\r': true,
		'\v': true,
		'\f': true,
	}

	// Digits holds the decimal digits.
	Digits = NewCharset("0123456789")

	// WordChars holds the bytes that may continue an identifier or numeral run.
	WordChars = NewCharset("_0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
)

// NewCharset creates a Charset containing every byte of members.
func NewCharset(members string) (c Charset) {
	for index := 0; index < len(members); index++ {
		c[members[index]] = true
	}

	return
}

// Contains checks for the membership of b.
func (c *Charset) Contains(b byte) bool { return c[b] }

// ContainsAll checks for the membership of every byte in s.
func (c *Charset) ContainsAll(s string) bool {
	for index := 0; index < len(s); index++ {
		if !c[s[index]] {
			return false
		}
	}

	return true
}

// IsAlpha checks whether b is an ASCII letter.
func IsAlpha(b byte) bool { return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') }

// IsDigit checks whether b is an ASCII decimal digit.
func IsDigit(b byte) bool { return '0' <= b && b <= '9' }
