package gridfont

import "unicode/utf8"

// Definitions of private helpers used to iterate strings by unicode
// code point. Text is always traversed left to right, but truncation
// needs to slice code points off both ends, so there's a bit of
// trickiness here and there.

// ltrStringIterator walks a string one code point at a time. Next
// returns -1 both at the end of the string and on a malformed byte
// sequence; -1 is not a valid scalar value, so callers can't confuse
// it with decoded text. Malformed input simply ends the iteration,
// the remaining bytes are never visited.
type ltrStringIterator struct{ index int }

func (self *ltrStringIterator) Next(text string) rune {
	if self.index < len(text) {
		codePoint, runeSize := utf8.DecodeRuneInString(text[self.index:])
		if codePoint == utf8.RuneError && runeSize <= 1 {
			self.index = len(text)
			return -1
		}
		self.index += runeSize
		return codePoint
	} else {
		return -1
	}
}

func (self *ltrStringIterator) PeekNext(text string) rune {
	if self.index < len(text) {
		codePoint, runeSize := utf8.DecodeRuneInString(text[self.index:])
		if codePoint == utf8.RuneError && runeSize <= 1 {
			return -1
		}
		return codePoint
	} else {
		return -1
	}
}

// countCodePoints returns the number of code points that an iterator
// would yield for the given text. Malformed trailing bytes don't count.
func countCodePoints(text string) int {
	var iter ltrStringIterator
	count := 0
	for iter.Next(text) != -1 {
		count += 1
	}
	return count
}

// byteOffsetAfterCodePoints returns the byte offset right after the
// first n code points of the text, or len(text) if the text is shorter.
// The offset always falls on a code point boundary.
func byteOffsetAfterCodePoints(text string, n int) int {
	var iter ltrStringIterator
	for i := 0; i < n; i++ {
		if iter.Next(text) == -1 {
			break
		}
	}
	return iter.index
}

// firstCodePoints returns the prefix of the text holding its first
// n code points.
func firstCodePoints(text string, n int) string {
	return text[:byteOffsetAfterCodePoints(text, n)]
}

// lastCodePoints returns the suffix of the text holding its last
// n code points.
func lastCodePoints(text string, n int) string {
	total := countCodePoints(text)
	if total <= n {
		return text
	}
	return text[byteOffsetAfterCodePoints(text, total-n):]
}
