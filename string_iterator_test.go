package gridfont

import "testing"

func testFailRunes(t *testing.T, expected rune, got rune) {
	t.Fatalf("expected '%s', got '%s'", string(expected), string(got))
}

func TestStrIterator(t *testing.T) {
	// simple ascii case
	var iter ltrStringIterator
	for _, expected := range []rune{'o', 'n', 'e', ' ', 'd', 'a', 'y', -1, -1, -1} {
		got := iter.Next("one day")
		if got != expected { testFailRunes(t, expected, got) }
	}

	// multi-byte sequences (2, 3 and 4 bytes)
	iter = ltrStringIterator{}
	for _, expected := range []rune{'Д', 'а', '—', '“', 0x10348, -1} {
		got := iter.Next("Да—“\U00010348")
		if got != expected { testFailRunes(t, expected, got) }
	}

	// peek doesn't advance
	iter = ltrStringIterator{}
	if got := iter.PeekNext("ab"); got != 'a' { testFailRunes(t, 'a', got) }
	if got := iter.Next("ab"); got != 'a' { testFailRunes(t, 'a', got) }
	if got := iter.PeekNext("ab"); got != 'b' { testFailRunes(t, 'b', got) }
}

func TestStrIteratorMalformed(t *testing.T) {
	// decoding must treat a malformed sequence as end of string,
	// signaled with the same -1 sentinel, and never read past it
	malformed := []string{
		"\xFF",             // invalid byte
		"a\x80b",           // stray continuation byte
		"ab\xC3",           // truncated 2-byte sequence
		"ab\xE2\x80",       // truncated 3-byte sequence
		"\xF0\x9D\x84",     // truncated 4-byte sequence
		"ok\xED\xA0\x80no", // surrogate half
	}
	for _, text := range malformed {
		var iter ltrStringIterator
		count := 0
		for iter.Next(text) != -1 {
			count += 1
			if count > len(text) {
				t.Fatalf("iterator on %q never terminated", text)
			}
		}
		// once -1 is returned, it keeps being returned
		if got := iter.Next(text); got != -1 { testFailRunes(t, -1, got) }
		if iter.index > len(text) {
			t.Fatalf("iterator on %q read past the string", text)
		}
	}

	if got := countCodePoints("ab\xC3"); got != 2 {
		t.Fatalf("expected 2 code points, got %d", got)
	}
}

func TestCodePointSlicing(t *testing.T) {
	text := "ab«cd»" // 2-byte guillemets, 8 bytes total

	if got := countCodePoints(text); got != 6 {
		t.Fatalf("expected 6 code points, got %d", got)
	}
	tests := []struct {
		first, last int
		expectFirst string
		expectLast  string
	}{
		{0, 0, "", ""},
		{1, 1, "a", "»"},
		{3, 3, "ab«", "cd»"},
		{6, 6, text, text},
		{9, 9, text, text}, // n beyond length keeps everything
	}
	for _, test := range tests {
		if got := firstCodePoints(text, test.first); got != test.expectFirst {
			t.Fatalf("firstCodePoints(%d): expected %q, got %q", test.first, test.expectFirst, got)
		}
		if got := lastCodePoints(text, test.last); got != test.expectLast {
			t.Fatalf("lastCodePoints(%d): expected %q, got %q", test.last, test.expectLast, got)
		}
	}
}
