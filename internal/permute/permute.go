// Package permute implements the ChaCha permutation: the add-rotate-xor
// quarter round and the column/diagonal double round over a 16-word state.
package permute

import "math/bits"

// QuarterRound mixes the four state words at indices a, b, c, and d in place.
// Additions wrap mod 2^32; the same instruction sequence executes regardless
// of the word values.
func QuarterRound(s *[16]uint32, a, b, c, d int) {
	s[a] += s[b]
	s[d] ^= s[a]
	s[d] = bits.RotateLeft32(s[d], 16)

	s[c] += s[d]
	s[b] ^= s[c]
	s[b] = bits.RotateLeft32(s[b], 12)

	s[a] += s[b]
	s[d] ^= s[a]
	s[d] = bits.RotateLeft32(s[d], 8)

	s[c] += s[d]
	s[b] ^= s[c]
	s[b] = bits.RotateLeft32(s[b], 7)
}

// DoubleRound applies one column pass followed by one diagonal pass of
// quarter rounds. The index groupings are fixed by RFC 8439; changing them
// yields a different, non-interoperable cipher.
func DoubleRound(s *[16]uint32) {
	QuarterRound(s, 0, 4, 8, 12)
	QuarterRound(s, 1, 5, 9, 13)
	QuarterRound(s, 2, 6, 10, 14)
	QuarterRound(s, 3, 7, 11, 15)

	QuarterRound(s, 0, 5, 10, 15)
	QuarterRound(s, 1, 6, 11, 12)
	QuarterRound(s, 2, 7, 8, 13)
	QuarterRound(s, 3, 4, 9, 14)
}

// Rounds applies rounds/2 double rounds to the state. rounds must be even;
// callers validate it against the supported variants.
func Rounds(s *[16]uint32, rounds int) {
	for range rounds / 2 {
		DoubleRound(s)
	}
}
