// Package chacha implements the ChaCha block function, the keystream core of
// the ChaCha family of stream ciphers defined in RFC 8439. A Block is keyed
// once with a 256-bit key and a 64-bit nonce, then produces independent
// 64-byte keystream blocks addressed by a caller-supplied 64-bit counter.
// Encryption and decryption are the same operation: XORing a keystream block
// into a buffer twice restores the original bytes.
//
// The package deliberately stops at single-block granularity. Stream
// position bookkeeping, partial-block buffering, counter-overflow policy,
// and authentication all belong to the caller.
package chacha

import (
	"encoding/binary"

	"github.com/codahale/chacha/internal/mem"
	"github.com/codahale/chacha/internal/permute"
)

const (
	// KeySize is the length of a ChaCha key in bytes.
	KeySize = 32
	// NonceSize is the length of a ChaCha nonce in bytes.
	NonceSize = 8
	// BlockSize is the length of a single keystream block in bytes.
	BlockSize = 64
)

// The first four state words, the little-endian encoding of
// "expand 32-byte k".
const (
	sigma0 uint32 = 0x61707865 // "expa"
	sigma1 uint32 = 0x3320646e // "nd 3"
	sigma2 uint32 = 0x79622d32 // "2-by"
	sigma3 uint32 = 0x6b206574 // "te k"
)

// A Block is a keyed instance of the ChaCha block function. Its state holds
// the four constant words, eight key words, two counter words (always zero in
// the stored state; the per-call counter is written onto a private copy), and
// two nonce words.
//
// Generate and ApplyKeystream never mutate the Block, so one Block may be
// shared by concurrent callers computing different counters. Clear is the
// exception and requires exclusive access.
type Block struct {
	state  [16]uint32
	rounds int
}

// New returns a Block keyed with the given key and nonce. rounds selects the
// family variant: 8 (ChaCha8), 12 (ChaCha12), or 20 (ChaCha20); any other
// value panics.
func New(key *[KeySize]byte, nonce *[NonceSize]byte, rounds int) *Block {
	if rounds != 8 && rounds != 12 && rounds != 20 {
		panic("chacha: rounds must be 8, 12, or 20")
	}

	return &Block{
		state: [16]uint32{
			sigma0, sigma1, sigma2, sigma3,
			binary.LittleEndian.Uint32(key[0:4]),
			binary.LittleEndian.Uint32(key[4:8]),
			binary.LittleEndian.Uint32(key[8:12]),
			binary.LittleEndian.Uint32(key[12:16]),
			binary.LittleEndian.Uint32(key[16:20]),
			binary.LittleEndian.Uint32(key[20:24]),
			binary.LittleEndian.Uint32(key[24:28]),
			binary.LittleEndian.Uint32(key[28:32]),
			0, 0,
			binary.LittleEndian.Uint32(nonce[0:4]),
			binary.LittleEndian.Uint32(nonce[4:8]),
		},
		rounds: rounds,
	}
}

// Generate overwrites out with the keystream block for the given counter.
// out must be exactly BlockSize bytes; any other length panics.
func (b *Block) Generate(counter uint64, out []byte) {
	if len(out) != BlockSize {
		panic("chacha: output must be exactly 64 bytes")
	}

	var block [BlockSize]byte
	b.keystream(counter, &block)
	copy(out, block[:])
}

// ApplyKeystream XORs the keystream block for the given counter into out in
// place. Applying it twice with the same counter restores the original
// bytes, which is how both encryption and decryption are performed. out must
// be exactly BlockSize bytes; any other length panics.
func (b *Block) ApplyKeystream(counter uint64, out []byte) {
	if len(out) != BlockSize {
		panic("chacha: output must be exactly 64 bytes")
	}

	var block [BlockSize]byte
	b.keystream(counter, &block)
	mem.XOR(out, out, block[:])
}

// Clear wipes the key, nonce, and constant words from the stored state. The
// Block must not be used afterward.
func (b *Block) Clear() {
	clear(b.state[:])
}

// keystream serializes the block function output for one counter value. The
// initial state is a private copy of the stored state with the counter words
// set; the working state evolves through the rounds and is then combined
// with the initial state by the feed-forward addition, which is what makes
// the output non-invertible.
func (b *Block) keystream(counter uint64, block *[BlockSize]byte) {
	initial := b.state
	setCounter(&initial, counter)

	working := initial
	permute.Rounds(&working, b.rounds)

	for i, w := range working {
		binary.LittleEndian.PutUint32(block[i*4:], w+initial[i])
	}
}

// setCounter writes the 64-bit block counter into words 12 and 13, low half
// first, leaving every other word untouched.
func setCounter(s *[16]uint32, counter uint64) {
	s[12] = uint32(counter & 0xffffffff)
	s[13] = uint32(counter >> 32)
}
