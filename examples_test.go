package chacha_test

import (
	"fmt"

	"github.com/codahale/chacha"
)

func ExampleBlock_generate() {
	var key [chacha.KeySize]byte
	var nonce [chacha.NonceSize]byte

	// Key the block function and generate the first keystream block.
	b := chacha.New(&key, &nonce, 20)
	keystream := make([]byte, chacha.BlockSize)
	b.Generate(0, keystream)

	fmt.Printf("%x\n", keystream[:16])
	// Output: 76b8e0ada0f13d90405d6ae55386bd28
}

func ExampleBlock_applyKeystream() {
	var key [chacha.KeySize]byte
	copy(key[:], "this is 32 bytes of terrible key")
	var nonce [chacha.NonceSize]byte
	copy(nonce[:], "12345678")

	b := chacha.New(&key, &nonce, 20)

	// Encrypt a block of plaintext in place.
	buf := []byte("attack at dawn. attack at dawn. attack at dawn. attack at dawn.!")
	b.ApplyKeystream(0, buf)
	fmt.Printf("%x\n", buf[:16])

	// XOR is its own inverse: applying the same keystream block again
	// decrypts.
	b.ApplyKeystream(0, buf)
	fmt.Println(string(buf[:15]))

	// Output:
	// f5c8267f64718f822208e196adae0e52
	// attack at dawn.
}
