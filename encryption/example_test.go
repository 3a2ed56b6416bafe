package encryption_test

import (
	"fmt"

	"github.com/vanor89/l2crypt/encryption"
)

// ExampleNewLoginCryptor demonstrates encrypting and decrypting a packet
// buffer. Buffers must be a positive multiple of the 8-byte block size.
func ExampleNewLoginCryptor() {
	cryptor, err := encryption.NewLoginCryptor("_;v.]05-31!|+-%xT>2,")
	if err != nil {
		panic(err)
	}

	plaintext := []byte("a login packet, padded..")

	ciphertext, err := cryptor.Crypt(plaintext)
	if err != nil {
		panic(err)
	}

	decrypted, err := cryptor.Decrypt(ciphertext)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Ciphertext length: %d\n", len(ciphertext))
	fmt.Printf("Round trip: %s\n", decrypted)

	// Output:
	// Ciphertext length: 24
	// Round trip: a login packet, padded..
}

// ExampleLoginCryptor_Checksum demonstrates the trailer checksum. Note that
// verifying also rewrites the trailer word, so the first call on a buffer
// that was never stamped reports false and every later call reports true.
func ExampleLoginCryptor_Checksum() {
	cryptor, err := encryption.NewLoginCryptor("_;v.]05-31!|+-%xT>2,")
	if err != nil {
		panic(err)
	}

	packet := make([]byte, 16)
	copy(packet, "payload.")

	first, _ := cryptor.Checksum(packet)
	second, _ := cryptor.Checksum(packet)

	fmt.Printf("Before stamping: %t\n", first)
	fmt.Printf("After stamping: %t\n", second)

	// Output:
	// Before stamping: false
	// After stamping: true
}
