package encryption

import (
	"encoding/hex"
	"testing"
)

// Published Blowfish ECB vectors. The halves are given at word level since
// the login protocol's byte encoding is little-endian per word while the
// reference vectors are written big-endian.
var knownAnswerTests = []struct {
	key            string
	pl, pr, cl, cr uint32
}{
	{"0000000000000000", 0x00000000, 0x00000000, 0x4EF99745, 0x6198DD78},
	{"FFFFFFFFFFFFFFFF", 0xFFFFFFFF, 0xFFFFFFFF, 0x51866FD5, 0xB85ECB8A},
	{"3000000000000000", 0x10000000, 0x00000001, 0x7D856F9A, 0x613063F2},
	{"1111111111111111", 0x11111111, 0x11111111, 0x2466DD87, 0x8B963C9D},
	{"0123456789ABCDEF", 0x11111111, 0x11111111, 0x61F9C380, 0x2281B096},
	{"FEDCBA9876543210", 0x01234567, 0x89ABCDEF, 0x0ACEAB0F, 0xC6A0A28D},
	{"0131D9619DC1376E", 0x5CD54CA8, 0x3DEF57DA, 0xB1B8CC0B, 0x250F09A0},
	{"7CA110454A1A6E57", 0x01A1D6D0, 0x39776742, 0x59C68245, 0xEB05282B},
}

func TestEncryptWordsKnownAnswers(t *testing.T) {
	for _, tt := range knownAnswerTests {
		key, err := hex.DecodeString(tt.key)
		if err != nil {
			t.Fatal(err)
		}
		cipher, err := newCipherState(key)
		if err != nil {
			t.Fatalf("newCipherState(%s) returned error: %v", tt.key, err)
		}

		l, r := encryptWords(tt.pl, tt.pr, cipher)
		if l != tt.cl || r != tt.cr {
			t.Errorf("key %s: encryptWords(%08x, %08x) = (%08x, %08x), want (%08x, %08x)",
				tt.key, tt.pl, tt.pr, l, r, tt.cl, tt.cr)
		}

		l, r = decryptWords(tt.cl, tt.cr, cipher)
		if l != tt.pl || r != tt.pr {
			t.Errorf("key %s: decryptWords(%08x, %08x) = (%08x, %08x), want (%08x, %08x)",
				tt.key, tt.cl, tt.cr, l, r, tt.pl, tt.pr)
		}
	}
}

// The vector from Schneier's original test suite: the ASCII alphabet as the
// key and "BLOWFISH" as the plaintext.
func TestEncryptWordsAlphabetKey(t *testing.T) {
	cipher, err := newCipherState([]byte("abcdefghijklmnopqrstuvwxyz"))
	if err != nil {
		t.Fatal(err)
	}

	l, r := encryptWords(0x424C4F57, 0x46495348, cipher)
	if l != 0x324ED0FE || r != 0xF413A203 {
		t.Errorf("encryptWords(BLOWFISH) = (%08x, %08x), want (324ed0fe, f413a203)", l, r)
	}
}

// Blocks are serialized little-endian per 32-bit half, so the byte form of
// the all-zero vector is the word pair (4EF99745, 6198DD78) written LE.
func TestEncryptBlockByteOrder(t *testing.T) {
	cipher, err := newCipherState(make([]byte, 8))
	if err != nil {
		t.Fatal(err)
	}

	block := make([]byte, 8)
	cipher.encrypt(block, block)

	want := []byte{0x45, 0x97, 0xF9, 0x4E, 0x78, 0xDD, 0x98, 0x61}
	for i := range want {
		if block[i] != want[i] {
			t.Fatalf("encrypted block = % x, want % x", block, want)
		}
	}

	cipher.decrypt(block, block)
	for i := range block {
		if block[i] != 0 {
			t.Fatalf("decrypted block = % x, want all zeroes", block)
		}
	}
}

func TestNewCipherStateKeyBounds(t *testing.T) {
	for _, size := range []int{0, 57, 100} {
		if _, err := newCipherState(make([]byte, size)); err == nil {
			t.Errorf("expected newCipherState to reject a %d byte key", size)
		} else if _, ok := err.(KeySizeError); !ok {
			t.Errorf("expected KeySizeError for a %d byte key, got %T", size, err)
		}
	}

	// 1 and 56 bytes are the historical bounds and must both derive usable,
	// distinct states.
	minKey, err := newCipherState([]byte{0x01})
	if err != nil {
		t.Fatalf("1 byte key rejected: %v", err)
	}
	maxKey, err := newCipherState(make([]byte, 56))
	if err != nil {
		t.Fatalf("56 byte key rejected: %v", err)
	}

	minL, minR := encryptWords(0, 0, minKey)
	maxL, maxR := encryptWords(0, 0, maxKey)
	if minL == maxL && minR == maxR {
		t.Error("expected distinct cipher states for distinct keys")
	}
}
