package encryption

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEngineRequiresInit(t *testing.T) {
	engine := &BlowfishEngine{}
	buf := make([]byte, BlockSize)

	err := engine.ProcessBlock(buf, 0, buf, 0)
	if !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestEngineInitRejectsBadKeys(t *testing.T) {
	engine := &BlowfishEngine{}

	if err := engine.Init(Encrypt, nil); err == nil {
		t.Error("expected Init to reject an empty key")
	}
	if err := engine.Init(Encrypt, make([]byte, 57)); err == nil {
		t.Error("expected Init to reject a 57 byte key")
	}
}

func TestEngineBlockSize(t *testing.T) {
	engine := &BlowfishEngine{}
	if engine.BlockSize() != 8 {
		t.Errorf("BlockSize() = %d, want 8", engine.BlockSize())
	}
}

func TestEngineProcessBlockBounds(t *testing.T) {
	engine := &BlowfishEngine{}
	if err := engine.Init(Encrypt, []byte("testkey")); err != nil {
		t.Fatal(err)
	}

	full := make([]byte, 16)
	short := make([]byte, 4)

	tests := []struct {
		name                string
		input, output       []byte
		inOffset, outOffset int
	}{
		{"short input", short, full, 0, 0},
		{"short output", full, short, 0, 0},
		{"input offset past end", full, full, 9, 0},
		{"output offset past end", full, full, 0, 9},
		{"negative input offset", full, full, -1, 0},
		{"negative output offset", full, full, 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := engine.ProcessBlock(tt.input, tt.inOffset, tt.output, tt.outOffset); err == nil {
				t.Error("expected ProcessBlock to reject out of bounds window")
			}
		})
	}
}

func TestEngineRoundTripAtOffsets(t *testing.T) {
	key := []byte("offsets")

	encrypter := &BlowfishEngine{}
	if err := encrypter.Init(Encrypt, key); err != nil {
		t.Fatal(err)
	}
	decrypter := &BlowfishEngine{}
	if err := decrypter.Init(Decrypt, key); err != nil {
		t.Fatal(err)
	}

	original := []byte("0123456789abcdefghijklmn")
	encrypted := make([]byte, len(original))
	for offset := 0; offset < len(original); offset += BlockSize {
		if err := encrypter.ProcessBlock(original, offset, encrypted, offset); err != nil {
			t.Fatalf("encrypt block at offset %d: %v", offset, err)
		}
	}
	if cmp.Equal(original, encrypted) {
		t.Fatal("expected encrypted buffer to differ from the original")
	}

	decrypted := make([]byte, len(original))
	for offset := 0; offset < len(original); offset += BlockSize {
		if err := decrypter.ProcessBlock(encrypted, offset, decrypted, offset); err != nil {
			t.Fatalf("decrypt block at offset %d: %v", offset, err)
		}
	}
	if diff := cmp.Diff(original, decrypted); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEngineInPlaceBlock(t *testing.T) {
	key := []byte("inplace")

	encrypter := &BlowfishEngine{}
	if err := encrypter.Init(Encrypt, key); err != nil {
		t.Fatal(err)
	}
	decrypter := &BlowfishEngine{}
	if err := decrypter.Init(Decrypt, key); err != nil {
		t.Fatal(err)
	}

	buf := []byte("8 bytes!")
	if err := encrypter.ProcessBlock(buf, 0, buf, 0); err != nil {
		t.Fatal(err)
	}
	if err := decrypter.ProcessBlock(buf, 0, buf, 0); err != nil {
		t.Fatal(err)
	}
	if string(buf) != "8 bytes!" {
		t.Errorf("in-place round trip produced %q", buf)
	}
}

// Two engines initialized with the same mode and key must transform a block
// identically.
func TestEngineDeterminism(t *testing.T) {
	key := []byte("same key both times")
	input := []byte("a block.")

	out1 := make([]byte, BlockSize)
	out2 := make([]byte, BlockSize)
	for _, out := range [][]byte{out1, out2} {
		engine := &BlowfishEngine{}
		if err := engine.Init(Encrypt, key); err != nil {
			t.Fatal(err)
		}
		if err := engine.ProcessBlock(input, 0, out, 0); err != nil {
			t.Fatal(err)
		}
	}

	if diff := cmp.Diff(out1, out2); diff != "" {
		t.Errorf("engines with identical keys disagree (-first +second):\n%s", diff)
	}
}
