package encryption

import "fmt"

// BlowfishEngine processes single 8-byte blocks in one direction. The
// zero value is unusable until Init has derived a cipher state; after
// that the engine is read-only and safe for concurrent ProcessBlock
// calls on non-overlapping output regions.
type BlowfishEngine struct {
	cipher *blowfishCipher
	mode   Mode
}

// Init derives the engine's cipher state from key and fixes its mode.
// It must be called exactly once before any block processing.
func (e *BlowfishEngine) Init(mode Mode, key []byte) error {
	cipher, err := newCipherState(key)
	if err != nil {
		return err
	}
	e.cipher = cipher
	e.mode = mode
	return nil
}

// BlockSize returns the Blowfish block size, 8 bytes.
func (e *BlowfishEngine) BlockSize() int { return BlockSize }

// ProcessBlock transforms the 8 bytes of input at inOffset and writes the
// result to output at outOffset, encrypting or decrypting according to the
// engine's mode. input and output may be the same slice only when the
// offsets coincide.
func (e *BlowfishEngine) ProcessBlock(input []byte, inOffset int, output []byte, outOffset int) error {
	if e.cipher == nil {
		return ErrNotInitialized
	}
	if err := checkBlockWindow(input, inOffset, "input"); err != nil {
		return err
	}
	if err := checkBlockWindow(output, outOffset, "output"); err != nil {
		return err
	}

	src := input[inOffset : inOffset+BlockSize]
	dst := output[outOffset : outOffset+BlockSize]
	if e.mode == Encrypt {
		e.cipher.encrypt(src, dst)
	} else {
		e.cipher.decrypt(src, dst)
	}
	return nil
}

func checkBlockWindow(buf []byte, offset int, name string) error {
	if offset < 0 || offset+BlockSize > len(buf) {
		return fmt.Errorf("encryption: %s buffer too short for a block at offset %d", name, offset)
	}
	return nil
}
