package encryption

import (
	"encoding/binary"
	"fmt"
)

// LoginCryptor applies the login protocol's packet cipher to whole buffers.
// It holds two independent engines derived from the same key, one per
// direction, so encrypting and decrypting never share any state.
type LoginCryptor struct {
	encryptEngine *BlowfishEngine
	decryptEngine *BlowfishEngine
}

// NewLoginCryptor returns a cryptor whose engines are keyed with the raw
// bytes of key.
func NewLoginCryptor(key string) (*LoginCryptor, error) {
	keyBytes := []byte(key)

	cryptor := &LoginCryptor{
		encryptEngine: &BlowfishEngine{},
		decryptEngine: &BlowfishEngine{},
	}
	if err := cryptor.encryptEngine.Init(Encrypt, keyBytes); err != nil {
		return nil, err
	}
	if err := cryptor.decryptEngine.Init(Decrypt, keyBytes); err != nil {
		return nil, err
	}
	return cryptor, nil
}

// Crypt encrypts raw block by block and returns the result as a newly
// allocated slice of the same length. raw must be a positive multiple of
// the block size.
func (c *LoginCryptor) Crypt(raw []byte) ([]byte, error) {
	return applyEngine(c.encryptEngine, raw)
}

// Decrypt decrypts raw block by block and returns the result as a newly
// allocated slice of the same length. raw must be a positive multiple of
// the block size.
func (c *LoginCryptor) Decrypt(raw []byte) ([]byte, error) {
	return applyEngine(c.decryptEngine, raw)
}

func applyEngine(engine *BlowfishEngine, raw []byte) ([]byte, error) {
	if len(raw) == 0 || len(raw)%BlockSize != 0 {
		return nil, fmt.Errorf("encryption: invalid data length %d: must be a positive multiple of %d", len(raw), BlockSize)
	}

	result := make([]byte, len(raw))
	for offset := 0; offset < len(raw); offset += BlockSize {
		if err := engine.ProcessBlock(raw, offset, result, offset); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Checksum verifies the 32-bit XOR checksum a packet carries in its
// trailer: every little-endian word before the last 8 bytes is folded into
// an accumulator, which is compared against the word stored at len-8. The
// stored word is then overwritten with the computed value whether or not
// it matched, which is what the protocol expects; it also means a second
// call on the same buffer always reports true.
func (c *LoginCryptor) Checksum(raw []byte) (bool, error) {
	if len(raw) < BlockSize {
		return false, fmt.Errorf("encryption: buffer length %d too short for a checksum trailer", len(raw))
	}

	var computed uint32
	trailer := len(raw) - BlockSize
	for i := 0; i+4 <= trailer; i += 4 {
		computed ^= binary.LittleEndian.Uint32(raw[i:])
	}

	stored := binary.LittleEndian.Uint32(raw[trailer:])
	binary.LittleEndian.PutUint32(raw[trailer:], computed)

	return stored == computed, nil
}
