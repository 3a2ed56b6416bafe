/*
* Blowfish implementation adapted to work with the Lineage 2 login protocol.
 */
package encryption

import (
	"errors"
	"strconv"
)

// The Blowfish block size in bytes.
const BlockSize = 8

// Mode is the direction a BlowfishEngine operates in. It is fixed when the
// engine is initialized and never changes for the engine's lifetime.
type Mode int

const (
	Encrypt Mode = iota
	Decrypt
)

func (m Mode) String() string {
	switch m {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

type KeySizeError int

func (k KeySizeError) Error() string {
	return "encryption: invalid key size " + strconv.Itoa(int(k))
}

// ErrNotInitialized is returned by ProcessBlock when the engine has not
// been given a key via Init.
var ErrNotInitialized = errors.New("encryption: engine not initialized")
