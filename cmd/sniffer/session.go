package main

import (
	"encoding/binary"
	"fmt"

	"github.com/google/gopacket"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/vanor89/l2crypt/encryption"
	"github.com/vanor89/l2crypt/internal/core"
	corebytes "github.com/vanor89/l2crypt/internal/core/bytes"
)

// session holds the cryptor and running counters for one TCP flow.
type session struct {
	cryptor *encryption.LoginCryptor
	packets int
}

// sessionTracker maps flows to sessions. Sessions live in an expiring cache
// so flows that go quiet are eventually dropped without any bookkeeping here.
type sessionTracker struct {
	key      string
	sessions *cache.Cache
}

func newSessionTracker(cfg *core.Config) (*sessionTracker, error) {
	// Fail up front if the configured key can't derive a cipher state.
	if _, err := encryption.NewLoginCryptor(cfg.Crypt.Key); err != nil {
		return nil, err
	}
	return &sessionTracker{
		key:      cfg.Crypt.Key,
		sessions: cache.New(cfg.SessionTTL(), 2*cfg.SessionTTL()),
	}, nil
}

func (t *sessionTracker) handlePacket(packet gopacket.Packet) {
	transport := packet.TransportLayer()
	app := packet.ApplicationLayer()
	if transport == nil || app == nil {
		return
	}

	flow := transport.TransportFlow()
	sess, err := t.sessionFor(flow.String())
	if err != nil {
		logrus.Errorf("error deriving session cryptor: %v", err)
		return
	}
	sess.packets++
	t.sessions.SetDefault(flow.String(), sess)

	log := logrus.WithFields(logrus.Fields{
		"flow":    fmt.Sprintf("%v -> %v", flow.Src(), flow.Dst()),
		"packets": sess.packets,
	})

	data := app.Payload()
	plaintext, ok, err := decodePayload(sess.cryptor, data)
	if err != nil {
		log.Warnf("skipping %d byte payload: %v", len(data), err)
		return
	}

	log.Infof("%d byte packet, checksum ok: %t", len(data), ok)
	fmt.Print(corebytes.DumpPayload(corebytes.StripPadding(plaintext)))
}

func (t *sessionTracker) sessionFor(flowKey string) (*session, error) {
	if cached, found := t.sessions.Get(flowKey); found {
		return cached.(*session), nil
	}

	cryptor, err := encryption.NewLoginCryptor(t.key)
	if err != nil {
		return nil, err
	}
	sess := &session{cryptor: cryptor}
	t.sessions.SetDefault(flowKey, sess)
	return sess, nil
}

// decodePayload strips the protocol's 2-byte length header, decrypts the
// block-aligned remainder and verifies the trailer checksum.
func decodePayload(cryptor *encryption.LoginCryptor, data []byte) ([]byte, bool, error) {
	if len(data) < 2 {
		return nil, false, fmt.Errorf("%d bytes is too short for a length header", len(data))
	}
	size := int(binary.LittleEndian.Uint16(data))
	if size < 2 || size > len(data) {
		return nil, false, fmt.Errorf("length header %d does not match %d captured bytes", size, len(data))
	}

	plaintext, err := cryptor.Decrypt(data[2:size])
	if err != nil {
		return nil, false, err
	}
	ok, err := cryptor.Checksum(plaintext)
	if err != nil {
		return nil, false, err
	}
	return plaintext, ok, nil
}
