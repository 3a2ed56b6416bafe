package core

import (
	"testing"
	"time"
)

func TestConfig_SessionTTL(t *testing.T) {
	cfg := &Config{}
	if ttl := cfg.SessionTTL(); ttl != defaultSessionTTL {
		t.Errorf("SessionTTL() want = %s, got = %s", defaultSessionTTL, ttl)
	}

	cfg.Sniffer.SessionTTLSeconds = 90
	if ttl := cfg.SessionTTL(); ttl != 90*time.Second {
		t.Errorf("SessionTTL() want = %s, got = %s", 90*time.Second, ttl)
	}
}

func TestConfig_SnifferFilter(t *testing.T) {
	cfg := &Config{}
	cfg.Sniffer.LoginPort = 2106

	expected := "tcp and port 2106"
	if filter := cfg.SnifferFilter(); filter != expected {
		t.Errorf("SnifferFilter() want = %s, got = %s", expected, filter)
	}

	cfg.Sniffer.BPFFilter = "tcp and host 10.0.0.4"
	if filter := cfg.SnifferFilter(); filter != cfg.Sniffer.BPFFilter {
		t.Errorf("SnifferFilter() want = %s, got = %s", cfg.Sniffer.BPFFilter, filter)
	}
}
