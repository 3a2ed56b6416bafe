// Live traffic inspector for Lineage 2 login server connections.
//
// Captures TCP traffic on the configured device, decrypts each payload with
// the configured Blowfish key, verifies the trailer checksum, and dumps the
// plaintext packets to stdout.
package main

import (
	"flag"
	"math"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcap"
	"github.com/sirupsen/logrus"

	"github.com/vanor89/l2crypt/internal/core"
)

var (
	device     = flag.String("d", "", "Device on which to listen for packets (overrides the configured one)")
	configPath = flag.String("c", ".", "Path to the directory containing the config file")
)

func main() {
	flag.Parse()
	cfg := core.LoadConfig(*configPath)

	dev := cfg.Sniffer.Device
	if *device != "" {
		dev = *device
	}

	handle, err := pcap.OpenLive(dev, math.MaxInt32, false, pcap.BlockForever)
	if err != nil {
		logrus.Fatalf("error opening handle on %s: %v", dev, err)
	}
	if err := handle.SetBPFFilter(cfg.SnifferFilter()); err != nil {
		logrus.Fatalf("error setting filter %q: %v", cfg.SnifferFilter(), err)
	}

	tracker, err := newSessionTracker(cfg)
	if err != nil {
		logrus.Fatalf("error initializing session tracker: %v", err)
	}

	logrus.Infof("inspecting login traffic on %s (%s)", dev, cfg.SnifferFilter())
	packetSource := gopacket.NewPacketSource(handle, handle.LinkType())
	for packet := range packetSource.Packets() {
		tracker.handlePacket(packet)
	}
}
