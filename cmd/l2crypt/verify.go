package main

import (
	"os"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [file]",
	Short: "Check the trailer checksum of a decrypted packet dump",
	Run:   VerifyCommand,
	Args:  cobra.ExactArgs(1),
}

var WriteFlag bool

func VerifyCommand(cmd *cobra.Command, args []string) {
	logger, cryptor := bootstrap()

	data, err := os.ReadFile(args[0])
	if err != nil {
		logger.Fatalf("error reading %s: %v", args[0], err)
	}

	// Checksum re-stamps the trailer as a side effect, so when --write is
	// set the buffer we save back is always synchronized.
	ok, err := cryptor.Checksum(data)
	if err != nil {
		logger.Fatalf("error checksumming %s: %v", args[0], err)
	}
	if ok {
		logger.Infof("%s: checksum OK", args[0])
	} else {
		logger.Warnf("%s: checksum mismatch", args[0])
	}

	if WriteFlag {
		if err := os.WriteFile(args[0], data, 0644); err != nil {
			logger.Fatalf("error writing %s: %v", args[0], err)
		}
		logger.Infof("%s: trailer re-stamped", args[0])
	}
}
