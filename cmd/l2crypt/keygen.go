package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a random Blowfish key",
	Run:   KeygenCommand,
}

var KeySizeFlag int

func KeygenCommand(cmd *cobra.Command, args []string) {
	if KeySizeFlag < 1 || KeySizeFlag > 56 {
		fmt.Printf("key size must be between 1 and 56 bytes, got %d\n", KeySizeFlag)
		os.Exit(1)
	}

	key := make([]byte, KeySizeFlag)
	if _, err := rand.Read(key); err != nil {
		fmt.Printf("error generating key: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hex.EncodeToString(key))
}
