package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vanor89/l2crypt/encryption"
	"github.com/vanor89/l2crypt/internal/core"
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt [in] [out]",
	Short: "Encrypt a block-aligned packet dump",
	Run:   EncryptCommand,
	Args:  cobra.ExactArgs(2),
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt [in] [out]",
	Short: "Decrypt a block-aligned packet dump",
	Run:   DecryptCommand,
	Args:  cobra.ExactArgs(2),
}

func EncryptCommand(cmd *cobra.Command, args []string) {
	transformFile(args[0], args[1], encryption.Encrypt)
}

func DecryptCommand(cmd *cobra.Command, args []string) {
	transformFile(args[0], args[1], encryption.Decrypt)
}

func transformFile(inPath, outPath string, mode encryption.Mode) {
	logger, cryptor := bootstrap()

	data, err := os.ReadFile(inPath)
	if err != nil {
		logger.Fatalf("error reading %s: %v", inPath, err)
	}

	var out []byte
	if mode == encryption.Encrypt {
		out, err = cryptor.Crypt(data)
	} else {
		out, err = cryptor.Decrypt(data)
	}
	if err != nil {
		logger.Fatalf("error running %s over %s: %v", mode, inPath, err)
	}

	if err := os.WriteFile(outPath, out, 0644); err != nil {
		logger.Fatalf("error writing %s: %v", outPath, err)
	}
	logger.Infof("%sed %d bytes from %s to %s", mode, len(out), inPath, outPath)
}

// bootstrap loads the config, builds the logger and derives a cryptor from
// either the --key flag or the configured key.
func bootstrap() (*zap.SugaredLogger, *encryption.LoginCryptor) {
	cfg := core.LoadConfig(ConfigFlag)

	logger, err := core.NewLogger(cfg)
	if err != nil {
		fmt.Printf("error building logger: %v\n", err)
		os.Exit(1)
	}
	logger.Debugf("loaded config: %s", spew.Sdump(cfg))

	key := cfg.Crypt.Key
	if KeyFlag != "" {
		key = KeyFlag
	}
	cryptor, err := encryption.NewLoginCryptor(key)
	if err != nil {
		logger.Fatalf("error deriving cipher state: %v", err)
	}
	return logger, cryptor
}
