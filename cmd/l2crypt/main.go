package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	ConfigFlag string
	KeyFlag    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "l2crypt",
		Short: "Blowfish packet encryption tools for the Lineage 2 login protocol",
	}
	rootCmd.PersistentFlags().StringVarP(&ConfigFlag, "config", "c", ".", "Path to the directory containing the config file")
	rootCmd.PersistentFlags().StringVarP(&KeyFlag, "key", "k", "", "Blowfish key, overriding the configured one")

	verifyCmd.Flags().BoolVar(&WriteFlag, "write", false, "Write the re-stamped trailer back to the file")
	keygenCmd.Flags().IntVarP(&KeySizeFlag, "size", "n", 16, "Key length in bytes (1 to 56)")

	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(keygenCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
	}
}
