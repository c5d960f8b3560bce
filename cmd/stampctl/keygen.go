package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wippyai/wasmstamp/signer"
)

var keygenLabel string

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a new Ed25519 signing key pair",
	Args:  cobra.NoArgs,
	RunE:  runKeygen,
}

func init() {
	keygenCmd.Flags().StringVar(&keygenLabel, "label", "default", "label for the new key pair")
	root.AddCommand(keygenCmd)
}

func runKeygen(cmd *cobra.Command, args []string) error {
	dir := keyDir()
	log.Sugar().Debugw("generating key pair", "label", keygenLabel, "dir", dir)

	kp, err := signer.Generate()
	if err != nil {
		return err
	}
	if err := kp.SaveTo(dir, keygenLabel); err != nil {
		return err
	}

	fmt.Printf("Generated key pair '%s'\npublic key: %s\n", keygenLabel, kp.PublicKey().Hex())
	return nil
}
