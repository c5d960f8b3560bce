package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wippyai/wasmstamp/errors"
	"github.com/wippyai/wasmstamp/signer"
)

var (
	signKey         string
	signOut         string
	signInteractive bool
)

var signCmd = &cobra.Command{
	Use:   "sign <file>",
	Short: "Sign a plugin file with a stored key",
	Args:  cobra.ExactArgs(1),
	RunE:  runSign,
}

func init() {
	signCmd.Flags().StringVar(&signKey, "key", "", "label of the signing key (default from config)")
	signCmd.Flags().StringVar(&signOut, "out", "", "write the hex signature to this file instead of stdout")
	signCmd.Flags().BoolVarP(&signInteractive, "interactive", "i", false, "pick the signing key interactively")
	root.AddCommand(signCmd)
}

func runSign(cmd *cobra.Command, args []string) error {
	file := args[0]

	if signInteractive {
		return runInteractiveSign(keyDir(), file)
	}

	label := signKey
	if label == "" {
		label = cfg.DefaultKey
	}
	if label == "" {
		return errors.Usage("no signing key: pass --key or set default_key in the config")
	}

	kp, err := signer.LoadKeyPair(keyDir(), label)
	if err != nil {
		return err
	}

	sig, err := kp.SignFile(file)
	if err != nil {
		return err
	}

	if signOut != "" {
		if err := os.WriteFile(signOut, []byte(sig.Hex()), 0o644); err != nil {
			return errors.IO(errors.PhaseSign, "write signature", err)
		}
		fmt.Printf("Signature written to %s\n", signOut)
		return nil
	}

	fmt.Printf("signature:  %s\npublic key: %s\n", sig.Hex(), sig.PublicKey().Hex())
	return nil
}
