package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wippyai/wasmstamp/errors"
	"github.com/wippyai/wasmstamp/signer"
)

var (
	verifyKey string
	verifyPub string
	verifySig string
)

var verifyCmd = &cobra.Command{
	Use:   "verify <file>",
	Short: "Verify a plugin file's Ed25519 signature",
	Long: `Verify a plugin file's Ed25519 signature.

The public key comes from --pub (hex) or from the stored key named by
--key. The signature comes from --sig (hex string or a file path); when
omitted, <file>.sig is read.`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyKey, "key", "", "label of the stored public key")
	verifyCmd.Flags().StringVar(&verifyPub, "pub", "", "hex public key to verify against")
	verifyCmd.Flags().StringVar(&verifySig, "sig", "", "hex signature or path to a signature file")
	root.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	file := args[0]

	pub, err := resolvePublicKey()
	if err != nil {
		return err
	}

	sigHex, err := resolveSignatureHex(file)
	if err != nil {
		return err
	}

	sig, err := signer.ParseSignature(sigHex, pub)
	if err != nil {
		return err
	}

	if err := sig.VerifyFile(file); err != nil {
		return err
	}

	fmt.Printf("Signature is valid for %s\n", file)
	return nil
}

func resolvePublicKey() (signer.PublicKey, error) {
	if verifyPub != "" {
		log.Sugar().Debug("using public key from --pub")
		return signer.ParsePublicKey(verifyPub)
	}

	label := verifyKey
	if label == "" {
		label = cfg.DefaultKey
	}
	if label == "" {
		return nil, errors.Usage("no public key: pass --pub or --key, or set default_key in the config")
	}
	return signer.LoadPublicKey(keyDir(), label)
}

func resolveSignatureHex(file string) (string, error) {
	if verifySig == "" {
		data, err := os.ReadFile(file + ".sig")
		if err != nil {
			return "", errors.IO(errors.PhaseVerify, "read signature file", err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	// --sig may name a signature file; anything else is taken as hex.
	if _, err := os.Stat(verifySig); err == nil {
		data, err := os.ReadFile(verifySig)
		if err != nil {
			return "", errors.IO(errors.PhaseVerify, "read signature file", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	return verifySig, nil
}
