package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wippyai/wasmstamp/errors"
	"github.com/wippyai/wasmstamp/manifest"
	"github.com/wippyai/wasmstamp/wasm"
)

var (
	embedManifest string
	embedSection  string
	embedOut      string
)

var embedCmd = &cobra.Command{
	Use:   "embed <plugin.wasm>",
	Short: "Embed a validated manifest into a wasm module",
	Long: `Embed a validated manifest into a wasm module.

The manifest JSON is checked against the platform's rules (name charset,
semver fields, complete dependencies) and then spliced verbatim into the
module as a custom section, so the loader reads back the exact bytes of
the manifest file.`,
	Args: cobra.ExactArgs(1),
	RunE: runEmbed,
}

func init() {
	embedCmd.Flags().StringVar(&embedManifest, "manifest", "manifest.json", "path to the manifest JSON file")
	embedCmd.Flags().StringVar(&embedSection, "section", "", "custom section name (default from config)")
	embedCmd.Flags().StringVar(&embedOut, "out", "", "output path (default: rewrite the input in place)")
	root.AddCommand(embedCmd)
}

func runEmbed(cmd *cobra.Command, args []string) error {
	input := args[0]

	section := embedSection
	if section == "" {
		section = cfg.Section
	}
	out := embedOut
	if out == "" {
		out = input
	}

	raw, err := os.ReadFile(embedManifest)
	if err != nil {
		return errors.IO(errors.PhaseLoad, "read manifest", err)
	}
	m, err := manifest.Decode(raw)
	if err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}
	log.Sugar().Debugw("manifest validated", "name", m.Name, "version", m.Version)

	module, err := os.ReadFile(input)
	if err != nil {
		return errors.IO(errors.PhaseLoad, "read module", err)
	}

	// The manifest file's bytes go in verbatim; validation never
	// changes what the loader will read back.
	stamped, err := wasm.InsertCustomSection(module, section, raw)
	if err != nil {
		return errors.InvalidMagic(input, err)
	}

	if err := writeFileAtomic(out, stamped); err != nil {
		return errors.IO(errors.PhaseWrite, "write module", err)
	}

	fmt.Printf("Embedded manifest for %s v%s into %s (section '%s')\n", m.Name, m.Version, out, section)
	return nil
}
