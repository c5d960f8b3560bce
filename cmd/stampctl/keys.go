package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/wippyai/wasmstamp/signer"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the stored signing keys",
	Args:  cobra.NoArgs,
	RunE:  runKeys,
}

func init() {
	root.AddCommand(keysCmd)
}

func runKeys(cmd *cobra.Command, args []string) error {
	dir := keyDir()
	keys, err := signer.ListKeys(dir)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		fmt.Printf("No keys found in %s\n", dir)
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("LABEL", "PUBLIC KEY", "MODIFIED")
	for _, k := range keys {
		t.Row(k.Label, k.PublicHex, k.Modified.Format("2006-01-02 15:04:05"))
	}
	fmt.Println(t)
	return nil
}
