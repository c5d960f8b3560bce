package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wippyai/wasmstamp/hasher"
)

var hashCmd = &cobra.Command{
	Use:   "hash <files...>",
	Short: "Compute the SHA3-512 hash of plugin files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHash,
}

func init() {
	root.AddCommand(hashCmd)
}

func runHash(cmd *cobra.Command, args []string) error {
	var failed int
	for _, path := range args {
		fi, err := os.Stat(path)
		if err != nil || !fi.Mode().IsRegular() {
			log.Sugar().Warnw("file does not exist or is not a regular file", "path", path)
			failed++
			continue
		}

		sum, err := hasher.SumFile(path)
		if err != nil {
			log.Sugar().Errorw("failed to hash file", "path", path, "error", err)
			failed++
			continue
		}
		fmt.Printf("%s  %s\n", sum, path)
	}

	if failed > 0 {
		return fmt.Errorf("failed to hash %d of %d file(s)", failed, len(args))
	}
	return nil
}
