// Command stampctl is the plugin release toolbox: it hashes release
// artifacts, manages Ed25519 signing keys, signs and verifies plugin
// files, and embeds validated manifests into wasm modules.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/wasmstamp/config"
	"github.com/wippyai/wasmstamp/signer"
)

var (
	root = &cobra.Command{
		Use:           "stampctl",
		Short:         "Plugin release tooling: hash, sign, verify, embed",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	verbosity  int
	configPath string
	keyDirFlag string

	cfg config.Config
	log *zap.Logger
)

func init() {
	root.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase log verbosity (-v info, -vv debug)")
	root.PersistentFlags().StringVar(&configPath, "config", "stampctl.toml",
		"path to TOML config file")
	root.PersistentFlags().StringVar(&keyDirFlag, "dir", "",
		"key storage directory (overrides config)")
	root.PersistentPreRunE = setup
}

func setup(cmd *cobra.Command, args []string) error {
	log = newLogger(verbosity)
	signer.SetLogger(log)

	var err error
	cfg, err = config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	log.Sugar().Debugw("configuration loaded",
		"config", configPath, "key_dir", cfg.KeyDir, "section", cfg.Section)
	return nil
}

func newLogger(verbosity int) *zap.Logger {
	level := zapcore.WarnLevel
	switch {
	case verbosity >= 2:
		level = zapcore.DebugLevel
	case verbosity == 1:
		level = zapcore.InfoLevel
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	l, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// keyDir resolves the key storage directory from the flag or config.
func keyDir() string {
	if keyDirFlag != "" {
		return keyDirFlag
	}
	return cfg.KeyDir
}

// writeFileAtomic writes data to a .tmp sibling and renames it over
// path.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func main() {
	err := root.Execute()
	if log != nil {
		_ = log.Sync()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
