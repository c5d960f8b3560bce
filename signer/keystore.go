package signer

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/wippyai/wasmstamp/errors"
)

// Key files live in a flat directory: <label>.key holds the private
// seed hex, <label>.pub the public key hex.

// KeyInfo describes one stored key pair.
type KeyInfo struct {
	Label     string
	PublicHex string
	Modified  time.Time
}

// SaveTo writes the pair's key files under dir, creating it if needed.
// An existing private key file is never overwritten.
func (k *KeyPair) SaveTo(dir, label string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.IO(errors.PhaseSign, "create key directory", err)
	}

	privPath := filepath.Join(dir, label+".key")
	pubPath := filepath.Join(dir, label+".pub")

	if _, err := os.Stat(privPath); err == nil {
		return errors.Exists(errors.PhaseSign, privPath)
	}

	if err := os.WriteFile(privPath, []byte(k.PrivateKeyHex()), 0o600); err != nil {
		return errors.IO(errors.PhaseSign, "write private key", err)
	}
	if err := os.WriteFile(pubPath, []byte(k.PublicKey().Hex()), 0o644); err != nil {
		return errors.IO(errors.PhaseSign, "write public key", err)
	}

	Logger().Sugar().Debugw("key pair saved", "label", label, "dir", dir)
	return nil
}

// LoadKeyPair reads the private key file for label under dir.
func LoadKeyPair(dir, label string) (*KeyPair, error) {
	path := filepath.Join(dir, label+".key")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(errors.PhaseSign, "private key", label)
		}
		return nil, errors.IO(errors.PhaseSign, "read private key", err)
	}
	return FromPrivateKeyHex(strings.TrimSpace(string(data)))
}

// LoadPublicKey reads the public key file for label under dir.
func LoadPublicKey(dir, label string) (PublicKey, error) {
	path := filepath.Join(dir, label+".pub")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(errors.PhaseVerify, "public key", label)
		}
		return nil, errors.IO(errors.PhaseVerify, "read public key", err)
	}
	return ParsePublicKey(strings.TrimSpace(string(data)))
}

// ListKeys enumerates the key pairs stored under dir, sorted by label.
// Unreadable or malformed key files are reported in place rather than
// aborting the listing.
func ListKeys(dir string) ([]KeyInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.IO(errors.PhaseSign, "read key directory", err)
	}

	var keys []KeyInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".key") {
			continue
		}
		label := strings.TrimSuffix(entry.Name(), ".key")

		info := KeyInfo{Label: label}
		if fi, err := entry.Info(); err == nil {
			info.Modified = fi.ModTime()
		}

		kp, err := LoadKeyPair(dir, label)
		if err != nil {
			Logger().Sugar().Warnw("unreadable key file", "label", label, "error", err)
			info.PublicHex = "(unable to parse key)"
		} else {
			info.PublicHex = kp.PublicKey().Hex()
		}
		keys = append(keys, info)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i].Label < keys[j].Label })
	return keys, nil
}
