// Package signer implements Ed25519 signing for plugin release
// artifacts. Keys and signatures travel as lowercase hex strings; the
// private key file holds the 32-byte seed, the public key file the
// 32-byte verifying key.
package signer

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"os"

	"github.com/wippyai/wasmstamp/errors"
)

// KeyPair is an Ed25519 signing key with its derived public key.
type KeyPair struct {
	priv ed25519.PrivateKey
}

// Generate creates a new random key pair.
func Generate() (*KeyPair, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseSign, errors.KindIO, err, "generate key pair")
	}
	return &KeyPair{priv: priv}, nil
}

// FromPrivateKeyHex derives a key pair from a hex-encoded 32-byte seed.
func FromPrivateKeyHex(s string) (*KeyPair, error) {
	seed, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseSign, errors.KindInvalidData, err, "decode private key hex")
	}
	if len(seed) != ed25519.SeedSize {
		return nil, errors.InvalidData(errors.PhaseSign, nil,
			"private key must be 32 bytes")
	}
	return &KeyPair{priv: ed25519.NewKeyFromSeed(seed)}, nil
}

// PrivateKeyHex returns the hex encoding of the key's seed.
func (k *KeyPair) PrivateKeyHex() string {
	return hex.EncodeToString(k.priv.Seed())
}

// PublicKey returns the verifying half of the pair.
func (k *KeyPair) PublicKey() PublicKey {
	return PublicKey(k.priv.Public().(ed25519.PublicKey))
}

// Sign signs data and returns the signature bound to this key's public
// key.
func (k *KeyPair) Sign(data []byte) Signature {
	return Signature{
		bytes: ed25519.Sign(k.priv, data),
		pub:   k.PublicKey(),
	}
}

// SignFile signs the full contents of the file at path.
func (k *KeyPair) SignFile(path string) (Signature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Signature{}, errors.IO(errors.PhaseSign, "read file to sign", err)
	}
	Logger().Sugar().Debugw("signing file", "path", path, "size", len(data))
	return k.Sign(data), nil
}

// PublicKey is an Ed25519 verifying key.
type PublicKey []byte

// ParsePublicKey parses a hex-encoded 32-byte public key.
func ParsePublicKey(s string) (PublicKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseVerify, errors.KindInvalidData, err, "decode public key hex")
	}
	if len(b) != ed25519.PublicKeySize {
		return nil, errors.InvalidData(errors.PhaseVerify, nil,
			"public key must be 32 bytes")
	}
	return PublicKey(b), nil
}

// Hex returns the lowercase hex encoding of the key.
func (p PublicKey) Hex() string {
	return hex.EncodeToString(p)
}

// Signature is an Ed25519 signature plus the public key that made it.
type Signature struct {
	bytes []byte
	pub   PublicKey
}

// ParseSignature parses a hex-encoded 64-byte signature for pub.
func ParseSignature(s string, pub PublicKey) (Signature, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Signature{}, errors.Wrap(errors.PhaseVerify, errors.KindInvalidData, err, "decode signature hex")
	}
	if len(b) != ed25519.SignatureSize {
		return Signature{}, errors.InvalidData(errors.PhaseVerify, nil,
			"signature must be 64 bytes")
	}
	return Signature{bytes: b, pub: pub}, nil
}

// Hex returns the lowercase hex encoding of the signature.
func (s Signature) Hex() string {
	return hex.EncodeToString(s.bytes)
}

// PublicKey returns the public key the signature is bound to.
func (s Signature) PublicKey() PublicKey {
	return s.pub
}

// Verify reports whether the signature matches data under its public
// key.
func (s Signature) Verify(data []byte) error {
	if !ed25519.Verify(ed25519.PublicKey(s.pub), data, s.bytes) {
		return errors.InvalidData(errors.PhaseVerify, nil, "signature does not match content")
	}
	return nil
}

// VerifyFile verifies the signature against the full contents of the
// file at path.
func (s Signature) VerifyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.IO(errors.PhaseVerify, "read file to verify", err)
	}
	return s.Verify(data)
}
