package signer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wippyai/wasmstamp/signer"
)

func TestSignVerify(t *testing.T) {
	kp, err := signer.Generate()
	if err != nil {
		t.Fatal(err)
	}

	data := []byte("plugin bytes")
	sig := kp.Sign(data)

	if err := sig.Verify(data); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if err := sig.Verify([]byte("tampered bytes")); err == nil {
		t.Fatal("tampered content verified")
	}
}

func TestVerifyWrongKey(t *testing.T) {
	kp1, _ := signer.Generate()
	kp2, _ := signer.Generate()

	data := []byte("content")
	sig := kp1.Sign(data)

	// Rebind the signature hex to the wrong public key.
	wrong, err := signer.ParseSignature(sig.Hex(), kp2.PublicKey())
	if err != nil {
		t.Fatal(err)
	}
	if err := wrong.Verify(data); err == nil {
		t.Fatal("signature verified under the wrong key")
	}
}

func TestPrivateKeyHexRoundTrip(t *testing.T) {
	kp, err := signer.Generate()
	if err != nil {
		t.Fatal(err)
	}

	back, err := signer.FromPrivateKeyHex(kp.PrivateKeyHex())
	if err != nil {
		t.Fatal(err)
	}
	if back.PublicKey().Hex() != kp.PublicKey().Hex() {
		t.Fatal("derived public key differs after hex round trip")
	}

	// The rederived key produces signatures the original key verifies.
	sig := back.Sign([]byte("x"))
	if err := sig.Verify([]byte("x")); err != nil {
		t.Fatal(err)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := signer.FromPrivateKeyHex("zz"); err == nil {
		t.Error("bad hex accepted as private key")
	}
	if _, err := signer.FromPrivateKeyHex("abcd"); err == nil {
		t.Error("short seed accepted")
	}
	if _, err := signer.ParsePublicKey("abcd"); err == nil {
		t.Error("short public key accepted")
	}

	kp, _ := signer.Generate()
	if _, err := signer.ParseSignature("abcd", kp.PublicKey()); err == nil {
		t.Error("short signature accepted")
	}
	if _, err := signer.ParseSignature("not hex at all", kp.PublicKey()); err == nil {
		t.Error("non-hex signature accepted")
	}
}

func TestSignFileVerifyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plugin.wasm")
	if err := os.WriteFile(path, []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}, 0o644); err != nil {
		t.Fatal(err)
	}

	kp, _ := signer.Generate()
	sig, err := kp.SignFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := sig.VerifyFile(path); err != nil {
		t.Fatalf("verify file: %v", err)
	}

	// Changing the file invalidates the signature.
	if err := os.WriteFile(path, []byte("different"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := sig.VerifyFile(path); err == nil {
		t.Fatal("modified file verified")
	}

	if _, err := kp.SignFile(filepath.Join(dir, "missing")); err == nil {
		t.Fatal("expected error signing missing file")
	}
}
