package errors_test

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/wippyai/wasmstamp/errors"
)

func TestErrorFormat(t *testing.T) {
	err := errors.New(errors.PhaseLoad, errors.KindInvalidData).
		Path("dependencies", "auth").
		Detail("invalid dependency version %q", "^2").
		Build()

	msg := err.Error()
	for _, want := range []string{"[load]", "invalid_data", "dependencies.auth", `"^2"`} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestErrorCause(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := errors.IO(errors.PhaseWrite, "write module", cause)

	if !strings.Contains(err.Error(), "caused by: permission denied") {
		t.Errorf("message: %q", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("cause not reachable through Unwrap")
	}
}

func TestErrorIsMatchesPhaseAndKind(t *testing.T) {
	err := errors.NotFound(errors.PhaseSign, "private key", "release")

	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseSign, Kind: errors.KindNotFound}) {
		t.Error("same phase and kind should match")
	}
	if stderrors.Is(err, &errors.Error{Phase: errors.PhaseVerify, Kind: errors.KindNotFound}) {
		t.Error("different phase should not match")
	}
	if stderrors.Is(err, &errors.Error{Phase: errors.PhaseSign, Kind: errors.KindIO}) {
		t.Error("different kind should not match")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		err   *errors.Error
		phase errors.Phase
		kind  errors.Kind
	}{
		{errors.InvalidMagic("m.wasm", nil), errors.PhaseLoad, errors.KindInvalidMagic},
		{errors.Usage("bad flags"), errors.PhaseLoad, errors.KindUsage},
		{errors.Exists(errors.PhaseSign, "keys/a.key"), errors.PhaseSign, errors.KindExists},
		{errors.InvalidData(errors.PhaseVerify, nil, "bad sig"), errors.PhaseVerify, errors.KindInvalidData},
	}

	for _, tt := range tests {
		if tt.err.Phase != tt.phase || tt.err.Kind != tt.kind {
			t.Errorf("%v: got %s/%s, want %s/%s",
				tt.err, tt.err.Phase, tt.err.Kind, tt.phase, tt.kind)
		}
	}
}
