package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "phase and kind only",
			err:  New(PhaseDecode, KindInvalidData).Build(),
			want: "[decode] invalid_data",
		},
		{
			name: "with context",
			err:  New(PhaseInstantiate, KindMissingImport).Context("env", "print").Build(),
			want: "[instantiate] missing_import at env.print",
		},
		{
			name: "with detail",
			err:  New(PhaseRuntime, KindNotFound).Detail("no export %q", "main").Build(),
			want: `[runtime] not_found: no export "main"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorCauseChain(t *testing.T) {
	cause := fmt.Errorf("unexpected EOF")
	err := Decode("code section", cause)

	if !strings.Contains(err.Error(), "caused by: unexpected EOF") {
		t.Errorf("cause missing from message: %q", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should match the wrapped cause")
	}
}

func TestErrorIsMatchesPhaseAndKind(t *testing.T) {
	err := MissingImport("wasi", "fd_write")

	if !stderrors.Is(err, New(PhaseInstantiate, KindMissingImport).Build()) {
		t.Error("Is should match same phase+kind")
	}
	if stderrors.Is(err, New(PhaseDecode, KindMissingImport).Build()) {
		t.Error("Is should not match different phase")
	}
}

func TestErrorAs(t *testing.T) {
	var target *Error
	wrapped := fmt.Errorf("outer: %w", NotFound(PhaseRuntime, "export", "add"))

	if !stderrors.As(wrapped, &target) {
		t.Fatal("As should find *Error in chain")
	}
	if target.Kind != KindNotFound {
		t.Errorf("Kind = %q, want %q", target.Kind, KindNotFound)
	}
}
