package tether

import (
	"errors"
	"testing"
)

func TestKeyError_Is(t *testing.T) {
	err := newKeyError(ErrNilHost, "color", PolicyRetain)

	if !errors.Is(err, ErrNilHost) {
		t.Error("KeyError should unwrap to ErrNilHost")
	}

	if errors.Is(err, ErrSlotReclaimed) {
		t.Error("KeyError should not match ErrSlotReclaimed")
	}
}

func TestKeyError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "full context",
			err:  newKeyError(ErrNilHost, "color", PolicyRetain),
			want: "nil host (key color, policy retain)",
		},
		{
			name: "key only",
			err:  &KeyError{Err: ErrSlotReclaimed, Key: "color"},
			want: "key slot reclaimed (key color)",
		},
		{
			name: "bare sentinel",
			err:  &KeyError{Err: ErrAtomicUnsupported},
			want: "atomic not supported for policy",
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

func TestKeyError_As(t *testing.T) {
	err := newKeyError(ErrAtomicUnsupported, "snapshot", PolicyWeak)

	var keyErr *KeyError
	if !errors.As(err, &keyErr) {
		t.Fatalf("error should be *KeyError, got %T", err)
	}
	if keyErr.Key != "snapshot" {
		t.Errorf("KeyError.Key = %q, want %q", keyErr.Key, "snapshot")
	}
	if keyErr.Policy != PolicyWeak {
		t.Errorf("KeyError.Policy = %q, want %q", keyErr.Policy, PolicyWeak)
	}
}
