package common

import (
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAppErrorUnwrap(t *testing.T) {
	err := NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatal("AppError should unwrap to its cause")
	}
	if got := err.Error(); got != "CONFIG_ERROR: DB_URL is required (caused by: invalid input)" {
		t.Errorf("Error() = %q", got)
	}

	bare := NewAppError("X", "no cause", nil)
	if got := bare.Error(); got != "X: no cause" {
		t.Errorf("Error() = %q", got)
	}
}

func TestWrapErrorNil(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Fatal("wrapping nil must stay nil")
	}
	wrapped := WrapError(ErrDatabase, "listing invoices")
	if !errors.Is(wrapped, ErrDatabase) {
		t.Fatal("wrapped error should keep its sentinel")
	}
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"not found", NewAppError("NF", "workspace missing", ErrNotFound), codes.NotFound},
		{"invalid input", ErrInvalidInput, codes.InvalidArgument},
		{"duplicate", NewAppError("DUP", "invoice exists", ErrDuplicate), codes.AlreadyExists},
		{"unavailable", ErrUnavailable, codes.Unavailable},
		{"unclassified", errors.New("boom"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StatusFromError(tt.err)
			st, ok := status.FromError(got)
			if !ok {
				t.Fatalf("not a status error: %v", got)
			}
			if st.Code() != tt.want {
				t.Errorf("code = %s, want %s", st.Code(), tt.want)
			}
		})
	}
	if StatusFromError(nil) != nil {
		t.Error("nil error must map to nil")
	}
}
