package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "recipe not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "recipe not found" {
		t.Errorf("expected message 'recipe not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "operation failed", cause)

	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("negative amount")
	ctx := map[string]any{
		"recipe":     "mojito",
		"ingredient": "lime",
	}

	err := WrapWithContext(ErrCodeInvalidRequest, "invalid quantity", cause, ctx)

	if err.Code != ErrCodeInvalidRequest {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidRequest, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["ingredient"] != "lime" {
		t.Errorf("expected ingredient to be lime")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFromContext(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"deadline", context.DeadlineExceeded, ErrCodeTimeout},
		{"canceled", context.Canceled, ErrCodeCanceled},
		{"wrapped canceled", fmt.Errorf("rank: %w", context.Canceled), ErrCodeCanceled},
		{"other", errors.New("boom"), ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromContext(tt.err)
			if tt.want == "" {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			if got.Code != tt.want {
				t.Errorf("expected code %s, got %s", tt.want, got.Code)
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("expected cause to be preserved")
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	inner := New(ErrCodeConflict, "duplicate recipe id")
	wrapped := fmt.Errorf("load catalog: %w", inner)

	if !IsCode(wrapped, ErrCodeConflict) {
		t.Errorf("expected wrapped error to carry %s", ErrCodeConflict)
	}
	if IsCode(wrapped, ErrCodeNotFound) {
		t.Errorf("did not expect %s", ErrCodeNotFound)
	}
	if CodeOf(errors.New("plain")) != "" {
		t.Errorf("expected empty code for plain error")
	}
}
