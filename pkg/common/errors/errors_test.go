package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestCommonErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrClosed", ErrClosed, "resource is closed"},
		{"ErrInvalidConfiguration", ErrInvalidConfiguration, "invalid configuration"},
		{"ErrCanceled", ErrCanceled, "run canceled"},
		{"ErrTaskPanicked", ErrTaskPanicked, "task panicked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "without hint",
			err: &ValidationError{
				Module: "delay",
				Field:  "max",
				Value:  -1,
				Reason: "must be positive",
			},
			want: "delay: invalid max=-1 (must be positive)",
		},
		{
			name: "with hint",
			err: &ValidationError{
				Module: "trigger",
				Field:  "name",
				Value:  "fast",
				Reason: "unknown trigger",
				Hint:   "run 'asyncflow list'",
			},
			want: "trigger: invalid name=fast (unknown trigger) - run 'asyncflow list'",
		},
		{
			name: "string value",
			err: &ValidationError{
				Module: "config",
				Field:  "schedule.cron",
				Value:  "",
				Reason: "cannot be empty",
			},
			want: "config: invalid schedule.cron= (cannot be empty)",
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

func TestValidationError_Unwrap(t *testing.T) {
	verr := NewValidationError("test", "field", 0, "test")

	if !errors.Is(verr, ErrInvalidConfiguration) {
		t.Error("ValidationError should wrap ErrInvalidConfiguration")
	}

	var target *ValidationError
	if !errors.As(fmt.Errorf("load: %w", verr), &target) {
		t.Fatal("errors.As should find the ValidationError")
	}
	if target.Field != "field" {
		t.Errorf("Field = %q, want %q", target.Field, "field")
	}
}

func TestValidationError_WithHint(t *testing.T) {
	err := NewValidationError("test", "field", 0, "invalid")
	if err.Hint != "" {
		t.Errorf("Hint = %q, want empty string", err.Hint)
	}

	result := err.WithHint("try using a positive value")
	if result != err {
		t.Error("WithHint should return the same instance")
	}
	if err.Hint != "try using a positive value" {
		t.Errorf("Hint = %q, want %q", err.Hint, "try using a positive value")
	}
}

func TestOperationError(t *testing.T) {
	cause := errors.New("timer stopped")

	plain := NewOperationError("runner", "SequentialBatch", cause)
	if got, want := plain.Error(), "runner.SequentialBatch failed: timer stopped"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	withCtx := NewOperationError("runner", "ConcurrentBatch", cause).WithContext("label b")
	if got, want := withCtx.Error(), "runner.ConcurrentBatch failed: timer stopped (label b)"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if !errors.Is(withCtx, cause) {
		t.Error("OperationError should wrap the cause error")
	}
}

func TestIsCanceled(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"sentinel", ErrCanceled, true},
		{"joined with context error", fmt.Errorf("%w: %w", ErrCanceled, context.Canceled), true},
		{"wrapped in operation", NewOperationError("runner", "Task", ErrCanceled), true},
		{"plain context error", context.Canceled, false},
		{"panic", ErrTaskPanicked, false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCanceled(tt.err); got != tt.want {
				t.Errorf("IsCanceled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsPanic(t *testing.T) {
	if !IsPanic(fmt.Errorf("%w: boom", ErrTaskPanicked)) {
		t.Error("wrapped ErrTaskPanicked should be reported as panic")
	}
	if IsPanic(errors.New("boom")) {
		t.Error("plain error should not be reported as panic")
	}
}
