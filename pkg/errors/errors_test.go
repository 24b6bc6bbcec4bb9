// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/arthur-debert/check-commits/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "rules_read_error",
			code:    errors.ErrRulesRead,
			message: "rules file missing",
			wantStr: "[RULES_READ] rules file missing",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "no rules path",
			wantStr: "[INVALID_INPUT] no rules path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details != nil {
				t.Errorf("New() details = %v, want nil until WithDetail", err.Details)
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrRuleCompile, "invalid rule '%s'", "a(b")

	if err.Message != "invalid rule 'a(b'" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrConfigLoad, "config unreadable")

		if err.Code != errors.ErrConfigLoad {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrConfigLoad)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[CONFIG_LOAD] config unreadable: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrConfigLoad, "config unreadable")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapf_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrapf(nil, errors.ErrRulesRead, "failed to read %s", "x"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrEmailsRead, "failed to read emails from %s", "emails.txt")
		wantStr := "[EMAILS_READ] failed to read emails from emails.txt: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrRulesRead, "not readable").
		WithDetail("path", "/test/rules.txt")

	if err.Details["path"] != "/test/rules.txt" {
		t.Errorf("WithDetail() path = %v, want %v", err.Details["path"], "/test/rules.txt")
	}

	if got := errors.GetErrorDetails(err); got["path"] != "/test/rules.txt" {
		t.Errorf("GetErrorDetails() = %v", got)
	}

	if got := errors.GetErrorDetails(stderrors.New("plain")); got != nil {
		t.Errorf("GetErrorDetails() on plain error = %v, want nil", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrRulesRead, "error 1")
	err2 := errors.New(errors.ErrRulesRead, "error 2")
	err3 := errors.New(errors.ErrConfigParse, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with CheckError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrEmailsRead, "not found"),
			code:     errors.ErrEmailsRead,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrEmailsRead, "not found"),
			code:     errors.ErrRuleCompile,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(fs.ErrNotExist, errors.ErrRulesRead, "missing"),
			code:     errors.ErrRulesRead,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrRulesRead,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrRulesRead,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "check_error",
			err:      errors.New(errors.ErrConfigParse, "bad toml"),
			expected: errors.ErrConfigParse,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := fs.ErrPermission
	readErr := errors.Wrap(rootCause, errors.ErrRulesRead, "cannot read rules")
	configErr := errors.Wrap(readErr, errors.ErrConfigLoad, "failed to load config")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(configErr, errors.ErrConfigLoad) {
			t.Error("Top level should have ErrConfigLoad code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var checkErr *errors.CheckError
		if stderrors.As(configErr.Unwrap(), &checkErr) {
			if !errors.IsErrorCode(checkErr, errors.ErrRulesRead) {
				t.Error("Middle error should have ErrRulesRead code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(configErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
