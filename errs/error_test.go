package errs_test

import (
	"errors"
	"testing"

	"phonebook/errs"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *errs.Error
		expected string
	}{
		{
			name: "validation error",
			err: &errs.Error{
				Code:    errs.EINVALID,
				Message: "invalid phone number",
			},
			expected: "application error: code=invalid message=invalid phone number",
		},
		{
			name: "not found error",
			err: &errs.Error{
				Code:    errs.ENOTFOUND,
				Message: "contact not found",
			},
			expected: "application error: code=not_found message=contact not found",
		},
		{
			name: "empty message",
			err: &errs.Error{
				Code:    errs.EINTERNAL,
				Message: "",
			},
			expected: "application error: code=internal message=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			err:      nil,
			expected: "",
		},
		{
			name: "application error returns its code",
			err: &errs.Error{
				Code:    errs.EINVALID,
				Message: "name cannot be empty",
			},
			expected: errs.EINVALID,
		},
		{
			name: "not found error",
			err: &errs.Error{
				Code:    errs.ENOTFOUND,
				Message: "phone number not found",
			},
			expected: errs.ENOTFOUND,
		},
		{
			name:     "non-application error returns EINTERNAL",
			err:      errors.New("standard error"),
			expected: errs.EINTERNAL,
		},
		{
			name:     "wrapped application error",
			err:      errors.Join(&errs.Error{Code: errs.EINVALID, Message: "bad request"}),
			expected: errs.EINVALID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errs.ErrorCode(tt.err)
			if got != tt.expected {
				t.Errorf("ErrorCode() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			err:      nil,
			expected: "",
		},
		{
			name: "application error returns its message",
			err: &errs.Error{
				Code:    errs.EINVALID,
				Message: "invalid date format, use DD.MM.YYYY",
			},
			expected: "invalid date format, use DD.MM.YYYY",
		},
		{
			name:     "non-application error returns Internal error",
			err:      errors.New("disk write error"),
			expected: "Internal error.",
		},
		{
			name:     "wrapped application error",
			err:      errors.Join(&errs.Error{Code: errs.ENOTFOUND, Message: "contact not found"}),
			expected: "contact not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errs.ErrorMessage(tt.err)
			if got != tt.expected {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorf(t *testing.T) {
	tests := []struct {
		name          string
		code          string
		format        string
		args          []interface{}
		expectedCode  string
		expectedMsg   string
		expectedError string
	}{
		{
			name:          "simple message without formatting",
			code:          errs.EINVALID,
			format:        "invalid phone number",
			args:          nil,
			expectedCode:  errs.EINVALID,
			expectedMsg:   "invalid phone number",
			expectedError: "application error: code=invalid message=invalid phone number",
		},
		{
			name:          "formatted message with single argument",
			code:          errs.ENOTFOUND,
			format:        "contact %s not found",
			args:          []interface{}{"Ann"},
			expectedCode:  errs.ENOTFOUND,
			expectedMsg:   "contact Ann not found",
			expectedError: "application error: code=not_found message=contact Ann not found",
		},
		{
			name:          "formatted message with multiple arguments",
			code:          errs.EINVALID,
			format:        "phone %q must be %d digits",
			args:          []interface{}{"12345", 10},
			expectedCode:  errs.EINVALID,
			expectedMsg:   "phone \"12345\" must be 10 digits",
			expectedError: "application error: code=invalid message=phone \"12345\" must be 10 digits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errs.Errorf(tt.code, tt.format, tt.args...)

			if err.Code != tt.expectedCode {
				t.Errorf("Errorf().Code = %q, want %q", err.Code, tt.expectedCode)
			}

			if err.Message != tt.expectedMsg {
				t.Errorf("Errorf().Message = %q, want %q", err.Message, tt.expectedMsg)
			}

			if err.Error() != tt.expectedError {
				t.Errorf("Errorf().Error() = %q, want %q", err.Error(), tt.expectedError)
			}
		})
	}
}

func TestErrorCodes(t *testing.T) {
	expected := map[string]string{
		errs.ECONFLICT:       "conflict",
		errs.EINTERNAL:       "internal",
		errs.EINVALID:        "invalid",
		errs.ENOTFOUND:       "not_found",
		errs.ENOTIMPLEMENTED: "not_implemented",
		errs.EUNAUTHORIZED:   "unauthorized",
	}

	for code, want := range expected {
		if code != want {
			t.Errorf("error code = %q, want %q", code, want)
		}
	}
}
