package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestBlogError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *BlogError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryConfig, SeverityFatal, "configuration invalid"),
			expected: "config (fatal): configuration invalid",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("file not found"), CategoryConfig, SeverityFatal, "failed to load config"),
			expected: "config (fatal): failed to load config: file not found",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := test.err.Error()
			if result != test.expected {
				t.Errorf("Error() = %q, want %q", result, test.expected)
			}
		})
	}
}

func TestBlogError_WithContext(t *testing.T) {
	err := DateParse("posts/2024/13/01/launch.md", fmt.Errorf("month out of range")).
		WithContext("segment", "2024/13/01")

	if err.Context == nil {
		t.Fatal("Context should not be nil")
	}

	if err.Context["path"] != "posts/2024/13/01/launch.md" {
		t.Errorf("Context[path] = %v, want posts/2024/13/01/launch.md", err.Context["path"])
	}

	if err.Context["segment"] != "2024/13/01" {
		t.Errorf("Context[segment] = %v, want 2024/13/01", err.Context["segment"])
	}
}

func TestIsCategory(t *testing.T) {
	configErr := PageSizeInvalid(0)
	parseErr := DateParse("posts/launch.md", fmt.Errorf("no date segment"))
	standardErr := fmt.Errorf("standard error")
	wrapped := fmt.Errorf("compile app: %w", parseErr)

	tests := []struct {
		name     string
		err      error
		category ErrorCategory
		expected bool
	}{
		{"config error matches config category", configErr, CategoryConfig, true},
		{"config error doesn't match parse category", configErr, CategoryParse, false},
		{"parse error matches parse category", parseErr, CategoryParse, true},
		{"standard error doesn't match any category", standardErr, CategoryConfig, false},
		{"wrapped parse error still matches", wrapped, CategoryParse, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := IsCategory(test.err, test.category); got != test.expected {
				t.Errorf("IsCategory() = %v, want %v", got, test.expected)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("disk unreadable")
	err := RepositoryFailure(cause)

	if !stdErrors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
}
