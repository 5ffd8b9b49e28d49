package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeFetch, "fetching %s", "https://example.com")

	if err.Code != ErrCodeFetch {
		t.Errorf("expected FETCH_ERROR, got %s", err.Code)
	}
	if !strings.Contains(err.Error(), "FETCH_ERROR") {
		t.Errorf("error string should contain code: %s", err.Error())
	}
	if !strings.Contains(err.Error(), "https://example.com") {
		t.Errorf("error string should contain formatted message: %s", err.Error())
	}
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(ErrCodeFetch, cause, "fetching user profile")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("error string should contain cause text: %s", err.Error())
	}
}

func TestRewrap_KeepsInnerCode(t *testing.T) {
	inner := New(ErrCodeDecode, "decoding JSON response")
	err := Rewrap(inner, ErrCodeFetch, "failed to get details for package %q", "requests")

	if err.Code != ErrCodeDecode {
		t.Errorf("expected inner DECODE_ERROR preserved, got %s", err.Code)
	}
	if !Is(err, ErrCodeDecode) {
		t.Error("Is should match the preserved code")
	}
	if !strings.Contains(err.Error(), "requests") {
		t.Errorf("rewrapped error should name the package: %s", err.Error())
	}
}

func TestRewrap_FallbackForPlainErrors(t *testing.T) {
	err := Rewrap(fmt.Errorf("boom"), ErrCodeInternal, "aggregation failed")

	if err.Code != ErrCodeInternal {
		t.Errorf("expected fallback INTERNAL_ERROR, got %s", err.Code)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeEmptyResult, "no packages found for user %q", "testuser")

	if !Is(err, ErrCodeEmptyResult) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeFetch) {
		t.Error("Is should not match a different code")
	}
	if Is(fmt.Errorf("plain"), ErrCodeFetch) {
		t.Error("Is should not match plain errors")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeParse, "bad markup")); got != ErrCodeParse {
		t.Errorf("expected PARSE_ERROR, got %s", got)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("expected empty code for plain error, got %s", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeConfiguration, "username must be provided")
	if got := UserMessage(err); got != "username must be provided" {
		t.Errorf("unexpected user message: %s", got)
	}

	plain := fmt.Errorf("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("unexpected user message for plain error: %s", got)
	}
}
