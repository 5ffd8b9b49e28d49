package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateUsername validates a PyPI username before it is accepted as
// configuration. An empty username is the most common misconfiguration and
// always fails with ErrCodeConfiguration.
//
// The remaining rules are conservative safety checks: the username is
// interpolated into a profile URL, so anything that could alter the path
// is rejected.
func ValidateUsername(username string) error {
	if username == "" {
		return New(ErrCodeConfiguration, "username must be provided")
	}

	if len(username) > 128 {
		return New(ErrCodeInvalidInput, "username too long (max 128 characters)")
	}

	for _, r := range username {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "username contains invalid characters")
		}
	}

	if strings.ContainsAny(username, "/\\?#") {
		return New(ErrCodeInvalidInput, "username cannot contain URL separators")
	}

	return nil
}

// packageNameRegex matches valid Python package names (PEP 508).
var packageNameRegex = regexp.MustCompile(`^([A-Za-z0-9]|[A-Za-z0-9][A-Za-z0-9._-]*[A-Za-z0-9])$`)

// ValidatePackageName validates a Python package name per PEP 508.
// It rejects names that could be used for path traversal when building
// registry URLs.
func ValidatePackageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "package name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "package name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "package name contains invalid control characters")
		}
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidInput, "package name contains invalid characters: %q", "..")
	}

	if !packageNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid Python package name: %q", name)
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
