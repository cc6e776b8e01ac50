// Package redact provides utilities for redacting sensitive information from strings
// before they are logged or returned in error responses. This package helps prevent
// the accidental leakage of API keys, credentials, and submitted image payloads
// that might be included in error messages.
package redact

import (
	"regexp"
	"sync"
)

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedImagePlaceholder      = "[REDACTED_IMAGE_DATA]"
)

// Precompiled regex patterns
var (
	// Google API keys have a fixed AIza prefix and 35 trailing characters
	googleKeyRegex = regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`)

	// Credentials and tokens
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`)
	apiKeyRegex   = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|key|access|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// Submitted image payloads, either as data URLs or as long unbroken
	// base64 runs quoted back by a decoder error
	dataURLRegex   = regexp.MustCompile(`(?i)data:[a-z0-9.+/-]+;base64,[A-Za-z0-9+/=_\-]+`)
	base64RunRegex = regexp.MustCompile(`[A-Za-z0-9+/_\-]{128,}={0,2}`)

	// Email addresses
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

	// All patterns and their placeholders. Order matters: image payloads are
	// replaced before the generic key patterns can eat parts of them.
	patterns = []*regexp.Regexp{
		dataURLRegex, base64RunRegex, googleKeyRegex,
		passwordRegex, apiKeyRegex, emailRegex,
	}

	patternPlaceholders = map[*regexp.Regexp]string{
		dataURLRegex:   RedactedImagePlaceholder,
		base64RunRegex: RedactedImagePlaceholder,
		googleKeyRegex: RedactedKeyPlaceholder,
		passwordRegex:  RedactedCredentialPlaceholder,
		apiKeyRegex:    RedactedKeyPlaceholder,
		emailRegex:     "[REDACTED_EMAIL]",
	}

	mu sync.RWMutex
)

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	mu.RLock()
	defer mu.RUnlock()

	result := input
	for _, pattern := range patterns {
		placeholder := RedactionPlaceholder
		if ph, ok := patternPlaceholders[pattern]; ok {
			placeholder = ph
		}
		result = pattern.ReplaceAllString(result, placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
