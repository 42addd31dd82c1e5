package etherscan

import (
	"regexp"
)

// Remote error text can echo back caller-supplied values, including the
// API key itself. Before a remote-derived message is put on an APIError it
// passes through sanitizeMessage, which redacts anything secret-shaped.
var (
	// Long hex runs are redacted unconditionally; near secret-hinting
	// words the threshold drops so shorter keys are caught too.
	hexLongPattern  = regexp.MustCompile(`(?i)\b(?:0x)?[0-9a-f]{32,}\b`)
	hexShortPattern = regexp.MustCompile(`(?i)\b(?:0x)?[0-9a-f]{16,}\b`)
	secretHint      = regexp.MustCompile(`(?i)key|token|secret`)

	pathPattern = regexp.MustCompile(`(?:/[\w.-]+){2,}`)
	ipv4Pattern = regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`)
)

const redactedPlaceholder = "[redacted]"

func sanitizeMessage(s string) string {
	if s == "" {
		return s
	}
	hexPattern := hexLongPattern
	if secretHint.MatchString(s) {
		hexPattern = hexShortPattern
	}
	s = hexPattern.ReplaceAllString(s, redactedPlaceholder)
	s = pathPattern.ReplaceAllString(s, redactedPlaceholder)
	s = ipv4Pattern.ReplaceAllString(s, redactedPlaceholder)
	return s
}
