package solc

import (
	"fmt"
	"regexp"
)

// BinaryType identifies which kind of compiler binary a test run uses.
type BinaryType string

const (
	// BinaryTypeNative is a native solc executable.
	BinaryTypeNative BinaryType = "native"
	// BinaryTypeSolcjs is the JavaScript compiler wrapper (solc-js).
	BinaryTypeSolcjs BinaryType = "solcjs"
)

// ParseBinaryType validates a binary type given on the command line.
func ParseBinaryType(s string) (BinaryType, error) {
	switch BinaryType(s) {
	case BinaryTypeNative, BinaryTypeSolcjs:
		return BinaryType(s), nil
	}
	return "", fmt.Errorf("invalid solc binary type %q (must be %q or %q)", s, BinaryTypeNative, BinaryTypeSolcjs)
}

var shortVersionPattern = regexp.MustCompile(`^[0-9.]+`)

// ShortVersion reduces a full solc version string to its release prefix,
// e.g. "0.8.24-develop.2024.1.5+commit.abc123" -> "0.8.24".
func ShortVersion(fullVersion string) string {
	short := shortVersionPattern.FindString(fullVersion)
	if short == "" {
		return fullVersion
	}
	// A prerelease suffix like "0.8.24-..." leaves no trailing dot, but a
	// malformed "0.8." input would.
	for len(short) > 0 && short[len(short)-1] == '.' {
		short = short[:len(short)-1]
	}
	return short
}
