// Package code normalizes user-supplied stock codes into the provider's
// exchange-qualified form (sz.XXXXXX / sh.XXXXXX).
package code

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmpty is returned when the input is empty or whitespace only.
var ErrEmpty = errors.New("stock code is empty")

// UnrecognizedFormatError is returned when a code has no recognized
// exchange prefix and no inferable leading digit.
type UnrecognizedFormatError struct {
	Input string
}

func (e *UnrecognizedFormatError) Error() string {
	return fmt.Sprintf("unrecognized stock code format: %q", e.Input)
}

// Normalize canonicalizes a raw stock code.
//
// Codes that already carry a sz. or sh. prefix are returned unchanged with
// no further validation of the digits; this permissive behavior is
// intentional. Otherwise the exchange is inferred from the leading digit:
// 0 and 3 map to Shenzhen (sz.), 6 maps to Shanghai (sh.). There is no
// digit-count or checksum validation.
func Normalize(raw string) (string, error) {
	c := strings.TrimSpace(raw)
	if c == "" {
		return "", ErrEmpty
	}
	if strings.HasPrefix(c, "sz.") || strings.HasPrefix(c, "sh.") {
		return c, nil
	}
	switch c[0] {
	case '0', '3':
		return "sz." + c, nil
	case '6':
		return "sh." + c, nil
	}
	return "", &UnrecognizedFormatError{Input: c}
}
