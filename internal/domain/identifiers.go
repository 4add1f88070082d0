package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// KeyUnsafeChars may not appear in identifiers, which are embedded in cache
// keys and channel names.
const KeyUnsafeChars = ": \t\r\n\x00*"

// MaxIdentifierLength bounds user and competition IDs, in characters.
const MaxIdentifierLength = 128

// ValidateIdentifier applies the user and competition ID rules.
func ValidateIdentifier(id string) error {
	switch {
	case id == "":
		return fmt.Errorf("%w: %s", ErrInvalidInput, ErrMsgIdentifierEmpty)
	case utf8.RuneCountInString(id) > MaxIdentifierLength:
		return fmt.Errorf("%w: %s", ErrInvalidInput, ErrMsgIdentifierTooLong)
	case strings.ContainsAny(id, KeyUnsafeChars):
		return fmt.Errorf("%w: %s", ErrInvalidInput, ErrMsgIdentifierUnsafe)
	}
	return nil
}
