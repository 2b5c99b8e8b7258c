package generator

import "errors"

var (
	// ErrInvalidConfiguration matches every InvalidConfigurationError.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrUnreachableTarget reports that no attempt could place a single word
	// within the requested passphrase length.
	ErrUnreachableTarget = errors.New("target length unreachable")
)

// Reasons carried by InvalidConfigurationError.
const (
	ReasonNoClasses        = "no character classes enabled"
	ReasonMinimumsExceed   = "minimum counts exceed length"
	ReasonLengthTooShort   = "length must be at least 1"
	ReasonNoWords          = "word count must be at least 1"
	ReasonSeparatorTooLong = "separator must be at most 3 characters"
	ReasonNegativeMinimum  = "minimum counts must not be negative"
)

// InvalidConfigurationError describes constraints that cannot be satisfied.
type InvalidConfigurationError struct {
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}

func (e *InvalidConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}

func invalid(reason string) error {
	return &InvalidConfigurationError{Reason: reason}
}
