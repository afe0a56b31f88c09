package gkernel

import "errors"

var (
	// ErrInvalidScale is returned when sigma is outside [MinSigma, MaxSigma],
	// including zero, negative, NaN and infinite values.
	ErrInvalidScale = errors.New("gkernel: sigma out of range")

	// ErrUnknownVariant is returned for a Variant outside the defined set.
	ErrUnknownVariant = errors.New("gkernel: unknown kernel variant")

	// ErrInvalidGeometry is returned for negative half sizes or an unknown layout.
	ErrInvalidGeometry = errors.New("gkernel: invalid kernel geometry")

	// ErrInvalidOrientations is returned when a bank is asked for fewer than
	// one orientation.
	ErrInvalidOrientations = errors.New("gkernel: orientation count must be positive")
)
