// SPDX-License-Identifier: GPL-3.0-or-later

package dnscookie

import (
	"errors"
	"fmt"
)

// Errors returned when decoding cookies. Use [errors.Is] to classify them
// and [errors.As] with the *...Error types below to extract details.
var (
	// ErrIncorrectLength means the cookie does not have the expected length.
	ErrIncorrectLength = errors.New("cookie has an incorrect length")

	// ErrTimestampRange means the timestamp is not a valid calendar time.
	ErrTimestampRange = errors.New("cookie timestamp out of range")

	// ErrInvalidHash means no candidate secret produced the cookie hash.
	ErrInvalidHash = errors.New("cookie has an invalid hash")

	// ErrExpired means the cookie timestamp is older than [MaxAge].
	ErrExpired = errors.New("cookie has expired")

	// ErrTimeTravellor means the cookie timestamp is more than
	// [MaxClockSkew] in the future.
	ErrTimeTravellor = errors.New("cookie has a timestamp from the future")

	// ErrUnknownVersion means the version byte is not a known version.
	ErrUnknownVersion = errors.New("cookie has an unknown version")

	// ErrUnknownAlgorithm means the algorithm byte is not a known codepoint.
	ErrUnknownAlgorithm = errors.New("cookie has an unknown algorithm")

	// ErrUnsupportedAlgorithm means the algorithm is a historical
	// codepoint that this package does not implement.
	ErrUnsupportedAlgorithm = errors.New("cookie has an unsupported algorithm")
)

// IncorrectLengthError is an [ErrIncorrectLength] carrying the actual length.
type IncorrectLengthError struct {
	Length int
}

func (e *IncorrectLengthError) Error() string {
	return fmt.Sprintf("%s (%d)", ErrIncorrectLength, e.Length)
}

func (e *IncorrectLengthError) Unwrap() error {
	return ErrIncorrectLength
}

// TimestampRangeError is an [ErrTimestampRange] carrying the wire timestamp.
type TimestampRangeError struct {
	Timestamp uint32
}

func (e *TimestampRangeError) Error() string {
	return fmt.Sprintf("%s (%d)", ErrTimestampRange, e.Timestamp)
}

func (e *TimestampRangeError) Unwrap() error {
	return ErrTimestampRange
}

// UnknownVersionError is an [ErrUnknownVersion] carrying the version byte.
type UnknownVersionError struct {
	Version uint8
}

func (e *UnknownVersionError) Error() string {
	return fmt.Sprintf("%s (%d)", ErrUnknownVersion, e.Version)
}

func (e *UnknownVersionError) Unwrap() error {
	return ErrUnknownVersion
}

// UnknownAlgorithmError is an [ErrUnknownAlgorithm] carrying the algorithm byte.
type UnknownAlgorithmError struct {
	Algorithm uint8
}

func (e *UnknownAlgorithmError) Error() string {
	return fmt.Sprintf("%s (%d)", ErrUnknownAlgorithm, e.Algorithm)
}

func (e *UnknownAlgorithmError) Unwrap() error {
	return ErrUnknownAlgorithm
}

// UnsupportedAlgorithmError is an [ErrUnsupportedAlgorithm] carrying the
// name of the historical algorithm (e.g., "FNV").
type UnsupportedAlgorithmError struct {
	Name string
}

func (e *UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("%s (%s)", ErrUnsupportedAlgorithm, e.Name)
}

func (e *UnsupportedAlgorithmError) Unwrap() error {
	return ErrUnsupportedAlgorithm
}

// IsMalformed returns true when err means the cookie is malformed or uses
// an incompatible format. Servers usually answer such queries without
// honoring any cookie.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrIncorrectLength) ||
		errors.Is(err, ErrTimestampRange) ||
		errors.Is(err, ErrUnknownVersion) ||
		errors.Is(err, ErrUnknownAlgorithm) ||
		errors.Is(err, ErrUnsupportedAlgorithm)
}

// IsUntrusted returns true when err means the cookie is well formed but
// either stale or not minted with any of the given secrets. Servers usually
// answer such queries with a fresh cookie.
func IsUntrusted(err error) bool {
	return errors.Is(err, ErrInvalidHash) ||
		errors.Is(err, ErrExpired) ||
		errors.Is(err, ErrTimeTravellor)
}
