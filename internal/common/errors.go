// Package common defines sentinel errors shared by lechworld packages.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Input rejected before reaching storage.
	ErrorValidation = errors.New("validation error")

	// No remembered login is stored locally (or it could not be decoded).
	ErrNoCredentials = errors.New("no remembered credentials")

	// The family database could not be reached; the CLI runs offline.
	ErrUnavailable = errors.New("family database unavailable")
)
