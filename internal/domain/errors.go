package domain

import "errors"

// Error kinds for the classifier core. Callers discriminate with errors.Is;
// specifics are wrapped on top with fmt.Errorf and %w.
var (
	// ErrData marks malformed or insufficient input data.
	ErrData = errors.New("data error")

	// ErrModel marks an operation attempted on an untrained or structurally
	// invalid artifact.
	ErrModel = errors.New("model error")

	// ErrFormat marks an artifact deserialization failure.
	ErrFormat = errors.New("format error")
)
