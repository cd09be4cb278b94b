package generator

import "errors"

var (
	// ErrUnsupportedFormat is returned for input paths with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported input format")
	// ErrInvalidOutputExtension is returned when an artifact path is neither a source nor a header.
	ErrInvalidOutputExtension = errors.New("generated file must end with source or header extension")
	// ErrInputCountMismatch is returned when a single artifact is requested for more or fewer than one input.
	ErrInputCountMismatch = errors.New("exactly one input is required when output is a single file")
	// ErrOutputCollision is returned when distinct inputs would generate the same artifact pair.
	ErrOutputCollision = errors.New("inputs generate the same output file")
	// ErrUnsupportedWave is returned for waveform containers that hold no integer PCM data.
	ErrUnsupportedWave = errors.New("unsupported wave file")
)
