package hyperloglog

import "errors"

var (
	// ErrInvalidPrecision is returned by the constructors when the
	// precision lies outside [MinPrecision, MaxPrecision].
	ErrInvalidPrecision = errors.New("hyperloglog: precision must be between 4 and 18")

	// ErrPrecisionMismatch is returned by Merge when the two counters
	// were built with different precisions.
	ErrPrecisionMismatch = errors.New("hyperloglog: merge requires equal precisions")

	// ErrNumericDomain is returned by linear counting when the number of
	// empty bins exceeds the bin count. It indicates corrupted state, not
	// a caller mistake.
	ErrNumericDomain = errors.New("hyperloglog: empty bins exceed bin count")

	// ErrUnknownMixer is returned for a mixer value outside the three
	// defined finalizers.
	ErrUnknownMixer = errors.New("hyperloglog: unknown bit mixer")

	// ErrUnknownHasher is returned for an item hasher value outside the
	// defined set.
	ErrUnknownHasher = errors.New("hyperloglog: unknown item hasher")
)
