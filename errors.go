package port

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is returned when a compression backend is unavailable.
	ErrUnsupported = errors.New("port: backend not supported")
	// ErrCorrupt is returned when a compressed block cannot be trusted.
	ErrCorrupt = errors.New("port: corrupt compressed block")
)

// CorruptionError describes a block that failed to decode.
//
// It matches ErrCorrupt via errors.Is; the codec error (if any) can be
// accessed via errors.Unwrap.
type CorruptionError struct {
	Codec Compression
	cause error
}

func (e *CorruptionError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("port: corrupt %s block", e.Codec)
	}
	return fmt.Sprintf("port: corrupt %s block: %v", e.Codec, e.cause)
}

func (e *CorruptionError) Unwrap() error { return e.cause }

// Is reports whether target is ErrCorrupt.
func (e *CorruptionError) Is(target error) bool { return target == ErrCorrupt }
