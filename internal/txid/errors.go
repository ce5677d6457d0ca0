package txid

import (
	"errors"

	"github.com/hoodrunio/babylon-staker-indexer/pkg/compactsize"
)

var (
	// ErrInvalidHex is returned when the input is not an even-length hex string.
	ErrInvalidHex = errors.New("invalid transaction hex")
	// ErrOutOfBounds is returned when a field of the transaction runs past the end of the buffer.
	ErrOutOfBounds = compactsize.ErrOutOfBounds
	// ErrTooShort is returned when the buffer cannot hold the marker and flag bytes.
	ErrTooShort = errors.New("transaction too short")
)

// Error kinds reported by Kind.
const (
	KindOK          = "ok"
	KindInvalidHex  = "invalid_hex"
	KindOutOfBounds = "out_of_bounds"
	KindTooShort    = "too_short"
	KindUnknown     = "unknown"
)

// Kind maps err to a stable label.
func Kind(err error) string {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, ErrInvalidHex):
		return KindInvalidHex
	case errors.Is(err, ErrOutOfBounds):
		return KindOutOfBounds
	case errors.Is(err, ErrTooShort):
		return KindTooShort
	default:
		return KindUnknown
	}
}
