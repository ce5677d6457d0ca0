// Package compactsize implements Bitcoin's variable-length unsigned integer encoding.
package compactsize

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	prefix16 = 0xfd
	prefix32 = 0xfe
	prefix64 = 0xff
)

// ErrOutOfBounds is returned when a read would run past the end of the buffer.
var ErrOutOfBounds = errors.New("read out of bounds")

// Read decodes the integer starting at offset and returns its value together
// with the offset of the first byte after it. Non-minimal encodings, such as
// 0xfd0100, are accepted.
func Read(buf []byte, offset int) (uint64, int, error) {
	if offset < 0 || offset >= len(buf) {
		return 0, offset, fmt.Errorf("compact size at offset %d of %d bytes: %w", offset, len(buf), ErrOutOfBounds)
	}

	prefix := buf[offset]
	width := payloadWidth(prefix)
	if width == 0 {
		return uint64(prefix), offset + 1, nil
	}

	start := offset + 1
	end := start + width
	if end > len(buf) {
		return 0, offset, fmt.Errorf("compact size payload %d..%d of %d bytes: %w", start, end, len(buf), ErrOutOfBounds)
	}

	payload := buf[start:end]
	switch width {
	case 2:
		return uint64(binary.LittleEndian.Uint16(payload)), end, nil
	case 4:
		return uint64(binary.LittleEndian.Uint32(payload)), end, nil
	default:
		return binary.LittleEndian.Uint64(payload), end, nil
	}
}

// Size returns the number of bytes the canonical encoding of v occupies.
func Size(v uint64) int {
	switch {
	case v < prefix16:
		return 1
	case v <= 0xffff:
		return 3
	case v <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// Append appends the canonical encoding of v to dst.
func Append(dst []byte, v uint64) []byte {
	switch Size(v) {
	case 1:
		return append(dst, byte(v))
	case 3:
		dst = append(dst, prefix16)
		return binary.LittleEndian.AppendUint16(dst, uint16(v))
	case 5:
		dst = append(dst, prefix32)
		return binary.LittleEndian.AppendUint32(dst, uint32(v))
	default:
		dst = append(dst, prefix64)
		return binary.LittleEndian.AppendUint64(dst, v)
	}
}

func payloadWidth(prefix byte) int {
	switch prefix {
	case prefix16:
		return 2
	case prefix32:
		return 4
	case prefix64:
		return 8
	default:
		return 0
	}
}
