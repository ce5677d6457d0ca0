// Package txid computes Bitcoin transaction identifiers from raw wire bytes.
//
// A transaction whose bytes 4 and 5 are 0x00 0x01 is treated as carrying a
// witness section. Its TXID is computed over the transaction re-serialized
// without marker, flag and witness stacks; its WTXID over the bytes as given.
package txid

import (
	"fmt"

	"github.com/hoodrunio/babylon-staker-indexer/pkg/compactsize"
	"github.com/hoodrunio/babylon-staker-indexer/pkg/safe"
)

const (
	versionSize  = 4
	outPointSize = 36
	sequenceSize = 4
	valueSize    = 8
	lockTimeSize = 4

	markerOffset = 4
	flagOffset   = 5

	witnessMarker = 0x00
	witnessFlag   = 0x01
)

// HasWitness reports whether raw carries the witness marker and flag.
func HasWitness(raw []byte) (bool, error) {
	if len(raw) <= flagOffset {
		return false, fmt.Errorf("%d bytes, need at least %d: %w", len(raw), flagOffset+1, ErrTooShort)
	}
	return raw[markerOffset] == witnessMarker && raw[flagOffset] == witnessFlag, nil
}

// StripWitness re-serializes a witness transaction in its legacy form.
// Counts and lengths are written back in canonical compact size encoding.
// The witness stacks are walked but not copied, so a transaction truncated
// before its locktime is rejected. The locktime is taken from the trailing
// four bytes of raw.
func StripWitness(raw []byte) ([]byte, error) {
	w := &legacyWriter{buf: make([]byte, 0, len(raw))}
	if err := walkWitnessTx(raw, w); err != nil {
		return nil, err
	}
	return w.buf, nil
}

// checkWitnessTx runs the StripWitness walk without serializing anything.
func checkWitnessTx(raw []byte) error {
	return walkWitnessTx(raw, &legacyWriter{discard: true})
}

func walkWitnessTx(raw []byte, w *legacyWriter) error {
	r := &reader{buf: raw}

	version, err := r.next(versionSize)
	if err != nil {
		return fmt.Errorf("version: %w", err)
	}
	w.write(version)
	r.pos = flagOffset + 1

	inputs, err := r.varInt()
	if err != nil {
		return fmt.Errorf("input count: %w", err)
	}
	w.writeVarInt(inputs)
	for i := uint64(0); i < inputs; i++ {
		if err = copyInput(r, w); err != nil {
			return fmt.Errorf("input %d: %w", i, err)
		}
	}

	outputs, err := r.varInt()
	if err != nil {
		return fmt.Errorf("output count: %w", err)
	}
	w.writeVarInt(outputs)
	for i := uint64(0); i < outputs; i++ {
		if err = copyOutput(r, w); err != nil {
			return fmt.Errorf("output %d: %w", i, err)
		}
	}

	for i := uint64(0); i < inputs; i++ {
		if err = skipWitness(r); err != nil {
			return fmt.Errorf("witness %d: %w", i, err)
		}
	}
	if len(raw)-r.pos < lockTimeSize {
		return fmt.Errorf("locktime at offset %d of %d bytes: %w", r.pos, len(raw), ErrOutOfBounds)
	}

	w.write(raw[len(raw)-lockTimeSize:])
	return nil
}

func copyInput(r *reader, w *legacyWriter) error {
	outPoint, err := r.next(outPointSize)
	if err != nil {
		return fmt.Errorf("outpoint: %w", err)
	}
	w.write(outPoint)

	if err = copyScript(r, w); err != nil {
		return fmt.Errorf("signature script: %w", err)
	}

	sequence, err := r.next(sequenceSize)
	if err != nil {
		return fmt.Errorf("sequence: %w", err)
	}
	w.write(sequence)
	return nil
}

func copyOutput(r *reader, w *legacyWriter) error {
	value, err := r.next(valueSize)
	if err != nil {
		return fmt.Errorf("value: %w", err)
	}
	w.write(value)

	if err = copyScript(r, w); err != nil {
		return fmt.Errorf("pk script: %w", err)
	}
	return nil
}

func copyScript(r *reader, w *legacyWriter) error {
	length, err := r.varInt()
	if err != nil {
		return err
	}
	script, err := r.field(length)
	if err != nil {
		return err
	}
	w.writeVarInt(length)
	w.write(script)
	return nil
}

func skipWitness(r *reader) error {
	items, err := r.varInt()
	if err != nil {
		return err
	}
	for i := uint64(0); i < items; i++ {
		length, err := r.varInt()
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		if _, err = r.field(length); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

// legacyWriter collects the legacy serialization. With discard set it drops
// everything written to it.
type legacyWriter struct {
	buf     []byte
	discard bool
}

func (w *legacyWriter) write(b []byte) {
	if !w.discard {
		w.buf = append(w.buf, b...)
	}
}

func (w *legacyWriter) writeVarInt(v uint64) {
	if !w.discard {
		w.buf = compactsize.Append(w.buf, v)
	}
}

// reader is a bounds-checked cursor over a transaction buffer.
type reader struct {
	buf []byte
	pos int
}

func (r *reader) varInt() (uint64, error) {
	v, next, err := compactsize.Read(r.buf, r.pos)
	if err != nil {
		return 0, err
	}
	r.pos = next
	return v, nil
}

func (r *reader) next(n int) ([]byte, error) {
	if n > len(r.buf)-r.pos {
		return nil, fmt.Errorf("%d bytes at offset %d of %d: %w", n, r.pos, len(r.buf), ErrOutOfBounds)
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) field(length uint64) ([]byte, error) {
	n, err := safe.Len(length)
	if err != nil {
		return nil, fmt.Errorf("field at offset %d: %v: %w", r.pos, err, ErrOutOfBounds)
	}
	return r.next(n)
}
