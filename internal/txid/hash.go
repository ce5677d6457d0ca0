package txid

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Identifiers holds both identifiers of one transaction.
type Identifiers struct {
	TxID   chainhash.Hash
	WTxID  chainhash.Hash
	SegWit bool
}

// Decode converts a hex encoded transaction into raw bytes.
func Decode(rawHex string) ([]byte, error) {
	raw, err := hex.DecodeString(rawHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return raw, nil
}

// Hash returns the double SHA-256 of raw. Witness transactions are hashed in
// their legacy form unless includeWitness is set; they are always checked
// for structural completeness. Other transactions are hashed as given.
func Hash(raw []byte, includeWitness bool) (chainhash.Hash, error) {
	segwit, err := HasWitness(raw)
	if err != nil {
		return chainhash.Hash{}, err
	}
	if !segwit {
		return chainhash.DoubleHashH(raw), nil
	}

	if includeWitness {
		if err := checkWitnessTx(raw); err != nil {
			return chainhash.Hash{}, err
		}
		return chainhash.DoubleHashH(raw), nil
	}

	stripped, err := StripWitness(raw)
	if err != nil {
		return chainhash.Hash{}, err
	}
	return chainhash.DoubleHashH(stripped), nil
}

// TxID returns the witness-excluding identifier of raw.
func TxID(raw []byte) (chainhash.Hash, error) {
	return Hash(raw, false)
}

// WTxID returns the witness-including identifier of raw.
func WTxID(raw []byte) (chainhash.Hash, error) {
	return Hash(raw, true)
}

// Compute returns both identifiers of raw, parsing it once.
func Compute(raw []byte) (Identifiers, error) {
	segwit, err := HasWitness(raw)
	if err != nil {
		return Identifiers{}, err
	}
	if !segwit {
		id := chainhash.DoubleHashH(raw)
		return Identifiers{TxID: id, WTxID: id}, nil
	}

	stripped, err := StripWitness(raw)
	if err != nil {
		return Identifiers{}, err
	}
	return Identifiers{
		TxID:   chainhash.DoubleHashH(stripped),
		WTxID:  chainhash.DoubleHashH(raw),
		SegWit: true,
	}, nil
}

// ComputeHash decodes rawHex and returns its identifier in display order:
// the digest byte-reversed and hex encoded in lowercase.
func ComputeHash(rawHex string, includeWitness bool) (string, error) {
	raw, err := Decode(rawHex)
	if err != nil {
		return "", err
	}
	h, err := Hash(raw, includeWitness)
	if err != nil {
		return "", err
	}
	return h.String(), nil
}

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// HasherMetrics records the outcome of hash computations.
	HasherMetrics interface {
		Observe(witness bool, err error, started time.Time)
	}
)

// Hasher is ComputeHash with metrics. It is safe for concurrent use.
type Hasher struct {
	metrics HasherMetrics
}

// NewHasher constructs a Hasher. metrics may be nil.
func NewHasher(metrics HasherMetrics) *Hasher {
	return &Hasher{metrics: metrics}
}

// ComputeHash behaves like the package level ComputeHash.
func (h *Hasher) ComputeHash(rawHex string, includeWitness bool) (hash string, err error) {
	started := time.Now()
	defer func() {
		if h.metrics != nil {
			h.metrics.Observe(includeWitness, err, started)
		}
	}()
	return ComputeHash(rawHex, includeWitness)
}

// Compute decodes rawHex and returns both identifiers.
func (h *Hasher) Compute(rawHex string) (ids Identifiers, err error) {
	started := time.Now()
	defer func() {
		if h.metrics != nil {
			h.metrics.Observe(true, err, started)
		}
	}()
	raw, err := Decode(rawHex)
	if err != nil {
		return Identifiers{}, err
	}
	return Compute(raw)
}
