// Package staking parses the Babylon staking payload of an OP_RETURN output.
//
// Layout of the single data push following OP_RETURN:
//
//	tag(4) "bbn1" | version(1) | staker pk(32) | finality provider pk(32) | staking time(2, big endian)
package staking

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/txscript"
	"github.com/hoodrunio/babylon-staker-indexer/internal/model"
)

// Tag identifies Babylon staking payloads.
const Tag = "bbn1"

const (
	tagSize         = 4
	versionSize     = 1
	publicKeySize   = 32
	stakingTimeSize = 2

	// PayloadSize is the length of the data push.
	PayloadSize = tagSize + versionSize + 2*publicKeySize + stakingTimeSize
)

var (
	// ErrNotOpReturn is returned for scripts that are not a single OP_RETURN data push.
	ErrNotOpReturn = errors.New("script is not an OP_RETURN data carrier")
	// ErrInvalidLength is returned when the pushed data is not PayloadSize bytes.
	ErrInvalidLength = errors.New("invalid staking payload length")
	// ErrInvalidTag is returned when the payload does not start with Tag.
	ErrInvalidTag = errors.New("invalid staking payload tag")
)

// ParseOpReturn extracts the staking payload from an OP_RETURN script.
func ParseOpReturn(script []byte) (model.StakingData, error) {
	if txscript.GetScriptClass(script) != txscript.NullDataTy {
		return model.StakingData{}, ErrNotOpReturn
	}

	tokenizer := txscript.MakeScriptTokenizer(0, script)
	if !tokenizer.Next() || tokenizer.Opcode() != txscript.OP_RETURN {
		return model.StakingData{}, ErrNotOpReturn
	}
	if !tokenizer.Next() {
		return model.StakingData{}, fmt.Errorf("no data push: %w", ErrInvalidLength)
	}
	data := tokenizer.Data()
	if len(data) != PayloadSize {
		return model.StakingData{}, fmt.Errorf("got %d bytes, want %d: %w", len(data), PayloadSize, ErrInvalidLength)
	}
	if !bytes.Equal(data[:tagSize], []byte(Tag)) {
		return model.StakingData{}, fmt.Errorf("tag %x: %w", data[:tagSize], ErrInvalidTag)
	}

	pos := tagSize
	version := data[pos]
	pos += versionSize
	staker := data[pos : pos+publicKeySize]
	pos += publicKeySize
	provider := data[pos : pos+publicKeySize]
	pos += publicKeySize

	return model.StakingData{
		Version:                   version,
		StakerPublicKey:           hex.EncodeToString(staker),
		FinalityProviderPublicKey: hex.EncodeToString(provider),
		StakingTime:               binary.BigEndian.Uint16(data[pos : pos+stakingTimeSize]),
	}, nil
}

// BuildOpReturn encodes d as an OP_RETURN script.
func BuildOpReturn(d model.StakingData) ([]byte, error) {
	staker, err := decodeKey(d.StakerPublicKey)
	if err != nil {
		return nil, fmt.Errorf("staker public key: %w", err)
	}
	provider, err := decodeKey(d.FinalityProviderPublicKey)
	if err != nil {
		return nil, fmt.Errorf("finality provider public key: %w", err)
	}

	payload := make([]byte, 0, PayloadSize)
	payload = append(payload, Tag...)
	payload = append(payload, d.Version)
	payload = append(payload, staker...)
	payload = append(payload, provider...)
	payload = binary.BigEndian.AppendUint16(payload, d.StakingTime)

	return txscript.NewScriptBuilder().
		AddOp(txscript.OP_RETURN).
		AddData(payload).
		Script()
}

func decodeKey(s string) ([]byte, error) {
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(key) != publicKeySize {
		return nil, fmt.Errorf("got %d bytes, want %d", len(key), publicKeySize)
	}
	return key, nil
}
