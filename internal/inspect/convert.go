package inspect

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/hoodrunio/babylon-staker-indexer/internal/model"
	"github.com/hoodrunio/babylon-staker-indexer/pkg/safe"
)

// BtcToSatoshis converts BTC amount to satoshis with overflow checks.
func BtcToSatoshis(value float64) (uint64, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}
	if amt < 0 {
		return 0, fmt.Errorf("negative amount: %d", amt)
	}
	return safe.Uint64(int64(amt))
}

// outputDecoder classifies outputs from their script bytes instead of
// trusting the node's annotations.
type outputDecoder struct {
	params *chaincfg.Params
}

func newOutputDecoder(network model.Network) (*outputDecoder, error) {
	params, err := chainParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return &outputDecoder{params: params}, nil
}

func (d *outputDecoder) decode(vouts []btcjson.Vout) ([]model.TransactionOutput, error) {
	outputs := make([]model.TransactionOutput, 0, len(vouts))
	for _, vout := range vouts {
		script, err := hex.DecodeString(vout.ScriptPubKey.Hex)
		if err != nil {
			return nil, fmt.Errorf("output %d script: %w", vout.N, err)
		}
		value, err := BtcToSatoshis(vout.Value)
		if err != nil {
			return nil, fmt.Errorf("output %d value: %w", vout.N, err)
		}

		class, addrs, _, err := txscript.ExtractPkScriptAddrs(script, d.params)
		if err != nil {
			class, addrs = txscript.GetScriptClass(script), nil
		}
		addresses := make([]string, 0, len(addrs))
		for _, addr := range addrs {
			addresses = append(addresses, addr.EncodeAddress())
		}

		outputs = append(outputs, model.TransactionOutput{
			Index:      vout.N,
			Value:      value,
			ScriptType: class.String(),
			ScriptHex:  vout.ScriptPubKey.Hex,
			Script:     script,
			Addresses:  addresses,
		})
	}
	return outputs, nil
}

func chainParamsForNetwork(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
