package inspect

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/hoodrunio/babylon-staker-indexer/internal/model"
	"github.com/hoodrunio/babylon-staker-indexer/internal/txid"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RPCClient interface {
		GetRawTransactionVerbose(txHash *chainhash.Hash) (*btcjson.TxRawResult, error)
		GetBlockHeaderVerbose(blockHash *chainhash.Hash) (*btcjson.GetBlockHeaderVerboseResult, error)
	}
	Hasher interface {
		Compute(rawHex string) (txid.Identifiers, error)
	}
	ReportWriter interface {
		Add(ctx context.Context, report model.Report) error
	}
	Metrics interface {
		Observe(err error, valid bool, started time.Time)
	}
)
