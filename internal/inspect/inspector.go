// Package inspect debugs staking transactions fetched from a bitcoin node.
//
// Each transaction's identifiers are recomputed from its raw bytes and
// compared with the node's, its outputs are classified, and its Babylon
// OP_RETURN payload is parsed.
package inspect

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/hoodrunio/babylon-staker-indexer/internal/clock"
	"github.com/hoodrunio/babylon-staker-indexer/internal/model"
	"github.com/hoodrunio/babylon-staker-indexer/internal/staking"
	"github.com/hoodrunio/babylon-staker-indexer/pkg/safe"
	"github.com/hoodrunio/babylon-staker-indexer/pkg/workerpool"
	"go.uber.org/zap"
)

const defaultWorkerCount = 4

// Config tunes concurrency and RPC retries. Zero values fall back to a
// single attempt and defaultWorkerCount workers.
type Config struct {
	Workers     int
	RPCAttempts int
	RPCBackoff  clock.Backoff
}

// Inspector fetches transactions over RPC and builds reports for them.
type Inspector struct {
	rpc     RPCClient
	hasher  Hasher
	outputs *outputDecoder
	writer  ReportWriter
	metrics Metrics
	network model.Network
	cfg     Config
	logger  *zap.Logger
	now     func() time.Time
}

// NewInspector builds an Inspector. writer may be nil.
func NewInspector(
	rpc RPCClient,
	hasher Hasher,
	writer ReportWriter,
	metrics Metrics,
	network model.Network,
	cfg Config,
	logger *zap.Logger,
) (*Inspector, error) {
	if rpc == nil {
		return nil, errors.New("inspector rpc client is required")
	}
	if hasher == nil {
		return nil, errors.New("inspector hasher is required")
	}
	if metrics == nil {
		return nil, errors.New("inspector metrics is required")
	}
	decoder, err := newOutputDecoder(network)
	if err != nil {
		return nil, err
	}
	if cfg.Workers < 1 {
		cfg.Workers = defaultWorkerCount
	}
	if cfg.RPCAttempts < 1 {
		cfg.RPCAttempts = 1
	}

	return &Inspector{
		rpc:     rpc,
		hasher:  hasher,
		outputs: decoder,
		writer:  writer,
		metrics: metrics,
		network: network,
		cfg:     cfg,
		logger:  logger.With(zap.String("network", string(network))),
		now:     time.Now,
	}, nil
}

// Inspect builds the report of a single transaction. On error the returned
// report holds whatever was gathered before the failure.
func (i *Inspector) Inspect(ctx context.Context, target model.Target) (report model.Report, err error) {
	started := time.Now()
	report = model.Report{
		Network:     i.network,
		Phase:       target.Phase,
		TxID:        target.TxID,
		InspectedAt: i.now().UTC(),
	}
	defer func() {
		i.metrics.Observe(err, err == nil && report.Valid(), started)
	}()

	if err = ctx.Err(); err != nil {
		return report, err
	}
	hash, err := chainhash.NewHashFromStr(target.TxID)
	if err != nil {
		return report, fmt.Errorf("parse txid %q: %w", target.TxID, err)
	}
	tx, err := i.fetch(ctx, hash)
	if err != nil {
		return report, err
	}
	err = i.fill(&report, tx)
	return report, err
}

func (i *Inspector) fetch(ctx context.Context, hash *chainhash.Hash) (*btcjson.TxRawResult, error) {
	var err error
	for attempt := 1; attempt <= i.cfg.RPCAttempts; attempt++ {
		if attempt > 1 {
			if waitErr := i.cfg.RPCBackoff.Wait(ctx, attempt-1); waitErr != nil {
				return nil, waitErr
			}
		}
		var tx *btcjson.TxRawResult
		tx, err = i.rpc.GetRawTransactionVerbose(hash)
		if err == nil {
			return tx, nil
		}
		i.logger.Debug("get raw transaction failed",
			zap.Stringer("txid", hash),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
	}
	return nil, fmt.Errorf("get raw transaction %s: %w", hash, err)
}

func (i *Inspector) fill(report *model.Report, tx *btcjson.TxRawResult) error {
	report.NodeTxID = tx.Txid
	report.NodeWTxID = tx.Hash
	report.BlockHash = tx.BlockHash

	size, err := safe.Uint32(tx.Size)
	if err != nil {
		return fmt.Errorf("tx %s size overflow: %w", tx.Txid, err)
	}
	vsize, err := safe.Uint32(tx.Vsize)
	if err != nil {
		return fmt.Errorf("tx %s vsize overflow: %w", tx.Txid, err)
	}
	report.Size, report.VSize = size, vsize

	if tx.BlockHash != "" {
		if err := i.fillBlock(report, tx.BlockHash); err != nil {
			return err
		}
	}

	ids, err := i.hasher.Compute(tx.Hex)
	if err != nil {
		return fmt.Errorf("compute identifiers of %s: %w", tx.Txid, err)
	}
	report.ComputedTxID = ids.TxID.String()
	report.ComputedWTxID = ids.WTxID.String()
	report.SegWit = ids.SegWit

	outputs, err := i.outputs.decode(tx.Vout)
	if err != nil {
		return fmt.Errorf("tx %s: %w", tx.Txid, err)
	}
	report.Outputs = outputs

	var stakingErr error
	for _, out := range outputs {
		if out.ScriptType == taprootType && report.StakeValue == 0 {
			report.StakeValue = out.Value
		}
		if out.ScriptType == nullDataType && report.Staking == nil && stakingErr == nil {
			data, err := staking.ParseOpReturn(out.Script)
			if err != nil {
				stakingErr = fmt.Errorf("output %d: %w", out.Index, err)
				continue
			}
			report.Staking = &data
		}
	}

	report.Checks = validate(*report, stakingErr)
	return nil
}

func (i *Inspector) fillBlock(report *model.Report, blockHashStr string) error {
	blockHash, err := chainhash.NewHashFromStr(blockHashStr)
	if err != nil {
		return fmt.Errorf("parse block hash %q: %w", blockHashStr, err)
	}
	header, err := i.rpc.GetBlockHeaderVerbose(blockHash)
	if err != nil {
		return fmt.Errorf("get block header %s: %w", blockHash, err)
	}
	height, err := safe.Uint64(header.Height)
	if err != nil {
		return fmt.Errorf("block %s height: %w", blockHash, err)
	}
	report.BlockHeight = height
	report.BlockTime = time.Unix(header.Time, 0).UTC()
	return nil
}

// InspectAll inspects targets concurrently and returns reports in the order
// of targets. A failed inspection is recorded in its report's Error field;
// only cancellation and report writer failures abort the run.
func (i *Inspector) InspectAll(ctx context.Context, targets []model.Target) ([]model.Report, error) {
	return workerpool.Map(ctx, i.cfg.Workers, targets, func(ctx context.Context, target model.Target) (model.Report, error) {
		report, err := i.Inspect(ctx, target)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return model.Report{}, ctxErr
			}
			i.logger.Warn("inspection failed", zap.String("txid", target.TxID), zap.Error(err))
			report.Error = err.Error()
		}
		if i.writer != nil {
			if err := i.writer.Add(ctx, report); err != nil {
				return model.Report{}, fmt.Errorf("write report %s: %w", target.TxID, err)
			}
		}
		return report, nil
	})
}
