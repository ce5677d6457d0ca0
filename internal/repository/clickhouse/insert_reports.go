package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/hoodrunio/babylon-staker-indexer/internal/model"
	"github.com/hoodrunio/babylon-staker-indexer/pkg/safe"
)

const insertReportsQuery = `
INSERT INTO tx_hash_checks (
	network,
	phase,
	txid,
	node_txid,
	node_wtxid,
	computed_txid,
	computed_wtxid,
	segwit,
	block_hash,
	block_height,
	block_time,
	size,
	vsize,
	output_count,
	stake_value,
	has_staking_payload,
	staking_version,
	staker_public_key,
	finality_provider_public_key,
	staking_time,
	failed_checks,
	valid,
	error,
	inspected_at
) VALUES`

// InsertReports stores inspection reports in ClickHouse.
func (r *Repository) InsertReports(ctx context.Context, reports []model.Report) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_reports", firstNetwork(reports), err, start)
	}()

	if len(reports) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertReportsQuery)
	if err != nil {
		return fmt.Errorf("prepare reports batch: %w", err)
	}

	for _, report := range reports {
		row, rowErr := reportRow(report)
		if rowErr != nil {
			err = fmt.Errorf("report %s: %w", report.TxID, rowErr)
			return err
		}
		if err = batch.Append(row...); err != nil {
			return fmt.Errorf("append report %s: %w", report.TxID, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert reports: %w", err)
	}
	return nil
}

func reportRow(r model.Report) ([]any, error) {
	var staking model.StakingData
	if r.Staking != nil {
		staking = *r.Staking
	}
	outputCount, err := safe.Uint32(len(r.Outputs))
	if err != nil {
		return nil, fmt.Errorf("output count: %w", err)
	}

	return []any{
		string(r.Network),
		r.Phase,
		r.TxID,
		r.NodeTxID,
		r.NodeWTxID,
		r.ComputedTxID,
		r.ComputedWTxID,
		r.SegWit,
		r.BlockHash,
		r.BlockHeight,
		r.BlockTime,
		r.Size,
		r.VSize,
		outputCount,
		r.StakeValue,
		r.Staking != nil,
		staking.Version,
		staking.StakerPublicKey,
		staking.FinalityProviderPublicKey,
		staking.StakingTime,
		r.FailedChecks(),
		r.Valid(),
		r.Error,
		r.InspectedAt,
	}, nil
}

func firstNetwork(reports []model.Report) model.Network {
	if len(reports) == 0 {
		return ""
	}
	return reports[0].Network
}
