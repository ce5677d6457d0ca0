package inspect

import (
	"fmt"

	"github.com/btcsuite/btcd/txscript"
	"github.com/hoodrunio/babylon-staker-indexer/internal/model"
)

// Check names recorded in model.Check.Name.
const (
	// CheckOutputCount requires exactly three outputs.
	CheckOutputCount = "output_count"
	// CheckTaprootOutput requires output 0 to be a taproot stake output.
	CheckTaprootOutput = "first_output_taproot"
	// CheckOpReturnOutput requires output 1 to be an OP_RETURN data carrier.
	CheckOpReturnOutput = "second_output_op_return"
	// CheckStakingPayload requires a parseable staking payload.
	CheckStakingPayload = "staking_payload"
	// CheckTxIDMatchesNode compares the recomputed txid with the node's.
	CheckTxIDMatchesNode = "txid_matches_node"
	// CheckWTxIDMatches compares the recomputed wtxid with the node's hash.
	// It is only recorded when the node reports one.
	CheckWTxIDMatches = "wtxid_matches_node"
)

const stakingOutputCount = 3

var (
	taprootType  = txscript.WitnessV1TaprootTy.String()
	nullDataType = txscript.NullDataTy.String()
)

func validate(r model.Report, stakingErr error) []model.Check {
	checks := []model.Check{
		outputCountCheck(r.Outputs),
		outputTypeCheck(CheckTaprootOutput, r.Outputs, 0, taprootType),
		outputTypeCheck(CheckOpReturnOutput, r.Outputs, 1, nullDataType),
		stakingPayloadCheck(r.Staking, stakingErr),
		matchCheck(CheckTxIDMatchesNode, r.NodeTxID, r.ComputedTxID),
	}
	if r.NodeWTxID != "" {
		checks = append(checks, matchCheck(CheckWTxIDMatches, r.NodeWTxID, r.ComputedWTxID))
	}
	return checks
}

func outputCountCheck(outputs []model.TransactionOutput) model.Check {
	c := model.Check{Name: CheckOutputCount, Passed: len(outputs) == stakingOutputCount}
	if c.Passed {
		c.Detail = fmt.Sprintf("has exactly %d outputs", stakingOutputCount)
	} else {
		c.Detail = fmt.Sprintf("must have exactly %d outputs, got %d", stakingOutputCount, len(outputs))
	}
	return c
}

func outputTypeCheck(name string, outputs []model.TransactionOutput, index int, want string) model.Check {
	c := model.Check{Name: name}
	switch {
	case index >= len(outputs):
		c.Detail = fmt.Sprintf("output %d missing", index)
	case outputs[index].ScriptType == want:
		c.Passed = true
		c.Detail = fmt.Sprintf("output %d is %s", index, want)
	default:
		c.Detail = fmt.Sprintf("output %d is %s, want %s", index, outputs[index].ScriptType, want)
	}
	return c
}

func stakingPayloadCheck(data *model.StakingData, err error) model.Check {
	c := model.Check{Name: CheckStakingPayload}
	switch {
	case data != nil:
		c.Passed = true
		c.Detail = fmt.Sprintf("version %d payload parsed", data.Version)
	case err != nil:
		c.Detail = err.Error()
	default:
		c.Detail = "no OP_RETURN output"
	}
	return c
}

func matchCheck(name, node, computed string) model.Check {
	c := model.Check{Name: name, Passed: node == computed}
	if c.Passed {
		c.Detail = computed
	} else {
		c.Detail = fmt.Sprintf("node %s, computed %s", node, computed)
	}
	return c
}
