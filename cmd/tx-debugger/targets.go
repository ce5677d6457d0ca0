package main

import "github.com/hoodrunio/babylon-staker-indexer/internal/model"

// Known mainnet staking transactions, one pair per staking phase.
var sampleTargets = []model.Target{
	{Phase: "Phase 1 (Version 0)", TxID: "cbe37da1b764cae11bda1bc9ca27f9d5727b37a5a103bc38be2167f5b7d06a98"},
	{Phase: "Phase 1 (Version 0)", TxID: "1bb0cc1f14c7c532e97288a75b1940e90e4466969e95e53933665f997a62c8d1"},
	{Phase: "Phase 2 (Version 1)", TxID: "a5daf25b85f82de6f93bc08c19abc3d45beeef3fd6d3dac69bf641c061bdcbec"},
	{Phase: "Phase 2 (Version 1)", TxID: "7d90210b21aad480cd88fd8399aa6d47e6b3f2ecea2f9f9cfdd79598430e3003"},
	{Phase: "Phase 3 (Version 2)", TxID: "214dd01222e2a135b6478353358b6d44ca8cff3bf7596e7f0da024d9703d0282"},
	{Phase: "Phase 3 (Version 2)", TxID: "91a1a3d0f277332870ce86dff523db2d6f9464604c072f50b300f1271123b87a"},
}

const customPhase = "Requested"

func targetsFor(txids []string) []model.Target {
	if len(txids) == 0 {
		return sampleTargets
	}
	targets := make([]model.Target, 0, len(txids))
	for _, id := range txids {
		targets = append(targets, model.Target{Phase: customPhase, TxID: id})
	}
	return targets
}
