// Package metrics holds the prometheus collectors of the toolkit.
package metrics

import "github.com/hoodrunio/babylon-staker-indexer/internal/model"

const namespace = "babylon_staker_indexer"

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func orUnknown(network model.Network) model.Network {
	if network == "" {
		return "unknown"
	}
	return network
}
