// Package model defines domain models for staking transaction inspection.
package model

// Network names a Bitcoin network.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Signet  Network = "signet"
	Regtest Network = "regtest"
)
