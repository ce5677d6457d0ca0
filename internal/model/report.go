package model

import "time"

// Target is a transaction queued for inspection.
type Target struct {
	Phase string
	TxID  string
}

// StakingData is the Babylon staking payload carried by an OP_RETURN output.
type StakingData struct {
	Version                   uint8
	StakerPublicKey           string
	FinalityProviderPublicKey string
	StakingTime               uint16
}

// TransactionOutput describes an output of an inspected transaction.
type TransactionOutput struct {
	Index      uint32
	Value      uint64
	ScriptType string
	ScriptHex  string
	Script     []byte
	Addresses  []string
}

// Check is a single named validation outcome.
type Check struct {
	Name   string
	Passed bool
	Detail string
}

// Report is the outcome of inspecting one transaction.
type Report struct {
	Network       Network
	Phase         string
	TxID          string
	NodeTxID      string
	NodeWTxID     string
	ComputedTxID  string
	ComputedWTxID string
	SegWit        bool
	BlockHash     string
	BlockHeight   uint64
	BlockTime     time.Time
	Size          uint32
	VSize         uint32
	Outputs       []TransactionOutput
	StakeValue    uint64
	Staking       *StakingData
	Checks        []Check
	Error         string
	InspectedAt   time.Time
}

// Valid reports whether the inspection succeeded and every check passed.
func (r Report) Valid() bool {
	if r.Error != "" {
		return false
	}
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

// FailedChecks returns the names of the checks that did not pass.
func (r Report) FailedChecks() []string {
	failed := make([]string, 0)
	for _, c := range r.Checks {
		if !c.Passed {
			failed = append(failed, c.Name)
		}
	}
	return failed
}
