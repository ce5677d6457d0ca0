package inspect

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/hoodrunio/babylon-staker-indexer/internal/model"
)

var (
	rule      = strings.Repeat("=", 80)
	phaseRule = strings.Repeat("#", 80)
)

// Render writes a human readable report of r to w.
func Render(w io.Writer, r model.Report) error {
	var b strings.Builder
	renderReport(&b, r)
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderAll writes reports to w, opening a section whenever the phase changes.
func RenderAll(w io.Writer, reports []model.Report) error {
	var b strings.Builder
	phase := ""
	for idx, r := range reports {
		if idx == 0 || r.Phase != phase {
			phase = r.Phase
			fmt.Fprintf(&b, "\n%s\nAnalyzing %s Transactions\n%s\n", phaseRule, orDash(phase), phaseRule)
		}
		renderReport(&b, r)
	}

	valid := 0
	for _, r := range reports {
		if r.Valid() {
			valid++
		}
	}
	fmt.Fprintf(&b, "\n%d of %d transactions passed all checks\n", valid, len(reports))

	_, err := io.WriteString(w, b.String())
	return err
}

func renderReport(b *strings.Builder, r model.Report) {
	fmt.Fprintf(b, "\n%s\nAnalyzing Transaction: %s\n%s\n", rule, r.TxID, rule)
	if r.Error != "" {
		fmt.Fprintf(b, "Error debugging transaction: %s\n", r.Error)
		return
	}

	b.WriteString("\nBasic Information:\n")
	fmt.Fprintf(b, "Block Hash: %s\n", orDash(r.BlockHash))
	if !r.BlockTime.IsZero() {
		fmt.Fprintf(b, "Block Height: %d\n", r.BlockHeight)
		fmt.Fprintf(b, "Block Time: %s\n", r.BlockTime.Format(time.RFC3339))
	}
	fmt.Fprintf(b, "Size: %d bytes (%d vbytes)\n", r.Size, r.VSize)
	fmt.Fprintf(b, "SegWit: %t\n", r.SegWit)

	b.WriteString("\nIdentifiers:\n")
	fmt.Fprintf(b, "TXID (node):      %s\n", orDash(r.NodeTxID))
	fmt.Fprintf(b, "TXID (computed):  %s\n", r.ComputedTxID)
	fmt.Fprintf(b, "WTXID (node):     %s\n", orDash(r.NodeWTxID))
	fmt.Fprintf(b, "WTXID (computed): %s\n", r.ComputedWTxID)

	b.WriteString("\nOutputs Analysis:\n")
	for _, out := range r.Outputs {
		fmt.Fprintf(b, "\nOutput #%d:\n", out.Index)
		fmt.Fprintf(b, "Value: %s (%d satoshi)\n", amount(out.Value), out.Value)
		fmt.Fprintf(b, "Type: %s\n", out.ScriptType)
		if out.ScriptType == taprootType {
			b.WriteString("This is the stake output (Taproot)\n")
		}
		for _, addr := range out.Addresses {
			fmt.Fprintf(b, "Address: %s\n", addr)
		}
		if out.ScriptType == nullDataType {
			fmt.Fprintf(b, "Script: %s\n", out.ScriptHex)
		}
	}

	if s := r.Staking; s != nil {
		b.WriteString("\nParsed OP_RETURN data:\n")
		fmt.Fprintf(b, "version: %d\n", s.Version)
		fmt.Fprintf(b, "staker_public_key: %s\n", s.StakerPublicKey)
		fmt.Fprintf(b, "finality_provider_public_key: %s\n", s.FinalityProviderPublicKey)
		fmt.Fprintf(b, "staking_time: %d\n", s.StakingTime)
	}

	b.WriteString("\nValidation Summary:\n")
	fmt.Fprintf(b, "Total Outputs: %d\n", len(r.Outputs))
	if r.StakeValue > 0 {
		fmt.Fprintf(b, "Stake Amount: %s\n", amount(r.StakeValue))
	}
	for _, c := range r.Checks {
		mark := "✅"
		if !c.Passed {
			mark = "❌"
		}
		fmt.Fprintf(b, "%s %s: %s\n", mark, c.Name, c.Detail)
	}
}

func amount(sat uint64) string {
	if sat > uint64(btcutil.MaxSatoshi) {
		return fmt.Sprintf("%d sat", sat)
	}
	return strconv.FormatFloat(btcutil.Amount(int64(sat)).ToBTC(), 'f', -1, 64) + " BTC"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
