package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hoodrunio/babylon-staker-indexer/internal/metrics"
	"github.com/hoodrunio/babylon-staker-indexer/internal/txid"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

const (
	modeBoth  = "both"
	modeTxID  = "txid"
	modeWTxID = "wtxid"

	// hex of a 4 MB transaction plus slack
	maxLineBytes = 9 << 20
)

type config struct {
	Mode string `long:"mode" short:"m" env:"TXHASH_MODE" description:"identifiers to print" choice:"both" choice:"txid" choice:"wtxid" default:"both"`

	Args struct {
		Hex []string `positional-arg-name:"hex" description:"raw transactions, read line by line from stdin when omitted"`
	} `positional-args:"yes"`
}

func main() {
	cfg := config{}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	hasher := txid.NewHasher(metrics.NewTxHasher())
	if err := run(os.Stdin, os.Stdout, cfg, hasher); err != nil {
		logger.Fatal("txhash failed", zap.Error(err))
	}
}

func run(in io.Reader, out io.Writer, cfg config, hasher *txid.Hasher) (err error) {
	w := bufio.NewWriter(out)
	defer func() {
		if ferr := w.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("flush output: %w", ferr)
		}
	}()

	emit := func(rawHex string) error {
		line, err := identify(hasher, cfg.Mode, rawHex)
		if err != nil {
			return fmt.Errorf("%s: %w", abbreviate(rawHex), err)
		}
		_, err = fmt.Fprintln(w, line)
		return err
	}

	if len(cfg.Args.Hex) > 0 {
		for _, rawHex := range cfg.Args.Hex {
			if err := emit(rawHex); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		rawHex := strings.TrimSpace(scanner.Text())
		if rawHex == "" {
			continue
		}
		if err := emit(rawHex); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}

func identify(hasher *txid.Hasher, mode, rawHex string) (string, error) {
	switch mode {
	case modeTxID:
		return hasher.ComputeHash(rawHex, false)
	case modeWTxID:
		return hasher.ComputeHash(rawHex, true)
	default:
		ids, err := hasher.Compute(rawHex)
		if err != nil {
			return "", err
		}
		return ids.TxID.String() + " " + ids.WTxID.String(), nil
	}
}

func abbreviate(s string) string {
	if len(s) <= 16 {
		return s
	}
	return s[:16] + "..."
}
