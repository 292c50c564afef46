package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
)

// MaxSatoshis is the total bitcoin supply. No balance can exceed it.
const MaxSatoshis uint64 = btcutil.MaxSatoshi

// CheckSatoshis rejects amounts above the total supply.
func CheckSatoshis(sats uint64) (uint64, error) {
	if sats > MaxSatoshis {
		return 0, fmt.Errorf("amount %d exceeds max supply %d", sats, MaxSatoshis)
	}
	return sats, nil
}

func BtcToSatoshis(value float64) (uint64, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}
	if amt < 0 {
		return 0, fmt.Errorf("negative amount: %d", amt)
	}
	return CheckSatoshis(uint64(amt))
}

// ParseBTC converts a decimal BTC string such as "0.00150000" to satoshis.
func ParseBTC(value string) (uint64, error) {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("parse btc amount %q: %w", value, err)
	}
	return BtcToSatoshis(parsed)
}

// FormatBTC renders satoshis as BTC with exactly eight decimal places.
func FormatBTC(sats uint64) string {
	return strconv.FormatFloat(btcutil.Amount(sats).ToBTC(), 'f', 8, 64)
}
