package provider

import (
	"bytes"
	"encoding/json"

	"github.com/goodnatureofminers/balanceprobe/internal/model"
	"github.com/goodnatureofminers/balanceprobe/internal/utils"
	"github.com/goodnatureofminers/balanceprobe/pkg/safe"
)

type blockstreamResp struct {
	ChainStats *struct {
		FundedTxoSum *int64 `json:"funded_txo_sum"`
		SpentTxoSum  *int64 `json:"spent_txo_sum"`
	} `json:"chain_stats"`
}

// parseBlockstream handles the Esplora /address/<addr> schema.
func parseBlockstream(body []byte, _ model.Address) (model.BalanceRecord, error) {
	var r blockstreamResp
	if err := json.Unmarshal(body, &r); err != nil {
		return model.BalanceRecord{}, parseErr(KindBlockstream, "decode body", err)
	}
	if r.ChainStats == nil || r.ChainStats.FundedTxoSum == nil || r.ChainStats.SpentTxoSum == nil {
		return model.BalanceRecord{}, parseErr(KindBlockstream, "missing chain_stats fields", nil)
	}
	funded, err := satoshis(*r.ChainStats.FundedTxoSum)
	if err != nil {
		return model.BalanceRecord{}, parseErr(KindBlockstream, "funded_txo_sum", err)
	}
	spent, err := satoshis(*r.ChainStats.SpentTxoSum)
	if err != nil {
		return model.BalanceRecord{}, parseErr(KindBlockstream, "spent_txo_sum", err)
	}
	current, err := safe.Sub(funded, spent)
	if err != nil {
		return model.BalanceRecord{}, parseErr(KindBlockstream, "spent exceeds funded", err)
	}
	return model.BalanceRecord{CurrentSatoshi: current, EverReceivedSatoshi: funded}, nil
}

type blockchairAddress struct {
	Address *struct {
		Balance  *int64 `json:"balance"`
		Received *int64 `json:"received"`
	} `json:"address"`
}

type blockchairResp struct {
	Data map[string]blockchairAddress `json:"data"`
}

// parseBlockchair handles dashboards/address, keyed by the queried address.
func parseBlockchair(body []byte, address model.Address) (model.BalanceRecord, error) {
	var r blockchairResp
	if err := json.Unmarshal(body, &r); err != nil {
		return model.BalanceRecord{}, parseErr(KindBlockchair, "decode body", err)
	}
	entry, ok := r.Data[string(address)]
	if !ok || entry.Address == nil {
		return model.BalanceRecord{}, parseErr(KindBlockchair, "address missing from data", nil)
	}
	return recordFrom(KindBlockchair, entry.Address.Balance, entry.Address.Received)
}

type blockcypherResp struct {
	Balance       *int64 `json:"balance"`
	TotalReceived *int64 `json:"total_received"`
}

func parseBlockCypher(body []byte, _ model.Address) (model.BalanceRecord, error) {
	var r blockcypherResp
	if err := json.Unmarshal(body, &r); err != nil {
		return model.BalanceRecord{}, parseErr(KindBlockCypher, "decode body", err)
	}
	return recordFrom(KindBlockCypher, r.Balance, r.TotalReceived)
}

type sochainResp struct {
	Status string `json:"status"`
	Data   *struct {
		Balance          *string `json:"balance"`
		ConfirmedBalance *string `json:"confirmed_balance"`
	} `json:"data"`
}

// parseSoChain handles get_address_balance, which reports BTC decimal strings.
// The endpoint has no lifetime total; the confirmed balance stands in for it.
func parseSoChain(body []byte, _ model.Address) (model.BalanceRecord, error) {
	var r sochainResp
	if err := json.Unmarshal(body, &r); err != nil {
		return model.BalanceRecord{}, parseErr(KindSoChain, "decode body", err)
	}
	if r.Status != "success" {
		return model.BalanceRecord{}, parseErr(KindSoChain, "status "+r.Status, nil)
	}
	if r.Data == nil || r.Data.Balance == nil || r.Data.ConfirmedBalance == nil {
		return model.BalanceRecord{}, parseErr(KindSoChain, "missing balance fields", nil)
	}
	current, err := utils.ParseBTC(*r.Data.Balance)
	if err != nil {
		return model.BalanceRecord{}, parseErr(KindSoChain, "balance", err)
	}
	confirmed, err := utils.ParseBTC(*r.Data.ConfirmedBalance)
	if err != nil {
		return model.BalanceRecord{}, parseErr(KindSoChain, "confirmed_balance", err)
	}
	return model.BalanceRecord{CurrentSatoshi: current, EverReceivedSatoshi: confirmed}, nil
}

type btccomResp struct {
	Data *struct {
		Balance  *int64 `json:"balance"`
		Received *int64 `json:"received"`
	} `json:"data"`
}

func parseBTCCom(body []byte, _ model.Address) (model.BalanceRecord, error) {
	var r btccomResp
	if err := json.Unmarshal(body, &r); err != nil {
		return model.BalanceRecord{}, parseErr(KindBTCCom, "decode body", err)
	}
	if r.Data == nil {
		return model.BalanceRecord{}, parseErr(KindBTCCom, "data is null", nil)
	}
	return recordFrom(KindBTCCom, r.Data.Balance, r.Data.Received)
}

type genericField int

const (
	genericCurrent genericField = iota
	genericEverReceived
)

// genericKeys is applied in order; a later key overrides an earlier one for the same field.
var genericKeys = []struct {
	key   string
	field genericField
}{
	{key: "balance", field: genericCurrent},
	{key: "balance_satoshi", field: genericCurrent},
	{key: "funded_txo_sum", field: genericEverReceived},
	{key: "total_received", field: genericEverReceived},
	{key: "received", field: genericEverReceived},
}

// parseGeneric looks up well-known top level keys. Lookups never fail: absent,
// non-integer or out-of-supply values leave the field at zero, and so does a
// body that is valid JSON but not an object. Only undecodable bodies are rejected.
func parseGeneric(body []byte, _ model.Address) (model.BalanceRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return model.BalanceRecord{}, parseErr(KindGeneric, "decode body", err)
	}
	top, _ := doc.(map[string]any)

	var rec model.BalanceRecord
	for _, k := range genericKeys {
		n, ok := top[k.key].(json.Number)
		if !ok {
			continue
		}
		v, err := safe.NumberUint64(n)
		if err != nil || v > utils.MaxSatoshis {
			continue
		}
		switch k.field {
		case genericCurrent:
			rec.CurrentSatoshi = v
		case genericEverReceived:
			rec.EverReceivedSatoshi = v
		}
	}
	return rec, nil
}

func recordFrom(kind Kind, current, received *int64) (model.BalanceRecord, error) {
	if current == nil || received == nil {
		return model.BalanceRecord{}, parseErr(kind, "missing balance fields", nil)
	}
	cur, err := satoshis(*current)
	if err != nil {
		return model.BalanceRecord{}, parseErr(kind, "balance", err)
	}
	recv, err := satoshis(*received)
	if err != nil {
		return model.BalanceRecord{}, parseErr(kind, "received", err)
	}
	return model.BalanceRecord{CurrentSatoshi: cur, EverReceivedSatoshi: recv}, nil
}

// satoshis accepts an amount between zero and the total supply.
func satoshis(v int64) (uint64, error) {
	u, err := safe.Uint64(v)
	if err != nil {
		return 0, err
	}
	return utils.CheckSatoshis(u)
}
