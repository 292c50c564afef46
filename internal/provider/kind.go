package provider

import (
	"fmt"
	"strings"

	"github.com/goodnatureofminers/balanceprobe/internal/model"
)

// Kind selects the response schema a provider speaks.
type Kind int

const (
	KindUnknown Kind = iota
	KindBlockstream
	KindBlockchair
	KindBlockCypher
	KindSoChain
	KindBTCCom
	KindGeneric
)

// ParseFunc normalizes a raw response body for the given address.
type ParseFunc func(body []byte, address model.Address) (model.BalanceRecord, error)

var kindNames = map[Kind]string{
	KindBlockstream: "blockstream",
	KindBlockchair:  "blockchair",
	KindBlockCypher: "blockcypher",
	KindSoChain:     "sochain",
	KindBTCCom:      "btccom",
	KindGeneric:     "generic",
}

var kindParsers = map[Kind]ParseFunc{
	KindBlockstream: parseBlockstream,
	KindBlockchair:  parseBlockchair,
	KindBlockCypher: parseBlockCypher,
	KindSoChain:     parseSoChain,
	KindBTCCom:      parseBTCCom,
	KindGeneric:     parseGeneric,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Parser returns the parse function bound to the kind.
func (k Kind) Parser() (ParseFunc, error) {
	p, ok := kindParsers[k]
	if !ok {
		return nil, fmt.Errorf("no parser for provider kind %d", int(k))
	}
	return p, nil
}

// ParseKind resolves a configured kind name.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown provider kind %q", s)
}
