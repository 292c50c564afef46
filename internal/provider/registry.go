package provider

import (
	"errors"
	"fmt"
	"slices"

	"github.com/goodnatureofminers/balanceprobe/internal/model"
)

// Registry is the ordered fallback chain. It is never modified after
// construction and is shared by every worker without locking.
type Registry struct {
	adapters []Adapter
}

// NewRegistry returns a registry that consults adapters in the given order.
func NewRegistry(adapters ...Adapter) (*Registry, error) {
	if len(adapters) == 0 {
		return nil, errors.New("provider registry is empty")
	}
	seen := make(map[string]struct{}, len(adapters))
	for _, a := range adapters {
		if a == nil {
			return nil, errors.New("provider registry contains a nil adapter")
		}
		if _, dup := seen[a.Name()]; dup {
			return nil, fmt.Errorf("duplicate provider %q", a.Name())
		}
		seen[a.Name()] = struct{}{}
	}
	return &Registry{adapters: slices.Clone(adapters)}, nil
}

// Adapters returns the chain in fallback order. Callers must not modify it.
func (r *Registry) Adapters() []Adapter {
	return r.adapters
}

func (r *Registry) Len() int {
	return len(r.adapters)
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.adapters))
	for _, a := range r.adapters {
		names = append(names, a.Name())
	}
	return names
}

// Select builds a new registry from the named providers in the given order.
func (r *Registry) Select(names ...string) (*Registry, error) {
	byName := make(map[string]Adapter, len(r.adapters))
	for _, a := range r.adapters {
		byName[a.Name()] = a
	}
	selected := make([]Adapter, 0, len(names))
	for _, name := range names {
		a, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown provider %q", name)
		}
		selected = append(selected, a)
	}
	return NewRegistry(selected...)
}

// Spec is a provider definition as found in configuration.
type Spec struct {
	Name     string
	Kind     Kind
	Network  model.Network
	Endpoint string
}

// DefaultSpecs lists the built-in endpoints in their default fallback order.
func DefaultSpecs() []Spec {
	return []Spec{
		{Name: "blockstream", Kind: KindBlockstream, Network: model.Mainnet, Endpoint: "https://blockstream.info/api/address/"},
		{Name: "blockchair", Kind: KindBlockchair, Network: model.Mainnet, Endpoint: "https://api.blockchair.com/bitcoin/dashboards/address/"},
		{Name: "blockcypher", Kind: KindBlockCypher, Network: model.Mainnet, Endpoint: "https://api.blockcypher.com/v1/btc/main/addrs/"},
		{Name: "sochain", Kind: KindSoChain, Network: model.Mainnet, Endpoint: "https://sochain.com/api/v2/get_address_balance/BTC/"},
		{Name: "btccom", Kind: KindBTCCom, Network: model.Mainnet, Endpoint: "https://chain.api.btc.com/v3/address/"},
		{Name: "blockchair-testnet", Kind: KindBlockchair, Network: model.Testnet, Endpoint: "https://api.blockchair.com/bitcoin/testnet/dashboards/address/"},
		{Name: "blockcypher-test3", Kind: KindBlockCypher, Network: model.Testnet, Endpoint: "https://api.blockcypher.com/v1/btc/test3/addrs/"},
		{Name: "blockstream-testnet", Kind: KindBlockstream, Network: model.Testnet, Endpoint: "https://blockstream.info/testnet/api/address/"},
		{Name: "sochain-testnet", Kind: KindSoChain, Network: model.Testnet, Endpoint: "https://sochain.com/api/v2/get_address_balance/BTCTEST/"},
		{Name: "chainso", Kind: KindGeneric, Network: model.Mainnet, Endpoint: "https://chain.so/api/v2/get_address_balance/BTC/"},
	}
}

// FromSpecs builds a registry from provider definitions.
func FromSpecs(specs []Spec) (*Registry, error) {
	adapters := make([]Adapter, 0, len(specs))
	for _, s := range specs {
		p, err := New(s.Name, s.Kind, s.Network, s.Endpoint)
		if err != nil {
			return nil, fmt.Errorf("provider %q: %w", s.Name, err)
		}
		adapters = append(adapters, p)
	}
	return NewRegistry(adapters...)
}

// DefaultRegistry returns the built-in fallback chain.
func DefaultRegistry() *Registry {
	r, err := FromSpecs(DefaultSpecs())
	if err != nil {
		panic("default provider registry: " + err.Error())
	}
	return r
}
