// Package config loads the provider registry definition.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goodnatureofminers/balanceprobe/internal/model"
	"github.com/goodnatureofminers/balanceprobe/internal/provider"
	"gopkg.in/yaml.v3"
)

type Provider struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"`
	Network  string `yaml:"network"`
	Endpoint string `yaml:"endpoint"`
}

type Providers struct {
	Providers []Provider `yaml:"providers"`
}

// LoadProviders reads a YAML provider list, in fallback order.
func LoadProviders(path string) ([]provider.Spec, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read providers: %w", err)
	}
	return ParseProviders(b)
}

// ParseProviders decodes and validates a YAML provider list.
func ParseProviders(b []byte) ([]provider.Spec, error) {
	var c Providers
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(c.Providers) == 0 {
		return nil, errors.New("providers: list is empty")
	}

	specs := make([]provider.Spec, 0, len(c.Providers))
	for i, p := range c.Providers {
		kind, err := provider.ParseKind(p.Kind)
		if err != nil {
			return nil, fmt.Errorf("providers[%d]: %w", i, err)
		}
		network, err := parseNetwork(p.Network)
		if err != nil {
			return nil, fmt.Errorf("providers[%d]: %w", i, err)
		}
		name := strings.TrimSpace(p.Name)
		if name == "" {
			name = kind.String()
		}
		specs = append(specs, provider.Spec{
			Name:     name,
			Kind:     kind,
			Network:  network,
			Endpoint: strings.TrimSpace(p.Endpoint),
		})
	}
	return specs, nil
}

// Registry builds the fallback chain. An empty path selects the built-in
// providers; a non-empty order restricts and reorders the chain by name.
func Registry(path string, order []string) (*provider.Registry, error) {
	var (
		reg *provider.Registry
		err error
	)
	if path == "" {
		reg = provider.DefaultRegistry()
	} else {
		specs, err := LoadProviders(path)
		if err != nil {
			return nil, err
		}
		if reg, err = provider.FromSpecs(specs); err != nil {
			return nil, err
		}
	}

	order = compact(order)
	if len(order) == 0 {
		return reg, nil
	}
	if reg, err = reg.Select(order...); err != nil {
		return nil, fmt.Errorf("select providers: %w", err)
	}
	return reg, nil
}

func parseNetwork(s string) (model.Network, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(model.Mainnet):
		return model.Mainnet, nil
	case string(model.Testnet):
		return model.Testnet, nil
	default:
		return "", fmt.Errorf("unknown network %q", s)
	}
}

func compact(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}
