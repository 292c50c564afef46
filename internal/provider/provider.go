// Package provider normalizes balance responses from public block explorers.
package provider

import (
	"net/http"

	"github.com/goodnatureofminers/balanceprobe/internal/model"
)

// Adapter builds requests for one remote service and parses its responses.
type Adapter interface {
	Name() string
	BuildRequest(address model.Address, userAgent string) Request
	Parse(body []byte, address model.Address) (model.BalanceRecord, error)
}

// Request describes a single provider call. It is executed by the resolver.
type Request struct {
	Method string
	URL    string
	Header http.Header
}

// Provider is a configured endpoint of a given Kind.
type Provider struct {
	name     string
	kind     Kind
	network  model.Network
	endpoint string
	parse    ParseFunc
}

// New binds an endpoint to the parser of kind.
func New(name string, kind Kind, network model.Network, endpoint string) (*Provider, error) {
	parse, err := kind.Parser()
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = kind.String()
	}
	return &Provider{
		name:     name,
		kind:     kind,
		network:  network,
		endpoint: endpoint,
		parse:    parse,
	}, nil
}

func (p *Provider) Name() string           { return p.name }
func (p *Provider) Kind() Kind             { return p.kind }
func (p *Provider) Network() model.Network { return p.network }

// BuildRequest returns GET <endpoint><address>.
func (p *Provider) BuildRequest(address model.Address, userAgent string) Request {
	header := make(http.Header, 2)
	header.Set("User-Agent", userAgent)
	header.Set("Accept", "application/json")
	return Request{
		Method: http.MethodGet,
		URL:    p.endpoint + string(address),
		Header: header,
	}
}

func (p *Provider) Parse(body []byte, address model.Address) (model.BalanceRecord, error) {
	return p.parse(body, address)
}
