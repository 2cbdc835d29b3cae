package inventory

import (
	"go.trai.ch/rolegraph/internal/core/domain"
	"go.trai.ch/rolegraph/internal/core/ports"
)

// Factory implements ports.UpstreamFactory.
type Factory struct{}

var _ ports.UpstreamFactory = Factory{}

// NewUpstream creates a Client from cfg.
func (Factory) NewUpstream(cfg domain.APIConfig) (ports.Upstream, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return client, nil
}
