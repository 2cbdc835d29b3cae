// Package collector gathers the role list and the merged adjacency relation
// from the service-inventory API.
package collector

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.trai.ch/rolegraph/internal/core/domain"
	"go.trai.ch/rolegraph/internal/core/ports"
	"go.trai.ch/rolegraph/internal/engine/resultcache"
	"go.trai.ch/zerr"
)

// Endpoint labels reported to metrics.
const (
	endpointRoles          = "roles"
	endpointServiceEntries = "service_entries"
	endpointRules          = "rules"
)

// Options tunes the rule worker pool and the run deadline.
type Options struct {
	Workers        int
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Deadline       time.Duration
}

// OptionsFrom converts the collector configuration, filling unset values with defaults.
func OptionsFrom(cfg domain.CollectorConfig) Options {
	opts := Options{
		Workers:        cfg.Workers,
		MaxAttempts:    cfg.MaxAttempts,
		InitialBackoff: cfg.InitialBackoff,
		MaxBackoff:     cfg.MaxBackoff,
		Deadline:       cfg.Deadline,
	}
	if opts.Workers <= 0 {
		opts.Workers = domain.DefaultWorkers
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = domain.DefaultMaxAttempts
	}
	if opts.InitialBackoff <= 0 {
		opts.InitialBackoff = domain.DefaultInitialBackoff
	}
	if opts.MaxBackoff < opts.InitialBackoff {
		opts.MaxBackoff = max(domain.DefaultMaxBackoff, opts.InitialBackoff)
	}
	if opts.Deadline <= 0 {
		opts.Deadline = domain.DefaultDeadline
	}
	return opts
}

// Result is the outcome of a collection run.
type Result struct {
	Roles     []string
	Adjacency *domain.Adjacency

	RolesCached     bool
	AdjacencyCached bool
}

// Backends returns the normalized dependencies of role, empty when unknown.
func (r *Result) Backends(role string) []domain.Role {
	return r.Adjacency.Backends(role)
}

// Collector fetches both relationship feeds and merges them.
type Collector struct {
	upstream ports.Upstream
	cache    *resultcache.Cache
	logger   ports.Logger
	tracer   ports.Tracer
	metrics  ports.Metrics
	opts     Options
}

// New creates a Collector.
func New(
	upstream ports.Upstream,
	cache *resultcache.Cache,
	log ports.Logger,
	tracer ports.Tracer,
	metrics ports.Metrics,
	opts Options,
) *Collector {
	return &Collector{
		upstream: upstream,
		cache:    cache,
		logger:   log,
		tracer:   tracer,
		metrics:  metrics,
		opts:     opts,
	}
}

// Collect returns the role list and the adjacency relation, from the cache
// when a fresh entry exists and refresh is false.
func (c *Collector) Collect(ctx context.Context, refresh bool) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Deadline)
	defer cancel()

	res, err := c.collect(ctx, refresh)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, errors.Join(domain.ErrCollectionTimeout, zerr.With(err, "deadline", c.opts.Deadline.String()))
		}
		return nil, err
	}
	return res, nil
}

func (c *Collector) collect(ctx context.Context, refresh bool) (*Result, error) {
	roles, rolesCached, err := c.Roles(ctx, refresh)
	if err != nil {
		return nil, err
	}
	res := &Result{Roles: roles, RolesCached: rolesCached}

	if !refresh {
		adj, ok, err := c.cache.ReadAdjacency(ctx)
		if err != nil {
			return nil, err
		}
		if ok {
			_, span := c.tracer.Start(ctx, "collect adjacency")
			span.SetAttribute(ports.AttrCacheHit, true)
			span.End()
			c.logger.Info("using cached adjacency relation")
			res.Adjacency, res.AdjacencyCached = adj, true
			c.metrics.AdjacencySize(adj.Len(), adj.EdgeCount())
			return res, nil
		}
	}

	adj := domain.NewAdjacency()
	c.collectServiceEntries(ctx, adj)
	if err := c.collectRules(ctx, roles, adj); err != nil {
		return nil, err
	}
	c.metrics.AdjacencySize(adj.Len(), adj.EdgeCount())

	if err := c.cache.WriteAdjacency(ctx, adj); err != nil {
		return nil, err
	}
	res.Adjacency = adj
	return res, nil
}

// Roles returns every role name in API order.
// Any page failure aborts enumeration.
func (c *Collector) Roles(ctx context.Context, refresh bool) ([]string, bool, error) {
	ctx, span := c.tracer.Start(ctx, "collect roles")
	defer span.End()

	if !refresh {
		roles, ok, err := c.cache.ReadRoles(ctx)
		if err != nil {
			span.RecordError(err)
			return nil, false, err
		}
		if ok {
			span.SetAttribute(ports.AttrCacheHit, true)
			c.logger.Info("using cached role list")
			return roles, true, nil
		}
	}

	var roles []string
	cursor := ""
	for {
		page, err := c.upstream.ListRoles(ctx, cursor)
		if err != nil {
			err = errors.Join(domain.ErrRoleListFailed, err)
			span.RecordError(err)
			return nil, false, err
		}
		c.metrics.PageFetched(endpointRoles)
		roles = append(roles, page.Roles...)
		if page.Next == "" {
			break
		}
		cursor = page.Next
	}
	span.SetAttribute("roles", len(roles))
	c.logger.Info("fetched " + strconv.Itoa(len(roles)) + " roles from API")

	if err := c.cache.WriteRoles(ctx, roles); err != nil {
		span.RecordError(err)
		return nil, false, err
	}
	return roles, false, nil
}

// collectServiceEntries merges the declared backends into adj.
// A failed page ends the feed with what was already merged.
func (c *Collector) collectServiceEntries(ctx context.Context, adj *domain.Adjacency) {
	ctx, span := c.tracer.Start(ctx, "collect service entries")
	defer span.End()

	cursor := ""
	skipped := 0
	for {
		page, err := c.upstream.ListServiceEntries(ctx, cursor)
		if err != nil {
			span.RecordError(err)
			c.logger.Warn("service entries incomplete: " + err.Error())
			break
		}
		c.metrics.PageFetched(endpointServiceEntries)

		for _, entry := range page.Entries {
			if entry.Malformed {
				skipped++
			}
			for _, backend := range entry.Backends {
				adj.Add(entry.Role, backend)
			}
		}
		if page.Next == "" {
			break
		}
		cursor = page.Next
	}

	span.SetAttribute("skipped_entries", skipped)
	if skipped > 0 {
		c.logger.Debug("skipped " + strconv.Itoa(skipped) + " service entries without backends")
	}
}
