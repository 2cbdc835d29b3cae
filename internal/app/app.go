// Package app implements the application layer for rolegraph.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.trai.ch/rolegraph/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/rolegraph/internal/adapters/progress"  //nolint:depguard // Wired in app layer
	"go.trai.ch/rolegraph/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/rolegraph/internal/core/domain"
	"go.trai.ch/rolegraph/internal/core/ports"
	"go.trai.ch/rolegraph/internal/engine/collector"
	"go.trai.ch/rolegraph/internal/engine/grapher"
	"go.trai.ch/rolegraph/internal/engine/resultcache"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	upstreams    ports.UpstreamFactory
	stores       ports.BlobStoreFactory
	sinks        ports.GraphSinkFactory
	renderer     ports.Renderer

	newProgress func() ports.Progress
	now         func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	upstreams ports.UpstreamFactory,
	stores ports.BlobStoreFactory,
	sinks ports.GraphSinkFactory,
	renderer ports.Renderer,
) *App {
	a := &App{
		configLoader: loader,
		logger:       log,
		upstreams:    upstreams,
		stores:       stores,
		sinks:        sinks,
		renderer:     renderer,
		now:          time.Now,
	}
	a.newProgress = func() ports.Progress { return progress.New(a.logger) }
	return a
}

// WithProgress replaces the per-run progress recorder.
func (a *App) WithProgress(fn func() ports.Progress) *App {
	a.newProgress = fn
	return a
}

// WithClock sets the clock used for cache freshness.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// SetDebug switches debug logging when the logger supports it.
func (a *App) SetDebug(enable bool) {
	if l, ok := a.logger.(interface{ SetDebug(bool) }); ok {
		l.SetDebug(enable)
	}
}

// CollectOptions configures a collection run.
type CollectOptions struct {
	ConfigPath  string
	Refresh     bool
	MetricsFile string
}

// GraphOptions configures a graph run. Unset values fall back to the
// configuration file.
type GraphOptions struct {
	CollectOptions
	Services       []string
	MinConnections *int
	MaxConnections *int
	Output         string
	Neo4j          bool
}

// Collect gathers roles and the adjacency relation, refreshing the cache as needed.
func (a *App) Collect(ctx context.Context, opts CollectOptions) (*collector.Result, error) {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	s, err := a.openSession(ctx, cfg, opts.MetricsFile)
	if err != nil {
		return nil, err
	}
	defer s.close(ctx)

	res, err := s.collect(ctx, opts.Refresh)
	if err != nil {
		return nil, err
	}
	if err := s.writeMetrics(opts.MetricsFile); err != nil {
		return nil, err
	}
	return res, nil
}

// Backends returns the normalized dependencies of role.
// An unknown role yields an empty list.
func (a *App) Backends(ctx context.Context, role string, opts CollectOptions) ([]string, error) {
	res, err := a.Collect(ctx, opts)
	if err != nil {
		return nil, err
	}
	backends := res.Backends(role)
	names := make([]string, 0, len(backends))
	for _, b := range backends {
		names = append(names, b.String())
	}
	return names, nil
}

// Graph builds the dependency graph of the selected services, prunes it and
// renders it to the output path.
func (a *App) Graph(ctx context.Context, opts GraphOptions) error {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	minDegree, maxDegree, output := cfg.Graph.MinConnections, cfg.Graph.MaxConnections, cfg.Graph.Output
	if opts.MinConnections != nil {
		minDegree = *opts.MinConnections
	}
	if opts.MaxConnections != nil {
		maxDegree = *opts.MaxConnections
	}
	if opts.Output != "" {
		output = opts.Output
	}
	if err := grapher.ValidateRange(minDegree, maxDegree); err != nil {
		return err
	}
	if opts.Neo4j && cfg.Neo4j.URI == "" {
		return errors.Join(domain.ErrSinkUnavailable, errors.New("neo4j.uri is not configured"))
	}

	s, err := a.openSession(ctx, cfg, opts.MetricsFile)
	if err != nil {
		return err
	}
	defer s.close(ctx)

	res, err := s.collect(ctx, opts.Refresh)
	if err != nil {
		return err
	}

	seeds := opts.Services
	if len(seeds) == 0 {
		seeds = res.Roles
	}

	_, span := s.tracer.Start(ctx, "build graph")
	builder := grapher.NewBuilder(res.Adjacency, domain.NewExclusion(cfg.Graph.Exclude...), a.logger)
	g, err := grapher.Prune(builder.BuildAll(seeds), minDegree, maxDegree)
	if err != nil {
		span.RecordError(err)
		span.End()
		return err
	}
	span.SetAttribute("nodes", g.NodeCount())
	span.SetAttribute("edges", g.EdgeCount())
	span.End()

	a.reportCycle(g)

	a.logger.Info(fmt.Sprintf("rendering graph with %d nodes and %d edges to %s", g.NodeCount(), g.EdgeCount(), output))
	if err := a.renderer.Render(ctx, g, output); err != nil {
		return errors.Join(domain.ErrRenderFailed, err)
	}

	if opts.Neo4j {
		if err := a.publish(ctx, cfg.Neo4j, g); err != nil {
			return err
		}
	}

	return s.writeMetrics(opts.MetricsFile)
}

// reportCycle warns about a directed cycle the builder could not suppress.
func (a *App) reportCycle(g *domain.Graph) {
	err := g.FindCycle()
	if err == nil {
		return
	}
	msg := err.Error()
	var zErr *zerr.Error
	if errors.As(err, &zErr) {
		if path, ok := zErr.Metadata()["cycle"]; ok {
			msg = fmt.Sprintf("%s: %v", msg, path)
		}
	}
	a.logger.Warn("graph is not acyclic, " + msg)
}

func (a *App) publish(ctx context.Context, cfg domain.Neo4jConfig, g *domain.Graph) error {
	sink, err := a.sinks.NewGraphSink(ctx, cfg)
	if err != nil {
		return errors.Join(domain.ErrSinkUnavailable, err)
	}
	defer func() {
		if closeErr := sink.Close(ctx); closeErr != nil {
			a.logger.Warn("closing graph sink: " + closeErr.Error())
		}
	}()

	if err := sink.Publish(ctx, g); err != nil {
		return errors.Join(domain.ErrSinkWriteFailed, err)
	}
	a.logger.Info(fmt.Sprintf("published %d roles to neo4j", g.NodeCount()))
	return nil
}

func (a *App) loadConfig(path string) (domain.Config, error) {
	if path == "" {
		path = domain.ConfigFileName
	}
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// session holds the adapters of a single run.
type session struct {
	logger    ports.Logger
	store     ports.BlobStore
	progress  ports.Progress
	tracer    ports.Tracer
	metrics   ports.Metrics
	collector *collector.Collector
}

// openSession builds the adapters of one run. Measurements are discarded
// unless metricsFile is set.
func (a *App) openSession(ctx context.Context, cfg domain.Config, metricsFile string) (*session, error) {
	upstream, err := a.upstreams.NewUpstream(cfg.API)
	if err != nil {
		return nil, err
	}
	store, err := a.stores.NewBlobStore(ctx, cfg.Cache)
	if err != nil {
		return nil, err
	}

	prog := a.newProgress()
	var m ports.Metrics = metrics.NoOp{}
	if metricsFile != "" {
		m = metrics.New()
	}
	tracer := telemetry.NewProgressTracer(prog)
	cache := resultcache.New(store, a.logger, m).WithClock(a.now)

	return &session{
		logger:    a.logger,
		store:     store,
		progress:  prog,
		tracer:    tracer,
		metrics:   m,
		collector: collector.New(upstream, cache, a.logger, tracer, m, collector.OptionsFrom(cfg.Collector)),
	}, nil
}

func (s *session) collect(ctx context.Context, refresh bool) (*collector.Result, error) {
	res, err := s.collector.Collect(ctx, refresh)
	if err != nil {
		return nil, err
	}
	s.logger.Info(fmt.Sprintf("collected %d roles and %d dependency edges",
		len(res.Roles), res.Adjacency.EdgeCount()))
	return res, nil
}

func (s *session) writeMetrics(path string) error {
	if path == "" {
		return nil
	}
	return s.metrics.WriteTextfile(path)
}

func (s *session) close(ctx context.Context) {
	if err := s.tracer.Shutdown(ctx); err != nil {
		s.logger.Warn("shutting down tracer: " + err.Error())
	}
	if err := s.progress.Close(); err != nil {
		s.logger.Warn("closing progress recorder: " + err.Error())
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("closing cache store: " + err.Error())
	}
}
