package collector

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.trai.ch/rolegraph/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ruleJob is one unit of work in the rule queue.
type ruleJob struct {
	role    string
	attempt int
	backoff *backoff.ExponentialBackOff
}

// ruleResult is what a worker reports for one job.
type ruleResult struct {
	job     ruleJob
	ingress []string
	err     error
}

type ruleRunState struct {
	c           *Collector
	adj         *domain.Adjacency
	queue       chan ruleJob
	results     chan ruleResult
	outstanding int
	failed      []string
	timers      []*time.Timer
}

// collectRules fetches the ingress rules of every role with a fixed pool of
// workers and inverts them into adj.
//
// The calling goroutine is the only writer of adj: workers report results on
// a channel and the loop below merges them. The run completes once every
// role has either succeeded or exhausted its attempts.
func (c *Collector) collectRules(ctx context.Context, roles []string, adj *domain.Adjacency) error {
	ctx, span := c.tracer.Start(ctx, "collect rules")
	defer span.End()

	roles = uniqueSorted(roles)
	if len(roles) == 0 {
		return nil
	}
	c.tracer.EmitRoles(ctx, roles)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	state := &ruleRunState{
		c:           c,
		adj:         adj,
		queue:       make(chan ruleJob, len(roles)),
		results:     make(chan ruleResult, c.opts.Workers),
		outstanding: len(roles),
	}
	for _, role := range roles {
		state.queue <- ruleJob{role: role, backoff: c.newBackOff()}
	}

	g, gctx := errgroup.WithContext(ctx)
	for range min(c.opts.Workers, len(roles)) {
		g.Go(func() error {
			c.ruleWorker(gctx, state.queue, state.results)
			return nil
		})
	}

	if err := state.runLoop(ctx); err != nil {
		state.stopTimers()
		cancel()
		_ = g.Wait()
		span.RecordError(err)
		return err
	}

	close(state.queue)
	_ = g.Wait()

	if len(state.failed) > 0 {
		slices.Sort(state.failed)
		err := errors.Join(domain.ErrRulesUnavailable,
			zerr.With(zerr.New("retry budget exhausted"), "roles", strings.Join(state.failed, ",")))
		span.RecordError(err)
		return err
	}
	return nil
}

func (state *ruleRunState) runLoop(ctx context.Context) error {
	for state.outstanding > 0 {
		select {
		case res := <-state.results:
			state.handleResult(res)
		case <-ctx.Done():
			return zerr.With(zerr.Wrap(ctx.Err(), "rule collection interrupted"), "pending_roles", state.outstanding)
		}
	}
	return nil
}

func (state *ruleRunState) handleResult(res ruleResult) {
	c := state.c
	if res.err == nil {
		for _, ingress := range res.ingress {
			// Rules describe who may call the role; the dependency runs the other way.
			state.adj.Add(ingress, res.job.role)
		}
		state.outstanding--
		return
	}

	c.metrics.RuleAttemptFailed()
	job := res.job
	job.attempt++
	if job.attempt < c.opts.MaxAttempts {
		delay := job.backoff.NextBackOff()
		c.logger.Debug("retrying rules for role " + job.role + " in " + delay.String() + ": " + res.err.Error())
		state.timers = append(state.timers, time.AfterFunc(delay, func() {
			state.queue <- job
		}))
		return
	}

	c.metrics.RoleExhausted()
	c.logger.Warn("giving up on rules for role " + job.role + " after " + strconv.Itoa(job.attempt) + " attempts: " + res.err.Error())
	state.failed = append(state.failed, job.role)
	state.outstanding--
}

func (state *ruleRunState) stopTimers() {
	for _, t := range state.timers {
		t.Stop()
	}
}

// ruleWorker pulls roles until the queue is closed or ctx is cancelled.
func (c *Collector) ruleWorker(ctx context.Context, queue <-chan ruleJob, results chan<- ruleResult) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-queue:
			if !ok {
				return
			}
			ingress, err := c.fetchRules(ctx, job.role)
			select {
			case results <- ruleResult{job: job, ingress: ingress, err: err}:
			case <-ctx.Done():
				return
			}
		}
	}
}

// fetchRules paginates the rules of a single role.
func (c *Collector) fetchRules(ctx context.Context, role string) ([]string, error) {
	ctx, span := c.tracer.Start(ctx, "rules "+role)
	defer span.End()

	var ingress []string
	cursor := ""
	for {
		page, err := c.upstream.ListRules(ctx, role, cursor)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		c.metrics.PageFetched(endpointRules)
		ingress = append(ingress, page.IngressRoles...)
		if page.Next == "" {
			return ingress, nil
		}
		cursor = page.Next
	}
}

func (c *Collector) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.opts.InitialBackoff
	b.MaxInterval = c.opts.MaxBackoff
	b.Reset()
	return b
}

func uniqueSorted(roles []string) []string {
	out := slices.Clone(roles)
	slices.Sort(out)
	return slices.Compact(out)
}
