// Package deleter fans the confirmed deletions out over a bounded worker
// pool and aggregates one terminal outcome per resource group.
package deleter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/kjourdan1/rgsweep/internal/azcli"
	"github.com/kjourdan1/rgsweep/internal/inventory"
	"github.com/kjourdan1/rgsweep/internal/output"
)

// DefaultWorkers is the worker-pool width used when none is configured.
const DefaultWorkers = 5

// Client is the subset of the az client the pool needs.
type Client interface {
	DeleteResourceGroup(ctx context.Context, name, subscriptionID string) azcli.Result
}

// Failure records one group whose delete request was not accepted.
type Failure struct {
	Group  inventory.Group
	Reason string
}

// Outcome aggregates the terminal result of every submitted group.
// Invariant: len(Deleted) + len(Failed) equals the number of submitted
// groups once Run returns.
type Outcome struct {
	Deleted []inventory.Group
	Failed  []Failure
	DryRun  bool
}

// Pool issues delete requests with at most `workers` subprocess calls
// in flight at once.
type Pool struct {
	cli     Client
	workers int
	dryRun  bool
}

// New creates a Pool. Non-positive widths fall back to DefaultWorkers.
func New(cli Client, workers int, dryRun bool) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Pool{cli: cli, workers: workers, dryRun: dryRun}
}

type taskResult struct {
	group  inventory.Group
	reason string // empty on success
}

// Run submits one delete task per group and blocks until every task has
// produced an outcome. Completion order between tasks is unspecified; the
// accumulators are only touched by this goroutine while draining results.
// In dry-run mode the collaborator is never invoked.
func (p *Pool) Run(ctx context.Context, groups []inventory.Group) Outcome {
	out := Outcome{
		Deleted: make([]inventory.Group, 0, len(groups)),
		Failed:  make([]Failure, 0),
		DryRun:  p.dryRun,
	}
	if len(groups) == 0 {
		return out
	}

	if p.dryRun {
		for _, g := range groups {
			output.Info("[dry-run] would delete " + g.Qualified())
			out.Deleted = append(out.Deleted, g)
		}
		return out
	}

	output.Step(fmt.Sprintf("deleting %d resource group(s) with %d worker(s)", len(groups), p.workers))

	resCh := make(chan taskResult, len(groups))
	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	for _, g := range groups {
		group := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			// A panicking task must fail alone, never take the pool down.
			defer func() {
				if r := recover(); r != nil {
					resCh <- taskResult{group: group, reason: fmt.Sprintf("unexpected panic: %v", r)}
				}
			}()

			output.Info("deleting resource group", "group", group.Qualified())
			res := p.cli.DeleteResourceGroup(ctx, group.Name, group.SubscriptionID)
			if !res.OK() {
				reason := strings.TrimSpace(res.Stderr)
				if reason == "" {
					reason = fmt.Sprintf("az exited with code %d", res.ExitCode)
				}
				resCh <- taskResult{group: group, reason: reason}
				return
			}
			resCh <- taskResult{group: group}
		}()
	}

	wg.Wait()
	close(resCh)

	for r := range resCh {
		if r.reason != "" {
			output.Fail("delete failed: " + r.group.Qualified())
			out.Failed = append(out.Failed, Failure{Group: r.group, Reason: r.reason})
			continue
		}
		output.Success("delete accepted: " + r.group.Qualified())
		out.Deleted = append(out.Deleted, r.group)
	}
	return out
}
