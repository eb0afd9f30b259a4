package resolve

import (
	"context"
	"fmt"
	"sync"
)

const defaultBatchConcurrency = 8

// BatchRequest is one coordinate in a batch resolution.
type BatchRequest struct {
	Dependency string `json:"dependency" yaml:"dependency"`
	Version    string `json:"version" yaml:"version"`
	Packaging  string `json:"packaging,omitempty" yaml:"packaging,omitempty"`
	Classifier string `json:"classifier,omitempty" yaml:"classifier,omitempty"`
}

// BatchItem pairs a request with its per-scope outcomes.
type BatchItem struct {
	Dependency string
	Outcome    AllOutcome
}

// BatchSummary tallies a batch.
type BatchSummary struct {
	Total     int `json:"total"`
	Succeeded int `json:"success"`
	Failed    int `json:"failed"`
}

// BatchStatus is the overall disposition of a batch.
type BatchStatus string

const (
	BatchSuccess BatchStatus = "success" // every coordinate resolved
	BatchPartial BatchStatus = "partial" // some resolved, some failed
	BatchError   BatchStatus = "error"   // none resolved
)

// BatchResult holds per-item outcomes in the original input order plus the
// summary tally.
type BatchResult struct {
	Items   []BatchItem
	Summary BatchSummary
	Status  BatchStatus
}

// ResolveBatch applies ResolveAllComponents to each request. Coordinates are
// fully independent, so the fan-out runs with bounded parallelism; outcomes
// are still collected into input order. concurrency <= 0 selects a default.
func (r *Resolver) ResolveBatch(ctx context.Context, reqs []BatchRequest, concurrency int) BatchResult {
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}

	items := make([]BatchItem, len(reqs))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, req := range reqs {
		wg.Add(1)
		go func(i int, req BatchRequest) {
			defer wg.Done()
			// A panic here would escape every caller-side recover and kill
			// the process; contain it as an internal error for this item.
			defer func() {
				if p := recover(); p != nil {
					o := internalError(Coordinate{}, fmt.Sprintf("Unexpected error: %v", p))
					items[i] = BatchItem{Dependency: req.Dependency, Outcome: AllOutcome{Major: o, Minor: o, Patch: o}}
				}
			}()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				o := transportError(Coordinate{}, ctx.Err())
				items[i] = BatchItem{Dependency: req.Dependency, Outcome: AllOutcome{Major: o, Minor: o, Patch: o}}
				return
			}

			items[i] = BatchItem{
				Dependency: req.Dependency,
				Outcome:    r.resolveOne(ctx, req),
			}
		}(i, req)
	}
	wg.Wait()

	summary := BatchSummary{Total: len(reqs)}
	for _, it := range items {
		if it.Outcome.Major.OK() {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}

	status := BatchError
	switch {
	case summary.Failed == 0 && summary.Total > 0:
		status = BatchSuccess
	case summary.Succeeded > 0:
		status = BatchPartial
	}

	return BatchResult{Items: items, Summary: summary, Status: status}
}

func (r *Resolver) resolveOne(ctx context.Context, req BatchRequest) AllOutcome {
	if req.Dependency == "" {
		o := Outcome{Code: CodeMissingParameter, Detail: "Required parameter 'dependency' is missing"}
		return AllOutcome{Major: o, Minor: o, Patch: o}
	}
	if req.Version == "" {
		o := Outcome{Code: CodeMissingParameter, Detail: "Required parameter 'version' is missing"}
		return AllOutcome{Major: o, Minor: o, Patch: o}
	}
	c, err := ParseCoordinate(req.Dependency, req.Packaging, req.Classifier)
	if err != nil {
		o := invalidInput(c, err.Error())
		return AllOutcome{Major: o, Minor: o, Patch: o}
	}
	return r.ResolveAllComponents(ctx, c, req.Version)
}
