package runner

import (
	"context"
	"fmt"
	"sync"
	"time"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ib823/sapconnect-sub002/core"
)

const defaultMaxParallel = 4

// Scheduler drives wave-by-wave parallel execution. Objects within one wave
// run concurrently up to the parallelism bound; waves are strictly ordered.
// A failing object never aborts its wave or later waves.
type Scheduler struct {
	Registry *core.ObjectRegistry
	Graph    *DependencyGraph
	Gateway  core.Gateway
	Ledger   core.LedgerSink
	Logger   core.Logger
	Now      func() time.Time
}

func NewScheduler(registry *core.ObjectRegistry, graph *DependencyGraph, gateway core.Gateway) *Scheduler {
	_, logger := glog.Resolve("runner", nil, nil)
	return &Scheduler{
		Registry: registry,
		Graph:    graph,
		Gateway:  gateway,
		Logger:   glog.Ensure(logger),
		Now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// RunAll executes the requested objects. Cancellation is honored between
// waves; objects already started run to completion. The returned results
// cover every object that ran, even when the run is cancelled early.
func (s *Scheduler) RunAll(ctx context.Context, req core.RunRequest) (core.RunResult, error) {
	if s == nil || s.Registry == nil {
		return core.RunResult{}, fmt.Errorf("runner: scheduler requires an object registry")
	}
	if s.Gateway == nil {
		return core.RunResult{}, fmt.Errorf("runner: scheduler requires a gateway")
	}
	graph := s.Graph
	if graph == nil {
		graph = NewDependencyGraph()
	}

	for _, id := range req.ObjectIDs {
		if !s.Registry.Has(id) {
			return core.RunResult{}, fmt.Errorf("runner: migration object not registered: %s", id)
		}
	}

	waves, err := graph.ExecutionWaves(req.ObjectIDs)
	if err != nil {
		return core.RunResult{}, err
	}

	maxParallel := req.MaxParallel
	if maxParallel <= 0 {
		maxParallel = defaultMaxParallel
	}

	startedAt := s.now()
	result := core.RunResult{
		RunID: uuid.NewString(),
		Stats: core.RunStats{
			Total: countWaveIDs(waves),
			Waves: len(waves),
		},
	}
	for _, wave := range waves {
		result.Stats.ExecutionOrder = append(result.Stats.ExecutionOrder, wave...)
	}

	executor := &Executor{Gateway: s.Gateway, Logger: s.Logger, Now: s.Now}

	var mu sync.Mutex
	for waveIndex, wave := range waves {
		if ctx.Err() != nil {
			s.logWave(ctx, "run cancelled before wave", waveIndex, wave)
			result.Stats.TotalDurationMs = s.since(startedAt)
			return result, ctx.Err()
		}
		s.logWave(ctx, "starting wave", waveIndex, wave)

		group := errgroup.Group{}
		group.SetLimit(maxParallel)
		for _, objectID := range wave {
			objectID := objectID
			group.Go(func() error {
				objectResult := s.executeObject(ctx, executor, objectID)

				mu.Lock()
				result.Results = append(result.Results, objectResult)
				switch objectResult.Status {
				case core.ObjectCompleted, core.ObjectCompletedWithErrors:
					result.Stats.Completed++
				default:
					result.Stats.Failed++
				}
				mu.Unlock()

				if req.Progress != nil {
					req.Progress(objectID, objectResult)
				}
				s.appendLedger(ctx, result.RunID, objectResult)
				return nil
			})
		}
		// Workers never return errors; Wait only fences the wave.
		_ = group.Wait()
	}

	result.Stats.TotalDurationMs = s.since(startedAt)
	return result, nil
}

// executeObject always goes through CreateObject: instances are not safe to
// share across simultaneous runs.
func (s *Scheduler) executeObject(ctx context.Context, executor *Executor, objectID string) core.ObjectResult {
	object, err := s.Registry.CreateObject(objectID)
	if err != nil {
		return core.ObjectResult{
			ObjectID: objectID,
			Status:   core.ObjectError,
			Phases: core.PhaseSet{
				Extract:   core.PhaseResult{Status: core.PhaseFailed, ErrorCount: 1, Details: err.Error()},
				Transform: skippedPhase(),
				Validate:  skippedPhase(),
				Load:      skippedPhase(),
			},
		}
	}
	return executor.Execute(ctx, object)
}

func (s *Scheduler) appendLedger(ctx context.Context, runID string, objectResult core.ObjectResult) {
	if s == nil || s.Ledger == nil {
		return
	}
	entry := core.RunLedgerEntry{
		RunID:              runID,
		ObjectID:           objectResult.ObjectID,
		ObjectName:         objectResult.Name,
		Status:             objectResult.Status,
		ExtractedRecords:   objectResult.Stats.ExtractedRecords,
		TransformedRecords: objectResult.Stats.TransformedRecords,
		LoadedRecords:      objectResult.Stats.LoadedRecords,
		FindingCount:       len(objectResult.Findings),
		DurationMs:         objectResult.Stats.DurationMs,
		CreatedAt:          s.now(),
	}
	if err := s.Ledger.AppendRunEntry(ctx, entry); err != nil && s.Logger != nil {
		s.Logger.Error("run ledger append failed",
			"run_id", runID,
			"object_id", objectResult.ObjectID,
			"error", err.Error(),
		)
	}
}

func (s *Scheduler) logWave(ctx context.Context, message string, waveIndex int, wave []string) {
	if s == nil || s.Logger == nil {
		return
	}
	logger := s.Logger
	if ctx != nil {
		logger = logger.WithContext(ctx)
	}
	logger.Info(message,
		"wave", waveIndex,
		"objects", len(wave),
	)
}

func countWaveIDs(waves [][]string) int {
	total := 0
	for _, wave := range waves {
		total += len(wave)
	}
	return total
}

func (s *Scheduler) now() time.Time {
	if s != nil && s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *Scheduler) since(startedAt time.Time) int64 {
	return s.now().Sub(startedAt).Milliseconds()
}

var _ core.WaveRunner = (*Scheduler)(nil)
