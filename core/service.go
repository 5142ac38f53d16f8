package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"
)

var (
	ErrObjectNotFound      = errors.New("core: migration object not found")
	ErrRunnerNotConfigured = errors.New("core: wave runner is not configured")
)

// LedgerReader lists persisted run entries; sinks that also implement it back
// the run-ledger query surface.
type LedgerReader interface {
	ListRunEntries(ctx context.Context, runID string) ([]RunLedgerEntry, error)
}

// Service is the runtime facade over the registry, gateway and wave runner.
type Service struct {
	config          Config
	logger          Logger
	loggerProvider  LoggerProvider
	metricsRecorder MetricsRecorder
	errorFactory    ErrorFactory
	errorMapper     ErrorMapper
	registry        *ObjectRegistry
	gateway         Gateway
	adapter         SourceAdapter
	runner          WaveRunner
	planner         WavePlanner
	ledger          LedgerSink
}

func NewService(cfg Config, options ...Option) (*Service, error) {
	builder := defaultServiceBuilder(cfg)
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&builder)
	}

	provider, logger := glog.Resolve("sapconnect", builder.loggerProvider, builder.logger)
	logger = glog.Ensure(logger)
	if provider != nil {
		if named := provider.GetLogger("sapconnect"); named != nil {
			logger = glog.Ensure(named)
		}
	}

	if builder.errorFactory == nil {
		builder.errorFactory = goerrors.New
	}
	if builder.metricsRecorder == nil {
		builder.metricsRecorder = NopMetricsRecorder{}
	}
	if builder.errorMapper == nil {
		builder.errorMapper = defaultErrorMapper
	}
	if builder.configProvider == nil {
		builder.configProvider = NewCfgxConfigProvider(nil)
	}
	if builder.optionsResolver == nil {
		builder.optionsResolver = GoOptionsResolver{}
	}
	if builder.registry == nil {
		builder.registry = NewObjectRegistry()
	}

	loaded, err := builder.configProvider.Load(context.Background(), DefaultConfig())
	if err != nil {
		return nil, err
	}
	resolved, err := builder.optionsResolver.Resolve(DefaultConfig(), loaded, builder.runtimeConfig)
	if err != nil {
		return nil, err
	}

	gateway := builder.gateway
	if gateway == nil {
		mode, err := ParseMode(resolved.Mode)
		if err != nil {
			return nil, err
		}
		if mode == ModeLive {
			gateway, err = NewLiveGateway(builder.adapter, resolved)
			if err != nil {
				return nil, err
			}
		} else {
			gateway = NewMockGateway()
		}
	}

	return &Service{
		config:          resolved,
		logger:          logger,
		loggerProvider:  provider,
		metricsRecorder: builder.metricsRecorder,
		errorFactory:    builder.errorFactory,
		errorMapper:     builder.errorMapper,
		registry:        builder.registry,
		gateway:         gateway,
		adapter:         builder.adapter,
		runner:          builder.runner,
		planner:         builder.planner,
		ledger:          builder.ledger,
	}, nil
}

func (s *Service) Config() Config {
	if s == nil {
		return Config{}
	}
	return s.config
}

func (s *Service) Registry() *ObjectRegistry {
	if s == nil {
		return nil
	}
	return s.registry
}

func (s *Service) Gateway() Gateway {
	if s == nil {
		return nil
	}
	return s.gateway
}

// RunAll executes the requested objects (all registered objects when none are
// named) wave by wave through the configured runner.
func (s *Service) RunAll(ctx context.Context, req RunRequest) (RunResult, error) {
	startedAt := time.Now()
	if s == nil || s.runner == nil {
		return RunResult{}, ErrRunnerNotConfigured
	}
	if len(req.ObjectIDs) == 0 {
		req.ObjectIDs = s.registry.IDs()
	}
	if req.MaxParallel <= 0 {
		req.MaxParallel = s.config.Scheduler.MaxParallel
	}

	result, err := s.runner.RunAll(ctx, req)
	s.observeOperation(ctx, startedAt, "run_all", err, map[string]any{
		"object_count": len(req.ObjectIDs),
		"completed":    result.Stats.Completed,
		"failed":       result.Stats.Failed,
		"waves":        result.Stats.Waves,
	})
	if err != nil {
		return result, s.mapError(err)
	}
	return result, nil
}

// RunObject executes a single object as a one-wave run.
func (s *Service) RunObject(ctx context.Context, objectID string) (ObjectResult, error) {
	startedAt := time.Now()
	if s == nil || s.runner == nil {
		return ObjectResult{}, ErrRunnerNotConfigured
	}
	objectID = strings.TrimSpace(objectID)
	if !s.registry.Has(objectID) {
		return ObjectResult{}, s.mapError(objectNotFoundError(objectID))
	}

	run, err := s.runner.RunAll(ctx, RunRequest{ObjectIDs: []string{objectID}, MaxParallel: 1})
	s.observeOperation(ctx, startedAt, "run_object", err, map[string]any{
		"object_id": objectID,
	})
	if err != nil {
		return ObjectResult{}, s.mapError(err)
	}
	if len(run.Results) == 0 {
		return ObjectResult{}, s.mapError(fmt.Errorf("core: run produced no result for %s", objectID))
	}
	return run.Results[0], nil
}

func (s *Service) ClearObjectCache(ctx context.Context) error {
	startedAt := time.Now()
	if s == nil || s.registry == nil {
		return fmt.Errorf("core: registry is not configured")
	}
	s.registry.ClearCache()
	s.observeOperation(ctx, startedAt, "clear_object_cache", nil, map[string]any{})
	return nil
}

func (s *Service) ListObjects(ctx context.Context) ([]ObjectDescriptor, error) {
	if s == nil || s.registry == nil {
		return nil, fmt.Errorf("core: registry is not configured")
	}
	mode := ModeMock
	if s.gateway != nil {
		mode = s.gateway.Mode()
	}
	ids := s.registry.IDs()
	out := make([]ObjectDescriptor, 0, len(ids))
	for _, id := range ids {
		object, err := s.registry.GetObject(id, mode)
		if err != nil {
			return nil, s.mapError(err)
		}
		out = append(out, ObjectDescriptor{
			ObjectID:     object.ObjectID(),
			Name:         object.Name(),
			MappingCount: len(object.FieldMappings()),
			MockRecords:  len(object.ExtractMock()),
		})
	}
	_ = ctx
	return out, nil
}

func (s *Service) InspectObject(ctx context.Context, objectID string) (ObjectInspection, error) {
	if s == nil || s.registry == nil {
		return ObjectInspection{}, fmt.Errorf("core: registry is not configured")
	}
	mode := ModeMock
	if s.gateway != nil {
		mode = s.gateway.Mode()
	}
	object, err := s.registry.GetObject(objectID, mode)
	if err != nil {
		return ObjectInspection{}, s.mapError(err)
	}
	_ = ctx
	return ObjectInspection{
		ObjectID:      object.ObjectID(),
		Name:          object.Name(),
		FieldMappings: object.FieldMappings(),
		QualityChecks: object.QualityChecks(),
		MockRecords:   len(object.ExtractMock()),
	}, nil
}

func (s *Service) ExecutionWaves(ctx context.Context, objectIDs []string) ([][]string, error) {
	if s == nil || s.planner == nil {
		return nil, fmt.Errorf("core: wave planner is not configured")
	}
	if len(objectIDs) == 0 {
		objectIDs = s.registry.IDs()
	}
	waves, err := s.planner.ExecutionWaves(objectIDs)
	if err != nil {
		return nil, s.mapError(err)
	}
	_ = ctx
	return waves, nil
}

func (s *Service) LoadRunLedger(ctx context.Context, runID string) ([]RunLedgerEntry, error) {
	if s == nil || s.ledger == nil {
		return nil, fmt.Errorf("core: run ledger is not configured")
	}
	reader, ok := s.ledger.(LedgerReader)
	if !ok {
		return nil, fmt.Errorf("core: run ledger sink does not support reads")
	}
	entries, err := reader.ListRunEntries(ctx, strings.TrimSpace(runID))
	if err != nil {
		return nil, s.mapError(err)
	}
	return entries, nil
}

func (s *Service) mapError(err error) error {
	if err == nil {
		return nil
	}
	if s != nil && s.errorMapper != nil {
		if mapped := s.errorMapper(err); mapped != nil {
			return mapped
		}
	}
	return err
}
