package sapconnect

import (
	"fmt"
	"strings"

	"github.com/ib823/sapconnect-sub002/adapters/csi"
	"github.com/ib823/sapconnect-sub002/adapters/erp"
	"github.com/ib823/sapconnect-sub002/adapters/lawson"
	"github.com/ib823/sapconnect-sub002/adapters/ln"
	"github.com/ib823/sapconnect-sub002/adapters/m3"
	migrationcommand "github.com/ib823/sapconnect-sub002/command"
	"github.com/ib823/sapconnect-sub002/core"
	"github.com/ib823/sapconnect-sub002/objects"
	migrationquery "github.com/ib823/sapconnect-sub002/query"
	"github.com/ib823/sapconnect-sub002/runner"
)

// Migrator bundles the fully wired runtime: the service facade plus the
// pieces callers commonly need direct access to (the registry for custom
// objects, the scheduler for a ledger sink).
type Migrator struct {
	Service   *core.Service
	Registry  *core.ObjectRegistry
	Graph     *runner.DependencyGraph
	Scheduler *runner.Scheduler
}

// Setup builds a ready-to-run migrator: the 42 built-in objects registered,
// the default load-order graph wired, and a wave scheduler bound to a
// gateway for the configured mode. Extra options are applied after the
// defaults, so callers can override any wired piece.
func Setup(cfg Config, opts ...Option) (*Migrator, error) {
	registry := core.NewObjectRegistry()
	if err := objects.RegisterBuiltins(registry); err != nil {
		return nil, err
	}

	graph := runner.NewDependencyGraph()
	if err := objects.WireDefaultDependencies(graph); err != nil {
		return nil, err
	}

	gateway, err := gatewayForConfig(cfg)
	if err != nil {
		return nil, err
	}

	scheduler := runner.NewScheduler(registry, graph, gateway)

	options := append([]Option{
		WithRegistry(registry),
		WithGateway(gateway),
		WithWavePlanner(graph),
		WithWaveRunner(scheduler),
	}, opts...)

	service, err := core.NewService(cfg, options...)
	if err != nil {
		return nil, err
	}

	return &Migrator{
		Service:   service,
		Registry:  registry,
		Graph:     graph,
		Scheduler: scheduler,
	}, nil
}

// UseLedger points the scheduler at a run ledger sink. Pass WithLedgerSink
// to Setup as well when the service should also answer ledger queries.
func (m *Migrator) UseLedger(sink core.LedgerSink) {
	if m == nil || m.Scheduler == nil {
		return
	}
	m.Scheduler.Ledger = sink
}

func gatewayForConfig(cfg Config) (core.Gateway, error) {
	mode, err := core.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	if mode == core.ModeMock {
		return core.NewMockGateway(), nil
	}
	adapter, err := AdapterForProduct(cfg.Product, erp.Config{
		Mode:     mode,
		Company:  cfg.Company,
		DataArea: cfg.DataArea,
	})
	if err != nil {
		return nil, err
	}
	return core.NewLiveGateway(adapter, cfg)
}

// AdapterForProduct returns the read-only source connector for one of the
// supported source products.
func AdapterForProduct(product string, cfg erp.Config, opts ...erp.Option) (core.SourceAdapter, error) {
	switch core.Product(strings.ToUpper(strings.TrimSpace(product))) {
	case core.ProductLN:
		return ln.New(cfg, opts...), nil
	case core.ProductM3:
		return m3.New(cfg, opts...), nil
	case core.ProductCSI:
		return csi.New(cfg, opts...), nil
	case core.ProductLawson:
		return lawson.New(cfg, opts...), nil
	default:
		return nil, fmt.Errorf("sapconnect: unsupported source product %q", product)
	}
}

// CommandQueryService is the service surface the command/query facade needs.
type CommandQueryService interface {
	migrationcommand.MutatingService
	migrationquery.CatalogReader
	migrationquery.WavePlanReader
	migrationquery.RunLedgerReader
}

type Commands struct {
	RunAll           *migrationcommand.RunAllCommand
	RunObject        *migrationcommand.RunObjectCommand
	EnqueueRun       *migrationcommand.EnqueueRunCommand
	ClearObjectCache *migrationcommand.ClearObjectCacheCommand
}

type Queries struct {
	ListObjects    *migrationquery.ListObjectsQuery
	InspectObject  *migrationquery.InspectObjectQuery
	ExecutionWaves *migrationquery.ExecutionWavesQuery
	LoadRunLedger  *migrationquery.LoadRunLedgerQuery
}

type Facade struct {
	service  CommandQueryService
	commands Commands
	queries  Queries
}

type FacadeOption func(*facadeOptions)

type facadeOptions struct {
	enqueuer core.JobEnqueuer
}

// WithJobEnqueuer enables the enqueue-run command; without it the command is
// still constructed but reports a dependency error when executed.
func WithJobEnqueuer(enqueuer core.JobEnqueuer) FacadeOption {
	return func(options *facadeOptions) {
		options.enqueuer = enqueuer
	}
}

func NewFacade(service CommandQueryService, opts ...FacadeOption) (*Facade, error) {
	if service == nil {
		return nil, fmt.Errorf("sapconnect: command/query service is required")
	}
	cfg := facadeOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	facade := &Facade{service: service}
	facade.commands = Commands{
		RunAll:           migrationcommand.NewRunAllCommand(service),
		RunObject:        migrationcommand.NewRunObjectCommand(service),
		EnqueueRun:       migrationcommand.NewEnqueueRunCommand(cfg.enqueuer),
		ClearObjectCache: migrationcommand.NewClearObjectCacheCommand(service),
	}
	facade.queries = Queries{
		ListObjects:    migrationquery.NewListObjectsQuery(service),
		InspectObject:  migrationquery.NewInspectObjectQuery(service),
		ExecutionWaves: migrationquery.NewExecutionWavesQuery(service),
		LoadRunLedger:  migrationquery.NewLoadRunLedgerQuery(service),
	}

	return facade, nil
}

func (f *Facade) Commands() Commands {
	if f == nil {
		return Commands{}
	}
	return f.commands
}

func (f *Facade) Queries() Queries {
	if f == nil {
		return Queries{}
	}
	return f.queries
}

func (f *Facade) Service() CommandQueryService {
	if f == nil {
		return nil
	}
	return f.service
}
