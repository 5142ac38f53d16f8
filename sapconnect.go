package sapconnect

import "github.com/ib823/sapconnect-sub002/core"

type Config = core.Config

type DBConfig = core.DBConfig

type SchedulerConfig = core.SchedulerConfig

type Option = core.Option

type Service = core.Service

type Mode = core.Mode
type Product = core.Product
type Record = core.Record

type RunRequest = core.RunRequest
type RunResult = core.RunResult
type RunStats = core.RunStats
type ObjectResult = core.ObjectResult
type ObjectStatus = core.ObjectStatus
type RunLedgerEntry = core.RunLedgerEntry
type ObjectDescriptor = core.ObjectDescriptor
type ObjectInspection = core.ObjectInspection

type MigrationObject = core.MigrationObject
type ObjectRegistry = core.ObjectRegistry
type SourceAdapter = core.SourceAdapter
type Gateway = core.Gateway
type LedgerSink = core.LedgerSink

var (
	WithLogger          = core.WithLogger
	WithLoggerProvider  = core.WithLoggerProvider
	WithMetricsRecorder = core.WithMetricsRecorder
	WithErrorFactory    = core.WithErrorFactory
	WithErrorMapper     = core.WithErrorMapper
	WithConfigProvider  = core.WithConfigProvider
	WithOptionsResolver = core.WithOptionsResolver
	WithRegistry        = core.WithRegistry
	WithGateway         = core.WithGateway
	WithSourceAdapter   = core.WithSourceAdapter
	WithWaveRunner      = core.WithWaveRunner
	WithWavePlanner     = core.WithWavePlanner
	WithLedgerSink      = core.WithLedgerSink
)

func DefaultConfig() Config {
	return core.DefaultConfig()
}

func NewService(cfg Config, opts ...Option) (*Service, error) {
	return core.NewService(cfg, opts...)
}
