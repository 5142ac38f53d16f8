package core

import (
	"context"
	"time"

	glog "github.com/goliatone/go-logger/glog"
)

type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger

// MigrationObject is one declarative extract/transform/validate/load unit.
// FieldMappings and QualityChecks are compile-time constants of the object and
// must be returned by value; ExtractMock is deterministic.
type MigrationObject interface {
	ObjectID() string
	Name() string
	FieldMappings() []FieldMappingRule
	QualityChecks() QualityChecks
	ExtractMock() []Record
}

// TransformHooker is implemented by objects that post-process the interpreter
// output, e.g. the Business Partner role merge.
type TransformHooker interface {
	TransformHook(records []Record) (TransformOutcome, error)
}

// TableSourced is implemented by objects that can be extracted from a live
// source via a table read.
type TableSourced interface {
	SourceQuery() SourceQuery
}

// ReadOptions narrows a table read. MaxRows and Offset are applied on the
// source whenever the source path supports them (SQL dialects, entity query
// parameters); adapters that cannot push them down apply them post-fetch
// before returning rows.
type ReadOptions struct {
	Fields   []string
	Filter   map[string]any
	MaxRows  int
	Offset   int
	OrderBy  string
	DataArea string
}

type TableMetadata struct {
	Table     string
	RowCount  int
	Truncated bool
	Source    string
}

type TableResult struct {
	Rows     []Record
	Metadata TableMetadata
}

type QueryOptions struct {
	MaxRows int
	Offset  int
}

type EntityResult struct {
	Entities   []Record
	TotalCount int
}

type SystemInfo struct {
	Product   string
	Version   string
	Modules   []string
	Timestamp time.Time
}

type HealthStatus struct {
	OK        bool
	LatencyMs int64
	Status    string
	Product   string
	Error     string
}

// SourceAdapter is the read-only connector surface over one source ERP.
// Mock-mode adapters never open network or database connections.
type SourceAdapter interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	ReadTable(ctx context.Context, name string, opts ReadOptions) (TableResult, error)
	CallAPI(ctx context.Context, endpoint string, params map[string]any) (map[string]any, error)
	QueryEntities(ctx context.Context, entityType string, filter map[string]any, opts QueryOptions) (EntityResult, error)
	SystemInfo(ctx context.Context) (SystemInfo, error)
	HealthCheck(ctx context.Context) (HealthStatus, error)
}

// Gateway feeds the phase executor: extraction on the way in, the load sink on
// the way out. Mock gateways are pure; live gateways may suspend on adapter
// I/O.
type Gateway interface {
	Mode() Mode
	Extract(ctx context.Context, object MigrationObject) ([]Record, error)
	Load(ctx context.Context, object MigrationObject, records []Record) (LoadReport, error)
}

// WaveRunner drives wave-by-wave execution of a set of objects.
type WaveRunner interface {
	RunAll(ctx context.Context, req RunRequest) (RunResult, error)
}

// WavePlanner computes topological execution layers for a set of object ids.
type WavePlanner interface {
	ExecutionWaves(ids []string) ([][]string, error)
}

// LedgerSink records per-object outcomes of a run.
type LedgerSink interface {
	AppendRunEntry(ctx context.Context, entry RunLedgerEntry) error
}

type MetricsRecorder interface {
	IncCounter(ctx context.Context, name string, delta int64, tags map[string]string)
	ObserveHistogram(ctx context.Context, name string, value float64, tags map[string]string)
}
