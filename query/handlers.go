package query

import (
	"context"

	"github.com/ib823/sapconnect-sub002/core"
)

// CatalogReader exposes the read-only object catalog.
type CatalogReader interface {
	ListObjects(ctx context.Context) ([]core.ObjectDescriptor, error)
	InspectObject(ctx context.Context, objectID string) (core.ObjectInspection, error)
}

// WavePlanReader computes execution waves without running anything.
type WavePlanReader interface {
	ExecutionWaves(ctx context.Context, objectIDs []string) ([][]string, error)
}

// RunLedgerReader lists persisted run outcomes.
type RunLedgerReader interface {
	LoadRunLedger(ctx context.Context, runID string) ([]core.RunLedgerEntry, error)
}

type ListObjectsQuery struct {
	reader CatalogReader
}

func NewListObjectsQuery(reader CatalogReader) *ListObjectsQuery {
	return &ListObjectsQuery{reader: reader}
}

func (q *ListObjectsQuery) Query(ctx context.Context, msg ListObjectsMessage) ([]core.ObjectDescriptor, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: object catalog reader is required")
	}
	_ = msg
	return q.reader.ListObjects(ctx)
}

type InspectObjectQuery struct {
	reader CatalogReader
}

func NewInspectObjectQuery(reader CatalogReader) *InspectObjectQuery {
	return &InspectObjectQuery{reader: reader}
}

func (q *InspectObjectQuery) Query(ctx context.Context, msg InspectObjectMessage) (core.ObjectInspection, error) {
	if q == nil || q.reader == nil {
		return core.ObjectInspection{}, queryDependencyError("query: object catalog reader is required")
	}
	return q.reader.InspectObject(ctx, msg.ObjectID)
}

type ExecutionWavesQuery struct {
	reader WavePlanReader
}

func NewExecutionWavesQuery(reader WavePlanReader) *ExecutionWavesQuery {
	return &ExecutionWavesQuery{reader: reader}
}

func (q *ExecutionWavesQuery) Query(ctx context.Context, msg ExecutionWavesMessage) ([][]string, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: wave plan reader is required")
	}
	return q.reader.ExecutionWaves(ctx, msg.ObjectIDs)
}

type LoadRunLedgerQuery struct {
	reader RunLedgerReader
}

func NewLoadRunLedgerQuery(reader RunLedgerReader) *LoadRunLedgerQuery {
	return &LoadRunLedgerQuery{reader: reader}
}

func (q *LoadRunLedgerQuery) Query(ctx context.Context, msg LoadRunLedgerMessage) ([]core.RunLedgerEntry, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: run ledger reader is required")
	}
	return q.reader.LoadRunLedger(ctx, msg.RunID)
}
