package query

import (
	"context"
	"testing"

	"github.com/ib823/sapconnect-sub002/core"
)

type stubCatalogReader struct {
	listFn    func(ctx context.Context) ([]core.ObjectDescriptor, error)
	inspectFn func(ctx context.Context, objectID string) (core.ObjectInspection, error)
}

func (s stubCatalogReader) ListObjects(ctx context.Context) ([]core.ObjectDescriptor, error) {
	return s.listFn(ctx)
}

func (s stubCatalogReader) InspectObject(ctx context.Context, objectID string) (core.ObjectInspection, error) {
	return s.inspectFn(ctx, objectID)
}

type stubWavePlanReader func(ctx context.Context, objectIDs []string) ([][]string, error)

func (s stubWavePlanReader) ExecutionWaves(ctx context.Context, objectIDs []string) ([][]string, error) {
	return s(ctx, objectIDs)
}

type stubRunLedgerReader func(ctx context.Context, runID string) ([]core.RunLedgerEntry, error)

func (s stubRunLedgerReader) LoadRunLedger(ctx context.Context, runID string) ([]core.RunLedgerEntry, error) {
	return s(ctx, runID)
}

func TestListObjectsQuery_Delegates(t *testing.T) {
	reader := stubCatalogReader{
		listFn: func(_ context.Context) ([]core.ObjectDescriptor, error) {
			return []core.ObjectDescriptor{{ObjectID: "BusinessPartner", MappingCount: 27}}, nil
		},
	}
	q := NewListObjectsQuery(reader)
	out, err := q.Query(context.Background(), ListObjectsMessage{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(out) != 1 || out[0].ObjectID != "BusinessPartner" {
		t.Fatalf("unexpected descriptors: %#v", out)
	}
}

func TestInspectObjectQuery_Delegates(t *testing.T) {
	reader := stubCatalogReader{
		inspectFn: func(_ context.Context, objectID string) (core.ObjectInspection, error) {
			if objectID != "MaterialMaster" {
				t.Fatalf("object id = %q", objectID)
			}
			return core.ObjectInspection{ObjectID: objectID, MockRecords: 60}, nil
		},
	}
	q := NewInspectObjectQuery(reader)
	out, err := q.Query(context.Background(), InspectObjectMessage{ObjectID: "MaterialMaster"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if out.MockRecords != 60 {
		t.Fatalf("unexpected inspection: %#v", out)
	}
}

func TestExecutionWavesQuery_Delegates(t *testing.T) {
	reader := stubWavePlanReader(func(_ context.Context, objectIDs []string) ([][]string, error) {
		if len(objectIDs) != 2 {
			t.Fatalf("object ids = %v", objectIDs)
		}
		return [][]string{{"BusinessPartner"}, {"CustomerOpenItem"}}, nil
	})
	q := NewExecutionWavesQuery(reader)
	waves, err := q.Query(context.Background(), ExecutionWavesMessage{
		ObjectIDs: []string{"BusinessPartner", "CustomerOpenItem"},
	})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(waves) != 2 || waves[0][0] != "BusinessPartner" {
		t.Fatalf("unexpected waves: %v", waves)
	}
}

func TestLoadRunLedgerQuery_Delegates(t *testing.T) {
	reader := stubRunLedgerReader(func(_ context.Context, runID string) ([]core.RunLedgerEntry, error) {
		if runID != "run-1" {
			t.Fatalf("run id = %q", runID)
		}
		return []core.RunLedgerEntry{{RunID: runID, ObjectID: "BankMaster"}}, nil
	})
	q := NewLoadRunLedgerQuery(reader)
	entries, err := q.Query(context.Background(), LoadRunLedgerMessage{RunID: "run-1"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(entries) != 1 || entries[0].ObjectID != "BankMaster" {
		t.Fatalf("unexpected entries: %#v", entries)
	}
}

func TestNilQueriesReturnDependencyErrors(t *testing.T) {
	var list *ListObjectsQuery
	if _, err := list.Query(context.Background(), ListObjectsMessage{}); err == nil {
		t.Fatalf("expected dependency error")
	}
	var inspect *InspectObjectQuery
	if _, err := inspect.Query(context.Background(), InspectObjectMessage{ObjectID: "x"}); err == nil {
		t.Fatalf("expected dependency error")
	}
	var waves *ExecutionWavesQuery
	if _, err := waves.Query(context.Background(), ExecutionWavesMessage{}); err == nil {
		t.Fatalf("expected dependency error")
	}
	var ledger *LoadRunLedgerQuery
	if _, err := ledger.Query(context.Background(), LoadRunLedgerMessage{}); err == nil {
		t.Fatalf("expected dependency error")
	}
}
