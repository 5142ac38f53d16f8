package sqlstore

import (
	"context"
	"database/sql"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/ib823/sapconnect-sub002/core"
)

func newLedgerTestDB(t *testing.T) *bun.DB {
	t.Helper()
	sqldb, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// a second pool connection would see its own empty :memory: database
	sqldb.SetMaxOpenConns(1)
	db := bun.NewDB(sqldb, sqlitedialect.New())
	if _, err := db.NewCreateTable().Model((*runLedgerRecord)(nil)).Exec(context.Background()); err != nil {
		t.Fatalf("create run ledger table: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close db: %v", err)
		}
	})
	return db
}

func TestRunLedgerStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := newLedgerTestDB(t)

	factory, err := NewStoreFactoryFromDB(db)
	if err != nil {
		t.Fatalf("store factory: %v", err)
	}
	store := factory.RunLedgerStore()
	if store == nil {
		t.Fatalf("expected run ledger store from factory")
	}

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	entries := []core.RunLedgerEntry{
		{
			RunID:              "run-a",
			ObjectID:           "BusinessPartner",
			ObjectName:         "Business Partner",
			Status:             core.ObjectCompletedWithErrors,
			ExtractedRecords:   85,
			TransformedRecords: 80,
			LoadedRecords:      80,
			FindingCount:       5,
			DurationMs:         120,
			CreatedAt:          base,
		},
		{
			RunID:              "run-a",
			ObjectID:           "CustomerOpenItem",
			ObjectName:         "Customer Open Item",
			Status:             core.ObjectCompleted,
			ExtractedRecords:   100,
			TransformedRecords: 100,
			LoadedRecords:      100,
			DurationMs:         85,
			CreatedAt:          base.Add(time.Second),
		},
		{
			RunID:              "run-b",
			ObjectID:           "BankMaster",
			ObjectName:         "Bank Master",
			Status:             core.ObjectCompleted,
			ExtractedRecords:   20,
			TransformedRecords: 20,
			LoadedRecords:      20,
			DurationMs:         30,
			CreatedAt:          base.Add(2 * time.Second),
		},
	}
	for _, entry := range entries {
		if err := store.AppendRunEntry(ctx, entry); err != nil {
			t.Fatalf("append %s: %v", entry.ObjectID, err)
		}
	}

	runA, err := store.ListRunEntries(ctx, "run-a")
	if err != nil {
		t.Fatalf("list run-a: %v", err)
	}
	if len(runA) != 2 {
		t.Fatalf("run-a entries = %d, want 2", len(runA))
	}
	if runA[0].ObjectID != "BusinessPartner" || runA[1].ObjectID != "CustomerOpenItem" {
		t.Fatalf("entries out of created_at order: %s, %s", runA[0].ObjectID, runA[1].ObjectID)
	}

	first := runA[0]
	if _, err := uuid.Parse(first.ID); err != nil {
		t.Fatalf("generated id %q is not a uuid: %v", first.ID, err)
	}
	if first.Status != core.ObjectCompletedWithErrors {
		t.Fatalf("status = %s", first.Status)
	}
	if first.ExtractedRecords != 85 || first.TransformedRecords != 80 || first.LoadedRecords != 80 {
		t.Fatalf("counts mangled: %#v", first)
	}
	if first.FindingCount != 5 || first.DurationMs != 120 {
		t.Fatalf("finding count / duration mangled: %#v", first)
	}
	if !first.CreatedAt.Equal(base) {
		t.Fatalf("created at = %v, want %v", first.CreatedAt, base)
	}

	all, err := store.ListRunEntries(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("total entries = %d, want 3", len(all))
	}
}

func TestRunLedgerStoreRequiresRunAndObjectIDs(t *testing.T) {
	ctx := context.Background()
	store, err := NewRunLedgerStore(newLedgerTestDB(t))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.AppendRunEntry(ctx, core.RunLedgerEntry{ObjectID: "BankMaster"}); err == nil {
		t.Fatalf("missing run id must be rejected")
	}
	if err := store.AppendRunEntry(ctx, core.RunLedgerEntry{RunID: "run-a"}); err == nil {
		t.Fatalf("missing object id must be rejected")
	}
}

func TestReadClientRejectsMutationBeforeDriver(t *testing.T) {
	ctx := context.Background()
	db := newLedgerTestDB(t)

	store, err := NewRunLedgerStore(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.AppendRunEntry(ctx, core.RunLedgerEntry{
		RunID:    "run-a",
		ObjectID: "BankMaster",
		Status:   core.ObjectCompleted,
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	dialect, err := DialectFor("postgres")
	if err != nil {
		t.Fatalf("dialect: %v", err)
	}
	client, err := NewReadClient(db, dialect, nil, nil)
	if err != nil {
		t.Fatalf("new read client: %v", err)
	}

	_, err = client.QueryRecords(ctx, "UPDATE migration_run_entries SET status = 'tampered'")
	if err == nil {
		t.Fatalf("mutation must be rejected")
	}
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected go-errors envelope, got %T", err)
	}
	if rich.TextCode != core.AdapterDBErrorReadOnlyViolation {
		t.Fatalf("text code = %q, want %q", rich.TextCode, core.AdapterDBErrorReadOnlyViolation)
	}

	rows, err := client.QueryRecords(ctx, "SELECT status FROM migration_run_entries")
	if err != nil {
		t.Fatalf("select after rejected update: %v", err)
	}
	if len(rows) != 1 || rows[0]["status"] != string(core.ObjectCompleted) {
		t.Fatalf("row changed despite guard: %#v", rows)
	}
}

func TestReadClientMaterializesRows(t *testing.T) {
	ctx := context.Background()
	db := newLedgerTestDB(t)

	store, err := NewRunLedgerStore(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.AppendRunEntry(ctx, core.RunLedgerEntry{
		RunID:         "run-a",
		ObjectID:      "BusinessPartner",
		Status:        core.ObjectCompleted,
		LoadedRecords: 80,
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	dialect, err := DialectFor("postgres")
	if err != nil {
		t.Fatalf("dialect: %v", err)
	}
	client, err := NewReadClient(db, dialect, nil, nil)
	if err != nil {
		t.Fatalf("new read client: %v", err)
	}

	records, err := client.QueryRecords(ctx,
		"SELECT object_id, loaded_records FROM migration_run_entries WHERE run_id = ?", "run-a")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if got, ok := records[0]["object_id"].(string); !ok || got != "BusinessPartner" {
		t.Fatalf("object_id = %#v, want string \"BusinessPartner\"", records[0]["object_id"])
	}
	if got, ok := records[0]["loaded_records"].(int64); !ok || got != 80 {
		t.Fatalf("loaded_records = %#v, want int64 80", records[0]["loaded_records"])
	}

	count, err := client.RowCount(ctx, "migration_run_entries")
	if err != nil {
		t.Fatalf("row count: %v", err)
	}
	if count != 1 {
		t.Fatalf("row count = %d, want 1", count)
	}
}
