package sqlstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/ib823/sapconnect-sub002/core"
)

// RunLedgerStore persists one row per object outcome per run. It doubles as
// the read side of the run-ledger query.
type RunLedgerStore struct {
	db   *bun.DB
	repo repository.Repository[*runLedgerRecord]
}

func NewRunLedgerStore(db *bun.DB) (*RunLedgerStore, error) {
	if db == nil {
		return nil, fmt.Errorf("sqlstore: bun db is required")
	}
	repo := repository.NewRepository[*runLedgerRecord](db, runLedgerHandlers())
	if validator, ok := repo.(repository.Validator); ok {
		if err := validator.Validate(); err != nil {
			return nil, fmt.Errorf("sqlstore: invalid run ledger repository wiring: %w", err)
		}
	}
	return &RunLedgerStore{db: db, repo: repo}, nil
}

func (s *RunLedgerStore) AppendRunEntry(ctx context.Context, entry core.RunLedgerEntry) error {
	if s == nil || s.repo == nil {
		return fmt.Errorf("sqlstore: run ledger store is not configured")
	}
	if strings.TrimSpace(entry.RunID) == "" {
		return fmt.Errorf("sqlstore: run id is required")
	}
	if strings.TrimSpace(entry.ObjectID) == "" {
		return fmt.Errorf("sqlstore: object id is required")
	}

	id := strings.TrimSpace(entry.ID)
	if id == "" {
		id = uuid.NewString()
	}
	createdAt := entry.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	record := &runLedgerRecord{
		ID:                 id,
		RunID:              strings.TrimSpace(entry.RunID),
		ObjectID:           strings.TrimSpace(entry.ObjectID),
		ObjectName:         strings.TrimSpace(entry.ObjectName),
		Status:             string(entry.Status),
		ExtractedRecords:   entry.ExtractedRecords,
		TransformedRecords: entry.TransformedRecords,
		LoadedRecords:      entry.LoadedRecords,
		FindingCount:       entry.FindingCount,
		DurationMs:         entry.DurationMs,
		CreatedAt:          createdAt,
	}
	_, err := s.repo.Create(ctx, record)
	return err
}

func (s *RunLedgerStore) ListRunEntries(ctx context.Context, runID string) ([]core.RunLedgerEntry, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("sqlstore: run ledger store is not configured")
	}
	selectors := []repository.SelectCriteria{
		repository.OrderBy("created_at ASC"),
	}
	if runID = strings.TrimSpace(runID); runID != "" {
		selectors = append(selectors, repository.SelectBy("run_id", "=", runID))
	}
	records, _, err := s.repo.List(ctx, selectors...)
	if err != nil {
		return nil, err
	}
	entries := make([]core.RunLedgerEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, runLedgerRecordToDomain(record))
	}
	return entries, nil
}

func runLedgerRecordToDomain(record *runLedgerRecord) core.RunLedgerEntry {
	if record == nil {
		return core.RunLedgerEntry{}
	}
	return core.RunLedgerEntry{
		ID:                 record.ID,
		RunID:              record.RunID,
		ObjectID:           record.ObjectID,
		ObjectName:         record.ObjectName,
		Status:             core.ObjectStatus(record.Status),
		ExtractedRecords:   record.ExtractedRecords,
		TransformedRecords: record.TransformedRecords,
		LoadedRecords:      record.LoadedRecords,
		FindingCount:       record.FindingCount,
		DurationMs:         record.DurationMs,
		CreatedAt:          record.CreatedAt,
	}
}
