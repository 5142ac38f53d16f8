package sqlstore

import (
	"time"

	"github.com/uptrace/bun"
)

type runLedgerRecord struct {
	bun.BaseModel `bun:"table:migration_run_entries,alias:mre"`

	ID                 string    `bun:"id,pk"`
	RunID              string    `bun:"run_id,notnull"`
	ObjectID           string    `bun:"object_id,notnull"`
	ObjectName         string    `bun:"object_name,notnull"`
	Status             string    `bun:"status,notnull"`
	ExtractedRecords   int       `bun:"extracted_records,notnull"`
	TransformedRecords int       `bun:"transformed_records,notnull"`
	LoadedRecords      int       `bun:"loaded_records,notnull"`
	FindingCount       int       `bun:"finding_count,notnull"`
	DurationMs         int64     `bun:"duration_ms,notnull"`
	CreatedAt          time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
