package sqlstore

import (
	"context"
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/uptrace/bun"

	"github.com/ib823/sapconnect-sub002/core"
)

// ReadClient is the read-only query surface over a source database. Every
// statement passes the read-only guard before it reaches the driver, and
// execution goes through the resilient executor.
type ReadClient struct {
	db       *bun.DB
	dialect  Dialect
	executor *ResilientExecutor
	logger   core.Logger
}

func NewReadClient(db *bun.DB, dialect Dialect, executor *ResilientExecutor, logger core.Logger) (*ReadClient, error) {
	if db == nil {
		return nil, goerrors.New(
			"sqlstore: bun db is required",
			goerrors.CategoryOperation,
		).WithTextCode(core.AdapterDBErrorConnectionFailed)
	}
	if dialect == nil {
		return nil, goerrors.New(
			"sqlstore: sql dialect is required",
			goerrors.CategoryOperation,
		).WithTextCode(core.AdapterDBErrorDriverMissing)
	}
	return &ReadClient{
		db:       db,
		dialect:  dialect,
		executor: executor,
		logger:   logger,
	}, nil
}

func (c *ReadClient) Dialect() Dialect {
	if c == nil {
		return nil
	}
	return c.dialect
}

// QueryRecords runs an arbitrary SELECT and materializes every row into a
// Record keyed by column name.
func (c *ReadClient) QueryRecords(ctx context.Context, statement string, args ...any) ([]core.Record, error) {
	if c == nil || c.db == nil {
		return nil, goerrors.New(
			"sqlstore: read client is not configured",
			goerrors.CategoryOperation,
		).WithTextCode(core.AdapterDBErrorConnectionFailed)
	}
	if err := GuardReadOnly(statement); err != nil {
		return nil, err
	}

	var records []core.Record
	run := func(ctx context.Context) error {
		rows, err := c.db.QueryContext(ctx, statement, args...)
		if err != nil {
			return goerrors.Wrap(
				err,
				goerrors.CategoryExternal,
				"sqlstore: query failed",
			).WithTextCode(core.AdapterDBErrorQueryFailed)
		}
		defer rows.Close()

		columns, err := rows.Columns()
		if err != nil {
			return goerrors.Wrap(
				err,
				goerrors.CategoryExternal,
				"sqlstore: column discovery failed",
			).WithTextCode(core.AdapterDBErrorQueryFailed)
		}

		records = records[:0]
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for idx := range values {
			pointers[idx] = &values[idx]
		}
		for rows.Next() {
			if err := rows.Scan(pointers...); err != nil {
				return goerrors.Wrap(
					err,
					goerrors.CategoryExternal,
					"sqlstore: row scan failed",
				).WithTextCode(core.AdapterDBErrorQueryFailed)
			}
			record := make(core.Record, len(columns))
			for idx, column := range columns {
				record[column] = normalizeSQLValue(values[idx])
			}
			records = append(records, record)
		}
		return rows.Err()
	}

	if c.executor != nil {
		if err := c.executor.Execute(ctx, "query_records", run); err != nil {
			return nil, err
		}
	} else if err := run(ctx); err != nil {
		return nil, err
	}
	return records, nil
}

// ListTables reads the engine catalog for base table names.
func (c *ReadClient) ListTables(ctx context.Context, schema string) ([]string, error) {
	records, err := c.QueryRecords(ctx, c.dialect.TableListQuery(schema))
	if err != nil {
		return nil, err
	}
	tables := make([]string, 0, len(records))
	for _, record := range records {
		for _, value := range record {
			if name := strings.TrimSpace(fmt.Sprint(value)); name != "" {
				tables = append(tables, name)
			}
			break
		}
	}
	return tables, nil
}

// ColumnMetadata is one catalog row describing a source table column.
type ColumnMetadata struct {
	Column   string
	DataType string
	Nullable string
}

// TableColumns reads column metadata for one table.
func (c *ReadClient) TableColumns(ctx context.Context, table string) ([]ColumnMetadata, error) {
	records, err := c.QueryRecords(ctx, c.dialect.ColumnMetadataQuery(table))
	if err != nil {
		return nil, err
	}
	columns := make([]ColumnMetadata, 0, len(records))
	for _, record := range records {
		columns = append(columns, ColumnMetadata{
			Column:   recordString(record, "COLUMN_NAME", "COLNAME", "column_name"),
			DataType: recordString(record, "DATA_TYPE", "TYPENAME", "data_type"),
			Nullable: recordString(record, "IS_NULLABLE", "NULLABLE", "NULLS", "is_nullable"),
		})
	}
	return columns, nil
}

// SampleRows reads the first n rows of a table using the engine's own
// limiting syntax.
func (c *ReadClient) SampleRows(ctx context.Context, table string, fields []string, limit int) ([]core.Record, error) {
	if limit <= 0 {
		limit = 10
	}
	return c.QueryRecords(ctx, c.dialect.TopNQuery(table, fields, limit))
}

// RowCount counts the rows of one table.
func (c *ReadClient) RowCount(ctx context.Context, table string) (int64, error) {
	records, err := c.QueryRecords(ctx, c.dialect.RowCountQuery(table))
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}
	for _, value := range records[0] {
		switch typed := value.(type) {
		case int64:
			return typed, nil
		case int:
			return int64(typed), nil
		case float64:
			return int64(typed), nil
		case string:
			var parsed int64
			_, err := fmt.Sscan(typed, &parsed)
			return parsed, err
		}
	}
	return 0, nil
}

func recordString(record core.Record, keys ...string) string {
	for _, key := range keys {
		if value, ok := record[key]; ok && value != nil {
			return strings.TrimSpace(fmt.Sprint(value))
		}
	}
	return ""
}

// normalizeSQLValue keeps record values scalar: drivers hand back []byte for
// text columns, which would break string-keyed lookups downstream.
func normalizeSQLValue(value any) any {
	if raw, ok := value.([]byte); ok {
		return string(raw)
	}
	return value
}
