package sqlstore

import (
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/ib823/sapconnect-sub002/core"
)

type Engine string

const (
	EngineSQLServer Engine = "sqlserver"
	EngineOracle    Engine = "oracle"
	EngineDB2       Engine = "db2"
	EnginePostgres  Engine = "postgres"
)

// Dialect renders the catalog and sampling statements for one database
// engine. Every rendered statement is a SELECT; the read-only guard still
// runs on each of them before execution.
type Dialect interface {
	Engine() Engine
	TableListQuery(schema string) string
	ColumnMetadataQuery(table string) string
	TopNQuery(table string, fields []string, limit int) string
	RowCountQuery(table string) string
}

func DialectFor(engine string) (Dialect, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(engine))) {
	case EngineSQLServer:
		return sqlServerDialect{}, nil
	case EngineOracle:
		return oracleDialect{}, nil
	case EngineDB2:
		return db2Dialect{}, nil
	case EnginePostgres:
		return postgresDialect{}, nil
	default:
		return nil, goerrors.New(
			fmt.Sprintf("sqlstore: unsupported database engine %q", engine),
			goerrors.CategoryBadInput,
		).WithTextCode(core.AdapterDBErrorDriverMissing)
	}
}

func fieldList(fields []string) string {
	cleaned := make([]string, 0, len(fields))
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field != "" {
			cleaned = append(cleaned, field)
		}
	}
	if len(cleaned) == 0 {
		return "*"
	}
	return strings.Join(cleaned, ", ")
}

type sqlServerDialect struct{}

func (sqlServerDialect) Engine() Engine { return EngineSQLServer }

func (sqlServerDialect) TableListQuery(schema string) string {
	base := "SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_TYPE = 'BASE TABLE'"
	if schema = strings.TrimSpace(schema); schema != "" {
		return base + fmt.Sprintf(" AND TABLE_SCHEMA = '%s' ORDER BY TABLE_NAME", schema)
	}
	return base + " ORDER BY TABLE_NAME"
}

func (sqlServerDialect) ColumnMetadataQuery(table string) string {
	return fmt.Sprintf(
		"SELECT COLUMN_NAME, DATA_TYPE, IS_NULLABLE FROM INFORMATION_SCHEMA.COLUMNS WHERE TABLE_NAME = '%s' ORDER BY ORDINAL_POSITION",
		strings.TrimSpace(table),
	)
}

func (sqlServerDialect) TopNQuery(table string, fields []string, limit int) string {
	return fmt.Sprintf("SELECT TOP %d %s FROM %s", limit, fieldList(fields), strings.TrimSpace(table))
}

func (sqlServerDialect) RowCountQuery(table string) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s", strings.TrimSpace(table))
}

type oracleDialect struct{}

func (oracleDialect) Engine() Engine { return EngineOracle }

func (oracleDialect) TableListQuery(schema string) string {
	if schema = strings.TrimSpace(schema); schema != "" {
		return fmt.Sprintf("SELECT TABLE_NAME FROM ALL_TABLES WHERE OWNER = '%s' ORDER BY TABLE_NAME", strings.ToUpper(schema))
	}
	return "SELECT TABLE_NAME FROM USER_TABLES ORDER BY TABLE_NAME"
}

func (oracleDialect) ColumnMetadataQuery(table string) string {
	return fmt.Sprintf(
		"SELECT COLUMN_NAME, DATA_TYPE, NULLABLE FROM ALL_TAB_COLUMNS WHERE TABLE_NAME = '%s' ORDER BY COLUMN_ID",
		strings.ToUpper(strings.TrimSpace(table)),
	)
}

func (oracleDialect) TopNQuery(table string, fields []string, limit int) string {
	return fmt.Sprintf("SELECT %s FROM %s FETCH FIRST %d ROWS ONLY", fieldList(fields), strings.TrimSpace(table), limit)
}

func (oracleDialect) RowCountQuery(table string) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s", strings.TrimSpace(table))
}

type db2Dialect struct{}

func (db2Dialect) Engine() Engine { return EngineDB2 }

func (db2Dialect) TableListQuery(schema string) string {
	base := "SELECT TABNAME FROM SYSCAT.TABLES WHERE TYPE = 'T'"
	if schema = strings.TrimSpace(schema); schema != "" {
		return base + fmt.Sprintf(" AND TABSCHEMA = '%s' ORDER BY TABNAME", strings.ToUpper(schema))
	}
	return base + " ORDER BY TABNAME"
}

func (db2Dialect) ColumnMetadataQuery(table string) string {
	return fmt.Sprintf(
		"SELECT COLNAME, TYPENAME, NULLS FROM SYSCAT.COLUMNS WHERE TABNAME = '%s' ORDER BY COLNO",
		strings.ToUpper(strings.TrimSpace(table)),
	)
}

func (db2Dialect) TopNQuery(table string, fields []string, limit int) string {
	return fmt.Sprintf("SELECT %s FROM %s FETCH FIRST %d ROWS ONLY", fieldList(fields), strings.TrimSpace(table), limit)
}

func (db2Dialect) RowCountQuery(table string) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s", strings.TrimSpace(table))
}

type postgresDialect struct{}

func (postgresDialect) Engine() Engine { return EnginePostgres }

func (postgresDialect) TableListQuery(schema string) string {
	if schema = strings.TrimSpace(schema); schema == "" {
		schema = "public"
	}
	return fmt.Sprintf(
		"SELECT table_name FROM information_schema.tables WHERE table_schema = '%s' AND table_type = 'BASE TABLE' ORDER BY table_name",
		schema,
	)
}

func (postgresDialect) ColumnMetadataQuery(table string) string {
	return fmt.Sprintf(
		"SELECT column_name, data_type, is_nullable FROM information_schema.columns WHERE table_name = '%s' ORDER BY ordinal_position",
		strings.TrimSpace(table),
	)
}

func (postgresDialect) TopNQuery(table string, fields []string, limit int) string {
	return fmt.Sprintf("SELECT %s FROM %s LIMIT %d", fieldList(fields), strings.TrimSpace(table), limit)
}

func (postgresDialect) RowCountQuery(table string) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s", strings.TrimSpace(table))
}
