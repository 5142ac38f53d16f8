package sqlstore

import (
	"strings"
	"testing"
)

func TestDialectForKnownEngines(t *testing.T) {
	for _, engine := range []string{"sqlserver", "oracle", "db2", "postgres"} {
		dialect, err := DialectFor(engine)
		if err != nil {
			t.Fatalf("engine %s: %v", engine, err)
		}
		if string(dialect.Engine()) != engine {
			t.Fatalf("engine mismatch: %s != %s", dialect.Engine(), engine)
		}
	}
	if _, err := DialectFor("  Postgres "); err != nil {
		t.Fatalf("engine lookup must normalize case and whitespace: %v", err)
	}
}

func TestDialectForUnknownEngine(t *testing.T) {
	if _, err := DialectFor("mysql"); err == nil {
		t.Fatalf("unsupported engine must be rejected")
	}
}

func TestTopNQuerySyntaxPerEngine(t *testing.T) {
	cases := []struct {
		engine string
		want   string
	}{
		{"sqlserver", "SELECT TOP 5 NAME1, ORT01 FROM KNA1"},
		{"oracle", "SELECT NAME1, ORT01 FROM KNA1 FETCH FIRST 5 ROWS ONLY"},
		{"db2", "SELECT NAME1, ORT01 FROM KNA1 FETCH FIRST 5 ROWS ONLY"},
		{"postgres", "SELECT NAME1, ORT01 FROM KNA1 LIMIT 5"},
	}
	for _, tc := range cases {
		dialect, err := DialectFor(tc.engine)
		if err != nil {
			t.Fatalf("engine %s: %v", tc.engine, err)
		}
		got := dialect.TopNQuery("KNA1", []string{"NAME1", "ORT01"}, 5)
		if got != tc.want {
			t.Fatalf("engine %s: got %q, want %q", tc.engine, got, tc.want)
		}
	}
}

func TestTopNQueryDefaultsToStar(t *testing.T) {
	dialect, _ := DialectFor("postgres")
	got := dialect.TopNQuery("MARA", nil, 3)
	if got != "SELECT * FROM MARA LIMIT 3" {
		t.Fatalf("got %q", got)
	}
}

func TestCatalogQueriesAreReadOnly(t *testing.T) {
	for _, engine := range []string{"sqlserver", "oracle", "db2", "postgres"} {
		dialect, err := DialectFor(engine)
		if err != nil {
			t.Fatalf("engine %s: %v", engine, err)
		}
		statements := []string{
			dialect.TableListQuery("dbo"),
			dialect.ColumnMetadataQuery("KNA1"),
			dialect.TopNQuery("KNA1", nil, 10),
			dialect.RowCountQuery("KNA1"),
		}
		for _, statement := range statements {
			if err := GuardReadOnly(statement); err != nil {
				t.Fatalf("engine %s rendered a non-SELECT: %q (%v)", engine, statement, err)
			}
			if !strings.HasPrefix(strings.ToUpper(strings.TrimSpace(statement)), "SELECT") {
				t.Fatalf("engine %s: %q is not a select", engine, statement)
			}
		}
	}
}
