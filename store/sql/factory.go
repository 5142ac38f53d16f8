package sqlstore

import (
	"database/sql"
	"fmt"

	persistence "github.com/goliatone/go-persistence-bun"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/ib823/sapconnect-sub002/core"
)

// StoreFactory wires bun-backed stores from either a persistence client or a
// raw bun handle.
type StoreFactory struct {
	db          *bun.DB
	ledgerStore *RunLedgerStore
}

func NewStoreFactory() *StoreFactory {
	return &StoreFactory{}
}

func NewStoreFactoryFromPersistence(client *persistence.Client) (*StoreFactory, error) {
	factory := NewStoreFactory()
	if err := factory.BuildStores(client); err != nil {
		return nil, err
	}
	return factory, nil
}

func NewStoreFactoryFromDB(db *bun.DB) (*StoreFactory, error) {
	factory := NewStoreFactory()
	if err := factory.BuildStores(db); err != nil {
		return nil, err
	}
	return factory, nil
}

func (f *StoreFactory) BuildStores(persistenceClient any) error {
	if f == nil {
		return fmt.Errorf("sqlstore: store factory is nil")
	}
	if f.db == nil {
		db, err := resolveBunDB(persistenceClient)
		if err != nil {
			return err
		}
		f.db = db
	}
	if f.ledgerStore != nil {
		return nil
	}
	ledgerStore, err := NewRunLedgerStore(f.db)
	if err != nil {
		return err
	}
	f.ledgerStore = ledgerStore
	return nil
}

func (f *StoreFactory) DB() *bun.DB {
	if f == nil {
		return nil
	}
	return f.db
}

func (f *StoreFactory) RunLedgerStore() *RunLedgerStore {
	if f == nil {
		return nil
	}
	return f.ledgerStore
}

// OpenLedgerDB opens the local run-ledger database. An empty DSN falls back
// to an in-process sqlite file so mock mode needs no server.
func OpenLedgerDB(engine, dsn string) (*bun.DB, error) {
	switch engine {
	case "", "sqlite":
		if dsn == "" {
			dsn = "file:migration_ledger.db?cache=shared&_fk=1"
		}
		sqldb, err := sql.Open("sqlite3", dsn)
		if err != nil {
			return nil, fmt.Errorf("sqlstore: open sqlite ledger: %w", err)
		}
		return bun.NewDB(sqldb, sqlitedialect.New()), nil
	case string(EnginePostgres):
		sqldb, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("sqlstore: open postgres ledger: %w", err)
		}
		return bun.NewDB(sqldb, pgdialect.New()), nil
	default:
		return nil, fmt.Errorf("sqlstore: unsupported ledger engine %q", engine)
	}
}

func resolveBunDB(candidate any) (*bun.DB, error) {
	switch typed := candidate.(type) {
	case nil:
		return nil, fmt.Errorf("sqlstore: persistence client is required")
	case *bun.DB:
		return typed, nil
	case interface{ DB() *bun.DB }:
		db := typed.DB()
		if db == nil {
			return nil, fmt.Errorf("sqlstore: persistence client returned nil bun db")
		}
		return db, nil
	default:
		return nil, fmt.Errorf("sqlstore: unsupported persistence client type %T", candidate)
	}
}

var (
	_ core.LedgerSink   = (*RunLedgerStore)(nil)
	_ core.LedgerReader = (*RunLedgerStore)(nil)
)
