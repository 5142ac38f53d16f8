package erp

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"

	"github.com/ib823/sapconnect-sub002/core"
	sqlstore "github.com/ib823/sapconnect-sub002/store/sql"
)

// Profile declares what one source product looks like: its identity, the
// mock fixture tables and entity sets, and the canned API surface. Product
// packages fill one of these in; the adapter machinery is shared.
type Profile struct {
	Product      core.Product
	Version      string
	Modules      []string
	ProbeTable   string
	Tables       map[string][]core.Record
	Entities     map[string][]core.Record
	APIResponses map[string]map[string]any
}

type Config struct {
	Mode     core.Mode
	Company  string
	DataArea string
}

// Adapter is the shared read-only connector. Mock mode serves fixtures and
// never opens a connection; live mode delegates table reads to the resilient
// database client and refuses API paths until a transport is configured.
type Adapter struct {
	profile Profile
	cfg     Config
	db      *sqlstore.ReadClient
	logger  core.Logger

	mu        sync.Mutex
	connected bool
}

type Option func(*Adapter)

func WithLogger(logger core.Logger) Option {
	return func(a *Adapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

func WithReadClient(client *sqlstore.ReadClient) Option {
	return func(a *Adapter) {
		a.db = client
	}
}

func New(profile Profile, cfg Config, opts ...Option) *Adapter {
	if cfg.Mode == "" {
		cfg.Mode = core.ModeMock
	}
	_, logger := glog.Resolve("adapter."+strings.ToLower(string(profile.Product)), nil, nil)
	adapter := &Adapter{
		profile: profile,
		cfg:     cfg,
		logger:  glog.Ensure(logger),
	}
	for _, opt := range opts {
		opt(adapter)
	}
	return adapter
}

func (a *Adapter) Product() core.Product { return a.profile.Product }

func (a *Adapter) Mode() core.Mode { return a.cfg.Mode }

func (a *Adapter) Connect(ctx context.Context) error {
	if a == nil {
		return fmt.Errorf("erp: adapter is nil")
	}
	if a.cfg.Mode == core.ModeLive && a.db == nil {
		return notConfigured("live mode requires a database read client")
	}
	a.mu.Lock()
	a.connected = true
	a.mu.Unlock()
	if a.logger != nil {
		a.logger.WithContext(ctx).Info("adapter connected",
			"product", string(a.profile.Product),
			"mode", string(a.cfg.Mode),
		)
	}
	return nil
}

func (a *Adapter) Disconnect(_ context.Context) error {
	if a == nil {
		return nil
	}
	a.mu.Lock()
	a.connected = false
	a.mu.Unlock()
	return nil
}

func (a *Adapter) ReadTable(ctx context.Context, name string, opts core.ReadOptions) (core.TableResult, error) {
	if a == nil {
		return core.TableResult{}, fmt.Errorf("erp: adapter is nil")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return core.TableResult{}, goerrors.New(
			"erp: table name is required",
			goerrors.CategoryBadInput,
		).WithTextCode(core.MigrationErrorBadInput)
	}
	if a.cfg.Mode == core.ModeLive {
		return a.readTableLive(ctx, name, opts)
	}
	return a.readTableMock(name, opts)
}

func (a *Adapter) readTableMock(name string, opts core.ReadOptions) (core.TableResult, error) {
	fixture, ok := a.profile.Tables[name]
	if !ok {
		return core.TableResult{}, goerrors.New(
			fmt.Sprintf("erp: table %s is not available on %s", name, a.profile.Product),
			goerrors.CategoryBadInput,
		).WithTextCode(core.AdapterErrorUnsupported)
	}
	rows := filterRecords(core.CloneRecords(fixture), opts.Filter)
	total := len(rows)
	rows, truncated := applyWindow(rows, opts.Offset, opts.MaxRows)
	rows = projectFields(rows, opts.Fields)
	return core.TableResult{
		Rows: rows,
		Metadata: core.TableMetadata{
			Table:     name,
			RowCount:  total,
			Truncated: truncated,
			Source:    "mock",
		},
	}, nil
}

// readTableLive pushes the row window down to the engine when a limit is
// set; the offset and filter are applied post-fetch since not every engine
// dialect shares an offset syntax.
func (a *Adapter) readTableLive(ctx context.Context, name string, opts core.ReadOptions) (core.TableResult, error) {
	if a.db == nil {
		return core.TableResult{}, notConfigured("live mode requires a database read client")
	}
	var (
		rows []core.Record
		err  error
	)
	if opts.MaxRows > 0 {
		limit := opts.MaxRows + opts.Offset
		rows, err = a.db.SampleRows(ctx, name, opts.Fields, limit)
	} else {
		statement := fmt.Sprintf("SELECT %s FROM %s", selectList(opts.Fields), name)
		rows, err = a.db.QueryRecords(ctx, statement)
	}
	if err != nil {
		return core.TableResult{}, err
	}
	rows = filterRecords(rows, opts.Filter)
	total := len(rows)
	rows, truncated := applyWindow(rows, opts.Offset, opts.MaxRows)
	return core.TableResult{
		Rows: rows,
		Metadata: core.TableMetadata{
			Table:     name,
			RowCount:  total,
			Truncated: truncated,
			Source:    "db",
		},
	}, nil
}

func (a *Adapter) CallAPI(_ context.Context, endpoint string, params map[string]any) (map[string]any, error) {
	if a == nil {
		return nil, fmt.Errorf("erp: adapter is nil")
	}
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, goerrors.New(
			"erp: endpoint is required",
			goerrors.CategoryBadInput,
		).WithTextCode(core.MigrationErrorBadInput)
	}
	if a.cfg.Mode == core.ModeLive {
		return nil, notConfigured("live API transport is not configured")
	}
	response, ok := a.profile.APIResponses[endpoint]
	if !ok {
		return nil, goerrors.New(
			fmt.Sprintf("erp: endpoint %s is not available on %s", endpoint, a.profile.Product),
			goerrors.CategoryBadInput,
		).WithTextCode(core.AdapterErrorUnsupported)
	}
	out := make(map[string]any, len(response)+1)
	for key, value := range response {
		out[key] = value
	}
	if len(params) > 0 {
		out["echo"] = params
	}
	return out, nil
}

func (a *Adapter) QueryEntities(_ context.Context, entityType string, filter map[string]any, opts core.QueryOptions) (core.EntityResult, error) {
	if a == nil {
		return core.EntityResult{}, fmt.Errorf("erp: adapter is nil")
	}
	entityType = strings.TrimSpace(entityType)
	if entityType == "" {
		return core.EntityResult{}, goerrors.New(
			"erp: entity type is required",
			goerrors.CategoryBadInput,
		).WithTextCode(core.MigrationErrorBadInput)
	}
	if a.cfg.Mode == core.ModeLive {
		return core.EntityResult{}, notConfigured("live entity transport is not configured")
	}
	fixture, ok := a.profile.Entities[entityType]
	if !ok {
		return core.EntityResult{}, goerrors.New(
			fmt.Sprintf("erp: entity type %s is not available on %s", entityType, a.profile.Product),
			goerrors.CategoryBadInput,
		).WithTextCode(core.AdapterErrorUnsupported)
	}
	entities := filterRecords(core.CloneRecords(fixture), filter)
	total := len(entities)
	entities, _ = applyWindow(entities, opts.Offset, opts.MaxRows)
	return core.EntityResult{
		Entities:   entities,
		TotalCount: total,
	}, nil
}

func (a *Adapter) SystemInfo(_ context.Context) (core.SystemInfo, error) {
	if a == nil {
		return core.SystemInfo{}, fmt.Errorf("erp: adapter is nil")
	}
	return core.SystemInfo{
		Product:   string(a.profile.Product),
		Version:   a.profile.Version,
		Modules:   append([]string(nil), a.profile.Modules...),
		Timestamp: time.Now().UTC(),
	}, nil
}

func (a *Adapter) HealthCheck(ctx context.Context) (core.HealthStatus, error) {
	if a == nil {
		return core.HealthStatus{}, fmt.Errorf("erp: adapter is nil")
	}
	product := string(a.profile.Product)
	if a.cfg.Mode == core.ModeMock {
		return core.HealthStatus{
			OK:      true,
			Status:  "mock",
			Product: product,
		}, nil
	}
	if a.db == nil {
		return core.HealthStatus{
			OK:      false,
			Status:  "not_configured",
			Product: product,
			Error:   "database read client is not configured",
		}, nil
	}
	probe := strings.TrimSpace(a.profile.ProbeTable)
	if probe == "" {
		return core.HealthStatus{
			OK:      true,
			Status:  "connected",
			Product: product,
		}, nil
	}
	startedAt := time.Now()
	if _, err := a.db.RowCount(ctx, probe); err != nil {
		return core.HealthStatus{
			OK:        false,
			LatencyMs: time.Since(startedAt).Milliseconds(),
			Status:    "unreachable",
			Product:   product,
			Error:     err.Error(),
		}, nil
	}
	return core.HealthStatus{
		OK:        true,
		LatencyMs: time.Since(startedAt).Milliseconds(),
		Status:    "connected",
		Product:   product,
	}, nil
}

// TableNames lists the fixture tables, sorted for stable output.
func (a *Adapter) TableNames() []string {
	if a == nil {
		return nil
	}
	names := make([]string, 0, len(a.profile.Tables))
	for name := range a.profile.Tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func notConfigured(message string) error {
	return goerrors.New(
		"erp: "+message,
		goerrors.CategoryOperation,
	).WithTextCode(core.AdapterErrorNotConfigured)
}

func selectList(fields []string) string {
	cleaned := make([]string, 0, len(fields))
	for _, field := range fields {
		if field = strings.TrimSpace(field); field != "" {
			cleaned = append(cleaned, field)
		}
	}
	if len(cleaned) == 0 {
		return "*"
	}
	return strings.Join(cleaned, ", ")
}

// filterRecords keeps rows whose fields equal every filter value. Values
// compare by their printed form so numeric fixtures match string filters.
func filterRecords(rows []core.Record, filter map[string]any) []core.Record {
	if len(filter) == 0 {
		return rows
	}
	out := rows[:0]
	for _, row := range rows {
		if matchesFilter(row, filter) {
			out = append(out, row)
		}
	}
	return out
}

func matchesFilter(row core.Record, filter map[string]any) bool {
	for field, want := range filter {
		have, ok := row[field]
		if !ok {
			return false
		}
		if fmt.Sprint(have) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}

func applyWindow(rows []core.Record, offset, maxRows int) ([]core.Record, bool) {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(rows) {
		return nil, offset > 0 && len(rows) > 0
	}
	rows = rows[offset:]
	if maxRows > 0 && len(rows) > maxRows {
		return rows[:maxRows], true
	}
	return rows, offset > 0
}

func projectFields(rows []core.Record, fields []string) []core.Record {
	cleaned := make([]string, 0, len(fields))
	for _, field := range fields {
		if field = strings.TrimSpace(field); field != "" {
			cleaned = append(cleaned, field)
		}
	}
	if len(cleaned) == 0 {
		return rows
	}
	out := make([]core.Record, len(rows))
	for idx, row := range rows {
		projected := make(core.Record, len(cleaned))
		for _, field := range cleaned {
			if value, ok := row[field]; ok {
				projected[field] = value
			}
		}
		out[idx] = projected
	}
	return out
}

var _ core.SourceAdapter = (*Adapter)(nil)
