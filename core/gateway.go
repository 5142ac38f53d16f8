package core

import (
	"context"
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

// MockGateway is the pure in-process gateway: extraction reads the object's
// deterministic fixture, load is a counting sink. It never suspends.
type MockGateway struct{}

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (*MockGateway) Mode() Mode {
	return ModeMock
}

func (*MockGateway) Extract(_ context.Context, object MigrationObject) ([]Record, error) {
	if object == nil {
		return nil, fmt.Errorf("core: migration object is required")
	}
	return CloneRecords(object.ExtractMock()), nil
}

func (*MockGateway) Load(_ context.Context, object MigrationObject, records []Record) (LoadReport, error) {
	if object == nil {
		return LoadReport{}, fmt.Errorf("core: migration object is required")
	}
	return LoadReport{
		RecordCount:  len(records),
		SuccessCount: len(records),
		Details:      "mock sink",
	}, nil
}

// LiveGateway extracts through a source adapter. Objects must describe their
// source table via TableSourced. Load remains a simulation surface: the
// adapters are read-only and transactional commit into the target is out of
// scope, so the report only echoes counts.
type LiveGateway struct {
	Adapter SourceAdapter
	Config  Config
}

func NewLiveGateway(adapter SourceAdapter, cfg Config) (*LiveGateway, error) {
	if adapter == nil {
		return nil, goerrors.New(
			"core: live gateway requires a source adapter",
			goerrors.CategoryOperation,
		).WithTextCode(AdapterErrorNotConfigured)
	}
	return &LiveGateway{Adapter: adapter, Config: cfg}, nil
}

func (g *LiveGateway) Mode() Mode {
	return ModeLive
}

func (g *LiveGateway) Extract(ctx context.Context, object MigrationObject) ([]Record, error) {
	if g == nil || g.Adapter == nil {
		return nil, goerrors.New(
			"core: live gateway is not configured",
			goerrors.CategoryOperation,
		).WithTextCode(AdapterErrorNotConfigured)
	}
	if object == nil {
		return nil, fmt.Errorf("core: migration object is required")
	}
	sourced, ok := object.(TableSourced)
	if !ok {
		return nil, goerrors.New(
			fmt.Sprintf("core: object %s does not declare a live source query", object.ObjectID()),
			goerrors.CategoryOperation,
		).WithTextCode(AdapterErrorUnsupported)
	}
	query := sourced.SourceQuery()
	dataArea := strings.TrimSpace(query.DataArea)
	if dataArea == "" {
		dataArea = strings.TrimSpace(g.Config.DataArea)
	}
	result, err := g.Adapter.ReadTable(ctx, query.Table, ReadOptions{
		Fields:   append([]string(nil), query.Fields...),
		Filter:   query.Filter,
		OrderBy:  query.OrderBy,
		DataArea: dataArea,
	})
	if err != nil {
		return nil, err
	}
	return result.Rows, nil
}

func (g *LiveGateway) Load(_ context.Context, object MigrationObject, records []Record) (LoadReport, error) {
	if object == nil {
		return LoadReport{}, fmt.Errorf("core: migration object is required")
	}
	return LoadReport{
		RecordCount:  len(records),
		SuccessCount: len(records),
		Details:      "load simulation: target commit is out of scope",
	}, nil
}

var (
	_ Gateway = (*MockGateway)(nil)
	_ Gateway = (*LiveGateway)(nil)
)
