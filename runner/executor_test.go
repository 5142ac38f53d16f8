package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/ib823/sapconnect-sub002/core"
)

type stubObject struct {
	id       string
	mappings []core.FieldMappingRule
	checks   core.QualityChecks
	fixture  []core.Record
	hook     func(records []core.Record) (core.TransformOutcome, error)
}

func (o *stubObject) ObjectID() string { return o.id }

func (o *stubObject) Name() string { return "Stub " + o.id }

func (o *stubObject) FieldMappings() []core.FieldMappingRule {
	return core.CopyRules(o.mappings)
}

func (o *stubObject) QualityChecks() core.QualityChecks { return o.checks }

func (o *stubObject) ExtractMock() []core.Record { return core.CloneRecords(o.fixture) }

type hookedObject struct {
	stubObject
}

func (o *hookedObject) TransformHook(records []core.Record) (core.TransformOutcome, error) {
	return o.hook(records)
}

type failingGateway struct {
	core.MockGateway
	extractErr error
	loadErr    error
}

func (g *failingGateway) Extract(ctx context.Context, object core.MigrationObject) ([]core.Record, error) {
	if g.extractErr != nil {
		return nil, g.extractErr
	}
	return g.MockGateway.Extract(ctx, object)
}

func (g *failingGateway) Load(ctx context.Context, object core.MigrationObject, records []core.Record) (core.LoadReport, error) {
	if g.loadErr != nil {
		return core.LoadReport{}, g.loadErr
	}
	return g.MockGateway.Load(ctx, object, records)
}

func simpleObject(id string) *stubObject {
	return &stubObject{
		id: id,
		mappings: []core.FieldMappingRule{
			{Source: "NAME1", Target: "Name"},
			{Source: "ORT01", Target: "City"},
		},
		checks: core.QualityChecks{Required: []string{"Name"}},
		fixture: []core.Record{
			{"NAME1": "Acme", "ORT01": "Berlin"},
			{"NAME1": "Globex", "ORT01": "Tokyo"},
		},
	}
}

func TestExecutorHappyPath(t *testing.T) {
	executor := NewExecutor(core.NewMockGateway())
	result := executor.Execute(context.Background(), simpleObject("BankMaster"))

	if result.Status != core.ObjectCompleted {
		t.Fatalf("status = %s, details: %+v", result.Status, result.Phases)
	}
	for _, phase := range []core.PhaseResult{
		result.Phases.Extract, result.Phases.Transform, result.Phases.Validate, result.Phases.Load,
	} {
		if phase.Status != core.PhaseCompleted {
			t.Fatalf("phase not completed: %+v", phase)
		}
	}
	if result.Stats.ExtractedRecords != 2 || result.Stats.TransformedRecords != 2 || result.Stats.LoadedRecords != 2 {
		t.Fatalf("unexpected stats %+v", result.Stats)
	}
}

func TestExecutorExtractFailureSkipsEverything(t *testing.T) {
	gateway := &failingGateway{extractErr: errors.New("adapter down")}
	executor := NewExecutor(gateway)
	executor.Gateway = gateway

	result := executor.Execute(context.Background(), simpleObject("CostCenter"))
	if result.Status != core.ObjectError {
		t.Fatalf("status = %s", result.Status)
	}
	if result.Phases.Extract.Status != core.PhaseFailed {
		t.Fatalf("extract must fail: %+v", result.Phases.Extract)
	}
	for _, phase := range []core.PhaseResult{
		result.Phases.Transform, result.Phases.Validate, result.Phases.Load,
	} {
		if phase.Status != core.PhaseSkipped {
			t.Fatalf("expected skipped phase, got %+v", phase)
		}
		if phase.RecordCount != 0 {
			t.Fatalf("skipped phase must report zero records")
		}
	}
}

func TestExecutorTransformFailureOnUnknownConverter(t *testing.T) {
	object := simpleObject("ProfitCenter")
	object.mappings = append(object.mappings, core.FieldMappingRule{
		Source: "NAME1", Target: "Slug", Convert: core.ConverterTag("toKebabCase"),
	})
	executor := NewExecutor(core.NewMockGateway())

	result := executor.Execute(context.Background(), object)
	if result.Status != core.ObjectError {
		t.Fatalf("status = %s", result.Status)
	}
	if result.Phases.Transform.Status != core.PhaseFailed {
		t.Fatalf("transform must fail: %+v", result.Phases.Transform)
	}
	if result.Phases.Validate.Status != core.PhaseSkipped || result.Phases.Load.Status != core.PhaseSkipped {
		t.Fatalf("later phases must be skipped")
	}
}

func TestExecutorValidationFailureSkipsLoad(t *testing.T) {
	object := simpleObject("SupplierMaster")
	object.fixture = []core.Record{
		{"NAME1": "Acme", "ORT01": "Berlin"},
		{"NAME1": "", "ORT01": "Tokyo"},
	}
	executor := NewExecutor(core.NewMockGateway())

	result := executor.Execute(context.Background(), object)
	if result.Status != core.ObjectValidationFailed {
		t.Fatalf("status = %s", result.Status)
	}
	if result.Phases.Validate.Status != core.PhaseFailed {
		t.Fatalf("validate must fail: %+v", result.Phases.Validate)
	}
	if result.Phases.Load.Status != core.PhaseSkipped || result.Phases.Load.RecordCount != 0 {
		t.Fatalf("load must be skipped with zero records: %+v", result.Phases.Load)
	}
	if len(result.Findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(result.Findings))
	}
}

func TestExecutorLoadFailureDoesNotCascade(t *testing.T) {
	gateway := &failingGateway{loadErr: errors.New("sink unavailable")}
	executor := NewExecutor(gateway)
	executor.Gateway = gateway

	result := executor.Execute(context.Background(), simpleObject("BankMaster"))
	if result.Status != core.ObjectCompletedWithErrors {
		t.Fatalf("status = %s", result.Status)
	}
	if result.Phases.Load.Status != core.PhaseFailed {
		t.Fatalf("load must fail: %+v", result.Phases.Load)
	}
	if result.Phases.Validate.Status != core.PhaseCompleted {
		t.Fatalf("validate must stay completed")
	}
}

func TestExecutorZeroRecordsCompletes(t *testing.T) {
	object := simpleObject("ExchangeRate")
	object.fixture = nil
	executor := NewExecutor(core.NewMockGateway())

	result := executor.Execute(context.Background(), object)
	if result.Status != core.ObjectCompleted {
		t.Fatalf("status = %s", result.Status)
	}
	if result.Phases.Transform.Status != core.PhaseCompleted || result.Phases.Transform.RecordCount != 0 {
		t.Fatalf("empty extract must complete transform with zero records: %+v", result.Phases.Transform)
	}
}

func TestExecutorDuplicateWarningsDegradeStatus(t *testing.T) {
	object := simpleObject("CustomerMaster")
	object.checks = core.QualityChecks{
		Required:       []string{"Name"},
		ExactDuplicate: &core.ExactDuplicateCheck{Keys: []string{"Name", "City"}},
	}
	object.fixture = []core.Record{
		{"NAME1": "Acme", "ORT01": "Berlin"},
		{"NAME1": "Acme", "ORT01": "Berlin"},
	}
	executor := NewExecutor(core.NewMockGateway())

	result := executor.Execute(context.Background(), object)
	if result.Status != core.ObjectCompletedWithErrors {
		t.Fatalf("status = %s", result.Status)
	}
	if result.Phases.Load.Status != core.PhaseCompleted {
		t.Fatalf("duplicates must not block load: %+v", result.Phases.Load)
	}
}

func TestExecutorTransformHookApplied(t *testing.T) {
	object := &hookedObject{stubObject: *simpleObject("BusinessPartner")}
	object.hook = func(records []core.Record) (core.TransformOutcome, error) {
		return core.TransformOutcome{Records: records[:1]}, nil
	}
	executor := NewExecutor(core.NewMockGateway())

	result := executor.Execute(context.Background(), object)
	if result.Stats.TransformedRecords != 1 {
		t.Fatalf("hook result not applied: %+v", result.Stats)
	}
}

func TestExecutorTransformHookFailureIsFatal(t *testing.T) {
	object := &hookedObject{stubObject: *simpleObject("BusinessPartner")}
	object.hook = func([]core.Record) (core.TransformOutcome, error) {
		return core.TransformOutcome{}, errors.New("merge collision")
	}
	executor := NewExecutor(core.NewMockGateway())

	result := executor.Execute(context.Background(), object)
	if result.Status != core.ObjectError {
		t.Fatalf("status = %s", result.Status)
	}
}
