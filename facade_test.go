package sapconnect

import (
	"context"
	"testing"

	gocmd "github.com/goliatone/go-command"

	"github.com/ib823/sapconnect-sub002/adapters/erp"
	migrationcommand "github.com/ib823/sapconnect-sub002/command"
	"github.com/ib823/sapconnect-sub002/core"
	migrationquery "github.com/ib823/sapconnect-sub002/query"
)

func adapterConfig() erp.Config {
	return erp.Config{Mode: core.ModeLive, Company: "100", DataArea: "PROD"}
}

func TestSetupWiresMockRuntime(t *testing.T) {
	migrator, err := Setup(DefaultConfig())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if migrator.Service == nil || migrator.Registry == nil || migrator.Scheduler == nil {
		t.Fatalf("incomplete migrator: %#v", migrator)
	}

	descriptors, err := migrator.Service.ListObjects(context.Background())
	if err != nil {
		t.Fatalf("list objects: %v", err)
	}
	if len(descriptors) != 42 {
		t.Fatalf("objects = %d, want 42", len(descriptors))
	}

	waves, err := migrator.Service.ExecutionWaves(context.Background(), nil)
	if err != nil {
		t.Fatalf("waves: %v", err)
	}
	if len(waves) < 2 {
		t.Fatalf("waves = %d, want at least masters before transactions", len(waves))
	}
	total := 0
	for _, wave := range waves {
		total += len(wave)
	}
	if total != 42 {
		t.Fatalf("planned %d objects", total)
	}
}

func TestSetupRejectsLiveModeWithoutProduct(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = "live"
	if _, err := Setup(cfg); err == nil {
		t.Fatalf("expected live mode without product to fail")
	}
}

func TestFacadeRunObjectThroughCommand(t *testing.T) {
	migrator, err := Setup(DefaultConfig())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	facade, err := NewFacade(migrator.Service)
	if err != nil {
		t.Fatalf("facade: %v", err)
	}

	collector := gocmd.NewResult[core.ObjectResult]()
	ctx := gocmd.ContextWithResult(context.Background(), collector)
	msg := migrationcommand.RunObjectMessage{ObjectID: "PaymentTerms"}
	if err := msg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if err := facade.Commands().RunObject.Execute(ctx, msg); err != nil {
		t.Fatalf("execute: %v", err)
	}

	result, ok := collector.Load()
	if !ok {
		t.Fatalf("expected stored result")
	}
	if result.Status != core.ObjectCompleted {
		t.Fatalf("status = %s, findings %v", result.Status, result.Findings)
	}
	if result.Stats.LoadedRecords == 0 {
		t.Fatalf("no records loaded")
	}
}

func TestFacadeInspectObjectThroughQuery(t *testing.T) {
	migrator, err := Setup(DefaultConfig())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	facade, err := NewFacade(migrator.Service)
	if err != nil {
		t.Fatalf("facade: %v", err)
	}

	inspection, err := facade.Queries().InspectObject.Query(
		context.Background(),
		migrationquery.InspectObjectMessage{ObjectID: "MaterialMaster"},
	)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if inspection.ObjectID != "MaterialMaster" || len(inspection.FieldMappings) == 0 {
		t.Fatalf("unexpected inspection: %#v", inspection)
	}
}

func TestFacadeEnqueueRunRequiresEnqueuer(t *testing.T) {
	migrator, err := Setup(DefaultConfig())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	facade, err := NewFacade(migrator.Service)
	if err != nil {
		t.Fatalf("facade: %v", err)
	}
	err = facade.Commands().EnqueueRun.Execute(context.Background(), migrationcommand.EnqueueRunMessage{})
	if err == nil {
		t.Fatalf("expected dependency error without an enqueuer")
	}
}

func TestAdapterForProduct(t *testing.T) {
	for _, product := range []string{"LN", "m3", "Csi", "LAWSON"} {
		adapter, err := AdapterForProduct(product, adapterConfig())
		if err != nil {
			t.Fatalf("%s: %v", product, err)
		}
		if adapter == nil {
			t.Fatalf("%s: nil adapter", product)
		}
	}
	if _, err := AdapterForProduct("AS400", adapterConfig()); err == nil {
		t.Fatalf("expected unsupported product error")
	}
}
