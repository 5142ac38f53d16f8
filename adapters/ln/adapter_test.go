package ln

import (
	"context"
	"testing"

	"github.com/ib823/sapconnect-sub002/adapters/erp"
	"github.com/ib823/sapconnect-sub002/core"
)

func TestAdapterIdentity(t *testing.T) {
	adapter := New(erp.Config{})
	if adapter.Product() != core.ProductLN {
		t.Fatalf("product = %s", adapter.Product())
	}
	info, err := adapter.SystemInfo(context.Background())
	if err != nil {
		t.Fatalf("system info: %v", err)
	}
	if info.Product != "LN" || len(info.Modules) == 0 {
		t.Fatalf("unexpected info %+v", info)
	}
}

func TestBusinessPartnerTableServed(t *testing.T) {
	adapter := New(erp.Config{})
	result, err := adapter.ReadTable(context.Background(), "tccom100", core.ReadOptions{})
	if err != nil {
		t.Fatalf("read tccom100: %v", err)
	}
	if len(result.Rows) == 0 {
		t.Fatalf("business partner fixture is empty")
	}
	for _, row := range result.Rows {
		if row["bpid"] == nil || row["nama"] == nil {
			t.Fatalf("fixture row misses LN field codes: %+v", row)
		}
	}
}

func TestCountryFilterOnPartners(t *testing.T) {
	adapter := New(erp.Config{})
	result, err := adapter.ReadTable(context.Background(), "tccom100", core.ReadOptions{
		Filter: map[string]any{"ccty": "DE"},
	})
	if err != nil {
		t.Fatalf("filtered read: %v", err)
	}
	if len(result.Rows) != 1 || result.Rows[0]["seak"] != "GLOBEX" {
		t.Fatalf("unexpected rows %+v", result.Rows)
	}
}
