package lawson

import (
	"context"
	"testing"

	"github.com/ib823/sapconnect-sub002/adapters/erp"
	"github.com/ib823/sapconnect-sub002/core"
)

func TestAdapterIdentity(t *testing.T) {
	adapter := New(erp.Config{})
	if adapter.Product() != core.ProductLawson {
		t.Fatalf("product = %s", adapter.Product())
	}
}

func TestVendorMasterServed(t *testing.T) {
	adapter := New(erp.Config{})
	result, err := adapter.ReadTable(context.Background(), "APVENMAST", core.ReadOptions{})
	if err != nil {
		t.Fatalf("read APVENMAST: %v", err)
	}
	for _, row := range result.Rows {
		if row["VENDOR"] == nil || row["VENDOR_VNAME"] == nil {
			t.Fatalf("fixture row misses Lawson field names: %+v", row)
		}
	}
}

func TestCompanyScopedAccountingUnits(t *testing.T) {
	adapter := New(erp.Config{})
	result, err := adapter.ReadTable(context.Background(), "GLNAMES", core.ReadOptions{
		Filter: map[string]any{"COMPANY": 100},
	})
	if err != nil {
		t.Fatalf("filtered read: %v", err)
	}
	if len(result.Rows) != 2 {
		t.Fatalf("company filter must match numeric fixtures, got %d rows", len(result.Rows))
	}
}
