package m3

import (
	"context"
	"testing"

	"github.com/ib823/sapconnect-sub002/adapters/erp"
	"github.com/ib823/sapconnect-sub002/core"
)

func TestAdapterIdentity(t *testing.T) {
	adapter := New(erp.Config{})
	if adapter.Product() != core.ProductM3 {
		t.Fatalf("product = %s", adapter.Product())
	}
}

func TestCustomerMasterServed(t *testing.T) {
	adapter := New(erp.Config{})
	result, err := adapter.ReadTable(context.Background(), "OCUSMA", core.ReadOptions{})
	if err != nil {
		t.Fatalf("read OCUSMA: %v", err)
	}
	for _, row := range result.Rows {
		if row["OKCUNO"] == nil || row["OKCUNM"] == nil {
			t.Fatalf("fixture row misses M3 field prefixes: %+v", row)
		}
	}
}

func TestMIProgramEndpoint(t *testing.T) {
	adapter := New(erp.Config{})
	response, err := adapter.CallAPI(context.Background(), "MMS200MI/GetItmBasic", nil)
	if err != nil {
		t.Fatalf("mi call: %v", err)
	}
	if response["program"] != "MMS200MI" {
		t.Fatalf("unexpected response %+v", response)
	}
}
