package lawson

import (
	"github.com/ib823/sapconnect-sub002/adapters/erp"
	"github.com/ib823/sapconnect-sub002/core"
)

// New builds the Lawson S3 source connector. Lawson keys everything by
// company number; master files carry uppercase names (APVENMAST vendors,
// GLNAMES accounting units).
func New(cfg erp.Config, opts ...erp.Option) *erp.Adapter {
	return erp.New(profile(), cfg, opts...)
}

func profile() erp.Profile {
	return erp.Profile{
		Product:    core.ProductLawson,
		Version:    "10.0",
		Modules:    []string{"GL", "AP", "AR", "IC", "PO"},
		ProbeTable: "GLSYSTEM",
		Tables: map[string][]core.Record{
			"APVENMAST": {
				{"VENDOR": "0000014501", "VENDOR_VNAME": "Capitol Office Supply", "VENDOR_GROUP": "CORP"},
				{"VENDOR": "0000014502", "VENDOR_VNAME": "Metro Facilities Svc", "VENDOR_GROUP": "CORP"},
				{"VENDOR": "0000014503", "VENDOR_VNAME": "Harbor Freight Lines", "VENDOR_GROUP": "LOGI"},
			},
			"GLNAMES": {
				{"ACCT_UNIT": "100-2000", "DESCRIPTION": "Corporate Finance", "COMPANY": 100},
				{"ACCT_UNIT": "100-3000", "DESCRIPTION": "Distribution Ops", "COMPANY": 100},
			},
			"ARCUSTOMER": {
				{"CUSTOMER": "0000031001", "NAME": "Bayview Health Network", "COMPANY": 100},
				{"CUSTOMER": "0000031002", "NAME": "Cascade Retail Group", "COMPANY": 100},
			},
		},
		Entities: map[string][]core.Record{
			"Vendor": {
				{"id": "0000014501"},
				{"id": "0000014502"},
				{"id": "0000014503"},
			},
			"Customer": {
				{"id": "0000031001"},
				{"id": "0000031002"},
			},
		},
		APIResponses: map[string]map[string]any{
			"lawson-ios/action/ListVendors":   {"count": 3, "productLine": "apps10"},
			"lawson-ios/action/ListCustomers": {"count": 2, "productLine": "apps10"},
		},
	}
}
