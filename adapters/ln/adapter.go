package ln

import (
	"github.com/ib823/sapconnect-sub002/adapters/erp"
	"github.com/ib823/sapconnect-sub002/core"
)

// New builds the Infor LN source connector. LN stores records in company-
// scoped tables named after the owning package (tccom for common data, tcibd
// for item base data, tfacp for payables).
func New(cfg erp.Config, opts ...erp.Option) *erp.Adapter {
	return erp.New(profile(), cfg, opts...)
}

func profile() erp.Profile {
	return erp.Profile{
		Product:    core.ProductLN,
		Version:    "10.7",
		Modules:    []string{"tc", "td", "tf", "ti", "ts"},
		ProbeTable: "tccom000",
		Tables: map[string][]core.Record{
			"tccom100": {
				{"bpid": "BP000001", "nama": "Acme Industrial Corp", "ccty": "US", "seak": "ACME"},
				{"bpid": "BP000002", "nama": "Globex Manufacturing GmbH", "ccty": "DE", "seak": "GLOBEX"},
				{"bpid": "BP000003", "nama": "Initech Systems Ltd", "ccty": "GB", "seak": "INITECH"},
				{"bpid": "BP000004", "nama": "Umbrella Logistics BV", "ccty": "NL", "seak": "UMBRELLA"},
			},
			"tcibd001": {
				{"item": "ITM-1001", "dsca": "Hex Bolt M8", "cuni": "PCS", "kitm": "2"},
				{"item": "ITM-1002", "dsca": "Bearing 6204", "cuni": "PCS", "kitm": "2"},
				{"item": "ITM-1003", "dsca": "Hydraulic Oil 46", "cuni": "L", "kitm": "1"},
			},
			"tfacp200": {
				{"ttyp": "API", "ninv": "INV-2025-0001", "suno": "BP000002", "amnt": 12500.50},
				{"ttyp": "API", "ninv": "INV-2025-0002", "suno": "BP000004", "amnt": 830.00},
			},
		},
		Entities: map[string][]core.Record{
			"BusinessPartner": {
				{"id": "BP000001", "role": "customer"},
				{"id": "BP000002", "role": "supplier"},
				{"id": "BP000003", "role": "customer"},
				{"id": "BP000004", "role": "supplier"},
			},
			"Item": {
				{"id": "ITM-1001"},
				{"id": "ITM-1002"},
				{"id": "ITM-1003"},
			},
		},
		APIResponses: map[string]map[string]any{
			"bp/list":    {"count": 4, "entity": "BusinessPartner"},
			"item/list":  {"count": 3, "entity": "Item"},
			"com/status": {"status": "running", "release": "10.7"},
		},
	}
}
