package csi

import (
	"github.com/ib823/sapconnect-sub002/adapters/erp"
	"github.com/ib823/sapconnect-sub002/core"
)

// New builds the CloudSuite Industrial (SyteLine) source connector. CSI uses
// lowercase singular table names and exposes everything else through IDO
// request endpoints.
func New(cfg erp.Config, opts ...erp.Option) *erp.Adapter {
	return erp.New(profile(), cfg, opts...)
}

func profile() erp.Profile {
	return erp.Profile{
		Product:    core.ProductCSI,
		Version:    "10",
		Modules:    []string{"SL", "APS", "QCS"},
		ProbeTable: "parms",
		Tables: map[string][]core.Record{
			"customer": {
				{"cust_num": "C000100", "name": "Prairie Agritech Inc", "state": "IA", "cust_type": "STD"},
				{"cust_num": "C000101", "name": "Lakeside Components LLC", "state": "MI", "cust_type": "STD"},
			},
			"vendor": {
				{"vend_num": "V000200", "name": "Great Plains Castings", "state": "NE"},
				{"vend_num": "V000201", "name": "Superior Coatings Co", "state": "WI"},
				{"vend_num": "V000202", "name": "Twin Cities Fab", "state": "MN"},
			},
			"item": {
				{"item": "CSI-FG-01", "description": "Finished Gearbox A", "u_m": "EA"},
				{"item": "CSI-RM-07", "description": "Raw Casting Blank", "u_m": "EA"},
			},
		},
		Entities: map[string][]core.Record{
			"Customer": {
				{"id": "C000100"},
				{"id": "C000101"},
			},
			"Vendor": {
				{"id": "V000200"},
				{"id": "V000201"},
				{"id": "V000202"},
			},
		},
		APIResponses: map[string]map[string]any{
			"IDORequestService/LoadCollection": {"ido": "SLCustomers", "count": 2},
			"IDORequestService/GetPropertyList": {
				"ido":        "SLItems",
				"properties": []string{"Item", "Description", "UM"},
			},
		},
	}
}
