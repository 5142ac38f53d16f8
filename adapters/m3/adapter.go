package m3

import (
	"github.com/ib823/sapconnect-sub002/adapters/erp"
	"github.com/ib823/sapconnect-sub002/core"
)

// New builds the Infor M3 source connector. M3 exposes its data through MI
// transaction programs and six-character master tables (OCUSMA customers,
// CIDMAS suppliers, MITMAS items).
func New(cfg erp.Config, opts ...erp.Option) *erp.Adapter {
	return erp.New(profile(), cfg, opts...)
}

func profile() erp.Profile {
	return erp.Profile{
		Product:    core.ProductM3,
		Version:    "13.4",
		Modules:    []string{"CRS", "MMS", "OIS", "PPS", "APS"},
		ProbeTable: "CSYTAB",
		Tables: map[string][]core.Record{
			"OCUSMA": {
				{"OKCUNO": "CUS00001", "OKCUNM": "Nordic Steel AB", "OKCSCD": "SE", "OKSTAT": "20"},
				{"OKCUNO": "CUS00002", "OKCUNM": "Baltic Fasteners OU", "OKCSCD": "EE", "OKSTAT": "20"},
				{"OKCUNO": "CUS00003", "OKCUNM": "Fjord Marine AS", "OKCSCD": "NO", "OKSTAT": "90"},
			},
			"CIDMAS": {
				{"IDSUNO": "SUP00001", "IDSUNM": "Ruhr Metallwerke", "IDCSCD": "DE"},
				{"IDSUNO": "SUP00002", "IDSUNM": "Osaka Precision KK", "IDCSCD": "JP"},
			},
			"MITMAS": {
				{"MMITNO": "M3-ITEM-01", "MMITDS": "Cold Rolled Sheet", "MMUNMS": "KG"},
				{"MMITNO": "M3-ITEM-02", "MMITDS": "Weld Wire 1.2mm", "MMUNMS": "KG"},
				{"MMITNO": "M3-ITEM-03", "MMITDS": "Pallet EUR", "MMUNMS": "PCS"},
			},
		},
		Entities: map[string][]core.Record{
			"Customer": {
				{"id": "CUS00001"},
				{"id": "CUS00002"},
				{"id": "CUS00003"},
			},
			"Supplier": {
				{"id": "SUP00001"},
				{"id": "SUP00002"},
			},
		},
		APIResponses: map[string]map[string]any{
			"CRS610MI/LstByNumber":  {"count": 3, "program": "CRS610MI"},
			"MMS200MI/GetItmBasic":  {"count": 3, "program": "MMS200MI"},
			"CRS620MI/LstSuppliers": {"count": 2, "program": "CRS620MI"},
		},
	}
}
