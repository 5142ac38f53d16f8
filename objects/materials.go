package objects

import (
	"fmt"

	"github.com/ib823/sapconnect-sub002/core"
)

func newMaterialMaster() core.MigrationObject {
	return &object{decl: declaration{
		id:    "MaterialMaster",
		name:  "Material Master",
		table: "MITMAS",
		fields: []string{
			"MMITNO", "MMITDS", "MMFUDS", "MMITGR", "MMITCL", "MMITTY", "MMUNMS",
			"MMGRWE", "MMNEWE", "MMVOL3", "MMSPE1", "MMSPE2", "MMSTAT", "MMRGDT",
			"MMSAPR", "MMAPPR", "MMBUYE", "MMPRGP", "MMLEAT", "MMLOQT", "MMSAFE",
			"MMEAN9", "MMHAZC", "MMBATM", "MMSERI", "MMABCD",
		},
		mappings: []core.FieldMappingRule{
			{Source: "MMITNO", Target: "Material", Convert: core.ConverterPadLeft40},
			{Source: "MMITDS", Target: "MaterialDescription"},
			{Source: "MMFUDS", Target: "MaterialLongText"},
			{Source: "MMITGR", Target: "MaterialGroup"},
			{Source: "MMITCL", Target: "ProductHierarchy"},
			{Source: "MMITTY", Target: "MaterialType", ValueMap: map[string]any{
				"FG": "FERT", "RM": "ROH", "SF": "HALB", "PK": "VERP", "SV": "DIEN",
			}, Default: "HAWA"},
			{Source: "MMUNMS", Target: "BaseUnit", Convert: core.ConverterToUpperCase},
			{Source: "MMGRWE", Target: "GrossWeight", Convert: core.ConverterToDecimal},
			{Source: "MMNEWE", Target: "NetWeight", Convert: core.ConverterToDecimal},
			{Source: "MMVOL3", Target: "Volume", Convert: core.ConverterToDecimal},
			{Source: "MMSPE1", Target: "Size1"},
			{Source: "MMSPE2", Target: "Size2"},
			{Source: "MMSTAT", Target: "CrossPlantStatus", ValueMap: map[string]any{
				"20": "", "50": "01", "90": "02",
			}, Default: ""},
			{Source: "MMRGDT", Target: "CreationDate", Convert: core.ConverterToDate},
			{Source: "MMSAPR", Target: "StandardPrice", Convert: core.ConverterToDecimal},
			{Source: "MMAPPR", Target: "MovingAveragePrice", Convert: core.ConverterToDecimal},
			{Source: "MMBUYE", Target: "PurchasingGroup"},
			{Source: "MMPRGP", Target: "PriceControl", ValueMap: map[string]any{
				"S": "S", "V": "V",
			}, Default: "S"},
			{Source: "MMLEAT", Target: "PlannedDeliveryDays", Convert: core.ConverterToInteger},
			{Source: "MMLOQT", Target: "MinimumLotSize", Convert: core.ConverterToDecimal},
			{Source: "MMSAFE", Target: "SafetyStock", Convert: core.ConverterToDecimal},
			{Source: "MMEAN9", Target: "InternationalArticleNumber"},
			{Source: "MMHAZC", Target: "IsHazardous", Convert: core.ConverterBoolYN},
			{Source: "MMBATM", Target: "IsBatchManaged", Convert: core.ConverterBoolYN},
			{Source: "MMSERI", Target: "SerialNumberProfile"},
			{Source: "MMABCD", Target: "ABCIndicator"},
			{Target: "IndustrySector", Default: "M"},
			{Target: "ProcurementType", Default: "F"},
		},
		checks: core.QualityChecks{
			Required: []string{"Material", "MaterialDescription", "BaseUnit"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"MaterialDescription"},
			},
			Range: []core.RangeCheck{
				{Field: "NetWeight", Min: 0, Max: 50_000},
				{Field: "StandardPrice", Min: 0, Max: 1_000_000},
			},
		},
		mock: func() []core.Record {
			records := make([]core.Record, 0, 60)
			for i := 0; i < 60; i++ {
				gross := cents(0.4, 1.75, i)
				records = append(records, core.Record{
					"MMITNO": seqID("MAT-", 6, 10000+i),
					"MMITDS": fmt.Sprintf("Machined Component %03d", i),
					"MMFUDS": fmt.Sprintf("Machined component %03d, revision %s", i, pick([]string{"A", "B", "C"}, i)),
					"MMITGR": pick([]string{"GRP01", "GRP02", "GRP03", "GRP04"}, i),
					"MMITCL": fmt.Sprintf("0001%04d", i%50),
					"MMITTY": pick([]string{"FG", "RM", "SF", "PK", "SV"}, i),
					"MMUNMS": pick(unitCodes, i),
					"MMGRWE": gross,
					"MMNEWE": cents(gross-0.2, 0, 0),
					"MMVOL3": cents(0.1, 0.05, i),
					"MMSPE1": fmt.Sprintf("%dmm", 10+i%200),
					"MMSPE2": pick([]string{"steel", "alloy", "brass", ""}, i),
					"MMSTAT": pick([]string{"20", "20", "50", "90"}, i),
					"MMRGDT": dateYYYYMMDD(2014, i*3),
					"MMSAPR": cents(12, 8.4, i),
					"MMAPPR": cents(11.5, 8.1, i),
					"MMBUYE": pick([]string{"P01", "P02", "P03"}, i),
					"MMPRGP": pick([]string{"S", "V"}, i),
					"MMLEAT": fmt.Sprintf("%d", 5+i%40),
					"MMLOQT": float64(10 * (1 + i%8)),
					"MMSAFE": float64(5 * (i % 12)),
					"MMEAN9": seqID("", 13, 4000000000000+int(i)*7),
					"MMHAZC": boolAlternating(i, 15),
					"MMBATM": boolAlternating(i, 4),
					"MMSERI": pick([]string{"", "", "Z001"}, i),
					"MMABCD": pick([]string{"A", "B", "C"}, i),
				})
			}
			return records
		},
	}}
}

func newMaterialClassification() core.MigrationObject {
	return &object{decl: declaration{
		id:    "MaterialClassification",
		name:  "Material Classification",
		table: "MITPOP",
		fields: []string{
			"MPITNO", "MPCLSS", "MPCHID", "MPCHVA", "MPCHUN", "MPSEQN",
			"MPSTAT", "MPRGDT", "MPCERT", "MPNORM", "MPREVN", "MPGRAD",
		},
		mappings: []core.FieldMappingRule{
			{Source: "MPITNO", Target: "Material", Convert: core.ConverterPadLeft40},
			{Source: "MPCLSS", Target: "Class"},
			{Source: "MPCHID", Target: "Characteristic"},
			{Source: "MPCHVA", Target: "CharacteristicValue"},
			{Source: "MPCHUN", Target: "CharacteristicUnit", Convert: core.ConverterToUpperCase},
			{Source: "MPSEQN", Target: "SequenceNumber", Convert: core.ConverterToInteger},
			{Source: "MPSTAT", Target: "IsActive", Convert: core.ConverterBoolYN},
			{Source: "MPRGDT", Target: "ValidFromDate", Convert: core.ConverterToDate},
			{Source: "MPCERT", Target: "CertificateType"},
			{Source: "MPNORM", Target: "StandardDesignation"},
			{Source: "MPREVN", Target: "RevisionLevel"},
			{Source: "MPGRAD", Target: "MaterialGrade"},
			{Target: "ClassType", Default: "001"},
			{Target: "StatusIndicator", Default: "1"},
			// Characteristic data carrier fields, fixed for the load.
			{Target: "KeyDate", Default: "2025-01-01"},
			{Target: "ChangeNumber", Default: ""},
			{Target: "CharacteristicAuthor", Default: "MIGRATION"},
			{Target: "InheritedIndicator", Default: ""},
			{Target: "InstanceCounter", Default: "1"},
			{Target: "ArchivingStatus", Default: ""},
			{Target: "MaintenanceStatus", Default: "K"},
			{Target: "LongTextIndicator", Default: ""},
			{Target: "DeletionIndicator", Default: ""},
			{Target: "ConfigurationRelevance", Default: ""},
			{Target: "OrgArea", Default: ""},
		},
		checks: core.QualityChecks{
			Required: []string{"Material", "Class", "Characteristic"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"Material", "Characteristic"},
			},
		},
		mock: func() []core.Record {
			characteristics := []string{"LENGTH", "WIDTH", "SURFACE", "COLOR", "TENSILE"}
			records := make([]core.Record, 0, 50)
			for i := 0; i < 50; i++ {
				records = append(records, core.Record{
					"MPITNO": seqID("MAT-", 6, 10000+i/5*5),
					"MPCLSS": pick([]string{"MECH_PARTS", "RAW_STOCK"}, i/5),
					"MPCHID": characteristics[i%5],
					"MPCHVA": fmt.Sprintf("%d", 5+i*3),
					"MPCHUN": pick([]string{"mm", "mm", "ra", "", "mpa"}, i),
					"MPSEQN": fmt.Sprintf("%d", 1+i%5),
					"MPSTAT": true,
					"MPRGDT": dateYYYYMMDD(2019, i),
					"MPCERT": pick([]string{"3.1", "2.2", ""}, i),
					"MPNORM": pick([]string{"EN10025", "ISO2768", ""}, i),
					"MPREVN": pick([]string{"A", "B"}, i),
					"MPGRAD": pick([]string{"S235", "S355", "C45"}, i),
				})
			}
			return records
		},
	}}
}

func newBatchMaster() core.MigrationObject {
	return &object{decl: declaration{
		id:    "BatchMaster",
		name:  "Batch Master",
		table: "MILOMA",
		fields: []string{
			"LMITNO", "LMBANO", "LMWHLO", "LMPRDT", "LMEXPI", "LMSTAT",
			"LMSUNO", "LMORQT", "LMUNMS", "LMCERT", "LMCNTY", "LMQASC",
		},
		mappings: []core.FieldMappingRule{
			{Source: "LMITNO", Target: "Material", Convert: core.ConverterPadLeft40},
			{Source: "LMBANO", Target: "Batch", Convert: core.ConverterToUpperCase},
			{Source: "LMWHLO", Target: "Plant"},
			{Source: "LMPRDT", Target: "ManufactureDate", Convert: core.ConverterToDate},
			{Source: "LMEXPI", Target: "ShelfLifeExpirationDate", Convert: core.ConverterToDate},
			{Source: "LMSTAT", Target: "BatchIsRestricted", Convert: core.ConverterBoolYN},
			{Source: "LMSUNO", Target: "Supplier", Convert: core.ConverterPadLeft10},
			{Source: "LMORQT", Target: "OriginalQuantity", Convert: core.ConverterToDecimal},
			{Source: "LMUNMS", Target: "BaseUnit", Convert: core.ConverterToUpperCase},
			{Source: "LMCERT", Target: "VendorBatch"},
			{Source: "LMCNTY", Target: "CountryOfOrigin", Convert: core.ConverterToUpperCase},
			{Source: "LMQASC", Target: "NextInspectionDate", Convert: core.ConverterToDate},
			{Target: "StorageLocation", Default: "0001"},
			{Target: "BatchStatusKey", Default: ""},
			{Target: "FreeUseIndicator", Default: "X"},
			{Target: "ClassType", Default: "022"},
			{Target: "Class", Default: "BATCH_DEFAULT"},
			{Target: "AvailabilityDate", Default: "2025-01-01"},
			{Target: "LastGoodsReceiptDate", Default: ""},
			{Target: "BatchOriginType", Default: "MIG"},
			{Target: "TradingUnit", Default: ""},
			{Target: "InspectionLotNumber", Default: ""},
			{Target: "SupplierBatchCertificate", Default: ""},
			{Target: "DeletionFlag", Default: ""},
			{Target: "RestrictedUseStock", Default: "0.00"},
		},
		checks: core.QualityChecks{
			Required: []string{"Material", "Batch", "Plant"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"Material", "Batch", "Plant"},
			},
		},
		mock: func() []core.Record {
			records := make([]core.Record, 0, 45)
			for i := 0; i < 45; i++ {
				records = append(records, core.Record{
					"LMITNO": seqID("MAT-", 6, 10000+(i%15)*4),
					"LMBANO": fmt.Sprintf("b%04d%02d", 2500+i, i%10),
					"LMWHLO": pick(plantCodes, i),
					"LMPRDT": dateYYYYMMDD(2024, i*2),
					"LMEXPI": dateYYYYMMDD(2026, i*2),
					"LMSTAT": boolAlternating(i, 13),
					"LMSUNO": seqID("SUP", 5, 200+i%35),
					"LMORQT": float64(100 + 25*(i%9)),
					"LMUNMS": pick(unitCodes, i),
					"LMCERT": fmt.Sprintf("VB-%05d", 77000+i),
					"LMCNTY": pick(countryCodes, i),
					"LMQASC": dateYYYYMMDD(2025, i*3),
				})
			}
			return records
		},
	}}
}

func newMaterialInventoryBalance() core.MigrationObject {
	return &object{decl: declaration{
		id:    "MaterialInventoryBalance",
		name:  "Material Inventory Balance",
		table: "MITLOC",
		fields: []string{
			"MLITNO", "MLWHLO", "MLWHSL", "MLBANO", "MLSTQT", "MLALQT",
			"MLUNMS", "MLSTAS", "MLVADT", "MLCOST", "MLCUCD", "MLFIFO",
		},
		mappings: []core.FieldMappingRule{
			{Source: "MLITNO", Target: "Material", Convert: core.ConverterPadLeft40},
			{Source: "MLWHLO", Target: "Plant"},
			{Source: "MLWHSL", Target: "StorageLocation"},
			{Source: "MLBANO", Target: "Batch", Convert: core.ConverterToUpperCase},
			{Source: "MLSTQT", Target: "UnrestrictedStockQuantity", Convert: core.ConverterToDecimal},
			{Source: "MLALQT", Target: "AllocatedQuantity", Convert: core.ConverterToDecimal},
			{Source: "MLUNMS", Target: "BaseUnit", Convert: core.ConverterToUpperCase},
			{Source: "MLSTAS", Target: "StockIsBlocked", Convert: core.ConverterBoolYN},
			{Source: "MLVADT", Target: "CountDate", Convert: core.ConverterToDate},
			{Source: "MLCOST", Target: "StockValueAmount", Convert: core.ConverterToDecimal},
			{Source: "MLCUCD", Target: "Currency", Convert: core.ConverterToUpperCase},
			{Source: "MLFIFO", Target: "ValuationType"},
			{Target: "InventoryMovementType", Default: "561"},
			{Target: "PostingDate", Default: "2025-01-01"},
			{Target: "DocumentDate", Default: "2025-01-01"},
			{Target: "StockType", Default: ""},
			{Target: "SpecialStockIndicator", Default: ""},
			{Target: "QualityInspectionQuantity", Default: "0.00"},
			{Target: "BlockedStockQuantity", Default: "0.00"},
			{Target: "ReturnsQuantity", Default: "0.00"},
			{Target: "InTransitQuantity", Default: "0.00"},
			{Target: "ConsignmentIndicator", Default: ""},
			{Target: "FiscalYear", Default: "2025"},
			{Target: "MigrationDocumentHeaderText", Default: "OPENING STOCK"},
			{Target: "GoodsMovementCode", Default: "05"},
		},
		checks: core.QualityChecks{
			Required: []string{"Material", "Plant", "UnrestrictedStockQuantity"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"Material", "Plant", "StorageLocation", "Batch"},
			},
			Range: []core.RangeCheck{
				{Field: "UnrestrictedStockQuantity", Min: 0, Max: 1_000_000},
				{Field: "StockValueAmount", Min: 0, Max: 50_000_000},
			},
		},
		mock: func() []core.Record {
			records := make([]core.Record, 0, 80)
			for i := 0; i < 80; i++ {
				quantity := float64(50 + 12*(i%20))
				records = append(records, core.Record{
					"MLITNO": seqID("MAT-", 6, 10000+i%40),
					"MLWHLO": pick(plantCodes, i/20),
					"MLWHSL": pick([]string{"0001", "0002", "0010"}, i),
					"MLBANO": pick([]string{"", fmt.Sprintf("b%04d00", 2500+i%45)}, i%2),
					"MLSTQT": quantity,
					"MLALQT": float64(i % 15),
					"MLUNMS": pick(unitCodes, i),
					"MLSTAS": boolAlternating(i, 23),
					"MLVADT": dateYYYYMMDD(2025, i%28),
					"MLCOST": cents(quantity*14.2, 0, 0),
					"MLCUCD": "USD",
					"MLFIFO": pick([]string{"", "C1", "C2"}, i),
				})
			}
			return records
		},
	}}
}
