package objects

import (
	"fmt"

	"github.com/ib823/sapconnect-sub002/core"
)

func newFixedAssetMaster() core.MigrationObject {
	return &object{decl: declaration{
		id:    "FixedAssetMaster",
		name:  "Fixed Asset Master",
		table: "AMASSET",
		fields: []string{
			"ASSET_ID", "ASSET_DESC", "ASSET_CLASS", "COMPANY", "COST_CTR",
			"PLANT", "LOCATION", "SERIAL", "QUANTITY", "UNIT", "CAP_DATE",
			"USEFUL_YEARS", "DEPR_KEY", "VENDOR", "INVENTORY_NO", "STATUS",
		},
		mappings: []core.FieldMappingRule{
			{Source: "ASSET_ID", Target: "FixedAsset", Convert: core.ConverterPadLeft10},
			{Source: "ASSET_DESC", Target: "FixedAssetDescription"},
			{Source: "ASSET_CLASS", Target: "AssetClass", ValueMap: map[string]any{
				"BLDG": "00001100", "MACH": "00002000", "VEH": "00003100",
				"IT": "00003200", "FURN": "00003000",
			}, Default: "00002000"},
			{Source: "COMPANY", Target: "CompanyCode", Convert: core.ConverterPadLeft10},
			{Source: "COST_CTR", Target: "CostCenter", Convert: core.ConverterPadLeft10},
			{Source: "PLANT", Target: "Plant"},
			{Source: "LOCATION", Target: "AssetLocation"},
			{Source: "SERIAL", Target: "SerialNumber"},
			{Source: "QUANTITY", Target: "AssetQuantity", Convert: core.ConverterToDecimal},
			{Source: "UNIT", Target: "QuantityUnit", Convert: core.ConverterToUpperCase},
			{Source: "CAP_DATE", Target: "CapitalizationDate", Convert: core.ConverterToDate},
			{Source: "USEFUL_YEARS", Target: "PlannedUsefulLifeInYears", Convert: core.ConverterToInteger},
			{Source: "DEPR_KEY", Target: "DepreciationKey", ValueMap: map[string]any{
				"SL": "LINR", "DB": "DG20", "NONE": "0000",
			}, Default: "LINR"},
			{Source: "VENDOR", Target: "SupplierOfAsset", Convert: core.ConverterPadLeft10},
			{Source: "INVENTORY_NO", Target: "InventoryNumber"},
			{Source: "STATUS", Target: "IsMarkedForDeletion", Convert: core.ConverterBoolYN},
			{Target: "DepreciationArea", Default: "01"},
			{Target: "ChartOfDepreciation", Default: "YDEP"},
			{Target: "AssetSubnumber", Default: "0000"},
			{Target: "BusinessArea", Default: ""},
			{Target: "ResponsiblePerson", Default: ""},
			{Target: "EvaluationGroup1", Default: "MIG"},
			{Target: "InsuranceType", Default: ""},
			{Target: "ScrapValue", Default: "0.00"},
			{Target: "DataOriginType", Default: "MIG"},
			{Target: "AuthorizationGroup", Default: "MIGR"},
		},
		checks: core.QualityChecks{
			Required: []string{"FixedAsset", "FixedAssetDescription", "AssetClass", "CompanyCode"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"FixedAsset", "CompanyCode"},
			},
			Range: []core.RangeCheck{
				{Field: "PlannedUsefulLifeInYears", Min: 1, Max: 50},
				{Field: "AssetQuantity", Min: 0, Max: 1_000},
			},
		},
		mock: func() []core.Record {
			kinds := []string{"Warehouse Building", "CNC Mill", "Delivery Van", "Server Rack", "Office Furniture Set"}
			classes := []string{"BLDG", "MACH", "VEH", "IT", "FURN"}
			years := []string{"40", "12", "6", "4", "10"}
			records := make([]core.Record, 0, 40)
			for i := 0; i < 40; i++ {
				records = append(records, core.Record{
					"ASSET_ID":     fmt.Sprintf("FA%06d", 400000+i),
					"ASSET_DESC":   fmt.Sprintf("%s %02d", kinds[i%5], i/5+1),
					"ASSET_CLASS":  classes[i%5],
					"COMPANY":      pick(companyCodes, i/20),
					"COST_CTR":     fmt.Sprintf("CC%04d", 2000+(i%32)*10),
					"PLANT":        pick(plantCodes, i),
					"LOCATION":     pick(cityNames, i),
					"SERIAL":       seqID("SN", 8, 55000000+i*13),
					"QUANTITY":     "1",
					"UNIT":         "ea",
					"CAP_DATE":     dateYYYYMMDD(2012, i*9),
					"USEFUL_YEARS": years[i%5],
					"DEPR_KEY":     pick([]string{"SL", "SL", "DB", "NONE"}, i),
					"VENDOR":       seqID("V", 6, 500000+i%35),
					"INVENTORY_NO": fmt.Sprintf("INV-%04d", 1000+i),
					"STATUS":       boolAlternating(i, 19),
				})
			}
			return records
		},
	}}
}

func newAssetBalance() core.MigrationObject {
	return &object{decl: declaration{
		id:    "AssetBalance",
		name:  "Asset Balance",
		table: "AMASSETVAL",
		fields: []string{
			"ASSET_ID", "COMPANY", "DEPR_AREA", "FISCAL_YEAR", "ACQ_VALUE",
			"ACC_DEPR", "YTD_DEPR", "CURR", "ACQ_DATE",
		},
		mappings: []core.FieldMappingRule{
			{Source: "ASSET_ID", Target: "FixedAsset", Convert: core.ConverterPadLeft10},
			{Source: "COMPANY", Target: "CompanyCode", Convert: core.ConverterPadLeft10},
			{Source: "DEPR_AREA", Target: "DepreciationArea"},
			{Source: "FISCAL_YEAR", Target: "FiscalYear"},
			{Source: "ACQ_VALUE", Target: "AcquisitionValue", Convert: core.ConverterToDecimal},
			{Source: "ACC_DEPR", Target: "AccumulatedDepreciation", Convert: core.ConverterToDecimal},
			{Source: "YTD_DEPR", Target: "YearToDateDepreciation", Convert: core.ConverterToDecimal},
			{Source: "CURR", Target: "Currency", Convert: core.ConverterToUpperCase},
			{Source: "ACQ_DATE", Target: "OriginalAcquisitionDate", Convert: core.ConverterToDate},
			{Target: "AssetSubnumber", Default: "0000"},
			{Target: "TransactionType", Default: "100"},
			{Target: "PostingPeriod", Default: "001"},
			{Target: "OffsettingAccount", Default: "0000199990"},
			{Target: "DocumentType", Default: "AA"},
			{Target: "MigrationDocumentHeaderText", Default: "ASSET TAKEOVER"},
			{Target: "InvestmentSupportKey", Default: ""},
			{Target: "RevaluationAmount", Default: "0.00"},
			{Target: "UnplannedDepreciation", Default: "0.00"},
			{Target: "SpecialDepreciation", Default: "0.00"},
			{Target: "InterestAmount", Default: "0.00"},
			{Target: "QuantityPosted", Default: "0"},
			{Target: "ReferenceDocument", Default: ""},
			{Target: "CreatedByUser", Default: "MIGRATION"},
			{Target: "DataOriginType", Default: "MIG"},
			{Target: "AuthorizationGroup", Default: "MIGR"},
		},
		checks: core.QualityChecks{
			Required: []string{"FixedAsset", "CompanyCode", "AcquisitionValue"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"FixedAsset", "CompanyCode", "DepreciationArea", "FiscalYear"},
			},
			Range: []core.RangeCheck{
				{Field: "AcquisitionValue", Min: 0, Max: 20_000_000},
				{Field: "AccumulatedDepreciation", Min: 0, Max: 20_000_000},
			},
		},
		mock: func() []core.Record {
			records := make([]core.Record, 0, 40)
			for i := 0; i < 40; i++ {
				acq := cents(25000, 4180.40, i)
				records = append(records, core.Record{
					"ASSET_ID":    fmt.Sprintf("FA%06d", 400000+i),
					"COMPANY":     pick(companyCodes, i/20),
					"DEPR_AREA":   "01",
					"FISCAL_YEAR": "2025",
					"ACQ_VALUE":   acq,
					"ACC_DEPR":    cents(0, acq/10, i%8),
					"YTD_DEPR":    cents(0, acq/120, i%6),
					"CURR":        "usd",
					"ACQ_DATE":    dateYYYYMMDD(2012, i*9),
				})
			}
			return records
		},
	}}
}

func newEquipmentMaster() core.MigrationObject {
	return &object{decl: declaration{
		id:    "EquipmentMaster",
		name:  "Equipment Master",
		table: "PMEQUIP",
		fields: []string{
			"EQUIP_ID", "EQUIP_DESC", "EQUIP_TYPE", "PLANT", "FUNC_LOC",
			"COST_CTR", "MANUFACTURER", "MODEL", "SERIAL", "CONSTR_YEAR",
			"WEIGHT", "WEIGHT_UNIT", "INSTALL_DT", "STATUS", "CRITICALITY",
		},
		mappings: []core.FieldMappingRule{
			{Source: "EQUIP_ID", Target: "Equipment", Convert: core.ConverterPadLeft10},
			{Source: "EQUIP_DESC", Target: "EquipmentName"},
			{Source: "EQUIP_TYPE", Target: "EquipmentCategory", ValueMap: map[string]any{
				"MACH": "M", "PROD": "P", "TEST": "Q", "VEH": "S",
			}, Default: "M"},
			{Source: "PLANT", Target: "MaintenancePlant"},
			{Source: "FUNC_LOC", Target: "FunctionalLocation", Convert: core.ConverterToUpperCase},
			{Source: "COST_CTR", Target: "CostCenter", Convert: core.ConverterPadLeft10},
			{Source: "MANUFACTURER", Target: "ManufacturerName"},
			{Source: "MODEL", Target: "ManufacturerModelNumber"},
			{Source: "SERIAL", Target: "ManufacturerSerialNumber"},
			{Source: "CONSTR_YEAR", Target: "ConstructionYear"},
			{Source: "WEIGHT", Target: "GrossWeight", Convert: core.ConverterToDecimal},
			{Source: "WEIGHT_UNIT", Target: "WeightUnit", Convert: core.ConverterToUpperCase},
			{Source: "INSTALL_DT", Target: "InstallationDate", Convert: core.ConverterToDate},
			{Source: "STATUS", Target: "IsMarkedForDeletion", Convert: core.ConverterBoolYN},
			{Source: "CRITICALITY", Target: "ABCIndicator", ValueMap: map[string]any{
				"HIGH": "A", "MED": "B", "LOW": "C",
			}, Default: "B"},
			{Target: "PlanningPlant", Default: "1000"},
			{Target: "PlannerGroup", Default: "100"},
			{Target: "MainWorkCenter", Default: "MAINT01"},
			{Target: "TechnicalObjectType", Default: "1000"},
			{Target: "MaintenancePlanningGroup", Default: ""},
			{Target: "AcquisitionValue", Default: "0.00"},
			{Target: "WarrantyEndDate", Default: ""},
			{Target: "CatalogProfile", Default: "YMIG"},
			{Target: "DataOriginType", Default: "MIG"},
			{Target: "AuthorizationGroup", Default: "MIGR"},
		},
		checks: core.QualityChecks{
			Required: []string{"Equipment", "EquipmentName", "MaintenancePlant"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"Equipment"},
			},
			Range: []core.RangeCheck{
				{Field: "GrossWeight", Min: 0, Max: 100_000},
			},
		},
		mock: func() []core.Record {
			kinds := []string{"Hydraulic Press", "Conveyor Drive", "Test Bench", "Forklift", "Packaging Line"}
			makers := []string{"Siemens", "ABB", "Fanuc", "Toyota", "Bosch"}
			records := make([]core.Record, 0, 35)
			for i := 0; i < 35; i++ {
				records = append(records, core.Record{
					"EQUIP_ID":     fmt.Sprintf("EQ%06d", 700000+i),
					"EQUIP_DESC":   fmt.Sprintf("%s %02d", kinds[i%5], i/5+1),
					"EQUIP_TYPE":   pick([]string{"MACH", "PROD", "TEST", "VEH"}, i),
					"PLANT":        pick(plantCodes, i),
					"FUNC_LOC":     fmt.Sprintf("fl-%s-%02d", pick(plantCodes, i), i%12),
					"COST_CTR":     fmt.Sprintf("CC%04d", 2000+(i%32)*10),
					"MANUFACTURER": makers[i%5],
					"MODEL":        fmt.Sprintf("MDL-%03d", 100+i*3),
					"SERIAL":       seqID("EQS", 9, 120000000+i*17),
					"CONSTR_YEAR":  fmt.Sprintf("%d", 2005+i%18),
					"WEIGHT":       cents(120, 85.5, i),
					"WEIGHT_UNIT":  "kg",
					"INSTALL_DT":   dateYYYYMMDD(2015, i*11),
					"STATUS":       boolAlternating(i, 23),
					"CRITICALITY":  pick([]string{"HIGH", "MED", "MED", "LOW"}, i),
				})
			}
			return records
		},
	}}
}

func newFunctionalLocation() core.MigrationObject {
	return &object{decl: declaration{
		id:    "FunctionalLocation",
		name:  "Functional Location",
		table: "PMFUNCLOC",
		fields: []string{
			"FUNC_LOC", "FL_DESC", "FL_CATEGORY", "PLANT", "PARENT_FL",
			"COST_CTR", "STRUCTURE", "SORT_FIELD", "STATUS",
		},
		mappings: []core.FieldMappingRule{
			{Source: "FUNC_LOC", Target: "FunctionalLocation", Convert: core.ConverterToUpperCase},
			{Source: "FL_DESC", Target: "FunctionalLocationName"},
			{Source: "FL_CATEGORY", Target: "FunctionalLocationCategory", ValueMap: map[string]any{
				"SITE": "1", "BLDG": "2", "LINE": "3", "STATION": "4",
			}, Default: "3"},
			{Source: "PLANT", Target: "MaintenancePlant"},
			{Source: "PARENT_FL", Target: "SuperiorFunctionalLocation", Convert: core.ConverterToUpperCase},
			{Source: "COST_CTR", Target: "CostCenter", Convert: core.ConverterPadLeft10},
			{Source: "STRUCTURE", Target: "StructureIndicator"},
			{Source: "SORT_FIELD", Target: "SortField", Convert: core.ConverterToUpperCase},
			{Source: "STATUS", Target: "IsMarkedForDeletion", Convert: core.ConverterBoolYN},
			{Target: "PlanningPlant", Default: "1000"},
			{Target: "PlannerGroup", Default: "100"},
			{Target: "MainWorkCenter", Default: "MAINT01"},
			{Target: "CompanyCode", Default: "1000"},
			{Target: "TechnicalObjectType", Default: "1000"},
			{Target: "ABCIndicator", Default: "B"},
			{Target: "MaintenancePlanningGroup", Default: ""},
			{Target: "EquipmentInstallationAllowed", Default: "X"},
			{Target: "SingleEquipmentInstallation", Default: ""},
			{Target: "PositionNumber", Default: ""},
			{Target: "ConstructionType", Default: ""},
			{Target: "CatalogProfile", Default: "YMIG"},
			{Target: "Language", Default: "EN"},
			{Target: "CreatedByUser", Default: "MIGRATION"},
			{Target: "DataOriginType", Default: "MIG"},
			{Target: "AuthorizationGroup", Default: "MIGR"},
		},
		checks: core.QualityChecks{
			Required: []string{"FunctionalLocation", "FunctionalLocationName", "MaintenancePlant"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"FunctionalLocation"},
			},
		},
		mock: func() []core.Record {
			levels := []string{"Production Line", "Packing Station", "Utility Area", "Storage Zone"}
			records := make([]core.Record, 0, 28)
			for i := 0; i < 28; i++ {
				plant := pick(plantCodes, i)
				records = append(records, core.Record{
					"FUNC_LOC":    fmt.Sprintf("fl-%s-%02d", plant, i%12),
					"FL_DESC":     fmt.Sprintf("%s %02d", levels[i%4], i/4+1),
					"FL_CATEGORY": pick([]string{"SITE", "BLDG", "LINE", "LINE", "STATION"}, i),
					"PLANT":       plant,
					"PARENT_FL":   fmt.Sprintf("fl-%s", plant),
					"COST_CTR":    fmt.Sprintf("CC%04d", 2000+(i%32)*10),
					"STRUCTURE":   "YPM1",
					"SORT_FIELD":  fmt.Sprintf("sort%02d", i),
					"STATUS":      boolAlternating(i, 25),
				})
			}
			return records
		},
	}}
}

func newMaintenancePlan() core.MigrationObject {
	return &object{decl: declaration{
		id:    "MaintenancePlan",
		name:  "Maintenance Plan",
		table: "PMPLAN",
		fields: []string{
			"PLAN_ID", "PLAN_DESC", "EQUIP_ID", "FUNC_LOC", "CYCLE_DAYS",
			"CYCLE_UNIT", "PLAN_TYPE", "WORK_CTR", "TASK_LIST", "START_DT",
			"STATUS",
		},
		mappings: []core.FieldMappingRule{
			{Source: "PLAN_ID", Target: "MaintenancePlan", Convert: core.ConverterPadLeft10},
			{Source: "PLAN_DESC", Target: "MaintenancePlanName"},
			{Source: "EQUIP_ID", Target: "Equipment", Convert: core.ConverterPadLeft10},
			{Source: "FUNC_LOC", Target: "FunctionalLocation", Convert: core.ConverterToUpperCase},
			{Source: "CYCLE_DAYS", Target: "CycleLength", Convert: core.ConverterToInteger},
			{Source: "CYCLE_UNIT", Target: "CycleUnit", ValueMap: map[string]any{
				"D": "TAG", "W": "WCH", "M": "MON", "Y": "JHR",
			}, Default: "TAG"},
			{Source: "PLAN_TYPE", Target: "MaintenancePlanCategory", ValueMap: map[string]any{
				"PM": "PM", "INSP": "IN", "CAL": "CA",
			}, Default: "PM"},
			{Source: "WORK_CTR", Target: "MainWorkCenter", Convert: core.ConverterToUpperCase},
			{Source: "TASK_LIST", Target: "TaskListGroup"},
			{Source: "START_DT", Target: "CycleStartDate", Convert: core.ConverterToDate},
			{Source: "STATUS", Target: "IsMarkedForDeletion", Convert: core.ConverterBoolYN},
			{Target: "MaintenancePlanSortField", Default: "MIG"},
			{Target: "SchedulingPeriod", Default: "365"},
			{Target: "SchedulingPeriodUnit", Default: "TAG"},
			{Target: "CallHorizon", Default: "80"},
			{Target: "CompletionRequirement", Default: ""},
			{Target: "ShiftFactorLateCompletion", Default: "0"},
			{Target: "ShiftFactorEarlyCompletion", Default: "0"},
			{Target: "ToleranceLateCompletion", Default: "10"},
			{Target: "ToleranceEarlyCompletion", Default: "10"},
			{Target: "OrderType", Default: "PM01"},
			{Target: "PlanningPlant", Default: "1000"},
			{Target: "PlannerGroup", Default: "100"},
			{Target: "TaskListType", Default: "A"},
			{Target: "DataOriginType", Default: "MIG"},
		},
		checks: core.QualityChecks{
			Required: []string{"MaintenancePlan", "MaintenancePlanName", "CycleLength"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"MaintenancePlan"},
			},
			Range: []core.RangeCheck{
				{Field: "CycleLength", Min: 1, Max: 3650},
			},
		},
		mock: func() []core.Record {
			tasks := []string{"Lubrication Round", "Safety Inspection", "Calibration Check", "Filter Replacement"}
			cycles := []string{"30", "90", "180", "365"}
			records := make([]core.Record, 0, 25)
			for i := 0; i < 25; i++ {
				records = append(records, core.Record{
					"PLAN_ID":    fmt.Sprintf("MP%05d", 30000+i),
					"PLAN_DESC":  fmt.Sprintf("%s %02d", tasks[i%4], i/4+1),
					"EQUIP_ID":   fmt.Sprintf("EQ%06d", 700000+i%35),
					"FUNC_LOC":   fmt.Sprintf("fl-%s-%02d", pick(plantCodes, i), i%12),
					"CYCLE_DAYS": cycles[i%4],
					"CYCLE_UNIT": "D",
					"PLAN_TYPE":  pick([]string{"PM", "PM", "INSP", "CAL"}, i),
					"WORK_CTR":   pick([]string{"maint01", "maint02"}, i),
					"TASK_LIST":  fmt.Sprintf("TL%03d", 100+i%8),
					"START_DT":   dateYYYYMMDD(2025, i*3),
					"STATUS":     boolAlternating(i, 24),
				})
			}
			return records
		},
	}}
}
