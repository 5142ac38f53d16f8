package objects

import (
	"fmt"

	"github.com/ib823/sapconnect-sub002/core"
)

func newWorkCenter() core.MigrationObject {
	return &object{decl: declaration{
		id:    "WorkCenter",
		name:  "Work Center",
		table: "PDWCTR",
		fields: []string{
			"WC_ID", "WC_DESC", "PLANT", "WC_CATEGORY", "COST_CTR", "ACT_TYPE",
			"CAPACITY", "CAP_UNIT", "SHIFTS", "EFFICIENCY", "PERSON", "STATUS",
		},
		mappings: []core.FieldMappingRule{
			{Source: "WC_ID", Target: "WorkCenter", Convert: core.ConverterToUpperCase},
			{Source: "WC_DESC", Target: "WorkCenterName"},
			{Source: "PLANT", Target: "Plant"},
			{Source: "WC_CATEGORY", Target: "WorkCenterCategory", ValueMap: map[string]any{
				"MACH": "0001", "LAB": "0003", "LINE": "0007",
			}, Default: "0001"},
			{Source: "COST_CTR", Target: "CostCenter", Convert: core.ConverterPadLeft10},
			{Source: "ACT_TYPE", Target: "ActivityType", Convert: core.ConverterToUpperCase},
			{Source: "CAPACITY", Target: "CapacityQuantity", Convert: core.ConverterToDecimal},
			{Source: "CAP_UNIT", Target: "CapacityUnit", Convert: core.ConverterToUpperCase},
			{Source: "SHIFTS", Target: "NumberOfShifts", Convert: core.ConverterToInteger},
			{Source: "EFFICIENCY", Target: "EfficiencyRate", Convert: core.ConverterToDecimal},
			{Source: "PERSON", Target: "PersonResponsible"},
			{Source: "STATUS", Target: "IsMarkedForDeletion", Convert: core.ConverterBoolYN},
			{Target: "ControllingArea", Default: "A000"},
			{Target: "CapacityCategory", Default: "001"},
			{Target: "StandardValueKey", Default: "SAP1"},
			{Target: "UsageInTaskLists", Default: "009"},
			{Target: "FormulaSetup", Default: "SAP005"},
			{Target: "FormulaProcessing", Default: "SAP006"},
			{Target: "FactoryCalendar", Default: "01"},
			{Target: "StartTime", Default: "060000"},
			{Target: "EndTime", Default: "220000"},
			{Target: "BreakDuration", Default: "010000"},
			{Target: "CapacityPlannerGroup", Default: "100"},
			{Target: "Language", Default: "EN"},
			{Target: "DataOriginType", Default: "MIG"},
		},
		checks: core.QualityChecks{
			Required: []string{"WorkCenter", "WorkCenterName", "Plant"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"WorkCenter", "Plant"},
			},
			Range: []core.RangeCheck{
				{Field: "EfficiencyRate", Min: 10, Max: 150},
				{Field: "NumberOfShifts", Min: 1, Max: 4},
			},
		},
		mock: func() []core.Record {
			kinds := []string{"Milling Cell", "Assembly Bench", "Paint Line", "Welding Station"}
			records := make([]core.Record, 0, 24)
			for i := 0; i < 24; i++ {
				records = append(records, core.Record{
					"WC_ID":       fmt.Sprintf("wc%04d", 1000+i),
					"WC_DESC":     fmt.Sprintf("%s %02d", kinds[i%4], i/4+1),
					"PLANT":       pick(plantCodes, i),
					"WC_CATEGORY": pick([]string{"MACH", "MACH", "LAB", "LINE"}, i),
					"COST_CTR":    fmt.Sprintf("CC%04d", 2000+(i%32)*10),
					"ACT_TYPE":    pick([]string{"act00", "act01", "act02"}, i),
					"CAPACITY":    cents(8, 0.5, i%6),
					"CAP_UNIT":    "hr",
					"SHIFTS":      fmt.Sprintf("%d", 1+i%3),
					"EFFICIENCY":  cents(85, 1.25, i%10),
					"PERSON":      fmt.Sprintf("Supervisor %02d", i),
					"STATUS":      boolAlternating(i, 23),
				})
			}
			return records
		},
	}}
}

func newMaterialBOM() core.MigrationObject {
	return &object{decl: declaration{
		id:    "MaterialBOM",
		name:  "Material BOM",
		table: "PDBOM",
		fields: []string{
			"PARENT_ITEM", "PLANT", "ITEM_NO", "COMP_ITEM", "COMP_QTY",
			"COMP_UNIT", "ITEM_CAT", "VALID_FROM", "SCRAP_PCT", "BASE_QTY",
			"ALT_BOM", "STATUS",
		},
		mappings: []core.FieldMappingRule{
			{Source: "PARENT_ITEM", Target: "Material", Convert: core.ConverterPadLeft40},
			{Source: "PLANT", Target: "Plant"},
			{Source: "ITEM_NO", Target: "BOMItemNumber", Convert: core.ConverterPadLeft10},
			{Source: "COMP_ITEM", Target: "BOMComponent", Convert: core.ConverterPadLeft40},
			{Source: "COMP_QTY", Target: "ComponentQuantity", Convert: core.ConverterToDecimal},
			{Source: "COMP_UNIT", Target: "ComponentUnit", Convert: core.ConverterToUpperCase},
			{Source: "ITEM_CAT", Target: "BOMItemCategory", ValueMap: map[string]any{
				"STK": "L", "NONSTK": "N", "TEXT": "T", "DOC": "D",
			}, Default: "L"},
			{Source: "VALID_FROM", Target: "ValidFromDate", Convert: core.ConverterToDate},
			{Source: "SCRAP_PCT", Target: "ComponentScrapPercent", Convert: core.ConverterToDecimal},
			{Source: "BASE_QTY", Target: "BaseQuantity", Convert: core.ConverterToDecimal},
			{Source: "ALT_BOM", Target: "AlternativeBOM"},
			{Source: "STATUS", Target: "IsMarkedForDeletion", Convert: core.ConverterBoolYN},
			{Target: "BOMUsage", Default: "1"},
			{Target: "BOMStatus", Default: "01"},
			{Target: "BOMCategory", Default: "M"},
			{Target: "BaseUnit", Default: "PCS"},
			{Target: "IsFixedQuantity", Default: ""},
			{Target: "IsBulkMaterial", Default: ""},
			{Target: "IsCostingRelevant", Default: "X"},
			{Target: "IsProductionRelevant", Default: "X"},
			{Target: "SortString", Default: ""},
			{Target: "IssueStorageLocation", Default: "0001"},
			{Target: "LeadTimeOffset", Default: "0"},
			{Target: "OperationAssignment", Default: "0010"},
			{Target: "DataOriginType", Default: "MIG"},
		},
		checks: core.QualityChecks{
			Required: []string{"Material", "Plant", "BOMComponent", "ComponentQuantity"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"Material", "Plant", "AlternativeBOM", "BOMItemNumber"},
			},
			Range: []core.RangeCheck{
				{Field: "ComponentQuantity", Min: 0.001, Max: 10_000},
				{Field: "ComponentScrapPercent", Min: 0, Max: 25},
			},
		},
		mock: func() []core.Record {
			records := make([]core.Record, 0, 60)
			for i := 0; i < 60; i++ {
				parent := i / 6 // ten finished items, six components each
				records = append(records, core.Record{
					"PARENT_ITEM": seqID("ITM", 6, 100000+parent),
					"PLANT":       pick(plantCodes, parent),
					"ITEM_NO":     fmt.Sprintf("%04d", (i%6+1)*10),
					"COMP_ITEM":   seqID("ITM", 6, 100020+i%40),
					"COMP_QTY":    cents(1, 0.25, i%12),
					"COMP_UNIT":   pick(unitCodes, i),
					"ITEM_CAT":    pick([]string{"STK", "STK", "STK", "NONSTK"}, i),
					"VALID_FROM":  "20240101",
					"SCRAP_PCT":   cents(0, 0.5, i%8),
					"BASE_QTY":    "1",
					"ALT_BOM":     "01",
					"STATUS":      boolAlternating(i, 37),
				})
			}
			return records
		},
	}}
}

func newRouting() core.MigrationObject {
	return &object{decl: declaration{
		id:    "Routing",
		name:  "Routing",
		table: "PDROUTING",
		fields: []string{
			"ITEM", "PLANT", "OPER_NO", "WORK_CTR", "OPER_DESC", "CONTROL_KEY",
			"SETUP_TIME", "MACHINE_TIME", "LABOR_TIME", "TIME_UNIT", "BASE_QTY",
			"VALID_FROM", "STATUS",
		},
		mappings: []core.FieldMappingRule{
			{Source: "ITEM", Target: "Material", Convert: core.ConverterPadLeft40},
			{Source: "PLANT", Target: "Plant"},
			{Source: "OPER_NO", Target: "OperationNumber"},
			{Source: "WORK_CTR", Target: "WorkCenter", Convert: core.ConverterToUpperCase},
			{Source: "OPER_DESC", Target: "OperationText"},
			{Source: "CONTROL_KEY", Target: "ControlKey", ValueMap: map[string]any{
				"INT": "PP01", "EXT": "PP02", "QC": "PP03",
			}, Default: "PP01"},
			{Source: "SETUP_TIME", Target: "SetupTime", Convert: core.ConverterToDecimal},
			{Source: "MACHINE_TIME", Target: "MachineTime", Convert: core.ConverterToDecimal},
			{Source: "LABOR_TIME", Target: "LaborTime", Convert: core.ConverterToDecimal},
			{Source: "TIME_UNIT", Target: "TimeUnit", Convert: core.ConverterToUpperCase},
			{Source: "BASE_QTY", Target: "BaseQuantity", Convert: core.ConverterToDecimal},
			{Source: "VALID_FROM", Target: "ValidFromDate", Convert: core.ConverterToDate},
			{Source: "STATUS", Target: "IsMarkedForDeletion", Convert: core.ConverterBoolYN},
			{Target: "TaskListType", Default: "N"},
			{Target: "TaskListGroup", Default: ""},
			{Target: "GroupCounter", Default: "01"},
			{Target: "TaskListUsage", Default: "1"},
			{Target: "TaskListStatus", Default: "4"},
			{Target: "LotSizeFrom", Default: "1"},
			{Target: "LotSizeTo", Default: "99999999"},
			{Target: "OperationUnit", Default: "PCS"},
			{Target: "NumberOfTimeTickets", Default: "1"},
			{Target: "Language", Default: "EN"},
			{Target: "PlannerGroup", Default: "100"},
			{Target: "DataOriginType", Default: "MIG"},
		},
		checks: core.QualityChecks{
			Required: []string{"Material", "Plant", "OperationNumber", "WorkCenter"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"Material", "Plant", "OperationNumber"},
			},
			Range: []core.RangeCheck{
				{Field: "SetupTime", Min: 0, Max: 480},
				{Field: "MachineTime", Min: 0, Max: 960},
			},
		},
		mock: func() []core.Record {
			steps := []string{"Cut raw stock", "Mill profile", "Drill and tap", "Assemble subunit", "Final inspection"}
			records := make([]core.Record, 0, 50)
			for i := 0; i < 50; i++ {
				parent := i / 5 // ten routed items, five operations each
				records = append(records, core.Record{
					"ITEM":         seqID("ITM", 6, 100000+parent),
					"PLANT":        pick(plantCodes, parent),
					"OPER_NO":      fmt.Sprintf("%04d", (i%5+1)*10),
					"WORK_CTR":     fmt.Sprintf("wc%04d", 1000+i%24),
					"OPER_DESC":    steps[i%5],
					"CONTROL_KEY":  pick([]string{"INT", "INT", "INT", "QC"}, i),
					"SETUP_TIME":   cents(10, 2.5, i%8),
					"MACHINE_TIME": cents(5, 1.75, i%12),
					"LABOR_TIME":   cents(3, 0.5, i%10),
					"TIME_UNIT":    "min",
					"BASE_QTY":     "1",
					"VALID_FROM":   "20240101",
					"STATUS":       boolAlternating(i, 41),
				})
			}
			return records
		},
	}}
}

func newProductionVersion() core.MigrationObject {
	return &object{decl: declaration{
		id:    "ProductionVersion",
		name:  "Production Version",
		table: "PDPRODVER",
		fields: []string{
			"ITEM", "PLANT", "VERSION", "VERSION_DESC", "ALT_BOM", "ROUTING_GRP",
			"LOT_FROM", "LOT_TO", "VALID_FROM", "VALID_TO", "STATUS",
		},
		mappings: []core.FieldMappingRule{
			{Source: "ITEM", Target: "Material", Convert: core.ConverterPadLeft40},
			{Source: "PLANT", Target: "Plant"},
			{Source: "VERSION", Target: "ProductionVersion"},
			{Source: "VERSION_DESC", Target: "ProductionVersionText"},
			{Source: "ALT_BOM", Target: "AlternativeBOM"},
			{Source: "ROUTING_GRP", Target: "TaskListGroup"},
			{Source: "LOT_FROM", Target: "MinimumLotSize", Convert: core.ConverterToDecimal},
			{Source: "LOT_TO", Target: "MaximumLotSize", Convert: core.ConverterToDecimal},
			{Source: "VALID_FROM", Target: "ValidFromDate", Convert: core.ConverterToDate},
			{Source: "VALID_TO", Target: "ValidToDate", Convert: core.ConverterToDate},
			{Source: "STATUS", Target: "IsLocked", Convert: core.ConverterBoolYN},
			{Target: "BOMUsage", Default: "1"},
			{Target: "TaskListType", Default: "N"},
			{Target: "GroupCounter", Default: "01"},
			{Target: "ProductionLine", Default: ""},
			{Target: "PlanningGroup", Default: ""},
			{Target: "ReceivingStorageLocation", Default: "0001"},
			{Target: "IssueStorageLocation", Default: "0001"},
			{Target: "DistributionKey", Default: ""},
			{Target: "RepetitiveManufacturingAllowed", Default: ""},
			{Target: "ApportionmentStructure", Default: ""},
			{Target: "CheckStatus", Default: "OK"},
			{Target: "LastCheckDate", Default: "2025-06-01"},
			{Target: "CreatedByUser", Default: "MIGRATION"},
			{Target: "DataOriginType", Default: "MIG"},
		},
		checks: core.QualityChecks{
			Required: []string{"Material", "Plant", "ProductionVersion"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"Material", "Plant", "ProductionVersion"},
			},
			Range: []core.RangeCheck{
				{Field: "MinimumLotSize", Min: 0, Max: 100_000},
			},
		},
		mock: func() []core.Record {
			records := make([]core.Record, 0, 20)
			for i := 0; i < 20; i++ {
				parent := i / 2 // ten routed items, up to two versions each
				records = append(records, core.Record{
					"ITEM":         seqID("ITM", 6, 100000+parent),
					"PLANT":        pick(plantCodes, parent),
					"VERSION":      fmt.Sprintf("%04d", 1+i%2),
					"VERSION_DESC": fmt.Sprintf("Standard line %d", 1+i%2),
					"ALT_BOM":      "01",
					"ROUTING_GRP":  fmt.Sprintf("RG%03d", 100+parent),
					"LOT_FROM":     "1",
					"LOT_TO":       "99999",
					"VALID_FROM":   "20240101",
					"VALID_TO":     "99991231",
					"STATUS":       boolAlternating(i, 15),
				})
			}
			return records
		},
	}}
}

func newProductionOrder() core.MigrationObject {
	return &object{decl: declaration{
		id:    "ProductionOrder",
		name:  "Production Order",
		table: "PDORDER",
		fields: []string{
			"ORDER_NO", "ITEM", "PLANT", "ORDER_QTY", "DELIVERED_QTY", "UNIT",
			"ORDER_TYPE", "START_DT", "FINISH_DT", "VERSION", "STATUS",
			"PRIORITY", "SALES_ORDER",
		},
		mappings: []core.FieldMappingRule{
			{Source: "ORDER_NO", Target: "ManufacturingOrder", Convert: core.ConverterPadLeft10},
			{Source: "ITEM", Target: "Material", Convert: core.ConverterPadLeft40},
			{Source: "PLANT", Target: "ProductionPlant"},
			{Source: "ORDER_QTY", Target: "TotalQuantity", Convert: core.ConverterToDecimal},
			{Source: "DELIVERED_QTY", Target: "DeliveredQuantity", Convert: core.ConverterToDecimal},
			{Source: "UNIT", Target: "ProductionUnit", Convert: core.ConverterToUpperCase},
			{Source: "ORDER_TYPE", Target: "ManufacturingOrderType", ValueMap: map[string]any{
				"STD": "PP01", "RWK": "PP02", "ENG": "PP03",
			}, Default: "PP01"},
			{Source: "START_DT", Target: "ScheduledStartDate", Convert: core.ConverterToDate},
			{Source: "FINISH_DT", Target: "ScheduledEndDate", Convert: core.ConverterToDate},
			{Source: "VERSION", Target: "ProductionVersion"},
			{Source: "STATUS", Target: "IsReleased", Convert: core.ConverterBoolYN},
			{Source: "PRIORITY", Target: "OrderPriority", Convert: core.ConverterToInteger},
			{Source: "SALES_ORDER", Target: "SalesOrder", Convert: core.ConverterPadLeft10},
			{Target: "MRPController", Default: "001"},
			{Target: "ProductionSupervisor", Default: "100"},
			{Target: "SchedulingType", Default: "2"},
			{Target: "ReceivingStorageLocation", Default: "0001"},
			{Target: "OrderCurrency", Default: "USD"},
			{Target: "CostingVariant", Default: "PPP1"},
			{Target: "ScrapQuantity", Default: "0"},
			{Target: "ConfirmedYieldQuantity", Default: "0"},
			{Target: "GoodsRecipient", Default: ""},
			{Target: "UnloadingPoint", Default: ""},
			{Target: "MigrationDocumentHeaderText", Default: "OPEN PRODUCTION ORDER"},
			{Target: "DataOriginType", Default: "MIG"},
		},
		checks: core.QualityChecks{
			Required: []string{"ManufacturingOrder", "Material", "ProductionPlant", "TotalQuantity"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"ManufacturingOrder"},
			},
			Range: []core.RangeCheck{
				{Field: "TotalQuantity", Min: 1, Max: 1_000_000},
				{Field: "OrderPriority", Min: 1, Max: 9},
			},
		},
		mock: func() []core.Record {
			records := make([]core.Record, 0, 45)
			for i := 0; i < 45; i++ {
				qty := cents(50, 27.5, i%14)
				records = append(records, core.Record{
					"ORDER_NO":      fmt.Sprintf("PO%06d", 800000+i),
					"ITEM":          seqID("ITM", 6, 100000+i%10),
					"PLANT":         pick(plantCodes, i),
					"ORDER_QTY":     qty,
					"DELIVERED_QTY": cents(0, qty/5, i%4),
					"UNIT":          "pcs",
					"ORDER_TYPE":    pick([]string{"STD", "STD", "STD", "RWK", "ENG"}, i),
					"START_DT":      dateYYYYMMDD(2025, 200+i),
					"FINISH_DT":     dateYYYYMMDD(2025, 214+i),
					"VERSION":       fmt.Sprintf("%04d", 1+i%2),
					"STATUS":        boolAlternating(i, 3),
					"PRIORITY":      fmt.Sprintf("%d", 1+i%5),
					"SALES_ORDER":   seqID("SO", 6, 900000+i%30),
				})
			}
			return records
		},
	}}
}

func newPlannedIndependentRequirement() core.MigrationObject {
	return &object{decl: declaration{
		id:    "PlannedIndependentRequirement",
		name:  "Planned Independent Requirement",
		table: "PDFORECAST",
		fields: []string{
			"ITEM", "PLANT", "PERIOD", "REQ_QTY", "UNIT", "VERSION", "ACTIVE",
		},
		mappings: []core.FieldMappingRule{
			{Source: "ITEM", Target: "Material", Convert: core.ConverterPadLeft40},
			{Source: "PLANT", Target: "Plant"},
			{Source: "PERIOD", Target: "PeriodStartDate", Convert: core.ConverterToDate},
			{Source: "REQ_QTY", Target: "PlannedQuantity", Convert: core.ConverterToDecimal},
			{Source: "UNIT", Target: "BaseUnit", Convert: core.ConverterToUpperCase},
			{Source: "VERSION", Target: "RequirementsPlanVersion"},
			{Source: "ACTIVE", Target: "IsActiveVersion", Convert: core.ConverterBoolYN},
			{Target: "RequirementsType", Default: "LSF"},
			{Target: "PeriodType", Default: "M"},
			{Target: "RequirementSegment", Default: ""},
			{Target: "MRPArea", Default: ""},
			{Target: "WithdrawalQuantity", Default: "0"},
			{Target: "ProductionVersion", Default: ""},
			{Target: "PlanningMaterial", Default: ""},
			{Target: "ConsumptionMode", Default: "2"},
			{Target: "BackwardConsumptionPeriods", Default: "030"},
			{Target: "ForwardConsumptionPeriods", Default: "030"},
			{Target: "RequirementsDate", Default: ""},
			{Target: "ReferenceDocument", Default: ""},
			{Target: "CreatedByUser", Default: "MIGRATION"},
			{Target: "LastChangeDate", Default: "2025-08-01"},
			{Target: "HistoryIndicator", Default: ""},
			{Target: "SplitIndicator", Default: ""},
			{Target: "DataOriginType", Default: "MIG"},
			{Target: "AuthorizationGroup", Default: "MIGR"},
		},
		checks: core.QualityChecks{
			Required: []string{"Material", "Plant", "PeriodStartDate", "PlannedQuantity"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"Material", "Plant", "PeriodStartDate", "RequirementsPlanVersion"},
			},
			Range: []core.RangeCheck{
				{Field: "PlannedQuantity", Min: 0, Max: 500_000},
			},
		},
		mock: func() []core.Record {
			records := make([]core.Record, 0, 120)
			for i := 0; i < 120; i++ {
				item := i / 12 // ten items, twelve monthly buckets
				records = append(records, core.Record{
					"ITEM":    seqID("ITM", 6, 100000+item),
					"PLANT":   pick(plantCodes, item),
					"PERIOD":  dateYYYYMMDD(2025, (i%12)*28),
					"REQ_QTY": cents(100, 45.5, i%18),
					"UNIT":    "pcs",
					"VERSION": "00",
					"ACTIVE":  true,
				})
			}
			return records
		},
	}}
}

func newInspectionPlan() core.MigrationObject {
	return &object{decl: declaration{
		id:    "InspectionPlan",
		name:  "Inspection Plan",
		table: "QMINSPPLAN",
		fields: []string{
			"PLAN_GRP", "ITEM", "PLANT", "OPER_NO", "CHAR_NO", "CHAR_DESC",
			"TARGET_VAL", "LOWER_LIMIT", "UPPER_LIMIT", "UNIT", "SAMPLE_QTY",
			"METHOD", "VALID_FROM", "STATUS",
		},
		mappings: []core.FieldMappingRule{
			{Source: "PLAN_GRP", Target: "InspectionPlanGroup"},
			{Source: "ITEM", Target: "Material", Convert: core.ConverterPadLeft40},
			{Source: "PLANT", Target: "Plant"},
			{Source: "OPER_NO", Target: "OperationNumber"},
			{Source: "CHAR_NO", Target: "InspectionCharacteristicNumber"},
			{Source: "CHAR_DESC", Target: "CharacteristicText"},
			{Source: "TARGET_VAL", Target: "TargetValue", Convert: core.ConverterToDecimal},
			{Source: "LOWER_LIMIT", Target: "LowerSpecificationLimit", Convert: core.ConverterToDecimal},
			{Source: "UPPER_LIMIT", Target: "UpperSpecificationLimit", Convert: core.ConverterToDecimal},
			{Source: "UNIT", Target: "CharacteristicUnit", Convert: core.ConverterToUpperCase},
			{Source: "SAMPLE_QTY", Target: "SampleQuantity", Convert: core.ConverterToInteger},
			{Source: "METHOD", Target: "InspectionMethod", Convert: core.ConverterToUpperCase},
			{Source: "VALID_FROM", Target: "ValidFromDate", Convert: core.ConverterToDate},
			{Source: "STATUS", Target: "IsMarkedForDeletion", Convert: core.ConverterBoolYN},
			{Target: "TaskListType", Default: "Q"},
			{Target: "GroupCounter", Default: "01"},
			{Target: "TaskListUsage", Default: "5"},
			{Target: "TaskListStatus", Default: "4"},
			{Target: "InspectionType", Default: "01"},
			{Target: "ControlKey", Default: "QM01"},
			{Target: "WorkCenter", Default: "QC01"},
			{Target: "IsQuantitative", Default: "X"},
			{Target: "SamplingProcedure", Default: "Y-FIXED5"},
			{Target: "Language", Default: "EN"},
			{Target: "DataOriginType", Default: "MIG"},
		},
		checks: core.QualityChecks{
			Required: []string{"Material", "Plant", "InspectionCharacteristicNumber", "CharacteristicText"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"Material", "Plant", "OperationNumber", "InspectionCharacteristicNumber"},
			},
		},
		mock: func() []core.Record {
			characteristics := []string{"Overall Length", "Bore Diameter", "Surface Roughness", "Hardness"}
			units := []string{"MM", "MM", "UM", "HB"}
			records := make([]core.Record, 0, 40)
			for i := 0; i < 40; i++ {
				item := i / 4 // ten items, four characteristics each
				target := cents(25, 3.2, i%9)
				records = append(records, core.Record{
					"PLAN_GRP":    fmt.Sprintf("QP%03d", 100+item),
					"ITEM":        seqID("ITM", 6, 100000+item),
					"PLANT":       pick(plantCodes, item),
					"OPER_NO":     "0010",
					"CHAR_NO":     fmt.Sprintf("%04d", (i%4+1)*10),
					"CHAR_DESC":   characteristics[i%4],
					"TARGET_VAL":  target,
					"LOWER_LIMIT": cents(target, -0.5, 1),
					"UPPER_LIMIT": cents(target, 0.5, 1),
					"UNIT":        units[i%4],
					"SAMPLE_QTY":  "5",
					"METHOD":      pick([]string{"caliper", "cmm", "profilometer", "durometer"}, i),
					"VALID_FROM":  "20240101",
					"STATUS":      boolAlternating(i, 33),
				})
			}
			return records
		},
	}}
}
