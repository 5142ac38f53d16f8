package objects

import (
	"fmt"

	"github.com/ib823/sapconnect-sub002/core"
)

func newPurchasingInfoRecord() core.MigrationObject {
	return &object{decl: declaration{
		id:    "PurchasingInfoRecord",
		name:  "Purchasing Info Record",
		table: "POINFOREC",
		fields: []string{
			"VENDOR", "ITEM", "PLANT", "PRICE", "CURR", "PRICE_UNIT", "UNIT",
			"LEAD_DAYS", "MIN_QTY", "STD_QTY", "VALID_FROM", "VALID_TO",
			"VENDOR_ITEM", "STATUS",
		},
		mappings: []core.FieldMappingRule{
			{Source: "VENDOR", Target: "Supplier", Convert: core.ConverterPadLeft10},
			{Source: "ITEM", Target: "Material", Convert: core.ConverterPadLeft40},
			{Source: "PLANT", Target: "Plant"},
			{Source: "PRICE", Target: "NetPriceAmount", Convert: core.ConverterToDecimal},
			{Source: "CURR", Target: "Currency", Convert: core.ConverterToUpperCase},
			{Source: "PRICE_UNIT", Target: "PriceUnit", Convert: core.ConverterToInteger},
			{Source: "UNIT", Target: "OrderUnit", Convert: core.ConverterToUpperCase},
			{Source: "LEAD_DAYS", Target: "PlannedDeliveryDays", Convert: core.ConverterToInteger},
			{Source: "MIN_QTY", Target: "MinimumOrderQuantity", Convert: core.ConverterToDecimal},
			{Source: "STD_QTY", Target: "StandardOrderQuantity", Convert: core.ConverterToDecimal},
			{Source: "VALID_FROM", Target: "ValidFromDate", Convert: core.ConverterToDate},
			{Source: "VALID_TO", Target: "ValidToDate", Convert: core.ConverterToDate},
			{Source: "VENDOR_ITEM", Target: "SupplierMaterialNumber"},
			{Source: "STATUS", Target: "IsMarkedForDeletion", Convert: core.ConverterBoolYN},
			{Target: "PurchasingInfoRecordCategory", Default: "0"},
			{Target: "PurchasingOrganization", Default: "1000"},
			{Target: "PurchasingGroup", Default: "001"},
			{Target: "TaxCode", Default: "I1"},
			{Target: "IncotermsClassification", Default: "FCA"},
			{Target: "OverdeliveryTolerance", Default: "10.0"},
			{Target: "UnderdeliveryTolerance", Default: "5.0"},
			{Target: "GoodsReceiptBasedInvoice", Default: "X"},
			{Target: "ConfirmationControlKey", Default: "0001"},
			{Target: "ShippingInstruction", Default: ""},
			{Target: "DataOriginType", Default: "MIG"},
		},
		checks: core.QualityChecks{
			Required: []string{"Supplier", "Material", "NetPriceAmount"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"Supplier", "Material", "Plant"},
			},
			Range: []core.RangeCheck{
				{Field: "NetPriceAmount", Min: 0.01, Max: 1_000_000},
				{Field: "PlannedDeliveryDays", Min: 0, Max: 365},
			},
		},
		mock: func() []core.Record {
			records := make([]core.Record, 0, 70)
			for i := 0; i < 70; i++ {
				records = append(records, core.Record{
					"VENDOR":      seqID("V", 6, 500000+i%35),
					"ITEM":        seqID("ITM", 6, 100020+i%40),
					"PLANT":       pick(plantCodes, i),
					"PRICE":       cents(4.5, 1.85, i),
					"CURR":        pick([]string{"usd", "eur"}, i),
					"PRICE_UNIT":  "1",
					"UNIT":        pick(unitCodes, i),
					"LEAD_DAYS":   fmt.Sprintf("%d", 3+i%21),
					"MIN_QTY":     fmt.Sprintf("%d", 10*(1+i%5)),
					"STD_QTY":     fmt.Sprintf("%d", 50*(1+i%4)),
					"VALID_FROM":  "20240101",
					"VALID_TO":    "99991231",
					"VENDOR_ITEM": fmt.Sprintf("VND-%05d", 20000+i*3),
					"STATUS":      boolAlternating(i, 35),
				})
			}
			return records
		},
	}}
}

func newSourceList() core.MigrationObject {
	return &object{decl: declaration{
		id:    "SourceList",
		name:  "Source List",
		table: "POSOURCE",
		fields: []string{
			"ITEM", "PLANT", "VENDOR", "VALID_FROM", "VALID_TO", "FIXED",
			"BLOCKED", "MRP_USE", "UNIT",
		},
		mappings: []core.FieldMappingRule{
			{Source: "ITEM", Target: "Material", Convert: core.ConverterPadLeft40},
			{Source: "PLANT", Target: "Plant"},
			{Source: "VENDOR", Target: "Supplier", Convert: core.ConverterPadLeft10},
			{Source: "VALID_FROM", Target: "ValidFromDate", Convert: core.ConverterToDate},
			{Source: "VALID_TO", Target: "ValidToDate", Convert: core.ConverterToDate},
			{Source: "FIXED", Target: "IsFixedSource", Convert: core.ConverterBoolYN},
			{Source: "BLOCKED", Target: "IsBlockedSource", Convert: core.ConverterBoolYN},
			{Source: "MRP_USE", Target: "MRPSourcingControl", ValueMap: map[string]any{
				"NONE": "", "ORDER": "1", "SCHED": "2",
			}, Default: "1"},
			{Source: "UNIT", Target: "OrderUnit", Convert: core.ConverterToUpperCase},
			{Target: "SourceListRecordNumber", Default: ""},
			{Target: "PurchasingOrganization", Default: "1000"},
			{Target: "SupplyingPlant", Default: ""},
			{Target: "OutlineAgreement", Default: ""},
			{Target: "OutlineAgreementItem", Default: ""},
			{Target: "ProcurementPlant", Default: ""},
			{Target: "ManufacturerPartNumber", Default: ""},
			{Target: "PurchasingGroup", Default: "001"},
			{Target: "PlannedDeliveryDays", Default: "000"},
			{Target: "ConfirmationControlKey", Default: ""},
			{Target: "RoundingProfile", Default: ""},
			{Target: "CreatedByUser", Default: "MIGRATION"},
			{Target: "LastChangeDate", Default: "2025-07-01"},
			{Target: "LogicalSystem", Default: ""},
			{Target: "DataOriginType", Default: "MIG"},
			{Target: "AuthorizationGroup", Default: "MIGR"},
		},
		checks: core.QualityChecks{
			Required: []string{"Material", "Plant", "Supplier"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"Material", "Plant", "Supplier", "ValidFromDate"},
			},
		},
		mock: func() []core.Record {
			records := make([]core.Record, 0, 48)
			for i := 0; i < 48; i++ {
				records = append(records, core.Record{
					"ITEM":       seqID("ITM", 6, 100020+i%40),
					"PLANT":      pick(plantCodes, i),
					"VENDOR":     seqID("V", 6, 500000+(i*7)%35),
					"VALID_FROM": "20240101",
					"VALID_TO":   "99991231",
					"FIXED":      boolAlternating(i, 4),
					"BLOCKED":    boolAlternating(i, 16),
					"MRP_USE":    pick([]string{"ORDER", "ORDER", "SCHED", "NONE"}, i),
					"UNIT":       pick(unitCodes, i),
				})
			}
			return records
		},
	}}
}

func newPricingCondition() core.MigrationObject {
	return &object{decl: declaration{
		id:    "PricingCondition",
		name:  "Pricing Condition",
		table: "SDPRICE",
		fields: []string{
			"COND_TYPE", "CUSTOMER", "ITEM", "SALES_ORG", "AMOUNT", "CURR",
			"PRICE_UNIT", "UNIT", "SCALE_QTY", "VALID_FROM", "VALID_TO",
			"STATUS",
		},
		mappings: []core.FieldMappingRule{
			{Source: "COND_TYPE", Target: "ConditionType", ValueMap: map[string]any{
				"PRICE": "PR00", "DISC": "K007", "FRT": "KF00", "SURCH": "KP00",
			}, Default: "PR00"},
			{Source: "CUSTOMER", Target: "Customer", Convert: core.ConverterPadLeft10},
			{Source: "ITEM", Target: "Material", Convert: core.ConverterPadLeft40},
			{Source: "SALES_ORG", Target: "SalesOrganization"},
			{Source: "AMOUNT", Target: "ConditionRateAmount", Convert: core.ConverterToDecimal},
			{Source: "CURR", Target: "ConditionCurrency", Convert: core.ConverterToUpperCase},
			{Source: "PRICE_UNIT", Target: "ConditionQuantityUnit", Convert: core.ConverterToInteger},
			{Source: "UNIT", Target: "ConditionUnit", Convert: core.ConverterToUpperCase},
			{Source: "SCALE_QTY", Target: "ScaleQuantity", Convert: core.ConverterToDecimal},
			{Source: "VALID_FROM", Target: "ValidFromDate", Convert: core.ConverterToDate},
			{Source: "VALID_TO", Target: "ValidToDate", Convert: core.ConverterToDate},
			{Source: "STATUS", Target: "IsMarkedForDeletion", Convert: core.ConverterBoolYN},
			{Target: "ConditionTable", Default: "305"},
			{Target: "ConditionApplication", Default: "V"},
			{Target: "DistributionChannel", Default: "10"},
			{Target: "Division", Default: "00"},
			{Target: "CalculationType", Default: "C"},
			{Target: "ScaleBasis", Default: "C"},
			{Target: "ScaleType", Default: "A"},
			{Target: "PaymentTerms", Default: ""},
			{Target: "FixedValueDate", Default: ""},
			{Target: "LowerLimitAmount", Default: "0.00"},
			{Target: "UpperLimitAmount", Default: "0.00"},
			{Target: "ReleaseStatus", Default: ""},
			{Target: "DataOriginType", Default: "MIG"},
		},
		checks: core.QualityChecks{
			Required: []string{"ConditionType", "Customer", "Material", "ConditionRateAmount"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"ConditionType", "Customer", "Material", "ValidFromDate"},
			},
			Range: []core.RangeCheck{
				{Field: "ConditionRateAmount", Min: 0, Max: 500_000},
			},
		},
		mock: func() []core.Record {
			records := make([]core.Record, 0, 80)
			for i := 0; i < 80; i++ {
				records = append(records, core.Record{
					"COND_TYPE":  pick([]string{"PRICE", "PRICE", "PRICE", "DISC", "FRT", "SURCH"}, i),
					"CUSTOMER":   seqID("C", 6, 300000+i%40),
					"ITEM":       seqID("ITM", 6, 100000+i%10),
					"SALES_ORG":  pick([]string{"1000", "2000"}, i/40),
					"AMOUNT":     cents(12, 4.35, i%22),
					"CURR":       pick([]string{"usd", "eur"}, i),
					"PRICE_UNIT": "1",
					"UNIT":       "pcs",
					"SCALE_QTY":  fmt.Sprintf("%d", 100*(1+i%3)),
					"VALID_FROM": dateYYYYMMDD(2025, (i%4)*84),
					"VALID_TO":   "99991231",
					"STATUS":     boolAlternating(i, 39),
				})
			}
			return records
		},
	}}
}

func newPurchaseOrder() core.MigrationObject {
	return &object{decl: declaration{
		id:    "PurchaseOrder",
		name:  "Purchase Order",
		table: "POHEADLINE",
		fields: []string{
			"PO_NO", "PO_ITEM", "VENDOR", "ITEM", "PLANT", "ORDER_QTY",
			"RECEIVED_QTY", "UNIT", "PRICE", "CURR", "DELIVERY_DT", "PO_DATE",
			"DOC_TYPE", "STATUS", "PAY_TERMS",
		},
		mappings: []core.FieldMappingRule{
			{Source: "PO_NO", Target: "PurchaseOrder", Convert: core.ConverterPadLeft10},
			{Source: "PO_ITEM", Target: "PurchaseOrderItem"},
			{Source: "VENDOR", Target: "Supplier", Convert: core.ConverterPadLeft10},
			{Source: "ITEM", Target: "Material", Convert: core.ConverterPadLeft40},
			{Source: "PLANT", Target: "Plant"},
			{Source: "ORDER_QTY", Target: "OrderQuantity", Convert: core.ConverterToDecimal},
			{Source: "RECEIVED_QTY", Target: "ReceivedQuantity", Convert: core.ConverterToDecimal},
			{Source: "UNIT", Target: "OrderUnit", Convert: core.ConverterToUpperCase},
			{Source: "PRICE", Target: "NetPriceAmount", Convert: core.ConverterToDecimal},
			{Source: "CURR", Target: "DocumentCurrency", Convert: core.ConverterToUpperCase},
			{Source: "DELIVERY_DT", Target: "ScheduledDeliveryDate", Convert: core.ConverterToDate},
			{Source: "PO_DATE", Target: "PurchaseOrderDate", Convert: core.ConverterToDate},
			{Source: "DOC_TYPE", Target: "PurchaseOrderType", ValueMap: map[string]any{
				"STD": "NB", "STK": "UB", "SVC": "FO",
			}, Default: "NB"},
			{Source: "STATUS", Target: "IsCompletelyDelivered", Convert: core.ConverterBoolYN},
			{Source: "PAY_TERMS", Target: "PaymentTerms", Convert: core.ConverterToUpperCase},
			{Target: "PurchasingOrganization", Default: "1000"},
			{Target: "PurchasingGroup", Default: "001"},
			{Target: "CompanyCode", Default: "1000"},
			{Target: "StorageLocation", Default: "0001"},
			{Target: "AccountAssignmentCategory", Default: ""},
			{Target: "GoodsReceiptIndicator", Default: "X"},
			{Target: "InvoiceReceiptIndicator", Default: "X"},
			{Target: "IncotermsClassification", Default: "FCA"},
			{Target: "MigrationDocumentHeaderText", Default: "OPEN PURCHASE ORDER"},
			{Target: "DataOriginType", Default: "MIG"},
		},
		checks: core.QualityChecks{
			Required: []string{"PurchaseOrder", "Supplier", "Material", "OrderQuantity"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"PurchaseOrder", "PurchaseOrderItem"},
			},
			Range: []core.RangeCheck{
				{Field: "OrderQuantity", Min: 0.001, Max: 1_000_000},
				{Field: "NetPriceAmount", Min: 0, Max: 1_000_000},
			},
		},
		mock: func() []core.Record {
			records := make([]core.Record, 0, 90)
			for i := 0; i < 90; i++ {
				header := i / 3 // thirty orders, three items each
				qty := cents(25, 13.5, i%16)
				records = append(records, core.Record{
					"PO_NO":        fmt.Sprintf("4500%05d", 10000+header),
					"PO_ITEM":      fmt.Sprintf("%05d", (i%3+1)*10),
					"VENDOR":       seqID("V", 6, 500000+header%35),
					"ITEM":         seqID("ITM", 6, 100020+i%40),
					"PLANT":        pick(plantCodes, header),
					"ORDER_QTY":    qty,
					"RECEIVED_QTY": cents(0, qty/4, i%3),
					"UNIT":         pick(unitCodes, i),
					"PRICE":        cents(4.5, 1.85, i%30),
					"CURR":         pick([]string{"usd", "eur"}, header),
					"DELIVERY_DT":  dateYYYYMMDD(2025, 230+i%60),
					"PO_DATE":      dateYYYYMMDD(2025, 180+header),
					"DOC_TYPE":     pick([]string{"STD", "STD", "STD", "STK", "SVC"}, header),
					"STATUS":       false,
					"PAY_TERMS":    pick(paymentCodes, header),
				})
			}
			return records
		},
	}}
}

func newPurchaseRequisition() core.MigrationObject {
	return &object{decl: declaration{
		id:    "PurchaseRequisition",
		name:  "Purchase Requisition",
		table: "POREQ",
		fields: []string{
			"REQ_NO", "REQ_ITEM", "ITEM", "PLANT", "REQ_QTY", "UNIT",
			"DELIVERY_DT", "REQ_DATE", "REQUESTER", "VENDOR", "STATUS",
		},
		mappings: []core.FieldMappingRule{
			{Source: "REQ_NO", Target: "PurchaseRequisition", Convert: core.ConverterPadLeft10},
			{Source: "REQ_ITEM", Target: "PurchaseRequisitionItem"},
			{Source: "ITEM", Target: "Material", Convert: core.ConverterPadLeft40},
			{Source: "PLANT", Target: "Plant"},
			{Source: "REQ_QTY", Target: "RequestedQuantity", Convert: core.ConverterToDecimal},
			{Source: "UNIT", Target: "BaseUnit", Convert: core.ConverterToUpperCase},
			{Source: "DELIVERY_DT", Target: "DeliveryDate", Convert: core.ConverterToDate},
			{Source: "REQ_DATE", Target: "RequisitionDate", Convert: core.ConverterToDate},
			{Source: "REQUESTER", Target: "RequisitionerName"},
			{Source: "VENDOR", Target: "FixedSupplier", Convert: core.ConverterPadLeft10},
			{Source: "STATUS", Target: "IsClosed", Convert: core.ConverterBoolYN},
			{Target: "PurchaseRequisitionType", Default: "NB"},
			{Target: "PurchasingOrganization", Default: "1000"},
			{Target: "PurchasingGroup", Default: "001"},
			{Target: "MRPController", Default: "001"},
			{Target: "AccountAssignmentCategory", Default: ""},
			{Target: "StorageLocation", Default: "0001"},
			{Target: "ReleaseStatus", Default: "05"},
			{Target: "CreationIndicator", Default: "R"},
			{Target: "ValuationPrice", Default: "0.00"},
			{Target: "ProcessingStatus", Default: "N"},
			{Target: "TrackingNumber", Default: ""},
			{Target: "ItemDeliveryAddressID", Default: ""},
			{Target: "SupplierMaterialNumber", Default: ""},
			{Target: "DataOriginType", Default: "MIG"},
			{Target: "AuthorizationGroup", Default: "MIGR"},
		},
		checks: core.QualityChecks{
			Required: []string{"PurchaseRequisition", "Material", "Plant", "RequestedQuantity"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"PurchaseRequisition", "PurchaseRequisitionItem"},
			},
			Range: []core.RangeCheck{
				{Field: "RequestedQuantity", Min: 0.001, Max: 500_000},
			},
		},
		mock: func() []core.Record {
			records := make([]core.Record, 0, 40)
			for i := 0; i < 40; i++ {
				records = append(records, core.Record{
					"REQ_NO":      fmt.Sprintf("10%06d", 200000+i/2),
					"REQ_ITEM":    fmt.Sprintf("%05d", (i%2+1)*10),
					"ITEM":        seqID("ITM", 6, 100020+i%40),
					"PLANT":       pick(plantCodes, i),
					"REQ_QTY":     cents(10, 7.5, i%14),
					"UNIT":        pick(unitCodes, i),
					"DELIVERY_DT": dateYYYYMMDD(2025, 250+i%50),
					"REQ_DATE":    dateYYYYMMDD(2025, 210+i%30),
					"REQUESTER":   fmt.Sprintf("Planner %02d", i%8),
					"VENDOR":      seqID("V", 6, 500000+(i*3)%35),
					"STATUS":      false,
				})
			}
			return records
		},
	}}
}

func newPurchaseContract() core.MigrationObject {
	return &object{decl: declaration{
		id:    "PurchaseContract",
		name:  "Purchase Contract",
		table: "POCONTRACT",
		fields: []string{
			"CONTRACT_NO", "CONTRACT_ITEM", "VENDOR", "ITEM", "PLANT",
			"TARGET_QTY", "RELEASED_QTY", "UNIT", "PRICE", "CURR",
			"VALID_FROM", "VALID_TO", "CONTRACT_TYPE", "STATUS",
		},
		mappings: []core.FieldMappingRule{
			{Source: "CONTRACT_NO", Target: "PurchaseContract", Convert: core.ConverterPadLeft10},
			{Source: "CONTRACT_ITEM", Target: "PurchaseContractItem"},
			{Source: "VENDOR", Target: "Supplier", Convert: core.ConverterPadLeft10},
			{Source: "ITEM", Target: "Material", Convert: core.ConverterPadLeft40},
			{Source: "PLANT", Target: "Plant"},
			{Source: "TARGET_QTY", Target: "TargetQuantity", Convert: core.ConverterToDecimal},
			{Source: "RELEASED_QTY", Target: "ReleasedQuantity", Convert: core.ConverterToDecimal},
			{Source: "UNIT", Target: "OrderUnit", Convert: core.ConverterToUpperCase},
			{Source: "PRICE", Target: "NetPriceAmount", Convert: core.ConverterToDecimal},
			{Source: "CURR", Target: "DocumentCurrency", Convert: core.ConverterToUpperCase},
			{Source: "VALID_FROM", Target: "ValidityStartDate", Convert: core.ConverterToDate},
			{Source: "VALID_TO", Target: "ValidityEndDate", Convert: core.ConverterToDate},
			{Source: "CONTRACT_TYPE", Target: "PurchaseContractType", ValueMap: map[string]any{
				"QTY": "MK", "VAL": "WK",
			}, Default: "MK"},
			{Source: "STATUS", Target: "IsCompleted", Convert: core.ConverterBoolYN},
			{Target: "PurchasingOrganization", Default: "1000"},
			{Target: "PurchasingGroup", Default: "001"},
			{Target: "CompanyCode", Default: "1000"},
			{Target: "PaymentTerms", Default: "NT30"},
			{Target: "IncotermsClassification", Default: "FCA"},
			{Target: "TargetValueAmount", Default: "0.00"},
			{Target: "AccountAssignmentCategory", Default: ""},
			{Target: "ItemCategory", Default: ""},
			{Target: "ShippingInstruction", Default: ""},
			{Target: "MigrationDocumentHeaderText", Default: "OPEN CONTRACT"},
			{Target: "DataOriginType", Default: "MIG"},
		},
		checks: core.QualityChecks{
			Required: []string{"PurchaseContract", "Supplier", "Material", "TargetQuantity"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"PurchaseContract", "PurchaseContractItem"},
			},
			Range: []core.RangeCheck{
				{Field: "TargetQuantity", Min: 1, Max: 10_000_000},
			},
		},
		mock: func() []core.Record {
			records := make([]core.Record, 0, 24)
			for i := 0; i < 24; i++ {
				target := cents(5000, 1250, i%8)
				records = append(records, core.Record{
					"CONTRACT_NO":   fmt.Sprintf("4600%05d", 20000+i/2),
					"CONTRACT_ITEM": fmt.Sprintf("%05d", (i%2+1)*10),
					"VENDOR":        seqID("V", 6, 500000+(i/2)%35),
					"ITEM":          seqID("ITM", 6, 100020+i%40),
					"PLANT":         pick(plantCodes, i),
					"TARGET_QTY":    target,
					"RELEASED_QTY":  cents(0, target/6, i%5),
					"UNIT":          pick(unitCodes, i),
					"PRICE":         cents(3.8, 1.15, i%20),
					"CURR":          pick([]string{"usd", "eur"}, i/12),
					"VALID_FROM":    "20250101",
					"VALID_TO":      "20261231",
					"CONTRACT_TYPE": pick([]string{"QTY", "QTY", "VAL"}, i),
					"STATUS":        boolAlternating(i, 11),
				})
			}
			return records
		},
	}}
}
