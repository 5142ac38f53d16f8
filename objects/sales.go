package objects

import (
	"fmt"

	"github.com/ib823/sapconnect-sub002/core"
)

func newSalesOrder() core.MigrationObject {
	return &object{decl: declaration{
		id:    "SalesOrder",
		name:  "Sales Order",
		table: "SDORDER",
		fields: []string{
			"ORDER_NO", "ORDER_ITEM", "CUSTOMER", "ITEM", "PLANT", "ORDER_QTY",
			"DELIVERED_QTY", "UNIT", "PRICE", "CURR", "REQ_DATE", "ORDER_DATE",
			"ORDER_TYPE", "PAY_TERMS", "STATUS", "PO_REF",
		},
		mappings: []core.FieldMappingRule{
			{Source: "ORDER_NO", Target: "SalesOrder", Convert: core.ConverterPadLeft10},
			{Source: "ORDER_ITEM", Target: "SalesOrderItem"},
			{Source: "CUSTOMER", Target: "SoldToParty", Convert: core.ConverterPadLeft10},
			{Source: "ITEM", Target: "Material", Convert: core.ConverterPadLeft40},
			{Source: "PLANT", Target: "Plant"},
			{Source: "ORDER_QTY", Target: "RequestedQuantity", Convert: core.ConverterToDecimal},
			{Source: "DELIVERED_QTY", Target: "DeliveredQuantity", Convert: core.ConverterToDecimal},
			{Source: "UNIT", Target: "RequestedQuantityUnit", Convert: core.ConverterToUpperCase},
			{Source: "PRICE", Target: "NetPriceAmount", Convert: core.ConverterToDecimal},
			{Source: "CURR", Target: "TransactionCurrency", Convert: core.ConverterToUpperCase},
			{Source: "REQ_DATE", Target: "RequestedDeliveryDate", Convert: core.ConverterToDate},
			{Source: "ORDER_DATE", Target: "SalesOrderDate", Convert: core.ConverterToDate},
			{Source: "ORDER_TYPE", Target: "SalesOrderType", ValueMap: map[string]any{
				"STD": "OR", "RUSH": "SO", "FOC": "FD", "RET": "RE",
			}, Default: "OR"},
			{Source: "PAY_TERMS", Target: "PaymentTerms", Convert: core.ConverterToUpperCase},
			{Source: "STATUS", Target: "IsCompletelyDelivered", Convert: core.ConverterBoolYN},
			{Source: "PO_REF", Target: "PurchaseOrderByCustomer"},
			{Target: "SalesOrganization", Default: "1000"},
			{Target: "DistributionChannel", Default: "10"},
			{Target: "OrganizationDivision", Default: "00"},
			{Target: "ShippingPoint", Default: "1000"},
			{Target: "ItemCategory", Default: "TAN"},
			{Target: "DeliveryPriority", Default: "2"},
			{Target: "IncotermsClassification", Default: "FCA"},
			{Target: "PricingDate", Default: ""},
			{Target: "MigrationDocumentHeaderText", Default: "OPEN SALES ORDER"},
			{Target: "DataOriginType", Default: "MIG"},
		},
		checks: core.QualityChecks{
			Required: []string{"SalesOrder", "SoldToParty", "Material", "RequestedQuantity"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"SalesOrder", "SalesOrderItem"},
			},
			Range: []core.RangeCheck{
				{Field: "RequestedQuantity", Min: 0.001, Max: 1_000_000},
				{Field: "NetPriceAmount", Min: 0, Max: 1_000_000},
			},
		},
		mock: func() []core.Record {
			records := make([]core.Record, 0, 90)
			for i := 0; i < 90; i++ {
				header := i / 3 // thirty orders, three items each
				qty := cents(10, 6.5, i%18)
				records = append(records, core.Record{
					"ORDER_NO":      seqID("SO", 6, 900000+header),
					"ORDER_ITEM":    fmt.Sprintf("%06d", (i%3+1)*10),
					"CUSTOMER":      seqID("C", 6, 300000+header%40),
					"ITEM":          seqID("ITM", 6, 100000+i%10),
					"PLANT":         pick(plantCodes, header),
					"ORDER_QTY":     qty,
					"DELIVERED_QTY": cents(0, qty/3, i%3),
					"UNIT":          "pcs",
					"PRICE":         cents(18, 5.25, i%24),
					"CURR":          pick([]string{"usd", "eur", "gbp"}, header),
					"REQ_DATE":      dateYYYYMMDD(2025, 240+i%55),
					"ORDER_DATE":    dateYYYYMMDD(2025, 200+header),
					"ORDER_TYPE":    pick([]string{"STD", "STD", "STD", "RUSH", "FOC"}, header),
					"PAY_TERMS":     pick(paymentCodes, header),
					"STATUS":        false,
					"PO_REF":        fmt.Sprintf("CUST-PO-%05d", 70000+header),
				})
			}
			return records
		},
	}}
}

func newSalesContract() core.MigrationObject {
	return &object{decl: declaration{
		id:    "SalesContract",
		name:  "Sales Contract",
		table: "SDCONTRACT",
		fields: []string{
			"CONTRACT_NO", "CONTRACT_ITEM", "CUSTOMER", "ITEM", "TARGET_QTY",
			"RELEASED_QTY", "UNIT", "PRICE", "CURR", "VALID_FROM", "VALID_TO",
			"STATUS",
		},
		mappings: []core.FieldMappingRule{
			{Source: "CONTRACT_NO", Target: "SalesContract", Convert: core.ConverterPadLeft10},
			{Source: "CONTRACT_ITEM", Target: "SalesContractItem"},
			{Source: "CUSTOMER", Target: "SoldToParty", Convert: core.ConverterPadLeft10},
			{Source: "ITEM", Target: "Material", Convert: core.ConverterPadLeft40},
			{Source: "TARGET_QTY", Target: "TargetQuantity", Convert: core.ConverterToDecimal},
			{Source: "RELEASED_QTY", Target: "ReleasedQuantity", Convert: core.ConverterToDecimal},
			{Source: "UNIT", Target: "TargetQuantityUnit", Convert: core.ConverterToUpperCase},
			{Source: "PRICE", Target: "NetPriceAmount", Convert: core.ConverterToDecimal},
			{Source: "CURR", Target: "TransactionCurrency", Convert: core.ConverterToUpperCase},
			{Source: "VALID_FROM", Target: "ContractValidityStartDate", Convert: core.ConverterToDate},
			{Source: "VALID_TO", Target: "ContractValidityEndDate", Convert: core.ConverterToDate},
			{Source: "STATUS", Target: "IsCompleted", Convert: core.ConverterBoolYN},
			{Target: "SalesContractType", Default: "CQ"},
			{Target: "SalesOrganization", Default: "1000"},
			{Target: "DistributionChannel", Default: "10"},
			{Target: "OrganizationDivision", Default: "00"},
			{Target: "ItemCategory", Default: "KMN"},
			{Target: "PaymentTerms", Default: "NT30"},
			{Target: "IncotermsClassification", Default: "FCA"},
			{Target: "ShippingCondition", Default: "01"},
			{Target: "BillingBlockReason", Default: ""},
			{Target: "CustomerGroup", Default: ""},
			{Target: "PriceListType", Default: ""},
			{Target: "MigrationDocumentHeaderText", Default: "OPEN SALES CONTRACT"},
			{Target: "DataOriginType", Default: "MIG"},
		},
		checks: core.QualityChecks{
			Required: []string{"SalesContract", "SoldToParty", "Material", "TargetQuantity"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"SalesContract", "SalesContractItem"},
			},
			Range: []core.RangeCheck{
				{Field: "TargetQuantity", Min: 1, Max: 10_000_000},
			},
		},
		mock: func() []core.Record {
			records := make([]core.Record, 0, 20)
			for i := 0; i < 20; i++ {
				target := cents(2000, 850, i%7)
				records = append(records, core.Record{
					"CONTRACT_NO":   seqID("SC", 6, 950000+i/2),
					"CONTRACT_ITEM": fmt.Sprintf("%06d", (i%2+1)*10),
					"CUSTOMER":      seqID("C", 6, 300000+(i/2)%40),
					"ITEM":          seqID("ITM", 6, 100000+i%10),
					"TARGET_QTY":    target,
					"RELEASED_QTY":  cents(0, target/8, i%6),
					"UNIT":          "pcs",
					"PRICE":         cents(15, 3.4, i%15),
					"CURR":          pick([]string{"usd", "eur"}, i/10),
					"VALID_FROM":    "20250101",
					"VALID_TO":      "20261231",
					"STATUS":        boolAlternating(i, 13),
				})
			}
			return records
		},
	}}
}

func newDelivery() core.MigrationObject {
	return &object{decl: declaration{
		id:    "Delivery",
		name:  "Outbound Delivery",
		table: "SDDELIVERY",
		fields: []string{
			"DELIVERY_NO", "DELIVERY_ITEM", "CUSTOMER", "ITEM", "PLANT",
			"DELIVERY_QTY", "PICKED_QTY", "UNIT", "PLAN_GI_DT", "DELIVERY_DT",
			"SALES_ORDER", "SALES_ITEM", "STATUS",
		},
		mappings: []core.FieldMappingRule{
			{Source: "DELIVERY_NO", Target: "OutboundDelivery", Convert: core.ConverterPadLeft10},
			{Source: "DELIVERY_ITEM", Target: "OutboundDeliveryItem"},
			{Source: "CUSTOMER", Target: "ShipToParty", Convert: core.ConverterPadLeft10},
			{Source: "ITEM", Target: "Material", Convert: core.ConverterPadLeft40},
			{Source: "PLANT", Target: "Plant"},
			{Source: "DELIVERY_QTY", Target: "DeliveryQuantity", Convert: core.ConverterToDecimal},
			{Source: "PICKED_QTY", Target: "PickedQuantity", Convert: core.ConverterToDecimal},
			{Source: "UNIT", Target: "DeliveryQuantityUnit", Convert: core.ConverterToUpperCase},
			{Source: "PLAN_GI_DT", Target: "PlannedGoodsIssueDate", Convert: core.ConverterToDate},
			{Source: "DELIVERY_DT", Target: "DeliveryDate", Convert: core.ConverterToDate},
			{Source: "SALES_ORDER", Target: "ReferenceSalesOrder", Convert: core.ConverterPadLeft10},
			{Source: "SALES_ITEM", Target: "ReferenceSalesOrderItem"},
			{Source: "STATUS", Target: "IsGoodsIssuePosted", Convert: core.ConverterBoolYN},
			{Target: "DeliveryDocumentType", Default: "LF"},
			{Target: "ShippingPoint", Default: "1000"},
			{Target: "StorageLocation", Default: "0001"},
			{Target: "ShippingCondition", Default: "01"},
			{Target: "DeliveryPriority", Default: "2"},
			{Target: "Route", Default: ""},
			{Target: "MeansOfTransport", Default: ""},
			{Target: "PickingStatus", Default: "A"},
			{Target: "WarehouseNumber", Default: ""},
			{Target: "IncotermsClassification", Default: "FCA"},
			{Target: "MigrationDocumentHeaderText", Default: "OPEN DELIVERY"},
			{Target: "DataOriginType", Default: "MIG"},
		},
		checks: core.QualityChecks{
			Required: []string{"OutboundDelivery", "ShipToParty", "Material", "DeliveryQuantity"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"OutboundDelivery", "OutboundDeliveryItem"},
			},
			Range: []core.RangeCheck{
				{Field: "DeliveryQuantity", Min: 0.001, Max: 1_000_000},
			},
		},
		mock: func() []core.Record {
			records := make([]core.Record, 0, 50)
			for i := 0; i < 50; i++ {
				header := i / 2 // twenty-five deliveries, two items each
				qty := cents(5, 4.5, i%12)
				records = append(records, core.Record{
					"DELIVERY_NO":   fmt.Sprintf("80%06d", 100000+header),
					"DELIVERY_ITEM": fmt.Sprintf("%06d", (i%2+1)*10),
					"CUSTOMER":      seqID("C", 6, 300000+header%40),
					"ITEM":          seqID("ITM", 6, 100000+i%10),
					"PLANT":         pick(plantCodes, header),
					"DELIVERY_QTY":  qty,
					"PICKED_QTY":    cents(0, qty/2, i%3),
					"UNIT":          "pcs",
					"PLAN_GI_DT":    dateYYYYMMDD(2025, 235+i%40),
					"DELIVERY_DT":   dateYYYYMMDD(2025, 238+i%40),
					"SALES_ORDER":   seqID("SO", 6, 900000+header%30),
					"SALES_ITEM":    fmt.Sprintf("%06d", (i%2+1)*10),
					"STATUS":        false,
				})
			}
			return records
		},
	}}
}

func newCustomerMaterialInfo() core.MigrationObject {
	return &object{decl: declaration{
		id:    "CustomerMaterialInfo",
		name:  "Customer Material Info Record",
		table: "SDCUSTMAT",
		fields: []string{
			"CUSTOMER", "ITEM", "CUST_ITEM", "CUST_DESC", "SALES_ORG",
			"DELIVERY_PRIO", "MIN_QTY", "UNIT", "PLANT", "STATUS",
		},
		mappings: []core.FieldMappingRule{
			{Source: "CUSTOMER", Target: "Customer", Convert: core.ConverterPadLeft10},
			{Source: "ITEM", Target: "Material", Convert: core.ConverterPadLeft40},
			{Source: "CUST_ITEM", Target: "MaterialByCustomer"},
			{Source: "CUST_DESC", Target: "CustomerMaterialDescription"},
			{Source: "SALES_ORG", Target: "SalesOrganization"},
			{Source: "DELIVERY_PRIO", Target: "DeliveryPriority", Convert: core.ConverterToInteger},
			{Source: "MIN_QTY", Target: "MinimumDeliveryQuantity", Convert: core.ConverterToDecimal},
			{Source: "UNIT", Target: "BaseUnit", Convert: core.ConverterToUpperCase},
			{Source: "PLANT", Target: "Plant"},
			{Source: "STATUS", Target: "IsMarkedForDeletion", Convert: core.ConverterBoolYN},
			{Target: "DistributionChannel", Default: "10"},
			{Target: "PartialDeliveryAllowed", Default: ""},
			{Target: "MaximumPartialDeliveries", Default: "9"},
			{Target: "UnderdeliveryTolerance", Default: "0.0"},
			{Target: "OverdeliveryTolerance", Default: "0.0"},
			{Target: "DeliveryUnit", Default: "1"},
			{Target: "ItemUsage", Default: ""},
			{Target: "RoundingProfile", Default: ""},
			{Target: "SearchTerm", Default: ""},
			{Target: "CreatedByUser", Default: "MIGRATION"},
			{Target: "LastChangeDate", Default: "2025-06-15"},
			{Target: "ShippingInstruction", Default: ""},
			{Target: "Language", Default: "EN"},
			{Target: "DataOriginType", Default: "MIG"},
			{Target: "AuthorizationGroup", Default: "MIGR"},
		},
		checks: core.QualityChecks{
			Required: []string{"Customer", "Material", "MaterialByCustomer"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"Customer", "Material", "SalesOrganization"},
			},
			Range: []core.RangeCheck{
				{Field: "DeliveryPriority", Min: 1, Max: 9},
			},
		},
		mock: func() []core.Record {
			records := make([]core.Record, 0, 30)
			for i := 0; i < 30; i++ {
				records = append(records, core.Record{
					"CUSTOMER":      seqID("C", 6, 300000+i%40),
					"ITEM":          seqID("ITM", 6, 100000+i%10),
					"CUST_ITEM":     fmt.Sprintf("CM-%06d", 600000+i*7),
					"CUST_DESC":     fmt.Sprintf("Customer part variant %02d", i),
					"SALES_ORG":     pick([]string{"1000", "2000"}, i/15),
					"DELIVERY_PRIO": fmt.Sprintf("%d", 1+i%5),
					"MIN_QTY":       fmt.Sprintf("%d", 5*(1+i%4)),
					"UNIT":          "pcs",
					"PLANT":         pick(plantCodes, i),
					"STATUS":        boolAlternating(i, 27),
				})
			}
			return records
		},
	}}
}

func newCreditLimit() core.MigrationObject {
	return &object{decl: declaration{
		id:    "CreditLimit",
		name:  "Credit Limit",
		table: "ARCREDIT",
		fields: []string{
			"CUSTOMER", "CREDIT_SEG", "LIMIT_AMT", "CURR", "RISK_CLASS",
			"CHECK_RULE", "BLOCKED", "VALID_TO", "REVIEW_DT", "SCORE",
		},
		mappings: []core.FieldMappingRule{
			{Source: "CUSTOMER", Target: "BusinessPartner", Convert: core.ConverterPadLeft10},
			{Source: "CREDIT_SEG", Target: "CreditSegment", ValueMap: map[string]any{
				"DOM": "1000", "EXP": "2000",
			}, Default: "1000"},
			{Source: "LIMIT_AMT", Target: "CreditLimitAmount", Convert: core.ConverterToDecimal},
			{Source: "CURR", Target: "CreditSegmentCurrency", Convert: core.ConverterToUpperCase},
			{Source: "RISK_CLASS", Target: "RiskClass", ValueMap: map[string]any{
				"LOW": "A", "MED": "B", "HIGH": "C",
			}, Default: "B"},
			{Source: "CHECK_RULE", Target: "CreditCheckRule", Convert: core.ConverterToUpperCase},
			{Source: "BLOCKED", Target: "IsCreditBlocked", Convert: core.ConverterBoolYN},
			{Source: "VALID_TO", Target: "CreditLimitValidToDate", Convert: core.ConverterToDate},
			{Source: "REVIEW_DT", Target: "NextReviewDate", Convert: core.ConverterToDate},
			{Source: "SCORE", Target: "CreditScore", Convert: core.ConverterToInteger},
			{Target: "CreditLimitRequestAmount", Default: "0.00"},
			{Target: "CreditExposureAmount", Default: "0.00"},
			{Target: "CreditHorizonDays", Default: "060"},
			{Target: "CustomerCreditGroup", Default: "Y01"},
			{Target: "CreditAnalyst", Default: "MIGRATION"},
			{Target: "ExternalRatingAgency", Default: ""},
			{Target: "ExternalRating", Default: ""},
			{Target: "BlockReason", Default: ""},
			{Target: "FollowUpKey", Default: ""},
			{Target: "LastInternalReviewDate", Default: "2025-01-15"},
			{Target: "CreditDecisionStatus", Default: ""},
			{Target: "InternalRating", Default: ""},
			{Target: "CollectionsSegment", Default: ""},
			{Target: "DataOriginType", Default: "MIG"},
			{Target: "AuthorizationGroup", Default: "MIGR"},
		},
		checks: core.QualityChecks{
			Required: []string{"BusinessPartner", "CreditSegment", "CreditLimitAmount"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"BusinessPartner", "CreditSegment"},
			},
			Range: []core.RangeCheck{
				{Field: "CreditLimitAmount", Min: 0, Max: 10_000_000},
				{Field: "CreditScore", Min: 0, Max: 1000},
			},
		},
		mock: func() []core.Record {
			records := make([]core.Record, 0, 40)
			for i := 0; i < 40; i++ {
				records = append(records, core.Record{
					"CUSTOMER":   seqID("C", 6, 300000+i),
					"CREDIT_SEG": pick([]string{"DOM", "DOM", "EXP"}, i),
					"LIMIT_AMT":  cents(25000, 12500, i%12),
					"CURR":       "usd",
					"RISK_CLASS": pick([]string{"LOW", "MED", "MED", "HIGH"}, i),
					"CHECK_RULE": "a1",
					"BLOCKED":    boolAlternating(i, 20),
					"VALID_TO":   "99991231",
					"REVIEW_DT":  dateYYYYMMDD(2026, i*4),
					"SCORE":      fmt.Sprintf("%d", 350+(i*17)%600),
				})
			}
			return records
		},
	}}
}
