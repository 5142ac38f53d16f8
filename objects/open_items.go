package objects

import (
	"fmt"

	"github.com/ib823/sapconnect-sub002/core"
)

func newCustomerOpenItem() core.MigrationObject {
	return &object{decl: declaration{
		id:    "CustomerOpenItem",
		name:  "Customer Open Item",
		table: "AROPENITEM",
		fields: []string{
			"CUSTOMER", "COMPANY", "INVOICE_NO", "INVOICE_ITEM", "DOC_DATE",
			"DUE_DATE", "AMOUNT", "CURR", "PAY_TERMS", "REFERENCE", "DUNNING",
			"GL_ACCT",
		},
		mappings: []core.FieldMappingRule{
			{Source: "CUSTOMER", Target: "Customer", Convert: core.ConverterPadLeft10},
			{Source: "COMPANY", Target: "CompanyCode", Convert: core.ConverterPadLeft10},
			{Source: "INVOICE_NO", Target: "SourceDocumentNumber"},
			{Source: "INVOICE_ITEM", Target: "SourceDocumentItem"},
			{Source: "DOC_DATE", Target: "DocumentDate", Convert: core.ConverterToDate},
			{Source: "DUE_DATE", Target: "NetDueDate", Convert: core.ConverterToDate},
			{Source: "AMOUNT", Target: "OpenAmountInDocumentCurrency", Convert: core.ConverterToDecimal},
			{Source: "CURR", Target: "DocumentCurrency", Convert: core.ConverterToUpperCase},
			{Source: "PAY_TERMS", Target: "PaymentTerms", Convert: core.ConverterToUpperCase},
			{Source: "REFERENCE", Target: "DocumentReferenceID"},
			{Source: "DUNNING", Target: "DunningLevel", Convert: core.ConverterToInteger},
			{Source: "GL_ACCT", Target: "ReconciliationAccount", Convert: core.ConverterPadLeft10},
			{Target: "DocumentType", Default: "DR"},
			{Target: "PostingDate", Default: "2025-12-31"},
			{Target: "FiscalYear", Default: "2025"},
			{Target: "PostingPeriod", Default: "012"},
			{Target: "OffsettingAccount", Default: "0000199991"},
			{Target: "DebitCreditCode", Default: "S"},
			{Target: "PaymentMethod", Default: ""},
			{Target: "PaymentBlock", Default: ""},
			{Target: "DunningArea", Default: ""},
			{Target: "SpecialGLIndicator", Default: ""},
			{Target: "AssignmentReference", Default: "TAKEOVER"},
			{Target: "MigrationDocumentHeaderText", Default: "AR OPEN ITEM TAKEOVER"},
			{Target: "DataOriginType", Default: "MIG"},
		},
		checks: core.QualityChecks{
			Required: []string{"Customer", "CompanyCode", "SourceDocumentNumber", "OpenAmountInDocumentCurrency"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"CompanyCode", "SourceDocumentNumber", "SourceDocumentItem"},
			},
			Range: []core.RangeCheck{
				{Field: "OpenAmountInDocumentCurrency", Min: 0.01, Max: 10_000_000},
				{Field: "DunningLevel", Min: 0, Max: 9},
			},
		},
		mock: func() []core.Record {
			records := make([]core.Record, 0, 100)
			for i := 0; i < 100; i++ {
				records = append(records, core.Record{
					"CUSTOMER":     seqID("C", 6, 300000+i%40),
					"COMPANY":      pick(companyCodes, i/50),
					"INVOICE_NO":   fmt.Sprintf("INV-%07d", 1000000+i),
					"INVOICE_ITEM": "001",
					"DOC_DATE":     dateYYYYMMDD(2025, 100+i),
					"DUE_DATE":     dateYYYYMMDD(2025, 130+i),
					"AMOUNT":       cents(250, 187.33, i),
					"CURR":         pick([]string{"usd", "usd", "eur", "gbp"}, i),
					"PAY_TERMS":    pick(paymentCodes, i),
					"REFERENCE":    fmt.Sprintf("REF-%05d", 50000+i),
					"DUNNING":      fmt.Sprintf("%d", i%4),
					"GL_ACCT":      "140000",
				})
			}
			return records
		},
	}}
}

func newVendorOpenItem() core.MigrationObject {
	return &object{decl: declaration{
		id:    "VendorOpenItem",
		name:  "Vendor Open Item",
		table: "APOPENITEM",
		fields: []string{
			"VENDOR", "COMPANY", "INVOICE_NO", "INVOICE_ITEM", "DOC_DATE",
			"DUE_DATE", "AMOUNT", "CURR", "PAY_TERMS", "REFERENCE",
			"PAY_BLOCK", "GL_ACCT",
		},
		mappings: []core.FieldMappingRule{
			{Source: "VENDOR", Target: "Supplier", Convert: core.ConverterPadLeft10},
			{Source: "COMPANY", Target: "CompanyCode", Convert: core.ConverterPadLeft10},
			{Source: "INVOICE_NO", Target: "SourceDocumentNumber"},
			{Source: "INVOICE_ITEM", Target: "SourceDocumentItem"},
			{Source: "DOC_DATE", Target: "DocumentDate", Convert: core.ConverterToDate},
			{Source: "DUE_DATE", Target: "NetDueDate", Convert: core.ConverterToDate},
			{Source: "AMOUNT", Target: "OpenAmountInDocumentCurrency", Convert: core.ConverterToDecimal},
			{Source: "CURR", Target: "DocumentCurrency", Convert: core.ConverterToUpperCase},
			{Source: "PAY_TERMS", Target: "PaymentTerms", Convert: core.ConverterToUpperCase},
			{Source: "REFERENCE", Target: "DocumentReferenceID"},
			{Source: "PAY_BLOCK", Target: "IsPaymentBlocked", Convert: core.ConverterBoolYN},
			{Source: "GL_ACCT", Target: "ReconciliationAccount", Convert: core.ConverterPadLeft10},
			{Target: "DocumentType", Default: "KR"},
			{Target: "PostingDate", Default: "2025-12-31"},
			{Target: "FiscalYear", Default: "2025"},
			{Target: "PostingPeriod", Default: "012"},
			{Target: "OffsettingAccount", Default: "0000199991"},
			{Target: "DebitCreditCode", Default: "H"},
			{Target: "PaymentMethod", Default: "T"},
			{Target: "HouseBank", Default: "HB001"},
			{Target: "SpecialGLIndicator", Default: ""},
			{Target: "WithholdingTaxCode", Default: ""},
			{Target: "AssignmentReference", Default: "TAKEOVER"},
			{Target: "MigrationDocumentHeaderText", Default: "AP OPEN ITEM TAKEOVER"},
			{Target: "DataOriginType", Default: "MIG"},
		},
		checks: core.QualityChecks{
			Required: []string{"Supplier", "CompanyCode", "SourceDocumentNumber", "OpenAmountInDocumentCurrency"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"CompanyCode", "SourceDocumentNumber", "SourceDocumentItem"},
			},
			Range: []core.RangeCheck{
				{Field: "OpenAmountInDocumentCurrency", Min: 0.01, Max: 10_000_000},
			},
		},
		mock: func() []core.Record {
			records := make([]core.Record, 0, 80)
			for i := 0; i < 80; i++ {
				records = append(records, core.Record{
					"VENDOR":       seqID("V", 6, 500000+i%35),
					"COMPANY":      pick(companyCodes, i/40),
					"INVOICE_NO":   fmt.Sprintf("VINV-%07d", 2000000+i),
					"INVOICE_ITEM": "001",
					"DOC_DATE":     dateYYYYMMDD(2025, 90+i),
					"DUE_DATE":     dateYYYYMMDD(2025, 135+i),
					"AMOUNT":       cents(180, 233.81, i),
					"CURR":         pick([]string{"usd", "usd", "eur"}, i),
					"PAY_TERMS":    pick(paymentCodes, i),
					"REFERENCE":    fmt.Sprintf("VREF-%05d", 60000+i),
					"PAY_BLOCK":    boolAlternating(i, 18),
					"GL_ACCT":      "211000",
				})
			}
			return records
		},
	}}
}

func newGLOpenItem() core.MigrationObject {
	return &object{decl: declaration{
		id:    "GLOpenItem",
		name:  "G/L Open Item",
		table: "GLOPENITEM",
		fields: []string{
			"GL_ACCT", "COMPANY", "DOC_NO", "DOC_ITEM", "DOC_DATE", "AMOUNT",
			"DC_CODE", "CURR", "COST_CTR", "PROFIT_CTR", "REFERENCE", "TEXT",
		},
		mappings: []core.FieldMappingRule{
			{Source: "GL_ACCT", Target: "GLAccount", Convert: core.ConverterPadLeft10},
			{Source: "COMPANY", Target: "CompanyCode", Convert: core.ConverterPadLeft10},
			{Source: "DOC_NO", Target: "SourceDocumentNumber"},
			{Source: "DOC_ITEM", Target: "SourceDocumentItem"},
			{Source: "DOC_DATE", Target: "DocumentDate", Convert: core.ConverterToDate},
			{Source: "AMOUNT", Target: "OpenAmountInDocumentCurrency", Convert: core.ConverterToDecimal},
			{Source: "DC_CODE", Target: "DebitCreditCode", ValueMap: map[string]any{
				"D": "S", "C": "H",
			}, Default: "S"},
			{Source: "CURR", Target: "DocumentCurrency", Convert: core.ConverterToUpperCase},
			{Source: "COST_CTR", Target: "CostCenter", Convert: core.ConverterPadLeft10},
			{Source: "PROFIT_CTR", Target: "ProfitCenter", Convert: core.ConverterPadLeft10},
			{Source: "REFERENCE", Target: "DocumentReferenceID"},
			{Source: "TEXT", Target: "ItemText"},
			{Target: "DocumentType", Default: "SA"},
			{Target: "PostingDate", Default: "2025-12-31"},
			{Target: "FiscalYear", Default: "2025"},
			{Target: "PostingPeriod", Default: "012"},
			{Target: "OffsettingAccount", Default: "0000199992"},
			{Target: "TaxCode", Default: ""},
			{Target: "BusinessArea", Default: ""},
			{Target: "FunctionalArea", Default: ""},
			{Target: "Segment", Default: "1000_A"},
			{Target: "TradingPartner", Default: ""},
			{Target: "AssignmentReference", Default: "TAKEOVER"},
			{Target: "MigrationDocumentHeaderText", Default: "GL OPEN ITEM TAKEOVER"},
			{Target: "DataOriginType", Default: "MIG"},
		},
		checks: core.QualityChecks{
			Required: []string{"GLAccount", "CompanyCode", "SourceDocumentNumber", "OpenAmountInDocumentCurrency"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"CompanyCode", "SourceDocumentNumber", "SourceDocumentItem"},
			},
			Range: []core.RangeCheck{
				{Field: "OpenAmountInDocumentCurrency", Min: 0.01, Max: 50_000_000},
			},
		},
		mock: func() []core.Record {
			texts := []string{"Accrued freight", "Deferred revenue", "Bank clearing", "GR/IR clearing"}
			records := make([]core.Record, 0, 60)
			for i := 0; i < 60; i++ {
				records = append(records, core.Record{
					"GL_ACCT":    fmt.Sprintf("%d", 100000+(i%48)*1000),
					"COMPANY":    pick(companyCodes, i/30),
					"DOC_NO":     fmt.Sprintf("GL-%07d", 3000000+i/2),
					"DOC_ITEM":   fmt.Sprintf("%03d", i%2+1),
					"DOC_DATE":   dateYYYYMMDD(2025, 150+i),
					"AMOUNT":     cents(500, 312.45, i),
					"DC_CODE":    pick([]string{"D", "C"}, i),
					"CURR":       "usd",
					"COST_CTR":   fmt.Sprintf("CC%04d", 2000+(i%32)*10),
					"PROFIT_CTR": fmt.Sprintf("PC%03d", 100+i%20),
					"REFERENCE":  fmt.Sprintf("GREF-%05d", 80000+i),
					"TEXT":       texts[i%4],
				})
			}
			return records
		},
	}}
}

func newCostCenterPlan() core.MigrationObject {
	return &object{decl: declaration{
		id:    "CostCenterPlan",
		name:  "Cost Center Plan",
		table: "GLBUDGET",
		fields: []string{
			"COST_CTR", "COMPANY", "FISCAL_YEAR", "PERIOD", "COST_ELEM",
			"PLAN_AMT", "CURR", "VERSION", "ACT_TYPE", "PLAN_QTY", "QTY_UNIT",
		},
		mappings: []core.FieldMappingRule{
			{Source: "COST_CTR", Target: "CostCenter", Convert: core.ConverterPadLeft10},
			{Source: "COMPANY", Target: "CompanyCode", Convert: core.ConverterPadLeft10},
			{Source: "FISCAL_YEAR", Target: "FiscalYear"},
			{Source: "PERIOD", Target: "FiscalPeriod"},
			{Source: "COST_ELEM", Target: "CostElement", Convert: core.ConverterPadLeft10},
			{Source: "PLAN_AMT", Target: "PlannedAmount", Convert: core.ConverterToDecimal},
			{Source: "CURR", Target: "Currency", Convert: core.ConverterToUpperCase},
			{Source: "VERSION", Target: "PlanVersion"},
			{Source: "ACT_TYPE", Target: "ActivityType", Convert: core.ConverterToUpperCase},
			{Source: "PLAN_QTY", Target: "PlannedQuantity", Convert: core.ConverterToDecimal},
			{Source: "QTY_UNIT", Target: "QuantityUnit", Convert: core.ConverterToUpperCase},
			{Target: "ControllingArea", Default: "A000"},
			{Target: "ValueType", Default: "01"},
			{Target: "PlanningLayout", Default: "1-101"},
			{Target: "DistributionKey", Default: "1"},
			{Target: "TransactionCurrencyAmount", Default: "0.00"},
			{Target: "FixedAmount", Default: "0.00"},
			{Target: "VariableAmount", Default: "0.00"},
			{Target: "BusinessTransaction", Default: "RKP1"},
			{Target: "ExchangeRateType", Default: "M"},
			{Target: "CreatedByUser", Default: "MIGRATION"},
			{Target: "LastChangeDate", Default: "2025-08-01"},
			{Target: "LockIndicator", Default: ""},
			{Target: "DataOriginType", Default: "MIG"},
			{Target: "AuthorizationGroup", Default: "MIGR"},
		},
		checks: core.QualityChecks{
			Required: []string{"CostCenter", "FiscalYear", "FiscalPeriod", "PlannedAmount"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"CostCenter", "FiscalYear", "FiscalPeriod", "CostElement", "PlanVersion"},
			},
			Range: []core.RangeCheck{
				{Field: "PlannedAmount", Min: 0, Max: 5_000_000},
			},
		},
		mock: func() []core.Record {
			elements := []string{"400000", "410000", "430000", "470000"}
			records := make([]core.Record, 0, 96)
			for i := 0; i < 96; i++ {
				cc := i / 12 // eight cost centers, twelve periods each
				records = append(records, core.Record{
					"COST_CTR":    fmt.Sprintf("CC%04d", 2000+cc*10),
					"COMPANY":     pick(companyCodes, cc/4),
					"FISCAL_YEAR": "2026",
					"PERIOD":      fmt.Sprintf("%03d", i%12+1),
					"COST_ELEM":   elements[cc%4],
					"PLAN_AMT":    cents(8000, 425.50, i%20),
					"CURR":        "usd",
					"VERSION":     "0",
					"ACT_TYPE":    pick([]string{"act00", "act01"}, cc),
					"PLAN_QTY":    cents(160, 8, i%10),
					"QTY_UNIT":    "hr",
				})
			}
			return records
		},
	}}
}
