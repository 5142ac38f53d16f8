package objects

import (
	"fmt"

	"github.com/ib823/sapconnect-sub002/core"
)

func newGLAccountMaster() core.MigrationObject {
	return &object{decl: declaration{
		id:    "GLAccountMaster",
		name:  "G/L Account Master",
		table: "GLCHART",
		fields: []string{
			"ACCT", "ACCT_DESC", "ACCT_TYPE", "ACCT_GRP", "STATUS", "CURR",
			"TAX_CAT", "RECON", "OPEN_ITEM", "LINE_ITEM", "SORT_KEY", "FSG",
			"PLAN_LVL", "CREATE_DT", "BLOCKED", "ALT_ACCT",
		},
		mappings: []core.FieldMappingRule{
			{Source: "ACCT", Target: "GLAccount", Convert: core.ConverterPadLeft10},
			{Source: "ACCT_DESC", Target: "GLAccountLongName"},
			{Source: "ACCT_TYPE", Target: "GLAccountType", ValueMap: map[string]any{
				"B": "X", "P": "P", "N": "N", "S": "S",
			}, Default: "N"},
			{Source: "ACCT_GRP", Target: "GLAccountGroup"},
			{Source: "STATUS", Target: "IsMarkedForDeletion", Convert: core.ConverterBoolYN},
			{Source: "CURR", Target: "AccountCurrency", Convert: core.ConverterToUpperCase},
			{Source: "TAX_CAT", Target: "TaxCategory"},
			{Source: "RECON", Target: "ReconciliationAccountType"},
			{Source: "OPEN_ITEM", Target: "IsOpenItemManaged", Convert: core.ConverterBoolYN},
			{Source: "LINE_ITEM", Target: "IsLineItemDisplay", Convert: core.ConverterBoolYN},
			{Source: "SORT_KEY", Target: "SortKey"},
			{Source: "FSG", Target: "FieldStatusGroup"},
			{Source: "PLAN_LVL", Target: "PlanningLevel"},
			{Source: "CREATE_DT", Target: "CreationDate", Convert: core.ConverterToDate},
			{Source: "BLOCKED", Target: "IsPostingBlocked", Convert: core.ConverterBoolYN},
			{Source: "ALT_ACCT", Target: "AlternativeAccount", Convert: core.ConverterPadLeft10},
			{Target: "ChartOfAccounts", Default: "YCOA"},
			{Target: "CompanyCode", Default: "1000"},
			{Target: "AccountShortName", Default: ""},
			{Target: "TradingPartner", Default: ""},
			{Target: "GroupAccountNumber", Default: ""},
			{Target: "FunctionalArea", Default: ""},
			{Target: "OnlyBalancesInLocalCurrency", Default: ""},
			{Target: "AuthorizationGroup", Default: "MIGR"},
			{Target: "InflationKey", Default: ""},
		},
		checks: core.QualityChecks{
			Required: []string{"GLAccount", "GLAccountLongName", "GLAccountType"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"GLAccount"},
			},
		},
		mock: func() []core.Record {
			descriptions := []string{
				"Cash and Equivalents", "Trade Receivables", "Raw Material Stock",
				"Fixed Assets Plant", "Trade Payables", "Accrued Liabilities",
				"Share Capital", "Revenue Domestic", "Revenue Export",
				"Cost of Goods Sold", "Freight Expense", "Payroll Expense",
			}
			records := make([]core.Record, 0, 48)
			for i := 0; i < 48; i++ {
				records = append(records, core.Record{
					"ACCT":      fmt.Sprintf("%d", 100000+i*1000),
					"ACCT_DESC": fmt.Sprintf("%s %02d", descriptions[i%len(descriptions)], i/12),
					"ACCT_TYPE": pick([]string{"B", "B", "P", "P", "N", "S"}, i),
					"ACCT_GRP":  pick([]string{"BIL", "ERG", "MAT", "FIN"}, i),
					"STATUS":    boolAlternating(i, 29),
					"CURR":      pick([]string{"usd", "eur"}, i),
					"TAX_CAT":   pick([]string{"", "*", "+", "-"}, i),
					"RECON":     pick([]string{"", "D", "K", "A"}, i),
					"OPEN_ITEM": boolAlternating(i, 3),
					"LINE_ITEM": true,
					"SORT_KEY":  pick([]string{"001", "002", "009"}, i),
					"FSG":       pick([]string{"G001", "G004", "G067"}, i),
					"PLAN_LVL":  pick([]string{"", "F1", "B1"}, i),
					"CREATE_DT": dateYYYYMMDD(2010, i*5),
					"BLOCKED":   boolAlternating(i, 31),
					"ALT_ACCT":  fmt.Sprintf("%d", 900000+i*100),
				})
			}
			return records
		},
	}}
}

func newCostCenter() core.MigrationObject {
	return &object{decl: declaration{
		id:    "CostCenter",
		name:  "Cost Center",
		table: "GLNAMES",
		fields: []string{
			"ACCT_UNIT", "DESCRIPTION", "COMPANY", "PERSON", "DEPT_CAT",
			"CURR", "VALID_FROM", "VALID_TO", "STATUS", "REGION", "PROFIT_CTR",
			"HIERARCHY",
		},
		mappings: []core.FieldMappingRule{
			{Source: "ACCT_UNIT", Target: "CostCenter", Convert: core.ConverterPadLeft10},
			{Source: "DESCRIPTION", Target: "CostCenterName"},
			{Source: "COMPANY", Target: "CompanyCode", Convert: core.ConverterPadLeft10},
			{Source: "PERSON", Target: "PersonResponsible"},
			{Source: "DEPT_CAT", Target: "CostCenterCategory", ValueMap: map[string]any{
				"PROD": "F", "ADMIN": "V", "SALES": "V", "LOGI": "L", "RND": "E",
			}, Default: "V"},
			{Source: "CURR", Target: "Currency", Convert: core.ConverterToUpperCase},
			{Source: "VALID_FROM", Target: "ValidFromDate", Convert: core.ConverterToDate},
			{Source: "VALID_TO", Target: "ValidToDate", Convert: core.ConverterToDate},
			{Source: "STATUS", Target: "IsBlocked", Convert: core.ConverterBoolYN},
			{Source: "REGION", Target: "Region"},
			{Source: "PROFIT_CTR", Target: "ProfitCenter", Convert: core.ConverterPadLeft10},
			{Source: "HIERARCHY", Target: "CostCenterHierarchyGroup"},
			{Target: "ControllingArea", Default: "A000"},
			{Target: "BusinessArea", Default: ""},
			{Target: "FunctionalArea", Default: "YB10"},
			{Target: "Department", Default: ""},
			{Target: "CostingSheet", Default: ""},
			{Target: "IsPrimaryCostsLocked", Default: ""},
			{Target: "IsSecondaryCostsLocked", Default: ""},
			{Target: "IsRevenuesLocked", Default: "X"},
			{Target: "Language", Default: "EN"},
			{Target: "TaxJurisdiction", Default: ""},
			{Target: "CostCenterStandardHierarchy", Default: "A000/MIG"},
			{Target: "RecordQuantityIndicator", Default: ""},
			{Target: "DataOriginType", Default: "MIG"},
		},
		checks: core.QualityChecks{
			Required: []string{"CostCenter", "CostCenterName", "CompanyCode"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"CostCenter", "CompanyCode"},
			},
		},
		mock: func() []core.Record {
			departments := []string{"Assembly", "Machining", "Quality", "Logistics", "Finance", "HR", "Sales", "R&D"}
			records := make([]core.Record, 0, 32)
			for i := 0; i < 32; i++ {
				records = append(records, core.Record{
					"ACCT_UNIT":   fmt.Sprintf("CC%04d", 2000+i*10),
					"DESCRIPTION": fmt.Sprintf("%s %02d", departments[i%len(departments)], i/8+1),
					"COMPANY":     pick(companyCodes, i/16),
					"PERSON":      fmt.Sprintf("Manager %02d", i),
					"DEPT_CAT":    pick([]string{"PROD", "ADMIN", "SALES", "LOGI", "RND"}, i),
					"CURR":        "usd",
					"VALID_FROM":  "20200101",
					"VALID_TO":    "99991231",
					"STATUS":      boolAlternating(i, 21),
					"REGION":      pick(regionCodes, i),
					"PROFIT_CTR":  fmt.Sprintf("PC%03d", 100+i%8),
					"HIERARCHY":   pick([]string{"OPS", "SGA"}, i),
				})
			}
			return records
		},
	}}
}

func newProfitCenter() core.MigrationObject {
	return &object{decl: declaration{
		id:    "ProfitCenter",
		name:  "Profit Center",
		table: "GLPROFIT",
		fields: []string{
			"PC_ID", "PC_DESC", "COMPANY", "PERSON", "SEGMENT", "VALID_FROM",
			"VALID_TO", "STATUS", "REGION", "GROUP_ID",
		},
		mappings: []core.FieldMappingRule{
			{Source: "PC_ID", Target: "ProfitCenter", Convert: core.ConverterPadLeft10},
			{Source: "PC_DESC", Target: "ProfitCenterName"},
			{Source: "COMPANY", Target: "CompanyCode", Convert: core.ConverterPadLeft10},
			{Source: "PERSON", Target: "PersonResponsible"},
			{Source: "SEGMENT", Target: "Segment", ValueMap: map[string]any{
				"IND": "1000_A", "CONS": "1000_B", "SVC": "1000_C",
			}, Default: "1000_A"},
			{Source: "VALID_FROM", Target: "ValidFromDate", Convert: core.ConverterToDate},
			{Source: "VALID_TO", Target: "ValidToDate", Convert: core.ConverterToDate},
			{Source: "STATUS", Target: "IsBlocked", Convert: core.ConverterBoolYN},
			{Source: "REGION", Target: "Region"},
			{Source: "GROUP_ID", Target: "ProfitCenterGroup"},
			{Target: "ControllingArea", Default: "A000"},
			{Target: "ProfitCenterStandardHierarchy", Default: "A000/PRCTR"},
			{Target: "Language", Default: "EN"},
			{Target: "FormatGroup", Default: ""},
			{Target: "AdditionalName", Default: ""},
			{Target: "Department", Default: ""},
			{Target: "TaxJurisdiction", Default: ""},
			{Target: "LockIndicator", Default: ""},
			{Target: "TemplateAllocation", Default: ""},
			{Target: "JointVenture", Default: ""},
			{Target: "EquityType", Default: ""},
			{Target: "TransactionCurrency", Default: "USD"},
			{Target: "CreatedByUser", Default: "MIGRATION"},
			{Target: "DataOriginType", Default: "MIG"},
			{Target: "AuthorizationGroup", Default: "MIGR"},
		},
		checks: core.QualityChecks{
			Required: []string{"ProfitCenter", "ProfitCenterName"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"ProfitCenter"},
			},
		},
		mock: func() []core.Record {
			lines := []string{"Industrial Products", "Consumer Products", "Services"}
			records := make([]core.Record, 0, 20)
			for i := 0; i < 20; i++ {
				records = append(records, core.Record{
					"PC_ID":      fmt.Sprintf("PC%03d", 100+i),
					"PC_DESC":    fmt.Sprintf("%s %02d", lines[i%len(lines)], i/3+1),
					"COMPANY":    pick(companyCodes, i/10),
					"PERSON":     fmt.Sprintf("Controller %02d", i),
					"SEGMENT":    pick([]string{"IND", "CONS", "SVC"}, i),
					"VALID_FROM": "20190101",
					"VALID_TO":   "99991231",
					"STATUS":     boolAlternating(i, 17),
					"REGION":     pick(regionCodes, i),
					"GROUP_ID":   pick([]string{"PG-OPS", "PG-SVC"}, i),
				})
			}
			return records
		},
	}}
}

func newActivityType() core.MigrationObject {
	return &object{decl: declaration{
		id:    "ActivityType",
		name:  "Activity Type",
		table: "GLACTIVITY",
		fields: []string{
			"ACT_ID", "ACT_DESC", "UNIT", "CATEGORY", "COST_CTR", "RATE",
			"CURR", "VALID_FROM", "VALID_TO", "STATUS",
		},
		mappings: []core.FieldMappingRule{
			{Source: "ACT_ID", Target: "ActivityType", Convert: core.ConverterToUpperCase},
			{Source: "ACT_DESC", Target: "ActivityTypeName"},
			{Source: "UNIT", Target: "ActivityUnit", Convert: core.ConverterToUpperCase},
			{Source: "CATEGORY", Target: "ActivityTypeCategory", ValueMap: map[string]any{
				"MAN": "1", "MCH": "1", "SET": "2", "QC": "3",
			}, Default: "1"},
			{Source: "COST_CTR", Target: "DefaultCostCenter", Convert: core.ConverterPadLeft10},
			{Source: "RATE", Target: "PlanPriceAmount", Convert: core.ConverterToDecimal},
			{Source: "CURR", Target: "Currency", Convert: core.ConverterToUpperCase},
			{Source: "VALID_FROM", Target: "ValidFromDate", Convert: core.ConverterToDate},
			{Source: "VALID_TO", Target: "ValidToDate", Convert: core.ConverterToDate},
			{Source: "STATUS", Target: "IsBlocked", Convert: core.ConverterBoolYN},
			{Target: "ControllingArea", Default: "A000"},
			{Target: "CostElement", Default: "0000943000"},
			{Target: "PriceIndicator", Default: "1"},
			{Target: "ActualPriceIndicator", Default: "5"},
			{Target: "AllocationCostElement", Default: "0000943000"},
			{Target: "Language", Default: "EN"},
			{Target: "OutputUnit", Default: ""},
			{Target: "OutputFactor", Default: "1"},
			{Target: "PredistributionIndicator", Default: ""},
			{Target: "VariancePriceIndicator", Default: ""},
			{Target: "AveragePriceIndicator", Default: ""},
			{Target: "PlanQuantitySetIndicator", Default: ""},
			{Target: "LockIndicator", Default: ""},
			{Target: "DataOriginType", Default: "MIG"},
			{Target: "AuthorizationGroup", Default: "MIGR"},
		},
		checks: core.QualityChecks{
			Required: []string{"ActivityType", "ActivityTypeName", "ActivityUnit"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"ActivityType"},
			},
			Range: []core.RangeCheck{
				{Field: "PlanPriceAmount", Min: 0, Max: 5_000},
			},
		},
		mock: func() []core.Record {
			kinds := []string{"Manual Labor", "Machine Hours", "Setup Time", "Quality Check"}
			codes := []string{"MAN", "MCH", "SET", "QC"}
			records := make([]core.Record, 0, 20)
			for i := 0; i < 20; i++ {
				records = append(records, core.Record{
					"ACT_ID":     fmt.Sprintf("act%02d", i),
					"ACT_DESC":   fmt.Sprintf("%s %02d", kinds[i%4], i/4+1),
					"UNIT":       pick([]string{"hr", "hr", "min", "ea"}, i),
					"CATEGORY":   codes[i%4],
					"COST_CTR":   fmt.Sprintf("CC%04d", 2000+(i%32)*10),
					"RATE":       cents(35, 12.5, i),
					"CURR":       "usd",
					"VALID_FROM": "20210101",
					"VALID_TO":   "99991231",
					"STATUS":     boolAlternating(i, 13),
				})
			}
			return records
		},
	}}
}

func newInternalOrder() core.MigrationObject {
	return &object{decl: declaration{
		id:    "InternalOrder",
		name:  "Internal Order",
		table: "GLORDERS",
		fields: []string{
			"ORDER_ID", "ORDER_DESC", "ORDER_TYPE", "COMPANY", "COST_CTR",
			"PROFIT_CTR", "PERSON", "CURR", "PLAN_AMT", "STATUS", "START_DT",
			"END_DT",
		},
		mappings: []core.FieldMappingRule{
			{Source: "ORDER_ID", Target: "InternalOrder", Convert: core.ConverterPadLeft10},
			{Source: "ORDER_DESC", Target: "OrderDescription"},
			{Source: "ORDER_TYPE", Target: "OrderType", ValueMap: map[string]any{
				"INV": "0650", "OH": "0400", "MKT": "0500", "RND": "0600",
			}, Default: "0400"},
			{Source: "COMPANY", Target: "CompanyCode", Convert: core.ConverterPadLeft10},
			{Source: "COST_CTR", Target: "ResponsibleCostCenter", Convert: core.ConverterPadLeft10},
			{Source: "PROFIT_CTR", Target: "ProfitCenter", Convert: core.ConverterPadLeft10},
			{Source: "PERSON", Target: "PersonResponsible"},
			{Source: "CURR", Target: "Currency", Convert: core.ConverterToUpperCase},
			{Source: "PLAN_AMT", Target: "PlannedTotalAmount", Convert: core.ConverterToDecimal},
			{Source: "STATUS", Target: "IsReleased", Convert: core.ConverterBoolYN},
			{Source: "START_DT", Target: "WorkStartDate", Convert: core.ConverterToDate},
			{Source: "END_DT", Target: "PlannedEndDate", Convert: core.ConverterToDate},
			{Target: "ControllingArea", Default: "A000"},
			{Target: "OrderCategory", Default: "01"},
			{Target: "Plant", Default: "1000"},
			{Target: "BusinessArea", Default: ""},
			{Target: "FunctionalArea", Default: ""},
			{Target: "ObjectClass", Default: "OCOST"},
			{Target: "StatisticalOrder", Default: ""},
			{Target: "SettlementCostCenter", Default: ""},
			{Target: "Applicant", Default: "MIGRATION"},
			{Target: "ProcessingGroup", Default: "00"},
			{Target: "TaxJurisdiction", Default: ""},
			{Target: "DataOriginType", Default: "MIG"},
			{Target: "AuthorizationGroup", Default: "MIGR"},
		},
		checks: core.QualityChecks{
			Required: []string{"InternalOrder", "OrderDescription", "OrderType"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"InternalOrder"},
			},
			Range: []core.RangeCheck{
				{Field: "PlannedTotalAmount", Min: 0, Max: 5_000_000},
			},
		},
		mock: func() []core.Record {
			purposes := []string{"Tooling Upgrade", "Trade Fair", "Process Improvement", "Prototype Build"}
			records := make([]core.Record, 0, 25)
			for i := 0; i < 25; i++ {
				records = append(records, core.Record{
					"ORDER_ID":   fmt.Sprintf("IO%05d", 60000+i),
					"ORDER_DESC": fmt.Sprintf("%s %02d", purposes[i%4], i/4+1),
					"ORDER_TYPE": pick([]string{"INV", "OH", "MKT", "RND"}, i),
					"COMPANY":    pick(companyCodes, i/13),
					"COST_CTR":   fmt.Sprintf("CC%04d", 2000+(i%32)*10),
					"PROFIT_CTR": fmt.Sprintf("PC%03d", 100+i%20),
					"PERSON":     fmt.Sprintf("Owner %02d", i),
					"CURR":       "usd",
					"PLAN_AMT":   cents(10000, 3250.75, i),
					"STATUS":     boolAlternating(i, 2),
					"START_DT":   dateYYYYMMDD(2025, i),
					"END_DT":     dateYYYYMMDD(2026, i),
				})
			}
			return records
		},
	}}
}

func newExchangeRate() core.MigrationObject {
	return &object{decl: declaration{
		id:    "ExchangeRate",
		name:  "Exchange Rate",
		table: "CCURRATE",
		fields: []string{
			"FROM_CURR", "TO_CURR", "RATE_TYPE", "VALID_FROM", "RATE",
			"FROM_FACTOR", "TO_FACTOR", "INDIRECT",
		},
		mappings: []core.FieldMappingRule{
			{Source: "FROM_CURR", Target: "SourceCurrency", Convert: core.ConverterToUpperCase},
			{Source: "TO_CURR", Target: "TargetCurrency", Convert: core.ConverterToUpperCase},
			{Source: "RATE_TYPE", Target: "ExchangeRateType", ValueMap: map[string]any{
				"SPOT": "M", "AVG": "P", "HIST": "H",
			}, Default: "M"},
			{Source: "VALID_FROM", Target: "ValidFromDate", Convert: core.ConverterToDate},
			{Source: "RATE", Target: "ExchangeRate", Convert: core.ConverterToDecimal},
			{Source: "FROM_FACTOR", Target: "NumberOfSourceCurrencyUnits", Convert: core.ConverterToInteger},
			{Source: "TO_FACTOR", Target: "NumberOfTargetCurrencyUnits", Convert: core.ConverterToInteger},
			{Source: "INDIRECT", Target: "IsIndirectQuotation", Convert: core.ConverterBoolYN},
			{Target: "DataOriginType", Default: "MIG"},
			{Target: "RateSource", Default: "TREASURY"},
			{Target: "QuotationTime", Default: "120000"},
			{Target: "ToleranceLimit", Default: "10.0"},
			{Target: "FixedRateIndicator", Default: ""},
			{Target: "ReferenceCurrency", Default: ""},
			{Target: "InversionAllowed", Default: "X"},
			{Target: "PlanningRateIndicator", Default: ""},
			{Target: "EMURateIndicator", Default: ""},
			{Target: "WorklistGroup", Default: ""},
			{Target: "MaintenanceAuthorization", Default: "MIGR"},
			{Target: "SpreadAmount", Default: "0.00"},
			{Target: "PremiumAmount", Default: "0.00"},
			{Target: "RateDeviationWarning", Default: ""},
			{Target: "AlternativeRateType", Default: ""},
			{Target: "CreatedByUser", Default: "MIGRATION"},
			{Target: "LastChangeDate", Default: "2025-01-01"},
		},
		checks: core.QualityChecks{
			Required: []string{"SourceCurrency", "TargetCurrency", "ExchangeRate"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"SourceCurrency", "TargetCurrency", "ExchangeRateType", "ValidFromDate"},
			},
			Range: []core.RangeCheck{
				{Field: "ExchangeRate", Min: 0.0001, Max: 100_000},
			},
		},
		mock: func() []core.Record {
			pairs := [][2]string{
				{"eur", "usd"}, {"gbp", "usd"}, {"jpy", "usd"},
				{"sek", "usd"}, {"sgd", "usd"}, {"myr", "usd"},
			}
			records := make([]core.Record, 0, 36)
			for i := 0; i < 36; i++ {
				pair := pairs[i%len(pairs)]
				records = append(records, core.Record{
					"FROM_CURR":   pair[0],
					"TO_CURR":     pair[1],
					"RATE_TYPE":   pick([]string{"SPOT", "AVG", "HIST"}, i/6),
					"VALID_FROM":  dateYYYYMMDD(2025, (i/6)*28),
					"RATE":        cents(0.82, 0.013, i),
					"FROM_FACTOR": "1",
					"TO_FACTOR":   "1",
					"INDIRECT":    false,
				})
			}
			return records
		},
	}}
}

func newPaymentTerms() core.MigrationObject {
	return &object{decl: declaration{
		id:    "PaymentTerms",
		name:  "Payment Terms",
		table: "CPAYTERM",
		fields: []string{
			"TERM_ID", "TERM_DESC", "NET_DAYS", "DISC_DAYS1", "DISC_PCT1",
			"DISC_DAYS2", "DISC_PCT2", "MONTH_END", "BASELINE", "INSTALLMENT",
		},
		mappings: []core.FieldMappingRule{
			{Source: "TERM_ID", Target: "PaymentTerms", Convert: core.ConverterToUpperCase},
			{Source: "TERM_DESC", Target: "PaymentTermsDescription"},
			{Source: "NET_DAYS", Target: "NetPaymentDays", Convert: core.ConverterToInteger},
			{Source: "DISC_DAYS1", Target: "CashDiscount1Days", Convert: core.ConverterToInteger},
			{Source: "DISC_PCT1", Target: "CashDiscount1Percent", Convert: core.ConverterToDecimal},
			{Source: "DISC_DAYS2", Target: "CashDiscount2Days", Convert: core.ConverterToInteger},
			{Source: "DISC_PCT2", Target: "CashDiscount2Percent", Convert: core.ConverterToDecimal},
			{Source: "MONTH_END", Target: "IsMonthEndTerms", Convert: core.ConverterBoolYN},
			{Source: "BASELINE", Target: "BaselineDateType", ValueMap: map[string]any{
				"DOC": "1", "POST": "2", "ENTRY": "3",
			}, Default: "1"},
			{Source: "INSTALLMENT", Target: "IsInstallmentPayment", Convert: core.ConverterBoolYN},
			{Target: "AccountType", Default: "KD"},
			{Target: "DayLimit", Default: "00"},
			{Target: "PaymentBlock", Default: ""},
			{Target: "PaymentMethod", Default: ""},
			{Target: "FixedDay", Default: "00"},
			{Target: "AdditionalMonths", Default: "00"},
			{Target: "RecurringEntriesAllowed", Default: ""},
			{Target: "OwnExplanation", Default: ""},
			{Target: "Language", Default: "EN"},
			{Target: "DataOriginType", Default: "MIG"},
			{Target: "SalesText", Default: ""},
			{Target: "CreatedByUser", Default: "MIGRATION"},
			{Target: "HolidayCalendar", Default: ""},
			{Target: "ToleranceGroup", Default: ""},
			{Target: "ReferenceTerms", Default: ""},
		},
		checks: core.QualityChecks{
			Required: []string{"PaymentTerms", "PaymentTermsDescription"},
			ExactDuplicate: &core.ExactDuplicateCheck{
				Keys: []string{"PaymentTerms"},
			},
			Range: []core.RangeCheck{
				{Field: "NetPaymentDays", Min: 0, Max: 180},
				{Field: "CashDiscount1Percent", Min: 0, Max: 15},
			},
		},
		mock: func() []core.Record {
			records := make([]core.Record, 0, 20)
			for i := 0; i < 20; i++ {
				net := 7 * (1 + i%8)
				records = append(records, core.Record{
					"TERM_ID":     fmt.Sprintf("t%03d", i),
					"TERM_DESC":   fmt.Sprintf("Net %d days, %d%% disc", net, i%4),
					"NET_DAYS":    fmt.Sprintf("%d", net),
					"DISC_DAYS1":  fmt.Sprintf("%d", net/2),
					"DISC_PCT1":   cents(0, 0.75, i%4),
					"DISC_DAYS2":  "0",
					"DISC_PCT2":   0.0,
					"MONTH_END":   boolAlternating(i, 5),
					"BASELINE":    pick([]string{"DOC", "POST", "ENTRY"}, i),
					"INSTALLMENT": boolAlternating(i, 10),
				})
			}
			return records
		},
	}}
}
