package core

import "testing"

func TestApplyRulesDirectCopy(t *testing.T) {
	rules := []FieldMappingRule{
		{Source: "NAME1", Target: "BusinessPartnerFullName"},
	}
	target, err := ApplyRules(rules, Record{"NAME1": "Acme Corp"})
	if err != nil {
		t.Fatalf("apply rules: %v", err)
	}
	if target["BusinessPartnerFullName"] != "Acme Corp" {
		t.Fatalf("unexpected target: %v", target)
	}
}

func TestApplyRulesConvert(t *testing.T) {
	rules := []FieldMappingRule{
		{Source: "KOSTL", Target: "CostCenter", Convert: ConverterPadLeft10},
	}
	target, err := ApplyRules(rules, Record{"KOSTL": "CC1001"})
	if err != nil {
		t.Fatalf("apply rules: %v", err)
	}
	if target["CostCenter"] != "0000CC1001" {
		t.Fatalf("CostCenter = %v, want 0000CC1001", target["CostCenter"])
	}
}

func TestApplyRulesEmptySourceWithoutDefault(t *testing.T) {
	rules := []FieldMappingRule{
		{Source: "ORT01", Target: "CityName"},
		{Source: "MISSING", Target: "Region"},
	}
	target, err := ApplyRules(rules, Record{"ORT01": ""})
	if err != nil {
		t.Fatalf("apply rules: %v", err)
	}
	if target["CityName"] != "" || target["Region"] != "" {
		t.Fatalf("empty sources must produce empty targets: %v", target)
	}
}

func TestApplyRulesDefaultOnMissingSource(t *testing.T) {
	rules := []FieldMappingRule{
		{Source: "WAERS", Target: "CurrencyCode", Default: "USD"},
		{Target: "MigrationFlag", Default: "X"},
	}
	target, err := ApplyRules(rules, Record{})
	if err != nil {
		t.Fatalf("apply rules: %v", err)
	}
	if target["CurrencyCode"] != "USD" {
		t.Fatalf("CurrencyCode = %v, want default USD", target["CurrencyCode"])
	}
	if target["MigrationFlag"] != "X" {
		t.Fatalf("constant rule not applied: %v", target)
	}
}

func TestApplyRulesValueMap(t *testing.T) {
	rules := []FieldMappingRule{
		{
			Source: "KTOKD",
			Target: "BusinessPartnerGrouping",
			ValueMap: map[string]any{
				"0001": "BP01",
				"ZDOM": "BP02",
			},
			Default: "BP99",
		},
	}

	target, err := ApplyRules(rules, Record{"KTOKD": "0001"})
	if err != nil {
		t.Fatalf("apply rules: %v", err)
	}
	if target["BusinessPartnerGrouping"] != "BP01" {
		t.Fatalf("mapped value = %v", target["BusinessPartnerGrouping"])
	}

	// Unmatched values fall through to the default.
	target, _ = ApplyRules(rules, Record{"KTOKD": "XXXX"})
	if target["BusinessPartnerGrouping"] != "BP99" {
		t.Fatalf("fallthrough value = %v, want BP99", target["BusinessPartnerGrouping"])
	}
}

func TestApplyRulesValueMapIsByteExact(t *testing.T) {
	rules := []FieldMappingRule{
		{Source: "LAND1", Target: "Country", ValueMap: map[string]any{"de": "Germany"}},
	}
	target, err := ApplyRules(rules, Record{"LAND1": "DE"})
	if err != nil {
		t.Fatalf("apply rules: %v", err)
	}
	if target["Country"] != "DE" {
		t.Fatalf("case-mismatched lookup must retain raw value, got %v", target["Country"])
	}
}

func TestApplyRulesValueMapWithoutDefaultRetainsRaw(t *testing.T) {
	rules := []FieldMappingRule{
		{Source: "SPRAS", Target: "Language", ValueMap: map[string]any{"D": "DE"}},
	}
	target, _ := ApplyRules(rules, Record{"SPRAS": "E"})
	if target["Language"] != "E" {
		t.Fatalf("unmatched value without default must pass through, got %v", target["Language"])
	}
}

func TestApplyRulesLaterRuleOverwrites(t *testing.T) {
	rules := []FieldMappingRule{
		{Source: "NAME1", Target: "SearchTerm"},
		{Source: "NAME1", Target: "SearchTerm", Convert: ConverterToUpperCase},
	}
	target, err := ApplyRules(rules, Record{"NAME1": "Acme"})
	if err != nil {
		t.Fatalf("apply rules: %v", err)
	}
	if target["SearchTerm"] != "ACME" {
		t.Fatalf("later rule must overwrite, got %v", target["SearchTerm"])
	}
}

func TestApplyRulesUnknownConverterFails(t *testing.T) {
	rules := []FieldMappingRule{
		{Source: "NAME1", Target: "Name", Convert: ConverterTag("toSnakeCase")},
	}
	if _, err := ApplyRules(rules, Record{"NAME1": "x"}); err == nil {
		t.Fatalf("unknown converter tag must fail the transform")
	}
}

func TestApplyRulesInvalidShapeFails(t *testing.T) {
	rules := []FieldMappingRule{
		{Source: "NAME1"},
	}
	if _, err := ApplyRules(rules, Record{}); err == nil {
		t.Fatalf("rule without target must fail")
	}
}

func TestApplyRuleSetPreservesCount(t *testing.T) {
	rules := []FieldMappingRule{
		{Source: "MATNR", Target: "Material", Convert: ConverterPadLeft40},
	}
	records := []Record{
		{"MATNR": "M-1"},
		{"MATNR": "M-2"},
		{"MATNR": ""},
	}
	out, err := ApplyRuleSet(rules, records)
	if err != nil {
		t.Fatalf("apply rule set: %v", err)
	}
	if len(out) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(out))
	}
	if out[2]["Material"] != "" {
		t.Fatalf("empty source must yield empty target, got %v", out[2]["Material"])
	}
}
