package core

import "testing"

func TestRequiredFindings(t *testing.T) {
	checks := QualityChecks{Required: []string{"A", "B"}}
	records := []Record{
		{"A": "x", "B": ""},
		{"A": "", "B": "y"},
	}
	report := RunQualityChecks(checks, records)
	if len(report.Findings) != 2 {
		t.Fatalf("expected 2 findings, got %d: %v", len(report.Findings), report.Findings)
	}
	if !report.Failed() {
		t.Fatalf("required findings must fail the check run")
	}
	for _, finding := range report.Findings {
		if finding.Rule != FindingRequired {
			t.Fatalf("unexpected rule %s", finding.Rule)
		}
	}
}

func TestRequiredSentinelCountsAsEmpty(t *testing.T) {
	checks := QualityChecks{Required: []string{"Supplier"}}
	records := []Record{
		{"Supplier": "0000000000"},
		{"Supplier": nil},
		{"Supplier": "0000100001"},
	}
	report := RunQualityChecks(checks, records)
	if len(report.Findings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(report.Findings))
	}
}

func TestExactDuplicateFindings(t *testing.T) {
	checks := QualityChecks{
		ExactDuplicate: &ExactDuplicateCheck{Keys: []string{"Name", "City"}},
	}
	records := []Record{
		{"Name": "Acme", "City": "Berlin"},
		{"Name": "Acme", "City": "Berlin"},
		{"Name": "Acme", "City": "Munich"},
		{"Name": "Acme", "City": "Berlin"},
	}
	report := RunQualityChecks(checks, records)
	if len(report.Findings) != 2 {
		t.Fatalf("expected 2 duplicate findings, got %d", len(report.Findings))
	}
	if report.Findings[0].RecordIndex != 1 || report.Findings[1].RecordIndex != 3 {
		t.Fatalf("findings must point at non-first members: %v", report.Findings)
	}
	// Duplicates warn, they never fail the phase.
	if report.Failed() {
		t.Fatalf("duplicate findings must not fail the check run")
	}
}

func TestExactDuplicateRequiresAllKeys(t *testing.T) {
	checks := QualityChecks{
		ExactDuplicate: &ExactDuplicateCheck{Keys: []string{"Name", "City"}},
	}
	records := []Record{
		{"Name": "Acme", "City": "Berlin"},
		{"Name": "Acme", "City": "berlin"},
	}
	report := RunQualityChecks(checks, records)
	if len(report.Findings) != 0 {
		t.Fatalf("byte-inequal keys must not be duplicates: %v", report.Findings)
	}
}

func TestFuzzyDuplicateFindings(t *testing.T) {
	checks := QualityChecks{
		FuzzyDuplicate: &FuzzyDuplicateCheck{Keys: []string{"Name", "City"}, Threshold: 0.6},
	}
	records := []Record{
		{"Name": "Acme Industrial Supplies", "City": "Berlin"},
		{"Name": "ACME Industrial Supplies GmbH", "City": "Berlin"},
		{"Name": "Globex", "City": "Tokyo"},
	}
	report := RunQualityChecks(checks, records)
	if len(report.Findings) != 1 {
		t.Fatalf("expected 1 fuzzy finding, got %d: %v", len(report.Findings), report.Findings)
	}
	if report.Findings[0].Rule != FindingFuzzy || report.Findings[0].RecordIndex != 1 {
		t.Fatalf("unexpected fuzzy finding: %v", report.Findings[0])
	}
	if report.Failed() {
		t.Fatalf("fuzzy findings are warnings")
	}
}

func TestRangeFindings(t *testing.T) {
	checks := QualityChecks{
		Range: []RangeCheck{{Field: "Amount", Min: 0, Max: 1000}},
	}
	records := []Record{
		{"Amount": "500.25"},
		{"Amount": float64(-1)},
		{"Amount": 1000},
		{"Amount": "not-a-number"},
	}
	report := RunQualityChecks(checks, records)
	if len(report.Findings) != 2 {
		t.Fatalf("expected 2 range findings, got %d: %v", len(report.Findings), report.Findings)
	}
	if !report.Failed() {
		t.Fatalf("range findings must fail the check run")
	}
}

func TestJaccardBounds(t *testing.T) {
	left := tokenSet("ACME INDUSTRIAL")
	if got := jaccard(left, left); got != 1 {
		t.Fatalf("self similarity = %v, want 1", got)
	}
	if got := jaccard(left, tokenSet("")); got != 0 {
		t.Fatalf("empty similarity = %v, want 0", got)
	}
}
