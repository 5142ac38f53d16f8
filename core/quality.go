package core

import (
	"fmt"
	"strconv"
	"strings"
)

// RunQualityChecks evaluates the descriptor against a post-transform record
// set. It never fails; every observation is a finding. Required and range
// findings count as errors, duplicate and fuzzy findings as warnings.
func RunQualityChecks(checks QualityChecks, records []Record) CheckReport {
	report := CheckReport{}

	for idx, record := range records {
		for _, field := range checks.Required {
			if isEmptyRequiredValue(record[field]) {
				report.add(Finding{
					Rule:        FindingRequired,
					RecordIndex: idx,
					Field:       field,
					Message:     fmt.Sprintf("required field %s is empty", field),
				})
			}
		}
	}

	if checks.ExactDuplicate != nil && len(checks.ExactDuplicate.Keys) > 0 {
		report.appendExactDuplicates(checks.ExactDuplicate.Keys, records)
	}
	if checks.FuzzyDuplicate != nil && len(checks.FuzzyDuplicate.Keys) > 0 {
		report.appendFuzzyDuplicates(*checks.FuzzyDuplicate, records)
	}

	for _, bound := range checks.Range {
		for idx, record := range records {
			value, ok := coerceNumeric(record[bound.Field])
			if !ok {
				report.add(Finding{
					Rule:        FindingRange,
					RecordIndex: idx,
					Field:       bound.Field,
					Message:     fmt.Sprintf("field %s is not numeric", bound.Field),
				})
				continue
			}
			if value < bound.Min || value > bound.Max {
				report.add(Finding{
					Rule:        FindingRange,
					RecordIndex: idx,
					Field:       bound.Field,
					Message: fmt.Sprintf(
						"field %s value %s outside [%s, %s]",
						bound.Field,
						strconv.FormatFloat(value, 'f', -1, 64),
						strconv.FormatFloat(bound.Min, 'f', -1, 64),
						strconv.FormatFloat(bound.Max, 'f', -1, 64),
					),
				})
			}
		}
	}

	return report
}

func (r *CheckReport) add(finding Finding) {
	r.Findings = append(r.Findings, finding)
	switch finding.Rule {
	case FindingRequired, FindingRange:
		r.Errors++
	default:
		r.Warnings++
	}
}

// appendExactDuplicates groups records by the byte-exact key tuple; every
// non-first member of a group yields one finding.
func (r *CheckReport) appendExactDuplicates(keys []string, records []Record) {
	firstSeen := make(map[string]int, len(records))
	for idx, record := range records {
		tuple := duplicateKey(keys, record)
		original, seen := firstSeen[tuple]
		if !seen {
			firstSeen[tuple] = idx
			continue
		}
		r.add(Finding{
			Rule:        FindingDuplicate,
			RecordIndex: idx,
			Field:       strings.Join(keys, "+"),
			Message:     fmt.Sprintf("duplicate of record %d on keys %s", original, strings.Join(keys, ", ")),
		})
	}
}

// appendFuzzyDuplicates compares every pair with token-set Jaccard similarity
// over the concatenated key fields. Quadratic; record volumes per object stay
// below 10^4.
func (r *CheckReport) appendFuzzyDuplicates(check FuzzyDuplicateCheck, records []Record) {
	tokenSets := make([]map[string]struct{}, len(records))
	for idx, record := range records {
		tokenSets[idx] = tokenSet(duplicateKey(check.Keys, record))
	}
	for i := 0; i < len(records); i++ {
		for j := i + 1; j < len(records); j++ {
			similarity := jaccard(tokenSets[i], tokenSets[j])
			if similarity >= check.Threshold {
				r.add(Finding{
					Rule:        FindingFuzzy,
					RecordIndex: j,
					Field:       strings.Join(check.Keys, "+"),
					Message: fmt.Sprintf(
						"record %d resembles record %d (similarity %.2f)",
						j, i, similarity,
					),
				})
			}
		}
	}
}

func duplicateKey(keys []string, record Record) string {
	parts := make([]string, len(keys))
	for idx, key := range keys {
		parts[idx] = valueToString(record[key])
	}
	return strings.Join(parts, "\x1f")
}

func tokenSet(text string) map[string]struct{} {
	tokens := strings.Fields(strings.ToUpper(strings.ReplaceAll(text, "\x1f", " ")))
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}

func jaccard(left, right map[string]struct{}) float64 {
	if len(left) == 0 && len(right) == 0 {
		return 1
	}
	if len(left) == 0 || len(right) == 0 {
		return 0
	}
	intersection := 0
	for token := range left {
		if _, ok := right[token]; ok {
			intersection++
		}
	}
	union := len(left) + len(right) - intersection
	return float64(intersection) / float64(union)
}

func isEmptyRequiredValue(value any) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		trimmed := strings.TrimSpace(typed)
		return trimmed == "" || trimmed == RequiredFieldSentinel
	default:
		return false
	}
}

func coerceNumeric(value any) (float64, bool) {
	switch typed := value.(type) {
	case float64:
		return typed, true
	case float32:
		return float64(typed), true
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
