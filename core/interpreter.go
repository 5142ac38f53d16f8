package core

// ApplyRules builds one target record from one source record by walking the
// rule list in order. The interpreter is stateless and never fails on data;
// the only errors are structural (invalid rule shape, unknown converter tag).
//
// Per rule: read the source value, fall back to the default when absent or
// empty, resolve the value map with default-then-raw fallthrough, apply the
// converter, assign. A later rule targeting the same field overwrites earlier
// assignments.
func ApplyRules(rules []FieldMappingRule, source Record) (Record, error) {
	target := make(Record, len(rules))
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return nil, invalidMappingError(err)
		}

		var value any
		defined := false
		if rule.Source != "" {
			value, defined = source[rule.Source]
		}

		if !defined || value == nil || value == "" {
			if rule.Default == nil {
				target[rule.Target] = ""
				continue
			}
			value = rule.Default
		}

		if len(rule.ValueMap) > 0 {
			if mapped, ok := rule.ValueMap[valueMapKey(value)]; ok {
				value = mapped
			} else if rule.Default != nil {
				value = rule.Default
			}
		}

		if rule.Convert != "" {
			converted, err := ApplyConverter(rule.Convert, value)
			if err != nil {
				return nil, err
			}
			value = converted
		}

		target[rule.Target] = value
	}
	return target, nil
}

// ApplyRuleSet maps the rule list across every input record, preserving
// order. One output record per input record.
func ApplyRuleSet(rules []FieldMappingRule, records []Record) ([]Record, error) {
	out := make([]Record, 0, len(records))
	for _, record := range records {
		mapped, err := ApplyRules(rules, record)
		if err != nil {
			return nil, err
		}
		out = append(out, mapped)
	}
	return out, nil
}

// valueMapKey is byte-exact for string sources; non-string scalars use their
// canonical string form.
func valueMapKey(value any) string {
	if text, ok := value.(string); ok {
		return text
	}
	return valueToString(value)
}
