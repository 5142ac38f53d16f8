package core

import (
	"fmt"
	"strconv"
	"strings"
)

// ConverterTag selects a pure value transformation. The set is closed; rules
// referencing an unknown tag fail the Transform phase of their object.
type ConverterTag string

const (
	ConverterToDate      ConverterTag = "toDate"
	ConverterToDecimal   ConverterTag = "toDecimal"
	ConverterToInteger   ConverterTag = "toInteger"
	ConverterToUpperCase ConverterTag = "toUpperCase"
	ConverterBoolYN      ConverterTag = "boolYN"
	ConverterPadLeft10   ConverterTag = "padLeft10"
	ConverterPadLeft40   ConverterTag = "padLeft40"
)

func IsSupportedConverter(tag ConverterTag) bool {
	switch tag {
	case ConverterToDate,
		ConverterToDecimal,
		ConverterToInteger,
		ConverterToUpperCase,
		ConverterBoolYN,
		ConverterPadLeft10,
		ConverterPadLeft40:
		return true
	default:
		return false
	}
}

// ApplyConverter applies the tagged transformation. Converters are total and
// never fail on data; the only error is an unknown tag.
func ApplyConverter(tag ConverterTag, value any) (any, error) {
	switch tag {
	case ConverterToDate:
		return convertToDate(value), nil
	case ConverterToDecimal:
		return convertToDecimal(value), nil
	case ConverterToInteger:
		return convertToInteger(value), nil
	case ConverterToUpperCase:
		return strings.ToUpper(valueToString(value)), nil
	case ConverterBoolYN:
		return convertBoolYN(value), nil
	case ConverterPadLeft10:
		return padLeft(value, 10), nil
	case ConverterPadLeft40:
		return padLeft(value, 40), nil
	default:
		return nil, unknownConverterError(tag)
	}
}

// convertToDate turns YYYYMMDD into YYYY-MM-DD; anything malformed becomes the
// empty string.
func convertToDate(value any) string {
	raw := strings.TrimSpace(valueToString(value))
	if raw == "" {
		return ""
	}
	if len(raw) == 10 && raw[4] == '-' && raw[7] == '-' {
		compact := raw[:4] + raw[5:7] + raw[8:]
		if isDigits(compact) {
			return raw
		}
	}
	if len(raw) != 8 || !isDigits(raw) {
		return ""
	}
	return raw[:4] + "-" + raw[4:6] + "-" + raw[6:]
}

// convertToDecimal yields a decimal string with the input's precision
// preserved; non-numeric input becomes "0.00".
func convertToDecimal(value any) string {
	switch typed := value.(type) {
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(typed), 'f', -1, 32)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case bool:
		return "0.00"
	case nil:
		return "0.00"
	}
	raw := strings.TrimSpace(valueToString(value))
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		return "0.00"
	}
	return raw
}

// convertToInteger truncates toward zero; non-numeric input becomes 0.
func convertToInteger(value any) int64 {
	switch typed := value.(type) {
	case int:
		return int64(typed)
	case int64:
		return typed
	case float64:
		return int64(typed)
	case float32:
		return int64(typed)
	}
	raw := strings.TrimSpace(valueToString(value))
	if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return parsed
	}
	if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
		return int64(parsed)
	}
	return 0
}

// convertBoolYN follows the "flag on empty" pattern: set flags become "X",
// everything else the empty string.
func convertBoolYN(value any) string {
	switch typed := value.(type) {
	case bool:
		if typed {
			return "X"
		}
		return ""
	case int:
		if typed != 0 {
			return "X"
		}
		return ""
	case int64:
		if typed != 0 {
			return "X"
		}
		return ""
	case float64:
		if typed != 0 {
			return "X"
		}
		return ""
	}
	switch strings.TrimSpace(valueToString(value)) {
	case "X", "Y", "true", "1":
		return "X"
	default:
		return ""
	}
}

func padLeft(value any, width int) string {
	raw := valueToString(value)
	if len(raw) >= width {
		return raw
	}
	return strings.Repeat("0", width-len(raw)) + raw
}

func valueToString(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(typed), 'f', -1, 32)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case bool:
		return strconv.FormatBool(typed)
	default:
		return fmt.Sprint(typed)
	}
}

func isDigits(raw string) bool {
	if raw == "" {
		return false
	}
	for _, char := range raw {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}
