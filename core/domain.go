package core

import (
	"fmt"
	"strings"
	"time"
)

// Record is a flat bag of scalar values keyed by field code. Source records
// carry source-system field codes, target records carry target-system codes.
type Record map[string]any

func (r Record) Clone() Record {
	if r == nil {
		return Record{}
	}
	out := make(Record, len(r))
	for key, value := range r {
		out[key] = value
	}
	return out
}

func CloneRecords(records []Record) []Record {
	out := make([]Record, len(records))
	for idx, record := range records {
		out[idx] = record.Clone()
	}
	return out
}

type Mode string

const (
	ModeMock Mode = "mock"
	ModeLive Mode = "live"
)

func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.TrimSpace(strings.ToLower(raw))) {
	case ModeMock, "":
		return ModeMock, nil
	case ModeLive:
		return ModeLive, nil
	default:
		return "", fmt.Errorf("core: unsupported mode %q", raw)
	}
}

type Product string

const (
	ProductLN     Product = "LN"
	ProductM3     Product = "M3"
	ProductCSI    Product = "CSI"
	ProductLawson Product = "LAWSON"
)

// FieldMappingRule maps one source field onto one target field. Legal shapes:
// source only, source+convert, source+valueMap, or target+default with no
// source (a constant rule). Default may accompany any shape and is used when
// the source value is absent or empty, and as the valueMap fallthrough.
type FieldMappingRule struct {
	Source   string
	Target   string
	Convert  ConverterTag
	Default  any
	ValueMap map[string]any
}

func (r FieldMappingRule) Validate() error {
	if strings.TrimSpace(r.Target) == "" {
		return fmt.Errorf("core: mapping rule target is required")
	}
	if r.Convert != "" && len(r.ValueMap) > 0 {
		return fmt.Errorf("core: mapping rule %q declares both convert and valueMap", r.Target)
	}
	if strings.TrimSpace(r.Source) == "" {
		if r.Default == nil {
			return fmt.Errorf("core: constant rule %q requires a default", r.Target)
		}
		if r.Convert != "" || len(r.ValueMap) > 0 {
			return fmt.Errorf("core: constant rule %q cannot convert or map values", r.Target)
		}
	}
	return nil
}

func CopyRules(rules []FieldMappingRule) []FieldMappingRule {
	out := make([]FieldMappingRule, len(rules))
	copy(out, rules)
	for idx, rule := range rules {
		if len(rule.ValueMap) == 0 {
			continue
		}
		mapped := make(map[string]any, len(rule.ValueMap))
		for key, value := range rule.ValueMap {
			mapped[key] = value
		}
		out[idx].ValueMap = mapped
	}
	return out
}

// RequiredFieldSentinel marks initial/unassigned keys in the source dumps and
// counts as empty for required checks.
const RequiredFieldSentinel = "0000000000"

type ExactDuplicateCheck struct {
	Keys []string
}

type FuzzyDuplicateCheck struct {
	Keys      []string
	Threshold float64
}

type RangeCheck struct {
	Field string
	Min   float64
	Max   float64
}

type QualityChecks struct {
	Required       []string
	ExactDuplicate *ExactDuplicateCheck
	FuzzyDuplicate *FuzzyDuplicateCheck
	Range          []RangeCheck
}

type FindingRule string

const (
	FindingRequired  FindingRule = "required"
	FindingDuplicate FindingRule = "duplicate"
	FindingFuzzy     FindingRule = "fuzzy"
	FindingRange     FindingRule = "range"
)

// Finding is a structured validation observation, never an error.
type Finding struct {
	Rule        FindingRule
	RecordIndex int
	Field       string
	Message     string
}

type CheckReport struct {
	Findings []Finding
	Errors   int
	Warnings int
}

// Failed reports the phase outcome: required and range findings fail the
// validate phase, duplicate findings only warn.
func (r CheckReport) Failed() bool {
	return r.Errors > 0
}

type PhaseStatus string

const (
	PhaseCompleted PhaseStatus = "completed"
	PhaseFailed    PhaseStatus = "failed"
	PhaseSkipped   PhaseStatus = "skipped"
)

type PhaseResult struct {
	Status      PhaseStatus
	RecordCount int
	ErrorCount  int
	DurationMs  int64
	Details     string
}

type PhaseSet struct {
	Extract   PhaseResult
	Transform PhaseResult
	Validate  PhaseResult
	Load      PhaseResult
}

type ObjectStatus string

const (
	ObjectCompleted           ObjectStatus = "completed"
	ObjectCompletedWithErrors ObjectStatus = "completed_with_errors"
	ObjectValidationFailed    ObjectStatus = "validation_failed"
	ObjectError               ObjectStatus = "error"
)

type ObjectStats struct {
	ExtractedRecords   int
	TransformedRecords int
	LoadedRecords      int
	DurationMs         int64
}

type ObjectResult struct {
	ObjectID string
	Name     string
	Status   ObjectStatus
	Phases   PhaseSet
	Stats    ObjectStats
	Findings []Finding
}

// Succeeded is true for terminal states that loaded every record.
func (r ObjectResult) Succeeded() bool {
	return r.Status == ObjectCompleted
}

type ProgressFunc func(objectID string, result ObjectResult)

type RunRequest struct {
	ObjectIDs   []string
	MaxParallel int
	Progress    ProgressFunc
}

type RunStats struct {
	Total           int
	Completed       int
	Failed          int
	Waves           int
	ExecutionOrder  []string
	TotalDurationMs int64
}

type RunResult struct {
	RunID   string
	Results []ObjectResult
	Stats   RunStats
}

// TransformOutcome carries the post-hook record set plus hook-specific
// byproducts (the Business Partner role merge reports merged tuples here).
type TransformOutcome struct {
	Records []Record
	Extra   map[string]any
}

// SourceQuery describes where an object's records live in the source system.
type SourceQuery struct {
	Table    string
	Fields   []string
	Filter   map[string]any
	OrderBy  string
	DataArea string
}

// LoadReport is the sink-side view of a load phase.
type LoadReport struct {
	RecordCount  int
	SuccessCount int
	Details      string
}

// RunLedgerEntry is one persisted object outcome within a run.
type RunLedgerEntry struct {
	ID                 string
	RunID              string
	ObjectID           string
	ObjectName         string
	Status             ObjectStatus
	ExtractedRecords   int
	TransformedRecords int
	LoadedRecords      int
	FindingCount       int
	DurationMs         int64
	CreatedAt          time.Time
}

type ObjectDescriptor struct {
	ObjectID     string
	Name         string
	MappingCount int
	MockRecords  int
}

type ObjectInspection struct {
	ObjectID      string
	Name          string
	FieldMappings []FieldMappingRule
	QualityChecks QualityChecks
	MockRecords   int
}
