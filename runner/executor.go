package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/ib823/sapconnect-sub002/core"
)

// Executor runs the four phases of one migration object. Phases are totally
// ordered; extract and transform failures are fatal to the object, a failing
// validate skips load, a failing load only degrades the aggregate status.
type Executor struct {
	Gateway core.Gateway
	Logger  core.Logger
	Now     func() time.Time
}

func NewExecutor(gateway core.Gateway) *Executor {
	return &Executor{
		Gateway: gateway,
		Now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Execute never returns an error: every failure is captured in the object
// result so the scheduler can keep the wave going.
func (e *Executor) Execute(ctx context.Context, object core.MigrationObject) core.ObjectResult {
	startedAt := e.now()
	result := core.ObjectResult{
		ObjectID: object.ObjectID(),
		Name:     object.Name(),
		Status:   core.ObjectCompleted,
	}

	extracted, extractResult := e.runExtract(ctx, object)
	result.Phases.Extract = extractResult
	result.Stats.ExtractedRecords = extractResult.RecordCount
	if extractResult.Status == core.PhaseFailed {
		result.Status = core.ObjectError
		result.Phases.Transform = skippedPhase()
		result.Phases.Validate = skippedPhase()
		result.Phases.Load = skippedPhase()
		result.Stats.DurationMs = e.since(startedAt)
		return result
	}

	transformed, transformResult := e.runTransform(object, extracted)
	result.Phases.Transform = transformResult
	result.Stats.TransformedRecords = transformResult.RecordCount
	if transformResult.Status == core.PhaseFailed {
		result.Status = core.ObjectError
		result.Phases.Validate = skippedPhase()
		result.Phases.Load = skippedPhase()
		result.Stats.DurationMs = e.since(startedAt)
		return result
	}

	report, validateResult := e.runValidate(object, transformed)
	result.Phases.Validate = validateResult
	result.Findings = report.Findings
	if report.Failed() {
		result.Status = core.ObjectValidationFailed
		result.Phases.Load = skippedPhase()
		result.Stats.DurationMs = e.since(startedAt)
		return result
	}
	if report.Warnings > 0 {
		result.Status = core.ObjectCompletedWithErrors
	}

	loadResult, loaded := e.runLoad(ctx, object, transformed)
	result.Phases.Load = loadResult
	result.Stats.LoadedRecords = loaded
	if loadResult.Status == core.PhaseFailed {
		// Load failure does not cascade.
		result.Status = core.ObjectCompletedWithErrors
	}

	result.Stats.DurationMs = e.since(startedAt)
	return result
}

func (e *Executor) runExtract(ctx context.Context, object core.MigrationObject) ([]core.Record, core.PhaseResult) {
	startedAt := e.now()
	records, err := e.Gateway.Extract(ctx, object)
	if err != nil {
		return nil, core.PhaseResult{
			Status:     core.PhaseFailed,
			ErrorCount: 1,
			DurationMs: e.since(startedAt),
			Details:    err.Error(),
		}
	}
	return records, core.PhaseResult{
		Status:      core.PhaseCompleted,
		RecordCount: len(records),
		DurationMs:  e.since(startedAt),
	}
}

func (e *Executor) runTransform(object core.MigrationObject, records []core.Record) ([]core.Record, core.PhaseResult) {
	startedAt := e.now()
	if len(records) == 0 {
		// Nothing to map; the phase completes without a transform result.
		return nil, core.PhaseResult{
			Status:     core.PhaseCompleted,
			DurationMs: e.since(startedAt),
			Details:    "no records extracted",
		}
	}

	transformed, err := core.ApplyRuleSet(object.FieldMappings(), records)
	if err != nil {
		return nil, core.PhaseResult{
			Status:     core.PhaseFailed,
			ErrorCount: 1,
			DurationMs: e.since(startedAt),
			Details:    err.Error(),
		}
	}

	if hooker, ok := object.(core.TransformHooker); ok {
		outcome, err := hooker.TransformHook(transformed)
		if err != nil {
			return nil, core.PhaseResult{
				Status:     core.PhaseFailed,
				ErrorCount: 1,
				DurationMs: e.since(startedAt),
				Details:    err.Error(),
			}
		}
		transformed = outcome.Records
	}

	return transformed, core.PhaseResult{
		Status:      core.PhaseCompleted,
		RecordCount: len(transformed),
		DurationMs:  e.since(startedAt),
	}
}

func (e *Executor) runValidate(object core.MigrationObject, records []core.Record) (core.CheckReport, core.PhaseResult) {
	startedAt := e.now()
	report := core.RunQualityChecks(object.QualityChecks(), records)
	status := core.PhaseCompleted
	details := ""
	if report.Failed() {
		status = core.PhaseFailed
		details = fmt.Sprintf("%d blocking findings", report.Errors)
	} else if report.Warnings > 0 {
		details = fmt.Sprintf("%d warnings", report.Warnings)
	}
	return report, core.PhaseResult{
		Status:      status,
		RecordCount: len(records),
		ErrorCount:  report.Errors,
		DurationMs:  e.since(startedAt),
		Details:     details,
	}
}

func (e *Executor) runLoad(ctx context.Context, object core.MigrationObject, records []core.Record) (core.PhaseResult, int) {
	startedAt := e.now()
	report, err := e.Gateway.Load(ctx, object, records)
	if err != nil {
		return core.PhaseResult{
			Status:     core.PhaseFailed,
			ErrorCount: 1,
			DurationMs: e.since(startedAt),
			Details:    err.Error(),
		}, 0
	}
	return core.PhaseResult{
		Status:      core.PhaseCompleted,
		RecordCount: report.RecordCount,
		DurationMs:  e.since(startedAt),
		Details:     report.Details,
	}, report.SuccessCount
}

func skippedPhase() core.PhaseResult {
	return core.PhaseResult{Status: core.PhaseSkipped}
}

func (e *Executor) now() time.Time {
	if e != nil && e.Now != nil {
		return e.Now().UTC()
	}
	return time.Now().UTC()
}

func (e *Executor) since(startedAt time.Time) int64 {
	return e.now().Sub(startedAt).Milliseconds()
}
