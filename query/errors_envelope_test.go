package query

import (
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/ib823/sapconnect-sub002/core"
)

func TestInspectObjectMessage_ValidateReturnsRichError(t *testing.T) {
	err := (InspectObjectMessage{}).Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}

	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected go-errors envelope, got %T", err)
	}
	if rich.Category != goerrors.CategoryValidation {
		t.Fatalf("expected validation category, got %q", rich.Category)
	}
	if rich.TextCode != core.MigrationErrorBadInput {
		t.Fatalf("expected %q text code, got %q", core.MigrationErrorBadInput, rich.TextCode)
	}
}

func TestExecutionWavesMessage_ValidateRejectsBlankEntries(t *testing.T) {
	if err := (ExecutionWavesMessage{ObjectIDs: []string{""}}).Validate(); err == nil {
		t.Fatalf("expected validation error")
	}
	if err := (ExecutionWavesMessage{}).Validate(); err != nil {
		t.Fatalf("empty list should be valid: %v", err)
	}
}
