package command

import (
	"context"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/ib823/sapconnect-sub002/core"
)

func TestRunObjectMessage_ValidateReturnsRichError(t *testing.T) {
	err := (RunObjectMessage{}).Validate()
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

func TestRunAllMessage_ValidateRejectsBlankObjectID(t *testing.T) {
	err := (RunAllMessage{Request: core.RunRequest{ObjectIDs: []string{"BusinessPartner", " "}}}).Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}

	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected go-errors envelope, got %T", err)
	}
	if rich.TextCode != core.MigrationErrorBadInput {
		t.Fatalf("text code = %q", rich.TextCode)
	}
}

func TestRunAllCommand_NilServiceReturnsRichError(t *testing.T) {
	var cmd *RunAllCommand
	err := cmd.Execute(context.Background(), RunAllMessage{})
	if err == nil {
		t.Fatalf("expected command dependency error")
	}

	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected go-errors envelope, got %T", err)
	}
	if rich.Category != goerrors.CategoryInternal {
		t.Fatalf("expected internal category, got %q", rich.Category)
	}
}
