package core

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestMigrationErrorMapperPassesRichErrors(t *testing.T) {
	original := goerrors.New("core: boom", goerrors.CategoryBadInput).
		WithTextCode(MigrationErrorBadInput)
	mapped := migrationErrorMapper(original)
	if mapped.TextCode != MigrationErrorBadInput {
		t.Fatalf("text code = %s", mapped.TextCode)
	}
	if mapped.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", mapped.Code)
	}
}

func TestMigrationErrorMapperClassifiesPlainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code string
	}{
		{errors.New("core: migration object not registered: X"), MigrationErrorObjectNotFound},
		{errors.New("store: read-only violation"), AdapterDBErrorReadOnlyViolation},
		{errors.New("adapters: live mode is not configured"), AdapterErrorNotConfigured},
		{errors.New("command: object id is required"), MigrationErrorBadInput},
	}
	for _, tc := range cases {
		mapped := migrationErrorMapper(tc.err)
		if mapped == nil {
			t.Fatalf("mapper returned nil for %v", tc.err)
		}
		if mapped.TextCode != tc.code {
			t.Fatalf("mapped %v to %s, want %s", tc.err, mapped.TextCode, tc.code)
		}
	}
}

func TestMigrationErrorMapperNil(t *testing.T) {
	if migrationErrorMapper(nil) != nil {
		t.Fatalf("nil error must map to nil")
	}
}

func TestUnknownConverterErrorCarriesTextCode(t *testing.T) {
	err := unknownConverterError(ConverterTag("toBase64"))
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected rich error, got %T", err)
	}
	if rich.TextCode != MigrationErrorConverterUnknown {
		t.Fatalf("text code = %s", rich.TextCode)
	}
}

func TestObjectNotFoundErrorWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", objectNotFoundError("SalesOrder"))
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected wrapped rich error")
	}
	if rich.TextCode != MigrationErrorObjectNotFound {
		t.Fatalf("text code = %s", rich.TextCode)
	}
}
