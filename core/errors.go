package core

import (
	"fmt"
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	MigrationErrorBadInput         = "MIGRATION_BAD_INPUT"
	MigrationErrorObjectNotFound   = "MIGRATION_OBJECT_NOT_FOUND"
	MigrationErrorConverterUnknown = "MIGRATION_CONVERTER_UNKNOWN"
	MigrationErrorMappingInvalid   = "MIGRATION_MAPPING_INVALID"
	MigrationErrorInternal         = "MIGRATION_INTERNAL_ERROR"

	AdapterErrorNotConfigured = "ADAPTER_NOT_CONFIGURED"
	AdapterErrorUnsupported   = "ADAPTER_UNSUPPORTED"

	AdapterDBErrorReadOnlyViolation = "ADAPTER_DB_READ_ONLY_VIOLATION"
	AdapterDBErrorDriverMissing     = "ADAPTER_DB_DRIVER_MISSING"
	AdapterDBErrorConnectionFailed  = "ADAPTER_DB_CONNECTION_FAILED"
	AdapterDBErrorQueryFailed       = "ADAPTER_DB_QUERY_FAILED"
)

type ErrorFactory func(message string, category ...goerrors.Category) *goerrors.Error

type ErrorMapper func(err error) *goerrors.Error

func unknownConverterError(tag ConverterTag) error {
	return goerrors.New(
		fmt.Sprintf("core: unknown converter tag %q", string(tag)),
		goerrors.CategoryBadInput,
	).WithTextCode(MigrationErrorConverterUnknown)
}

func invalidMappingError(cause error) error {
	return goerrors.New(cause.Error(), goerrors.CategoryValidation).
		WithTextCode(MigrationErrorMappingInvalid)
}

func objectNotFoundError(objectID string) error {
	return goerrors.New(
		fmt.Sprintf("core: migration object not registered: %s", strings.TrimSpace(objectID)),
		goerrors.CategoryNotFound,
	).WithTextCode(MigrationErrorObjectNotFound)
}

func migrationErrorMapper(err error) *goerrors.Error {
	if err == nil {
		return nil
	}

	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return ensureMigrationErrorEnvelope(richErr)
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	switch {
	case strings.Contains(msg, "not registered"), strings.Contains(msg, "not found"):
		return newMigrationError(err.Error(), goerrors.CategoryNotFound, MigrationErrorObjectNotFound)
	case strings.Contains(msg, "converter"):
		return newMigrationError(err.Error(), goerrors.CategoryBadInput, MigrationErrorConverterUnknown)
	case strings.Contains(msg, "read-only"), strings.Contains(msg, "read only"):
		return newMigrationError(err.Error(), goerrors.CategoryAuthz, AdapterDBErrorReadOnlyViolation)
	case strings.Contains(msg, "not configured"), strings.Contains(msg, "not implemented"):
		return newMigrationError(err.Error(), goerrors.CategoryOperation, AdapterErrorNotConfigured)
	case strings.Contains(msg, "required"), strings.Contains(msg, "invalid"):
		return newMigrationError(err.Error(), goerrors.CategoryBadInput, MigrationErrorBadInput)
	}

	mapped := goerrors.MapToError(err, goerrors.DefaultErrorMappers())
	return ensureMigrationErrorEnvelope(mapped)
}

func newMigrationError(message string, category goerrors.Category, textCode string) *goerrors.Error {
	return ensureMigrationErrorEnvelope(
		goerrors.New(message, category).
			WithTextCode(textCode),
	)
}

func ensureMigrationErrorEnvelope(err *goerrors.Error) *goerrors.Error {
	if err == nil {
		return nil
	}
	if err.Code == 0 {
		err.Code = migrationHTTPStatus(err.Category)
	}
	if strings.TrimSpace(err.TextCode) == "" {
		err.TextCode = defaultMigrationTextCode(err.Category)
	}
	if err.Category == goerrors.CategoryInternal && strings.TrimSpace(err.Message) == "" {
		err.Message = "An unexpected error occurred"
	}
	return err
}

func defaultMigrationTextCode(category goerrors.Category) string {
	switch category {
	case goerrors.CategoryBadInput:
		return MigrationErrorBadInput
	case goerrors.CategoryValidation:
		return MigrationErrorMappingInvalid
	case goerrors.CategoryNotFound:
		return MigrationErrorObjectNotFound
	case goerrors.CategoryAuthz:
		return AdapterDBErrorReadOnlyViolation
	case goerrors.CategoryOperation:
		return AdapterErrorUnsupported
	case goerrors.CategoryExternal:
		return AdapterDBErrorConnectionFailed
	default:
		return MigrationErrorInternal
	}
}

func migrationHTTPStatus(category goerrors.Category) int {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return http.StatusBadRequest
	case goerrors.CategoryNotFound:
		return http.StatusNotFound
	case goerrors.CategoryAuthz:
		return http.StatusForbidden
	case goerrors.CategoryConflict:
		return http.StatusConflict
	case goerrors.CategoryExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
