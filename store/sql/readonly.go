package sqlstore

import (
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/ib823/sapconnect-sub002/core"
)

// mutatingKeywords are statement verbs the read-only guard refuses. The
// adapters never write to a source system; extraction is strictly SELECT.
var mutatingKeywords = map[string]struct{}{
	"INSERT":   {},
	"UPDATE":   {},
	"DELETE":   {},
	"DROP":     {},
	"ALTER":    {},
	"CREATE":   {},
	"TRUNCATE": {},
	"MERGE":    {},
	"EXEC":     {},
	"EXECUTE":  {},
	"GRANT":    {},
	"REVOKE":   {},
	"CALL":     {},
}

// GuardReadOnly rejects any statement whose leading verb mutates state.
// Comments are stripped first so a commented-out SELECT cannot smuggle a
// mutation, and each statement in a semicolon batch is checked on its own.
func GuardReadOnly(statement string) error {
	stripped := stripSQLComments(statement)
	if strings.TrimSpace(stripped) == "" {
		return goerrors.New(
			"sqlstore: empty statement",
			goerrors.CategoryBadInput,
		).WithTextCode(core.MigrationErrorBadInput)
	}
	for _, part := range strings.Split(stripped, ";") {
		verb := leadingKeyword(part)
		if verb == "" {
			continue
		}
		if _, denied := mutatingKeywords[verb]; denied {
			return goerrors.New(
				"sqlstore: read-only violation: statement verb "+verb+" is not allowed",
				goerrors.CategoryAuthz,
			).WithTextCode(core.AdapterDBErrorReadOnlyViolation)
		}
	}
	return nil
}

func leadingKeyword(statement string) string {
	fields := strings.Fields(strings.TrimSpace(statement))
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(strings.Trim(fields[0], "(;"))
}

// stripSQLComments removes -- line comments and /* */ block comments. String
// literals are respected so quoted text never reads as a comment marker.
func stripSQLComments(statement string) string {
	var out strings.Builder
	out.Grow(len(statement))

	inSingle := false
	inLine := false
	inBlock := false
	for i := 0; i < len(statement); i++ {
		ch := statement[i]
		switch {
		case inLine:
			if ch == '\n' {
				inLine = false
				out.WriteByte(ch)
			}
		case inBlock:
			if ch == '*' && i+1 < len(statement) && statement[i+1] == '/' {
				inBlock = false
				i++
			}
		case inSingle:
			out.WriteByte(ch)
			if ch == '\'' {
				inSingle = false
			}
		default:
			if ch == '\'' {
				inSingle = true
				out.WriteByte(ch)
				continue
			}
			if ch == '-' && i+1 < len(statement) && statement[i+1] == '-' {
				inLine = true
				i++
				continue
			}
			if ch == '/' && i+1 < len(statement) && statement[i+1] == '*' {
				inBlock = true
				i++
				continue
			}
			out.WriteByte(ch)
		}
	}
	return out.String()
}
