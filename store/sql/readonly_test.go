package sqlstore

import (
	"strings"
	"testing"
)

func TestGuardReadOnlyAllowsSelects(t *testing.T) {
	statements := []string{
		"SELECT * FROM tcbdc210100",
		"select NAME1, ORT01 from KNA1 where MANDT = '100'",
		"  WITH recent AS (SELECT * FROM MARA) SELECT * FROM recent",
		"(SELECT COUNT(*) FROM OCUSMA)",
	}
	for _, statement := range statements {
		if err := GuardReadOnly(statement); err != nil {
			t.Fatalf("statement %q rejected: %v", statement, err)
		}
	}
}

func TestGuardReadOnlyRejectsEveryMutatingVerb(t *testing.T) {
	verbs := []string{
		"INSERT", "UPDATE", "DELETE", "DROP", "ALTER", "CREATE",
		"TRUNCATE", "MERGE", "EXEC", "EXECUTE", "GRANT", "REVOKE", "CALL",
	}
	for _, verb := range verbs {
		statement := verb + " something"
		if err := GuardReadOnly(statement); err == nil {
			t.Fatalf("verb %s must be rejected", verb)
		}
		if err := GuardReadOnly(strings.ToLower(statement)); err == nil {
			t.Fatalf("lowercase %s must be rejected", verb)
		}
	}
}

func TestGuardReadOnlyRejectsBatchedMutation(t *testing.T) {
	if err := GuardReadOnly("SELECT 1; DELETE FROM KNA1"); err == nil {
		t.Fatalf("mutating batch member must be rejected")
	}
}

func TestGuardReadOnlyIgnoresComments(t *testing.T) {
	statement := "-- DELETE FROM KNA1\nSELECT * FROM KNA1 /* UPDATE nothing */"
	if err := GuardReadOnly(statement); err != nil {
		t.Fatalf("commented verbs must not trip the guard: %v", err)
	}
}

func TestGuardReadOnlySeesThroughLeadingComment(t *testing.T) {
	statement := "/* harmless */ DROP TABLE KNA1"
	if err := GuardReadOnly(statement); err == nil {
		t.Fatalf("comment prefix must not hide a mutation")
	}
}

func TestGuardReadOnlyKeepsQuotedText(t *testing.T) {
	statement := "SELECT * FROM notes WHERE body = 'see -- the dashes'"
	if err := GuardReadOnly(statement); err != nil {
		t.Fatalf("quoted comment markers must not strip the statement: %v", err)
	}
}

func TestGuardReadOnlyRejectsEmptyStatement(t *testing.T) {
	if err := GuardReadOnly("   "); err == nil {
		t.Fatalf("empty statement must be rejected")
	}
	if err := GuardReadOnly("-- only a comment"); err == nil {
		t.Fatalf("comment-only statement must be rejected")
	}
}
