package query

import "strings"

const (
	TypeListObjects    = "migration.query.objects.list"
	TypeInspectObject  = "migration.query.objects.inspect"
	TypeExecutionWaves = "migration.query.waves.plan"
	TypeLoadRunLedger  = "migration.query.run_ledger.load"
)

type ListObjectsMessage struct{}

func (ListObjectsMessage) Type() string { return TypeListObjects }

func (ListObjectsMessage) Validate() error { return nil }

type InspectObjectMessage struct {
	ObjectID string
}

func (InspectObjectMessage) Type() string { return TypeInspectObject }

func (m InspectObjectMessage) Validate() error {
	if strings.TrimSpace(m.ObjectID) == "" {
		return queryValidationError("object_id", "object id is required")
	}
	return nil
}

// ExecutionWavesMessage plans the wave layout for the named objects; an empty
// list plans every registered object.
type ExecutionWavesMessage struct {
	ObjectIDs []string
}

func (ExecutionWavesMessage) Type() string { return TypeExecutionWaves }

func (m ExecutionWavesMessage) Validate() error {
	for _, id := range m.ObjectIDs {
		if strings.TrimSpace(id) == "" {
			return queryValidationError("object_ids", "object id entries must be non-empty")
		}
	}
	return nil
}

// LoadRunLedgerMessage lists persisted run entries; an empty run id loads the
// full ledger.
type LoadRunLedgerMessage struct {
	RunID string
}

func (LoadRunLedgerMessage) Type() string { return TypeLoadRunLedger }

func (LoadRunLedgerMessage) Validate() error { return nil }
