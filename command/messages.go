package command

import (
	"strings"

	"github.com/ib823/sapconnect-sub002/core"
)

const (
	TypeRunAll           = "migration.command.run.all"
	TypeRunObject        = "migration.command.run.object"
	TypeEnqueueRun       = "migration.command.run.enqueue"
	TypeClearObjectCache = "migration.command.object_cache.clear"
)

type RunAllMessage struct {
	Request core.RunRequest
}

func (RunAllMessage) Type() string { return TypeRunAll }

func (m RunAllMessage) Validate() error {
	if m.Request.MaxParallel < 0 {
		return commandValidationError("max_parallel", "must be >= 0")
	}
	for _, id := range m.Request.ObjectIDs {
		if strings.TrimSpace(id) == "" {
			return commandValidationError("object_ids", "object id entries must be non-empty")
		}
	}
	return nil
}

type RunObjectMessage struct {
	ObjectID string
}

func (RunObjectMessage) Type() string { return TypeRunObject }

func (m RunObjectMessage) Validate() error {
	if strings.TrimSpace(m.ObjectID) == "" {
		return commandValidationError("object_id", "object id is required")
	}
	return nil
}

type EnqueueRunMessage struct {
	Message core.RunJobMessage
}

func (EnqueueRunMessage) Type() string { return TypeEnqueueRun }

func (m EnqueueRunMessage) Validate() error {
	if m.Message.MaxParallel < 0 {
		return commandValidationError("max_parallel", "must be >= 0")
	}
	for _, id := range m.Message.ObjectIDs {
		if strings.TrimSpace(id) == "" {
			return commandValidationError("object_ids", "object id entries must be non-empty")
		}
	}
	return nil
}

type ClearObjectCacheMessage struct{}

func (ClearObjectCacheMessage) Type() string { return TypeClearObjectCache }

func (ClearObjectCacheMessage) Validate() error { return nil }
