package command

import (
	"context"

	gocmd "github.com/goliatone/go-command"

	"github.com/ib823/sapconnect-sub002/core"
)

// MutatingService is the slice of the migration service the command surface
// needs.
type MutatingService interface {
	RunAll(ctx context.Context, req core.RunRequest) (core.RunResult, error)
	RunObject(ctx context.Context, objectID string) (core.ObjectResult, error)
	ClearObjectCache(ctx context.Context) error
}

type RunAllCommand struct {
	service MutatingService
}

func NewRunAllCommand(service MutatingService) *RunAllCommand {
	return &RunAllCommand{service: service}
}

func (c *RunAllCommand) Execute(ctx context.Context, msg RunAllMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: run service is required")
	}
	out, err := c.service.RunAll(ctx, msg.Request)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type RunObjectCommand struct {
	service MutatingService
}

func NewRunObjectCommand(service MutatingService) *RunObjectCommand {
	return &RunObjectCommand{service: service}
}

func (c *RunObjectCommand) Execute(ctx context.Context, msg RunObjectMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: run service is required")
	}
	out, err := c.service.RunObject(ctx, msg.ObjectID)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type EnqueueRunCommand struct {
	enqueuer core.JobEnqueuer
}

func NewEnqueueRunCommand(enqueuer core.JobEnqueuer) *EnqueueRunCommand {
	return &EnqueueRunCommand{enqueuer: enqueuer}
}

func (c *EnqueueRunCommand) Execute(ctx context.Context, msg EnqueueRunMessage) error {
	if c == nil || c.enqueuer == nil {
		return commandDependencyError("command: job enqueuer is required")
	}
	queued := msg.Message
	return c.enqueuer.Enqueue(ctx, &queued)
}

type ClearObjectCacheCommand struct {
	service MutatingService
}

func NewClearObjectCacheCommand(service MutatingService) *ClearObjectCacheCommand {
	return &ClearObjectCacheCommand{service: service}
}

func (c *ClearObjectCacheCommand) Execute(ctx context.Context, msg ClearObjectCacheMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: run service is required")
	}
	_ = msg
	return c.service.ClearObjectCache(ctx)
}

func storeResult[T any](ctx context.Context, value T) {
	collector := gocmd.ResultFromContext[T](ctx)
	if collector == nil {
		return
	}
	collector.Store(value)
}
