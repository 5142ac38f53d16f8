package core

import (
	"context"
	"time"
)

// RunJobMessage is a queued request to execute migration objects out of
// band. ObjectIDs empty means "run everything registered".
type RunJobMessage struct {
	JobID          string
	ObjectIDs      []string
	MaxParallel    int
	IdempotencyKey string
	DedupPolicy    string
}

// JobNackOptions controls redelivery of a failed run job.
type JobNackOptions struct {
	Delay      time.Duration
	Requeue    bool
	DeadLetter bool
	Reason     string
}

type JobEnqueuer interface {
	Enqueue(ctx context.Context, msg *RunJobMessage) error
}

type JobDelivery interface {
	Message() *RunJobMessage
	Ack(ctx context.Context) error
	Nack(ctx context.Context, opts JobNackOptions) error
}

type JobDequeuer interface {
	Dequeue(ctx context.Context) (JobDelivery, error)
}
