package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
	StatusFailed  Status = "failed"
)

type Job struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Status     Status          `json:"status"`
	Result     json.RawMessage `json:"result,omitempty" swaggertype:"object"`
	Error      string          `json:"error,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	FinishedAt *time.Time      `json:"finishedAt,omitempty"`
}

var ErrJobNotFound = errors.New("job not found")

// Store keeps job status for polling. Entries expire after the store's TTL.
type Store interface {
	Put(ctx context.Context, j Job) error
	Get(ctx context.Context, id string) (Job, error)
}
