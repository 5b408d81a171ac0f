package domain

import "context"

// StateStore is the durable key/value store behind the client stores.
// Load returns ErrStateNotFound when nothing was saved under key.
type StateStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type MutationState string

const (
	MutationPending   MutationState = "pending"
	MutationCommitted MutationState = "committed"
	MutationFailed    MutationState = "failed"
)

// Mutation is the outcome of a server-confirmed admin change: it starts
// pending, and the local mirror is only touched once it is committed.
type Mutation[T any] struct {
	Op    string        `json:"op"`
	State MutationState `json:"state"`
	Value T             `json:"value"`
	Err   error         `json:"-"`
}

func NewMutation[T any](op string) Mutation[T] {
	return Mutation[T]{Op: op, State: MutationPending}
}

func (m Mutation[T]) Commit(value T) Mutation[T] {
	m.State = MutationCommitted
	m.Value = value
	m.Err = nil
	return m
}

func (m Mutation[T]) Fail(err error) Mutation[T] {
	m.State = MutationFailed
	m.Err = err
	return m
}

func (m Mutation[T]) Committed() bool {
	return m.State == MutationCommitted
}
