package queue

import (
	"context"
	"errors"
	"time"
)

var ErrStoreUnavailable = errors.New("queue store unavailable")

//go:generate mockgen -source=api.go -destination=gen_TaskQueuerMock.go -package=queue github.com/MarcGrol/taskqueue/queue TaskQueuer,Locker

// TaskQueuer behaves as a stack: the most recently enqueued task is
// dequeued first. Payloads are stored as they are.
type TaskQueuer interface {
	Enqueue(c context.Context, payload []byte) error
	Dequeue(c context.Context) ([]byte, bool, error)
}

type Locker interface {
	TryAcquireLock(c context.Context, name string, ttl time.Duration) (bool, error)
	ReleaseLock(c context.Context, name string) error
}

type Store interface {
	TaskQueuer
	Locker
}
