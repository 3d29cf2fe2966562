package dispatcher

import (
	"context"
	"fmt"
	"time"
)

type LockConfig struct {
	Name string
	TTL  time.Duration
}

// Report counts what one drain did with the entries it popped. Only
// Processed entries were handed to a handler.
type Report struct {
	UID       string
	LockBusy  bool
	Processed int
	Malformed int
	Invalid   int
	Unknown   int
	Failed    int
}

func (r Report) String() string {
	if r.LockBusy {
		return "lock busy, skipped"
	}
	return fmt.Sprintf("processed %d tasks", r.Processed)
}

// Drainer empties the queue while holding the drain lock.
type Drainer interface {
	Drain(c context.Context) (Report, error)
}
