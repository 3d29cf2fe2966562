package warehouse

import (
	"context"
	"time"
)

// DrainSummary describes one drain that held the lock.
type DrainSummary struct {
	UID        string
	StartedAt  time.Time
	FinishedAt time.Time
	Processed  int
	Malformed  int
	Invalid    int
	Unknown    int
	Failed     int
	Err        error
}

//go:generate mockgen -source=api.go -destination=gen_WarehouserMock.go -package=warehouse github.com/MarcGrol/taskqueue/warehouse Warehouser

type Warehouser interface {
	Put(c context.Context, summary DrainSummary) error
}
