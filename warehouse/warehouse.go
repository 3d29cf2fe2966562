package warehouse

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/MarcGrol/taskqueue/datastore"
)

const drainSummaryKind = "DrainSummary"

type Warehouse struct {
	store datastore.DataStorer
}

func New(store datastore.DataStorer) Warehouser {
	return &Warehouse{
		store: store,
	}
}

type drainSummaryRecord struct {
	StartedAt  time.Time
	FinishedAt time.Time
	DurationMs int64
	Processed  int
	Malformed  int
	Invalid    int
	Unknown    int
	Failed     int
	ErrorMsg   string
	Completed  bool
}

func (w Warehouse) Put(c context.Context, summary DrainSummary) error {
	record := &drainSummaryRecord{
		StartedAt:  summary.StartedAt,
		FinishedAt: summary.FinishedAt,
		DurationMs: summary.FinishedAt.Sub(summary.StartedAt).Milliseconds(),
		Processed:  summary.Processed,
		Malformed:  summary.Malformed,
		Invalid:    summary.Invalid,
		Unknown:    summary.Unknown,
		Failed:     summary.Failed,
		ErrorMsg: func() string {
			if summary.Err != nil {
				return summary.Err.Error()
			}
			return ""
		}(),
		Completed: summary.Err == nil,
	}

	putErr := w.store.Put(c, drainSummaryKind, summary.UID, record)
	if putErr != nil {
		log.Printf("Error storing drain-summary: %s", putErr)
		return fmt.Errorf("Error storing drain-summary: %s", putErr)
	}
	return nil
}
