package dispatcher

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/MarcGrol/taskqueue/inserter"
	"github.com/MarcGrol/taskqueue/notifier"
	"github.com/MarcGrol/taskqueue/notion"
	"github.com/MarcGrol/taskqueue/queue"
	"github.com/MarcGrol/taskqueue/task"
	"github.com/MarcGrol/taskqueue/uniqueid"
	"github.com/MarcGrol/taskqueue/warehouse"
	"github.com/gorilla/mux"
)

const processPath = "/process"

type outcome int

const (
	processed outcome = iota
	malformed
	invalid
	unknown
	failed
)

type dispatcherService struct {
	queue        queue.TaskQueuer
	locker       queue.Locker
	notifier     notifier.Notifier
	inserter     inserter.BatchInserter
	warehouse    warehouse.Warehouser
	uidGenerator uniqueid.Generator
	lock         LockConfig
	now          func() time.Time
}

func NewService(queue queue.TaskQueuer, locker queue.Locker, notifier notifier.Notifier, inserter inserter.BatchInserter,
	warehouse warehouse.Warehouser, uidGenerator uniqueid.Generator, lock LockConfig) *dispatcherService {
	s := &dispatcherService{
		queue:        queue,
		locker:       locker,
		notifier:     notifier,
		inserter:     inserter,
		warehouse:    warehouse,
		uidGenerator: uidGenerator,
		lock:         lock,
		now:          time.Now,
	}
	return s
}

var _ Drainer = (*dispatcherService)(nil)

func (s *dispatcherService) RegisterEndPoint(router *mux.Router) *mux.Router {
	router.HandleFunc(processPath, s.process()).Methods("POST")
	return router
}

type processResponse struct {
	Status    string `json:"status"`
	Processed int    `json:"processed"`
	DrainUID  string `json:"drainUid"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *dispatcherService) process() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// a started drain runs until the queue is empty, even when the caller goes away
		c := context.WithoutCancel(r.Context())

		report, err := s.Drain(c)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, processResponse{
			Status:    report.String(),
			Processed: report.Processed,
			DrainUID:  report.UID,
		})
	}
}

func (s *dispatcherService) Drain(c context.Context) (report Report, err error) {
	report.UID = s.uidGenerator.Generate()

	acquired, err := s.locker.TryAcquireLock(c, s.lock.Name, s.lock.TTL)
	if err != nil {
		return report, fmt.Errorf("Error acquiring lock %s: %w", s.lock.Name, err)
	}
	if !acquired {
		report.LockBusy = true
		log.Printf("Drain %s: %s", report.UID, report)
		return report, nil
	}

	startedAt := s.now()
	defer func() {
		// cleanup must outlive a cancelled caller, or the lock stays until its ttl
		cleanupCtx := context.WithoutCancel(c)
		releaseErr := s.locker.ReleaseLock(cleanupCtx, s.lock.Name)
		if releaseErr != nil {
			log.Printf("Error releasing lock %s: %s", s.lock.Name, releaseErr)
			if err == nil {
				err = releaseErr
			}
		}
		s.warehouse.Put(cleanupCtx, warehouse.DrainSummary{
			UID:        report.UID,
			StartedAt:  startedAt,
			FinishedAt: s.now(),
			Processed:  report.Processed,
			Malformed:  report.Malformed,
			Invalid:    report.Invalid,
			Unknown:    report.Unknown,
			Failed:     report.Failed,
			Err:        err,
		})
		log.Printf("Drain %s: %s (malformed:%d invalid:%d unknown:%d failed:%d)",
			report.UID, report, report.Malformed, report.Invalid, report.Unknown, report.Failed)
	}()

	for {
		payload, found, err := s.queue.Dequeue(c)
		if err != nil {
			return report, fmt.Errorf("Error draining queue: %w", err)
		}
		if !found {
			return report, nil
		}
		report.add(s.dispatch(c, payload))
	}
}

func (r *Report) add(o outcome) {
	switch o {
	case processed:
		r.Processed++
	case malformed:
		r.Malformed++
	case invalid:
		r.Invalid++
	case unknown:
		r.Unknown++
	default:
		r.Failed++
	}
}

func (s *dispatcherService) dispatch(c context.Context, payload []byte) (result outcome) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Error dispatching queue entry: %v", r)
			result = failed
		}
	}()

	t, err := task.Parse(payload)
	if err != nil {
		log.Printf("Skipping queue entry: %s", err)
		return malformed
	}
	log.Printf("Processing %s", t)

	if !t.IsKnown() {
		log.Printf("Skipping %s: unknown task type", t)
		return unknown
	}

	err = t.Validate()
	if err != nil {
		log.Printf("Skipping %s: %s", t, err)
		return invalid
	}

	switch t.Type {
	case task.KindWechat:
		s.notifier.Notify(c, t.WebhookURL, t.Text)
	case task.KindNotionInsert:
		results := s.inserter.InsertBatch(c, inserter.Batch{
			Name:    t.Name,
			Message: t.Message,
			Items:   t.Items,
			Credentials: notion.Credentials{
				APIKey:     t.NotionAPIKey,
				DatabaseID: t.DatabaseID,
			},
			FailureWebhook: t.WechatWebhookURL,
		})
		log.Printf("Processed %s: %d items", t, len(results))
	}
	return processed
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Printf("Error writing response: %s", err)
	}
}
