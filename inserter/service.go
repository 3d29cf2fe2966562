package inserter

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/MarcGrol/taskqueue/notifier"
	"github.com/MarcGrol/taskqueue/notion"
	"github.com/MarcGrol/taskqueue/task"
)

const DefaultMaxAttempts = 3

type batchInserter struct {
	pageCreator notion.PageCreator
	notifier    notifier.Notifier
	maxAttempts int
	sleep       func(time.Duration)
}

func NewService(pageCreator notion.PageCreator, notifier notifier.Notifier, maxAttempts int) BatchInserter {
	return newService(pageCreator, notifier, maxAttempts, time.Sleep)
}

func newService(pageCreator notion.PageCreator, notifier notifier.Notifier, maxAttempts int, sleep func(time.Duration)) *batchInserter {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &batchInserter{
		pageCreator: pageCreator,
		notifier:    notifier,
		maxAttempts: maxAttempts,
		sleep:       sleep,
	}
}

func (s *batchInserter) InsertBatch(c context.Context, batch Batch) []InsertResult {
	results := make([]InsertResult, 0, len(batch.Items))
	for idx, item := range batch.Items {
		result := s.insertItem(c, batch, item)
		log.Printf("Batch %s: item %d/%d (%s): %s", batch.Name, idx+1, len(batch.Items), result.Title, describe(result))
		results = append(results, result)
	}

	succeeded, failed := count(results)
	s.notifier.Notify(c, batch.FailureWebhook, composeSummary(batch, succeeded, failed))

	return results
}

func (s *batchInserter) insertItem(c context.Context, batch Batch, item task.Item) (result InsertResult) {
	title := item.Title()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Error inserting %q: %v", title, r)
			result = s.fail(c, batch, title, fmt.Sprintf("%v", r))
		}
	}()

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		resp, err := s.pageCreator.CreatePage(c, batch.Credentials, item.Properties)
		if err != nil {
			return s.fail(c, batch, title, err.Error())
		}

		switch resp.Status {
		case notion.Created:
			return InsertResult{Title: title, Created: true, PageID: resp.PageID, URL: resp.URL}
		case notion.RateLimited:
			log.Printf("Inserting %q rate limited (attempt %d/%d)", title, attempt, s.maxAttempts)
			if attempt < s.maxAttempts {
				s.sleep(resp.RetryAfter)
			}
		default:
			return s.fail(c, batch, title, resp.Message)
		}
	}

	return s.fail(c, batch, title, fmt.Sprintf("rate limited after %d attempts", s.maxAttempts))
}

func (s *batchInserter) fail(c context.Context, batch Batch, title, message string) InsertResult {
	if message == "" {
		message = "page creation failed"
	}
	s.notifier.Notify(c, batch.FailureWebhook, fmt.Sprintf("Failed to insert %q: %s", title, message))
	return InsertResult{Title: title, Error: message}
}

func count(results []InsertResult) (int, int) {
	succeeded, failed := 0, 0
	for _, r := range results {
		if r.Succeeded() {
			succeeded++
		} else {
			failed++
		}
	}
	return succeeded, failed
}

func composeSummary(batch Batch, succeeded, failed int) string {
	if failed == 0 {
		return fmt.Sprintf("[%s] %s\nall %d items succeeded", batch.Name, batch.Message, succeeded)
	}
	return fmt.Sprintf("[%s] %s\n%d succeeded / %d failed", batch.Name, batch.Message, succeeded, failed)
}

func describe(r InsertResult) string {
	if r.Succeeded() {
		return fmt.Sprintf("created %s", r.URL)
	}
	return fmt.Sprintf("failed: %s", r.Error)
}
