package inserter

import (
	"context"

	"github.com/MarcGrol/taskqueue/notion"
	"github.com/MarcGrol/taskqueue/task"
)

//go:generate mockgen -source=api.go -destination=gen_BatchInserterMock.go -package=inserter github.com/MarcGrol/taskqueue/inserter BatchInserter

type Batch struct {
	Name           string
	Message        string
	Items          []task.Item
	Credentials    notion.Credentials
	FailureWebhook string
}

// InsertResult holds one item's outcome: PageID/URL when Created, Error
// otherwise.
type InsertResult struct {
	Title   string
	Created bool
	PageID  string
	URL     string
	Error   string
}

func (r InsertResult) Succeeded() bool {
	return r.Created
}

type BatchInserter interface {
	InsertBatch(c context.Context, batch Batch) []InsertResult
}
