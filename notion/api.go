package notion

import (
	"context"
	"time"
)

//go:generate mockgen -source=api.go -destination=gen_PageCreatorMock.go -package=notion github.com/MarcGrol/taskqueue/notion PageCreator

type Credentials struct {
	APIKey     string
	DatabaseID string
}

type Status int

const (
	Created Status = iota
	RateLimited
	Rejected
)

// Result of a single page-creation call. RetryAfter is only set when
// Status is RateLimited, Message only when Status is Rejected.
type Result struct {
	Status     Status
	HTTPStatus int
	PageID     string
	URL        string
	RetryAfter time.Duration
	Message    string
}

// PageCreator makes exactly one attempt; retrying is up to the caller.
// An error means the call itself failed (transport, encoding).
type PageCreator interface {
	CreatePage(c context.Context, creds Credentials, properties map[string]interface{}) (*Result, error)
}
