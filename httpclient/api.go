package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

//go:generate mockgen -source=api.go -destination=gen_HttpClientMock.go -package=httpclient github.com/MarcGrol/taskqueue/httpclient HTTPSender

type Request struct {
	Method  string
	URL     string
	Headers http.Header
	Body    []byte
}

func (r Request) String() string {
	return fmt.Sprintf("HTTP %s request %s", r.Method, redactURL(r.URL))
}

func NewJSONRequest(url string, body []byte) Request {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	return Request{
		Method:  http.MethodPost,
		URL:     url,
		Headers: headers,
		Body:    body,
	}
}

type Response struct {
	Status  int
	Headers http.Header
	Body    []byte
}

func (r Response) String() string {
	return fmt.Sprintf("HTTP response %d", r.Status)
}

func (r Response) IsError() bool {
	return r.Status >= http.StatusBadRequest
}

func (r Response) IsRateLimited() bool {
	return r.Status == http.StatusTooManyRequests
}

// RetryAfter reads the Retry-After header as whole seconds.
func (r Response) RetryAfter(defaultDelay time.Duration) time.Duration {
	if r.Headers == nil {
		return defaultDelay
	}
	value := strings.TrimSpace(r.Headers.Get("Retry-After"))
	if value == "" {
		return defaultDelay
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		return defaultDelay
	}
	return time.Duration(seconds) * time.Second
}

type HTTPSender interface {
	Send(c context.Context, req Request) (*Response, error)
}
