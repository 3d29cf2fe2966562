package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

const (
	httpClientTimeout = 20 * time.Second
	// webhook and notion replies are small; anything beyond this is cut off
	maxResponseBytes = 1 << 20
)

type client struct {
	httpClient *http.Client
}

func NewClient() HTTPSender {
	return &client{
		httpClient: &http.Client{
			Timeout: httpClientTimeout,
		},
	}
}

func (cl client) Send(c context.Context, req Request) (*Response, error) {
	target := redactURL(req.URL)

	httpReq, err := http.NewRequestWithContext(c, req.Method, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return nil, fmt.Errorf("Error creating %s request for %s: %s", req.Method, target, unwrapURLError(err))
	}
	for name, values := range req.Headers {
		for _, v := range values {
			httpReq.Header.Add(name, v)
		}
	}

	startedAt := time.Now()
	httpResp, err := cl.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("Error sending %s %s: %s", req.Method, target, unwrapURLError(err))
	}
	defer httpResp.Body.Close()

	respPayload, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("Error reading response of %s %s: %s", req.Method, target, err)
	}
	log.Printf("HTTP %s %s: %d in %s", req.Method, target, httpResp.StatusCode, time.Since(startedAt).Round(time.Millisecond))

	return &Response{
		Status:  httpResp.StatusCode,
		Headers: httpResp.Header,
		Body:    respPayload,
	}, nil
}

// redactURL drops query and credentials: chat webhooks carry their key in
// the query string.
func redactURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}
	parsed.User = nil
	if parsed.RawQuery != "" {
		parsed.RawQuery = "redacted"
	}
	parsed.Fragment = ""
	return parsed.String()
}

// unwrapURLError strips the url, which may carry a webhook key.
func unwrapURLError(err error) error {
	if urlErr, ok := err.(*url.Error); ok {
		return urlErr.Err
	}
	return err
}
