package httpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSend(t *testing.T) {
	var receivedContentType string
	var receivedBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		receivedBody = string(body)
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("slow down"))
	}))
	defer server.Close()

	resp, err := NewClient().Send(context.Background(), NewJSONRequest(server.URL, []byte(`{"a":1}`)))
	assert.NoError(t, err)
	assert.Equal(t, "application/json", receivedContentType)
	assert.Equal(t, `{"a":1}`, receivedBody)
	assert.Equal(t, http.StatusTooManyRequests, resp.Status)
	assert.Equal(t, "slow down", string(resp.Body))
	assert.True(t, resp.IsError())
	assert.True(t, resp.IsRateLimited())
	assert.Equal(t, 7*time.Second, resp.RetryAfter(2*time.Second))
}

func TestSendTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient().Send(context.Background(), NewJSONRequest(url, nil))
	assert.Error(t, err)
}

func TestSendCutsOffLargeResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(bytes.Repeat([]byte("x"), maxResponseBytes+10))
	}))
	defer server.Close()

	resp, err := NewClient().Send(context.Background(), NewJSONRequest(server.URL, nil))
	assert.NoError(t, err)
	assert.Len(t, resp.Body, maxResponseBytes)
}

func TestSendErrorHidesWebhookKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient().Send(context.Background(), NewJSONRequest(url+"/cgi-bin/webhook/send?key=s3cret", nil))
	assert.Error(t, err)
	assert.NotContains(t, err.Error(), "s3cret")
}

func TestRedactURL(t *testing.T) {
	testCases := []struct {
		name     string
		url      string
		expected string
	}{
		{name: "Plain", url: "https://api.notion.com/v1/pages", expected: "https://api.notion.com/v1/pages"},
		{name: "Webhook key", url: "https://qyapi.weixin.qq.com/cgi-bin/webhook/send?key=abc", expected: "https://qyapi.weixin.qq.com/cgi-bin/webhook/send?redacted"},
		{name: "Credentials", url: "https://user:pw@hook.example/x", expected: "https://hook.example/x"},
		{name: "Invalid", url: "http://[::1", expected: "<invalid url>"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, redactURL(tc.url))
		})
	}
}

func TestRetryAfter(t *testing.T) {
	testCases := []struct {
		name     string
		header   string
		expected time.Duration
	}{
		{name: "Absent", header: "", expected: 2 * time.Second},
		{name: "Seconds", header: "1", expected: 1 * time.Second},
		{name: "Not a number", header: "Wed, 21 Oct 2015 07:28:00 GMT", expected: 2 * time.Second},
		{name: "Negative", header: "-3", expected: 2 * time.Second},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			headers := http.Header{}
			if tc.header != "" {
				headers.Set("Retry-After", tc.header)
			}
			resp := Response{Status: http.StatusTooManyRequests, Headers: headers}
			assert.Equal(t, tc.expected, resp.RetryAfter(2*time.Second))
		})
	}
}
