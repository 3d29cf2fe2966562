package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/MarcGrol/taskqueue/httpclient"
)

const (
	DefaultBaseURL      = "https://api.notion.com"
	DefaultAPIVersion   = "2022-06-28"
	DefaultRetryAfter   = 2 * time.Second
	createPageEndpoint  = "/v1/pages"
	notionVersionHeader = "Notion-Version"
	authorizationHeader = "Authorization"
)

type parent struct {
	DatabaseID string `json:"database_id"`
}

type createPageRequest struct {
	Parent     parent                 `json:"parent"`
	Properties map[string]interface{} `json:"properties"`
}

type createPageResponse struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type client struct {
	httpClient        httpclient.HTTPSender
	baseURL           string
	apiVersion        string
	defaultRetryAfter time.Duration
}

func NewPageCreator(httpClient httpclient.HTTPSender, baseURL, apiVersion string, defaultRetryAfter time.Duration) PageCreator {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	if defaultRetryAfter <= 0 {
		defaultRetryAfter = DefaultRetryAfter
	}
	return &client{
		httpClient:        httpClient,
		baseURL:           baseURL,
		apiVersion:        apiVersion,
		defaultRetryAfter: defaultRetryAfter,
	}
}

func (cl *client) CreatePage(c context.Context, creds Credentials, properties map[string]interface{}) (*Result, error) {
	body, err := json.Marshal(createPageRequest{
		Parent:     parent{DatabaseID: creds.DatabaseID},
		Properties: properties,
	})
	if err != nil {
		return nil, fmt.Errorf("Error marshalling page properties: %s", err)
	}

	req := httpclient.NewJSONRequest(cl.baseURL+createPageEndpoint, body)
	req.Headers.Set(authorizationHeader, "Bearer "+creds.APIKey)
	req.Headers.Set(notionVersionHeader, cl.apiVersion)

	httpResp, err := cl.httpClient.Send(c, req)
	if err != nil {
		return nil, err
	}

	if httpResp.IsRateLimited() {
		retryAfter := httpResp.RetryAfter(cl.defaultRetryAfter)
		log.Printf("Page creation rate limited, retry after %s", retryAfter)
		return &Result{
			Status:     RateLimited,
			HTTPStatus: httpResp.Status,
			RetryAfter: retryAfter,
		}, nil
	}

	var parsed createPageResponse
	parseErr := json.Unmarshal(httpResp.Body, &parsed)

	if httpResp.IsError() {
		message := strings.TrimSpace(string(httpResp.Body))
		if parseErr == nil && parsed.Message != "" {
			message = parsed.Message
		}
		if message == "" {
			message = fmt.Sprintf("status %d", httpResp.Status)
		}
		log.Printf("Page creation rejected: %s: %s", httpResp, message)
		return &Result{
			Status:     Rejected,
			HTTPStatus: httpResp.Status,
			Message:    message,
		}, nil
	}

	if parseErr != nil {
		return nil, fmt.Errorf("Error parsing page creation response: %s", parseErr)
	}

	log.Printf("Page %s created", parsed.ID)
	return &Result{
		Status:     Created,
		HTTPStatus: httpResp.Status,
		PageID:     parsed.ID,
		URL:        parsed.URL,
	}, nil
}
