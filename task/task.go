package task

import (
	"encoding/json"
	"errors"
	"fmt"
)

type Kind string

const (
	KindWechat       Kind = "wechat"
	KindNotionInsert Kind = "notion_insert"
)

var (
	ErrMalformed  = errors.New("malformed task payload")
	ErrValidation = errors.New("invalid task")
)

// Item is one row of a notion_insert batch. Properties are passed to the
// page-creation call as they are.
type Item struct {
	Properties map[string]interface{} `json:"properties"`
}

const unnamedTitle = "unnamed"

// Title returns properties.Company.title[0].text.content or "unnamed".
func (i Item) Title() string {
	company, ok := i.Properties["Company"].(map[string]interface{})
	if !ok {
		return unnamedTitle
	}
	titles, ok := company["title"].([]interface{})
	if !ok || len(titles) == 0 {
		return unnamedTitle
	}
	first, ok := titles[0].(map[string]interface{})
	if !ok {
		return unnamedTitle
	}
	text, ok := first["text"].(map[string]interface{})
	if !ok {
		return unnamedTitle
	}
	content, ok := text["content"].(string)
	if !ok || content == "" {
		return unnamedTitle
	}
	return content
}

type Task struct {
	UID  string `json:"uid,omitempty"`
	Type Kind   `json:"type"`

	// wechat
	WebhookURL string `json:"webhookUrl,omitempty"`
	Text       string `json:"text,omitempty"`

	// notion_insert; Items stays nil when "array" is absent
	Name             string `json:"name,omitempty"`
	Message          string `json:"message,omitempty"`
	Items            []Item `json:"array"`
	NotionAPIKey     string `json:"notionApiKey,omitempty"`
	DatabaseID       string `json:"databaseId,omitempty"`
	WechatWebhookURL string `json:"wechatWebhookUrl,omitempty"`
}

func (t Task) String() string {
	return fmt.Sprintf("task %s (%s)", t.UID, t.Type)
}

type header struct {
	UID  string `json:"uid"`
	Type Kind   `json:"type"`
}

// Parse decodes one stored queue entry. Fields of unknown kinds are not
// decoded, so they may hold anything.
func Parse(payload []byte) (Task, error) {
	var h header
	err := json.Unmarshal(payload, &h)
	if err != nil {
		return Task{}, fmt.Errorf("%w: %s", ErrMalformed, err)
	}
	t := Task{UID: h.UID, Type: h.Type}
	if !t.IsKnown() {
		return t, nil
	}
	err = json.Unmarshal(payload, &t)
	if err != nil {
		return Task{}, fmt.Errorf("%w: %s", ErrMalformed, err)
	}
	return t, nil
}

// Validate checks the kind specific fields. Unknown kinds are valid; the
// dispatcher decides what to do with them.
func (t Task) Validate() error {
	switch t.Type {
	case "":
		return fmt.Errorf("%w: missing task type", ErrValidation)
	case KindWechat:
		if t.WebhookURL == "" || t.Text == "" {
			return fmt.Errorf("%w: missing webhookUrl or text", ErrValidation)
		}
	case KindNotionInsert:
		missing := []string{}
		if t.Name == "" {
			missing = append(missing, "name")
		}
		if t.Message == "" {
			missing = append(missing, "message")
		}
		if t.Items == nil {
			missing = append(missing, "array")
		}
		if t.NotionAPIKey == "" {
			missing = append(missing, "notionApiKey")
		}
		if t.DatabaseID == "" {
			missing = append(missing, "databaseId")
		}
		if t.WechatWebhookURL == "" {
			missing = append(missing, "wechatWebhookUrl")
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: missing %v", ErrValidation, missing)
		}
	}
	return nil
}

func (t Task) IsKnown() bool {
	return t.Type == KindWechat || t.Type == KindNotionInsert
}
