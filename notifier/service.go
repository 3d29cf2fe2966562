package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/MarcGrol/taskqueue/httpclient"
)

type textContent struct {
	Content string `json:"content"`
}

type textMessage struct {
	MsgType string      `json:"msgtype"`
	Text    textContent `json:"text"`
}

type webhookNotifier struct {
	httpClient httpclient.HTTPSender
}

func NewNotifier(httpClient httpclient.HTTPSender) Notifier {
	return &webhookNotifier{
		httpClient: httpClient,
	}
}

func (n *webhookNotifier) Notify(c context.Context, webhookURL string, text string) Delivery {
	body, err := json.Marshal(textMessage{
		MsgType: "text",
		Text:    textContent{Content: text},
	})
	if err != nil {
		log.Printf("Error marshalling notification: %s", err)
		return Delivery{Err: err}
	}

	httpResp, err := n.httpClient.Send(c, httpclient.NewJSONRequest(webhookURL, body))
	if err != nil {
		log.Printf("Error sending notification: %s", err)
		return Delivery{Err: err}
	}
	if httpResp.IsError() {
		log.Printf("Error sending notification: %s: %s", httpResp, string(httpResp.Body))
		return Delivery{
			Status: httpResp.Status,
			Err:    fmt.Errorf("Notification rejected with status %d", httpResp.Status),
		}
	}

	log.Printf("Notification sent: %s: %s", httpResp, string(httpResp.Body))
	return Delivery{Status: httpResp.Status}
}
