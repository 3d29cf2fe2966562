package notifier

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/MarcGrol/taskqueue/httpclient"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestNotify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	testCases := []struct {
		name              string
		status            int
		err               error
		expectedDelivered bool
	}{
		{
			name:              "Delivered",
			status:            200,
			expectedDelivered: true,
		},
		{
			name:              "Rejected by webhook",
			status:            500,
			expectedDelivered: false,
		},
		{
			name:              "Networking error",
			err:               fmt.Errorf("Networking error"),
			expectedDelivered: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// setup
			n := NewNotifier(httpSender(ctrl, tc.status, tc.err))

			// when
			delivery := n.Notify(context.Background(), "https://hook", "hi")

			// then
			assert.Equal(t, tc.expectedDelivered, delivery.Delivered())
		})
	}
}

func httpSender(ctrl *gomock.Controller, status int, err error) httpclient.HTTPSender {
	sender := httpclient.NewMockHTTPSender(ctrl)

	var resp *httpclient.Response = nil
	if err == nil {
		resp = &httpclient.Response{
			Status:  status,
			Headers: http.Header{},
			Body:    []byte(`{"errcode":0}`),
		}
	}

	sender.
		EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(c context.Context, req httpclient.Request) (*httpclient.Response, error) {
			if req.URL != "https://hook" || req.Method != http.MethodPost {
				return nil, fmt.Errorf("unexpected request %s", req)
			}
			if string(req.Body) != `{"msgtype":"text","text":{"content":"hi"}}` {
				return nil, fmt.Errorf("unexpected body %s", string(req.Body))
			}
			if req.Headers.Get("Content-Type") != "application/json" {
				return nil, fmt.Errorf("unexpected content-type")
			}
			return resp, err
		})

	return sender
}
