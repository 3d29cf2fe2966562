package task

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func decodeEnvelope(t *testing.T, body string) Envelope {
	var e Envelope
	decoder := json.NewDecoder(bytes.NewBufferString(body))
	decoder.UseNumber()
	assert.NoError(t, decoder.Decode(&e))
	return e
}

func TestEnvelopeHasType(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected bool
	}{
		{name: "Known type", body: `{"type":"wechat"}`, expected: true},
		{name: "Unknown type", body: `{"type":"bogus","text":5}`, expected: true},
		{name: "Missing type", body: `{"text":"hi"}`, expected: false},
		{name: "Null type", body: `{"type":null}`, expected: false},
		{name: "Empty type", body: `{"type":""}`, expected: false},
		{name: "Null body", body: `null`, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, decodeEnvelope(t, tc.body).HasType())
		})
	}
}

func TestEnvelopeKeepsUnknownFields(t *testing.T) {
	e := decodeEnvelope(t, `{"type":"report","array":{"x":1},"priority":"high","big":12345678901234567890}`)
	e.SetUID("abc")

	payload, err := e.Marshal()

	assert.NoError(t, err)
	assert.JSONEq(t, `{"uid":"abc","type":"report","array":{"x":1},"priority":"high","big":12345678901234567890}`, string(payload))
	assert.Equal(t, "task abc (report)", e.String())
}

func TestEnvelopeIsParsedAsTask(t *testing.T) {
	e := decodeEnvelope(t, `{"type":"wechat","webhookUrl":"https://x","text":"hi","priority":"high"}`)
	e.SetUID("abc")
	payload, err := e.Marshal()
	assert.NoError(t, err)

	parsed, err := Parse(payload)

	assert.NoError(t, err)
	assert.Equal(t, Task{UID: "abc", Type: KindWechat, WebhookURL: "https://x", Text: "hi"}, parsed)
}
