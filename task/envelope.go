package task

import (
	"encoding/json"
	"fmt"
)

// Envelope is a task exactly as a client posted it. Only uid and type are
// interpreted; every other field is stored as sent, whatever its kind.
type Envelope map[string]interface{}

// HasType reports whether the type discriminator is present. Its value is
// not checked: unknown kinds are skipped at drain time.
func (e Envelope) HasType() bool {
	value, found := e["type"]
	return found && value != nil && value != ""
}

func (e Envelope) Type() string {
	return fmt.Sprint(e["type"])
}

func (e Envelope) UID() string {
	uid, _ := e["uid"].(string)
	return uid
}

func (e Envelope) SetUID(uid string) {
	e["uid"] = uid
}

func (e Envelope) String() string {
	return fmt.Sprintf("task %s (%s)", e.UID(), e.Type())
}

func (e Envelope) Marshal() ([]byte, error) {
	payload, err := json.Marshal(map[string]interface{}(e))
	if err != nil {
		return nil, fmt.Errorf("Error marshalling %s: %s", e, err)
	}
	return payload, nil
}
