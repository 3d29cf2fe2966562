package datastore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityKey(t *testing.T) {
	key := entityKey("taskqueue", "DrainSummary", "abc")

	assert.Equal(t, "taskqueue", key.Namespace)
	assert.Equal(t, "DrainSummary", key.Kind)
	assert.Equal(t, "abc", key.Name)
	assert.Nil(t, key.Parent)
}
