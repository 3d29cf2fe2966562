package uniqueid

import (
	"strings"

	"github.com/google/uuid"
)

type generator struct{}

func NewGenerator() Generator {
	return &generator{}
}

func (generator) Generate() string {
	// dashes make the id awkward in chat messages and datastore keys
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
