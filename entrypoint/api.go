package entrypoint

import (
	"github.com/MarcGrol/taskqueue/queue"
	"github.com/MarcGrol/taskqueue/uniqueid"
)

type webService struct {
	uidGenerator uniqueid.Generator
	queue        queue.TaskQueuer
}
