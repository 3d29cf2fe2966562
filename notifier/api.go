package notifier

import "context"

//go:generate mockgen -source=api.go -destination=gen_NotifierMock.go -package=notifier github.com/MarcGrol/taskqueue/notifier Notifier

// Delivery is the outcome of one notification. Callers are free to ignore it.
type Delivery struct {
	Status int
	Err    error
}

func (d Delivery) Delivered() bool {
	return d.Err == nil && d.Status > 0 && d.Status < 400
}

// Notifier posts a text message to a chat webhook. It never fails its caller.
type Notifier interface {
	Notify(c context.Context, webhookURL string, text string) Delivery
}
