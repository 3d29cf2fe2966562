package datastore

import "context"

//go:generate mockgen -source=api.go -destination=gen_DataStorerMock.go -package=datastore github.com/MarcGrol/taskqueue/datastore DataStorer

type DataStorer interface {
	Put(c context.Context, kind, uid string, value interface{}) error
}
