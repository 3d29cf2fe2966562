package datastore

import (
	"context"
	"fmt"

	"cloud.google.com/go/datastore"
)

type gcloudDataStore struct {
	client    *datastore.Client
	namespace string
}

// NewStore keeps all entities of this service in namespace, so drain
// summaries do not mix with other tenants of the project.
func NewStore(c context.Context, projectID, namespace string) (DataStorer, func(), error) {
	client, err := datastore.NewClient(c, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("Error creating datastore-client for project %s: %s", projectID, err)
	}
	return &gcloudDataStore{
			client:    client,
			namespace: namespace,
		}, func() {
			client.Close()
		}, nil
}

func (s *gcloudDataStore) Put(c context.Context, kind, uid string, value interface{}) error {
	key := entityKey(s.namespace, kind, uid)
	_, err := s.client.Put(c, key, value)
	if err != nil {
		return fmt.Errorf("Error storing %s: %s", key, err)
	}
	return nil
}

func entityKey(namespace, kind, uid string) *datastore.Key {
	key := datastore.NameKey(kind, uid, nil)
	key.Namespace = namespace
	return key
}
