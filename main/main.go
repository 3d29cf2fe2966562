package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/MarcGrol/taskqueue/config"
	"github.com/MarcGrol/taskqueue/datastore"
	"github.com/MarcGrol/taskqueue/dispatcher"
	"github.com/MarcGrol/taskqueue/entrypoint"
	"github.com/MarcGrol/taskqueue/httpclient"
	"github.com/MarcGrol/taskqueue/inserter"
	"github.com/MarcGrol/taskqueue/notifier"
	"github.com/MarcGrol/taskqueue/notion"
	"github.com/MarcGrol/taskqueue/queue"
	"github.com/MarcGrol/taskqueue/uniqueid"
	"github.com/MarcGrol/taskqueue/warehouse"
	"github.com/gorilla/mux"
)

func main() {
	c := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %s", err)
	}

	var router = mux.NewRouter()

	store, qcleanup, err := queue.NewQueue(c, cfg.RedisURL, cfg.RedisToken, cfg.QueueKey)
	if err != nil {
		log.Fatalf("Error creating queue: %s", err)
	}
	defer qcleanup()

	archive, scleanup, err := newArchive(c, cfg.GoogleCloudProject, cfg.DatastoreNamespace)
	if err != nil {
		log.Fatalf("Error creating datastore: %s", err)
	}
	defer scleanup()

	httpClient := httpclient.NewClient()

	uidGenerator := uniqueid.NewGenerator()

	notifier := notifier.NewNotifier(httpClient)

	pageCreator := notion.NewPageCreator(httpClient, cfg.NotionBaseURL, cfg.NotionVersion, cfg.DefaultRetryAfter)

	batchInserter := inserter.NewService(pageCreator, notifier, cfg.MaxInsertAttempts)

	dispatcher := dispatcher.NewService(store, store, notifier, batchInserter, warehouse.New(archive), uidGenerator,
		dispatcher.LockConfig{Name: cfg.LockKey, TTL: cfg.LockTTL})
	dispatcher.RegisterEndPoint(router)

	entrypoint := entrypoint.NewWebService(uidGenerator, store)
	entrypoint.RegisterEndpoint(router)

	http.Handle("/", router)

	log.Printf("Listening on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), nil))
}

func newArchive(c context.Context, projectID, namespace string) (datastore.DataStorer, func(), error) {
	if projectID == "" {
		log.Printf("No google cloud project configured: drain summaries are only logged")
		return datastore.NewLogStore(), func() {}, nil
	}
	return datastore.NewStore(c, projectID, namespace)
}
