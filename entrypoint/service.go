package entrypoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/MarcGrol/taskqueue/queue"
	"github.com/MarcGrol/taskqueue/task"
	"github.com/MarcGrol/taskqueue/uniqueid"
	"github.com/gorilla/mux"
)

const enqueuePath = "/enqueue"

var errMissingType = errors.New("Missing task type or data")

func NewWebService(uidGenerator uniqueid.Generator, queue queue.TaskQueuer) *webService {
	s := &webService{
		uidGenerator: uidGenerator,
		queue:        queue,
	}
	return s
}

func (s *webService) RegisterEndpoint(router *mux.Router) *mux.Router {
	router.HandleFunc(enqueuePath, s.enqueue()).Methods("POST")
	router.HandleFunc("/", s.explain()).Methods("GET")
	return router
}

type enqueueResponse struct {
	Status string          `json:"status"`
	Task   json.RawMessage `json:"task"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *webService) enqueue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := r.Context()

		envelope, err := parseTask(r)
		if err != nil {
			reportError(w, http.StatusBadRequest, err)
			return
		}
		if envelope.UID() == "" {
			envelope.SetUID(s.uidGenerator.Generate())
		}

		payload, err := envelope.Marshal()
		if err != nil {
			reportError(w, http.StatusBadRequest, err)
			return
		}

		err = s.queue.Enqueue(c, payload)
		if err != nil {
			reportError(w, http.StatusInternalServerError, fmt.Errorf("Error enqueuing task: %s", err))
			return
		}

		log.Printf("Successfully enqueued %s", envelope)
		writeJSON(w, http.StatusOK, enqueueResponse{Status: "Task enqueued", Task: payload})
	}
}

// parseTask only insists on a type; the rest of the body is kept as sent.
func parseTask(r *http.Request) (task.Envelope, error) {
	var envelope task.Envelope
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	err := decoder.Decode(&envelope)
	if errors.Is(err, io.EOF) {
		return nil, errMissingType
	}
	if err != nil {
		return nil, fmt.Errorf("Error parsing task: %s", err)
	}
	if !envelope.HasType() {
		return nil, errMissingType
	}
	return envelope, nil
}

func reportError(w http.ResponseWriter, httpResponseStatus int, err error) {
	log.Printf("%s", err)
	writeJSON(w, httpResponseStatus, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Printf("Error writing response: %s", err)
	}
}

func (s *webService) explain() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, serviceDescription)
	}
}

const serviceDescription = `<html>
<head>
	<title>Taskqueue</title>
	<meta charset="utf-8"/>
</head>
<body>
	<main role="main" class="container">
		<h1>Task queue dispatcher</h1>
		<p>
			POST a JSON task to /enqueue to put it on the queue.<br/>
			POST to /process to drain the queue; only one drain runs at a time.<br/>
			Supported task types:
			<ul>
				<li>"wechat": sends "text" to "webhookUrl"</li>
				<li>"notion_insert": creates a page in "databaseId" for every entry of "array"
				and reports the result to "wechatWebhookUrl"</li>
			</ul>
		</p>

		<p>
		Example:<br/><br/>

<pre>
curl -X POST -H "Content-Type: application/json" \
	--data '{"type":"wechat","webhookUrl":"https://qyapi.weixin.qq.com/cgi-bin/webhook/send?key=...","text":"hi"}' \
	http://localhost:3000/enqueue
</pre>
		</p>

	</main>
</body>
</html>
`
