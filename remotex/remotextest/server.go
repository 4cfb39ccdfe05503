package remotextest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"

	"github.com/topicboard/topicboard/errorx"
	"github.com/topicboard/topicboard/remotex"
)

type submitRequestBody struct {
	TopicName  string `json:"topic_name"`
	Partitions int32  `json:"partitions"`
}

type alterTopicBody struct {
	Partitions int32 `json:"partitions"`
}

// Handler exposes the service over the REST contract consumed by
// remotex.Client.
func Handler(svc *Service) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /dashboard", func(w http.ResponseWriter, r *http.Request) {
		snap, err := svc.FetchDashboard(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, snap)
	})

	mux.HandleFunc("GET /topics/{name}", func(w http.ResponseWriter, r *http.Request) {
		topic, err := svc.GetTopic(r.Context(), r.PathValue("name"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]*remotex.Topic{"topic": topic})
	})

	mux.HandleFunc("POST /requests", func(w http.ResponseWriter, r *http.Request) {
		var body submitRequestBody
		if !decodeJSON(w, r, &body) {
			return
		}
		res, err := svc.SubmitRequest(r.Context(), body.TopicName, body.Partitions)
		writeOpResult(w, res, err)
	})

	mux.HandleFunc("POST /requests/{id}/materialize", func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		res, err := svc.MaterializeRequest(r.Context(), id)
		writeOpResult(w, res, err)
	})

	mux.HandleFunc("POST /topics/{name}/alter", func(w http.ResponseWriter, r *http.Request) {
		var body alterTopicBody
		if !decodeJSON(w, r, &body) {
			return
		}
		res, err := svc.AlterTopic(r.Context(), r.PathValue("name"), body.Partitions)
		writeOpResult(w, res, err)
	})

	mux.HandleFunc("DELETE /topics/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		res, err := svc.DeleteTopic(r.Context(), id)
		writeOpResult(w, res, err)
	})

	return mux
}

// NewServer starts an httptest server around the service. The caller owns
// Close.
func NewServer(svc *Service) *httptest.Server {
	return httptest.NewServer(Handler(svc))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		writeJSON(w, http.StatusBadRequest, &remotex.OpResult{Success: false, Message: "Invalid request payload"})
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, &remotex.OpResult{Success: false, Message: "Invalid id"})
		return 0, false
	}
	return id, true
}

func writeOpResult(w http.ResponseWriter, res *remotex.OpResult, err error) {
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errorx.IsNotFoundError(err) {
		status = http.StatusNotFound
	}
	writeJSON(w, status, &remotex.OpResult{Success: false, Message: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
