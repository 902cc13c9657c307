package indexer

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// API serves the indexed events and the off-chain quorum endpoints.
type API struct {
	store *Store
	log   *slog.Logger
	reg   *prometheus.Registry
}

// NewAPI builds the HTTP layer over a store.
func NewAPI(store *Store, log *slog.Logger, reg *prometheus.Registry) *API {
	return &API{store: store, log: log, reg: reg}
}

// Router assembles the chi routes.
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", a.handleHealth)
	r.Get("/events", a.handleEvents)
	r.Route("/projects/{projectID}", func(r chi.Router) {
		r.Get("/events", a.handleProjectEvents)
		r.Get("/quorum", a.handleQuorum)
		r.Post("/vote", a.handleVote)
	})
	r.Post("/admin/quorum", a.handleSetQuorumThreshold)
	r.Handle("/metrics", promhttp.HandlerFor(a.reg, promhttp.HandlerOpts{}))
	return r
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	cursor, err := a.store.Cursor()
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, "store unavailable")
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "cursor": cursor})
}

func (a *API) handleEvents(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	events, err := a.store.Events(nil, limit)
	if err != nil {
		a.log.Error("list events failed", "err", err)
		a.writeError(w, http.StatusInternalServerError, "query failed")
		return
	}
	a.writeJSON(w, http.StatusOK, events)
}

func (a *API) handleProjectEvents(w http.ResponseWriter, r *http.Request) {
	projectID, ok := a.projectID(w, r)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	events, err := a.store.Events(&projectID, limit)
	if err != nil {
		a.log.Error("list project events failed", "project_id", projectID, "err", err)
		a.writeError(w, http.StatusInternalServerError, "query failed")
		return
	}
	a.writeJSON(w, http.StatusOK, events)
}

func (a *API) handleQuorum(w http.ResponseWriter, r *http.Request) {
	projectID, ok := a.projectID(w, r)
	if !ok {
		return
	}
	summary, err := a.store.Quorum(projectID)
	if err != nil {
		a.log.Error("quorum query failed", "project_id", projectID, "err", err)
		a.writeError(w, http.StatusInternalServerError, "query failed")
		return
	}
	a.writeJSON(w, http.StatusOK, summary)
}

type voteRequest struct {
	Voter     string `json:"voter"`
	ProofHash string `json:"proof_hash"`
}

func (a *API) handleVote(w http.ResponseWriter, r *http.Request) {
	projectID, ok := a.projectID(w, r)
	if !ok {
		return
	}
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := a.store.RecordVote(projectID, req.Voter, req.ProofHash); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	summary, err := a.store.Quorum(projectID)
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, "query failed")
		return
	}
	a.writeJSON(w, http.StatusOK, summary)
}

type thresholdRequest struct {
	Threshold int `json:"threshold"`
}

func (a *API) handleSetQuorumThreshold(w http.ResponseWriter, r *http.Request) {
	var req thresholdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := a.store.SetQuorumThreshold(req.Threshold); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (a *API) projectID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	raw := chi.URLParam(r, "projectID")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid project id")
		return 0, false
	}
	return id, true
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.log.Error("write response failed", "err", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, msg string) {
	a.writeJSON(w, status, map[string]string{"error": msg})
}
