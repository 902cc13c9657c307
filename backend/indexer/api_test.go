package indexer

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T) (*API, *Store) {
	t.Helper()
	store := newTestStore(t, 2)
	api := NewAPI(store, slog.Default(), prometheus.NewRegistry())
	return api, store
}

func TestHealthEndpoint(t *testing.T) {
	api, store := newTestAPI(t)
	require.NoError(t, store.SetCursor(77))

	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "ok", body["status"])
	require.Equal(t, float64(77), body["cursor"])
}

func TestProjectEventsEndpoint(t *testing.T) {
	api, store := newTestAPI(t)
	_, err := store.InsertEvent(sampleEvent(1, "tx-1", EventCreated, 5))
	require.NoError(t, err)
	_, err = store.InsertEvent(sampleEvent(2, "tx-2", EventFunded, 5))
	require.NoError(t, err)
	_, err = store.InsertEvent(sampleEvent(3, "tx-3", EventCreated, 6))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects/5/events", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var events []EventRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 2)
	for _, ev := range events {
		require.Equal(t, uint64(5), ev.ProjectID)
	}

	rec = httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects/nope/events", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVoteAndQuorumEndpoints(t *testing.T) {
	api, _ := newTestAPI(t)
	hashA := strings.Repeat("a", 64)

	vote := func(voter string) *httptest.ResponseRecorder {
		body := `{"voter":"` + voter + `","proof_hash":"` + hashA + `"}`
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/projects/9/vote", strings.NewReader(body))
		api.Router().ServeHTTP(rec, req)
		return rec
	}

	rec := vote("oracle-1")
	require.Equal(t, http.StatusOK, rec.Code)
	var summary QuorumSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	require.False(t, summary.Reached)

	rec = vote("oracle-2")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	require.True(t, summary.Reached)
	require.Equal(t, hashA, summary.Leading)

	rec = httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects/9/quorum", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	require.Equal(t, 2, summary.Votes)
}

func TestAdminQuorumEndpoint(t *testing.T) {
	api, _ := newTestAPI(t)
	hashA := strings.Repeat("a", 64)

	vote := func(voter string) {
		body := `{"voter":"` + voter + `","proof_hash":"` + hashA + `"}`
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/projects/3/vote", strings.NewReader(body))
		api.Router().ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	vote("oracle-1")

	// raising the threshold to 3 flips the summary back to not reached
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/quorum", strings.NewReader(`{"threshold":3}`))
	api.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	vote("oracle-2")
	rec = httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects/3/quorum", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var summary QuorumSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	require.Equal(t, 3, summary.Threshold)
	require.False(t, summary.Reached)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/admin/quorum", strings.NewReader(`{"threshold":0}`))
	api.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/admin/quorum", strings.NewReader("not json"))
	api.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVoteRejectsBadBody(t *testing.T) {
	api, _ := newTestAPI(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/projects/9/vote", strings.NewReader("not json"))
	api.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/projects/9/vote", strings.NewReader(`{"voter":"x","proof_hash":"short"}`))
	api.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	store := newTestStore(t, 2)
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	metrics.EventsIngested.WithLabelValues(EventFunded).Inc()
	api := NewAPI(store, slog.Default(), reg)

	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "pifp_indexer_events_ingested_total")
}
