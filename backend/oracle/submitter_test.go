package oracle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubmitVerification(t *testing.T) {
	var got callRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/contracts/call", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	hash := strings.Repeat("c", 64)
	s := NewNodeSubmitter(server.URL, "contract:pifp")
	require.NoError(t, s.SubmitVerification(context.Background(), 7, hash))
	require.Equal(t, "contract:pifp", got.ContractID)
	require.Equal(t, "projects_verify_release", got.Action)
	require.Equal(t, "7|"+hash, got.Payload)
}

func TestSubmitVerificationNodeRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "revert", http.StatusBadRequest)
	}))
	defer server.Close()

	s := NewNodeSubmitter(server.URL, "contract:pifp")
	err := s.SubmitVerification(context.Background(), 7, strings.Repeat("c", 64))
	require.Error(t, err)
	require.Contains(t, err.Error(), "400")
}
