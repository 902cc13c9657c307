package indexer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// HTTPLogSource pulls contract log batches from a node's HTTP endpoint.
// The node exposes GET /contracts/{id}/logs?after=<ledger> returning a JSON
// array of ledger batches.
type HTTPLogSource struct {
	baseURL    string
	contractID string
	client     *http.Client
}

// NewHTTPLogSource builds a source for one contract on one node.
func NewHTTPLogSource(baseURL, contractID string) *HTTPLogSource {
	return &HTTPLogSource{
		baseURL:    baseURL,
		contractID: contractID,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

type logBatchPayload struct {
	Ledger uint64   `json:"ledger"`
	TxHash string   `json:"tx_hash"`
	Lines  []string `json:"lines"`
}

// FetchLogs implements LogSource.
func (s *HTTPLogSource) FetchLogs(ctx context.Context, afterLedger uint64) ([]LedgerLogs, error) {
	endpoint := fmt.Sprintf("%s/contracts/%s/logs?after=%s",
		s.baseURL, url.PathEscape(s.contractID), strconv.FormatUint(afterLedger, 10))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch logs: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("node returned status %d", resp.StatusCode)
	}
	var payload []logBatchPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode logs: %w", err)
	}
	batches := make([]LedgerLogs, 0, len(payload))
	for _, b := range payload {
		batches = append(batches, LedgerLogs{Ledger: b.Ledger, TxHash: b.TxHash, Lines: b.Lines})
	}
	return batches, nil
}
