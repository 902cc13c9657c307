package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Submitter delivers a verify-and-release call to the chain. The HTTP node
// client below is the production path; tests swap in a fake.
type Submitter interface {
	SubmitVerification(ctx context.Context, projectID uint64, proofHash string) error
}

// NodeSubmitter posts contract calls through a node's transaction endpoint.
type NodeSubmitter struct {
	nodeURL    string
	contractID string
	client     *http.Client
}

// NewNodeSubmitter builds the production submitter.
func NewNodeSubmitter(nodeURL, contractID string) *NodeSubmitter {
	return &NodeSubmitter{
		nodeURL:    nodeURL,
		contractID: contractID,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

type callRequest struct {
	ContractID string `json:"contract_id"`
	Action     string `json:"action"`
	Payload    string `json:"payload"`
}

// SubmitVerification implements Submitter by invoking projects_verify_release.
func (s *NodeSubmitter) SubmitVerification(ctx context.Context, projectID uint64, proofHash string) error {
	body, err := json.Marshal(callRequest{
		ContractID: s.contractID,
		Action:     "projects_verify_release",
		Payload:    fmt.Sprintf("%d|%s", projectID, proofHash),
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.nodeURL+"/contracts/call", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("submit verification: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("node rejected verification with status %d", resp.StatusCode)
	}
	return nil
}
