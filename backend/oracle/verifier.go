// Package oracle fetches milestone proof artifacts, hashes them, and submits
// the attestation that releases a project's escrow on chain.
package oracle

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// MaxProofSize caps how much proof data the verifier will hash (100 MiB).
// Anything larger is rejected rather than streamed to completion.
const MaxProofSize = 100 * 1024 * 1024

// Verifier downloads proof artifacts from an IPFS gateway and computes the
// commitment hash the contract compares against.
type Verifier struct {
	gateway string
	client  *http.Client
}

// NewVerifier builds a verifier against one gateway, e.g. "https://ipfs.io".
func NewVerifier(gateway string) *Verifier {
	return &Verifier{
		gateway: strings.TrimRight(gateway, "/"),
		client:  &http.Client{Timeout: 2 * time.Minute},
	}
}

// FetchAndHashProof downloads the artifact behind the CID and returns its
// SHA-256 as 64 lowercase hex chars, the exact form the contract stores.
func (v *Verifier) FetchAndHashProof(ctx context.Context, cid string) (string, error) {
	cid = strings.TrimSpace(cid)
	if cid == "" {
		return "", fmt.Errorf("proof cid required")
	}
	endpoint := v.gateway + "/ipfs/" + url.PathEscape(cid)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	resp, err := v.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch proof: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gateway returned status %d for %s", resp.StatusCode, cid)
	}

	hasher := sha256.New()
	n, err := io.Copy(hasher, io.LimitReader(resp.Body, MaxProofSize+1))
	if err != nil {
		return "", fmt.Errorf("read proof: %w", err)
	}
	if n > MaxProofSize {
		return "", fmt.Errorf("proof exceeds %d bytes", MaxProofSize)
	}
	if n == 0 {
		return "", fmt.Errorf("proof artifact is empty")
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// HashProofBytes hashes an in-memory artifact, used for local files and tests.
func HashProofBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
