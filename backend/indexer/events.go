// Package indexer ingests the contract's terse event log lines into a
// queryable store and serves them over HTTP. It exists so explorers and the
// funding dashboard never have to replay raw chain storage.
package indexer

import (
	"fmt"
	"strconv"
	"strings"
)

// Event types as they appear in the contract's log prefixes.
const (
	EventInitialized = "ci"
	EventCreated     = "pc"
	EventFunded      = "pf"
	EventActivated   = "pa"
	EventVerified    = "pv"
	EventReleased    = "fr"
	EventExpired     = "pe"
	EventRefunded    = "rd"
	EventPaused      = "pp"
	EventUnpaused    = "pu"
	EventRoleGranted = "rg"
	EventRoleRevoked = "rr"
)

// ParsedEvent is one decoded contract log line plus its chain coordinates.
type ParsedEvent struct {
	Ledger    uint64
	TxHash    string
	EventType string
	ProjectID uint64
	Attrs     map[string]string
}

// ParseEventLine decodes a pipe-delimited contract log line. The first field
// is the event type; the rest are key:value attributes. Lines that do not
// look like contract events return an error so callers can skip unrelated
// console output.
func ParseEventLine(ledger uint64, txHash, line string) (*ParsedEvent, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, fmt.Errorf("empty event line")
	}
	parts := strings.Split(line, "|")
	eventType := parts[0]
	if !knownEventType(eventType) {
		return nil, fmt.Errorf("unknown event type %q", eventType)
	}

	ev := &ParsedEvent{
		Ledger:    ledger,
		TxHash:    txHash,
		EventType: eventType,
		Attrs:     make(map[string]string, len(parts)-1),
	}
	for _, part := range parts[1:] {
		kv := strings.SplitN(part, ":", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("malformed attribute %q in %q", part, line)
		}
		ev.Attrs[kv[0]] = kv[1]
	}
	if idStr, ok := ev.Attrs["id"]; ok {
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid project id in %q: %w", line, err)
		}
		ev.ProjectID = id
	}
	return ev, nil
}

func knownEventType(t string) bool {
	switch t {
	case EventInitialized, EventCreated, EventFunded, EventActivated,
		EventVerified, EventReleased, EventExpired, EventRefunded,
		EventPaused, EventUnpaused, EventRoleGranted, EventRoleRevoked:
		return true
	}
	return false
}
