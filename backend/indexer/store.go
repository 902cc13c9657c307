package indexer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// EventRecord is one persisted contract event. The composite unique index is
// the dedup boundary: re-ingesting a block after a restart inserts nothing.
type EventRecord struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Ledger    uint64    `gorm:"uniqueIndex:idx_event_dedup;not null" json:"ledger"`
	TxHash    string    `gorm:"uniqueIndex:idx_event_dedup;size:128;not null" json:"tx_hash"`
	EventType string    `gorm:"uniqueIndex:idx_event_dedup;size:8;not null" json:"event_type"`
	ProjectID uint64    `gorm:"uniqueIndex:idx_event_dedup;index" json:"project_id"`
	Attrs     string    `gorm:"type:text" json:"attrs"`
	CreatedAt time.Time `json:"created_at"`
}

// CursorRecord is a single row remembering the last fully ingested ledger.
type CursorRecord struct {
	ID     uint   `gorm:"primaryKey"`
	Ledger uint64 `gorm:"not null"`
}

// QuorumVote is one oracle's independently submitted proof hash for a
// project. Votes are display-only confidence data; the on-chain Oracle role
// alone triggers release.
type QuorumVote struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID uint64    `gorm:"uniqueIndex:idx_vote_dedup;index;not null" json:"project_id"`
	Voter     string    `gorm:"uniqueIndex:idx_vote_dedup;size:128;not null" json:"voter"`
	ProofHash string    `gorm:"size:64;not null" json:"proof_hash"`
	CreatedAt time.Time `json:"created_at"`
}

// QuorumSetting is the single row holding the global vote threshold, so an
// admin can retune it at runtime without restarting the daemon.
type QuorumSetting struct {
	ID        uint `gorm:"primaryKey"`
	Threshold int  `gorm:"not null"`
}

// QuorumSummary aggregates the votes for one project.
type QuorumSummary struct {
	ProjectID uint64            `json:"project_id"`
	Votes     int               `json:"votes"`
	Threshold int               `json:"threshold"`
	Reached   bool              `json:"reached"`
	Tally     map[string]int    `json:"tally"`
	Leading   string            `json:"leading_hash,omitempty"`
	ByVoter   map[string]string `json:"by_voter"`
}

// Store wraps the gorm handle with the indexer's access patterns.
type Store struct {
	db *gorm.DB
}

// NewStore migrates the schema and returns a ready store. The threshold seeds
// the quorum setting on first run; later changes go through
// SetQuorumThreshold and survive restarts.
func NewStore(db *gorm.DB, quorumThreshold int) (*Store, error) {
	if quorumThreshold < 1 {
		quorumThreshold = 1
	}
	if err := db.AutoMigrate(&EventRecord{}, &CursorRecord{}, &QuorumVote{}, &QuorumSetting{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	var setting QuorumSetting
	err := db.First(&setting, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = db.Create(&QuorumSetting{ID: 1, Threshold: quorumThreshold}).Error
	}
	if err != nil {
		return nil, fmt.Errorf("seed quorum setting: %w", err)
	}
	return &Store{db: db}, nil
}

// QuorumThreshold reads the persisted vote threshold.
func (s *Store) QuorumThreshold() (int, error) {
	var setting QuorumSetting
	err := s.db.First(&setting, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return setting.Threshold, nil
}

// SetQuorumThreshold updates the persisted vote threshold.
func (s *Store) SetQuorumThreshold(threshold int) error {
	if threshold < 1 {
		return fmt.Errorf("threshold must be at least 1")
	}
	return s.db.Save(&QuorumSetting{ID: 1, Threshold: threshold}).Error
}

// InsertEvent persists a parsed event, reporting whether it was new. Unique
// index collisions are swallowed: duplicates are the expected case during
// re-ingestion, not an error.
func (s *Store) InsertEvent(ev *ParsedEvent) (bool, error) {
	attrs, err := json.Marshal(ev.Attrs)
	if err != nil {
		return false, fmt.Errorf("marshal attrs: %w", err)
	}
	rec := &EventRecord{
		Ledger:    ev.Ledger,
		TxHash:    ev.TxHash,
		EventType: ev.EventType,
		ProjectID: ev.ProjectID,
		Attrs:     string(attrs),
	}
	result := s.db.Create(rec)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return false, nil
		}
		return false, result.Error
	}
	return true, nil
}

// Events lists recent events, newest first, optionally filtered by project.
func (s *Store) Events(projectID *uint64, limit int) ([]EventRecord, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	q := s.db.Order("id desc").Limit(limit)
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}
	var out []EventRecord
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Cursor returns the last fully ingested ledger, zero when fresh.
func (s *Store) Cursor() (uint64, error) {
	var rec CursorRecord
	err := s.db.First(&rec, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return rec.Ledger, nil
}

// SetCursor advances the ingestion cursor; it never moves backwards.
func (s *Store) SetCursor(ledger uint64) error {
	current, err := s.Cursor()
	if err != nil {
		return err
	}
	if ledger <= current {
		return nil
	}
	rec := CursorRecord{ID: 1, Ledger: ledger}
	return s.db.Save(&rec).Error
}

// RecordVote upserts one voter's proof hash for a project. A voter changing
// their submission overwrites the previous vote.
func (s *Store) RecordVote(projectID uint64, voter, proofHash string) error {
	voter = strings.TrimSpace(voter)
	proofHash = strings.ToLower(strings.TrimSpace(proofHash))
	if voter == "" {
		return fmt.Errorf("voter required")
	}
	if len(proofHash) != 64 {
		return fmt.Errorf("proof hash must be 64 hex chars")
	}
	vote := QuorumVote{ProjectID: projectID, Voter: voter, ProofHash: proofHash}
	result := s.db.Create(&vote)
	if result.Error == nil {
		return nil
	}
	if !isUniqueViolation(result.Error) {
		return result.Error
	}
	return s.db.Model(&QuorumVote{}).
		Where("project_id = ? AND voter = ?", projectID, voter).
		Update("proof_hash", proofHash).Error
}

// Quorum tallies votes per hash and reports whether the leading hash reached
// the persisted threshold.
func (s *Store) Quorum(projectID uint64) (*QuorumSummary, error) {
	threshold, err := s.QuorumThreshold()
	if err != nil {
		return nil, err
	}
	var votes []QuorumVote
	if err := s.db.Where("project_id = ?", projectID).Find(&votes).Error; err != nil {
		return nil, err
	}
	summary := &QuorumSummary{
		ProjectID: projectID,
		Votes:     len(votes),
		Threshold: threshold,
		Tally:     map[string]int{},
		ByVoter:   map[string]string{},
	}
	for _, v := range votes {
		summary.Tally[v.ProofHash]++
		summary.ByVoter[v.Voter] = v.ProofHash
	}
	best := 0
	for hash, n := range summary.Tally {
		if n > best {
			best = n
			summary.Leading = hash
		}
	}
	summary.Reached = best >= threshold
	return summary, nil
}

// isUniqueViolation matches the duplicate-key errors of the sqlite and
// postgres drivers without importing either.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "unique failed")
}
