package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// RoundRecord is one finished round of a play session.
type RoundRecord struct {
	ID              int64     `json:"id"`
	SessionID       string    `json:"session_id"`
	GameID          string    `json:"game_id"`
	Round           int       `json:"round"`
	Attack          int       `json:"attack"`
	Defence         int       `json:"defence"`
	OpponentAttack  int       `json:"opponent_attack"`
	OpponentDefence int       `json:"opponent_defence"`
	BestMultiplier  int       `json:"best_multiplier"`
	Matches         int       `json:"matches"`
	ForcedShuffles  int       `json:"forced_shuffles"`
	Won             bool      `json:"won"`
	CreatedAt       time.Time `json:"created_at"`
}

// Summary converts the record back to the game's round summary.
func (r RoundRecord) Summary() core.RoundSummary {
	return core.RoundSummary{
		Round:           r.Round,
		Attack:          r.Attack,
		Defence:         r.Defence,
		OpponentAttack:  r.OpponentAttack,
		OpponentDefence: r.OpponentDefence,
		BestMultiplier:  r.BestMultiplier,
		Matches:         r.Matches,
		ForcedShuffles:  r.ForcedShuffles,
	}
}

// NewSessionID returns a fresh play-session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// ValidSessionID reports whether id looks like a session identifier.
func ValidSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

const roundColumns = `id, session_id, game_id, round, attack, defence, opponent_attack,
	opponent_defence, best_multiplier, matches, forced_shuffles, won, created_at`

// SaveRound records a finished round for a play session.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(sessionID, gameID string, r core.RoundSummary) (int64, error) {
	if !ValidSessionID(sessionID) {
		return 0, fmt.Errorf("storage: cannot save round: invalid session id %q", sessionID)
	}

	id, err := s.insert(
		`INSERT INTO rounds
		 (session_id, game_id, round, attack, defence, opponent_attack, opponent_defence,
		  best_multiplier, matches, forced_shuffles, won)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sessionID, gameID, r.Round,
		r.Attack, r.Defence, r.OpponentAttack, r.OpponentDefence,
		r.BestMultiplier, r.Matches, r.ForcedShuffles, r.Won(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}
	return id, nil
}

// SessionRounds retrieves every round of a session in play order.
func (s *Store) SessionRounds(sessionID string) ([]RoundRecord, error) {
	return s.queryRounds(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE session_id = ?
		 ORDER BY round ASC, id ASC`,
		sessionID,
	)
}

// RecentRounds retrieves the latest rounds played in a game, newest first.
func (s *Store) RecentRounds(gameID string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRounds(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
}

func (s *Store) queryRounds(query string, args ...any) ([]RoundRecord, error) {
	rows, err := s.query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.SessionID,
			&r.GameID,
			&r.Round,
			&r.Attack,
			&r.Defence,
			&r.OpponentAttack,
			&r.OpponentDefence,
			&r.BestMultiplier,
			&r.Matches,
			&r.ForcedShuffles,
			&r.Won,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}
