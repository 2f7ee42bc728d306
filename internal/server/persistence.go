package server

import (
	"encoding/json"
	"fmt"
	"log"

	"gorm.io/gorm/clause"

	"game-night/internal/db"
)

// snapshotSchemaVersion tags every persisted round list. Snapshots carrying
// an unknown version are decoded only if their shape still matches; anything
// incompatible is treated as absent and the night falls back to defaults.
const snapshotSchemaVersion = 1

type roundSnapshot struct {
	ID           int    `json:"id"`
	GameName     string `json:"game_name"`
	GameIcon     string `json:"game_icon"`
	Prompt       string `json:"prompt"`
	Resource     string `json:"resource"`
	TimerMinutes int    `json:"timer_minutes"`
	TimerSeconds int    `json:"timer_seconds"`
	Completed    bool   `json:"completed"`
}

// encodeRounds flattens the ordered round list for the snapshot slot. Live
// countdown progress is deliberately not included; only the configured
// minutes and seconds survive a reload.
func encodeRounds(rounds []Round) ([]byte, error) {
	snapshots := make([]roundSnapshot, 0, len(rounds))
	for _, round := range rounds {
		snapshots = append(snapshots, roundSnapshot{
			ID:           round.ID,
			GameName:     round.GameName,
			GameIcon:     round.GameIcon,
			Prompt:       round.PromptMarkup,
			Resource:     round.ResourceMarkup,
			TimerMinutes: round.TimerMinutes,
			TimerSeconds: round.TimerSeconds,
			Completed:    round.Completed,
		})
	}
	return json.Marshal(snapshots)
}

// decodeRounds rebuilds the ordered round list from a stored snapshot.
// Returns false when the snapshot is unusable: not an array, empty, or an
// unknown schema version whose entries do not line up with the known shape.
// Under the current version, individually malformed entries are dropped
// rather than failing the whole load.
func decodeRounds(version int, raw []byte) ([]Round, bool) {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false
	}
	if len(entries) == 0 {
		return nil, false
	}
	rounds := make([]Round, 0, len(entries))
	for _, entry := range entries {
		var snap roundSnapshot
		if err := json.Unmarshal(entry, &snap); err != nil || !snap.valid() {
			if version != snapshotSchemaVersion {
				return nil, false
			}
			continue
		}
		rounds = append(rounds, snap.round())
	}
	if len(rounds) == 0 {
		return nil, false
	}
	return rounds, true
}

func (s roundSnapshot) valid() bool {
	if s.ID <= 0 || s.GameName == "" {
		return false
	}
	if err := validateTimerInput(s.TimerMinutes, s.TimerSeconds); err != nil {
		return false
	}
	return true
}

func (s roundSnapshot) round() Round {
	resource := s.Resource
	if resource == "" {
		resource, _ = resourceBlock(resourceText, "", "")
	}
	return Round{
		ID:             s.ID,
		GameName:       s.GameName,
		GameIcon:       s.GameIcon,
		PromptMarkup:   ensurePromptMarkup(s.Prompt),
		ResourceMarkup: resource,
		TimerMinutes:   s.TimerMinutes,
		TimerSeconds:   s.TimerSeconds,
		Completed:      s.Completed,
	}
}

// persistNight creates the night's snapshot row and renames the night to
// match its database id.
func (s *Server) persistNight(night *Night) error {
	if s.db == nil {
		return nil
	}
	rounds, err := encodeRounds(night.Rounds)
	if err != nil {
		return err
	}
	record := db.NightSnapshot{
		ShareCode:     night.ShareCode,
		SchemaVersion: snapshotSchemaVersion,
		Rounds:        rounds,
	}
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error; err != nil {
		return err
	}
	night.DBID = record.ID
	newID := fmt.Sprintf("night-%d", record.ID)
	if night.ID != newID {
		s.store.UpdateNightID(night, newID)
	}
	s.recordEvent(night, "night_created", nil, EventPayload{
		NightID:   night.ID,
		ShareCode: night.ShareCode,
	})
	return nil
}

// saveSnapshot overwrites the night's slot with the current round list.
// Storage failures are logged and swallowed; the in-memory state stays the
// source of truth for the session.
func (s *Server) saveSnapshot(night *Night) {
	if s.db == nil {
		return
	}
	rounds, err := encodeRounds(night.Rounds)
	if err != nil {
		log.Printf("save snapshot encode failed night_id=%s error=%v", night.ID, err)
		return
	}
	if night.DBID == 0 {
		if err := s.persistNight(night); err != nil {
			log.Printf("save snapshot create failed night_id=%s error=%v", night.ID, err)
		}
		return
	}
	err = s.db.Model(&db.NightSnapshot{}).
		Where("id = ?", night.DBID).
		Updates(map[string]any{
			"schema_version": snapshotSchemaVersion,
			"rounds":         rounds,
		}).Error
	if err != nil {
		log.Printf("save snapshot failed night_id=%s error=%v", night.ID, err)
	}
}

// RestoreNights loads every persisted snapshot back into the store. Nights
// with unusable snapshots come back seeded with the default round set.
func (s *Server) RestoreNights() error {
	if s.db == nil {
		return nil
	}
	var records []db.NightSnapshot
	if err := s.db.Order("id asc").Find(&records).Error; err != nil {
		return err
	}
	for _, record := range records {
		rounds, ok := decodeRounds(record.SchemaVersion, record.Rounds)
		if !ok {
			log.Printf("snapshot unusable, using defaults night_db_id=%d", record.ID)
			rounds = nil
		}
		night := &Night{
			ID:          fmt.Sprintf("night-%d", record.ID),
			DBID:        record.ID,
			ShareCode:   record.ShareCode,
			NextRoundID: 1,
		}
		if rounds == nil {
			for _, round := range defaultRounds() {
				night.appendRound(round)
			}
		} else {
			night.Rounds = rounds
		}
		if err := s.store.RestoreNight(night); err != nil {
			log.Printf("restore night failed night_id=%s error=%v", night.ID, err)
			continue
		}
		log.Printf("night restored night_id=%s rounds=%d", night.ID, len(night.Rounds))
	}
	return nil
}
