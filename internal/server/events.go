package server

import (
	"encoding/json"
	"log"

	"game-night/internal/db"
)

type EventPayload struct {
	NightID   string `json:"night_id,omitempty"`
	ShareCode string `json:"share_code,omitempty"`
	RoundID   int    `json:"round_id,omitempty"`
	GameName  string `json:"game,omitempty"`
	Direction string `json:"direction,omitempty"`
	Action    string `json:"action,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Completed int    `json:"completed,omitempty"`
	Total     int    `json:"total,omitempty"`
	Remaining int    `json:"remaining,omitempty"`
	Done      bool   `json:"done,omitempty"`
}

// recordEvent appends to the night's audit log. Event persistence is best
// effort; failures are logged and never surfaced to the caller.
func (s *Server) recordEvent(night *Night, eventType string, roundID *int, payload EventPayload) {
	if s.eventSink != nil {
		s.eventSink(eventType, roundID, payload)
	}
	if s.db == nil || night.DBID == 0 {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("event encode failed night_id=%s type=%s error=%v", night.ID, eventType, err)
		return
	}
	record := db.Event{
		NightID: night.DBID,
		RoundID: roundID,
		Type:    eventType,
		Payload: data,
	}
	if err := s.db.Create(&record).Error; err != nil {
		log.Printf("event persist failed night_id=%s type=%s error=%v", night.ID, eventType, err)
	}
}
