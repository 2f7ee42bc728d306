package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
)

type addRoundRequest struct {
	GameName     string `json:"game_name"`
	GameIcon     string `json:"game_icon"`
	PromptText   string `json:"prompt_text"`
	ResourceKind string `json:"resource_kind"`
	ResourcePath string `json:"resource_path"`
	AnswerText   string `json:"answer_text"`
	TimerMinutes int    `json:"timer_minutes"`
	TimerSeconds int    `json:"timer_seconds"`
}

type moveRoundRequest struct {
	Direction string `json:"direction"`
}

type toggleDoneRequest struct {
	Completed bool `json:"completed"`
}

type timerRequest struct {
	Action string `json:"action"`
}

func (s *Server) handleCreateNight(w http.ResponseWriter, r *http.Request) {
	night := s.store.CreateNight(defaultRounds())
	if err := s.persistNight(night); err != nil {
		log.Printf("persist night failed night_id=%s error=%v", night.ID, err)
	}
	log.Printf("night created night_id=%s share_code=%s", night.ID, night.ShareCode)
	s.broadcastHomeUpdate()
	writeJSON(w, http.StatusCreated, map[string]any{
		"night_id":   night.ID,
		"share_code": night.ShareCode,
	})
}

func (s *Server) handleNightSubroutes(w http.ResponseWriter, r *http.Request) {
	nightID, parts, ok := parseNightPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	night, exists := s.store.GetNight(nightID)
	if !exists {
		writeError(w, http.StatusNotFound, "night not found")
		return
	}

	if len(parts) == 0 {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		writeJSON(w, http.StatusOK, s.nightPayload(night))
		return
	}

	if roundID, action, ok := parseRoundSegments(parts); ok {
		s.handleRoundRoute(w, r, night, roundID, action)
		return
	}

	switch {
	case len(parts) == 1 && parts[0] == "rounds" && r.Method == http.MethodPost:
		s.handleAddRound(w, r, night)
	case len(parts) == 2 && parts[0] == "timers" && parts[1] == "reset" && r.Method == http.MethodPost:
		s.handleResetAllTimers(w, night)
	case len(parts) == 1 && parts[0] == "restore-defaults" && r.Method == http.MethodPost:
		s.handleRestoreDefaults(w, night)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) handleRoundRoute(w http.ResponseWriter, r *http.Request, night *Night, roundID int, action string) {
	switch {
	case action == "" && r.Method == http.MethodDelete:
		s.handleDeleteRound(w, night, roundID)
	case action == "move" && r.Method == http.MethodPost:
		s.handleMoveRound(w, r, night, roundID)
	case action == "done" && r.Method == http.MethodPost:
		s.handleToggleDone(w, r, night, roundID)
	case action == "timer" && r.Method == http.MethodPost:
		s.handleTimerCommand(w, r, night, roundID)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) handleAddRound(w http.ResponseWriter, r *http.Request, night *Night) {
	var req addRoundRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	name, err := validateGameName(req.GameName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	icon, err := validateGameIcon(req.GameIcon)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	prompt, err := validatePromptText(req.PromptText)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateTimerInput(req.TimerMinutes, req.TimerSeconds); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	path, err := validateResourcePath(req.ResourcePath)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	answer, err := validateAnswerText(req.AnswerText)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	resource, err := resourceBlock(req.ResourceKind, path, answer)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	addedID := 0
	_, err = s.store.UpdateNight(night.ID, func(n *Night) error {
		if len(n.Rounds) >= s.cfg.MaxRoundsPerNight {
			return fmt.Errorf("a night can hold at most %d rounds", s.cfg.MaxRoundsPerNight)
		}
		addedID = n.appendRound(Round{
			GameName:       name,
			GameIcon:       icon,
			PromptMarkup:   promptBlock(prompt),
			ResourceMarkup: resource,
			TimerMinutes:   req.TimerMinutes,
			TimerSeconds:   req.TimerSeconds,
		})
		n.Celebrated = false
		return nil
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	log.Printf("round added night_id=%s round_id=%d game=%q", night.ID, addedID, name)
	s.saveSnapshot(night)
	s.recordEvent(night, "round_added", &addedID, EventPayload{
		RoundID:  addedID,
		GameName: name,
	})
	s.broadcastNightUpdate(night)
	writeJSON(w, http.StatusCreated, map[string]any{
		"round_id": addedID,
	})
}

func (s *Server) handleDeleteRound(w http.ResponseWriter, night *Night, roundID int) {
	s.timers.Drop(timerKey{nightID: night.ID, roundID: roundID})
	removed := false
	_, err := s.store.UpdateNight(night.ID, func(n *Night) error {
		removed = n.removeRound(roundID)
		if removed {
			n.updateCelebration(nightProgress(n.Rounds))
		}
		return nil
	})
	if err != nil || !removed {
		writeError(w, http.StatusNotFound, "round not found")
		return
	}

	log.Printf("round deleted night_id=%s round_id=%d", night.ID, roundID)
	s.saveSnapshot(night)
	s.recordEvent(night, "round_deleted", &roundID, EventPayload{RoundID: roundID})
	s.broadcastNightUpdate(night)
	writeJSON(w, http.StatusOK, map[string]any{
		"deleted": true,
	})
}

func (s *Server) handleMoveRound(w http.ResponseWriter, r *http.Request, night *Night, roundID int) {
	var req moveRoundRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	var delta int
	switch req.Direction {
	case moveDirectionUp:
		delta = -1
	case moveDirectionDown:
		delta = 1
	default:
		writeError(w, http.StatusBadRequest, "direction must be up or down")
		return
	}

	found := false
	moved := false
	_, err := s.store.UpdateNight(night.ID, func(n *Night) error {
		_, _, found = n.findRound(roundID)
		moved = n.moveRound(roundID, delta)
		return nil
	})
	if err != nil || !found {
		writeError(w, http.StatusNotFound, "round not found")
		return
	}

	// Moving past either end of the list is a quiet no-op.
	if moved {
		s.saveSnapshot(night)
		s.recordEvent(night, "round_moved", &roundID, EventPayload{
			RoundID:   roundID,
			Direction: req.Direction,
		})
		s.broadcastNightUpdate(night)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"moved": moved,
	})
}

func (s *Server) handleToggleDone(w http.ResponseWriter, r *http.Request, night *Night, roundID int) {
	var req toggleDoneRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	found := false
	celebrate := false
	focusID := 0
	hasFocus := false
	_, err := s.store.UpdateNight(night.ID, func(n *Night) error {
		_, found = n.setCompleted(roundID, req.Completed)
		if !found {
			return nil
		}
		if req.Completed {
			focusID, hasFocus = n.nextOpenRoundAfter(roundID)
		}
		celebrate = n.updateCelebration(nightProgress(n.Rounds))
		return nil
	})
	if err != nil || !found {
		writeError(w, http.StatusNotFound, "round not found")
		return
	}

	if req.Completed {
		s.timers.Pause(timerKey{nightID: night.ID, roundID: roundID})
	}

	progress := nightProgress(night.Rounds)
	log.Printf("round toggled night_id=%s round_id=%d done=%v progress=%d/%d",
		night.ID, roundID, req.Completed, progress.Completed, progress.Total)
	s.saveSnapshot(night)
	s.recordEvent(night, "round_completed", &roundID, EventPayload{
		RoundID:   roundID,
		Done:      req.Completed,
		Completed: progress.Completed,
		Total:     progress.Total,
	})
	s.broadcastNightUpdate(night)
	if celebrate {
		s.recordEvent(night, "celebration", nil, EventPayload{
			Completed: progress.Completed,
			Total:     progress.Total,
		})
		s.ws.Broadcast(night.ID, s.celebrationNotice())
	}

	response := map[string]any{
		"completed":   req.Completed,
		"celebration": celebrate,
	}
	if hasFocus {
		response["focus_round_id"] = focusID
	}
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleTimerCommand(w http.ResponseWriter, r *http.Request, night *Night, roundID int) {
	var req timerRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	round, _, found := night.findRound(roundID)
	if !found {
		writeError(w, http.StatusNotFound, "round not found")
		return
	}
	key := timerKey{nightID: night.ID, roundID: roundID}

	var state TimerState
	switch req.Action {
	case timerActionStart:
		var err error
		state, err = s.timers.Start(key, round.ConfiguredSeconds())
		if errors.Is(err, errNoTimeSet) {
			writeError(w, http.StatusBadRequest, errNoTimeSet.Error())
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "timer start failed")
			return
		}
	case timerActionPause:
		state = s.timers.Pause(key)
	case timerActionReset:
		state = s.timers.Reset(key)
	default:
		writeError(w, http.StatusBadRequest, "action must be start, pause, or reset")
		return
	}

	log.Printf("timer %s night_id=%s round_id=%d remaining=%d", req.Action, night.ID, roundID, state.Remaining)
	s.recordEvent(night, "timer_"+req.Action, &roundID, EventPayload{
		RoundID:   roundID,
		Action:    req.Action,
		Remaining: state.Remaining,
	})
	s.broadcastNightUpdate(night)
	writeJSON(w, http.StatusOK, map[string]any{
		"remaining": state.Remaining,
		"running":   state.Running,
		"display":   formatClock(state.Remaining),
		"tier":      urgencyTier(state.Remaining),
	})
}

func (s *Server) handleResetAllTimers(w http.ResponseWriter, night *Night) {
	for _, round := range night.Rounds {
		s.timers.Reset(timerKey{nightID: night.ID, roundID: round.ID})
	}
	log.Printf("all timers reset night_id=%s", night.ID)
	s.recordEvent(night, "timers_reset", nil, EventPayload{NightID: night.ID})
	s.broadcastNightUpdate(night)
	writeJSON(w, http.StatusOK, map[string]any{
		"reset": true,
	})
}

func (s *Server) handleRestoreDefaults(w http.ResponseWriter, night *Night) {
	for _, round := range night.Rounds {
		s.timers.Drop(timerKey{nightID: night.ID, roundID: round.ID})
	}
	_, err := s.store.UpdateNight(night.ID, func(n *Night) error {
		// Round ids keep counting up so a restored list never collides
		// with ids handed out earlier in the session.
		n.Rounds = nil
		n.Celebrated = false
		for _, round := range defaultRounds() {
			n.appendRound(round)
		}
		return nil
	})
	if err != nil {
		writeError(w, http.StatusNotFound, "night not found")
		return
	}

	log.Printf("defaults restored night_id=%s rounds=%d", night.ID, len(night.Rounds))
	s.saveSnapshot(night)
	s.recordEvent(night, "defaults_restored", nil, EventPayload{NightID: night.ID})
	s.broadcastNightUpdate(night)
	writeJSON(w, http.StatusOK, s.nightPayload(night))
}
