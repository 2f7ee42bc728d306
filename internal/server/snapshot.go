package server

// timer phase labels exposed to the view layer. Absent timers are idle;
// an expired timer keeps its entry at zero until reset or restarted, so the
// row can stay visually distinct.
const (
	timerPhaseIdle    = "idle"
	timerPhaseRunning = "running"
	timerPhasePaused  = "paused"
	timerPhaseExpired = "expired"
)

func timerPhase(state TimerState, started bool) string {
	switch {
	case !started:
		return timerPhaseIdle
	case state.Running:
		return timerPhaseRunning
	case state.Remaining > 0:
		return timerPhasePaused
	default:
		return timerPhaseExpired
	}
}

// nightPayload is the full state pushed to every page over the websocket
// and returned from GET /api/nights/{id}.
func (s *Server) nightPayload(night *Night) map[string]any {
	states := s.timers.NightStates(night.ID)
	rounds := make([]map[string]any, 0, len(night.Rounds))
	for _, round := range night.Rounds {
		state, started := states[round.ID]
		timer := map[string]any{
			"remaining": state.Remaining,
			"running":   state.Running,
			"display":   formatClock(state.Remaining),
			"phase":     timerPhase(state, started),
		}
		if started {
			timer["tier"] = urgencyTier(state.Remaining)
		}
		// Name and icon are free-form input and the client drops round rows
		// in with innerHTML, so they go out escaped like prompt and answer.
		// The aggregate display stays raw; it is rendered as text.
		rounds = append(rounds, map[string]any{
			"id":            round.ID,
			"game_name":     escapeHTML(round.GameName),
			"game_icon":     escapeHTML(round.GameIcon),
			"prompt":        round.PromptMarkup,
			"resource":      round.ResourceMarkup,
			"timer_minutes": round.TimerMinutes,
			"timer_seconds": round.TimerSeconds,
			"completed":     round.Completed,
			"timer":         timer,
		})
	}

	progress := nightProgress(night.Rounds)
	aggregate := aggregateTimers(night.Rounds, states)
	payload := map[string]any{
		"night_id":   night.ID,
		"share_code": night.ShareCode,
		"rounds":     rounds,
		"progress": map[string]any{
			"completed":  progress.Completed,
			"total":      progress.Total,
			"percentage": progress.Percentage,
		},
		"aggregate": map[string]any{
			"active":  aggregate.Active,
			"display": aggregate.Display,
		},
	}
	if aggregate.Active {
		agg := payload["aggregate"].(map[string]any)
		agg["round_id"] = aggregate.RoundID
		agg["game_name"] = aggregate.GameName
		agg["remaining"] = aggregate.Remaining
		agg["tier"] = aggregate.Tier
	}
	return payload
}
