package server

const noActiveTimerLabel = "No active timer"

// AggregateView is the single "most urgent timer" banner derived from all
// running countdowns in a night.
type AggregateView struct {
	Active    bool
	RoundID   int
	GameName  string
	Remaining int
	Display   string
	Tier      string
}

// aggregateTimers picks the running timer with the strictly smallest
// remaining time. Ties go to whichever round comes first in list order.
func aggregateTimers(rounds []Round, states map[int]TimerState) AggregateView {
	view := AggregateView{Display: noActiveTimerLabel}
	for _, round := range rounds {
		state, ok := states[round.ID]
		if !ok || !state.Running || state.Remaining <= 0 {
			continue
		}
		if view.Active && state.Remaining >= view.Remaining {
			continue
		}
		view = AggregateView{
			Active:    true,
			RoundID:   round.ID,
			GameName:  round.GameName,
			Remaining: state.Remaining,
			Display:   round.GameName + ": " + formatClock(state.Remaining),
			Tier:      urgencyTier(state.Remaining),
		}
	}
	return view
}
