package server

import "testing"

func TestAggregateEmptyReportsNoActiveTimer(t *testing.T) {
	view := aggregateTimers(nil, map[int]TimerState{})
	if view.Active {
		t.Fatal("expected inactive aggregate")
	}
	if view.Display != noActiveTimerLabel {
		t.Fatalf("expected %q, got %q", noActiveTimerLabel, view.Display)
	}
}

func TestAggregatePicksSmallestRemaining(t *testing.T) {
	rounds := []Round{
		{ID: 1, GameName: "Trivia"},
		{ID: 2, GameName: "Charades"},
		{ID: 3, GameName: "Sketch"},
	}
	states := map[int]TimerState{
		1: {Remaining: 40, Running: true},
		2: {Remaining: 15, Running: true},
		3: {Remaining: 90, Running: true},
	}
	view := aggregateTimers(rounds, states)
	if view.RoundID != 2 {
		t.Fatalf("expected round 2, got %d", view.RoundID)
	}
	if view.Display != "Charades: 00:15" {
		t.Fatalf("unexpected display %q", view.Display)
	}
	if view.Tier != tierWarning {
		t.Fatalf("expected warning tier, got %s", view.Tier)
	}
}

func TestAggregateTieBreaksOnRoundOrder(t *testing.T) {
	rounds := []Round{
		{ID: 7, GameName: "Name That Tune"},
		{ID: 3, GameName: "Final Wager"},
	}
	states := map[int]TimerState{
		7: {Remaining: 15, Running: true},
		3: {Remaining: 15, Running: true},
	}
	view := aggregateTimers(rounds, states)
	if view.RoundID != 7 {
		t.Fatalf("expected first-listed round 7 to win the tie, got %d", view.RoundID)
	}
}

func TestAggregateIgnoresPausedAndExpired(t *testing.T) {
	rounds := []Round{
		{ID: 1, GameName: "Trivia"},
		{ID: 2, GameName: "Charades"},
	}
	states := map[int]TimerState{
		1: {Remaining: 20, Running: false},
		2: {Remaining: 0, Running: false},
	}
	view := aggregateTimers(rounds, states)
	if view.Active {
		t.Fatalf("expected inactive aggregate, got %+v", view)
	}
}
