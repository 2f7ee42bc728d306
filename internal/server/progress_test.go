package server

import "testing"

func TestProgressEmptyNight(t *testing.T) {
	view := nightProgress(nil)
	if view.Total != 0 || view.Completed != 0 || view.Percentage != 0 {
		t.Fatalf("expected zeroed progress, got %+v", view)
	}
}

func TestProgressPartialCompletion(t *testing.T) {
	rounds := []Round{
		{ID: 1, Completed: true},
		{ID: 2, Completed: true},
		{ID: 3, Completed: true},
		{ID: 4},
	}
	view := nightProgress(rounds)
	if view.Completed != 3 || view.Total != 4 || view.Percentage != 75 {
		t.Fatalf("expected 3/4 = 75%%, got %+v", view)
	}
}

func TestCelebrationFiresOncePerFullCompletion(t *testing.T) {
	night := &Night{NextRoundID: 1}
	night.appendRound(Round{GameName: "Trivia"})
	night.appendRound(Round{GameName: "Charades"})

	night.setCompleted(1, true)
	if night.updateCelebration(nightProgress(night.Rounds)) {
		t.Fatal("expected no celebration at partial completion")
	}

	night.setCompleted(2, true)
	if !night.updateCelebration(nightProgress(night.Rounds)) {
		t.Fatal("expected celebration on full completion")
	}
	if night.updateCelebration(nightProgress(night.Rounds)) {
		t.Fatal("expected celebration to fire only once")
	}

	// Dropping below full completion re-arms the pulse.
	night.setCompleted(1, false)
	if night.updateCelebration(nightProgress(night.Rounds)) {
		t.Fatal("expected no celebration while incomplete")
	}
	night.setCompleted(1, true)
	if !night.updateCelebration(nightProgress(night.Rounds)) {
		t.Fatal("expected celebration on the next full completion")
	}
}

func TestCelebrationNeverFiresOnEmptyNight(t *testing.T) {
	night := &Night{NextRoundID: 1}
	if night.updateCelebration(nightProgress(night.Rounds)) {
		t.Fatal("expected no celebration with zero rounds")
	}
}
