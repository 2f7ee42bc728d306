package server

import "testing"

func TestParseNightPath(t *testing.T) {
	nightID, parts, ok := parseNightPath("/api/nights/night-1/rounds/3/move")
	if !ok || nightID != "night-1" {
		t.Fatalf("expected night-1, got %q (ok=%v)", nightID, ok)
	}
	if len(parts) != 3 || parts[0] != "rounds" || parts[1] != "3" || parts[2] != "move" {
		t.Fatalf("unexpected parts %v", parts)
	}

	if _, _, ok := parseNightPath("/api/nights/"); ok {
		t.Fatal("expected empty night id to be rejected")
	}
	if _, _, ok := parseNightPath("/api/other/night-1"); ok {
		t.Fatal("expected foreign prefix to be rejected")
	}
}

func TestParseRoundSegments(t *testing.T) {
	id, action, ok := parseRoundSegments([]string{"rounds", "5", "timer"})
	if !ok || id != 5 || action != "timer" {
		t.Fatalf("expected (5, timer), got (%d, %q, ok=%v)", id, action, ok)
	}
	id, action, ok = parseRoundSegments([]string{"rounds", "7"})
	if !ok || id != 7 || action != "" {
		t.Fatalf("expected (7, \"\"), got (%d, %q, ok=%v)", id, action, ok)
	}
	if _, _, ok := parseRoundSegments([]string{"rounds", "zero"}); ok {
		t.Fatal("expected non-numeric id to be rejected")
	}
	if _, _, ok := parseRoundSegments([]string{"rounds", "-3"}); ok {
		t.Fatal("expected negative id to be rejected")
	}
	if _, _, ok := parseRoundSegments([]string{"timers", "reset"}); ok {
		t.Fatal("expected non-round segments to be rejected")
	}
}

func TestTimerPhase(t *testing.T) {
	cases := []struct {
		state   TimerState
		started bool
		phase   string
	}{
		{TimerState{}, false, timerPhaseIdle},
		{TimerState{Remaining: 30, Running: true}, true, timerPhaseRunning},
		{TimerState{Remaining: 30, Running: false}, true, timerPhasePaused},
		{TimerState{Remaining: 0, Running: false}, true, timerPhaseExpired},
	}
	for _, tc := range cases {
		if got := timerPhase(tc.state, tc.started); got != tc.phase {
			t.Errorf("timerPhase(%+v, %v) = %s, want %s", tc.state, tc.started, got, tc.phase)
		}
	}
}
