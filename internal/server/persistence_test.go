package server

import (
	"encoding/json"
	"strings"
	"testing"
)

func sampleRounds() []Round {
	return []Round{
		{
			ID:             1,
			GameName:       "Trivia Blitz",
			GameIcon:       "🧠",
			PromptMarkup:   promptBlock("Ten rapid-fire questions."),
			ResourceMarkup: `<span class="badge badge-text">Text only</span>`,
			TimerMinutes:   5,
			Completed:      true,
		},
		{
			ID:             4,
			GameName:       "Name That Tune",
			GameIcon:       "🎵",
			PromptMarkup:   promptBlock("First shout wins."),
			ResourceMarkup: `<audio controls preload="none" src="/media/tune.mp3"></audio>`,
			TimerMinutes:   1,
			TimerSeconds:   30,
		},
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	original := sampleRounds()
	raw, err := encodeRounds(original)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	restored, ok := decodeRounds(snapshotSchemaVersion, raw)
	if !ok {
		t.Fatal("expected decode to succeed")
	}
	if len(restored) != len(original) {
		t.Fatalf("expected %d rounds, got %d", len(original), len(restored))
	}
	for i := range original {
		if restored[i].ID != original[i].ID {
			t.Errorf("round %d: id %d != %d", i, restored[i].ID, original[i].ID)
		}
		if restored[i].GameName != original[i].GameName {
			t.Errorf("round %d: name %q != %q", i, restored[i].GameName, original[i].GameName)
		}
		if restored[i].Completed != original[i].Completed {
			t.Errorf("round %d: completed %v != %v", i, restored[i].Completed, original[i].Completed)
		}
		if restored[i].TimerMinutes != original[i].TimerMinutes ||
			restored[i].TimerSeconds != original[i].TimerSeconds {
			t.Errorf("round %d: timer inputs changed", i)
		}
	}
}

func TestSnapshotRoundTripKeepsRenderedPrompt(t *testing.T) {
	raw, err := encodeRounds(sampleRounds())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	restored, ok := decodeRounds(snapshotSchemaVersion, raw)
	if !ok {
		t.Fatal("expected decode to succeed")
	}
	if restored[0].PromptMarkup != sampleRounds()[0].PromptMarkup {
		t.Fatalf("expected rendered prompt kept verbatim, got %s", restored[0].PromptMarkup)
	}
}

func TestDecodeWrapsPlainPromptText(t *testing.T) {
	raw := []byte(`[{"id":1,"game_name":"Trivia","prompt":"A plain question","timer_minutes":1}]`)
	rounds, ok := decodeRounds(snapshotSchemaVersion, raw)
	if !ok {
		t.Fatal("expected decode to succeed")
	}
	if !strings.HasPrefix(rounds[0].PromptMarkup, "<details") {
		t.Fatalf("expected plain prompt wrapped, got %s", rounds[0].PromptMarkup)
	}
	if rounds[0].ResourceMarkup == "" {
		t.Fatal("expected missing resource to fall back to the text badge")
	}
}

func TestDecodeRejectsNonArray(t *testing.T) {
	if _, ok := decodeRounds(snapshotSchemaVersion, []byte(`{"rounds":[]}`)); ok {
		t.Fatal("expected non-array snapshot to be rejected")
	}
}

func TestDecodeRejectsEmptyArray(t *testing.T) {
	if _, ok := decodeRounds(snapshotSchemaVersion, []byte(`[]`)); ok {
		t.Fatal("expected empty snapshot to be rejected")
	}
}

func TestDecodeSkipsMalformedEntriesUnderCurrentVersion(t *testing.T) {
	raw := []byte(`[
		{"id":1,"game_name":"Trivia","prompt":"ok","timer_minutes":1},
		"not an object",
		{"id":-5,"game_name":"Broken"},
		{"id":2,"game_name":"Charades","prompt":"ok too","timer_minutes":2}
	]`)
	rounds, ok := decodeRounds(snapshotSchemaVersion, raw)
	if !ok {
		t.Fatal("expected decode to salvage valid entries")
	}
	if len(rounds) != 2 || rounds[0].ID != 1 || rounds[1].ID != 2 {
		t.Fatalf("expected the two valid rounds, got %+v", rounds)
	}
}

func TestDecodeUnknownVersionWithBadShapeIsAbsent(t *testing.T) {
	raw := []byte(`[{"legacy_field":"x"},{"id":1,"game_name":"Trivia"}]`)
	if _, ok := decodeRounds(snapshotSchemaVersion+1, raw); ok {
		t.Fatal("expected incompatible unknown-version snapshot to be treated as absent")
	}
}

func TestDecodeUnknownVersionWithCompatibleShapeSucceeds(t *testing.T) {
	raw, err := encodeRounds(sampleRounds())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	rounds, ok := decodeRounds(snapshotSchemaVersion+1, raw)
	if !ok {
		t.Fatal("expected shape-compatible snapshot to load")
	}
	if len(rounds) != 2 {
		t.Fatalf("expected 2 rounds, got %d", len(rounds))
	}
}

func TestEncodeOmitsLiveCountdownState(t *testing.T) {
	raw, err := encodeRounds(sampleRounds())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var entries []map[string]any
	if err := json.Unmarshal(raw, &entries); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, entry := range entries {
		if _, ok := entry["remaining"]; ok {
			t.Fatal("snapshot must not record live countdown progress")
		}
		if _, ok := entry["running"]; ok {
			t.Fatal("snapshot must not record running state")
		}
	}
}
