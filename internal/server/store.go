package server

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

type Store struct {
	mu     sync.Mutex
	nextID int
	nights map[string]*Night
}

func NewStore() *Store {
	return &Store{
		nextID: 1,
		nights: make(map[string]*Night),
	}
}

// CreateNight registers a new night seeded with the given rounds. Round ids
// on the seed are ignored; each round is assigned a fresh id in order.
func (s *Store) CreateNight(seed []Round) *Night {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := fmt.Sprintf("night-%d", s.nextID)
	s.nextID++
	night := &Night{
		ID:          id,
		ShareCode:   newShareCode(),
		NextRoundID: 1,
	}
	for _, round := range seed {
		night.appendRound(round)
	}
	s.nights[id] = night
	return night
}

func (s *Store) GetNight(id string) (*Night, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	night, ok := s.nights[id]
	return night, ok
}

func (s *Store) UpdateNight(id string, update func(night *Night) error) (*Night, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	night, ok := s.nights[id]
	if !ok {
		return nil, errors.New("night not found")
	}
	if err := update(night); err != nil {
		return nil, err
	}
	return night, nil
}

func (s *Store) FindNightByShareCode(code string) (*Night, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, night := range s.nights {
		if night.ShareCode == code {
			return night, true
		}
	}
	return nil, false
}

func (s *Store) UpdateNightID(night *Night, newID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if night.ID == newID {
		return
	}
	delete(s.nights, night.ID)
	night.ID = newID
	s.nights[newID] = night
}

// RestoreNight registers a night rebuilt from a persisted snapshot and bumps
// the id counters past anything the snapshot used.
func (s *Store) RestoreNight(night *Night) error {
	if night == nil {
		return errors.New("night is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.nights[night.ID]; ok {
		return errors.New("night already running")
	}
	for _, existing := range s.nights {
		if existing.ShareCode == night.ShareCode {
			return errors.New("night already running")
		}
	}
	s.nights[night.ID] = night
	if id := nightSortKey(night.ID); id >= s.nextID {
		s.nextID = id + 1
	}
	maxRoundID := 0
	for _, round := range night.Rounds {
		if round.ID > maxRoundID {
			maxRoundID = round.ID
		}
	}
	if maxRoundID >= night.NextRoundID {
		night.NextRoundID = maxRoundID + 1
	}
	if night.NextRoundID < 1 {
		night.NextRoundID = 1
	}
	return nil
}

func (s *Store) ListNightSummaries() []NightSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]NightSummary, 0, len(s.nights))
	for _, night := range s.nights {
		completed := 0
		for _, round := range night.Rounds {
			if round.Completed {
				completed++
			}
		}
		list = append(list, NightSummary{
			ID:        night.ID,
			ShareCode: night.ShareCode,
			Rounds:    len(night.Rounds),
			Completed: completed,
		})
	}
	sort.Slice(list, func(i, j int) bool {
		return nightSortKey(list[i].ID) < nightSortKey(list[j].ID)
	})
	return list
}

func nightSortKey(id string) int {
	parts := strings.Split(id, "-")
	if len(parts) < 2 {
		return 0
	}
	value, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0
	}
	return value
}

// appendRound assigns the next id and appends, returning the assigned id.
// Ids are monotonic for the night's lifetime and never reused after a
// delete. The id, not a pointer, comes back: the backing array shifts on
// every remove, so handing out element pointers would leave callers reading
// whichever round later lands in that slot.
func (n *Night) appendRound(round Round) int {
	round.ID = n.NextRoundID
	n.NextRoundID++
	n.Rounds = append(n.Rounds, round)
	return round.ID
}

func (n *Night) findRound(id int) (*Round, int, bool) {
	for i := range n.Rounds {
		if n.Rounds[i].ID == id {
			return &n.Rounds[i], i, true
		}
	}
	return nil, -1, false
}

func (n *Night) removeRound(id int) bool {
	_, index, ok := n.findRound(id)
	if !ok {
		return false
	}
	n.Rounds = append(n.Rounds[:index], n.Rounds[index+1:]...)
	return true
}

// moveRound swaps the round with its neighbour at index+delta. Moving past
// either end of the list is a no-op.
func (n *Night) moveRound(id int, delta int) bool {
	_, index, ok := n.findRound(id)
	if !ok {
		return false
	}
	target := index + delta
	if target < 0 || target >= len(n.Rounds) {
		return false
	}
	n.Rounds[index], n.Rounds[target] = n.Rounds[target], n.Rounds[index]
	return true
}

func (n *Night) setCompleted(id int, completed bool) (*Round, bool) {
	round, _, ok := n.findRound(id)
	if !ok {
		return nil, false
	}
	round.Completed = completed
	return round, true
}

// nextOpenRoundAfter returns the id of the first not-completed round after
// the given one in list order.
func (n *Night) nextOpenRoundAfter(id int) (int, bool) {
	_, index, ok := n.findRound(id)
	if !ok {
		return 0, false
	}
	for i := index + 1; i < len(n.Rounds); i++ {
		if !n.Rounds[i].Completed {
			return n.Rounds[i].ID, true
		}
	}
	return 0, false
}
