package gamemode

import (
	"log"

	"fishcatch/internal/record"
)

type ScoreBoard struct {
	Score  int
	Record int

	reward int
	store  record.Store
}

func NewScoreBoard(store record.Store, reward int) *ScoreBoard {
	s := &ScoreBoard{reward: reward, store: store}
	s.Reset()
	return s
}

func (s *ScoreBoard) OnHit() {
	s.Score += s.reward
}

// Finalize closes the round. A score above the record replaces it and is
// saved; a failed save is logged and the in-memory record still updates.
func (s *ScoreBoard) Finalize() bool {
	if s.Score <= s.Record {
		return false
	}
	s.Record = s.Score
	if err := s.store.Save(s.Record); err != nil {
		log.Printf("[Record] failed to save record %d: %v", s.Record, err)
	}
	return true
}

// Reset zeroes the score and reloads the record from the store.
func (s *ScoreBoard) Reset() {
	s.Score = 0
	s.Record = s.store.Load()
}
