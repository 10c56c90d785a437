package domain

import "fmt"

type SessionStatus string

const (
	SessionIdle    SessionStatus = "idle"
	SessionPlaying SessionStatus = "playing"
	SessionEnded   SessionStatus = "ended"
)

const (
	pointsPerCorrect = 10
	pointsPerStreak  = 2
)

type Stats struct {
	Score  int
	Streak int
}

// SessionState is the score/streak state machine: idle -> playing -> ended.
type SessionState struct {
	score  int
	streak int
	status SessionStatus
}

func NewSessionState() SessionState {
	return SessionState{status: SessionIdle}
}

func (s *SessionState) Start() {
	s.score = 0
	s.streak = 0
	s.status = SessionPlaying
}

func (s *SessionState) End() (Stats, error) {
	if s.status != SessionPlaying {
		return Stats{}, fmt.Errorf("end session in %s state: %w", s.statusOrIdle(), ErrInvalidState)
	}

	s.status = SessionEnded
	return s.Stats(), nil
}

// RecordOutcome scores one resolved answer. The streak bonus uses the streak
// before it is incremented, so a run of correct answers earns 10, 12, 14, ...
func (s *SessionState) RecordOutcome(correct bool) (Stats, error) {
	if s.status != SessionPlaying {
		return Stats{}, fmt.Errorf("record outcome in %s state: %w", s.statusOrIdle(), ErrInvalidState)
	}

	if correct {
		s.score += pointsPerCorrect + s.streak*pointsPerStreak
		s.streak++
	} else {
		s.streak = 0
	}

	return s.Stats(), nil
}

func (s SessionState) Stats() Stats {
	return Stats{Score: s.score, Streak: s.streak}
}

func (s SessionState) Status() SessionStatus {
	return s.statusOrIdle()
}

func (s SessionState) statusOrIdle() SessionStatus {
	if s.status == "" {
		return SessionIdle
	}
	return s.status
}
